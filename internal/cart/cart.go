package cart

import "github.com/ferdiebergado/bookstore/internal/platform/db"

type Module struct {
	handler *Handler
}

func (m *Module) Handler() *Handler {
	return m.handler
}

func NewModule(dbExec db.Executor, txMgr db.TxManager, books BookFinder, orders OrderPlacer, suggester Suggester) *Module {
	repo := NewRepository(dbExec)
	svc := NewService(repo, books, orders, txMgr)
	return &Module{
		handler: NewHandler(svc, suggester),
	}
}
