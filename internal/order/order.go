package order

import "github.com/ferdiebergado/bookstore/internal/platform/db"

type Module struct {
	svc     *Service
	handler *Handler
}

func (m *Module) Handler() *Handler {
	return m.handler
}

func (m *Module) Service() *Service {
	return m.svc
}

// NewModule wires the order feature. notifier may be nil to disable notifications.
func NewModule(dbExec db.Executor, txMgr db.TxManager, books BookStore, notifier Notifier) *Module {
	repo := NewRepository(dbExec)
	svc := NewService(repo, books, txMgr, notifier)
	return &Module{
		svc:     svc,
		handler: NewHandler(svc),
	}
}
