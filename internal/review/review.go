package review

import "github.com/ferdiebergado/bookstore/internal/platform/db"

type Module struct {
	handler *Handler
}

func (m *Module) Handler() *Handler {
	return m.handler
}

func NewModule(dbExec db.Executor, books BookFinder) *Module {
	repo := NewRepository(dbExec)
	svc := NewService(repo, books)
	return &Module{
		handler: NewHandler(svc),
	}
}
