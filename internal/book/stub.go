package book

import (
	"context"
	"errors"
)

type StubService struct {
	ListFunc   func(ctx context.Context) ([]Book, error)
	FindFunc   func(ctx context.Context, id int64) (*Book, error)
	SearchFunc func(ctx context.Context, query string) ([]Book, error)
	CreateFunc func(ctx context.Context, params CreateParams) (*Book, error)
	UpdateFunc func(ctx context.Context, id int64, params UpdateParams) (*Book, error)
	DeleteFunc func(ctx context.Context, id int64) error
}

var _ BookService = &StubService{}

func (s *StubService) List(ctx context.Context) ([]Book, error) {
	if s.ListFunc == nil {
		return nil, errors.New("List() not implemented by stub")
	}
	return s.ListFunc(ctx)
}

func (s *StubService) Find(ctx context.Context, id int64) (*Book, error) {
	if s.FindFunc == nil {
		return nil, errors.New("Find() not implemented by stub")
	}
	return s.FindFunc(ctx, id)
}

func (s *StubService) Search(ctx context.Context, query string) ([]Book, error) {
	if s.SearchFunc == nil {
		return nil, errors.New("Search() not implemented by stub")
	}
	return s.SearchFunc(ctx, query)
}

func (s *StubService) Create(ctx context.Context, params CreateParams) (*Book, error) {
	if s.CreateFunc == nil {
		return nil, errors.New("Create() not implemented by stub")
	}
	return s.CreateFunc(ctx, params)
}

func (s *StubService) Update(ctx context.Context, id int64, params UpdateParams) (*Book, error) {
	if s.UpdateFunc == nil {
		return nil, errors.New("Update() not implemented by stub")
	}
	return s.UpdateFunc(ctx, id, params)
}

func (s *StubService) Delete(ctx context.Context, id int64) error {
	if s.DeleteFunc == nil {
		return errors.New("Delete() not implemented by stub")
	}
	return s.DeleteFunc(ctx, id)
}

type StubRepo struct {
	ListFunc           func(ctx context.Context) ([]Book, error)
	CatalogFunc        func(ctx context.Context, limit int) ([]Book, error)
	FindFunc           func(ctx context.Context, id int64) (*Book, error)
	SearchFunc         func(ctx context.Context, query string) ([]Book, error)
	CreateFunc         func(ctx context.Context, params CreateParams) (*Book, error)
	UpdateFunc         func(ctx context.Context, id int64, params UpdateParams) (*Book, error)
	DeleteFunc         func(ctx context.Context, id int64) error
	FindManyFunc       func(ctx context.Context, ids []int64) ([]Book, error)
	FindInStockFunc    func(ctx context.Context, ids []int64) ([]Book, error)
	DecrementStockFunc func(ctx context.Context, id int64, qty int) error
}

var _ BookRepository = &StubRepo{}

func (r *StubRepo) List(ctx context.Context) ([]Book, error) {
	if r.ListFunc == nil {
		return nil, errors.New("List() not implemented by stub")
	}
	return r.ListFunc(ctx)
}

func (r *StubRepo) Catalog(ctx context.Context, limit int) ([]Book, error) {
	if r.CatalogFunc == nil {
		return nil, errors.New("Catalog() not implemented by stub")
	}
	return r.CatalogFunc(ctx, limit)
}

func (r *StubRepo) Find(ctx context.Context, id int64) (*Book, error) {
	if r.FindFunc == nil {
		return nil, errors.New("Find() not implemented by stub")
	}
	return r.FindFunc(ctx, id)
}

func (r *StubRepo) Search(ctx context.Context, query string) ([]Book, error) {
	if r.SearchFunc == nil {
		return nil, errors.New("Search() not implemented by stub")
	}
	return r.SearchFunc(ctx, query)
}

func (r *StubRepo) Create(ctx context.Context, params CreateParams) (*Book, error) {
	if r.CreateFunc == nil {
		return nil, errors.New("Create() not implemented by stub")
	}
	return r.CreateFunc(ctx, params)
}

func (r *StubRepo) Update(ctx context.Context, id int64, params UpdateParams) (*Book, error) {
	if r.UpdateFunc == nil {
		return nil, errors.New("Update() not implemented by stub")
	}
	return r.UpdateFunc(ctx, id, params)
}

func (r *StubRepo) Delete(ctx context.Context, id int64) error {
	if r.DeleteFunc == nil {
		return errors.New("Delete() not implemented by stub")
	}
	return r.DeleteFunc(ctx, id)
}

func (r *StubRepo) FindMany(ctx context.Context, ids []int64) ([]Book, error) {
	if r.FindManyFunc == nil {
		return nil, errors.New("FindMany() not implemented by stub")
	}
	return r.FindManyFunc(ctx, ids)
}

func (r *StubRepo) FindInStock(ctx context.Context, ids []int64) ([]Book, error) {
	if r.FindInStockFunc == nil {
		return nil, errors.New("FindInStock() not implemented by stub")
	}
	return r.FindInStockFunc(ctx, ids)
}

func (r *StubRepo) DecrementStock(ctx context.Context, id int64, qty int) error {
	if r.DecrementStockFunc == nil {
		return errors.New("DecrementStock() not implemented by stub")
	}
	return r.DecrementStockFunc(ctx, id, qty)
}
