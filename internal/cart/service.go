package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/ferdiebergado/bookstore/internal/book"
	"github.com/ferdiebergado/bookstore/internal/order"
	"github.com/ferdiebergado/bookstore/internal/platform/db"
)

type CartRepository interface {
	CartID(ctx context.Context) (int64, error)
	Items(ctx context.Context, cartID int64) ([]Item, error)
	Item(ctx context.Context, cartID, bookID int64) (*Item, error)
	SetQuantity(ctx context.Context, cartID, bookID int64, qty int) error
	Remove(ctx context.Context, cartID, bookID int64) error
	Clear(ctx context.Context, cartID int64) error
}

type BookFinder interface {
	Find(ctx context.Context, id int64) (*book.Book, error)
	FindInStock(ctx context.Context, ids []int64) ([]book.Book, error)
}

// OrderPlacer turns cart lines into an order.
type OrderPlacer interface {
	Place(ctx context.Context, items []order.Item) (*order.Order, error)
	Confirm(ctx context.Context, o *order.Order, source string)
}

var _ CartService = &Service{}

type Service struct {
	repo   CartRepository
	books  BookFinder
	orders OrderPlacer
	txMgr  db.TxManager
}

func (s *Service) Get(ctx context.Context) ([]Item, error) {
	cartID, err := s.repo.CartID(ctx)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.Items(ctx, cartID)
	if err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return nil, ErrEmpty
	}

	return items, nil
}

// AddItem adds qty copies of the book to the cart.
func (s *Service) AddItem(ctx context.Context, bookID int64, qty int) error {
	if qty < 1 {
		return ErrInvalidQuantity
	}

	cartID, err := s.repo.CartID(ctx)
	if err != nil {
		return err
	}

	b, err := s.books.Find(ctx, bookID)
	if err != nil {
		return fmt.Errorf("find book %d to add: %w", bookID, err)
	}

	current, err := s.quantityInCart(ctx, cartID, bookID)
	if err != nil {
		return err
	}

	wanted := current + qty
	if wanted > b.Quantity {
		return &QuantityError{Requested: wanted, Available: b.Quantity}
	}

	return s.repo.SetQuantity(ctx, cartID, bookID, wanted)
}

// UpdateItem replaces the quantity of a book already in the cart.
func (s *Service) UpdateItem(ctx context.Context, bookID int64, qty int) error {
	if qty < 1 {
		return ErrInvalidQuantity
	}

	cartID, err := s.repo.CartID(ctx)
	if err != nil {
		return err
	}

	if _, err := s.repo.Item(ctx, cartID, bookID); err != nil {
		return err
	}

	b, err := s.books.Find(ctx, bookID)
	if err != nil {
		return fmt.Errorf("find book %d to update: %w", bookID, err)
	}

	if qty > b.Quantity {
		return &QuantityError{Requested: qty, Available: b.Quantity}
	}

	return s.repo.SetQuantity(ctx, cartID, bookID, qty)
}

func (s *Service) RemoveItem(ctx context.Context, bookID int64) error {
	cartID, err := s.repo.CartID(ctx)
	if err != nil {
		return err
	}

	return s.repo.Remove(ctx, cartID, bookID)
}

func (s *Service) Clear(ctx context.Context) error {
	cartID, err := s.repo.CartID(ctx)
	if err != nil {
		return err
	}

	return s.repo.Clear(ctx, cartID)
}

// Checkout places an order with the cart lines and empties the cart in one transaction.
func (s *Service) Checkout(ctx context.Context) (*order.Order, error) {
	var o *order.Order
	err := s.txMgr.RunInTx(ctx, func(txCtx context.Context) error {
		cartID, err := s.repo.CartID(txCtx)
		if err != nil {
			return err
		}

		lines, err := s.repo.Items(txCtx, cartID)
		if err != nil {
			return err
		}

		if len(lines) == 0 {
			return ErrEmpty
		}

		items := make([]order.Item, 0, len(lines))
		for _, l := range lines {
			if l.Quantity > l.Book.Quantity {
				return &book.StockError{BookID: l.BookID, Title: l.Book.Title, Requested: l.Quantity, Available: l.Book.Quantity}
			}
			items = append(items, order.Item{BookID: l.BookID, Quantity: l.Quantity})
		}

		o, err = s.orders.Place(txCtx, items)
		if err != nil {
			return fmt.Errorf("place order from cart %d: %w", cartID, err)
		}

		return s.repo.Clear(txCtx, cartID)
	})
	if err != nil {
		return nil, err
	}

	s.orders.Confirm(ctx, o, order.SourceCheckout)
	return o, nil
}

// AddSuggested adds one copy of every suggested book that is in stock and
// returns the titles added. Books whose cart quantity already matches their
// stock are skipped.
func (s *Service) AddSuggested(ctx context.Context, ids []int64) ([]string, error) {
	var added []string
	err := s.txMgr.RunInTx(ctx, func(txCtx context.Context) error {
		cartID, err := s.repo.CartID(txCtx)
		if err != nil {
			return err
		}

		books, err := s.books.FindInStock(txCtx, ids)
		if err != nil {
			return fmt.Errorf("find suggested books: %w", err)
		}

		for _, b := range books {
			current, err := s.quantityInCart(txCtx, cartID, b.ID)
			if err != nil {
				return err
			}

			if current >= b.Quantity {
				continue
			}

			if err := s.repo.SetQuantity(txCtx, cartID, b.ID, current+1); err != nil {
				return err
			}
			added = append(added, b.Title)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(added) == 0 {
		return nil, ErrNothingAdded
	}

	return added, nil
}

func (s *Service) quantityInCart(ctx context.Context, cartID, bookID int64) (int, error) {
	it, err := s.repo.Item(ctx, cartID, bookID)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return it.Quantity, nil
}

func NewService(repo CartRepository, books BookFinder, orders OrderPlacer, txMgr db.TxManager) *Service {
	return &Service{
		repo:   repo,
		books:  books,
		orders: orders,
		txMgr:  txMgr,
	}
}
