package order

import (
	"context"
	"fmt"
	"time"

	"github.com/ferdiebergado/bookstore/internal/platform/email"
)

const notificationTemplate = "order_placed"

var _ Notifier = &EmailNotifier{}

// EmailNotifier mails a summary of every placed order to a fixed list of recipients.
type EmailNotifier struct {
	mailer email.Mailer
	to     []string
}

type notificationLine struct {
	Title    string
	Author   string
	Quantity int
	Price    float64
}

type notificationData struct {
	ID       int64
	PlacedAt string
	Lines    []notificationLine
	Total    float64
}

func (n *EmailNotifier) OrderPlaced(ctx context.Context, o *Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data := notificationData{
		ID:       o.ID,
		PlacedAt: o.CreatedAt.Format(time.RFC1123),
		Lines:    make([]notificationLine, 0, len(o.Lines)),
		Total:    o.Total(),
	}
	for _, l := range o.Lines {
		data.Lines = append(data.Lines, notificationLine{
			Title:    l.Book.Title,
			Author:   l.Book.Author,
			Quantity: l.Quantity,
			Price:    l.Book.Price,
		})
	}

	subject := fmt.Sprintf("Order #%d placed", o.ID)
	if err := n.mailer.SendHTML(n.to, subject, notificationTemplate, data); err != nil {
		return fmt.Errorf("notify order %d: %w", o.ID, err)
	}

	return nil
}

func NewEmailNotifier(mailer email.Mailer, to []string) *EmailNotifier {
	return &EmailNotifier{
		mailer: mailer,
		to:     to,
	}
}
