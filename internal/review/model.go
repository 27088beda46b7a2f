package review

import (
	"errors"
	"time"
)

var (
	ErrNoReviews   = errors.New("book has no reviews")
	ErrQueryFailed = errors.New("review repository: query failed")
)

type Review struct {
	ID        int64
	BookID    int64
	Name      string
	Text      string
	Score     int
	CreatedAt time.Time
}

type CreateParams struct {
	BookID int64
	Name   string
	Text   string
	Score  int
}
