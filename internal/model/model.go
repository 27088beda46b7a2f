package model

import (
	"time"
)

// Model holds the columns shared by every catalog table.
type Model struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
