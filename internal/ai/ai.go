// Package ai turns a free-text reading preference into book suggestions.
package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ferdiebergado/bookstore/internal/book"
	"github.com/ferdiebergado/bookstore/internal/metrics"
	"github.com/ferdiebergado/bookstore/internal/pkg/errx"
	"github.com/ferdiebergado/bookstore/internal/pkg/text"
	"github.com/ferdiebergado/bookstore/internal/platform/llm"
)

const (
	DefaultCatalogLimit = 30

	systemPrompt = "You are a bookstore assistant. Suggest books based on the available books and the customer's preference."
)

var (
	ErrUnavailable     = llm.ErrUnavailable
	ErrEmptyPreference = errors.New("preference is empty")
)

// Catalog lists at most limit books.
type Catalog interface {
	Catalog(ctx context.Context, limit int) ([]book.Book, error)
}

type Service struct {
	catalog   Catalog
	completer llm.Completer
	limit     int
}

// Suggest asks the model which catalog books match preference and returns
// their ids. A reply without a usable id list gives an empty slice.
func (s *Service) Suggest(ctx context.Context, preference string) ([]int64, error) {
	preference = text.Squash(preference)
	if preference == "" {
		return nil, ErrEmptyPreference
	}

	books, err := s.catalog.Catalog(ctx, s.limit)
	if err != nil {
		return nil, fmt.Errorf("load catalog for suggestion: %w", err)
	}

	reply, err := s.completer.Complete(ctx, BuildPrompt(books, preference))
	if err != nil {
		if errx.IsContextError(err) {
			return nil, err
		}

		metrics.SuggestionsTotal.WithLabelValues("unavailable").Inc()
		if !errors.Is(err, ErrUnavailable) {
			err = fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		return nil, fmt.Errorf("suggest books: %w", err)
	}

	ids := ParseIDs(reply)
	outcome := "ok"
	if len(ids) == 0 {
		outcome = "empty"
	}
	metrics.SuggestionsTotal.WithLabelValues(outcome).Inc()
	slog.InfoContext(ctx, "cart suggestion generated", "catalog_size", len(books), "suggested", len(ids))

	return ids, nil
}

// BuildPrompt lists every book by id so the reply can refer to real ids.
func BuildPrompt(books []book.Book, preference string) llm.Prompt {
	var sb strings.Builder
	sb.WriteString("Available books:\n")
	for _, b := range books {
		fmt.Fprintf(&sb, "%d. %q - %s (Genre: %s)\n", b.ID, b.Title, b.Description, b.Genre)
	}

	fmt.Fprintf(&sb, "\nBased on these books, suggest a JSON list with the IDs of the books "+
		"the customer should buy for the preference:\n%q\n\n", preference)
	sb.WriteString("Answer only with the JSON, for example: [1, 3, 5]")

	return llm.Prompt{
		System: systemPrompt,
		User:   sb.String(),
	}
}

// ParseIDs decodes the first bracketed span of reply as a list of ids.
// Elements that are not positive integers are dropped, duplicates are removed
// and the order of first appearance is kept.
func ParseIDs(reply string) []int64 {
	start := strings.IndexByte(reply, '[')
	if start < 0 {
		return []int64{}
	}

	end := strings.IndexByte(reply[start:], ']')
	if end < 0 {
		return []int64{}
	}

	var raw []json.RawMessage
	if err := json.Unmarshal([]byte(reply[start:start+end+1]), &raw); err != nil {
		slog.Warn("unparsable suggestion reply", "reply", reply, "reason", err)
		return []int64{}
	}

	ids := make([]int64, 0, len(raw))
	seen := make(map[int64]struct{}, len(raw))
	for _, r := range raw {
		var id int64
		if err := json.Unmarshal(r, &id); err != nil || id < 1 {
			continue
		}

		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	return ids
}

// NewService creates the suggestion service. A limit below 1 uses DefaultCatalogLimit.
func NewService(catalog Catalog, completer llm.Completer, limit int) *Service {
	if limit < 1 {
		limit = DefaultCatalogLimit
	}

	return &Service{
		catalog:   catalog,
		completer: completer,
		limit:     limit,
	}
}
