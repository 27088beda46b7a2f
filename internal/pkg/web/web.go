package web

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"testing"
)

// PathID parses the named path value as a positive integer id.
func PathID(r *http.Request, name string) (int64, error) {
	raw := r.PathValue(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse path value %s=%q: %w", name, raw, err)
	}

	if id < 1 {
		return 0, fmt.Errorf("path value %s=%d is not a valid id", name, id)
	}

	return id, nil
}

func AssertContentType(t *testing.T, res *http.Response) {
	t.Helper()

	gotContent := res.Header.Get(HeaderContentType)
	if !strings.HasPrefix(gotContent, MimeJSON) {
		t.Errorf("res.Header.Get(%q) = %q, want: %q", HeaderContentType, gotContent, MimeJSON)
	}
}
