package web

import (
	"encoding/json"
	"net/http"
	"testing"
)

const (
	HeaderContentType = "Content-Type"
	HeaderRequestID   = "X-Request-ID"
	MimeJSON          = "application/json"
)

func DecodeJSONResponse(t *testing.T, res *http.Response) map[string]any {
	t.Helper()

	var body map[string]any
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode json response: %v", err)
	}

	return body
}
