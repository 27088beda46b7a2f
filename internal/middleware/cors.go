package middleware

import (
	"net/http"

	"github.com/ferdiebergado/bookstore/internal/config"
	"github.com/go-chi/cors"
)

// CORS builds the cross-origin middleware from the cors config section.
func CORS(opts *config.CORSOptions) func(next http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: opts.AllowedMethods,
		AllowedHeaders: opts.AllowedHeaders,
		ExposedHeaders: opts.ExposedHeaders,
		MaxAge:         opts.MaxAge,
	})
}
