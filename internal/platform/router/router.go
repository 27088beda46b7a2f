package router

import (
	"net/http"
)

type Middleware = func(next http.Handler) http.Handler

// Router registers handlers by method and path pattern. Patterns follow
// net/http.ServeMux syntax, so path values are read with r.PathValue.
type Router interface {
	http.Handler

	Use(middleware Middleware)
	Get(pattern string, handlerFunc http.HandlerFunc, middlewares ...Middleware)
	Post(pattern string, handlerFunc http.HandlerFunc, middlewares ...Middleware)
	Put(pattern string, handlerFunc http.HandlerFunc, middlewares ...Middleware)
	Patch(pattern string, handlerFunc http.HandlerFunc, middlewares ...Middleware)
	Delete(pattern string, handlerFunc http.HandlerFunc, middlewares ...Middleware)
	Options(pattern string, handlerFunc http.HandlerFunc, middlewares ...Middleware)
}
