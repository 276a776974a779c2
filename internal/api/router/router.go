package router

import (
	"net/http"

	"github.com/5w1tchy/bookshelf-api/internal/api/handlers"
	"github.com/5w1tchy/bookshelf-api/internal/api/handlers/books"
)

func Router(store books.Store) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", handlers.RootHandler)
	mux.HandleFunc("GET /healthz", handlers.HealthHandler)

	books.Register(mux, store)

	return mux
}
