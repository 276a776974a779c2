package books

import (
	"context"
	"net/http"

	"github.com/5w1tchy/bookshelf-api/internal/models"
	"github.com/5w1tchy/bookshelf-api/internal/store/bookshelf"
)

// Store is the book collection the handlers operate on.
type Store interface {
	Add(ctx context.Context, in models.BookInput) (string, error)
	List(ctx context.Context, f bookshelf.Filter) []models.BookSummary
	Get(ctx context.Context, id string) (models.Book, error)
	Update(ctx context.Context, id string, in models.BookInput) error
	Delete(ctx context.Context, id string) error
}

// Register mounts the book routes on mux.
func Register(mux *http.ServeMux, store Store) {
	mux.HandleFunc("POST /books", create(store))
	mux.HandleFunc("GET /books", list(store))
	mux.HandleFunc("GET /books/{bookId}", get(store))
	mux.HandleFunc("PUT /books/{bookId}", put(store))
	mux.HandleFunc("DELETE /books/{bookId}", del(store))
}
