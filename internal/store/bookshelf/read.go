package bookshelf

import (
	"context"

	"github.com/5w1tchy/bookshelf-api/internal/models"
)

// Get returns a copy of the book with the given id.
func (r *Registry) Get(ctx context.Context, id string) (models.Book, error) {
	_, span := r.tracer.Start(ctx, "bookshelf.Get")
	defer span.End()

	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i == -1 {
		return models.Book{}, ErrNotFound
	}
	return r.books[i], nil
}
