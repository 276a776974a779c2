package bookshelf

import (
	"context"
	"slices"
)

// Delete removes the book, keeping the order of the rest.
func (r *Registry) Delete(ctx context.Context, id string) error {
	_, span := r.tracer.Start(ctx, "bookshelf.Delete")
	defer span.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i == -1 {
		return ErrNotFound
	}
	r.books = slices.Delete(r.books, i, i+1)
	return nil
}
