package bookshelf

import (
	"context"

	"github.com/5w1tchy/bookshelf-api/internal/models"
)

// Update replaces every mutable field of the book in place. Validation runs
// before lookup, so an invalid payload for an unknown id reports the
// validation error.
func (r *Registry) Update(ctx context.Context, id string, in models.BookInput) error {
	_, span := r.tracer.Start(ctx, "bookshelf.Update")
	defer span.End()

	if err := validateInput(in); err != nil {
		span.RecordError(err)
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i == -1 {
		return ErrNotFound
	}

	b := &r.books[i]
	b.Name = in.Name
	b.Year = in.Year
	b.Author = in.Author
	b.Summary = in.Summary
	b.Publisher = in.Publisher
	b.PageCount = in.PageCount
	b.ReadPage = in.ReadPage
	b.Reading = in.Reading
	b.Finished = isFinished(in)
	b.UpdatedAt = r.now()
	return nil
}
