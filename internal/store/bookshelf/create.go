package bookshelf

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/5w1tchy/bookshelf-api/internal/models"
)

// Add validates in, appends a new book and returns its id.
func (r *Registry) Add(ctx context.Context, in models.BookInput) (string, error) {
	_, span := r.tracer.Start(ctx, "bookshelf.Add")
	defer span.End()

	if err := validateInput(in); err != nil {
		span.RecordError(err)
		return "", err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id, err := r.freshID()
	if err != nil {
		span.RecordError(err)
		return "", err
	}

	ts := r.now()
	r.books = append(r.books, models.Book{
		ID:         id,
		Name:       in.Name,
		Year:       in.Year,
		Author:     in.Author,
		Summary:    in.Summary,
		Publisher:  in.Publisher,
		PageCount:  in.PageCount,
		ReadPage:   in.ReadPage,
		Finished:   isFinished(in),
		Reading:    in.Reading,
		InsertedAt: ts,
		UpdatedAt:  ts,
	})

	// Read-back check: the appended record must be findable.
	if r.indexOf(id) == -1 {
		return "", fmt.Errorf("%w: %s not found after append", ErrInsertFailure, id)
	}

	span.SetAttributes(attribute.String("book.id", id))
	return id, nil
}

// freshID must be called with mu held.
func (r *Registry) freshID() (string, error) {
	for range maxIDAttempts {
		id := r.newID()
		if id != "" && r.indexOf(id) == -1 {
			return id, nil
		}
	}
	return "", fmt.Errorf("%w: no unique id after %d attempts", ErrInsertFailure, maxIDAttempts)
}
