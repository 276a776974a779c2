package bookshelf

import (
	"context"
	"strings"

	"golang.org/x/text/cases"

	"github.com/5w1tchy/bookshelf-api/internal/models"
)

// Filter narrows List results. Zero-valued fields are not applied; set
// fields combine with logical AND.
type Filter struct {
	Name     string
	Reading  *bool
	Finished *bool
}

func (f Filter) matcher() func(models.Book) bool {
	// cases.Caser is stateful, so one per call.
	var needle string
	fold := cases.Fold()
	if f.Name != "" {
		needle = fold.String(f.Name)
	}
	return func(b models.Book) bool {
		if f.Name != "" && !strings.Contains(fold.String(b.Name), needle) {
			return false
		}
		if f.Reading != nil && b.Reading != *f.Reading {
			return false
		}
		if f.Finished != nil && b.Finished != *f.Finished {
			return false
		}
		return true
	}
}

// List returns the projection of every book passing f, in insertion order.
// The result is never nil.
func (r *Registry) List(ctx context.Context, f Filter) []models.BookSummary {
	_, span := r.tracer.Start(ctx, "bookshelf.List")
	defer span.End()

	match := f.matcher()

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.BookSummary, 0, len(r.books))
	for _, b := range r.books {
		if match(b) {
			out = append(out, b.Summarize())
		}
	}
	return out
}
