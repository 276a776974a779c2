package bookshelf

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/5w1tchy/bookshelf-api/internal/models"
)

const tracerName = "github.com/5w1tchy/bookshelf-api/internal/store/bookshelf"

// maxIDAttempts bounds regeneration when a fresh id collides with a stored one.
const maxIDAttempts = 5

// IDFunc produces a new opaque book id.
type IDFunc func() string

// Registry is the process-wide, ordered, in-memory book collection.
// All methods are safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	books []models.Book

	newID  IDFunc
	now    func() time.Time
	tracer trace.Tracer
}

type Option func(*Registry)

// WithIDFunc overrides id generation (uuid v4 by default).
func WithIDFunc(fn IDFunc) Option {
	return func(r *Registry) {
		if fn != nil {
			r.newID = fn
		}
	}
}

// WithClock overrides the timestamp source (UTC wall clock by default).
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		if now != nil {
			r.now = now
		}
	}
}

// New returns an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		books:  make([]models.Book, 0),
		newID:  uuid.NewString,
		now:    func() time.Time { return time.Now().UTC() },
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Len reports the number of stored books.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.books)
}

// indexOf must be called with mu held.
func (r *Registry) indexOf(id string) int {
	for i := range r.books {
		if r.books[i].ID == id {
			return i
		}
	}
	return -1
}
