package apperr

import (
	"log/slog"
	"net/http"

	"github.com/5w1tchy/bookshelf-api/internal/api/httpx"
)

// Problem is a client-facing failure: an HTTP status plus the message placed
// in the {status:"fail", message} envelope.
type Problem struct {
	Status  int
	Message string
	// Cause is logged for 5xx responses and never sent to the client.
	Cause error
}

func Write(w http.ResponseWriter, r *http.Request, p Problem) {
	if p.Status == 0 {
		p.Status = http.StatusInternalServerError
	}
	if p.Status >= http.StatusInternalServerError {
		attrs := []any{"status", p.Status, "error", p.Cause}
		if r != nil {
			attrs = append(attrs, "method", r.Method, "path", r.URL.Path, "request_id", r.Header.Get("X-Request-ID"))
		}
		slog.Error("request failed", attrs...)
	}
	httpx.Fail(w, p.Status, p.Message)
}

// Convenience: fast write with just status+message
func WriteStatus(w http.ResponseWriter, r *http.Request, status int, message string) {
	Write(w, r, Problem{Status: status, Message: message})
}
