package books

import (
	"log/slog"
	"net/http"

	"github.com/5w1tchy/bookshelf-api/internal/api/apperr"
	"github.com/5w1tchy/bookshelf-api/internal/api/httpx"
)

func create(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := decodePayload(w, r, "Gagal menambahkan buku")
		if !ok {
			return
		}

		id, err := store.Add(r.Context(), p.input())
		if apperr.HandleBookshelfError(w, r, apperr.OpCreate, err) {
			return
		}

		slog.InfoContext(r.Context(), "book added", "book_id", id)
		httpx.Success(w, http.StatusCreated, apperr.MsgCreated, createdData{BookID: id})
	}
}
