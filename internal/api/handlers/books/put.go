package books

import (
	"log/slog"
	"net/http"

	"github.com/5w1tchy/bookshelf-api/internal/api/apperr"
	"github.com/5w1tchy/bookshelf-api/internal/api/httpx"
)

func put(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("bookId")

		p, ok := decodePayload(w, r, "Gagal memperbarui buku")
		if !ok {
			return
		}

		err := store.Update(r.Context(), id, p.input())
		if apperr.HandleBookshelfError(w, r, apperr.OpUpdate, err) {
			return
		}

		slog.InfoContext(r.Context(), "book updated", "book_id", id)
		httpx.Success(w, http.StatusOK, apperr.MsgUpdated, nil)
	}
}
