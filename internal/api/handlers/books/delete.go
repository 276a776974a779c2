package books

import (
	"log/slog"
	"net/http"

	"github.com/5w1tchy/bookshelf-api/internal/api/apperr"
	"github.com/5w1tchy/bookshelf-api/internal/api/httpx"
)

func del(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("bookId")

		if apperr.HandleBookshelfError(w, r, apperr.OpDelete, store.Delete(r.Context(), id)) {
			return
		}

		slog.InfoContext(r.Context(), "book deleted", "book_id", id)
		httpx.Success(w, http.StatusOK, apperr.MsgDeleted, nil)
	}
}
