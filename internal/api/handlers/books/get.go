package books

import (
	"net/http"

	"github.com/5w1tchy/bookshelf-api/internal/api/apperr"
	"github.com/5w1tchy/bookshelf-api/internal/api/httpx"
)

func get(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, err := store.Get(r.Context(), r.PathValue("bookId"))
		if apperr.HandleBookshelfError(w, r, apperr.OpGet, err) {
			return
		}
		httpx.OK(w, bookData{Book: b})
	}
}
