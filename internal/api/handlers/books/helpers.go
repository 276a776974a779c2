package books

import (
	"errors"
	"net/http"

	"github.com/5w1tchy/bookshelf-api/internal/api/apperr"
	"github.com/5w1tchy/bookshelf-api/internal/api/httpx"
)

// decodePayload reads the request body, writing a 400/413 on failure.
func decodePayload(w http.ResponseWriter, r *http.Request, failPrefix string) (bookPayload, bool) {
	defer r.Body.Close()

	var p bookPayload
	if err := httpx.DecodeJSON(r.Body, &p); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			apperr.WriteStatus(w, r, http.StatusRequestEntityTooLarge, failPrefix+". Payload terlalu besar")
			return bookPayload{}, false
		}
		apperr.WriteStatus(w, r, http.StatusBadRequest, failPrefix+". Payload tidak valid")
		return bookPayload{}, false
	}
	return p, true
}
