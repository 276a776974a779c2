package books

import (
	"net/http"

	"github.com/5w1tchy/bookshelf-api/internal/api/apperr"
	"github.com/5w1tchy/bookshelf-api/internal/api/httpx"
	"github.com/5w1tchy/bookshelf-api/internal/store/bookshelf"
	"github.com/5w1tchy/bookshelf-api/internal/validate"
)

func list(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		reading, err := validate.ParseFlag("reading", q.Get("reading"))
		if err != nil {
			apperr.Write(w, r, apperr.FromQuery(err))
			return
		}
		finished, err := validate.ParseFlag("finished", q.Get("finished"))
		if err != nil {
			apperr.Write(w, r, apperr.FromQuery(err))
			return
		}

		f := bookshelf.Filter{
			Name:     q.Get("name"),
			Reading:  reading,
			Finished: finished,
		}
		httpx.OK(w, listData{Books: store.List(r.Context(), f)})
	}
}
