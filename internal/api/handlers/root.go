package handlers

import (
	"net/http"

	"github.com/5w1tchy/bookshelf-api/internal/api/httpx"
)

func RootHandler(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "bookshelf-api",
	})
}

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
