package httpx

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var ErrInvalidJSON = errors.New("invalid JSON")

type envelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Success writes {status:"success", message?, data?}.
func Success(w http.ResponseWriter, status int, message string, data any) {
	WriteJSON(w, status, envelope{Status: "success", Message: message, Data: data})
}

func OK(w http.ResponseWriter, data any) {
	Success(w, http.StatusOK, "", data)
}

// Fail writes {status:"fail", message}.
func Fail(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, envelope{Status: "fail", Message: message})
}

// DecodeJSON reads the whole body and unmarshals exactly one JSON value into
// dst. Trailing bytes and empty bodies are ErrInvalidJSON. Read errors such as
// *http.MaxBytesError are returned as is.
func DecodeJSON(r io.Reader, dst any) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return ErrInvalidJSON
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return ErrInvalidJSON
	}
	return nil
}
