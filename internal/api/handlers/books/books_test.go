package books_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/5w1tchy/bookshelf-api/internal/api/handlers/books"
	mw "github.com/5w1tchy/bookshelf-api/internal/api/middlewares"
	"github.com/5w1tchy/bookshelf-api/internal/models"
	"github.com/5w1tchy/bookshelf-api/internal/store/bookshelf"
)

type response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    struct {
		BookID string               `json:"bookId"`
		Books  []models.BookSummary `json:"books"`
		Book   models.Book          `json:"book"`
	} `json:"data"`
}

func newServer(t *testing.T) (*http.ServeMux, *bookshelf.Registry) {
	t.Helper()
	n := 0
	reg := bookshelf.New(bookshelf.WithIDFunc(func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}))
	mux := http.NewServeMux()
	books.Register(mux, reg)
	return mux, reg
}

func do(t *testing.T, h http.Handler, method, target, body string) (*httptest.ResponseRecorder, response) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var resp response
	if rec.Body.Len() > 0 {
		require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	}
	return rec, resp
}

func TestCreate_Success(t *testing.T) {
	mux, reg := newServer(t)

	rec, resp := do(t, mux, http.MethodPost, "/books",
		`{"name":"Kitab","year":2020,"author":"A","summary":"S","publisher":"P","pageCount":100,"readPage":100,"reading":false}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "Buku berhasil ditambahkan", resp.Message)
	assert.Equal(t, "id-1", resp.Data.BookID)

	b, err := reg.Get(context.Background(), "id-1")
	require.NoError(t, err)
	assert.True(t, b.Finished)
}

func TestCreate_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		status  int
		message string
	}{
		{"missing name", `{"pageCount":10,"readPage":1}`, http.StatusBadRequest, "Gagal menambahkan buku. Mohon isi nama buku"},
		{"read past end", `{"name":"Bad","pageCount":50,"readPage":60}`, http.StatusBadRequest, "Gagal menambahkan buku. readPage tidak boleh lebih besar dari pageCount"},
		{"malformed json", `{"name":`, http.StatusBadRequest, "Gagal menambahkan buku. Payload tidak valid"},
		{"trailing data", `{"name":"B","pageCount":1} trailing`, http.StatusBadRequest, "Gagal menambahkan buku. Payload tidak valid"},
		{"empty body", ` `, http.StatusBadRequest, "Gagal menambahkan buku. Payload tidak valid"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mux, reg := newServer(t)
			rec, resp := do(t, mux, http.MethodPost, "/books", tc.body)

			assert.Equal(t, tc.status, rec.Code)
			assert.Equal(t, "fail", resp.Status)
			assert.Equal(t, tc.message, resp.Message)
			assert.Zero(t, reg.Len())
		})
	}
}

func TestList_ReadingFilter(t *testing.T) {
	mux, _ := newServer(t)

	do(t, mux, http.MethodPost, "/books", `{"name":"Sedang Dibaca","publisher":"P1","pageCount":10,"readPage":1,"reading":true}`)
	do(t, mux, http.MethodPost, "/books", `{"name":"Belum Dibaca","publisher":"P2","pageCount":10,"readPage":1,"reading":false}`)

	rec, resp := do(t, mux, http.MethodGet, "/books?reading=1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, []models.BookSummary{{ID: "id-1", Name: "Sedang Dibaca", Publisher: "P1"}}, resp.Data.Books)

	_, resp = do(t, mux, http.MethodGet, "/books?reading=0", "")
	require.Len(t, resp.Data.Books, 1)
	assert.Equal(t, "id-2", resp.Data.Books[0].ID)

	_, resp = do(t, mux, http.MethodGet, "/books?name=dibaca&finished=0", "")
	assert.Len(t, resp.Data.Books, 2)
}

func TestList_EmptyShelf(t *testing.T) {
	mux, _ := newServer(t)

	rec, _ := do(t, mux, http.MethodGet, "/books", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"success","data":{"books":[]}}`, rec.Body.String())
}

func TestList_InvalidFlag(t *testing.T) {
	mux, _ := newServer(t)

	rec, resp := do(t, mux, http.MethodGet, "/books?finished=maybe", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "fail", resp.Status)
	assert.Equal(t, "Gagal menampilkan buku. Nilai finished harus 0, 1, true atau false", resp.Message)

	rec, resp = do(t, mux, http.MethodGet, "/books?reading=ya", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Gagal menampilkan buku. Nilai reading harus 0, 1, true atau false", resp.Message)
}

func TestCreate_BodyTooLarge(t *testing.T) {
	mux, reg := newServer(t)
	h := mw.BodySizeLimit(64)(mux)

	body := `{"name":"` + strings.Repeat("a", 256) + `","pageCount":1}`
	rec, resp := do(t, h, http.MethodPost, "/books", body)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "Gagal menambahkan buku. Payload terlalu besar", resp.Message)
	assert.Zero(t, reg.Len())

	do(t, mux, http.MethodPost, "/books", `{"name":"Asli","pageCount":5}`)
	rec, resp = do(t, h, http.MethodPut, "/books/id-1", body)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "Gagal memperbarui buku. Payload terlalu besar", resp.Message)
}

func TestGet(t *testing.T) {
	mux, _ := newServer(t)
	do(t, mux, http.MethodPost, "/books", `{"name":"Buku","author":"X","pageCount":5,"readPage":2}`)

	rec, resp := do(t, mux, http.MethodGet, "/books/id-1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "id-1", resp.Data.Book.ID)
	assert.Equal(t, "Buku", resp.Data.Book.Name)
	assert.Equal(t, "X", resp.Data.Book.Author)
	assert.False(t, resp.Data.Book.Finished)
	assert.False(t, resp.Data.Book.InsertedAt.IsZero())
	assert.Equal(t, resp.Data.Book.InsertedAt, resp.Data.Book.UpdatedAt)

	rec, resp = do(t, mux, http.MethodGet, "/books/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "fail", resp.Status)
	assert.Equal(t, "Buku tidak ditemukan", resp.Message)
}

func TestPut(t *testing.T) {
	mux, reg := newServer(t)
	do(t, mux, http.MethodPost, "/books", `{"name":"Lama","pageCount":5,"readPage":2}`)

	rec, resp := do(t, mux, http.MethodPut, "/books/id-1", `{"name":"Baru","pageCount":5,"readPage":5,"reading":true}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "Buku berhasil diperbarui", resp.Message)

	b, err := reg.Get(context.Background(), "id-1")
	require.NoError(t, err)
	assert.Equal(t, "Baru", b.Name)
	assert.True(t, b.Finished)
	assert.True(t, b.Reading)
}

func TestPut_Failures(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		body    string
		status  int
		message string
	}{
		{"unknown id", "/books/ghost", `{"name":"Valid","pageCount":5,"readPage":1}`, http.StatusNotFound, "Gagal memperbarui buku. Id tidak ditemukan"},
		{"missing name", "/books/id-1", `{"pageCount":5}`, http.StatusBadRequest, "Gagal memperbarui buku. Mohon isi nama buku"},
		{"read past end", "/books/id-1", `{"name":"x","pageCount":5,"readPage":6}`, http.StatusBadRequest, "Gagal memperbarui buku. readPage tidak boleh lebih besar dari pageCount"},
		{"validation before lookup", "/books/ghost", `{"pageCount":5}`, http.StatusBadRequest, "Gagal memperbarui buku. Mohon isi nama buku"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mux, _ := newServer(t)
			do(t, mux, http.MethodPost, "/books", `{"name":"Asli","pageCount":5,"readPage":1}`)

			rec, resp := do(t, mux, http.MethodPut, tc.target, tc.body)
			assert.Equal(t, tc.status, rec.Code)
			assert.Equal(t, "fail", resp.Status)
			assert.Equal(t, tc.message, resp.Message)
		})
	}
}

func TestDelete(t *testing.T) {
	mux, reg := newServer(t)
	do(t, mux, http.MethodPost, "/books", `{"name":"A","pageCount":1}`)
	do(t, mux, http.MethodPost, "/books", `{"name":"B","pageCount":1}`)

	rec, resp := do(t, mux, http.MethodDelete, "/books/id-1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Buku berhasil dihapus", resp.Message)
	assert.Equal(t, 1, reg.Len())

	_, resp = do(t, mux, http.MethodGet, "/books", "")
	require.Len(t, resp.Data.Books, 1)
	assert.Equal(t, "id-2", resp.Data.Books[0].ID)

	rec, resp = do(t, mux, http.MethodDelete, "/books/id-1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Buku gagal dihapus. Id tidak ditemukan", resp.Message)
}

func TestMethodNotAllowed(t *testing.T) {
	mux, _ := newServer(t)

	req := httptest.NewRequest(http.MethodPatch, "/books/id-1", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Allow"))
}

type brokenStore struct{ books.Store }

func (brokenStore) Add(context.Context, models.BookInput) (string, error) {
	return "", fmt.Errorf("%w: lost record", bookshelf.ErrInsertFailure)
}

func TestCreate_InsertFailure(t *testing.T) {
	mux := http.NewServeMux()
	books.Register(mux, brokenStore{})

	rec, resp := do(t, mux, http.MethodPost, "/books", `{"name":"A","pageCount":1}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "fail", resp.Status)
	assert.Equal(t, "Buku gagal ditambahkan", resp.Message)
}
