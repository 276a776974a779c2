package apperr

import (
	"errors"
	"net/http"

	"github.com/5w1tchy/bookshelf-api/internal/store/bookshelf"
	"github.com/5w1tchy/bookshelf-api/internal/validate"
)

// Op names the book operation a registry error came from; messages differ per op.
type Op int

const (
	OpCreate Op = iota
	OpGet
	OpUpdate
	OpDelete
)

const (
	MsgCreated = "Buku berhasil ditambahkan"
	MsgUpdated = "Buku berhasil diperbarui"
	MsgDeleted = "Buku berhasil dihapus"
)

var messages = map[Op]struct {
	missingName, invalidRange, notFound, internal string
}{
	OpCreate: {
		missingName:  "Gagal menambahkan buku. Mohon isi nama buku",
		invalidRange: "Gagal menambahkan buku. readPage tidak boleh lebih besar dari pageCount",
		internal:     "Buku gagal ditambahkan",
	},
	OpGet: {
		notFound: "Buku tidak ditemukan",
		internal: "Buku gagal diambil",
	},
	OpUpdate: {
		missingName:  "Gagal memperbarui buku. Mohon isi nama buku",
		invalidRange: "Gagal memperbarui buku. readPage tidak boleh lebih besar dari pageCount",
		notFound:     "Gagal memperbarui buku. Id tidak ditemukan",
		internal:     "Buku gagal diperbarui",
	},
	OpDelete: {
		notFound: "Buku gagal dihapus. Id tidak ditemukan",
		internal: "Buku gagal dihapus",
	},
}

// FromBookshelf maps a registry error to a Problem for op.
// Errors outside the registry taxonomy become 500.
func FromBookshelf(op Op, err error) Problem {
	m := messages[op]
	switch {
	case errors.Is(err, bookshelf.ErrMissingName) && m.missingName != "":
		return Problem{Status: http.StatusBadRequest, Message: m.missingName}
	case errors.Is(err, bookshelf.ErrInvalidPageRange) && m.invalidRange != "":
		return Problem{Status: http.StatusBadRequest, Message: m.invalidRange}
	case errors.Is(err, bookshelf.ErrNotFound) && m.notFound != "":
		return Problem{Status: http.StatusNotFound, Message: m.notFound}
	default:
		return Problem{Status: http.StatusInternalServerError, Message: m.internal, Cause: err}
	}
}

// HandleBookshelfError writes the mapped Problem. Returns true if err was non-nil.
func HandleBookshelfError(w http.ResponseWriter, r *http.Request, op Op, err error) bool {
	if err == nil {
		return false
	}
	Write(w, r, FromBookshelf(op, err))
	return true
}

const listFailPrefix = "Gagal menampilkan buku"

// FromQuery maps a list query parsing error to a 400 Problem.
func FromQuery(err error) Problem {
	var fe *validate.FlagError
	if errors.As(err, &fe) {
		return Problem{
			Status:  http.StatusBadRequest,
			Message: listFailPrefix + ". Nilai " + fe.Name + " harus 0, 1, true atau false",
		}
	}
	return Problem{Status: http.StatusBadRequest, Message: listFailPrefix + ". Query tidak valid", Cause: err}
}
