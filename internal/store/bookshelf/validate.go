package bookshelf

import (
	"strings"

	"github.com/5w1tchy/bookshelf-api/internal/models"
)

// validateInput enforces the write-time rules shared by Add and Update.
func validateInput(in models.BookInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return ErrMissingName
	}
	if in.PageCount < 0 || in.ReadPage < 0 || in.ReadPage > in.PageCount {
		return ErrInvalidPageRange
	}
	return nil
}

func isFinished(in models.BookInput) bool {
	return in.ReadPage == in.PageCount
}
