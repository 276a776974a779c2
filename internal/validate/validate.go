package validate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidFlag = errors.New("invalid boolean flag")

// FlagError names the query parameter that failed to parse. It matches
// ErrInvalidFlag under errors.Is.
type FlagError struct {
	Name string
}

func (e *FlagError) Error() string {
	return fmt.Sprintf("%s must be 0, 1, true or false: %v", e.Name, ErrInvalidFlag)
}

func (e *FlagError) Unwrap() error { return ErrInvalidFlag }

// ParseFlag turns a query value into an optional boolean.
//
// "" means the flag was not supplied and yields (nil, nil). "true"/"false"
// are accepted in any case; integers map to false when zero and true otherwise.
// Anything else is a *FlagError.
func ParseFlag(name, raw string) (*bool, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, nil
	}
	var v bool
	switch strings.ToLower(s) {
	case "true":
		v = true
	case "false":
		v = false
	default:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, &FlagError{Name: name}
		}
		v = n != 0
	}
	return &v, nil
}
