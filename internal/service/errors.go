package service

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidInput marks every error caused by a bad client request
	ErrInvalidInput = errors.New("invalid input")
	// ErrNoCategories is returned when a category filter names no categories
	ErrNoCategories = fmt.Errorf("%w: at least one category must be selected", ErrInvalidInput)
	// ErrNotFound is returned when a requested resource has nothing to return
	ErrNotFound = errors.New("not found")
)

// InvalidCategoryError lists the category names that did not match any known category
type InvalidCategoryError struct {
	Values []string
}

func (e *InvalidCategoryError) Error() string {
	quoted := make([]string, len(e.Values))
	for i, v := range e.Values {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	return "invalid category: " + strings.Join(quoted, ", ")
}

func (e *InvalidCategoryError) Unwrap() error {
	return ErrInvalidInput
}

// IsInvalidInput reports whether err was caused by the client
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
