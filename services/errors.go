package services

import (
	"errors"
	"strings"
)

// ValidationError holds one or more human-readable messages for a 400
// response. The API layer surfaces it as an array.
type ValidationError []string

func (e ValidationError) Error() string {
	return strings.Join(e, ", ")
}

// NotFoundError names the resource an id failed to match; surfaced as 404.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

// Fixed 400 messages. The strings are part of the API contract.
var (
	ErrDuplicateCategory = errors.New("Category already exists")
	ErrCategoryInUse     = errors.New("Cannot delete category that is in use by transactions")
)
