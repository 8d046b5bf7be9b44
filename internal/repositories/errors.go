package repositories

import "errors"

// ErrNotFound is returned by single-row lookups when no matching row
// exists, so handlers can answer 404 instead of a generic 500.
var ErrNotFound = errors.New("not found")
