package repositories

import "errors"

// ErrNotFound is returned when a requested record does not exist. Callers
// branch on it with errors.Is.
var ErrNotFound = errors.New("record not found")
