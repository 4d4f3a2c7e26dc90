package repository

import "errors"

// ErrNotFound is returned when the requested record does not exist: no board
// has been saved yet, or the hand-off slot is empty.
var ErrNotFound = errors.New("record not found")
