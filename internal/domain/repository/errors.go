package repository

import "errors"

// ErrNotFound is returned when no row matches the given id
var ErrNotFound = errors.New("record not found")
