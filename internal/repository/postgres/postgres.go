package postgres

import "github.com/pkg/errors"

// ErrNotFound is returned when a query matches no rows.
var ErrNotFound = errors.New("row not found")
