package service

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates the sheet id is absent from the catalog.
var ErrNotFound = errors.New("sheet not found")

// ErrEmptySheet indicates a save or summarize call on a sheet with no rows.
var ErrEmptySheet = errors.New("sheet has no rows")

// ErrInvalidChain indicates a chain-create from a predecessor with no rows.
var ErrInvalidChain = errors.New("cannot chain from empty sheet")

// PersistenceError wraps an underlying storage failure.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
