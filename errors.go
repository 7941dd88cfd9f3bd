package vptree

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is matched by every query validation error.
	ErrInvalidArgument = errors.New("invalid argument")
)

// InvalidMaxItemsError indicates a query asking for fewer than one item.
type InvalidMaxItemsError struct {
	MaxItems int
}

func (e *InvalidMaxItemsError) Error() string {
	return fmt.Sprintf("invalid max items: %d (must be at least 1)", e.MaxItems)
}

func (e *InvalidMaxItemsError) Unwrap() error { return ErrInvalidArgument }

// InvalidMaxDistanceError indicates a negative or NaN query radius.
type InvalidMaxDistanceError struct {
	MaxDistance float64
}

func (e *InvalidMaxDistanceError) Error() string {
	return fmt.Sprintf("invalid max distance: %v (must be non-negative)", e.MaxDistance)
}

func (e *InvalidMaxDistanceError) Unwrap() error { return ErrInvalidArgument }
