package segbar

import (
	"errors"
	"fmt"
)

// Common errors returned by the widget.
var (
	// ErrNegativeProgress is returned when progress is set below zero.
	ErrNegativeProgress = errors.New("segbar: progress cannot be negative")

	// ErrProgressOutOfBounds is returned when progress would exceed the
	// segment count.
	ErrProgressOutOfBounds = errors.New("segbar: progress out of bounds")

	// ErrInvalidAttribute is returned for malformed declarative attributes.
	ErrInvalidAttribute = errors.New("segbar: invalid attribute")
)

// ProgressError describes a rejected progress value.
// It unwraps to ErrNegativeProgress or ErrProgressOutOfBounds.
type ProgressError struct {
	Value        int
	SegmentCount int
	Err          error
}

func (e *ProgressError) Error() string {
	return fmt.Sprintf("%v: progress=%d, segments=%d", e.Err, e.Value, e.SegmentCount)
}

func (e *ProgressError) Unwrap() error {
	return e.Err
}

// checkProgress enforces 0 <= progress <= count.
func checkProgress(progress, count int) error {
	switch {
	case progress < 0:
		return &ProgressError{Value: progress, SegmentCount: count, Err: ErrNegativeProgress}
	case progress > count:
		return &ProgressError{Value: progress, SegmentCount: count, Err: ErrProgressOutOfBounds}
	}
	return nil
}
