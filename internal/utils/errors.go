package utils

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by the core services. The HTTP layer maps these to
// status codes with errors.Is; services wrap them with fmt.Errorf("...: %w", ...)
// so callers keep both the kind and the detail.
var (
	ErrNotFound            = errors.New("not found")
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrInvalidTimeRange    = errors.New("no fare bracket matches the estimated time")
	ErrCategoryMismatch    = errors.New("driver category matches neither role")
	ErrAlreadyAssigned     = errors.New("role already assigned")
	ErrUpstreamUnavailable = errors.New("upstream provider unavailable")
	ErrTimedOut            = errors.New("upstream call timed out")
)

func NotFoundf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrNotFound)...)
}

func InvalidArgumentf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrInvalidArgument)...)
}

func IsNotFound(err error) bool         { return errors.Is(err, ErrNotFound) }
func IsInvalidArgument(err error) bool  { return errors.Is(err, ErrInvalidArgument) }
func IsAlreadyAssigned(err error) bool  { return errors.Is(err, ErrAlreadyAssigned) }
func IsCategoryMismatch(err error) bool { return errors.Is(err, ErrCategoryMismatch) }
