package core

import (
	"errors"
	"fmt"
)

// Error classes. Concrete errors wrap one of these so callers can branch
// with errors.Is regardless of which package produced them.
var (
	// ErrConfig marks invalid user input detected before any generation.
	ErrConfig = errors.New("configuration error")

	// ErrInvalidLevel is returned for negative recursion levels.
	ErrInvalidLevel = fmt.Errorf("%w: level must be a non-negative integer", ErrConfig)

	// ErrGeneration marks an internal inconsistency while rewriting a curve.
	ErrGeneration = errors.New("generation error")

	// ErrResource marks a missing encoder, display or unwritable file.
	ErrResource = errors.New("resource error")
)

// Code is a coarse error category used for logging and exit status.
type Code string

const (
	CodeUnknown    Code = "unknown"
	CodeConfig     Code = "config"
	CodeGeneration Code = "generation"
	CodeResource   Code = "resource"
)

// Classify maps err onto a Code using sentinel matching only.
func Classify(err error) Code {
	switch {
	case err == nil:
		return CodeUnknown
	case errors.Is(err, ErrConfig):
		return CodeConfig
	case errors.Is(err, ErrGeneration):
		return CodeGeneration
	case errors.Is(err, ErrResource):
		return CodeResource
	default:
		return CodeUnknown
	}
}

// ExitCode converts an error class to a process exit status.
func ExitCode(err error) int {
	switch Classify(err) {
	case CodeConfig:
		return 2
	case CodeGeneration:
		return 3
	case CodeResource:
		return 4
	default:
		if err == nil {
			return 0
		}
		return 1
	}
}
