package baseline

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input workbook does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file could not be loaded as an xlsx workbook.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrUnknownScenario indicates no extractor is registered under the requested name.
var ErrUnknownScenario = errors.New("unknown scenario")

// ErrInvalidBaseline indicates an existing baseline file is not a valid baseline document.
var ErrInvalidBaseline = errors.New("invalid baseline document")

// MappingError represents a failure to apply one cell binding.
type MappingError struct {
	Path string // dotted expected-value path
	Ref  string // cell reference as written in the mapping
	Err  error
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("mapping %s <- %s: %v", e.Path, e.Ref, e.Err)
}

func (e *MappingError) Unwrap() error {
	return e.Err
}

// NewMappingError creates a new MappingError.
func NewMappingError(path, ref string, err error) *MappingError {
	return &MappingError{
		Path: path,
		Ref:  ref,
		Err:  err,
	}
}
