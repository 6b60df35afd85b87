package convert

import (
	"errors"
	"fmt"
)

// ErrNilDocument is returned when Convert is called without a document.
var ErrNilDocument = errors.New("nil document")

// ConversionError reports that a conversion produced no report.
type ConversionError struct {
	Stage string
	Cause error
}

func (e *ConversionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("conversion failed during %s: %v", e.Stage, e.Cause)
	}
	return fmt.Sprintf("conversion failed during %s", e.Stage)
}

func (e *ConversionError) Unwrap() error {
	return e.Cause
}
