package ocr

import "fmt"

// AcquisitionError marks a failure of an external acquisition tool, so callers
// can distinguish a broken host (missing binary, crash) from a bad document.
type AcquisitionError struct {
	Tool string
	Err  error
}

func (e *AcquisitionError) Error() string {
	return fmt.Sprintf("%s: %v", e.Tool, e.Err)
}

func (e *AcquisitionError) Unwrap() error {
	return e.Err
}
