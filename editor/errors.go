package editor

import "errors"

// ErrCancelled is returned when the user declines to overwrite an existing
// output file. It maps to a clean exit, not a failure.
var ErrCancelled = errors.New("operation cancelled")

// RangeError reports start/end times that are invalid against the actual
// clip duration.
type RangeError struct {
	Start    float64
	End      float64
	Duration float64
	Reason   string
}

func (e *RangeError) Error() string {
	return "invalid range: " + e.Reason
}

// EmptyResultError reports a removal that spans the entire clip.
type EmptyResultError struct{}

func (e *EmptyResultError) Error() string {
	return "cannot remove entire video"
}
