package lakenames

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingFeatures indicates a polygon source without a "features" array.
	ErrMissingFeatures = errors.New("feature collection has no features array")

	// ErrNotAnArray indicates a point source whose top-level value is not an array.
	ErrNotAnArray = errors.New("point source is not a JSON array")

	// ErrMissingCoordinate indicates a point without lat or lon.
	ErrMissingCoordinate = errors.New("missing coordinate")
)

// ErrInvalidCoordinate indicates a coordinate that is not a finite number
type ErrInvalidCoordinate struct {
	Field string
	Value any
}

func (e *ErrInvalidCoordinate) Error() string {
	return fmt.Sprintf("invalid coordinate: %s=%v", e.Field, e.Value)
}

// ErrInvalidGeometry indicates a feature geometry that cannot be indexed
type ErrInvalidGeometry struct {
	Type   string
	Reason string
}

func (e *ErrInvalidGeometry) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("invalid geometry (%s): %s", e.Type, e.Reason)
	}
	return fmt.Sprintf("invalid geometry: %s", e.Reason)
}
