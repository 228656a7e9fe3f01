package universe

import (
	"fmt"

	"github.com/pkg/errors"
)

//Axis names the grid dimension an index is checked against
type Axis string

const (
	AxisWidth  Axis = "width"
	AxisHeight Axis = "height"
)

//BoundsError reports a coordinate lying outside the universe grid.
//Direct cell access never wraps around the edges, so the error is returned
//even when the universe is toroidal.
type BoundsError struct {
	Axis  Axis
	Index int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("Given index (%d) exceeds the %s of the Universe.", e.Index, e.Axis)
}

//configuration errors
var (
	//ErrBadDimensions rejects construction with a non-positive width or height
	ErrBadDimensions = errors.New("universe: width and height must be positive")
	//ErrDimensionsFixed rejects any attempt to change the universe
	//dimensions after construction
	ErrDimensionsFixed = errors.New("universe: dimensions have been already set and cannot change during the simulation")
)
