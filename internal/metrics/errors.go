package metrics

import "errors"

var (
	// ErrShapeMismatch indicates two grids that must share dimensions do not
	ErrShapeMismatch = errors.New("grid dimensions do not match")

	// ErrImageTooSmall indicates a grid smaller than the operator footprint
	ErrImageTooSmall = errors.New("grid smaller than operator footprint")
)
