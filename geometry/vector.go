// Package geometry provides the axis-aligned primitives the spatial index is built on.
package geometry

import "github.com/golang/geo/r3"

// NewVector is a convenience method to create an r3.Vector.
func NewVector(x, y, z float64) r3.Vector {
	return r3.Vector{X: x, Y: y, Z: z}
}
