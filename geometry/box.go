package geometry

import (
	"fmt"

	"github.com/golang/geo/r3"

	"github.com/octomesh/spatial/utils"
)

// BoundingBox is an axis-aligned box described by its minimum and maximum
// corners. Min is assumed to not exceed Max along any axis. A box whose Min
// equals its Max is a single point and still contains that point.
type BoundingBox struct {
	Min r3.Vector
	Max r3.Vector
}

// NewBoundingBox creates a box spanning the two given corners.
func NewBoundingBox(min, max r3.Vector) BoundingBox {
	return BoundingBox{Min: min, Max: max}
}

// NewCubeBox creates a cube with the given side length centered at center.
func NewCubeBox(center r3.Vector, sideLength float64) BoundingBox {
	half := sideLength / 2.
	return BoundingBox{
		Min: NewVector(center.X-half, center.Y-half, center.Z-half),
		Max: NewVector(center.X+half, center.Y+half, center.Z+half),
	}
}

// Center returns the midpoint of the box.
func (b BoundingBox) Center() r3.Vector {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the extent of the box along each axis.
func (b BoundingBox) Size() r3.Vector {
	return b.Max.Sub(b.Min)
}

// Volume returns the volume enclosed by the box.
func (b BoundingBox) Volume() float64 {
	size := b.Size()
	return size.X * size.Y * size.Z
}

// Contains reports whether the given point lies within the box. Points on a
// face, edge or corner of the box are inside it.
func (b BoundingBox) Contains(p r3.Vector) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Intersects reports whether the two boxes overlap. Boxes that share only a
// face, an edge or a corner still intersect.
func (b BoundingBox) Intersects(other BoundingBox) bool {
	return b.Min.X <= other.Max.X && b.Max.X >= other.Min.X &&
		b.Min.Y <= other.Max.Y && b.Max.Y >= other.Min.Y &&
		b.Min.Z <= other.Max.Z && b.Max.Z >= other.Min.Z
}

// DistanceSquared returns the squared distance from p to the closest point of
// the box. It is zero when the box contains p.
func (b BoundingBox) DistanceSquared(p r3.Vector) float64 {
	return utils.Square(axisDistance(p.X, b.Min.X, b.Max.X)) +
		utils.Square(axisDistance(p.Y, b.Min.Y, b.Max.Y)) +
		utils.Square(axisDistance(p.Z, b.Min.Z, b.Max.Z))
}

// String returns a human readable representation of the box.
func (b BoundingBox) String() string {
	return fmt.Sprintf("[(%v, %v, %v), (%v, %v, %v)]",
		b.Min.X, b.Min.Y, b.Min.Z, b.Max.X, b.Max.Y, b.Max.Z)
}

func axisDistance(v, min, max float64) float64 {
	switch {
	case v < min:
		return min - v
	case v > max:
		return v - max
	}
	return 0
}
