// Package octant encodes the eight octants of 3D space in three bits and
// provides geometric operations over them.
//
// Bit 0 carries the X sign, bit 1 the Y sign and bit 2 the Z sign. A set bit
// means the positive side of the corresponding axis, so index 0 is the
// all-negative octant and index 7 the all-positive one.
package octant

import (
	"github.com/golang/geo/r3"
)

// NumOctants is the number of octants 3D space divides into.
const NumOctants = 8

// Octant identifies one of the eight octants of 3D space.
type Octant uint8

// The eight octants by compass name. East/west is the X axis, north/south
// the Y axis and high/low the Z axis.
const (
	SouthWestLow  Octant = iota // (-,-,-)
	SouthEastLow                // (+,-,-)
	NorthWestLow                // (-,+,-)
	NorthEastLow                // (+,+,-)
	SouthWestHigh               // (-,-,+)
	SouthEastHigh               // (+,-,+)
	NorthWestHigh               // (-,+,+)
	NorthEastHigh               // (+,+,+)
)

// New creates an Octant from a raw index. Only the low three bits are kept,
// so any value maps onto a valid octant.
func New(value uint8) Octant {
	return Octant(value & 0x7)
}

// FromSigns creates the Octant on the given side of each axis.
func FromSigns(xPositive, yPositive, zPositive bool) Octant {
	var o Octant
	if xPositive {
		o |= 1
	}
	if yPositive {
		o |= 2
	}
	if zPositive {
		o |= 4
	}
	return o
}

// FromCoords classifies a point relative to the origin. Coordinates equal to
// zero count as positive.
func FromCoords(x, y, z float64) Octant {
	return FromSigns(x >= 0, y >= 0, z >= 0)
}

// FromPosition classifies a point relative to the given center. Coordinates
// on the dividing planes count as positive.
func FromPosition(p, center r3.Vector) Octant {
	return FromSigns(p.X >= center.X, p.Y >= center.Y, p.Z >= center.Z)
}

// Value returns the octant index in [0, 7].
func (o Octant) Value() uint8 {
	return uint8(o)
}

// XPositive reports whether the octant lies on the positive side of the X axis.
func (o Octant) XPositive() bool {
	return o&1 != 0
}

// YPositive reports whether the octant lies on the positive side of the Y axis.
func (o Octant) YPositive() bool {
	return o&2 != 0
}

// ZPositive reports whether the octant lies on the positive side of the Z axis.
func (o Octant) ZPositive() bool {
	return o&4 != 0
}

// Signs returns the octant corner of the cube spanning [-1, 1] on every axis,
// with each component either -1 or +1.
func (o Octant) Signs() (x, y, z int) {
	x, y, z = -1, -1, -1
	if o.XPositive() {
		x = 1
	}
	if o.YPositive() {
		y = 1
	}
	if o.ZPositive() {
		z = 1
	}
	return x, y, z
}

// String renders the octant as its three axis signs, X first, e.g. "+-+".
func (o Octant) String() string {
	signs := make([]byte, 3)
	for i, positive := range []bool{o.XPositive(), o.YPositive(), o.ZPositive()} {
		if positive {
			signs[i] = '+'
		} else {
			signs[i] = '-'
		}
	}
	return string(signs)
}
