package octant

import (
	"fmt"
	"math"
)

// Connection classifies how two octant corners of a cube relate to each
// other. The classes correspond to Hamming distances 0 through 3.
type Connection uint8

// The four octant connection classes.
const (
	ConnectionSame Connection = iota
	ConnectionEdge
	ConnectionFaceDiagonal
	ConnectionSpaceDiagonal
)

// String returns the name of the connection class.
func (c Connection) String() string {
	switch c {
	case ConnectionSame:
		return "same"
	case ConnectionEdge:
		return "edge"
	case ConnectionFaceDiagonal:
		return "face diagonal"
	case ConnectionSpaceDiagonal:
		return "space diagonal"
	}
	return fmt.Sprintf("Connection(%d)", uint8(c))
}

// HammingDistance returns the number of axes along which the two octants
// differ, in [0, 3].
func HammingDistance(a, b Octant) uint8 {
	v := a.Value() ^ b.Value()
	return v&1 + v>>1&1 + v>>2&1
}

// EuclideanDistance returns the distance between the corners the two octants
// occupy on a cube. With unitCube set the cube spans [-1, 1] on every axis
// and the possible distances are 0, 2, 2*sqrt(2) and 2*sqrt(3). Otherwise the
// cube spans [-0.5, 0.5] and the distances are 0, 1, sqrt(2) and sqrt(3).
func EuclideanDistance(a, b Octant, unitCube bool) float64 {
	d := math.Sqrt(float64(HammingDistance(a, b)))
	if unitCube {
		return 2 * d
	}
	return d
}

// ConnectionBetween classifies the relationship between two octants. Octants
// at Hamming distance 1 share a cube edge, at distance 2 a face diagonal and
// at distance 3 the space diagonal.
func ConnectionBetween(a, b Octant) Connection {
	return Connection(HammingDistance(a, b))
}
