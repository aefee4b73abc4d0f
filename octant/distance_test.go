package octant

import (
	"math"
	"math/bits"
	"testing"

	"go.viam.com/test"
)

func TestHammingDistance(t *testing.T) {
	test.That(t, HammingDistance(SouthWestLow, SouthWestLow), test.ShouldEqual, 0)
	test.That(t, HammingDistance(SouthWestLow, SouthEastLow), test.ShouldEqual, 1)
	test.That(t, HammingDistance(SouthWestLow, NorthEastLow), test.ShouldEqual, 2)
	test.That(t, HammingDistance(SouthWestLow, NorthEastHigh), test.ShouldEqual, 3)

	for a := uint8(0); a < NumOctants; a++ {
		for b := uint8(0); b < NumOctants; b++ {
			got := HammingDistance(New(a), New(b))
			test.That(t, got, test.ShouldEqual, uint8(bits.OnesCount8(a^b)))
			test.That(t, got, test.ShouldEqual, HammingDistance(New(b), New(a)))
		}
	}
}

func TestEuclideanDistance(t *testing.T) {
	t.Run("half unit cube", func(t *testing.T) {
		test.That(t, EuclideanDistance(SouthWestLow, SouthWestLow, false), test.ShouldEqual, 0)
		test.That(t, EuclideanDistance(SouthWestLow, SouthEastLow, false), test.ShouldEqual, 1)
		test.That(t, EuclideanDistance(SouthWestLow, NorthEastLow, false), test.ShouldAlmostEqual, math.Sqrt2)
		test.That(t, EuclideanDistance(SouthWestLow, NorthEastHigh, false), test.ShouldAlmostEqual, math.Sqrt(3))
	})

	t.Run("unit cube doubles every distance", func(t *testing.T) {
		for a := uint8(0); a < NumOctants; a++ {
			for b := uint8(0); b < NumOctants; b++ {
				half := EuclideanDistance(New(a), New(b), false)
				full := EuclideanDistance(New(a), New(b), true)
				test.That(t, full, test.ShouldAlmostEqual, 2*half)
			}
		}
	})
}

func TestConnectionBetween(t *testing.T) {
	test.That(t, ConnectionBetween(SouthEastHigh, SouthEastHigh), test.ShouldEqual, ConnectionSame)
	test.That(t, ConnectionBetween(SouthWestLow, SouthEastLow), test.ShouldEqual, ConnectionEdge)
	test.That(t, ConnectionBetween(SouthWestLow, NorthEastLow), test.ShouldEqual, ConnectionFaceDiagonal)
	test.That(t, ConnectionBetween(SouthWestLow, NorthEastHigh), test.ShouldEqual, ConnectionSpaceDiagonal)

	test.That(t, ConnectionSame.String(), test.ShouldEqual, "same")
	test.That(t, ConnectionEdge.String(), test.ShouldEqual, "edge")
	test.That(t, ConnectionFaceDiagonal.String(), test.ShouldEqual, "face diagonal")
	test.That(t, ConnectionSpaceDiagonal.String(), test.ShouldEqual, "space diagonal")
}
