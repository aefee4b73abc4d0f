package phase

import (
	"testing"

	"go.viam.com/test"

	"github.com/octomesh/spatial/octant"
)

func TestMatrixZeroValue(t *testing.T) {
	m := NewMatrix[int]()
	for p := 0; p < NumPhases; p++ {
		for o := uint8(0); o < octant.NumOctants; o++ {
			test.That(t, m.At(New(p), octant.New(o)), test.ShouldEqual, 0)
		}
	}
}

func TestMatrixSetAndAt(t *testing.T) {
	m := NewMatrix[string]()
	m.Set(New(3), octant.SouthEastHigh, "sunset")
	m.Set(New(11), octant.NorthEastHigh, "midnight")

	test.That(t, m.At(New(3), octant.SouthEastHigh), test.ShouldEqual, "sunset")
	test.That(t, m.At(New(11), octant.NorthEastHigh), test.ShouldEqual, "midnight")
	test.That(t, m.At(New(3), octant.SouthEastLow), test.ShouldEqual, "")

	// Typed accessors normalize, so a wrapped phase hits the same cell.
	test.That(t, m.At(New(15), octant.SouthEastHigh), test.ShouldEqual, "sunset")
}

func TestMatrixUniformAndFill(t *testing.T) {
	m := NewUniformMatrix(7)
	test.That(t, m.At(New(0), octant.SouthWestLow), test.ShouldEqual, 7)
	test.That(t, m.At(New(11), octant.NorthEastHigh), test.ShouldEqual, 7)

	m.Fill(-1)
	test.That(t, m.At(New(5), octant.NorthWestLow), test.ShouldEqual, -1)
}

func TestMatrixIndexAccessors(t *testing.T) {
	m := NewMatrix[float64]()
	m.SetIndex(4, 6, 2.5)
	test.That(t, m.AtIndex(4, 6), test.ShouldEqual, 2.5)
	test.That(t, m.At(New(4), octant.NorthWestHigh), test.ShouldEqual, 2.5)
}

func TestMatrixIndexPanics(t *testing.T) {
	m := NewMatrix[int]()

	test.That(t, func() { m.AtIndex(NumPhases, 0) }, test.ShouldPanic)
	test.That(t, func() { m.AtIndex(-1, 0) }, test.ShouldPanic)
	test.That(t, func() { m.AtIndex(0, octant.NumOctants) }, test.ShouldPanic)
	test.That(t, func() { m.AtIndex(0, -1) }, test.ShouldPanic)
	test.That(t, func() { m.SetIndex(99, 0, 1) }, test.ShouldPanic)
	test.That(t, func() { m.SetIndex(0, 99, 1) }, test.ShouldPanic)

	// In-range indices must not panic.
	test.That(t, func() { m.SetIndex(NumPhases-1, octant.NumOctants-1, 1) }, test.ShouldNotPanic)
	test.That(t, m.AtIndex(NumPhases-1, octant.NumOctants-1), test.ShouldEqual, 1)
}

func TestMatrixRow(t *testing.T) {
	m := NewMatrix[int]()
	for o := uint8(0); o < octant.NumOctants; o++ {
		m.Set(New(2), octant.New(o), int(o)*10)
	}

	row := m.Row(New(2))
	test.That(t, row, test.ShouldResemble, [octant.NumOctants]int{0, 10, 20, 30, 40, 50, 60, 70})

	// Row hands back a copy, not a view.
	row[0] = 999
	test.That(t, m.At(New(2), octant.SouthWestLow), test.ShouldEqual, 0)
}

func TestMatrixApply(t *testing.T) {
	m := NewMatrix[int]()
	m.Apply(func(p Phase, o octant.Octant, cell *int) {
		*cell = int(p.Value())*octant.NumOctants + int(o.Value())
	})

	test.That(t, m.At(New(0), octant.SouthWestLow), test.ShouldEqual, 0)
	test.That(t, m.At(New(1), octant.SouthWestLow), test.ShouldEqual, 8)
	test.That(t, m.At(New(11), octant.NorthEastHigh), test.ShouldEqual, 95)

	count := 0
	m.Apply(func(Phase, octant.Octant, *int) { count++ })
	test.That(t, count, test.ShouldEqual, NumPhases*octant.NumOctants)
}
