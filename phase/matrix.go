package phase

import (
	"fmt"

	"github.com/octomesh/spatial/octant"
)

// Matrix is a dense phase-by-octant grid holding one value of type T per
// (phase, octant) pair. The typed accessors are total because both index
// types are self-normalizing; the raw integer accessors panic when handed an
// index outside the grid.
type Matrix[T any] struct {
	cells [NumPhases][octant.NumOctants]T
}

// NewMatrix creates a Matrix holding the zero value of T in every cell.
func NewMatrix[T any]() *Matrix[T] {
	return &Matrix[T]{}
}

// NewUniformMatrix creates a Matrix holding v in every cell.
func NewUniformMatrix[T any](v T) *Matrix[T] {
	m := NewMatrix[T]()
	m.Fill(v)
	return m
}

// At returns the value stored for the given phase and octant.
func (m *Matrix[T]) At(p Phase, o octant.Octant) T {
	return m.cells[p.norm()][o.Value()]
}

// Set stores a value for the given phase and octant.
func (m *Matrix[T]) Set(p Phase, o octant.Octant, v T) {
	m.cells[p.norm()][o.Value()] = v
}

// AtIndex returns the value at the raw indices. It panics when either index
// is out of range.
func (m *Matrix[T]) AtIndex(phaseIdx, octantIdx int) T {
	m.checkIndex(phaseIdx, octantIdx)
	return m.cells[phaseIdx][octantIdx]
}

// SetIndex stores a value at the raw indices. It panics when either index is
// out of range.
func (m *Matrix[T]) SetIndex(phaseIdx, octantIdx int, v T) {
	m.checkIndex(phaseIdx, octantIdx)
	m.cells[phaseIdx][octantIdx] = v
}

func (m *Matrix[T]) checkIndex(phaseIdx, octantIdx int) {
	if phaseIdx < 0 || phaseIdx >= NumPhases {
		panic(fmt.Sprintf("phase index %d out of range [0, %d)", phaseIdx, NumPhases))
	}
	if octantIdx < 0 || octantIdx >= octant.NumOctants {
		panic(fmt.Sprintf("octant index %d out of range [0, %d)", octantIdx, octant.NumOctants))
	}
}

// Row returns a copy of all octant cells for one phase.
func (m *Matrix[T]) Row(p Phase) [octant.NumOctants]T {
	return m.cells[p.norm()]
}

// Fill stores v in every cell.
func (m *Matrix[T]) Fill(v T) {
	for p := range m.cells {
		for o := range m.cells[p] {
			m.cells[p][o] = v
		}
	}
}

// Apply invokes fn on every cell in phase-major order, handing it a pointer
// through which the cell can be updated in place.
func (m *Matrix[T]) Apply(fn func(Phase, octant.Octant, *T)) {
	for p := range m.cells {
		for o := range m.cells[p] {
			fn(Phase(p), octant.New(uint8(o)), &m.cells[p][o])
		}
	}
}
