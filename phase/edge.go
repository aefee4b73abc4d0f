package phase

import (
	"github.com/pkg/errors"

	"github.com/octomesh/spatial/geometry"
	"github.com/octomesh/spatial/octant"
)

// Edge is one of the twelve edges of a cube, described by the two octant
// corners it connects and the axis it runs parallel to. From and To always
// differ along exactly that axis, with From on its negative side.
type Edge struct {
	From octant.Octant
	To   octant.Octant
	Axis geometry.Axis
}

// phaseEdges assigns each phase its cube edge. Phases 0 to 3 take the
// X-parallel edges, 4 to 7 the Y-parallel edges and 8 to 11 the vertical
// Z-parallel edges.
var phaseEdges = [NumPhases]Edge{
	{octant.SouthWestLow, octant.SouthEastLow, geometry.AxisX},
	{octant.NorthWestLow, octant.NorthEastLow, geometry.AxisX},
	{octant.SouthWestHigh, octant.SouthEastHigh, geometry.AxisX},
	{octant.NorthWestHigh, octant.NorthEastHigh, geometry.AxisX},
	{octant.SouthWestLow, octant.NorthWestLow, geometry.AxisY},
	{octant.SouthEastLow, octant.NorthEastLow, geometry.AxisY},
	{octant.SouthWestHigh, octant.NorthWestHigh, geometry.AxisY},
	{octant.SouthEastHigh, octant.NorthEastHigh, geometry.AxisY},
	{octant.SouthWestLow, octant.SouthWestHigh, geometry.AxisZ},
	{octant.SouthEastLow, octant.SouthEastHigh, geometry.AxisZ},
	{octant.NorthWestLow, octant.NorthWestHigh, geometry.AxisZ},
	{octant.NorthEastLow, octant.NorthEastHigh, geometry.AxisZ},
}

// Edge returns the cube edge assigned to the phase.
func (p Phase) Edge() Edge {
	return phaseEdges[p.norm()]
}

// EdgeBetween finds the phase whose cube edge connects the two octants, in
// either direction. It errors when the octants are not edge adjacent.
func EdgeBetween(a, b octant.Octant) (Phase, error) {
	for i, e := range phaseEdges {
		if (e.From == a && e.To == b) || (e.From == b && e.To == a) {
			return Phase(i), nil
		}
	}
	return 0, errors.Errorf("octants %v and %v share no cube edge", a, b)
}
