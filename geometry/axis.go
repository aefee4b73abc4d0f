package geometry

import "fmt"

// Axis identifies one of the three coordinate axes.
type Axis uint8

// The three coordinate axes.
const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// String returns the name of the axis.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	}
	return fmt.Sprintf("Axis(%d)", uint8(a))
}
