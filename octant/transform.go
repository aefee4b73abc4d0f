package octant

// Rotation lookup tables, indexed by [octant][normalized angle / 90].
// Rotating about an axis leaves that axis untouched and permutes the other
// two. Positive angles are counter-clockwise when looking from the positive
// end of the rotation axis.
var (
	rotateXTable = [NumOctants][4]Octant{
		// 0    90   180  270
		{0, 2, 4, 6},
		{1, 3, 5, 7},
		{2, 4, 6, 0},
		{3, 5, 7, 1},
		{4, 6, 0, 2},
		{5, 7, 1, 3},
		{6, 0, 2, 4},
		{7, 1, 3, 5},
	}
	rotateYTable = [NumOctants][4]Octant{
		{0, 1, 4, 5},
		{1, 4, 5, 0},
		{2, 3, 6, 7},
		{3, 6, 7, 2},
		{4, 5, 0, 1},
		{5, 0, 1, 4},
		{6, 7, 2, 3},
		{7, 2, 3, 6},
	}
	rotateZTable = [NumOctants][4]Octant{
		{0, 2, 3, 1},
		{1, 0, 2, 3},
		{2, 3, 1, 0},
		{3, 1, 0, 2},
		{4, 6, 7, 5},
		{5, 4, 6, 7},
		{6, 7, 5, 4},
		{7, 5, 4, 6},
	}
)

// normalizeAngle reduces an angle in degrees to a quarter-turn index in
// [0, 3]. Angles between the 90 degree steps truncate to the step below.
func normalizeAngle(degrees int) int {
	return (degrees%360 + 360) % 360 / 90
}

// RotateX rotates the octant about the X axis by the given angle in degrees.
func RotateX(o Octant, degrees int) Octant {
	return rotateXTable[o.Value()][normalizeAngle(degrees)]
}

// RotateY rotates the octant about the Y axis by the given angle in degrees.
func RotateY(o Octant, degrees int) Octant {
	return rotateYTable[o.Value()][normalizeAngle(degrees)]
}

// RotateZ rotates the octant about the Z axis by the given angle in degrees.
func RotateZ(o Octant, degrees int) Octant {
	return rotateZTable[o.Value()][normalizeAngle(degrees)]
}

// ReflectXY mirrors the octant across the XY plane, negating its Z sign.
func ReflectXY(o Octant) Octant {
	return o ^ 0x4
}

// ReflectXZ mirrors the octant across the XZ plane, negating its Y sign.
func ReflectXZ(o Octant) Octant {
	return o ^ 0x2
}

// ReflectYZ mirrors the octant across the YZ plane, negating its X sign.
func ReflectYZ(o Octant) Octant {
	return o ^ 0x1
}

// Invert negates all three signs, yielding the octant through the cube center.
func Invert(o Octant) Octant {
	return o ^ 0x7
}

// Opposite is the octant diagonally across the cube, the sole octant at
// Hamming distance 3. It is identical to Invert.
func Opposite(o Octant) Octant {
	return Invert(o)
}

// EdgeNeighbors returns the three octants sharing a cube edge with o, each
// differing from it along exactly one axis.
func EdgeNeighbors(o Octant) [3]Octant {
	return [3]Octant{o ^ 0x1, o ^ 0x2, o ^ 0x4}
}

// FaceNeighbors returns the three octants across a face diagonal from o, each
// differing from it along exactly two axes.
func FaceNeighbors(o Octant) [3]Octant {
	return [3]Octant{o ^ 0x3, o ^ 0x5, o ^ 0x6}
}
