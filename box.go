package pixelgeom

// Box is an axis-aligned box, the 3D analogue of [Rect].
type Box struct {
	X0, Y0, Z0 float64
	X1, Y1, Z1 float64
}

// UnitBox is the unit cube with one corner at the origin.
var UnitBox = Box{0, 0, 0, 1, 1, 1}

// NewBoxFromPoints returns a box with the extents of p0 and p1, ensuring
// that all three dimensions are non-negative.
func NewBoxFromPoints(p0, p1 Point3) Box {
	return Box{p0.X, p0.Y, p0.Z, p1.X, p1.Y, p1.Z}.Abs()
}

// Abs returns a new box with the same extents as b, but ensuring that all
// three dimensions are non-negative.
func (b Box) Abs() Box {
	return Box{
		X0: min(b.X0, b.X1),
		Y0: min(b.Y0, b.Y1),
		Z0: min(b.Z0, b.Z1),
		X1: max(b.X0, b.X1),
		Y1: max(b.Y0, b.Y1),
		Z1: max(b.Z0, b.Z1),
	}
}

func (b Box) Center() Point3 {
	return Point3{
		X: 0.5 * (b.X0 + b.X1),
		Y: 0.5 * (b.Y0 + b.Y1),
		Z: 0.5 * (b.Z0 + b.Z1),
	}
}

// Contains reports whether pt lies in b, boundary included.
func (b Box) Contains(pt Point3) bool {
	return pt.X >= b.X0 && pt.X <= b.X1 &&
		pt.Y >= b.Y0 && pt.Y <= b.Y1 &&
		pt.Z >= b.Z0 && pt.Z <= b.Z1
}

func (b Box) Translate(v Vec3) Box {
	return Box{
		X0: b.X0 + v.X,
		Y0: b.Y0 + v.Y,
		Z0: b.Z0 + v.Z,
		X1: b.X1 + v.X,
		Y1: b.Y1 + v.Y,
		Z1: b.Z1 + v.Z,
	}
}

// Corners returns the box's eight corners: first the z = Z0 face counter-
// clockwise starting at (X0, Y0), then the z = Z1 face in the same order.
func (b Box) Corners() [8]Point3 {
	return [8]Point3{
		{b.X0, b.Y0, b.Z0},
		{b.X1, b.Y0, b.Z0},
		{b.X1, b.Y1, b.Z0},
		{b.X0, b.Y1, b.Z0},
		{b.X0, b.Y0, b.Z1},
		{b.X1, b.Y0, b.Z1},
		{b.X1, b.Y1, b.Z1},
		{b.X0, b.Y1, b.Z1},
	}
}

// Edges returns the box's twelve edges as segments between [Box.Corners]:
// the four edges of the z = Z0 face, the four of the z = Z1 face, and the
// four connecting them.
func (b Box) Edges() [12]Line3 {
	c := b.Corners()
	return [12]Line3{
		{c[0], c[1]}, {c[1], c[2]}, {c[2], c[3]}, {c[3], c[0]},
		{c[4], c[5]}, {c[5], c[6]}, {c[6], c[7]}, {c[7], c[4]},
		{c[0], c[4]}, {c[1], c[5]}, {c[2], c[6]}, {c[3], c[7]},
	}
}

func (b Box) IsInf() bool {
	return Point3{b.X0, b.Y0, b.Z0}.IsInf() || Point3{b.X1, b.Y1, b.Z1}.IsInf()
}

func (b Box) IsNaN() bool {
	return Point3{b.X0, b.Y0, b.Z0}.IsNaN() || Point3{b.X1, b.Y1, b.Z1}.IsNaN()
}
