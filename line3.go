package pixelgeom

// Line3 represents a directed line segment in 3D from P0 to P1, such as one
// edge of a wireframe.
type Line3 struct {
	P0 Point3
	P1 Point3
}

// Length returns the length of the line.
func (l Line3) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// Eval evaluates the segment parametrically at t, with t = 0 at P0 and
// t = 1 at P1.
func (l Line3) Eval(t float64) Point3 {
	return l.P0.Lerp(l.P1, t)
}

// Midpoint returns the midpoint of the segment.
func (l Line3) Midpoint() Point3 {
	return l.P0.Midpoint(l.P1)
}

func (l Line3) Translate(v Vec3) Line3 {
	return Line3{
		P0: l.P0.Translate(v),
		P1: l.P1.Translate(v),
	}
}

func (l Line3) Transform(aff Affine3) Line3 {
	return Line3{
		P0: l.P0.Transform(aff),
		P1: l.P1.Transform(aff),
	}
}

func (l Line3) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line3) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}
