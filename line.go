package pixelgeom

// Line represents a directed line segment from P0 to P1.
type Line struct {
	P0 Point
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// Eval evaluates the segment parametrically at t, with t = 0 at P0 and
// t = 1 at P1.
func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Subsegment returns the portion of the line between parameters start and
// end.
func (l Line) Subsegment(start, end float64) Line {
	return Line{l.Eval(start), l.Eval(end)}
}

// Midpoint returns the midpoint of the segment.
func (l Line) Midpoint() Point {
	return l.P0.Midpoint(l.P1)
}

// Reversed returns the segment with its direction flipped.
func (l Line) Reversed() Line {
	return Line{P0: l.P1, P1: l.P0}
}

func (l Line) Translate(v Vec2) Line {
	return Line{
		P0: l.P0.Translate(v),
		P1: l.P1.Translate(v),
	}
}

func (l Line) Transform(aff Affine) Line {
	return Line{
		P0: l.P0.Transform(aff),
		P1: l.P1.Transform(aff),
	}
}

// BoundingBox returns the smallest rectangle enclosing the segment.
func (l Line) BoundingBox() Rect {
	return Rect{
		X0: l.P0.X,
		Y0: l.P0.Y,
		X1: l.P1.X,
		Y1: l.P1.Y,
	}.Abs()
}

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}
