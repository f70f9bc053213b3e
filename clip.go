package pixelgeom

import "errors"

// Outcode is a 4-bit classification of a point's position relative to the
// four edges of a clip window. The zero value means the point is inside the
// window (its boundary included).
type Outcode uint8

const (
	OutcodeLeft Outcode = 1 << iota
	OutcodeRight
	OutcodeBottom
	OutcodeTop
)

// ComputeOutcode classifies pt against window. The left/right and
// bottom/top tests are mutually exclusive per axis, so at most one bit per
// axis is set.
func ComputeOutcode(pt Point, window Rect) Outcode {
	var code Outcode
	if pt.X < window.X0 {
		code |= OutcodeLeft
	} else if pt.X > window.X1 {
		code |= OutcodeRight
	}
	if pt.Y < window.Y0 {
		code |= OutcodeBottom
	} else if pt.Y > window.Y1 {
		code |= OutcodeTop
	}
	return code
}

var (
	// ErrInvalidWindow is returned when a clip window is degenerate
	// (X0 > X1 or Y0 > Y1) or contains non-finite coordinates.
	ErrInvalidWindow = errors.New("pixelgeom: invalid clip window")

	// ErrInvalidSegment is returned when a segment contains non-finite
	// coordinates.
	ErrInvalidSegment = errors.New("pixelgeom: invalid segment")
)

func validateClip(l Line, window Rect) error {
	if window.IsNaN() || window.IsInf() || window.IsEmpty() {
		return ErrInvalidWindow
	}
	// Infinite endpoints would turn the edge-intersection math below into
	// Inf-Inf, which is NaN, and a NaN coordinate passes every outcode
	// test.
	if l.IsNaN() || l.IsInf() {
		return ErrInvalidSegment
	}
	return nil
}

// ClipCohenSutherland clips l to window using the Cohen-Sutherland outcode
// algorithm. It returns the sub-segment of l inside the window, or
// inside == false if no part of l lies inside. The window's boundary counts
// as inside.
func ClipCohenSutherland(l Line, window Rect) (clipped Line, inside bool, err error) {
	if err := validateClip(l, window); err != nil {
		return Line{}, false, err
	}

	p0, p1 := l.P0, l.P1
	code0 := ComputeOutcode(p0, window)
	code1 := ComputeOutcode(p1, window)
	for {
		if code0|code1 == 0 {
			// Trivial accept.
			return Line{P0: p0, P1: p1}, true, nil
		}
		if code0&code1 != 0 {
			// Trivial reject: both endpoints are past the same edge.
			return Line{}, false, nil
		}

		codeOut := code0
		if codeOut == 0 {
			codeOut = code1
		}

		// A set top/bottom bit means exactly one endpoint is past that
		// horizontal edge; were both past it, the shared bit would have
		// forced the trivial reject above. The y denominators below are
		// therefore nonzero, and likewise the x denominators for
		// left/right.
		var pt Point
		switch {
		case codeOut&OutcodeTop != 0:
			pt = Pt(p0.X+(p1.X-p0.X)*(window.Y1-p0.Y)/(p1.Y-p0.Y), window.Y1)
		case codeOut&OutcodeBottom != 0:
			pt = Pt(p0.X+(p1.X-p0.X)*(window.Y0-p0.Y)/(p1.Y-p0.Y), window.Y0)
		case codeOut&OutcodeRight != 0:
			pt = Pt(window.X1, p0.Y+(p1.Y-p0.Y)*(window.X1-p0.X)/(p1.X-p0.X))
		default:
			pt = Pt(window.X0, p0.Y+(p1.Y-p0.Y)*(window.X0-p0.X)/(p1.X-p0.X))
		}

		// Each replacement moves the offending endpoint onto a window
		// edge, clearing at least that edge's bit, so the loop terminates
		// after at most four productive iterations.
		if codeOut == code0 {
			p0 = pt
			code0 = ComputeOutcode(p0, window)
		} else {
			p1 = pt
			code1 = ComputeOutcode(p1, window)
		}
	}
}

// ClipLiangBarsky clips l to window using the Liang-Barsky parametric
// algorithm. It returns the sub-segment of l inside the window, or
// inside == false if no part of l lies inside. The window's boundary counts
// as inside.
//
// ClipLiangBarsky agrees with [ClipCohenSutherland] up to floating-point
// tolerance for every segment and window.
func ClipLiangBarsky(l Line, window Rect) (clipped Line, inside bool, err error) {
	if err := validateClip(l, window); err != nil {
		return Line{}, false, err
	}

	d := l.P1.Sub(l.P0)
	p := [4]float64{-d.X, d.X, -d.Y, d.Y}
	q := [4]float64{
		l.P0.X - window.X0,
		window.X1 - l.P0.X,
		l.P0.Y - window.Y0,
		window.Y1 - l.P0.Y,
	}

	u1, u2 := 0.0, 1.0
	for i := range p {
		if p[i] == 0 {
			// Parallel to this boundary; outside it means outside the
			// window.
			if q[i] < 0 {
				return Line{}, false, nil
			}
			continue
		}
		t := q[i] / p[i]
		if p[i] < 0 {
			u1 = max(u1, t)
		} else {
			u2 = min(u2, t)
		}
	}
	if u1 > u2 {
		return Line{}, false, nil
	}
	return l.Subsegment(u1, u2), true, nil
}
