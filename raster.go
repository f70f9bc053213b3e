package pixelgeom

import (
	"image"
	"image/color"
	"image/draw"
	"iter"
	"math"
)

// DDAPoints rasterizes l with the digital differential analyzer: the major
// axis advances one pixel per step and both coordinates accumulate
// fractional increments that are rounded on output. A zero-length segment
// yields its single rounded pixel.
func DDAPoints(l Line) iter.Seq[image.Point] {
	return func(yield func(image.Point) bool) {
		d := l.P1.Sub(l.P0)
		steps := int(max(math.Abs(d.X), math.Abs(d.Y)))
		if steps == 0 {
			yield(l.P0.Round())
			return
		}
		xInc := d.X / float64(steps)
		yInc := d.Y / float64(steps)
		x, y := l.P0.X, l.P0.Y
		for range steps + 1 {
			if !yield(Pt(x, y).Round()) {
				return
			}
			x += xInc
			y += yInc
		}
	}
}

// BresenhamPoints rasterizes the segment from p0 to p1 with Bresenham's
// midpoint algorithm, using integer arithmetic only. The driving axis is
// whichever has the larger absolute delta; ties drive along x.
func BresenhamPoints(p0, p1 image.Point) iter.Seq[image.Point] {
	return func(yield func(image.Point) bool) {
		dx := iabs(p1.X - p0.X)
		dy := iabs(p1.Y - p0.Y)
		sx, sy := 1, 1
		if p1.X < p0.X {
			sx = -1
		}
		if p1.Y < p0.Y {
			sy = -1
		}

		x, y := p0.X, p0.Y
		if dx >= dy {
			p := 2*dy - dx
			for range dx + 1 {
				if !yield(image.Pt(x, y)) {
					return
				}
				x += sx
				if p >= 0 {
					y += sy
					p += 2 * (dy - dx)
				} else {
					p += 2 * dy
				}
			}
		} else {
			p := 2*dx - dy
			for range dy + 1 {
				if !yield(image.Pt(x, y)) {
					return
				}
				y += sy
				if p >= 0 {
					x += sx
					p += 2 * (dx - dy)
				} else {
					p += 2 * dx
				}
			}
		}
	}
}

// EllipsePoints rasterizes the outline of the axis-aligned ellipse with the
// given center and radii using the midpoint algorithm. Points are computed
// in the first quadrant and emitted with 4-way symmetry, region 1 (slope
// magnitude below 1) first, then region 2 down to y = 0. Non-positive radii
// yield no points.
func EllipsePoints(center image.Point, rx, ry int) iter.Seq[image.Point] {
	return func(yield func(image.Point) bool) {
		if rx <= 0 || ry <= 0 {
			return
		}

		emit := func(x, y int) bool {
			return yield(image.Pt(center.X+x, center.Y+y)) &&
				yield(image.Pt(center.X-x, center.Y+y)) &&
				yield(image.Pt(center.X+x, center.Y-y)) &&
				yield(image.Pt(center.X-x, center.Y-y))
		}

		rx2 := float64(rx * rx)
		ry2 := float64(ry * ry)
		x, y := 0, ry

		p1 := ry2 - rx2*float64(ry) + 0.25*rx2
		if !emit(x, y) {
			return
		}
		for 2*ry2*float64(x) <= 2*rx2*float64(y) {
			x++
			if p1 < 0 {
				p1 += 2*ry2*float64(x) + ry2
			} else {
				y--
				p1 += 2*ry2*float64(x) - 2*rx2*float64(y) + ry2
			}
			if !emit(x, y) {
				return
			}
		}

		p2 := ry2*(float64(x)+0.5)*(float64(x)+0.5) + rx2*float64(y-1)*float64(y-1) - rx2*ry2
		for y > 0 {
			y--
			if p2 > 0 {
				p2 += rx2 - 2*rx2*float64(y)
			} else {
				x++
				p2 += 2*ry2*float64(x) + rx2 - 2*rx2*float64(y)
			}
			if !emit(x, y) {
				return
			}
		}
	}
}

// DrawPoints writes every point of pts that falls within dst's bounds,
// silently dropping the rest.
func DrawPoints(dst draw.Image, c color.Color, pts iter.Seq[image.Point]) {
	bounds := dst.Bounds()
	for pt := range pts {
		if pt.In(bounds) {
			dst.Set(pt.X, pt.Y, c)
		}
	}
}

func iabs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
