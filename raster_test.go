package pixelgeom

import (
	"image"
	"image/color"
	"math"
	"slices"
	"testing"
)

func TestDDAPoints(t *testing.T) {
	got := slices.Collect(DDAPoints(Line{Pt(2, 2), Pt(10, 5)}))
	want := []image.Point{
		{2, 2}, {3, 2}, {4, 3}, {5, 3}, {6, 4}, {7, 4}, {8, 4}, {9, 5}, {10, 5},
	}
	diff(t, want, got)
}

func TestDDAPointsSteep(t *testing.T) {
	// y is the driving axis; exactly dy+1 pixels, one per row.
	got := slices.Collect(DDAPoints(Line{Pt(0, 0), Pt(2, 8)}))
	if len(got) != 9 {
		t.Fatalf("got %d points, want 9", len(got))
	}
	for i, pt := range got {
		if pt.Y != i {
			t.Errorf("point %d: got y=%d, want %d", i, pt.Y, i)
		}
	}
}

func TestDDAPointsDegenerate(t *testing.T) {
	got := slices.Collect(DDAPoints(Line{Pt(4.4, -2.6), Pt(4.4, -2.6)}))
	diff(t, []image.Point{{4, -3}}, got)

	// A sub-pixel segment also collapses to a single point.
	got = slices.Collect(DDAPoints(Line{Pt(4.4, -2.6), Pt(4.9, -2.2)}))
	diff(t, []image.Point{{4, -3}}, got)
}

func TestBresenhamPoints(t *testing.T) {
	got := slices.Collect(BresenhamPoints(image.Pt(2, 2), image.Pt(10, 6)))
	want := []image.Point{
		{2, 2}, {3, 3}, {4, 3}, {5, 4}, {6, 4}, {7, 5}, {8, 5}, {9, 6}, {10, 6},
	}
	diff(t, want, got)
}

func TestBresenhamPointsDirections(t *testing.T) {
	tests := []struct {
		p0, p1 image.Point
	}{
		{image.Pt(0, 0), image.Pt(7, 3)},
		{image.Pt(7, 3), image.Pt(0, 0)},
		{image.Pt(0, 0), image.Pt(3, 7)},
		{image.Pt(0, 0), image.Pt(-7, 3)},
		{image.Pt(0, 0), image.Pt(-3, -7)},
		{image.Pt(5, 5), image.Pt(5, -5)},
		{image.Pt(5, 5), image.Pt(-5, 5)},
	}
	for _, tt := range tests {
		got := slices.Collect(BresenhamPoints(tt.p0, tt.p1))
		n := max(iabs(tt.p1.X-tt.p0.X), iabs(tt.p1.Y-tt.p0.Y)) + 1
		if len(got) != n {
			t.Errorf("BresenhamPoints(%v, %v): got %d points, want %d", tt.p0, tt.p1, len(got), n)
			continue
		}
		if got[0] != tt.p0 || got[len(got)-1] != tt.p1 {
			t.Errorf("BresenhamPoints(%v, %v): runs %v to %v", tt.p0, tt.p1, got[0], got[len(got)-1])
		}
		for i := 1; i < len(got); i++ {
			d := got[i].Sub(got[i-1])
			if iabs(d.X) > 1 || iabs(d.Y) > 1 {
				t.Errorf("BresenhamPoints(%v, %v): gap between %v and %v", tt.p0, tt.p1, got[i-1], got[i])
			}
		}
	}
}

func TestBresenhamPointsDegenerate(t *testing.T) {
	got := slices.Collect(BresenhamPoints(image.Pt(3, -2), image.Pt(3, -2)))
	diff(t, []image.Point{{3, -2}}, got)
}

func TestEllipsePoints(t *testing.T) {
	// Small enough to verify against the algorithm by hand.
	got := slices.Collect(EllipsePoints(image.Pt(0, 0), 2, 1))
	want := []image.Point{
		{0, 1}, {0, 1}, {0, -1}, {0, -1},
		{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
		{2, 0}, {-2, 0}, {2, 0}, {-2, 0},
	}
	diff(t, want, got)
}

func TestEllipsePointsProperties(t *testing.T) {
	center := image.Pt(40, -7)
	const rx, ry = 30, 15
	pts := slices.Collect(EllipsePoints(center, rx, ry))

	seen := make(map[image.Point]bool, len(pts))
	for _, pt := range pts {
		seen[pt] = true
		if d := pt.Sub(center); iabs(d.X) > rx || iabs(d.Y) > ry {
			t.Errorf("point %v outside the ellipse's bounding box", pt)
		}
	}

	// The four vertices must be plotted.
	for _, want := range []image.Point{
		center.Add(image.Pt(rx, 0)),
		center.Add(image.Pt(-rx, 0)),
		center.Add(image.Pt(0, ry)),
		center.Add(image.Pt(0, -ry)),
	} {
		if !seen[want] {
			t.Errorf("vertex %v not plotted", want)
		}
	}

	// 4-way symmetry about the center.
	for pt := range seen {
		d := pt.Sub(center)
		for _, refl := range []image.Point{
			center.Add(image.Pt(-d.X, d.Y)),
			center.Add(image.Pt(d.X, -d.Y)),
			center.Add(image.Pt(-d.X, -d.Y)),
		} {
			if !seen[refl] {
				t.Errorf("point %v plotted but its reflection %v is not", pt, refl)
			}
		}
	}
}

func TestEllipsePointsDegenerate(t *testing.T) {
	if pts := slices.Collect(EllipsePoints(image.Pt(3, 3), 0, 5)); len(pts) != 0 {
		t.Errorf("got %v, want no points", pts)
	}
	if pts := slices.Collect(EllipsePoints(image.Pt(3, 3), 5, -1)); len(pts) != 0 {
		t.Errorf("got %v, want no points", pts)
	}
}

func TestDrawPoints(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 8, 8))
	white := color.RGBA{0xff, 0xff, 0xff, 0xff}
	// The segment extends past the buffer; out-of-bounds pixels are
	// dropped.
	DrawPoints(dst, white, BresenhamPoints(image.Pt(0, 0), image.Pt(11, 11)))

	for i := range 8 {
		if got := dst.RGBAAt(i, i); got != white {
			t.Errorf("pixel (%d, %d): got %v, want white", i, i, got)
		}
	}
	if got := dst.RGBAAt(3, 4); got != (color.RGBA{}) {
		t.Errorf("pixel (3, 4): got %v, want unset", got)
	}
}

func TestDrawPointsTransformed(t *testing.T) {
	// Rasterize a segment, rotate the geometry a quarter turn, and check
	// the rasterization of the rotated segment matches the rotated pixels.
	l := Line{Pt(1, 0), Pt(6, 3)}
	rotated := l.Transform(Rotate(math.Pi / 2))

	got := slices.Collect(DDAPoints(rotated))
	var want []image.Point
	for pt := range DDAPoints(l) {
		want = append(want, image.Pt(-pt.Y, pt.X))
	}
	diff(t, want, got)
}
