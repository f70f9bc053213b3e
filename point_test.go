package pixelgeom

import (
	"image"
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
	diff(t, Pt(3, 7).Sub(Pt(1, 2)), Vec(2, 5))
	diff(t, Pt(0, 0).Lerp(Pt(10, 20), 0.5), Pt(5, 10))
	diff(t, Pt(2, 2).Midpoint(Pt(15, 10)), Pt(8.5, 6))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
}

func TestVecProducts(t *testing.T) {
	if d := Vec(1, 2).Dot(Vec(3, 4)); d != 11 {
		t.Errorf("got dot product %v, want 11", d)
	}
	if c := Vec(1, 2).Cross(Vec(3, 4)); c != -2 {
		t.Errorf("got cross product %v, want -2", c)
	}
	if h := Vec(3, 4).Hypot2(); h != 25 {
		t.Errorf("got squared length %v, want 25", h)
	}
	diff(t, Vec(-1, 2).Lerp(Vec(3, 2), 0.25), Vec(0, 2))
	diff(t, Vec(1, 2).Sub(Vec(3, 1)), Vec(-2, 1))
}

func TestVecSpecialValues(t *testing.T) {
	if Vec(1, 2).IsInf() || Vec(1, 2).IsNaN() {
		t.Error("finite vector reported as non-finite")
	}
	if !Vec(math.Inf(-1), 0).IsInf() {
		t.Error("infinite vector not detected")
	}
	if !Vec(0, math.NaN()).IsNaN() {
		t.Error("NaN vector not detected")
	}
}

func TestPointRound(t *testing.T) {
	diff(t, image.Pt(4, -3), Pt(4.4, -2.6).Round())
	diff(t, image.Pt(5, -2), Pt(4.5, -2.4).Round())
}
