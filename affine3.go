package pixelgeom

import (
	"iter"
	"math"
)

// Affine3 describes a 3D affine transform via coefficients, in the same
// convention as [Affine]: the coefficients are the columns of the augmented
// matrix
//
//	| N0 N3 N6 N9  |
//	| N1 N4 N7 N10 |
//	| N2 N5 N8 N11 |
//	| 0  0  0  1   |
//
// applied to column vectors, so that (A * B) * v == A * (B * v).
type Affine3 struct {
	N0, N1, N2   float64
	N3, N4, N5   float64
	N6, N7, N8   float64
	N9, N10, N11 float64
}

// Identity3 is the identity transform.
var Identity3 = Affine3{N0: 1, N4: 1, N8: 1}

// Scale3 creates an affine transform representing non-uniform scaling along
// the three axes.
func Scale3(x, y, z float64) Affine3 {
	return Affine3{N0: x, N4: y, N8: z}
}

// Translate3 creates an affine transform representing translation.
func Translate3(v Vec3) Affine3 {
	return Affine3{N0: 1, N4: 1, N8: 1, N9: v.X, N10: v.Y, N11: v.Z}
}

// RotateX creates an affine transform representing rotation by th radians
// about the x axis. A positive angle rotates the positive y direction into
// positive z.
func RotateX(th float64) Affine3 {
	sin, cos := math.Sincos(th)
	return Affine3{
		N0: 1,
		N4: cos, N5: sin,
		N7: -sin, N8: cos,
	}
}

// RotateY creates an affine transform representing rotation by th radians
// about the y axis. A positive angle rotates the positive z direction into
// positive x.
func RotateY(th float64) Affine3 {
	sin, cos := math.Sincos(th)
	return Affine3{
		N0: cos, N2: -sin,
		N4: 1,
		N6: sin, N8: cos,
	}
}

// RotateZ creates an affine transform representing rotation by th radians
// about the z axis. A positive angle rotates the positive x direction into
// positive y, matching [Rotate] in the z = 0 plane.
func RotateZ(th float64) Affine3 {
	sin, cos := math.Sincos(th)
	return Affine3{
		N0: cos, N1: sin,
		N3: -sin, N4: cos,
		N8: 1,
	}
}

// RotateAbout3 creates an affine transform representing rotation about an
// arbitrary point: axis is applied as a rotation about the origin after
// translating center there, and the translation is undone afterwards.
func RotateAbout3(axis Affine3, center Point3) Affine3 {
	c := Vec3(center)
	return Translate3(c).Mul(axis).Mul(Translate3(c.Negate()))
}

func (aff Affine3) Mul(o Affine3) Affine3 {
	return Affine3{
		N0: aff.N0*o.N0 + aff.N3*o.N1 + aff.N6*o.N2,
		N1: aff.N1*o.N0 + aff.N4*o.N1 + aff.N7*o.N2,
		N2: aff.N2*o.N0 + aff.N5*o.N1 + aff.N8*o.N2,

		N3: aff.N0*o.N3 + aff.N3*o.N4 + aff.N6*o.N5,
		N4: aff.N1*o.N3 + aff.N4*o.N4 + aff.N7*o.N5,
		N5: aff.N2*o.N3 + aff.N5*o.N4 + aff.N8*o.N5,

		N6: aff.N0*o.N6 + aff.N3*o.N7 + aff.N6*o.N8,
		N7: aff.N1*o.N6 + aff.N4*o.N7 + aff.N7*o.N8,
		N8: aff.N2*o.N6 + aff.N5*o.N7 + aff.N8*o.N8,

		N9:  aff.N0*o.N9 + aff.N3*o.N10 + aff.N6*o.N11 + aff.N9,
		N10: aff.N1*o.N9 + aff.N4*o.N10 + aff.N7*o.N11 + aff.N10,
		N11: aff.N2*o.N9 + aff.N5*o.N10 + aff.N8*o.N11 + aff.N11,
	}
}

// Determinant computes the determinant of the linear part.
func (aff Affine3) Determinant() float64 {
	return aff.N0*(aff.N4*aff.N8-aff.N7*aff.N5) -
		aff.N3*(aff.N1*aff.N8-aff.N7*aff.N2) +
		aff.N6*(aff.N1*aff.N5-aff.N4*aff.N2)
}

// Invert computes the inverse transform.
//
// Produces NaN values when the determinant is zero.
func (aff Affine3) Invert() Affine3 {
	invDet := 1 / aff.Determinant()
	inv := Affine3{
		N0: +invDet * (aff.N4*aff.N8 - aff.N7*aff.N5),
		N1: -invDet * (aff.N1*aff.N8 - aff.N7*aff.N2),
		N2: +invDet * (aff.N1*aff.N5 - aff.N4*aff.N2),

		N3: -invDet * (aff.N3*aff.N8 - aff.N6*aff.N5),
		N4: +invDet * (aff.N0*aff.N8 - aff.N6*aff.N2),
		N5: -invDet * (aff.N0*aff.N5 - aff.N3*aff.N2),

		N6: +invDet * (aff.N3*aff.N7 - aff.N6*aff.N4),
		N7: -invDet * (aff.N0*aff.N7 - aff.N6*aff.N1),
		N8: +invDet * (aff.N0*aff.N4 - aff.N3*aff.N1),
	}
	t := aff.Translation().Negate()
	inv.N9 = inv.N0*t.X + inv.N3*t.Y + inv.N6*t.Z
	inv.N10 = inv.N1*t.X + inv.N4*t.Y + inv.N7*t.Z
	inv.N11 = inv.N2*t.X + inv.N5*t.Y + inv.N8*t.Z
	return inv
}

// Translation returns the translation component of the transform.
func (aff Affine3) Translation() Vec3 {
	return Vec3{
		X: aff.N9,
		Y: aff.N10,
		Z: aff.N11,
	}
}

func (aff Affine3) IsNaN() bool {
	return math.IsNaN(aff.N0) || math.IsNaN(aff.N1) || math.IsNaN(aff.N2) ||
		math.IsNaN(aff.N3) || math.IsNaN(aff.N4) || math.IsNaN(aff.N5) ||
		math.IsNaN(aff.N6) || math.IsNaN(aff.N7) || math.IsNaN(aff.N8) ||
		math.IsNaN(aff.N9) || math.IsNaN(aff.N10) || math.IsNaN(aff.N11)
}

// Transform3 applies aff to every element of seq.
func Transform3[T interface{ Transform(Affine3) T }](seq iter.Seq[T], aff Affine3) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if !yield(v.Transform(aff)) {
				break
			}
		}
	}
}
