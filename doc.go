// Package pixelgeom provides primitives and routines for clipping,
// transforming, and scan-converting line geometry in 2D and 3D.
//
// # Clipping
//
// The core of the package is line clipping against axis-aligned rectangular
// windows. Two classic algorithms are provided: [ClipCohenSutherland], which
// classifies endpoints with [Outcode] bit flags and repeatedly replaces the
// offending endpoint with its window-edge intersection, and
// [ClipLiangBarsky], which narrows the segment's parameter interval against
// each window boundary. Both are pure functions over value types and produce
// geometrically identical results; which one to pick is a matter of taste
// and branch behavior, not of output.
//
// A window's edges count as inside. Consequently clipping is idempotent:
// clipping an already-clipped segment against the same window returns the
// segment unchanged.
//
// # Scan conversion
//
// [DDAPoints], [BresenhamPoints], and [EllipsePoints] enumerate the pixels
// of line segments and ellipse outlines. They yield [image.Point] values one
// at a time; [DrawPoints] writes such a sequence into any draw.Image.
//
// # Transformations
//
// [Affine] represents 2D affine transformations as six matrix coefficients
// and composes with [Affine.Mul]. [Affine3] is the 3D analogue with twelve
// coefficients. Fixed-point variants such as [RotateAbout] and [ScaleAbout]
// are provided because they are awkward to get right by hand. [Box] models
// an axis-aligned box whose [Box.Edges] form the familiar twelve-segment
// wireframe.
//
// # Iterators
//
// Functions that can produce their results one element at a time return
// iter.Seq values to avoid allocating slices; use [slices.Collect] if you
// need random access. Functions returning slices or arrays do so because
// the result is small and fixed-size.
package pixelgeom
