package geometry

import (
	"math"

	"golang.org/x/image/math/f64"
	"gonum.org/v1/gonum/mat"
)

// AffineTransform represents a 2x3 affine transformation matrix.
// [a b tx]
// [c d ty]
type AffineTransform struct {
	A, B, TX float64
	C, D, TY float64
}

// Identity returns the identity transform.
func Identity() AffineTransform {
	return AffineTransform{A: 1, D: 1}
}

// Translation returns a translation transform.
func Translation(tx, ty float64) AffineTransform {
	return AffineTransform{A: 1, D: 1, TX: tx, TY: ty}
}

// Rotation returns a rotation transform around the origin.
// With Y pointing down a positive angle turns clockwise on screen.
func Rotation(radians float64) AffineTransform {
	cos := math.Cos(radians)
	sin := math.Sin(radians)
	return AffineTransform{A: cos, B: -sin, C: sin, D: cos}
}

// Scale returns a scaling transform.
func Scale(sx, sy float64) AffineTransform {
	return AffineTransform{A: sx, D: sy}
}

// ZoomPan returns the view transform used by the chart canvas:
// uniform zoom followed by a pan offset in canvas pixels.
func ZoomPan(zoom, xOffset, yOffset float64) AffineTransform {
	return AffineTransform{A: zoom, D: zoom, TX: xOffset, TY: yOffset}
}

// RectToRect maps the src rectangle onto dst.
func RectToRect(src, dst Rect) AffineTransform {
	sx := dst.Width / src.Width
	sy := dst.Height / src.Height
	return AffineTransform{
		A: sx, TX: dst.X - src.X*sx,
		D: sy, TY: dst.Y - src.Y*sy,
	}
}

// Apply applies the transform to a point.
func (t AffineTransform) Apply(p Point2D) Point2D {
	return Point2D{
		X: t.A*p.X + t.B*p.Y + t.TX,
		Y: t.C*p.X + t.D*p.Y + t.TY,
	}
}

// Compose returns this transform composed with another (this * other),
// so other is applied first.
func (t AffineTransform) Compose(other AffineTransform) AffineTransform {
	var out mat.Dense
	out.Mul(t.dense(), other.dense())
	return fromDense(&out)
}

// Inverse returns the inverse transform, if it exists.
func (t AffineTransform) Inverse() (AffineTransform, bool) {
	if math.Abs(t.A*t.D-t.B*t.C) < 1e-10 {
		return AffineTransform{}, false
	}
	var inv mat.Dense
	if err := inv.Inverse(t.dense()); err != nil {
		return AffineTransform{}, false
	}
	return fromDense(&inv), true
}

// Aff3 converts the transform to the matrix type used by x/image/draw.
func (t AffineTransform) Aff3() f64.Aff3 {
	return f64.Aff3{t.A, t.B, t.TX, t.C, t.D, t.TY}
}

// IsIdentity reports whether the transform leaves points unchanged.
func (t AffineTransform) IsIdentity() bool {
	return t == Identity()
}

func (t AffineTransform) dense() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		t.A, t.B, t.TX,
		t.C, t.D, t.TY,
		0, 0, 1,
	})
}

func fromDense(m *mat.Dense) AffineTransform {
	return AffineTransform{
		A: m.At(0, 0), B: m.At(0, 1), TX: m.At(0, 2),
		C: m.At(1, 0), D: m.At(1, 1), TY: m.At(1, 2),
	}
}
