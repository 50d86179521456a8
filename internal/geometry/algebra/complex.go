package algebra

import (
	"fmt"
	"math"
)

// Complex is a point of the plane written as re + im·i.
//
// Arithmetic never fails; results that leave the finite range are caught by
// [Check] at every construction boundary.
type Complex struct {
	Re float64
	Im float64
}

var (
	Zero = Complex{0, 0}
	One  = Complex{1, 0}
	I    = Complex{0, 1}
)

// C returns re + im·i.
func C(re, im float64) Complex {
	return Complex{Re: re, Im: im}
}

// Real returns x + 0i.
func Real(x float64) Complex {
	return Complex{Re: x}
}

// Imag returns 0 + x·i.
func Imag(x float64) Complex {
	return Complex{Im: x}
}

func (z Complex) Add(w Complex) Complex {
	return Complex{z.Re + w.Re, z.Im + w.Im}
}

func (z Complex) Sub(w Complex) Complex {
	return Complex{z.Re - w.Re, z.Im - w.Im}
}

func (z Complex) Mul(w Complex) Complex {
	return Complex{z.Re*w.Re - z.Im*w.Im, z.Re*w.Im + z.Im*w.Re}
}

// Div divides by w. Division by zero yields non-finite components.
func (z Complex) Div(w Complex) Complex {
	return z.Mul(w.Inv())
}

// Inv returns 1/z.
func (z Complex) Inv() Complex {
	n := z.Norm()
	return Complex{z.Re / n, -z.Im / n}
}

// Scale multiplies both components by k.
func (z Complex) Scale(k float64) Complex {
	return Complex{z.Re * k, z.Im * k}
}

// DivReal divides both components by k.
func (z Complex) DivReal(k float64) Complex {
	return Complex{z.Re / k, z.Im / k}
}

func (z Complex) Neg() Complex {
	return Complex{-z.Re, -z.Im}
}

func (z Complex) Conj() Complex {
	return Complex{z.Re, -z.Im}
}

// Norm returns |z|².
func (z Complex) Norm() float64 {
	return z.Re*z.Re + z.Im*z.Im
}

// Abs returns |z|.
func (z Complex) Abs() float64 {
	return math.Sqrt(z.Norm())
}

// Arg returns the argument in (-π, π].
func (z Complex) Arg() float64 {
	return math.Atan2(z.Im, z.Re)
}

// Sqrt returns the principal square root. For a negative real part the
// imaginary part of the root takes the sign of z.Im (positive when z.Im is
// +0), so that ±Sqrt are always the two distinct roots in a fixed order.
func (z Complex) Sqrt() Complex {
	if z == Zero {
		return Zero
	}
	t := math.Sqrt((math.Abs(z.Re) + z.Abs()) / 2)
	if z.Re >= 0 {
		return Complex{t, z.Im / (2 * t)}
	}
	return Complex{math.Abs(z.Im) / (2 * t), math.Copysign(t, z.Im)}
}

// Exp returns e^z.
func (z Complex) Exp() Complex {
	return Complex{math.Cos(z.Im), math.Sin(z.Im)}.Scale(math.Exp(z.Re))
}

// Ln returns the principal logarithm.
func (z Complex) Ln() Complex {
	return Complex{math.Log(z.Abs()), z.Arg()}
}

// Pow returns z^p through the principal logarithm.
func (z Complex) Pow(p float64) Complex {
	return z.Ln().Scale(p).Exp()
}

// IsFinite reports whether both components are finite.
func (z Complex) IsFinite() bool {
	return !math.IsNaN(z.Re) && !math.IsInf(z.Re, 0) && !math.IsNaN(z.Im) && !math.IsInf(z.Im, 0)
}

// Offset converts z to screen orientation, with y growing downwards. A zero
// imaginary part maps to +0.
func (z Complex) Offset() (x, y float64) {
	return z.Re, 0 - z.Im
}

// String formats z the way the DSL reads it back.
func (z Complex) String() string {
	switch {
	case z == Zero:
		return "0"
	case z.Re == 0:
		return fmt.Sprintf("%.5fi", z.Im)
	case z.Im == 0:
		return fmt.Sprintf("%.5f", z.Re)
	case z.Im < 0:
		return fmt.Sprintf("%.5f%.5fi", z.Re, z.Im)
	default:
		return fmt.Sprintf("%.5f+%.5fi", z.Re, z.Im)
	}
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
