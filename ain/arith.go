package ain

import (
	"fmt"
	"math"
)

// minMax returns the smallest and largest of vals. vals must be
// non-empty.
func minMax(vals ...float64) (lo, hi float64) {
	lo, hi = vals[0], vals[0]
	for _, v := range vals[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

// Neg mirrors the interval around zero. The density pieces swap sides,
// so the result's alpha equals the receiver's beta and the asymmetry
// flips sign.
func (a AIN) Neg() (AIN, error) {
	return New(-a.upper, -a.lower, -a.expected)
}

// Add returns the receiver plus the operand. Two AINs add
// componentwise on bounds and expected values.
func (a AIN) Add(o Operand) (AIN, error) {
	switch y := o.(type) {
	case Scalar:
		s := float64(y)
		return New(a.lower+s, a.upper+s, a.expected+s)
	case AIN:
		return New(a.lower+y.lower, a.upper+y.upper, a.expected+y.expected)
	default:
		return AIN{}, fmt.Errorf("%w: unsupported operand %T", ErrRange, o)
	}
}

// Sub returns the receiver minus the operand, defined as addition of
// the negated operand.
func (a AIN) Sub(o Operand) (AIN, error) {
	switch y := o.(type) {
	case Scalar:
		return a.Add(Scalar(-float64(y)))
	case AIN:
		neg, err := y.Neg()
		if err != nil {
			return AIN{}, err
		}
		return a.Add(neg)
	default:
		return AIN{}, fmt.Errorf("%w: unsupported operand %T", ErrRange, o)
	}
}

// Mul returns the receiver times the operand. For two AINs the bounds
// span the four corner products and the expected values multiply,
// which treats the operands as independent.
func (a AIN) Mul(o Operand) (AIN, error) {
	switch y := o.(type) {
	case Scalar:
		k := float64(y)
		lo, hi := minMax(a.lower*k, a.upper*k)
		return New(lo, hi, a.expected*k)
	case AIN:
		lo, hi := minMax(a.lower*y.lower, a.lower*y.upper, a.upper*y.lower, a.upper*y.upper)
		return New(lo, hi, a.expected*y.expected)
	default:
		return AIN{}, fmt.Errorf("%w: unsupported operand %T", ErrRange, o)
	}
}

// Div returns the receiver divided by the operand.
//
// A scalar divisor rescales all three fields and must be nonzero. An
// AIN divisor must not contain zero; the bounds span the four corner
// quotients. A degenerate divisor centers the expected value on the
// resulting bounds, otherwise E[X/Y] comes from integrating 1/y
// against the divisor's density:
//
//	X.expected * (Y.alpha*ln(Y.expected/Y.lower) + Y.beta*ln(Y.upper/Y.expected))
func (a AIN) Div(o Operand) (AIN, error) {
	switch y := o.(type) {
	case Scalar:
		k := float64(y)
		if k == 0 {
			return AIN{}, fmt.Errorf("%w: division by zero", ErrDomain)
		}
		lo, hi := minMax(a.lower/k, a.upper/k)
		return New(lo, hi, a.expected/k)
	case AIN:
		if y.lower <= 0 && y.upper >= 0 {
			return AIN{}, fmt.Errorf("%w: divisor %s contains zero", ErrDomain, y)
		}
		lo, hi := minMax(a.lower/y.lower, a.lower/y.upper, a.upper/y.lower, a.upper/y.upper)
		if y.IsDegenerate() {
			return New(lo, hi, (lo+hi)/2)
		}
		expected := a.expected * (y.alpha*math.Log(y.expected/y.lower) + y.beta*math.Log(y.upper/y.expected))
		return New(lo, hi, expected)
	default:
		return AIN{}, fmt.Errorf("%w: unsupported operand %T", ErrRange, o)
	}
}

// Pow raises the receiver to a power. A Scalar exponent applies the
// real power x^n; an AIN exponent Y composes exp(Y * log(X)), which
// requires a strictly positive receiver.
func (a AIN) Pow(o Operand) (AIN, error) {
	switch y := o.(type) {
	case Scalar:
		return a.powReal(float64(y))
	case AIN:
		logX, err := a.Log()
		if err != nil {
			return AIN{}, err
		}
		prod, err := y.Mul(logX)
		if err != nil {
			return AIN{}, err
		}
		return prod.Exp()
	default:
		return AIN{}, fmt.Errorf("%w: unsupported operand %T", ErrRange, o)
	}
}

// powReal implements x^n for a real exponent n.
//
// Bounds span the endpoint powers; an interval straddling zero also
// admits the value at zero, which matters for even exponents. The
// expected value is the moment integral
//
//	alpha*(e^(n+1) - l^(n+1))/(n+1) + beta*(u^(n+1) - e^(n+1))/(n+1)
//
// except at n == -1 where the antiderivative is logarithmic.
func (a AIN) powReal(n float64) (AIN, error) {
	if n != math.Trunc(n) && a.lower < 0 {
		return AIN{}, fmt.Errorf("%w: power %g of %s with negative lower bound", ErrComplexResult, n, a)
	}
	if n == 0 {
		return New(1, 1, 1)
	}
	if n < 0 && a.lower <= 0 && a.upper >= 0 {
		return AIN{}, fmt.Errorf("%w: power %g of %s containing zero", ErrDomain, n, a)
	}

	lo, hi := minMax(math.Pow(a.lower, n), math.Pow(a.upper, n))
	if a.lower < 0 && a.upper > 0 {
		lo = math.Min(lo, 0)
	}
	if a.IsDegenerate() {
		return New(lo, hi, hi)
	}

	var expected float64
	if n == -1 {
		expected = a.alpha*math.Log(a.expected/a.lower) + a.beta*math.Log(a.upper/a.expected)
	} else {
		m := n + 1
		expected = a.alpha*(math.Pow(a.expected, m)-math.Pow(a.lower, m))/m +
			a.beta*(math.Pow(a.upper, m)-math.Pow(a.expected, m))/m
	}
	return New(lo, hi, expected)
}

// Rsub returns s - x.
func Rsub(s float64, x AIN) (AIN, error) {
	neg, err := x.Neg()
	if err != nil {
		return AIN{}, err
	}
	return neg.Add(Scalar(s))
}

// Rdiv returns s / x, computed as s * x^(-1).
func Rdiv(s float64, x AIN) (AIN, error) {
	inv, err := x.Pow(Scalar(-1))
	if err != nil {
		return AIN{}, err
	}
	return inv.Mul(Scalar(s))
}
