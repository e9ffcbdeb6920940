package units

import "strings"

// Base dimension indices in canonical render order. The three trailing
// entries are the temperature markers; at most one of them may be nonzero in
// a valid vector.
const (
	dimKG = iota // mass
	dimM         // length
	dimS         // time
	dimA         // electric current
	dimMOL       // amount of substance
	dimCD        // luminous intensity
	dimK         // Kelvin marker
	dimC         // Celsius marker
	dimF         // Fahrenheit marker

	numDims
)

var dimNames = [numDims]string{"kg", "m", "s", "a", "mol", "cd", "k", "c", "f"}

// Exp is a dimension vector: one signed exponent per base dimension, stored
// as int8 (-128..127). Exp is an immutable value type; all operations return
// a new vector.
//
// Once any elementwise combination would leave the int8 range, or two
// temperature markers become simultaneously nonzero, the vector turns
// permanently Invalid. Invalid is sticky: it propagates through every further
// Mul/Div and renders as "!<dims>-Invalid!" naming the offending
// dimension(s).
type Exp struct {
	e       [numDims]int8
	invalid bool
	reason  string
}

// NewExp returns the dimensionless (all-zero) vector, the starting point of
// the fluent builder:
//
//	units.NewExp().Kg(1).M(2).S(-2) // kg·m²·s⁻²
func NewExp() Exp { return Exp{} }

// Kg sets the mass exponent.
func (x Exp) Kg(n int) Exp { return x.with(dimKG, n) }

// M sets the length exponent.
func (x Exp) M(n int) Exp { return x.with(dimM, n) }

// S sets the time exponent.
func (x Exp) S(n int) Exp { return x.with(dimS, n) }

// A sets the electric-current exponent.
func (x Exp) A(n int) Exp { return x.with(dimA, n) }

// Mol sets the amount-of-substance exponent.
func (x Exp) Mol(n int) Exp { return x.with(dimMOL, n) }

// Cd sets the luminous-intensity exponent.
func (x Exp) Cd(n int) Exp { return x.with(dimCD, n) }

// K sets the Kelvin marker exponent. Exclusive with C and F.
func (x Exp) K(n int) Exp { return x.with(dimK, n) }

// C sets the Celsius marker exponent. Exclusive with K and F.
func (x Exp) C(n int) Exp { return x.with(dimC, n) }

// F sets the Fahrenheit marker exponent. Exclusive with K and C.
func (x Exp) F(n int) Exp { return x.with(dimF, n) }

func (x Exp) with(d int, n int) Exp {
	if x.invalid {
		return x
	}
	if n < -128 || n > 127 {
		x.invalid = true
		x.reason = renderDim(d, int8(n)) // wrapped attempt
		return x
	}
	x.e[d] = int8(n)
	return x.checkExclusive()
}

// checkExclusive invalidates the vector when two or more temperature markers
// are nonzero at once.
func (x Exp) checkExclusive() Exp {
	var bad []string
	for _, d := range [...]int{dimK, dimC, dimF} {
		if x.e[d] != 0 {
			bad = append(bad, renderDim(d, x.e[d]))
		}
	}
	if len(bad) >= 2 {
		x.invalid = true
		x.reason = strings.Join(bad, "")
	}
	return x
}

// Valid reports whether the vector is usable. Invalid vectors render with an
// -Invalid! marker and refuse conversion.
func (x Exp) Valid() bool { return !x.invalid }

// IsZero reports whether the vector is valid and dimensionless.
func (x Exp) IsZero() bool {
	return !x.invalid && x.e == [numDims]int8{}
}

// Equal reports elementwise equality. An Invalid vector equals nothing, not
// even itself.
func (x Exp) Equal(y Exp) bool {
	return !x.invalid && !y.invalid && x.e == y.e
}

// Mul combines two vectors by elementwise exponent addition. Overflow in any
// dimension yields an Invalid result naming that dimension with the wrapped
// exponent it would have had.
func (x Exp) Mul(y Exp) Exp { return x.combine(y, 1) }

// Div combines two vectors by elementwise exponent subtraction, with the
// same overflow rules as Mul.
func (x Exp) Div(y Exp) Exp { return x.combine(y, -1) }

func (x Exp) combine(y Exp, sign int) Exp {
	if x.invalid {
		return x
	}
	if y.invalid {
		return y
	}
	var r Exp
	var bad []string
	for i := 0; i < numDims; i++ {
		s := int(x.e[i]) + sign*int(y.e[i])
		if s < -128 || s > 127 {
			bad = append(bad, renderDim(i, int8(s)))
			continue
		}
		r.e[i] = int8(s)
	}
	if len(bad) > 0 {
		r.invalid = true
		r.reason = strings.Join(bad, "")
		return r
	}
	return r.checkExclusive()
}

// Half divides every exponent by two, for square roots. All exponents must
// be even.
func (x Exp) Half() (Exp, error) {
	if x.invalid {
		return x, ErrInvalidExp
	}
	var r Exp
	for i, n := range x.e {
		if n%2 != 0 {
			return Exp{}, ErrOddExponent
		}
		r.e[i] = n / 2
	}
	return r, nil
}

// String renders the canonical form: dimensions in fixed order, each as its
// letter with a Unicode superscript exponent (omitted when the exponent is
// 1, superscript minus for negatives). The all-zero vector renders to the
// empty string. Invalid vectors render "!<dims>-Invalid!".
func (x Exp) String() string {
	if x.invalid {
		return "!" + x.reason + "-Invalid!"
	}
	var b strings.Builder
	for i, n := range x.e {
		if n != 0 {
			b.WriteString(renderDim(i, n))
		}
	}
	return b.String()
}

func renderDim(d int, n int8) string {
	if n == 1 {
		return dimNames[d]
	}
	return dimNames[d] + superscript(int(n))
}

var supDigits = [10]string{"⁰", "¹", "²", "³", "⁴", "⁵", "⁶", "⁷", "⁸", "⁹"}

// superscript renders n with Unicode superscript digits and minus.
func superscript(n int) string {
	if n == 0 {
		return supDigits[0]
	}
	var b strings.Builder
	if n < 0 {
		b.WriteString("⁻")
		n = -n
	}
	var digits []int
	for n > 0 {
		digits = append(digits, n%10)
		n /= 10
	}
	for i := len(digits) - 1; i >= 0; i-- {
		b.WriteString(supDigits[digits[i]])
	}
	return b.String()
}
