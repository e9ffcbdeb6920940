package units

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// SIUnit is a physical unit: a quantity tag, a scale factor relative to the
// base representation of its dimension signature, an additive offset (zero
// for everything except temperatures) and a dimension vector. SIUnit is a
// stateless value type and never mutated after construction.
type SIUnit struct {
	quantity Quantity
	scale    float64
	offset   float64
	exp      Exp
}

// NewSIUnit constructs a unit from a (quantity, scale, dimension) literal.
// A unit built this way carries no offset; use SIUnitOf for registry units
// with affine temperature behavior.
func NewSIUnit(q Quantity, scale float64, exp Exp) SIUnit {
	return SIUnit{quantity: q, scale: scale, exp: exp}
}

// SIUnitOf returns the physical unit of a registered unit. Passing an
// unregistered Unit is a programmer error and panics; resolve runtime
// strings with LookupSIUnit instead.
func SIUnitOf(u Unit) SIUnit {
	si, ok := LookupSIUnit(string(u))
	if !ok {
		panic(fmt.Sprintf("units: SIUnitOf(%q): %v", u, ErrUnknownUnit))
	}
	return si
}

// LookupSIUnit resolves a unit name, case-insensitively, to its physical
// unit.
func LookupSIUnit(name string) (SIUnit, bool) {
	u, ok := LookupUnit(name)
	if !ok {
		return SIUnit{}, false
	}
	e, _ := entryOf(u)
	return SIUnit{quantity: e.Quantity, scale: e.Scale, offset: e.Offset, exp: e.Exp}, true
}

// Quantity returns the quantity tag; "" for unnamed derived units.
func (s SIUnit) Quantity() Quantity { return s.quantity }

// Scale returns the scale factor to the base representation.
func (s SIUnit) Scale() float64 { return s.scale }

// Exp returns the dimension vector.
func (s SIUnit) Exp() Exp { return s.exp }

// entry finds the registry row exactly matching this unit (scale, offset,
// dimension and, when known, quantity), first declaration-order match.
func (s SIUnit) entry() (*Entry, bool) {
	for _, e := range reg.entries {
		if s.quantity != "" && e.Quantity != s.quantity {
			continue
		}
		if e.Scale == s.scale && e.Offset == s.offset && e.Exp.Equal(s.exp) {
			return e, true
		}
	}
	return nil, false
}

// AsUnit resolves this unit back to the named registry unit with the same
// scale and dimension (restricted to this unit's quantity when it has one).
func (s SIUnit) AsUnit() (Unit, bool) {
	e, ok := s.entry()
	if !ok {
		return "", false
	}
	return e.Unit, true
}

// AsUnitIn resolves like AsUnit but within the given quantity, for
// disambiguating units that share one scale and dimension across quantities.
func (s SIUnit) AsUnitIn(q Quantity) (Unit, bool) {
	for _, e := range reg.byQuantity[q] {
		if e.Scale == s.scale && e.Exp.Equal(s.exp) {
			return e.Unit, true
		}
	}
	return "", false
}

// Name returns the registry name of this unit for diagnostics, or "?" when
// no registry unit matches.
func (s SIUnit) Name() string {
	if u, ok := s.AsUnit(); ok {
		return string(u)
	}
	return "?"
}

// String renders the unit. Registry units flagged literal render as
// "1<token>"; everything else renders the scale (scientific form as
// <mantissa>×10<sup>, a mantissa of 1 suppressed) followed by the dimension
// vector, e.g. "3.6×10⁶kgm²s⁻²" or "1000kgm²s⁻³".
func (s SIUnit) String() string {
	if e, ok := s.entry(); ok && e.Literal {
		return "1" + string(e.Unit)
	}
	return formatScale(s.scale) + s.exp.String()
}

func formatScale(v float64) string {
	str := strconv.FormatFloat(v, 'g', -1, 64)
	i := strings.IndexAny(str, "eE")
	if i < 0 {
		return str
	}
	mantissa := str[:i]
	exp, err := strconv.Atoi(str[i+1:])
	if err != nil {
		return str
	}
	if mantissa == "1" {
		return "10" + superscript(exp)
	}
	return mantissa + "×10" + superscript(exp)
}

// ConvertTo converts value, expressed in this unit, into the target unit.
//
// Conversion succeeds when both dimension vectors are valid and equal and
// the quantities are compatible (equal, aliased, or unnamed on either side),
// or when both quantities are Temperature, whose units relate affinely
// across differing markers. Special units (m3c, m3ch) convert only to
// themselves. The rule is value*scale normalization with the additive offset
// correction; temperature markers convert through Celsius instead, keeping
// the Fahrenheit arithmetic exact.
func (s SIUnit) ConvertTo(value float64, to SIUnit) (float64, error) {
	if !s.exp.Valid() || !to.exp.Valid() {
		return 0, fmt.Errorf("%w: %s to %s", ErrInvalidExp, s.exp, to.exp)
	}
	if s == to {
		return value, nil
	}
	if err := s.checkSpecial(to); err != nil {
		return 0, err
	}
	if s.exp.Equal(to.exp) {
		if !compatibleQuantities(s.quantity, to.quantity) {
			return 0, fmt.Errorf("%w: %s (%s) to %s (%s)",
				ErrCannotConvert, s, qname(s.quantity), to, qname(to.quantity))
		}
		return (value*s.scale + s.offset - to.offset) / to.scale, nil
	}
	// Differing markers within Temperature still convert (affine relation).
	if s.quantity == Temperature && to.quantity == Temperature {
		return convertTemperature(value, s, to), nil
	}
	return 0, fmt.Errorf("%w: %s (%s) to %s (%s)",
		ErrCannotConvert, s, qname(s.quantity), to, qname(to.quantity))
}

// convertTemperature converts across temperature markers through Celsius
// with the textbook formulas. Normalizing through Kelvin with the stored
// scale and offset would cancel around the Fahrenheit offset and lose two
// significant digits; this shape agrees with the legacy table digit for
// digit.
func convertTemperature(v float64, from, to SIUnit) float64 {
	fu, fok := from.AsUnit()
	tu, tok := to.AsUnit()
	if !fok || !tok {
		// Hand-built temperature units fall back to the affine rule.
		return (v*from.scale + from.offset - to.offset) / to.scale
	}
	c := v
	switch fu {
	case K:
		c = v - 273.15
	case F:
		c = (v - 32.0) * 5.0 / 9.0
	}
	switch tu {
	case K:
		return c + 273.15
	case F:
		return c*9.0/5.0 + 32.0
	}
	return c
}

// checkSpecial rejects conversions where either side is a special
// (self-only) unit and the two sides are not the same named unit.
func (s SIUnit) checkSpecial(to SIUnit) error {
	se, sok := s.entry()
	te, tok := to.entry()
	sSpecial := sok && se.Special
	tSpecial := tok && te.Special
	if !sSpecial && !tSpecial {
		return nil
	}
	if sok && tok && se.Unit == te.Unit {
		return nil
	}
	return fmt.Errorf("%w: special unit %s converts only to itself",
		ErrCannotConvert, s)
}

// Mul combines two units: scales multiply, dimensions combine elementwise,
// offsets are dropped, and the quantity is re-resolved from the registry by
// the resulting (scale, dimension) pair — or left unnamed when nothing
// matches.
func (s SIUnit) Mul(o SIUnit) SIUnit {
	return derived(s.scale*o.scale, s.exp.Mul(o.exp))
}

// Div combines two units by division, with the same resolution as Mul.
func (s SIUnit) Div(o SIUnit) SIUnit {
	return derived(s.scale/o.scale, s.exp.Div(o.exp))
}

// Sqrt halves the dimension vector and takes the square root of the scale.
// Fails when any exponent is odd or the vector is invalid.
func (s SIUnit) Sqrt() (SIUnit, error) {
	half, err := s.exp.Half()
	if err != nil {
		return SIUnit{}, err
	}
	return derived(math.Sqrt(s.scale), half), nil
}

func derived(scale float64, exp Exp) SIUnit {
	si := SIUnit{scale: scale, exp: exp}
	for _, e := range reg.entries {
		if e.Scale == scale && e.Exp.Equal(exp) {
			si.quantity = e.Quantity
			si.offset = e.Offset
			break
		}
	}
	return si
}

func qname(q Quantity) string {
	if q == "" {
		return "?"
	}
	return string(q)
}
