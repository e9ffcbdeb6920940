package units_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nossen/wmunits/units"
)

// TestExp_Render verifies the canonical render: fixed dimension order,
// superscript exponents, exponent 1 omitted, empty string for dimensionless.
func TestExp_Render(t *testing.T) {
	e := units.NewExp().S(-1).M(3)
	assert.Equal(t, "m³s⁻¹", e.String())

	f := units.NewExp().S(1)
	assert.Equal(t, "s", f.String())

	g := e.Mul(f)
	assert.Equal(t, "m³", g.String())

	assert.Equal(t, "", units.NewExp().String(), "dimensionless renders empty")
	assert.Equal(t, "3.6×10⁶kgm²s⁻²",
		units.NewSIUnit(units.Energy, 3.6e6, units.NewExp().Kg(1).M(2).S(-2)).String())
}

// TestExp_Overflow verifies that exceeding the int8 exponent range turns the
// vector Invalid, rendering the wrapped exponent of the offending dimension.
func TestExp_Overflow(t *testing.T) {
	h := units.NewExp().S(127)
	i := h.Mul(units.NewExp().S(1))
	assert.False(t, i.Valid())
	assert.Equal(t, "!s⁻¹²⁸-Invalid!", i.String())
}

// TestExp_OverflowSticky verifies that Invalid propagates through any
// further combination and keeps the -Invalid! marker.
func TestExp_OverflowSticky(t *testing.T) {
	bad := units.NewExp().S(127).Mul(units.NewExp().S(1))
	require.False(t, bad.Valid())

	still := bad.Mul(units.NewExp().M(2))
	assert.False(t, still.Valid())
	assert.Contains(t, still.String(), "-Invalid!")

	still = units.NewExp().Kg(1).Div(bad)
	assert.False(t, still.Valid())
	assert.Contains(t, still.String(), "-Invalid!")

	assert.False(t, bad.Equal(bad), "Invalid equals nothing, not even itself")
}

// TestExp_ExclusiveMarkers verifies that two temperature markers in one
// vector invalidate it immediately.
func TestExp_ExclusiveMarkers(t *testing.T) {
	bad := units.NewExp().K(1).C(1)
	assert.False(t, bad.Valid())
	assert.Equal(t, "!kc-Invalid!", bad.String())

	// Also via combination of two individually valid vectors.
	mixed := units.NewExp().K(1).Mul(units.NewExp().F(1))
	assert.False(t, mixed.Valid())
}

// TestExp_DivSelf verifies that dividing any registered unit's vector by
// itself yields the dimensionless vector, and that Mul is the inverse.
func TestExp_DivSelf(t *testing.T) {
	for _, u := range units.AllUnits() {
		e := units.SIUnitOf(u).Exp()
		assert.Equal(t, "", e.Div(e).String(), "unit %s", u)
		assert.True(t, e.Div(e).IsZero(), "unit %s", u)
		assert.True(t, e.Mul(e).Div(e).Equal(e), "unit %s", u)
	}
}

// TestExp_Half covers square-root halving and its odd-exponent error.
func TestExp_Half(t *testing.T) {
	sq := units.NewExp().Kg(2).M(4).S(-4)
	half, err := sq.Half()
	require.NoError(t, err)
	assert.Equal(t, "kgm²s⁻²", half.String())

	_, err = units.NewExp().M(3).Half()
	assert.ErrorIs(t, err, units.ErrOddExponent)

	bad := units.NewExp().S(127).Mul(units.NewExp().S(1))
	_, err = bad.Half()
	assert.ErrorIs(t, err, units.ErrInvalidExp)
}
