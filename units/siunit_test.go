package units_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nossen/wmunits/units"
)

// sig15 compares at 15 significant digits, slightly under the 17 a float64
// carries, absorbing last-digit drift between conversion paths.
func sig15(v float64) string { return fmt.Sprintf("%.15g", v) }

// checkConvert converts from→to through SIUnit and asserts the result at 15
// significant digits; when the legacy table also supports the pair, both
// paths must agree.
func checkConvert(t *testing.T, value, expected float64, from, to units.Unit) {
	t.Helper()
	got, err := units.SIUnitOf(from).ConvertTo(value, units.SIUnitOf(to))
	require.NoError(t, err, "%s to %s", from, to)
	assert.Equal(t, sig15(expected), sig15(got), "%v %s to %s", value, from, to)

	if units.CanConvert(from, to) {
		legacy, err := units.Convert(value, from, to)
		require.NoError(t, err)
		assert.Equal(t, sig15(got), sig15(legacy),
			"SI and legacy disagree for %v %s to %s", value, from, to)
	}
}

func TestSIUnit_Render(t *testing.T) {
	// Built from scratch and looked up from the registry, a kWh renders the
	// same decomposition.
	kwh := units.NewSIUnit(units.Energy, 3.6e6, units.NewExp().Kg(1).M(2).S(-2))
	assert.Equal(t, "3.6×10⁶kgm²s⁻²", kwh.String())
	assert.Equal(t, "3.6×10⁶kgm²s⁻²", units.SIUnitOf(units.KWH).String())

	// Celsius renders as its literal token either way.
	celsius := units.NewSIUnit(units.Temperature, 1, units.NewExp().C(1))
	assert.Equal(t, "1c", celsius.String())
	assert.Equal(t, "1c", units.SIUnitOf(units.C).String())

	assert.Equal(t, "1000kgm²s⁻³", units.SIUnitOf(units.KW).String())
	assert.Equal(t, "1counter", units.SIUnitOf(units.COUNTER).String())
	assert.Equal(t, "10⁹kgm²s⁻²", units.SIUnitOf(units.GJ).String(),
		"mantissa 1 is suppressed in scientific form")
}

func TestSIUnit_AsUnit(t *testing.T) {
	u, ok := units.SIUnitOf(units.KWH).AsUnit()
	require.True(t, ok)
	assert.Equal(t, units.KWH, u)

	// kwh and kvarh share scale and dimension; the quantity disambiguates.
	u, ok = units.SIUnitOf(units.KWH).AsUnitIn(units.ReactiveEnergy)
	require.True(t, ok)
	assert.Equal(t, units.KVARH, u)

	// The whole counter family resolves to the first declared member.
	for _, dimless := range []units.Unit{units.COUNTER, units.FACTOR, units.NUMBER, units.PCT} {
		u, ok = units.SIUnitOf(dimless).AsUnitIn(units.Dimensionless)
		require.True(t, ok)
		assert.Equal(t, units.COUNTER, u, "from %s", dimless)
	}

	// No registry unit matches an arbitrary derived scale.
	_, ok = units.NewSIUnit("", 3600, units.NewExp().Kg(1).M(2).S(-2)).AsUnit()
	assert.False(t, ok)
}

func TestSIUnit_ConvertTime(t *testing.T) {
	checkConvert(t, 60.0, 1.0, units.Second, units.Minute)
	checkConvert(t, 3600.0, 1.0, units.Second, units.Hour)
	checkConvert(t, 3600.0, 0.041666666666666664, units.Second, units.Day)
	checkConvert(t, 3600.0, 1.0/24.0, units.Second, units.Day)
	checkConvert(t, 1.0, 60.0, units.Minute, units.Second)
	checkConvert(t, 1.0, 24, units.Day, units.Hour)
	checkConvert(t, 1.0, 1.0, units.Month, units.Month)
	checkConvert(t, 1.0, 1.0, units.Year, units.Year)
	checkConvert(t, 100.0, 100.0/24.0, units.Hour, units.Day)
}

func TestSIUnit_ConvertTemperature(t *testing.T) {
	checkConvert(t, 0, 273.15, units.C, units.K)
	checkConvert(t, 10.85, 284.0, units.C, units.K)
	checkConvert(t, 100.0, -173.15, units.K, units.C)
	checkConvert(t, 100.0, -279.67, units.K, units.F)
	checkConvert(t, 100.0, 37.77777777777777, units.F, units.C)
	checkConvert(t, 0.0, -17.7777777777778, units.F, units.C)
	checkConvert(t, 32.0, 273.15, units.F, units.K)
	checkConvert(t, 0.0, -459.67, units.K, units.F)
}

func TestSIUnit_ConvertEnergy(t *testing.T) {
	checkConvert(t, 1.0, 3.6, units.KWH, units.MJ)
	checkConvert(t, 1.0, 0.0036, units.KWH, units.GJ)
	checkConvert(t, 1.0, 1000.0, units.GJ, units.MJ)
	checkConvert(t, 10, 2.7777777777777777, units.MJ, units.KWH)
	// One watt-second is one joule.
	checkConvert(t, 1.0/3600000.0, 0.000001, units.KWH, units.MJ)

	// The energy alias group: reactive and apparent energy convert 1:1.
	checkConvert(t, 1.0, 1.0, units.KVARH, units.KWH)
	checkConvert(t, 1.0, 1.0, units.KWH, units.KVARH)
	checkConvert(t, 1.0, 1.0, units.KVAH, units.KWH)
	checkConvert(t, 1.0, 1.0, units.KWH, units.KVAH)
}

// TestSIUnit_SpecialUnits verifies the singleton equivalence class: m3c and
// m3ch convert to themselves and to nothing else, for any input value.
func TestSIUnit_SpecialUnits(t *testing.T) {
	checkConvert(t, 99.0, 99.0, units.M3C, units.M3C)
	checkConvert(t, 99.0, 99.0, units.M3CH, units.M3CH)

	for _, v := range []float64{-273.15, 0, 1, 99, 1e9} {
		_, err := units.SIUnitOf(units.M3C).ConvertTo(v, units.SIUnitOf(units.KWH))
		assert.ErrorIs(t, err, units.ErrCannotConvert, "m3c to kwh at %v", v)
		_, err = units.SIUnitOf(units.M3CH).ConvertTo(v, units.SIUnitOf(units.KW))
		assert.ErrorIs(t, err, units.ErrCannotConvert, "m3ch to kw at %v", v)
		_, err = units.SIUnitOf(units.KWH).ConvertTo(v, units.SIUnitOf(units.M3C))
		assert.ErrorIs(t, err, units.ErrCannotConvert, "kwh to m3c at %v", v)
	}
}

func TestSIUnit_ConvertRemainingQuantities(t *testing.T) {
	checkConvert(t, 111.1, 111.1, units.M, units.M)
	checkConvert(t, 222.1, 222.1, units.KG, units.KG)
	checkConvert(t, 999.9, 999.9, units.Ampere, units.Ampere)
	checkConvert(t, 1, 1, units.Volt, units.Volt)
	checkConvert(t, 1, 1, units.KW, units.KW)
	checkConvert(t, 1, 1000.0, units.M3, units.L)
	checkConvert(t, 1, 1.0/1000.0, units.L, units.M3)
	checkConvert(t, 1, 1000.0, units.M3H, units.LH)
	checkConvert(t, 1000.0, 1.0, units.LH, units.M3H)
	checkConvert(t, 1.1717, 1.1717, units.MOL, units.MOL)
	checkConvert(t, 1.1717, 1.1717, units.CD, units.CD)
	checkConvert(t, 1.1717, 1.1717, units.RH, units.RH)
	checkConvert(t, 11717, 11717, units.HCA, units.HCA)
	checkConvert(t, 1.1717, 117170, units.BAR, units.PA)
	checkConvert(t, 1.1717, 1.1717e-05, units.PA, units.BAR)
	checkConvert(t, 440, 440, units.HZ, units.HZ)
	checkConvert(t, 180, 3.1415926535897931, units.Degree, units.Radian)
	checkConvert(t, 3.1415926535897931, 180, units.Radian, units.Degree)

	// The counter family is freely interconvertible.
	checkConvert(t, 2211717, 2211717, units.COUNTER, units.FACTOR)
	checkConvert(t, 2211717, 2211717, units.FACTOR, units.NUMBER)
	checkConvert(t, 2211717, 2211717, units.NUMBER, units.PCT)
	checkConvert(t, 2211717, 2211717, units.PCT, units.COUNTER)
}

// TestSIUnit_ConvertRejections pins the incompatibility rules: equal
// dimensions do not suffice across unrelated quantities, and unequal
// dimensions never convert outside Temperature.
func TestSIUnit_ConvertRejections(t *testing.T) {
	// counter and rad share the empty dimension vector.
	_, err := units.SIUnitOf(units.COUNTER).ConvertTo(1, units.SIUnitOf(units.Radian))
	assert.ErrorIs(t, err, units.ErrCannotConvert)

	// s and ut share s¹ but Time is not PointInTime.
	_, err = units.SIUnitOf(units.Second).ConvertTo(1, units.SIUnitOf(units.UnixTimestamp))
	assert.ErrorIs(t, err, units.ErrCannotConvert)

	// kwh and kw differ dimensionally.
	_, err = units.SIUnitOf(units.KWH).ConvertTo(1, units.SIUnitOf(units.KW))
	assert.ErrorIs(t, err, units.ErrCannotConvert)

	// Invalid dimension vectors refuse conversion outright.
	bad := units.NewSIUnit("", 1, units.NewExp().K(1).C(1))
	_, err = bad.ConvertTo(1, units.SIUnitOf(units.K))
	assert.ErrorIs(t, err, units.ErrInvalidExp)
}

// TestSIUnit_LegacyCrossValidation sweeps every pair the legacy table
// supports and checks 15-significant-digit agreement with SIUnit conversion
// over a spread of inputs.
func TestSIUnit_LegacyCrossValidation(t *testing.T) {
	inputs := []float64{-40.0, 0.0, 0.5, 1.0, 3.1415926535897931, 100.0, 11717.25, 1e6}
	for _, pair := range units.LegacyPairs() {
		from, to := pair[0], pair[1]
		for _, v := range inputs {
			legacy, err := units.Convert(v, from, to)
			require.NoError(t, err)
			si, err := units.SIUnitOf(from).ConvertTo(v, units.SIUnitOf(to))
			require.NoError(t, err, "%s to %s", from, to)
			assert.Equal(t, sig15(si), sig15(legacy),
				"%v %s to %s", v, from, to)
		}
	}
}

func TestSIUnit_DerivedQuantityResolution(t *testing.T) {
	// kw * h resolves to the registered kwh.
	kwh := units.SIUnitOf(units.KW).Mul(units.SIUnitOf(units.Hour))
	assert.Equal(t, units.Energy, kwh.Quantity())
	u, ok := kwh.AsUnit()
	require.True(t, ok)
	assert.Equal(t, units.KWH, u)

	// kwh / h resolves to kw.
	kw := units.SIUnitOf(units.KWH).Div(units.SIUnitOf(units.Hour))
	u, ok = kw.AsUnit()
	require.True(t, ok)
	assert.Equal(t, units.KW, u)

	// v * a is one watt: dimensionally power but unnamed (no watt entry).
	w := units.SIUnitOf(units.Volt).Mul(units.SIUnitOf(units.Ampere))
	assert.Equal(t, units.Quantity(""), w.Quantity())
	assert.Equal(t, "?", w.Name())

	// sqrt(kwh·kwh) is kwh again.
	sq := units.SIUnitOf(units.KWH).Mul(units.SIUnitOf(units.KWH))
	root, err := sq.Sqrt()
	require.NoError(t, err)
	u, ok = root.AsUnit()
	require.True(t, ok)
	assert.Equal(t, units.KWH, u)

	_, err = units.SIUnitOf(units.M3).Sqrt()
	assert.ErrorIs(t, err, units.ErrOddExponent)
}
