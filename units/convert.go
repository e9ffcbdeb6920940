package units

import (
	"fmt"
	"math"
)

// The legacy flat conversion table: explicit closures per supported
// (from,to) unit pair. It predates the SIUnit mechanism and is retained both
// for old callers and as an independent cross-check: wherever both
// mechanisms claim support, their results agree to 15 significant digits.

type convFn func(float64) float64

var legacyConversions = map[[2]Unit]convFn{
	{KWH, MJ}: func(v float64) float64 { return v * 3.6 },
	{MJ, KWH}: func(v float64) float64 { return v / 3.6 },
	{KWH, GJ}: func(v float64) float64 { return v * 0.0036 },
	{GJ, KWH}: func(v float64) float64 { return v / 0.0036 },
	{GJ, MJ}:  func(v float64) float64 { return v * 1000.0 },
	{MJ, GJ}:  func(v float64) float64 { return v / 1000.0 },

	{M3, L}: func(v float64) float64 { return v * 1000.0 },
	{L, M3}: func(v float64) float64 { return v / 1000.0 },

	{M3H, LH}: func(v float64) float64 { return v * 1000.0 },
	{LH, M3H}: func(v float64) float64 { return v / 1000.0 },

	{C, K}: func(v float64) float64 { return v + 273.15 },
	{K, C}: func(v float64) float64 { return v - 273.15 },
	{C, F}: func(v float64) float64 { return v*9.0/5.0 + 32.0 },
	{F, C}: func(v float64) float64 { return (v - 32.0) * 5.0 / 9.0 },

	{BAR, PA}: func(v float64) float64 { return v * 100000.0 },
	{PA, BAR}: func(v float64) float64 { return v / 100000.0 },

	{Degree, Radian}: func(v float64) float64 { return v * math.Pi / 180.0 },
	{Radian, Degree}: func(v float64) float64 { return v * 180.0 / math.Pi },

	{Second, Minute}: func(v float64) float64 { return v / 60.0 },
	{Minute, Second}: func(v float64) float64 { return v * 60.0 },
	{Second, Hour}:   func(v float64) float64 { return v / 3600.0 },
	{Hour, Second}:   func(v float64) float64 { return v * 3600.0 },
	{Second, Day}:    func(v float64) float64 { return v / 86400.0 },
	{Day, Second}:    func(v float64) float64 { return v * 86400.0 },
	{Minute, Hour}:   func(v float64) float64 { return v / 60.0 },
	{Hour, Minute}:   func(v float64) float64 { return v * 60.0 },
	{Hour, Day}:      func(v float64) float64 { return v / 24.0 },
	{Day, Hour}:      func(v float64) float64 { return v * 24.0 },
}

// CanConvert reports whether the legacy table supports the pair (identity
// pairs included).
func CanConvert(from, to Unit) bool {
	if from == to {
		return true
	}
	_, ok := legacyConversions[[2]Unit{from, to}]
	return ok
}

// Convert converts value between two units using the legacy table.
func Convert(value float64, from, to Unit) (float64, error) {
	if from == to {
		return value, nil
	}
	fn, ok := legacyConversions[[2]Unit{from, to}]
	if !ok {
		return 0, fmt.Errorf("%w: no legacy conversion %s to %s",
			ErrCannotConvert, from, to)
	}
	return fn(value), nil
}

// LegacyPairs returns every (from,to) pair the legacy table supports, for
// cross-validation against SIUnit conversion.
func LegacyPairs() [][2]Unit {
	out := make([][2]Unit, 0, len(legacyConversions))
	for p := range legacyConversions {
		out = append(out, p)
	}
	return out
}
