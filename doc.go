// Package wmunits is the dimensional unit system and formula engine used to
// post-process wireless utility-meter readings: drivers declare derived
// fields as textual, unit-annotated arithmetic expressions and this module
// checks, evaluates and renders them.
//
// What's inside:
//
//	units/   — SI-style dimension vectors, the fixed named-unit registry,
//	           physical units with linear and affine (temperature)
//	           conversion, and field-name unit-suffix extraction.
//	formula/ — the unit-aware expression grammar: tokenizer, parser,
//	           checked syntax trees, calendar-aware date arithmetic and
//	           template-string interpolation.
//
// Why a miniature type system?
//
//   - Driver formulas mix quantities freely (`5 kw * 10 h`, `22 kwh / 11 h`)
//     and the engine must derive the resulting physical unit, not just a
//     number.
//   - Mistakes must surface as precise diagnostics with caret pointers into
//     the formula text, never as silently wrong values.
//   - Month and year durations have no fixed length in seconds, so date
//     arithmetic is calendar-aware with Gregorian day clamping.
//
// Quick taste:
//
//	f := formula.New()
//	if err := f.Parse(nil, "10 kwh + 100 kwh"); err != nil {
//		// f.Errors() carries the caret-annotated diagnostics
//	}
//	v, _ := f.Calculate(units.KWH) // 110
//
// Telegram decoding, driver field extraction, radio transport and
// configuration live elsewhere; they feed this engine through two narrow
// capabilities (formula.FieldSource and formula.RecordSource) and are never
// imported here.
package wmunits
