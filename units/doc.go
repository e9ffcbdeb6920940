// Package units models physical quantities for meter readings: a fixed
// registry of named units, SI-style dimension vectors with signed int8
// exponents, and conversion between units of compatible quantity.
//
// What:
//
//   - Exp — a dimension vector over kg, m, s, a, mol, cd plus the three
//     temperature markers k/c/f. Multiply/divide combine exponents
//     elementwise; any overflow makes the vector permanently Invalid.
//   - Unit / Quantity — the registry's lowercase unit tokens (kwh, mj, m3,
//     c, counter, ...) and their semantic categories (Energy, Volume,
//     Temperature, ...). The table is declared in units.yaml, embedded and
//     parsed once at init; it never changes afterwards.
//   - SIUnit — a (quantity, scale, offset, dimension) value type with
//     reverse lookup into the registry, human rendering and ConvertTo.
//   - ExtractUnit — splits driver field names like "total_kwh" into the
//     field name and its unit suffix.
//   - CanConvert / Convert — the legacy flat unit-pair conversion table,
//     kept for callers that predate SIUnit; SIUnit conversion agrees with it
//     to 15 significant digits.
//
// Conversion rules:
//
//   - Units convert when their dimension vectors are equal and their
//     quantities match or belong to one alias group (Energy,
//     Reactive_Energy and Apparent_Energy are mutually convertible).
//   - Temperature units convert across differing markers using the standard
//     affine relations (Celsius/Kelvin/Fahrenheit), not pure scaling.
//   - Special units (m3c, m3ch) convert only to themselves.
//
// Errors:
//
//   - ErrUnknownUnit — a name or Unit value not present in the registry.
//   - ErrCannotConvert — incompatible dimension, quantity or special unit.
//   - ErrInvalidExp — an operation touched an overflowed dimension vector.
//   - ErrOddExponent — square root of a vector with odd exponents.
package units
