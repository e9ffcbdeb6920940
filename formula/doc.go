// Package formula parses and evaluates unit-annotated arithmetic
// expressions of the kind driver authors use to declare derived measurement
// fields, e.g. "total_energy_consumption_kwh + 18 kwh" or
// "'2020-12-31' + 2month".
//
// What:
//
//   - Formula — tokenizes an expression, builds a unit-checked syntax tree
//     and evaluates it into a caller-chosen unit. Field references resolve
//     against a bound FieldSource, counter references against a bound
//     RecordSource; both are borrowed, never owned.
//   - Template — a string interpolator over the same grammar, restricted to
//     constants and counter references inside {...} placeholders.
//   - AddMonths / AddMonthsTo — calendar month arithmetic with floored
//     division and Gregorian day clamping, the non-linear building block
//     behind month/year durations.
//
// Grammar:
//
//	expr   := term (('+'|'-') term)*
//	term   := factor (('*'|'/') factor)*
//	factor := number unit? | 'sqrt' '(' expr ')' | '(' expr ')'
//	        | identifier | quoted-date | quoted-time
//
// A numeric literal may be followed by a unit abbreviation with or without a
// separating space (22kwh, 100 counter); a bare number is dimensionless.
// Quoted literals accept 'YYYY-MM-DD', 'YYYY-MM-DD HH:MM[:SS]' (a point in
// time in the configured location) and 'HH:MM[:SS]' (seconds since
// midnight).
//
// Evaluation:
//
//   - Every node's value is expressed in the node's own unit. Add/subtract
//     convert the right operand into the left operand's unit; multiply,
//     divide and sqrt combine raw values and derive the unit.
//   - Adding a month/year duration to a point in time goes through the
//     calendar (AddMonths on the broken-down date), never through linear
//     scaling; second-based durations add linearly.
//   - Calculate converts the root value into the target unit.
//
// Diagnostics accumulate on the Formula across one Parse: an incompatible
// add/subtract records both operands and a caret marker under the offending
// source span, and parsing continues so one pass reports every fault.
//
// Errors:
//
//   - ErrParse — malformed grammar, unknown identifier or bad literal.
//   - ErrUnitMismatch — incompatible add/subtract operands.
//   - ErrNotParsed / ErrInvalid — Calculate called before a successful,
//     clean Parse.
//   - ErrNoMeter / ErrNoRecord / ErrFieldNotFound — a reference could not
//     be resolved at evaluation time.
package formula
