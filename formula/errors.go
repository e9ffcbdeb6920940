package formula

import "errors"

var (
	// ErrParse - the formula text is malformed (bad token, unbalanced
	// parenthesis, unknown unit or identifier).
	ErrParse = errors.New("formula: parse error")

	// ErrUnitMismatch - add/subtract operands carry incompatible units; the
	// accumulated diagnostics carry the caret-annotated source span.
	ErrUnitMismatch = errors.New("formula: incompatible units")

	// ErrNotParsed - Calculate was called before a successful Parse.
	ErrNotParsed = errors.New("formula: no formula parsed")

	// ErrInvalid - Calculate was called on a formula whose parse accumulated
	// diagnostics; inspect Errors() first.
	ErrInvalid = errors.New("formula: formula has errors")

	// ErrNoMeter - the formula references named fields but no field source is
	// bound.
	ErrNoMeter = errors.New("formula: no field source bound")

	// ErrNoRecord - the formula references record counters but no record
	// source is bound.
	ErrNoRecord = errors.New("formula: no record source bound")

	// ErrFieldNotFound - the bound field source has no value for a referenced
	// field name.
	ErrFieldNotFound = errors.New("formula: field not found")
)
