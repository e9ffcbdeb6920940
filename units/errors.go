package units

import "errors"

var (
	// ErrUnknownUnit indicates a unit name or Unit value that is not in the
	// registry. Unregistered names are a hard error, not an extension point.
	ErrUnknownUnit = errors.New("units: unknown unit")

	// ErrCannotConvert indicates a conversion between units whose dimension
	// vectors, quantities or special-unit membership do not line up.
	ErrCannotConvert = errors.New("units: cannot convert")

	// ErrInvalidExp indicates an operation on a dimension vector that has
	// overflowed (or mixed exclusive markers) and is permanently Invalid.
	ErrInvalidExp = errors.New("units: invalid dimension vector")

	// ErrOddExponent indicates a square root of a dimension vector whose
	// exponents are not all even.
	ErrOddExponent = errors.New("units: exponents not evenly divisible")
)
