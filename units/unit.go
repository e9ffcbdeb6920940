package units

// Unit is a named registry unit, identified by its canonical lowercase
// token. The token set is a contract relied on by driver field declarations
// and CLI field suffixes; unregistered names are an error, never an
// extension point.
type Unit string

const (
	Second Unit = "s"
	Minute Unit = "min"
	Hour   Unit = "h"
	Day    Unit = "d"
	Month  Unit = "month"
	Year   Unit = "y"

	M  Unit = "m"
	KG Unit = "kg"

	Ampere Unit = "a"
	Volt   Unit = "v"

	C Unit = "c"
	K Unit = "k"
	F Unit = "f"

	KWH Unit = "kwh"
	MJ  Unit = "mj"
	GJ  Unit = "gj"
	M3C Unit = "m3c"

	KVARH Unit = "kvarh"
	KVAH  Unit = "kvah"

	KW   Unit = "kw"
	M3CH Unit = "m3ch"

	M3 Unit = "m3"
	L  Unit = "l"

	M3H Unit = "m3h"
	LH  Unit = "lh"

	MOL Unit = "mol"
	CD  Unit = "cd"
	RH  Unit = "rh"
	HCA Unit = "hca"

	BAR Unit = "bar"
	PA  Unit = "pa"
	HZ  Unit = "hz"

	COUNTER Unit = "counter"
	FACTOR  Unit = "factor"
	NUMBER  Unit = "number"
	PCT     Unit = "pct"

	Degree Unit = "deg"
	Radian Unit = "rad"

	UnixTimestamp Unit = "ut"
	UTCTimestamp  Unit = "utc"
	LocalTime     Unit = "lt"

	TXT Unit = "txt"
)
