package units

// Quantity is the semantic category of a physical unit. The zero value ""
// denotes an unnamed derived quantity (a multiply/divide result whose
// scale+dimension pair matches no registry entry); such values still convert
// to any unit with equal dimensions.
type Quantity string

const (
	Time               Quantity = "Time"
	Length             Quantity = "Length"
	Mass               Quantity = "Mass"
	Amperage           Quantity = "Amperage"
	Voltage            Quantity = "Voltage"
	Temperature        Quantity = "Temperature"
	Energy             Quantity = "Energy"
	ReactiveEnergy     Quantity = "Reactive_Energy"
	ApparentEnergy     Quantity = "Apparent_Energy"
	Power              Quantity = "Power"
	Volume             Quantity = "Volume"
	Flow               Quantity = "Flow"
	AmountOfSubstance  Quantity = "AmountOfSubstance"
	LuminousIntensity  Quantity = "LuminousIntensity"
	RelativeHumidity   Quantity = "RelativeHumidity"
	HeatCostAllocation Quantity = "HCA"
	Pressure           Quantity = "Pressure"
	Frequency          Quantity = "Frequency"
	Dimensionless      Quantity = "Dimensionless"
	Angle              Quantity = "Angle"
	PointInTime        Quantity = "PointInTime"
	Text               Quantity = "Text"
)

// Aliased reports whether two distinct quantities belong to one registry
// alias group and are therefore mutually convertible (the energy-like
// quantities).
func Aliased(a, b Quantity) bool {
	ga, ok := reg.aliasGroup[a]
	if !ok {
		return false
	}
	gb, ok := reg.aliasGroup[b]
	return ok && ga == gb
}

func compatibleQuantities(a, b Quantity) bool {
	return a == b || a == "" || b == "" || Aliased(a, b)
}
