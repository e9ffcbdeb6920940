package units

import "strings"

// ExtractUnit splits a driver field name into its base name and trailing
// unit suffix: "total_kwh" → ("total", KWH, true). The suffix is everything
// after the last underscore and must be a registered unit name; the base
// name must be non-empty. Only the last underscore separates, so
// "work__c" → ("work_", C, true).
func ExtractUnit(field string) (string, Unit, bool) {
	i := strings.LastIndexByte(field, '_')
	if i <= 0 {
		return "", "", false
	}
	u, ok := LookupUnit(field[i+1:])
	if !ok {
		return "", "", false
	}
	return field[:i], u, true
}
