package units

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed units.yaml
var unitsYAML []byte

// Entry is one registry row: a named unit and everything known about it.
type Entry struct {
	Unit     Unit
	Human    string
	Quantity Quantity
	Scale    float64
	Offset   float64
	Exp      Exp
	Literal  bool // render as "1<token>" instead of the SI decomposition
	Special  bool // convertible only to itself
	Info     string
}

// registry is the immutable process-lifetime unit table. Built once in
// init() from the embedded YAML; never mutated afterwards.
type registryTable struct {
	entries    []*Entry
	byUnit     map[Unit]*Entry
	byQuantity map[Quantity][]*Entry
	defaults   map[Quantity]Unit
	aliasGroup map[Quantity]int
}

var reg *registryTable

func init() {
	t, err := parseRegistry(unitsYAML)
	if err != nil {
		// The table is compiled in; a parse failure is a programmer error.
		panic(fmt.Sprintf("units: bad embedded unit table: %v", err))
	}
	reg = t
}

// Raw YAML shapes, converted into the validated model below.

type rawTable struct {
	Quantities []rawQuantity `yaml:"quantities"`
	Aliases    [][]string    `yaml:"aliases"`
	Units      []rawUnit     `yaml:"units"`
}

type rawQuantity struct {
	Name    string `yaml:"name"`
	Default string `yaml:"default"`
}

type rawUnit struct {
	Unit     string         `yaml:"unit"`
	Human    string         `yaml:"human"`
	Quantity string         `yaml:"quantity"`
	Scale    float64        `yaml:"scale"`
	Offset   float64        `yaml:"offset"`
	Exp      map[string]int `yaml:"exp"`
	Literal  bool           `yaml:"literal"`
	Special  bool           `yaml:"special"`
	Info     string         `yaml:"info"`
}

func parseRegistry(data []byte) (*registryTable, error) {
	var raw rawTable
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("yaml parse: %w", err)
	}
	t := &registryTable{
		byUnit:     make(map[Unit]*Entry),
		byQuantity: make(map[Quantity][]*Entry),
		defaults:   make(map[Quantity]Unit),
		aliasGroup: make(map[Quantity]int),
	}

	quantities := make(map[Quantity]string, len(raw.Quantities))
	for _, q := range raw.Quantities {
		if q.Name == "" || q.Default == "" {
			return nil, fmt.Errorf("quantity %q needs a name and a default unit", q.Name)
		}
		if _, dup := quantities[Quantity(q.Name)]; dup {
			return nil, fmt.Errorf("duplicate quantity %q", q.Name)
		}
		quantities[Quantity(q.Name)] = q.Default
	}

	for gi, group := range raw.Aliases {
		for _, name := range group {
			q := Quantity(name)
			if _, ok := quantities[q]; !ok {
				return nil, fmt.Errorf("alias group references unknown quantity %q", name)
			}
			t.aliasGroup[q] = gi
		}
	}

	for _, ru := range raw.Units {
		if ru.Unit == "" || ru.Unit != strings.ToLower(ru.Unit) {
			return nil, fmt.Errorf("unit name %q must be non-empty lowercase", ru.Unit)
		}
		if ru.Scale == 0 {
			return nil, fmt.Errorf("unit %q has zero scale", ru.Unit)
		}
		q := Quantity(ru.Quantity)
		if _, ok := quantities[q]; !ok {
			return nil, fmt.Errorf("unit %q references unknown quantity %q", ru.Unit, ru.Quantity)
		}
		exp, err := expFromMap(ru.Exp)
		if err != nil {
			return nil, fmt.Errorf("unit %q: %w", ru.Unit, err)
		}
		e := &Entry{
			Unit:     Unit(ru.Unit),
			Human:    ru.Human,
			Quantity: q,
			Scale:    ru.Scale,
			Offset:   ru.Offset,
			Exp:      exp,
			Literal:  ru.Literal,
			Special:  ru.Special,
			Info:     ru.Info,
		}
		if _, dup := t.byUnit[e.Unit]; dup {
			return nil, fmt.Errorf("duplicate unit %q", ru.Unit)
		}
		t.entries = append(t.entries, e)
		t.byUnit[e.Unit] = e
		t.byQuantity[q] = append(t.byQuantity[q], e)
	}

	// Every quantity must have at least one member and a member default.
	for q, def := range quantities {
		members := t.byQuantity[q]
		if len(members) == 0 {
			return nil, fmt.Errorf("quantity %q has no member units", q)
		}
		d, ok := t.byUnit[Unit(def)]
		if !ok || d.Quantity != q {
			return nil, fmt.Errorf("quantity %q default %q is not a member", q, def)
		}
		t.defaults[q] = Unit(def)
	}
	return t, nil
}

func expFromMap(m map[string]int) (Exp, error) {
	x := NewExp()
	for name, n := range m {
		d := -1
		for i, dn := range dimNames {
			if dn == name {
				d = i
				break
			}
		}
		if d < 0 {
			return Exp{}, fmt.Errorf("unknown dimension %q", name)
		}
		x = x.with(d, n)
	}
	if !x.Valid() {
		return Exp{}, fmt.Errorf("%w: %s", ErrInvalidExp, x.String())
	}
	return x, nil
}

// LookupUnit resolves a unit name, case-insensitively, to its canonical
// registry unit.
func LookupUnit(name string) (Unit, bool) {
	e, ok := reg.byUnit[Unit(strings.ToLower(name))]
	if !ok {
		return "", false
	}
	return e.Unit, true
}

// QuantityOf returns the quantity a registered unit belongs to.
func QuantityOf(u Unit) (Quantity, bool) {
	e, ok := reg.byUnit[u]
	if !ok {
		return "", false
	}
	return e.Quantity, true
}

// UnitsIn returns the member units of a quantity in declaration order.
func UnitsIn(q Quantity) []Unit {
	members := reg.byQuantity[q]
	out := make([]Unit, len(members))
	for i, e := range members {
		out[i] = e.Unit
	}
	return out
}

// Quantities returns every registered quantity in declaration order of its
// first member unit.
func Quantities() []Quantity {
	var out []Quantity
	seen := make(map[Quantity]bool)
	for _, e := range reg.entries {
		if !seen[e.Quantity] {
			seen[e.Quantity] = true
			out = append(out, e.Quantity)
		}
	}
	return out
}

// DefaultUnit returns the default member unit of a quantity.
func DefaultUnit(q Quantity) (Unit, bool) {
	u, ok := reg.defaults[q]
	return u, ok
}

// HumanName returns the human-readable name of a registered unit.
func HumanName(u Unit) (string, bool) {
	e, ok := reg.byUnit[u]
	if !ok {
		return "", false
	}
	return e.Human, true
}

// AllUnits returns every registered unit in declaration order.
func AllUnits() []Unit {
	out := make([]Unit, len(reg.entries))
	for i, e := range reg.entries {
		out[i] = e.Unit
	}
	return out
}

func entryOf(u Unit) (*Entry, bool) {
	e, ok := reg.byUnit[u]
	return e, ok
}
