package formula

import (
	"fmt"
	"strings"
	"time"

	"github.com/nossen/wmunits/units"
)

// FieldSource provides named, unit-tagged measurement values. The meter
// decoding layer implements it; the formula engine only borrows the
// reference and never retains it past the next Parse or Clear.
type FieldSource interface {
	// Field returns the current value and unit of the named field within the
	// expected quantity, or ok=false when the field is unknown.
	Field(name string, q units.Quantity) (value float64, unit units.Unit, ok bool)
}

// RecordSource provides the dimensionless indices of the decoded data record
// currently bound.
type RecordSource interface {
	StorageNr() int
	TariffNr() int
	SubunitNr() int
}

// Option configures a Formula.
type Option func(*Formula)

// WithLocation sets the reference time zone for quoted date literals and
// calendar month arithmetic. The default is time.Local.
func WithLocation(loc *time.Location) Option {
	return func(f *Formula) { f.loc = loc }
}

// Formula parses a unit-annotated arithmetic expression into a checked
// syntax tree and evaluates it into a caller-chosen unit. An instance is
// reusable across many Parse/Calculate cycles but must not be shared between
// goroutines.
type Formula struct {
	loc    *time.Location
	meter  FieldSource
	record RecordSource
	text   string
	root   node
	errs   []string
}

// New returns an empty Formula; call Parse before Calculate.
func New(opts ...Option) *Formula {
	f := &Formula{loc: time.Local}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Clear discards the parsed tree, accumulated diagnostics and both
// collaborator bindings, returning the Formula to its freshly constructed
// state.
func (f *Formula) Clear() {
	f.meter = nil
	f.record = nil
	f.text = ""
	f.root = nil
	f.errs = nil
}

// SetMeter rebinds the field source used to resolve named-field references.
func (f *Formula) SetMeter(meter FieldSource) { f.meter = meter }

// SetRecord rebinds the record source used to resolve counter references.
func (f *Formula) SetRecord(record RecordSource) { f.record = record }

// Parse tokenizes and parses text into a new syntax tree, discarding any
// previous tree, diagnostics and record binding. meter may be nil when the
// text contains no field references. A nil error means the formula is valid;
// otherwise Errors() carries the accumulated diagnostics.
func (f *Formula) Parse(meter FieldSource, text string) error {
	f.Clear()
	f.meter = meter
	f.text = text

	tokens, err := lex(text)
	if err != nil {
		f.errs = append(f.errs, err.Error()+"\n")
		return err
	}
	p := &parser{f: f, text: text, tokens: tokens, allowFields: true}
	root, err := p.parse()
	if err != nil {
		f.errs = append(f.errs, err.Error()+"\n")
		return err
	}
	f.root = root
	if len(f.errs) > 0 {
		return fmt.Errorf("%w:\n%s", ErrUnitMismatch, f.Errors())
	}
	return nil
}

// Valid reports whether the last Parse produced a tree without diagnostics.
func (f *Formula) Valid() bool { return f.root != nil && len(f.errs) == 0 }

// Errors returns the concatenation of all accumulated diagnostics; empty
// when the formula is valid.
func (f *Formula) Errors() string { return strings.Join(f.errs, "") }

// Tree renders the syntax tree in fully parenthesized diagnostic form, or ""
// before a parse.
func (f *Formula) Tree() string {
	if f.root == nil {
		return ""
	}
	var sb strings.Builder
	f.root.render(&sb)
	return sb.String()
}

// Calculate evaluates the tree bottom-up and converts the root value into
// the target unit. It fails fast when no formula is parsed, when the parse
// accumulated diagnostics, when a referenced collaborator is unbound, or
// when the root's unit cannot convert to the target.
func (f *Formula) Calculate(to units.Unit) (float64, error) {
	if f.root == nil {
		return 0, ErrNotParsed
	}
	if len(f.errs) > 0 {
		return 0, fmt.Errorf("%w:\n%s", ErrInvalid, f.Errors())
	}
	v, err := f.root.eval(f)
	if err != nil {
		return 0, err
	}
	return f.root.si().ConvertTo(v, units.SIUnitOf(to))
}
