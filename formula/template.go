package formula

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nossen/wmunits/units"
)

// segment is either literal text or an embedded sub-formula.
type segment struct {
	literal string
	f       *Formula
}

// Template interpolates {...} placeholders in a string with the numeric
// result of the embedded expression, evaluated against a record source.
// Placeholders use a restricted grammar: constants and counter references
// only, no field references. A Template is parsed once and applied any
// number of times against different records.
type Template struct {
	text     string
	segments []segment
	opts     []Option
	errs     []string
}

// NewTemplate returns an empty Template; options are forwarded to every
// embedded sub-formula.
func NewTemplate(opts ...Option) *Template {
	return &Template{opts: opts}
}

// Parse splits text on {...} boundaries and eagerly parses each placeholder.
// Placeholder parse failures accumulate like Formula diagnostics.
func (t *Template) Parse(text string) error {
	t.text = text
	t.segments = nil
	t.errs = nil

	rest := text
	for len(rest) > 0 {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			t.segments = append(t.segments, segment{literal: rest})
			break
		}
		if open > 0 {
			t.segments = append(t.segments, segment{literal: rest[:open]})
		}
		closing := strings.IndexByte(rest[open:], '}')
		if closing < 0 {
			t.errs = append(t.errs, fmt.Sprintf("unterminated placeholder in %q\n", text))
			return fmt.Errorf("%w: unterminated placeholder in %q", ErrParse, text)
		}
		expr := rest[open+1 : open+closing]
		rest = rest[open+closing+1:]

		f := New(t.opts...)
		if err := t.parsePlaceholder(f, expr); err != nil {
			t.errs = append(t.errs, f.Errors())
			return err
		}
		t.segments = append(t.segments, segment{f: f})
	}
	if len(t.errs) > 0 {
		return fmt.Errorf("%w:\n%s", ErrParse, t.Errors())
	}
	return nil
}

// parsePlaceholder parses one embedded expression with field references
// disabled.
func (t *Template) parsePlaceholder(f *Formula, expr string) error {
	f.text = expr
	tokens, err := lex(expr)
	if err != nil {
		f.errs = append(f.errs, err.Error()+"\n")
		return err
	}
	p := &parser{f: f, text: expr, tokens: tokens, allowFields: false}
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

// Errors returns the concatenated placeholder diagnostics; empty when the
// template parsed cleanly.
func (t *Template) Errors() string { return strings.Join(t.errs, "") }

// Apply evaluates every placeholder against rec in a dimensionless unit and
// concatenates the results with the literal segments in original order.
// Whole-number results render without a fractional part.
func (t *Template) Apply(rec RecordSource) (string, error) {
	if len(t.errs) > 0 {
		return "", fmt.Errorf("%w:\n%s", ErrInvalid, t.Errors())
	}
	var sb strings.Builder
	for _, seg := range t.segments {
		if seg.f == nil {
			sb.WriteString(seg.literal)
			continue
		}
		seg.f.SetRecord(rec)
		v, err := seg.f.Calculate(units.COUNTER)
		if err != nil {
			return "", err
		}
		sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	return sb.String(), nil
}
