package formula

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/nossen/wmunits/units"
)

// parser is a recursive-descent parser over the lexed token stream.
// Grammar:
//
//	expr   := term (('+'|'-') term)*
//	term   := factor (('*'|'/') factor)*
//	factor := number unit? | 'sqrt' '(' expr ')' | '(' expr ')'
//	        | identifier | quoted-datetime | quoted-time
//
// Unit-mismatch faults do not abort parsing: the node is built anyway and a
// diagnostic is accumulated on the owning Formula, so one pass reports every
// incompatible pair.
type parser struct {
	f           *Formula
	text        string
	tokens      []token
	pos         int
	allowFields bool
}

func (p *parser) peek() token { return p.tokens[p.pos] }

// leadingToken returns the next token that is not an opening parenthesis, so
// caret markers anchor on a parenthesized operand's first real token.
func (p *parser) leadingToken() token {
	for i := p.pos; ; i++ {
		if t := p.tokens[i]; t.kind != tokLParen {
			return t
		}
	}
}

func (p *parser) next() token {
	t := p.tokens[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) expect(kind tokenKind, what string) (token, error) {
	t := p.next()
	if t.kind != kind {
		return t, fmt.Errorf("%w: expected %s, got %s at offset %d", ErrParse, what, t, t.pos)
	}
	return t, nil
}

func (p *parser) parse() (node, error) {
	n, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.kind != tokEOF {
		return nil, fmt.Errorf("%w: unexpected %s at offset %d", ErrParse, t, t.pos)
	}
	return n, nil
}

func (p *parser) parseExpr() (node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		t := p.peek()
		if t.kind != tokPlus && t.kind != tokMinus {
			return left, nil
		}
		opTok := p.next()
		rightTok := p.leadingToken()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		op := opAdd
		if opTok.kind == tokMinus {
			op = opSub
		}
		left = p.makeAddSub(op, left, right, opTok, rightTok)
	}
}

// makeAddSub builds an add/subtract node. The pairing is legal when both
// quantities are compatible (linear combination, right converted into the
// left operand's unit) or when a duration is added to a point in time
// (calendar combination). Anything else accumulates a diagnostic naming both
// operands with a caret marker under the right operand's source span; the
// node is still built so parsing continues.
func (p *parser) makeAddSub(op opKind, left, right node, opTok, rightTok token) node {
	lq := left.si().Quantity()
	rq := right.si().Quantity()

	if lq == units.PointInTime && rq == units.Time {
		months := false
		if u, ok := right.si().AsUnitIn(units.Time); ok && (u == units.Month || u == units.Year) {
			months = true
		}
		return &binNode{op: op, left: left, right: right, unit: left.si(), calendar: true, months: months}
	}

	if !compatible(lq, rq) {
		verb, a, b := "add", left, right
		prep := "to"
		if op == opSub {
			verb, a, b = "subtract", right, left
			prep = "from"
		}
		marker := strings.Repeat(" ", opTok.pos) + "^" +
			strings.Repeat("~", rightTok.pos+rightTok.width-opTok.pos)
		p.f.errs = append(p.f.errs, fmt.Sprintf("Cannot %s [%s|%s|%s] %s [%s|%s|%s]!\n%s\n%s\n",
			verb,
			a.si().Name(), quantityTag(a.si().Quantity()), a.si(),
			prep,
			b.si().Name(), quantityTag(b.si().Quantity()), b.si(),
			p.text, marker))
	}

	return &binNode{op: op, left: left, right: right, unit: left.si()}
}

func compatible(a, b units.Quantity) bool {
	return a == b || a == "" || b == "" || units.Aliased(a, b)
}

func (p *parser) parseTerm() (node, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for {
		t := p.peek()
		if t.kind != tokStar && t.kind != tokSlash {
			return left, nil
		}
		p.next()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		if t.kind == tokStar {
			left = &binNode{op: opTimes, left: left, right: right, unit: left.si().Mul(right.si())}
		} else {
			left = &binNode{op: opDiv, left: left, right: right, unit: left.si().Div(right.si())}
		}
	}
}

func (p *parser) parseFactor() (node, error) {
	t := p.next()
	switch t.kind {
	case tokNumber:
		return p.parseConstant(t)
	case tokLParen:
		n, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen, `")"`); err != nil {
			return nil, err
		}
		return n, nil
	case tokQuoted:
		return p.parseQuoted(t)
	case tokWord:
		switch t.text {
		case "sqrt":
			return p.parseSqrt(t)
		case "storage_counter", "tariff_counter", "subunit_counter":
			return &counterNode{name: t.text}, nil
		}
		return p.parseField(t)
	default:
		return nil, fmt.Errorf("%w: unexpected %s at offset %d", ErrParse, t, t.pos)
	}
}

// parseConstant reads an optional unit abbreviation after a numeric literal,
// adjacent or space-separated. A bare number is dimensionless.
func (p *parser) parseConstant(numTok token) (node, error) {
	v, err := strconv.ParseFloat(numTok.text, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed number %q at offset %d", ErrParse, numTok.text, numTok.pos)
	}
	name := units.COUNTER
	if t := p.peek(); t.kind == tokWord {
		if u, ok := units.LookupUnit(t.text); ok {
			p.next()
			name = u
		}
	}
	return &constNode{value: v, name: name, unit: units.SIUnitOf(name)}, nil
}

func (p *parser) parseSqrt(t token) (node, error) {
	if _, err := p.expect(tokLParen, `"("`); err != nil {
		return nil, err
	}
	x, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokRParen, `")"`); err != nil {
		return nil, err
	}
	root, err := x.si().Sqrt()
	if err != nil {
		return nil, fmt.Errorf("%w: sqrt at offset %d: %v", ErrParse, t.pos, err)
	}
	return &sqrtNode{x: x, unit: root}, nil
}

// parseField resolves an identifier as a named-field reference: the last
// underscore-separated component must be a registered unit abbreviation,
// which fixes the expected quantity.
func (p *parser) parseField(t token) (node, error) {
	if !p.allowFields {
		return nil, fmt.Errorf("%w: field reference %q not allowed here at offset %d", ErrParse, t.text, t.pos)
	}
	name, u, ok := units.ExtractUnit(t.text)
	if !ok {
		return nil, fmt.Errorf("%w: unknown identifier %q at offset %d", ErrParse, t.text, t.pos)
	}
	return &fieldNode{name: name, decl: u, unit: units.SIUnitOf(u)}, nil
}

var datetimeLayouts = []string{"2006-01-02 15:04:05", "2006-01-02 15:04", "2006-01-02"}
var clockLayouts = []string{"15:04:05", "15:04"}

// parseQuoted resolves a quoted literal: date and date-time forms become a
// point in time in the formula's location; time-only forms become a duration
// in seconds since midnight.
func (p *parser) parseQuoted(t token) (node, error) {
	for _, layout := range datetimeLayouts {
		if at, err := time.ParseInLocation(layout, t.text, p.f.loc); err == nil {
			return &datetimeNode{at: at}, nil
		}
	}
	for _, layout := range clockLayouts {
		if c, err := time.Parse(layout, t.text); err == nil {
			return &timeNode{secs: c.Hour()*3600 + c.Minute()*60 + c.Second()}, nil
		}
	}
	return nil, fmt.Errorf("%w: malformed date/time literal %q at offset %d", ErrParse, t.text, t.pos)
}
