package formula

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/nossen/wmunits/units"
)

// node is one vertex of the syntax tree. Every node carries its resolved
// physical unit, fixed when the node is built; eval returns the node's value
// expressed in that unit.
type node interface {
	si() units.SIUnit
	eval(f *Formula) (float64, error)
	render(sb *strings.Builder)
}

type opKind int

const (
	opAdd opKind = iota
	opSub
	opTimes
	opDiv
)

func (o opKind) tag() string {
	switch o {
	case opAdd:
		return "ADD"
	case opSub:
		return "SUB"
	case opTimes:
		return "TIMES"
	default:
		return "DIV"
	}
}

func formatValue(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

func quantityTag(q units.Quantity) string {
	if q == "" {
		return "?"
	}
	return string(q)
}

// constNode is a numeric literal with its declared unit.
type constNode struct {
	value float64
	name  units.Unit
	unit  units.SIUnit
}

func (n *constNode) si() units.SIUnit { return n.unit }

func (n *constNode) eval(*Formula) (float64, error) { return n.value, nil }

func (n *constNode) render(sb *strings.Builder) {
	fmt.Fprintf(sb, "<CONST %s %s[%s]%s>",
		formatValue(n.value), n.name, n.unit, quantityTag(n.unit.Quantity()))
}

// fieldNode references a named measurement resolved against the bound field
// source at evaluation time. The unit suffix of the source identifier fixes
// both the expected quantity and the unit the value is expressed in.
type fieldNode struct {
	name string
	decl units.Unit
	unit units.SIUnit
}

func (n *fieldNode) si() units.SIUnit { return n.unit }

func (n *fieldNode) eval(f *Formula) (float64, error) {
	if f.meter == nil {
		return 0, fmt.Errorf("%w: cannot resolve %s_%s", ErrNoMeter, n.name, n.decl)
	}
	v, u, ok := f.meter.Field(n.name, n.unit.Quantity())
	if !ok {
		return 0, fmt.Errorf("%w: %s (%s)", ErrFieldNotFound, n.name, n.unit.Quantity())
	}
	return units.SIUnitOf(u).ConvertTo(v, n.unit)
}

func (n *fieldNode) render(sb *strings.Builder) {
	fmt.Fprintf(sb, "<FIELD %s %s[%s]%s>",
		n.name, n.decl, n.unit, quantityTag(n.unit.Quantity()))
}

// counterNode references one of the dimensionless record indices.
type counterNode struct {
	name string // storage_counter, tariff_counter or subunit_counter
}

func (n *counterNode) si() units.SIUnit { return units.SIUnitOf(units.COUNTER) }

func (n *counterNode) eval(f *Formula) (float64, error) {
	if f.record == nil {
		return 0, fmt.Errorf("%w: cannot resolve %s", ErrNoRecord, n.name)
	}
	switch n.name {
	case "storage_counter":
		return float64(f.record.StorageNr()), nil
	case "tariff_counter":
		return float64(f.record.TariffNr()), nil
	default:
		return float64(f.record.SubunitNr()), nil
	}
}

func (n *counterNode) render(sb *strings.Builder) {
	fmt.Fprintf(sb, "<COUNTER %s>", n.name)
}

// binNode is a binary operation. Add/sub nodes hold the left operand's unit
// and convert the right operand into it; times/div nodes hold the derived
// unit. A calendar node adds a duration to a point in time through the
// calendar instead of linearly; months is set when the duration is a
// month/year unit whose length varies.
type binNode struct {
	op          opKind
	left, right node
	unit        units.SIUnit
	calendar    bool
	months      bool
}

func (n *binNode) si() units.SIUnit { return n.unit }

func (n *binNode) eval(f *Formula) (float64, error) {
	lv, err := n.left.eval(f)
	if err != nil {
		return 0, err
	}
	rv, err := n.right.eval(f)
	if err != nil {
		return 0, err
	}
	switch n.op {
	case opTimes:
		return lv * rv, nil
	case opDiv:
		return lv / rv, nil
	}
	if n.calendar {
		return n.evalCalendar(f, lv, rv)
	}
	rc, err := n.right.si().ConvertTo(rv, n.left.si())
	if err != nil {
		return 0, err
	}
	if n.op == opSub {
		return lv - rc, nil
	}
	return lv + rc, nil
}

// evalCalendar adds the right duration to the left point in time. Month and
// year durations go through AddMonths on the broken-down date in the
// formula's location; second-based durations add linearly.
func (n *binNode) evalCalendar(f *Formula, lv, rv float64) (float64, error) {
	secs, err := n.left.si().ConvertTo(lv, units.SIUnitOf(units.UnixTimestamp))
	if err != nil {
		return 0, err
	}
	if n.months {
		mv, err := n.right.si().ConvertTo(rv, units.SIUnitOf(units.Month))
		if err != nil {
			return 0, err
		}
		count := int(math.Round(mv))
		if n.op == opSub {
			count = -count
		}
		t := time.Unix(int64(secs), 0).In(f.loc)
		t = AddMonthsTo(t, count)
		return units.SIUnitOf(units.UnixTimestamp).ConvertTo(float64(t.Unix()), n.left.si())
	}
	rsecs, err := n.right.si().ConvertTo(rv, units.SIUnitOf(units.Second))
	if err != nil {
		return 0, err
	}
	if n.op == opSub {
		rsecs = -rsecs
	}
	return units.SIUnitOf(units.UnixTimestamp).ConvertTo(secs+rsecs, n.left.si())
}

func (n *binNode) render(sb *strings.Builder) {
	sb.WriteString("<" + n.op.tag() + " ")
	n.left.render(sb)
	sb.WriteString(" ")
	n.right.render(sb)
	sb.WriteString(" >")
}

// sqrtNode halves the operand's dimension vector; construction already
// verified every exponent is even.
type sqrtNode struct {
	x    node
	unit units.SIUnit
}

func (n *sqrtNode) si() units.SIUnit { return n.unit }

func (n *sqrtNode) eval(f *Formula) (float64, error) {
	v, err := n.x.eval(f)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(v), nil
}

func (n *sqrtNode) render(sb *strings.Builder) {
	sb.WriteString("<SQRT ")
	n.x.render(sb)
	sb.WriteString(" >")
}

// datetimeNode is a quoted date or date-time literal, already resolved in
// the formula's location.
type datetimeNode struct {
	at time.Time
}

func (n *datetimeNode) si() units.SIUnit { return units.SIUnitOf(units.UnixTimestamp) }

func (n *datetimeNode) eval(*Formula) (float64, error) { return float64(n.at.Unix()), nil }

func (n *datetimeNode) render(sb *strings.Builder) {
	fmt.Fprintf(sb, "<DATETIME %s>", FormatDateTime(n.at))
}

// timeNode is a quoted time-of-day literal: a duration in seconds since
// midnight.
type timeNode struct {
	secs int
}

func (n *timeNode) si() units.SIUnit { return units.SIUnitOf(units.Second) }

func (n *timeNode) eval(*Formula) (float64, error) { return float64(n.secs), nil }

func (n *timeNode) render(sb *strings.Builder) {
	fmt.Fprintf(sb, "<TIME %02d:%02d:%02d>", n.secs/3600, n.secs/60%60, n.secs%60)
}
