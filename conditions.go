package elemental

import (
	"math"
	"strconv"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/pthm/elemental/lib/encoding"
)

// Condition compares one record field against a literal expression.
//
// Expr may start with a comparison operator (==, !=, <, <=, >, >=); without
// one, == is assumed. A Field ending in "()" names an accessor instead of a
// field:
//
//	elemental.Conditions{
//	    {Field: "active", Expr: "true"},
//	    {Field: "age", Expr: ">= 18"},
//	    {Field: "isOwner()", Expr: "true"},
//	}
type Condition struct {
	Field string
	Expr  string
}

// Conditions is an ordered condition set. Every condition must pass.
type Conditions []Condition

// ClassModifier adds Class when its conditions pass.
type ClassModifier struct {
	Class string
	When  Conditions
}

// ClassModifiers is an ordered list of conditional classes. Matching classes
// are appended in declaration order.
type ClassModifiers []ClassModifier

type operator string

const (
	opEq operator = "=="
	opNe operator = "!="
	opLt operator = "<"
	opLe operator = "<="
	opGt operator = ">"
	opGe operator = ">="
)

// operators is ordered longest first so "<=" is never read as "<".
var operators = []operator{opEq, opNe, opLe, opGe, opLt, opGt}

// parseExpr splits an expression into its operator and trimmed operand.
func parseExpr(expr string) (operator, string) {
	for _, op := range operators {
		if strings.HasPrefix(expr, string(op)) {
			return op, strings.TrimSpace(expr[len(op):])
		}
	}
	return opEq, expr
}

// literal is a typed operand.
type literal struct {
	kind literalKind
	b    bool
	i    int64
	f    float64
	s    string
}

type literalKind int

const (
	literalString literalKind = iota
	literalBool
	literalInt
	literalFloat
)

func parseLiteral(s string, legacyFalse bool) literal {
	switch s {
	case "true":
		return literal{kind: literalBool, b: true}
	case "false":
		return literal{kind: literalBool, b: legacyFalse}
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return literal{kind: literalInt, i: i}
	}
	if isDecimal(s) {
		if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return literal{kind: literalFloat, f: f}
		}
	}
	return literal{kind: literalString, s: s}
}

// isDecimal reports whether s is written as a plain decimal number, so
// words such as "NaN" or "Infinity" and hex floats stay strings.
func isDecimal(s string) bool {
	digits := false
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9':
			digits = true
		case c == '.', c == 'e', c == 'E', c == '+', c == '-':
		default:
			return false
		}
	}
	return digits
}

// compare returns -1, 0 or 1 after coercing v to the literal's type.
func (l literal) compare(v any) int {
	switch l.kind {
	case literalBool:
		return cmpInt(boolInt(toBool(v)), boolInt(l.b))
	case literalInt:
		return cmpInt(toInt(v), l.i)
	case literalFloat:
		return cmpFloat(toFloat(v), l.f)
	}
	return strings.Compare(toString(v), l.s)
}

func boolInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

func cmpInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (op operator) holds(c int) bool {
	switch op {
	case opNe:
		return c != 0
	case opLt:
		return c < 0
	case opLe:
		return c <= 0
	case opGt:
		return c > 0
	case opGe:
		return c >= 0
	}
	return c == 0
}

// TestConditions evaluates a condition set against a record with the
// default evaluator settings. See Builder.TestConditions.
func TestConditions(r Record, conds Conditions) bool {
	return defaultBuilder.TestConditions(r, conds)
}

// TestConditions reports whether every condition holds for r. An empty set
// holds. Every condition is evaluated even after one fails.
//
// Literals "true" and "false" compare as booleans, integer and float
// literals compare numerically, and anything else compares as a string. The
// record value is coerced to the literal's type first, so {age: ">=18"}
// holds for a record whose age is the string "20". Missing fields are nil.
func (b *Builder) TestConditions(r Record, conds Conditions) bool {
	valid := true
	for _, c := range conds {
		op, operand := parseExpr(c.Expr)
		lit := parseLiteral(operand, b.legacyFalse)
		if !op.holds(lit.compare(b.lookup(r, c.Field))) {
			valid = false
		}
	}
	return valid
}

// MatchClasses returns base followed by every modifier class whose
// conditions hold for r, space separated.
func (b *Builder) MatchClasses(r Record, base string, mods ClassModifiers) string {
	classes := base
	for _, m := range mods {
		if !b.TestConditions(r, m.When) {
			continue
		}
		if classes != "" {
			classes += " "
		}
		classes += m.Class
	}
	return classes
}

// lookup resolves a condition field: "name()" through the accessors, anything
// else through Record.Field.
func (b *Builder) lookup(r Record, field string) any {
	if name, ok := strings.CutSuffix(field, "()"); ok {
		return b.call(r, name)
	}
	if r == nil {
		return nil
	}
	v, _ := r.Field(field)
	return v
}

// call invokes a named accessor: the Builder's registry first, then the
// record's own Caller implementation.
func (b *Builder) call(r Record, name string) any {
	if fn, ok := b.accessors[name]; ok {
		return fn(r)
	}
	if c, ok := r.(Caller); ok {
		if v, ok := c.Call(name); ok {
			return v
		}
	}
	b.log.WithField("accessor", name).Debug("accessor not found")
	return nil
}

// UnmarshalYAML reads a field -> expression mapping in document order.
func (c *Conditions) UnmarshalYAML(n *yaml.Node) error {
	*c = nil
	return encoding.EachPair(n, func(key string, v *yaml.Node) error {
		*c = append(*c, Condition{Field: key, Expr: v.Value})
		return nil
	})
}

// MarshalYAML writes the set as an ordered mapping.
func (c Conditions) MarshalYAML() (any, error) {
	n := &yaml.Node{Kind: yaml.MappingNode}
	for _, cond := range c {
		n.Content = append(n.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: cond.Field},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: cond.Expr},
		)
	}
	return n, nil
}

// EncodeMsgpack writes the set as an ordered map.
func (c Conditions) EncodeMsgpack(enc *msgpack.Encoder) error {
	return encoding.EncodeMap(enc, len(c), func(i int) error {
		if err := enc.EncodeString(c[i].Field); err != nil {
			return err
		}
		return enc.EncodeString(c[i].Expr)
	})
}

// DecodeMsgpack reads the map written by EncodeMsgpack.
func (c *Conditions) DecodeMsgpack(dec *msgpack.Decoder) error {
	*c = nil
	return encoding.DecodeMap(dec, func(key string) error {
		v, err := dec.DecodeInterfaceLoose()
		if err != nil {
			return err
		}
		*c = append(*c, Condition{Field: key, Expr: toString(v)})
		return nil
	})
}

// UnmarshalYAML reads a class -> conditions mapping in document order.
func (m *ClassModifiers) UnmarshalYAML(n *yaml.Node) error {
	*m = nil
	return encoding.EachPair(n, func(key string, v *yaml.Node) error {
		var when Conditions
		if err := when.UnmarshalYAML(v); err != nil {
			return err
		}
		*m = append(*m, ClassModifier{Class: key, When: when})
		return nil
	})
}

// MarshalYAML writes the list as an ordered mapping.
func (m ClassModifiers) MarshalYAML() (any, error) {
	n := &yaml.Node{Kind: yaml.MappingNode}
	for _, mod := range m {
		when, err := mod.When.MarshalYAML()
		if err != nil {
			return nil, err
		}
		n.Content = append(n.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: mod.Class},
			when.(*yaml.Node),
		)
	}
	return n, nil
}

// EncodeMsgpack writes the list as an ordered map of condition maps.
func (m ClassModifiers) EncodeMsgpack(enc *msgpack.Encoder) error {
	return encoding.EncodeMap(enc, len(m), func(i int) error {
		if err := enc.EncodeString(m[i].Class); err != nil {
			return err
		}
		return m[i].When.EncodeMsgpack(enc)
	})
}

// DecodeMsgpack reads the map written by EncodeMsgpack.
func (m *ClassModifiers) DecodeMsgpack(dec *msgpack.Decoder) error {
	*m = nil
	return encoding.DecodeMap(dec, func(key string) error {
		var when Conditions
		if err := when.DecodeMsgpack(dec); err != nil {
			return err
		}
		*m = append(*m, ClassModifier{Class: key, When: when})
		return nil
	})
}
