// Package specification provides composable query predicates over an entity's
// API field names. A Specification is rendered into a parameterised SQL boolean
// expression against a field-to-column map, so callers can filter without
// writing SQL and without ever placing user input in the query text.
package specification

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownField is returned when a predicate names a field the entity does not expose.
var ErrUnknownField = errors.New("unknown field")

// Fields maps API field names (e.g. "firstName") to column names (e.g. "first_name").
type Fields map[string]string

// Column resolves an API field name to its column.
func (f Fields) Column(field string) (string, error) {
	col, ok := f[field]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return col, nil
}

// Specification is a predicate over persisted entities.
type Specification interface {
	render(b *builder) (string, error)
}

type builder struct {
	fields Fields
	args   []any
}

func (b *builder) bind(v any) string {
	b.args = append(b.args, v)
	return fmt.Sprintf("$%d", len(b.args))
}

// Render returns the SQL expression for spec and its arguments, numbering
// placeholders from $1. A nil spec renders as an empty string.
func Render(spec Specification, fields Fields) (string, []any, error) {
	return RenderFrom(spec, fields, 0)
}

// RenderFrom is Render for queries that already bind start arguments ahead of
// the predicate; the first placeholder is $(start+1). The returned slice holds
// only the predicate's own arguments.
func RenderFrom(spec Specification, fields Fields, start int) (string, []any, error) {
	if spec == nil {
		return "", nil, nil
	}
	b := &builder{fields: fields, args: make([]any, start)}
	sql, err := spec.render(b)
	if err != nil {
		return "", nil, err
	}
	return sql, b.args[start:], nil
}

type comparison struct {
	field string
	op    string
	value any
}

func (c comparison) render(b *builder) (string, error) {
	col, err := b.fields.Column(c.field)
	if err != nil {
		return "", err
	}
	if c.value == nil {
		switch c.op {
		case "=":
			return col + " IS NULL", nil
		case "<>":
			return col + " IS NOT NULL", nil
		}
		return "", fmt.Errorf("cannot compare %q %s NULL", c.field, c.op)
	}
	return fmt.Sprintf("%s %s %s", col, c.op, b.bind(c.value)), nil
}

// Equal matches rows whose field equals value. A nil value matches NULL.
func Equal(field string, value any) Specification { return comparison{field, "=", value} }

// NotEqual matches rows whose field differs from value. A nil value matches NOT NULL.
func NotEqual(field string, value any) Specification { return comparison{field, "<>", value} }

// GreaterThan matches rows whose field is strictly greater than value.
func GreaterThan(field string, value any) Specification { return comparison{field, ">", value} }

// GreaterThanOrEqual matches rows whose field is greater than or equal to value.
func GreaterThanOrEqual(field string, value any) Specification {
	return comparison{field, ">=", value}
}

// LessThan matches rows whose field is strictly less than value.
func LessThan(field string, value any) Specification { return comparison{field, "<", value} }

// LessThanOrEqual matches rows whose field is less than or equal to value.
func LessThanOrEqual(field string, value any) Specification {
	return comparison{field, "<=", value}
}

type like struct {
	field  string
	substr string
	negate bool
}

func (l like) render(b *builder) (string, error) {
	col, err := b.fields.Column(l.field)
	if err != nil {
		return "", err
	}
	pattern := "%" + escapeLike(l.substr) + "%"
	expr := fmt.Sprintf(`UPPER(%s) LIKE UPPER(%s) ESCAPE '\'`, col, b.bind(pattern))
	if l.negate {
		return "NOT (" + expr + ")", nil
	}
	return expr, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// Contains matches rows whose field contains substr, ignoring case.
func Contains(field, substr string) Specification { return like{field: field, substr: substr} }

// DoesNotContain matches rows whose field does not contain substr, ignoring case.
func DoesNotContain(field, substr string) Specification {
	return like{field: field, substr: substr, negate: true}
}

type membership struct {
	field  string
	values []any
	negate bool
}

func (m membership) render(b *builder) (string, error) {
	col, err := b.fields.Column(m.field)
	if err != nil {
		return "", err
	}
	if len(m.values) == 0 {
		if m.negate {
			return "TRUE", nil
		}
		return "FALSE", nil
	}
	placeholders := make([]string, len(m.values))
	for i, v := range m.values {
		placeholders[i] = b.bind(v)
	}
	op := "IN"
	if m.negate {
		op = "NOT IN"
	}
	return fmt.Sprintf("%s %s (%s)", col, op, strings.Join(placeholders, ", ")), nil
}

// In matches rows whose field equals one of values.
func In(field string, values ...any) Specification {
	return membership{field: field, values: values}
}

// NotIn matches rows whose field equals none of values.
func NotIn(field string, values ...any) Specification {
	return membership{field: field, values: values, negate: true}
}

type nullCheck struct {
	field   string
	notNull bool
}

func (n nullCheck) render(b *builder) (string, error) {
	col, err := b.fields.Column(n.field)
	if err != nil {
		return "", err
	}
	if n.notNull {
		return col + " IS NOT NULL", nil
	}
	return col + " IS NULL", nil
}

// IsNull matches rows where field has no value.
func IsNull(field string) Specification { return nullCheck{field: field} }

// IsNotNull matches rows where field has a value.
func IsNotNull(field string) Specification { return nullCheck{field: field, notNull: true} }

type junction struct {
	op       string
	children []Specification
}

func (j junction) render(b *builder) (string, error) {
	parts := make([]string, 0, len(j.children))
	for _, c := range j.children {
		if c == nil {
			continue
		}
		sql, err := c.render(b)
		if err != nil {
			return "", err
		}
		parts = append(parts, sql)
	}
	switch len(parts) {
	case 0:
		if j.op == "AND" {
			return "TRUE", nil
		}
		return "FALSE", nil
	case 1:
		return parts[0], nil
	}
	return "(" + strings.Join(parts, " "+j.op+" ") + ")", nil
}

// And matches rows satisfying every non-nil spec. With none it matches everything.
func And(specs ...Specification) Specification { return junction{op: "AND", children: specs} }

// Or matches rows satisfying at least one non-nil spec. With none it matches nothing.
func Or(specs ...Specification) Specification { return junction{op: "OR", children: specs} }

type negation struct {
	spec Specification
}

func (n negation) render(b *builder) (string, error) {
	if n.spec == nil {
		return "FALSE", nil
	}
	sql, err := n.spec.render(b)
	if err != nil {
		return "", err
	}
	return "NOT (" + sql + ")", nil
}

// Not inverts spec. Not(nil) matches nothing, since nil matches everything.
func Not(spec Specification) Specification { return negation{spec: spec} }
