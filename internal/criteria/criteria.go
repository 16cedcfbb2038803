// Package criteria turns list query parameters such as
// "lastName.contains=ban&id.in=1,2" into a Specification and
// "sort=lastName,desc" into a repository Sort.
package criteria

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"libraryapi/internal/repository"
	"libraryapi/internal/specification"
)

// Kind is the value type of a filterable field.
type Kind int

const (
	String Kind = iota
	Int
)

// FieldSet lists the fields a resource can be filtered and sorted by.
type FieldSet map[string]Kind

// Error reports a query parameter that could not be turned into a filter or sort.
type Error struct {
	Param  string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid parameter %q: %s", e.Param, e.Reason)
}

// reserved parameters belong to paging and are never filters.
var reserved = map[string]bool{
	"page":     true,
	"size":     true,
	"sort":     true,
	"distinct": true,
}

var stringOps = map[string]bool{
	"equals": true, "notEquals": true, "specified": true,
	"in": true, "notIn": true, "contains": true, "doesNotContain": true,
}

var intOps = map[string]bool{
	"equals": true, "notEquals": true, "specified": true,
	"in": true, "notIn": true,
	"greaterThan": true, "lessThan": true,
	"greaterThanOrEqual": true, "lessThanOrEqual": true,
}

// Parse builds the conjunction of every "<field>.<operator>" parameter in q.
// Parameters without a dot are not criteria and are skipped. It returns nil
// when q carries no criteria.
func Parse(q url.Values, fields FieldSet) (specification.Specification, error) {
	keys := make([]string, 0, len(q))
	for k := range q {
		if reserved[k] || !strings.Contains(k, ".") {
			continue
		}
		keys = append(keys, k)
	}
	if len(keys) == 0 {
		return nil, nil
	}
	sort.Strings(keys)

	specs := make([]specification.Specification, 0, len(keys))
	for _, k := range keys {
		for _, raw := range q[k] {
			s, err := parseOne(k, raw, fields)
			if err != nil {
				return nil, err
			}
			specs = append(specs, s)
		}
	}
	return specification.And(specs...), nil
}

func parseOne(param, raw string, fields FieldSet) (specification.Specification, error) {
	field, op, _ := strings.Cut(param, ".")
	kind, ok := fields[field]
	if !ok {
		return nil, &Error{Param: param, Reason: "unknown field"}
	}
	ops := stringOps
	if kind == Int {
		ops = intOps
	}
	if !ops[op] {
		return nil, &Error{Param: param, Reason: fmt.Sprintf("unsupported operator %q", op)}
	}

	if op == "specified" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, &Error{Param: param, Reason: "expected true or false"}
		}
		if b {
			return specification.IsNotNull(field), nil
		}
		return specification.IsNull(field), nil
	}

	if op == "in" || op == "notIn" {
		values, err := parseList(param, raw, kind)
		if err != nil {
			return nil, err
		}
		if op == "in" {
			return specification.In(field, values...), nil
		}
		return specification.NotIn(field, values...), nil
	}

	v, err := parseValue(param, raw, kind)
	if err != nil {
		return nil, err
	}
	switch op {
	case "equals":
		return specification.Equal(field, v), nil
	case "notEquals":
		return specification.NotEqual(field, v), nil
	case "contains":
		return specification.Contains(field, raw), nil
	case "doesNotContain":
		return specification.DoesNotContain(field, raw), nil
	case "greaterThan":
		return specification.GreaterThan(field, v), nil
	case "lessThan":
		return specification.LessThan(field, v), nil
	case "greaterThanOrEqual":
		return specification.GreaterThanOrEqual(field, v), nil
	default:
		return specification.LessThanOrEqual(field, v), nil
	}
}

func parseList(param, raw string, kind Kind) ([]any, error) {
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	out := make([]any, 0, len(parts))
	for _, p := range parts {
		v, err := parseValue(param, strings.TrimSpace(p), kind)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func parseValue(param, raw string, kind Kind) (any, error) {
	if kind == String {
		return raw, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, &Error{Param: param, Reason: fmt.Sprintf("%q is not an integer", raw)}
	}
	return n, nil
}

// ParseSort reads repeated "field[,asc|desc]" values. A value may also list
// several fields before the direction, e.g. "lastName,firstName,desc".
func ParseSort(values []string, fields FieldSet) (repository.Sort, error) {
	var out repository.Sort
	for _, v := range values {
		if v == "" {
			continue
		}
		parts := strings.Split(v, ",")
		dir := repository.Asc
		switch strings.ToLower(parts[len(parts)-1]) {
		case "asc":
			parts = parts[:len(parts)-1]
		case "desc":
			dir = repository.Desc
			parts = parts[:len(parts)-1]
		}
		if len(parts) == 0 {
			return nil, &Error{Param: "sort", Reason: "missing field"}
		}
		for _, f := range parts {
			f = strings.TrimSpace(f)
			if _, ok := fields[f]; !ok {
				return nil, &Error{Param: "sort", Reason: fmt.Sprintf("unknown field %q", f)}
			}
			out = append(out, repository.Order{Field: f, Direction: dir})
		}
	}
	return out, nil
}
