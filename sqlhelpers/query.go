package sqlhelpers

import (
	"fmt"
	"strings"
)

// Query is a parameterized SQL fragment. The Nth $N placeholder in Clause binds
// Values[N-1].
type Query struct {
	Clause string
	Values []interface{}
}

// Next returns the placeholder index the caller should use for a parameter
// appended after Values.
func (q *Query) Next() int {
	return len(q.Values) + 1
}

// Where returns the clause prefixed with WHERE, or "" when there is nothing to filter on.
func (q *Query) Where() string {
	if q.Clause == "" {
		return ""
	}
	return "WHERE " + q.Clause
}

// Conditions accumulates WHERE fragments joined with AND, numbering placeholders
// in the order values are bound.
type Conditions struct {
	parts  []string
	values []interface{}
}

// Bind records value and returns its placeholder.
func (c *Conditions) Bind(value interface{}) string {
	c.values = append(c.values, value)
	return fmt.Sprintf("$%d", len(c.values))
}

// Add appends a fragment. Any placeholders in it must come from Bind.
func (c *Conditions) Add(fragment string) {
	c.parts = append(c.parts, fragment)
}

func (c *Conditions) Query() *Query {
	values := c.values
	if values == nil {
		values = []interface{}{}
	}
	return &Query{
		Clause: strings.Join(c.parts, " AND "),
		Values: values,
	}
}

// Contains wraps v in % wildcards for an ILIKE substring match.
func Contains(v interface{}) string {
	return fmt.Sprintf("%%%v%%", v)
}

// Float reads any Go number as a float64 for range checks.
func Float(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
