package sqlhelpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConditionsNumbersPlaceholders(t *testing.T) {
	var c Conditions
	c.Add("title ILIKE " + c.Bind(Contains("dev")))
	c.Add("equity IS NOT NULL AND equity > 0")
	c.Add("salary >= " + c.Bind(50000))

	q := c.Query()
	assert.Equal(t, "title ILIKE $1 AND equity IS NOT NULL AND equity > 0 AND salary >= $2", q.Clause)
	assert.Equal(t, []interface{}{"%dev%", 50000}, q.Values)
	assert.Equal(t, "WHERE "+q.Clause, q.Where())
	assert.Equal(t, 3, q.Next())
}

func TestConditionsEmpty(t *testing.T) {
	var c Conditions
	q := c.Query()

	assert.Equal(t, "", q.Clause)
	assert.Empty(t, q.Values)
	assert.NotNil(t, q.Values)
	assert.Equal(t, "", q.Where())
	assert.Equal(t, 1, q.Next())
}

func TestContains(t *testing.T) {
	assert.Equal(t, "%net%", Contains("net"))
	assert.Equal(t, "%12%", Contains(12))
}

func TestFloat(t *testing.T) {
	for _, v := range []interface{}{int(2), int32(2), int64(2), float32(2), float64(2)} {
		f, ok := Float(v)
		assert.True(t, ok)
		assert.Equal(t, 2.0, f)
	}

	_, ok := Float("2")
	assert.False(t, ok)
	_, ok = Float(nil)
	assert.False(t, ok)
}
