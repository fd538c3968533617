package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pq.Error{Code: "23505"}))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", &pq.Error{Code: "23505"})))
	assert.False(t, IsUniqueViolation(&pq.Error{Code: "23503"}))

	assert.True(t, IsUniqueViolation(errors.New(`Constraint Error: Duplicate key "handle: c1" violates primary key constraint`)))
	assert.False(t, IsUniqueViolation(errors.New("connection refused")))
	assert.False(t, IsUniqueViolation(nil))
}

func TestViolatedConstraint(t *testing.T) {
	err := fmt.Errorf("update: %w", &pq.Error{Code: "23505", Constraint: "companies_name_key"})
	assert.Equal(t, "companies_name_key", ViolatedConstraint(err))
	assert.Equal(t, "", ViolatedConstraint(errors.New("Duplicate key")))
	assert.Equal(t, "", ViolatedConstraint(nil))
}

func TestSchemaCoversAllTables(t *testing.T) {
	joined := fmt.Sprint(schema)
	for _, table := range []string{"companies", "jobs", "users", "applications"} {
		assert.Contains(t, joined, "CREATE TABLE IF NOT EXISTS "+table)
	}
}

func TestNull(t *testing.T) {
	var missing *int
	n := 3
	assert.Nil(t, Null(missing))
	assert.Equal(t, 3, Null(&n))
}
