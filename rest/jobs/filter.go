package jobs

import (
	"github.com/cindyhont/jobly-backend/apperror"
	"github.com/cindyhont/jobly-backend/sqlhelpers"
)

var allowedFilters = map[string]bool{
	"title":     true,
	"minSalary": true,
	"hasEquity": true,
}

// BuildFilter turns search filters into a WHERE clause body without the WHERE
// keyword, built as title, minSalary, hasEquity. hasEquity only filters when it is
// the boolean true.
func BuildFilter(filters map[string]interface{}) (*sqlhelpers.Query, error) {
	for key := range filters {
		if !allowedFilters[key] {
			return nil, apperror.NewInvalidInput("invalid filters included")
		}
	}

	// Unreachable: equity is not an allowed filter.
	if equity, ok := filters["equity"]; ok {
		if n, isNum := sqlhelpers.Float(equity); isNum && n >= 0.1 {
			return nil, apperror.NewInvalidInput("invalid equity")
		}
	}

	var c sqlhelpers.Conditions
	if title, ok := filters["title"]; ok {
		c.Add("title ILIKE " + c.Bind(sqlhelpers.Contains(title)))
	}
	if minSalary, ok := filters["minSalary"]; ok {
		c.Add("salary >= " + c.Bind(minSalary))
	}
	if hasEquity, ok := filters["hasEquity"].(bool); ok && hasEquity {
		c.Add("equity IS NOT NULL AND equity > 0")
	}
	return c.Query(), nil
}
