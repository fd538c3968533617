package companies

import (
	"github.com/cindyhont/jobly-backend/apperror"
	"github.com/cindyhont/jobly-backend/sqlhelpers"
)

var allowedFilters = map[string]bool{
	"name":         true,
	"minEmployees": true,
	"maxEmployees": true,
}

// BuildFilter turns search filters into a WHERE clause body without the WHERE
// keyword. Fragments always come out as name, maxEmployees, minEmployees, whatever
// order the filters were given in. No filters gives an empty clause.
func BuildFilter(filters map[string]interface{}) (*sqlhelpers.Query, error) {
	for key := range filters {
		if !allowedFilters[key] {
			return nil, apperror.NewInvalidInput("invalid filters included")
		}
	}

	minVal, hasMin := filters["minEmployees"]
	maxVal, hasMax := filters["maxEmployees"]
	if hasMin && hasMax {
		minN, okMin := sqlhelpers.Float(minVal)
		maxN, okMax := sqlhelpers.Float(maxVal)
		if !okMin || !okMax || maxN < minN {
			return nil, apperror.NewInvalidInput("max/min employees filters are not valid")
		}
	}

	var c sqlhelpers.Conditions
	if name, ok := filters["name"]; ok {
		c.Add("name ILIKE " + c.Bind(sqlhelpers.Contains(name)))
	}
	if hasMax {
		c.Add("num_employees <= " + c.Bind(maxVal))
	}
	if hasMin {
		c.Add("num_employees >= " + c.Bind(minVal))
	}
	return c.Query(), nil
}
