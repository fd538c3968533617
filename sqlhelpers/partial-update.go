package sqlhelpers

import (
	"fmt"
	"strings"

	"github.com/cindyhont/jobly-backend/apperror"
)

// PartialUpdate renders the SET clause of an UPDATE touching only the fields in data.
//
// Each key is looked up in columnMap and falls back to the key itself, so callers
// only list fields whose column name differs, e.g. {"firstName": "first_name"}.
// The Ith field becomes "<column>"=$I and Values follow the same order.
//
// Column names are interpolated into the clause. Keys and columnMap entries must
// come from an allow-list, never straight from a client.
func PartialUpdate(data Payload, columnMap map[string]string) (*Query, error) {
	if len(data) == 0 {
		return nil, apperror.NewInvalidInput("no data")
	}

	cols := make([]string, 0, len(data))
	values := make([]interface{}, 0, len(data))
	for i, field := range data {
		column, ok := columnMap[field.Key]
		if !ok {
			column = field.Key
		}
		cols = append(cols, fmt.Sprintf(`"%s"=$%d`, column, i+1))
		values = append(values, field.Value)
	}

	return &Query{
		Clause: strings.Join(cols, ", "),
		Values: values,
	}, nil
}
