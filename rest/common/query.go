package common

import (
	"errors"
	"net/url"
	"sort"
	"strings"

	"github.com/cindyhont/jobly-backend/apperror"
	"github.com/gorilla/schema"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

// DecodeQuery fills dst from a query string using its schema tags. Keys dst does
// not know about are skipped; bad values are reported by key.
func DecodeQuery(dst interface{}, query url.Values) error {
	err := decoder.Decode(dst, query)
	if err == nil {
		return nil
	}

	var multi schema.MultiError
	if errors.As(err, &multi) {
		keys := make([]string, 0, len(multi))
		for key := range multi {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		return apperror.NewInvalidInput("invalid value for " + strings.Join(keys, ", "))
	}
	return apperror.Wrap(err, apperror.InvalidInput, "invalid filters")
}

// UnknownFilters returns every query key not in known with its raw value, so a
// filter builder can reject it.
func UnknownFilters(query url.Values, known ...string) map[string]interface{} {
	filters := make(map[string]interface{})
	for key := range query {
		filters[key] = query.Get(key)
	}
	for _, key := range known {
		delete(filters, key)
	}
	return filters
}
