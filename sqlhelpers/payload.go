package sqlhelpers

import (
	"bytes"
	"encoding/json"

	"github.com/cindyhont/jobly-backend/apperror"
)

// Field is a single key/value pair of a Payload.
type Field struct {
	Key   string
	Value interface{}
}

// Payload is an insertion-ordered set of field updates. Key order decides
// placeholder numbering, so it is kept from the JSON body onwards.
type Payload []Field

// Get returns the value stored under key.
func (p Payload) Get(key string) (interface{}, bool) {
	for _, f := range p {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Set replaces the value under key in place, or appends key when it is new.
func (p *Payload) Set(key string, value interface{}) {
	for i := range *p {
		if (*p)[i].Key == key {
			(*p)[i].Value = value
			return
		}
	}
	*p = append(*p, Field{Key: key, Value: value})
}

// Keys returns the field keys in order.
func (p Payload) Keys() []string {
	keys := make([]string, 0, len(p))
	for _, f := range p {
		keys = append(keys, f.Key)
	}
	return keys
}

// UnmarshalJSON decodes a flat JSON object, keeping key order. A repeated key
// keeps its first position and takes the last value. Integral numbers decode to
// int64, other numbers to float64.
func (p *Payload) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return apperror.NewInvalidInput("payload must be a JSON object")
	}

	fields := make(Payload, 0)
	positions := make(map[string]int)
	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return err
		}
		key := tok.(string)

		var raw interface{}
		if err = dec.Decode(&raw); err != nil {
			return err
		}
		value, err := scalar(key, raw)
		if err != nil {
			return err
		}
		if i, seen := positions[key]; seen {
			fields[i].Value = value
			continue
		}
		positions[key] = len(fields)
		fields = append(fields, Field{Key: key, Value: value})
	}
	if _, err = dec.Token(); err != nil {
		return err
	}

	*p = fields
	return nil
}

func scalar(key string, raw interface{}) (interface{}, error) {
	switch v := raw.(type) {
	case nil, string, bool:
		return v, nil
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i, nil
		}
		f, err := v.Float64()
		if err != nil {
			return nil, apperror.Newf(apperror.InvalidInput, "%s is not a valid number", key)
		}
		return f, nil
	default:
		return nil, apperror.Newf(apperror.InvalidInput, "%s must be a string, number, boolean or null", key)
	}
}
