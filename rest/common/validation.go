package common

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/cindyhont/jobly-backend/apperror"
	"github.com/cindyhont/jobly-backend/sqlhelpers"
)

// Rule checks one payload value and returns what is wrong with it, or "".
type Rule func(v interface{}) string

func String(min, max int) Rule {
	return func(v interface{}) string {
		s, ok := v.(string)
		if !ok {
			return "must be a string"
		}
		if TooLongTooShort(s, min, max) {
			return fmt.Sprintf("must be %d to %d characters", min, max)
		}
		return ""
	}
}

// Integer accepts whole JSON numbers from min to max.
func Integer(min, max int64) Rule {
	return func(v interface{}) string {
		i, ok := v.(int64)
		if !ok {
			return "must be an integer"
		}
		if i < min {
			return fmt.Sprintf("must be at least %d", min)
		}
		if i > max {
			return fmt.Sprintf("must be at most %d", max)
		}
		return ""
	}
}

func Number(min, max float64) Rule {
	return func(v interface{}) string {
		var f float64
		switch n := v.(type) {
		case int64:
			f = float64(n)
		case float64:
			f = n
		default:
			return "must be a number"
		}
		if f < min || f > max {
			return fmt.Sprintf("must be between %g and %g", min, max)
		}
		return ""
	}
}

func Boolean() Rule {
	return func(v interface{}) string {
		if _, ok := v.(bool); !ok {
			return "must be a boolean"
		}
		return ""
	}
}

func URL() Rule {
	return func(v interface{}) string {
		s, ok := v.(string)
		if !ok {
			return "must be a string"
		}
		u, err := url.ParseRequestURI(s)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return "must be an http(s) URL"
		}
		return ""
	}
}

func Email() Rule {
	return func(v interface{}) string {
		s, ok := v.(string)
		if !ok {
			return "must be a string"
		}
		if TooLongTooShort(s, 6, 60) || strings.Index(s, "@") < 1 {
			return "must be an email address"
		}
		return ""
	}
}

// Nullable lets null through and checks anything else with rule.
func Nullable(rule Rule) Rule {
	return func(v interface{}) string {
		if v == nil {
			return ""
		}
		return rule(v)
	}
}

// CheckPayload validates every field of p against rules. Fields without a rule are
// rejected, as are missing required fields.
func CheckPayload(p sqlhelpers.Payload, rules map[string]Rule, required ...string) error {
	problems := make([]string, 0)

	for _, field := range p {
		rule, ok := rules[field.Key]
		if !ok {
			problems = append(problems, fmt.Sprintf("%s is not allowed", field.Key))
			continue
		}
		if msg := rule(field.Value); msg != "" {
			problems = append(problems, fmt.Sprintf("%s %s", field.Key, msg))
		}
	}

	missing := make([]string, 0)
	for _, key := range required {
		if _, ok := p.Get(key); !ok {
			missing = append(missing, key)
		}
	}
	sort.Strings(missing)
	for _, key := range missing {
		problems = append(problems, fmt.Sprintf("%s is required", key))
	}

	if len(problems) != 0 {
		return apperror.NewInvalidInput(strings.Join(problems, "; "))
	}
	return nil
}
