package sqlhelpers

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/cindyhont/jobly-backend/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayloadKeepsKeyOrder(t *testing.T) {
	var p Payload
	err := json.Unmarshal([]byte(`{"zeta": "z", "alpha": 1, "mid": true, "none": null, "ratio": 0.5}`), &p)
	require.NoError(t, err)

	assert.Equal(t, []string{"zeta", "alpha", "mid", "none", "ratio"}, p.Keys())
	assert.Equal(t, Payload{
		{Key: "zeta", Value: "z"},
		{Key: "alpha", Value: int64(1)},
		{Key: "mid", Value: true},
		{Key: "none", Value: nil},
		{Key: "ratio", Value: 0.5},
	}, p)
}

func TestPayloadDuplicateKeyKeepsFirstPosition(t *testing.T) {
	var p Payload
	require.NoError(t, json.Unmarshal([]byte(`{"a": 1, "b": 2, "a": 3}`), &p))

	assert.Equal(t, Payload{
		{Key: "a", Value: int64(3)},
		{Key: "b", Value: int64(2)},
	}, p)
}

func TestPayloadRejectsNonScalars(t *testing.T) {
	var p Payload
	err := json.Unmarshal([]byte(`{"a": {"b": 1}}`), &p)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.InvalidInput))

	err = json.Unmarshal([]byte(`{"a": [1, 2]}`), &p)
	require.Error(t, err)
}

func TestPayloadRejectsNonObjects(t *testing.T) {
	var p Payload
	err := json.Unmarshal([]byte(`[1, 2]`), &p)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.InvalidInput))
}

func TestPayloadEmptyObject(t *testing.T) {
	var p Payload
	require.NoError(t, json.Unmarshal([]byte(`{}`), &p))
	assert.Empty(t, p)

	_, err := PartialUpdate(p, nil)
	assert.True(t, apperror.IsKind(err, apperror.InvalidInput))
}

func TestPayloadSetAndGet(t *testing.T) {
	p := Payload{{Key: "password", Value: "plain"}, {Key: "email", Value: "a@b.c"}}
	p.Set("password", "hashed")
	p.Set("isAdmin", false)

	v, ok := p.Get("password")
	assert.True(t, ok)
	assert.Equal(t, "hashed", v)
	assert.Equal(t, []string{"password", "email", "isAdmin"}, p.Keys())

	_, ok = p.Get("missing")
	assert.False(t, ok)
}

func TestPayloadDecodesManyKeysInLinearTime(t *testing.T) {
	const n = 100000
	var b strings.Builder
	b.WriteString("{")
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, `"k%d":%d`, i, i)
	}
	b.WriteString(`,"k0":"last"}`)

	start := time.Now()
	var p Payload
	require.NoError(t, json.Unmarshal([]byte(b.String()), &p))
	elapsed := time.Since(start)

	require.Len(t, p, n)
	assert.Equal(t, Field{Key: "k0", Value: "last"}, p[0])
	assert.Equal(t, Field{Key: "k99999", Value: int64(99999)}, p[n-1])
	assert.Less(t, elapsed, 3*time.Second)
}
