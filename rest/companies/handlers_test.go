package companies

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/cindyhont/jobly-backend/config"
	"github.com/cindyhont/jobly-backend/router"
	"github.com/cindyhont/jobly-backend/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var routes sync.Once

func do(t *testing.T, method, target, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	routes.Do(ListenHTTP)

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.Handler(&config.Config{AllowedOrigins: []string{"*"}}).ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	out := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func listedHandles(t *testing.T, rec *httptest.ResponseRecorder) []string {
	t.Helper()
	out := make([]string, 0)
	for _, c := range decode(t, rec)["companies"].([]interface{}) {
		out = append(out, c.(map[string]interface{})["handle"].(string))
	}
	return out
}

func TestListRoute(t *testing.T) {
	testutil.Setup(t)

	rec := do(t, http.MethodGet, "/companies", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"c1", "c2", "c3"}, listedHandles(t, rec))

	rec = do(t, http.MethodGet, "/companies?name=C2", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"c2"}, listedHandles(t, rec))

	rec = do(t, http.MethodGet, "/companies?minEmployees=2&maxEmployees=2", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"c2"}, listedHandles(t, rec))
}

func TestListRouteBadFilters(t *testing.T) {
	testutil.Setup(t)

	rec := do(t, http.MethodGet, "/companies?type=12", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":{"message":"invalid filters included","status":400}}`, rec.Body.String())

	rec = do(t, http.MethodGet, "/companies?maxEmployees=5&minEmployees=10", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":{"message":"max/min employees filters are not valid","status":400}}`, rec.Body.String())

	rec = do(t, http.MethodGet, "/companies?minEmployees=lots", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":{"message":"invalid value for minEmployees","status":400}}`, rec.Body.String())
}

func TestGetRoute(t *testing.T) {
	testutil.Setup(t)

	rec := do(t, http.MethodGet, "/companies/c1", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	company := decode(t, rec)["company"].(map[string]interface{})
	assert.Equal(t, "C1", company["name"])
	assert.Equal(t, float64(1), company["numEmployees"])
	assert.Equal(t, "http://c1.img", company["logoUrl"])
	assert.Len(t, company["jobs"], 2)

	rec = do(t, http.MethodGet, "/companies/nope", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateRoute(t *testing.T) {
	f := testutil.Setup(t)
	body := `{"handle":"new","name":"New","description":"DescNew","numEmployees":10,"logoUrl":"http://new.img"}`

	rec := do(t, http.MethodPost, "/companies", f.Token(t, "admin", true), body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"company":{"handle":"new","name":"New","description":"DescNew","numEmployees":10,"logoUrl":"http://new.img"}}`, rec.Body.String())

	rec = do(t, http.MethodPost, "/companies", f.Token(t, "admin", true), body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, http.MethodPost, "/companies", f.Token(t, "u1", false), body)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, http.MethodPost, "/companies", "", body)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateRouteValidation(t *testing.T) {
	f := testutil.Setup(t)
	admin := f.Token(t, "admin", true)

	rec := do(t, http.MethodPost, "/companies", admin, `{"handle":"new","numEmployees":-1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t,
		"numEmployees must be at least 0; description is required; name is required",
		decode(t, rec)["error"].(map[string]interface{})["message"])

	rec = do(t, http.MethodPost, "/companies", admin, `{"handle":"New","name":"N","description":"d"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, http.MethodPost, "/companies", admin, `{"handle":"new","name":"N","description":"d","numEmployees":9999999999}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "numEmployees must be at most 2147483647", decode(t, rec)["error"].(map[string]interface{})["message"])

	rec = do(t, http.MethodPost, "/companies", admin, `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateRoute(t *testing.T) {
	f := testutil.Setup(t)
	admin := f.Token(t, "admin", true)

	rec := do(t, http.MethodPatch, "/companies/c1", "", `{"name":"C1-new"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, http.MethodPatch, "/companies/c1", admin, `{"name":"C1-new","numEmployees":7}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	company := decode(t, rec)["company"].(map[string]interface{})
	assert.Equal(t, "C1-new", company["name"])
	assert.Equal(t, float64(7), company["numEmployees"])

	rec = do(t, http.MethodPatch, "/companies/c1", admin, `{"handle":"c1-new"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, http.MethodPatch, "/companies/c1", admin, `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":{"message":"no data","status":400}}`, rec.Body.String())

	rec = do(t, http.MethodPatch, "/companies/c2", admin, `{"name":"C1-new"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":{"message":"duplicate company name: C1-new","status":400}}`, rec.Body.String())

	rec = do(t, http.MethodPatch, "/companies/nope", admin, `{"name":"x"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteRoute(t *testing.T) {
	f := testutil.Setup(t)

	rec := do(t, http.MethodDelete, "/companies/c1", f.Token(t, "u1", false), "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, http.MethodDelete, "/companies/c1", f.Token(t, "admin", true), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"deleted":"c1"}`, rec.Body.String())

	rec = do(t, http.MethodDelete, "/companies/c1", f.Token(t, "admin", true), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
