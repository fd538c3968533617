package companies

import (
	"net/http"
	"net/url"

	"github.com/cindyhont/jobly-backend/rest/common"
	"github.com/julienschmidt/httprouter"
)

type search struct {
	Name         *string `schema:"name"`
	MinEmployees *int    `schema:"minEmployees"`
	MaxEmployees *int    `schema:"maxEmployees"`
}

// searchFilters converts a query string into filters. Known filters get their
// typed values; unknown keys are passed through as-is so BuildFilter rejects them.
func searchFilters(query url.Values) (map[string]interface{}, error) {
	var s search
	if err := common.DecodeQuery(&s, query); err != nil {
		return nil, err
	}

	filters := common.UnknownFilters(query, "name", "minEmployees", "maxEmployees")
	if s.Name != nil {
		filters["name"] = *s.Name
	}
	if s.MinEmployees != nil {
		filters["minEmployees"] = *s.MinEmployees
	}
	if s.MaxEmployees != nil {
		filters["maxEmployees"] = *s.MaxEmployees
	}
	return filters, nil
}

func list(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	filters, err := searchFilters(r.URL.Query())
	if err != nil {
		common.SendError(w, r, err)
		return
	}

	companies, err := FindAll(r.Context(), filters)
	if err != nil {
		common.SendError(w, r, err)
		return
	}

	common.SendResponse(w, http.StatusOK, map[string]interface{}{"companies": companies})
}
