package jobs

import (
	"net/http"
	"net/url"

	"github.com/cindyhont/jobly-backend/rest/common"
	"github.com/julienschmidt/httprouter"
)

type search struct {
	Title     *string `schema:"title"`
	MinSalary *int    `schema:"minSalary"`
	HasEquity *bool   `schema:"hasEquity"`
}

func searchFilters(query url.Values) (map[string]interface{}, error) {
	var s search
	if err := common.DecodeQuery(&s, query); err != nil {
		return nil, err
	}

	filters := common.UnknownFilters(query, "title", "minSalary", "hasEquity")
	if s.Title != nil {
		filters["title"] = *s.Title
	}
	if s.MinSalary != nil {
		filters["minSalary"] = *s.MinSalary
	}
	if s.HasEquity != nil {
		filters["hasEquity"] = *s.HasEquity
	}
	return filters, nil
}

func list(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	filters, err := searchFilters(r.URL.Query())
	if err != nil {
		common.SendError(w, r, err)
		return
	}

	jobs, err := FindAll(r.Context(), filters)
	if err != nil {
		common.SendError(w, r, err)
		return
	}

	common.SendResponse(w, http.StatusOK, map[string]interface{}{"jobs": jobs})
}
