package companies

import (
	"math"
	"net/http"
	"strings"

	"github.com/cindyhont/jobly-backend/model"
	"github.com/cindyhont/jobly-backend/rest/common"
	"github.com/cindyhont/jobly-backend/sqlhelpers"
	"github.com/julienschmidt/httprouter"
)

func handleRule(v interface{}) string {
	if msg := common.String(1, 25)(v); msg != "" {
		return msg
	}
	if s := v.(string); s != strings.ToLower(s) {
		return "must be lower case"
	}
	return ""
}

var newCompanyRules = map[string]common.Rule{
	"handle":       handleRule,
	"name":         common.String(1, 255),
	"numEmployees": common.Nullable(common.Integer(0, math.MaxInt32)),
	"description":  common.String(0, 5000),
	"logoUrl":      common.Nullable(common.URL()),
}

func create(
	w http.ResponseWriter,
	r *http.Request,
	p httprouter.Params,
	user *model.Claims,
) {
	body, err := common.ReadBody(w, r)
	if err != nil {
		common.SendError(w, r, err)
		return
	}

	var fields sqlhelpers.Payload
	if err = common.Unmarshal(body, &fields); err != nil {
		common.SendError(w, r, err)
		return
	}
	if err = common.CheckPayload(fields, newCompanyRules, "handle", "name", "description"); err != nil {
		common.SendError(w, r, err)
		return
	}

	var req model.NewCompany
	if err = common.Unmarshal(body, &req); err != nil {
		common.SendError(w, r, err)
		return
	}

	company, err := Create(r.Context(), &req)
	if err != nil {
		common.SendError(w, r, err)
		return
	}
	common.SendResponse(w, http.StatusCreated, map[string]interface{}{"company": company})
}
