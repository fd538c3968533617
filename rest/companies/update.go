package companies

import (
	"math"
	"net/http"

	"github.com/cindyhont/jobly-backend/model"
	"github.com/cindyhont/jobly-backend/rest/common"
	"github.com/cindyhont/jobly-backend/sqlhelpers"
	"github.com/julienschmidt/httprouter"
)

var updateRules = map[string]common.Rule{
	"name":         common.String(1, 255),
	"numEmployees": common.Nullable(common.Integer(0, math.MaxInt32)),
	"description":  common.String(0, 5000),
	"logoUrl":      common.Nullable(common.URL()),
}

func update(
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
	if err = common.CheckPayload(fields, updateRules); err != nil {
		common.SendError(w, r, err)
		return
	}

	company, err := Update(r.Context(), p.ByName("handle"), fields)
	if err != nil {
		common.SendError(w, r, err)
		return
	}
	common.SendResponse(w, http.StatusOK, map[string]interface{}{"company": company})
}
