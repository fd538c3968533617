package jobs

import (
	"math"
	"net/http"

	"github.com/cindyhont/jobly-backend/model"
	"github.com/cindyhont/jobly-backend/rest/common"
	"github.com/cindyhont/jobly-backend/sqlhelpers"
	"github.com/julienschmidt/httprouter"
)

var newJobRules = map[string]common.Rule{
	"title":         common.String(1, 255),
	"salary":        common.Nullable(common.Integer(0, math.MaxInt32)),
	"equity":        common.Nullable(common.Number(0, 1)),
	"companyHandle": common.String(1, 25),
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
	if err = common.CheckPayload(fields, newJobRules, "title", "companyHandle"); err != nil {
		common.SendError(w, r, err)
		return
	}

	var req model.NewJob
	if err = common.Unmarshal(body, &req); err != nil {
		common.SendError(w, r, err)
		return
	}

	job, err := Create(r.Context(), &req)
	if err != nil {
		common.SendError(w, r, err)
		return
	}
	common.SendResponse(w, http.StatusCreated, map[string]interface{}{"job": job})
}
