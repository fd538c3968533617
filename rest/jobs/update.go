package jobs

import (
	"math"
	"net/http"

	"github.com/cindyhont/jobly-backend/model"
	"github.com/cindyhont/jobly-backend/rest/common"
	"github.com/cindyhont/jobly-backend/sqlhelpers"
	"github.com/julienschmidt/httprouter"
)

// A job cannot move to another company.
var updateRules = map[string]common.Rule{
	"title":  common.String(1, 255),
	"salary": common.Nullable(common.Integer(0, math.MaxInt32)),
	"equity": common.Nullable(common.Number(0, 1)),
}

func update(
	w http.ResponseWriter,
	r *http.Request,
	p httprouter.Params,
	user *model.Claims,
) {
	id, err := jobID(p)
	if err != nil {
		common.SendError(w, r, err)
		return
	}

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

	job, err := Update(r.Context(), id, fields)
	if err != nil {
		common.SendError(w, r, err)
		return
	}
	common.SendResponse(w, http.StatusOK, map[string]interface{}{"job": job})
}
