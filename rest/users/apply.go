package users

import (
	"net/http"
	"strconv"

	"github.com/cindyhont/jobly-backend/apperror"
	"github.com/cindyhont/jobly-backend/model"
	"github.com/cindyhont/jobly-backend/rest/common"
	"github.com/julienschmidt/httprouter"
)

func apply(
	w http.ResponseWriter,
	r *http.Request,
	p httprouter.Params,
	user *model.Claims,
) {
	jobID, err := strconv.Atoi(p.ByName("id"))
	if err != nil {
		common.SendError(w, r, apperror.Wrap(err, apperror.InvalidInput, "invalid job id"))
		return
	}

	if err = ApplyToJob(r.Context(), p.ByName("username"), jobID); err != nil {
		common.SendError(w, r, err)
		return
	}
	common.SendResponse(w, http.StatusOK, map[string]int{"applied": jobID})
}
