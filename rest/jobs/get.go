package jobs

import (
	"net/http"
	"strconv"

	"github.com/cindyhont/jobly-backend/apperror"
	"github.com/cindyhont/jobly-backend/rest/common"
	"github.com/julienschmidt/httprouter"
)

func jobID(p httprouter.Params) (int, error) {
	id, err := strconv.Atoi(p.ByName("id"))
	if err != nil {
		return 0, apperror.Wrap(err, apperror.InvalidInput, "invalid job id")
	}
	return id, nil
}

func get(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	id, err := jobID(p)
	if err != nil {
		common.SendError(w, r, err)
		return
	}

	job, err := Get(r.Context(), id)
	if err != nil {
		common.SendError(w, r, err)
		return
	}
	common.SendResponse(w, http.StatusOK, map[string]interface{}{"job": job})
}
