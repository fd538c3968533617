package jobs

import (
	"net/http"

	"github.com/cindyhont/jobly-backend/model"
	"github.com/cindyhont/jobly-backend/rest/common"
	"github.com/julienschmidt/httprouter"
)

func remove(
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
	if err = Remove(r.Context(), id); err != nil {
		common.SendError(w, r, err)
		return
	}
	common.SendResponse(w, http.StatusOK, map[string]int{"deleted": id})
}
