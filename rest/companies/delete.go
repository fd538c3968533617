package companies

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
	handle := p.ByName("handle")
	if err := Remove(r.Context(), handle); err != nil {
		common.SendError(w, r, err)
		return
	}
	common.SendResponse(w, http.StatusOK, map[string]string{"deleted": handle})
}
