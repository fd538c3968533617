package companies

import (
	"net/http"

	"github.com/cindyhont/jobly-backend/rest/common"
	"github.com/julienschmidt/httprouter"
)

func get(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	company, err := Get(r.Context(), p.ByName("handle"))
	if err != nil {
		common.SendError(w, r, err)
		return
	}
	common.SendResponse(w, http.StatusOK, map[string]interface{}{"company": company})
}
