package users

import (
	"net/http"

	"github.com/cindyhont/jobly-backend/model"
	"github.com/cindyhont/jobly-backend/rest/common"
	"github.com/cindyhont/jobly-backend/sqlhelpers"
	"github.com/julienschmidt/httprouter"
)

// update changes profile fields and the password. Only admins may set isAdmin.
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

	rules := updateRules
	if user.IsAdmin {
		rules = adminUpdateRules
	}
	if err = common.CheckPayload(fields, rules); err != nil {
		common.SendError(w, r, err)
		return
	}

	updated, err := Update(r.Context(), p.ByName("username"), fields)
	if err != nil {
		common.SendError(w, r, err)
		return
	}
	common.SendResponse(w, http.StatusOK, map[string]interface{}{"user": updated})
}
