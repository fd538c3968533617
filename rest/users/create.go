package users

import (
	"net/http"

	"github.com/cindyhont/jobly-backend/model"
	"github.com/cindyhont/jobly-backend/rest/common"
	"github.com/cindyhont/jobly-backend/sqlhelpers"
	"github.com/cindyhont/jobly-backend/usermgmt"
	"github.com/julienschmidt/httprouter"
)

// create lets an admin add a user, admin or not, and hands back a token for them.
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
	if err = common.CheckPayload(fields, newUserRules, newUserRequired...); err != nil {
		common.SendError(w, r, err)
		return
	}

	var req model.NewUser
	if err = common.Unmarshal(body, &req); err != nil {
		common.SendError(w, r, err)
		return
	}

	created, err := Register(r.Context(), &req)
	if err != nil {
		common.SendError(w, r, err)
		return
	}

	token, err := usermgmt.CreateToken(created)
	if err != nil {
		common.SendError(w, r, err)
		return
	}
	common.SendResponse(w, http.StatusCreated, map[string]interface{}{"user": created, "token": token})
}
