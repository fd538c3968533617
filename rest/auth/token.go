package auth

import (
	"net/http"

	"github.com/cindyhont/jobly-backend/rest/common"
	"github.com/cindyhont/jobly-backend/rest/users"
	"github.com/cindyhont/jobly-backend/sqlhelpers"
	"github.com/cindyhont/jobly-backend/usermgmt"
	"github.com/julienschmidt/httprouter"
)

var tokenRules = map[string]common.Rule{
	"username": users.Username,
	"password": users.Password,
}

func token(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
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
	if err = common.CheckPayload(fields, tokenRules, "username", "password"); err != nil {
		common.SendError(w, r, err)
		return
	}

	username, _ := fields.Get("username")
	password, _ := fields.Get("password")
	user, err := users.Authenticate(r.Context(), username.(string), password.(string))
	if err != nil {
		common.SendError(w, r, err)
		return
	}

	signed, err := usermgmt.CreateToken(user)
	if err != nil {
		common.SendError(w, r, err)
		return
	}
	common.SendResponse(w, http.StatusOK, map[string]string{"token": signed})
}
