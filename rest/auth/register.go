package auth

import (
	"net/http"

	"github.com/cindyhont/jobly-backend/model"
	"github.com/cindyhont/jobly-backend/rest/common"
	"github.com/cindyhont/jobly-backend/rest/users"
	"github.com/cindyhont/jobly-backend/sqlhelpers"
	"github.com/cindyhont/jobly-backend/usermgmt"
	"github.com/julienschmidt/httprouter"
)

var registerRules = map[string]common.Rule{
	"username":  users.Username,
	"password":  users.Password,
	"firstName": users.Name,
	"lastName":  users.Name,
	"email":     common.Email(),
}

// register signs up a regular user. Admins are only made through POST /users.
func register(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
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
	err = common.CheckPayload(fields, registerRules, "username", "password", "firstName", "lastName", "email")
	if err != nil {
		common.SendError(w, r, err)
		return
	}

	var req model.NewUser
	if err = common.Unmarshal(body, &req); err != nil {
		common.SendError(w, r, err)
		return
	}
	req.IsAdmin = false

	user, err := users.Register(r.Context(), &req)
	if err != nil {
		common.SendError(w, r, err)
		return
	}

	signed, err := usermgmt.CreateToken(user)
	if err != nil {
		common.SendError(w, r, err)
		return
	}
	common.SendResponse(w, http.StatusCreated, map[string]string{"token": signed})
}
