package users

import "github.com/cindyhont/jobly-backend/rest/common"

var (
	Username = common.String(1, 25)
	// bcrypt ignores anything past 72 bytes.
	Password = common.String(5, 72)
	Name     = common.String(1, 30)
)

var newUserRules = map[string]common.Rule{
	"username":  Username,
	"password":  Password,
	"firstName": Name,
	"lastName":  Name,
	"email":     common.Email(),
	"isAdmin":   common.Boolean(),
}

var newUserRequired = []string{"username", "password", "firstName", "lastName", "email"}

var updateRules = map[string]common.Rule{
	"password":  Password,
	"firstName": Name,
	"lastName":  Name,
	"email":     common.Email(),
}

var adminUpdateRules = map[string]common.Rule{
	"password":  Password,
	"firstName": Name,
	"lastName":  Name,
	"email":     common.Email(),
	"isAdmin":   common.Boolean(),
}
