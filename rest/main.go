package rest

import (
	"github.com/cindyhont/jobly-backend/rest/auth"
	"github.com/cindyhont/jobly-backend/rest/companies"
	"github.com/cindyhont/jobly-backend/rest/jobs"
	"github.com/cindyhont/jobly-backend/rest/users"
)

func ListenHTTP() {
	auth.ListenHTTP()
	companies.ListenHTTP()
	jobs.ListenHTTP()
	users.ListenHTTP()
}
