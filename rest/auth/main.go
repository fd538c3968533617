package auth

import (
	"github.com/cindyhont/jobly-backend/router"
)

func ListenHTTP() {
	router.Router.POST("/auth/token", token)
	router.Router.POST("/auth/register", register)
}
