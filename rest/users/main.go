package users

import (
	"github.com/cindyhont/jobly-backend/rest/common"
	"github.com/cindyhont/jobly-backend/router"
)

func ListenHTTP() {
	router.Router.POST("/users", common.AdminRequired(create))
	router.Router.GET("/users", common.AdminRequired(list))
	router.Router.GET("/users/:username", common.CorrectUserOrAdminRequired(get))
	router.Router.PATCH("/users/:username", common.CorrectUserOrAdminRequired(update))
	router.Router.DELETE("/users/:username", common.CorrectUserOrAdminRequired(remove))
	router.Router.POST("/users/:username/jobs/:id", common.CorrectUserOrAdminRequired(apply))
}
