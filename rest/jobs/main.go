package jobs

import (
	"github.com/cindyhont/jobly-backend/rest/common"
	"github.com/cindyhont/jobly-backend/router"
)

func ListenHTTP() {
	router.Router.POST("/jobs", common.AdminRequired(create))
	router.Router.GET("/jobs", list)
	router.Router.GET("/jobs/:id", get)
	router.Router.PATCH("/jobs/:id", common.AdminRequired(update))
	router.Router.DELETE("/jobs/:id", common.AdminRequired(remove))
}
