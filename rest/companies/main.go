package companies

import (
	"github.com/cindyhont/jobly-backend/rest/common"
	"github.com/cindyhont/jobly-backend/router"
)

func ListenHTTP() {
	router.Router.POST("/companies", common.AdminRequired(create))
	router.Router.GET("/companies", list)
	router.Router.GET("/companies/:handle", get)
	router.Router.PATCH("/companies/:handle", common.AdminRequired(update))
	router.Router.DELETE("/companies/:handle", common.AdminRequired(remove))
}
