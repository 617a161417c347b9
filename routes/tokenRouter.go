package routes

import (
	"github.com/gin-gonic/gin"

	controller "github.com/ahmed-shaon/tasty-kitchen-server/controllers"
	helper "github.com/ahmed-shaon/tasty-kitchen-server/helpers"
)

func TokenRoutes(incomingRoutes *gin.Engine, tm *helper.TokenMaker) {
	incomingRoutes.POST("/jwt", controller.IssueToken(tm))
}
