package routes

import (
	"github.com/gin-gonic/gin"

	controller "github.com/ahmed-shaon/tasty-kitchen-server/controllers"
	helper "github.com/ahmed-shaon/tasty-kitchen-server/helpers"
	"github.com/ahmed-shaon/tasty-kitchen-server/middleware"
	"github.com/ahmed-shaon/tasty-kitchen-server/repository"
)

func ReviewRoutes(incomingRoutes *gin.Engine, repo repository.ReviewRepository, tm *helper.TokenMaker) {
	incomingRoutes.GET("/reviewsbyid", controller.GetReviewsByItem(repo))
	incomingRoutes.POST("/review", controller.CreateReview(repo))
	incomingRoutes.PUT("/reviews/:id", controller.UpdateReview(repo))
	incomingRoutes.DELETE("/reviews/:id", controller.DeleteReview(repo))

	// Only the identity-scoped listing sits behind the token gate.
	authorized := incomingRoutes.Group("/")
	authorized.Use(middleware.Authentication(tm))
	authorized.GET("/reviews", controller.GetReviewsByEmail(repo))
}
