package routes

// Routes map the URL surface to the controller handling each request.

import (
	"github.com/gin-gonic/gin"

	controller "github.com/ahmed-shaon/tasty-kitchen-server/controllers"
	"github.com/ahmed-shaon/tasty-kitchen-server/repository"
)

func MenuRoutes(incomingRoutes *gin.Engine, repo repository.MenuRepository) {
	incomingRoutes.GET("/menu", controller.GetMenus(repo))    // Get the menu, ?home caps it at the teaser size
	incomingRoutes.GET("/menu/:id", controller.GetMenu(repo)) // Get one menu item by id
	incomingRoutes.POST("/menu", controller.CreateMenu(repo)) // Create a menu item
}
