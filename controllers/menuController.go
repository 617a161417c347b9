package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ahmed-shaon/tasty-kitchen-server/models"
	"github.com/ahmed-shaon/tasty-kitchen-server/repository"
)

// The home page shows a teaser of the menu, capped at this many items.
const homePageLimit = 3

// GetMenus lists the full menu, newest first. With the home flag set the
// result is truncated to the first homePageLimit items after the sort.
func GetMenus(repo repository.MenuRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var limit int64
		if _, home := c.GetQuery("home"); home {
			limit = homePageLimit
		}

		items, err := repo.List(c.Request.Context(), limit)
		if err != nil {
			abortWithError(c, http.StatusInternalServerError, "error occurred while listing the menu items")
			return
		}

		c.JSON(http.StatusOK, items)
	}
}

// GetMenu fetches one menu item by its id.
func GetMenu(repo repository.MenuRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "invalid id")
			return
		}

		item, err := repo.Get(c.Request.Context(), id)
		if err != nil {
			storeError(c, err, "menu item not found")
			return
		}

		c.JSON(http.StatusOK, item)
	}
}

// CreateMenu validates and inserts a new menu item.
func CreateMenu(repo repository.MenuRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var item models.MenuItem

		if err := c.BindJSON(&item); err != nil {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}

		if validationErr := validate.Struct(item); validationErr != nil {
			abortWithError(c, http.StatusBadRequest, validationErr.Error())
			return
		}

		item.Created_at = time.Now().UTC().Truncate(time.Second)

		id, err := repo.Create(c.Request.Context(), item)
		if err != nil {
			abortWithError(c, http.StatusInternalServerError, "menu item was not created")
			return
		}

		c.JSON(http.StatusOK, gin.H{"insertedId": id.Hex()})
	}
}
