package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ahmed-shaon/tasty-kitchen-server/models"
	"github.com/ahmed-shaon/tasty-kitchen-server/repository"
)

// GetReviewsByItem lists the reviews for one menu item, oldest first.
func GetReviewsByItem(repo repository.ReviewRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID := c.Query("id")
		if itemID == "" {
			abortWithError(c, http.StatusBadRequest, "id query parameter is required")
			return
		}

		reviews, err := repo.ListByItem(c.Request.Context(), itemID)
		if err != nil {
			abortWithError(c, http.StatusInternalServerError, "error occurred while listing the reviews")
			return
		}

		c.JSON(http.StatusOK, reviews)
	}
}

// GetReviewsByEmail lists the reviews a caller left, scoped to their own
// identity. The requested email must match the verified claim exactly:
// this is an ownership check, not a role system, and a mismatch is denied
// without touching the store.
func GetReviewsByEmail(repo repository.ReviewRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		requested := c.Query("email")
		if requested == "" || requested != c.GetString("email") {
			abortWithError(c, http.StatusForbidden, "unauthorized access")
			return
		}

		reviews, err := repo.ListByEmail(c.Request.Context(), requested)
		if err != nil {
			abortWithError(c, http.StatusInternalServerError, "error occurred while listing the reviews")
			return
		}

		c.JSON(http.StatusOK, reviews)
	}
}

// CreateReview validates and inserts a new review, stamping the creation
// time used by the item-scoped listing's sort.
func CreateReview(repo repository.ReviewRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var review models.Review

		if err := c.BindJSON(&review); err != nil {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}

		if validationErr := validate.Struct(review); validationErr != nil {
			abortWithError(c, http.StatusBadRequest, validationErr.Error())
			return
		}

		review.Date = time.Now().UTC().Truncate(time.Second)

		id, err := repo.Create(c.Request.Context(), review)
		if err != nil {
			abortWithError(c, http.StatusInternalServerError, "review was not created")
			return
		}

		c.JSON(http.StatusOK, gin.H{"insertedId": id.Hex()})
	}
}

// UpdateReview replaces the rating and message of an existing review.
// Updating a missing id is a 404 unless the caller explicitly asks for
// upsert, which restores insert-if-absent semantics.
func UpdateReview(repo repository.ReviewRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "invalid id")
			return
		}

		var update models.ReviewUpdate
		if err := c.BindJSON(&update); err != nil {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}

		if validationErr := validate.Struct(update); validationErr != nil {
			abortWithError(c, http.StatusBadRequest, validationErr.Error())
			return
		}

		upsert := c.Query("upsert") == "true"

		result, err := repo.Update(c.Request.Context(), id, update, upsert)
		if err != nil {
			storeError(c, err, "review not found")
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

// DeleteReview removes one review by its id.
func DeleteReview(repo repository.ReviewRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "invalid id")
			return
		}

		deleted, err := repo.Delete(c.Request.Context(), id)
		if err != nil {
			storeError(c, err, "review not found")
			return
		}

		c.JSON(http.StatusOK, gin.H{"deletedCount": deleted})
	}
}
