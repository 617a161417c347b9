package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/ahmed-shaon/tasty-kitchen-server/repository"
)

var validate = validator.New()

// abortWithError writes the uniform error envelope. Every denial and
// failure path in the API goes through here so the shape stays consistent.
func abortWithError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}

// storeError maps repository failures to HTTP statuses: a missing document
// is a 404, anything else is a store-side 500.
func storeError(c *gin.Context, err error, notFoundMsg string) {
	if errors.Is(err, repository.ErrNotFound) {
		abortWithError(c, http.StatusNotFound, notFoundMsg)
		return
	}
	abortWithError(c, http.StatusInternalServerError, err.Error())
}
