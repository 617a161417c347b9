package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	helper "github.com/ahmed-shaon/tasty-kitchen-server/helpers"
)

// IssueToken signs whatever user payload the client sends. The endpoint
// trusts its caller: authentication of the user happens upstream, before
// the web app asks for a token.
func IssueToken(tm *helper.TokenMaker) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload map[string]interface{}

		if err := c.BindJSON(&payload); err != nil {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}

		token, err := tm.GenerateToken(payload)
		if err != nil {
			abortWithError(c, http.StatusInternalServerError, "token was not generated")
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}
