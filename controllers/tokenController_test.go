package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	helper "github.com/ahmed-shaon/tasty-kitchen-server/helpers"
	"github.com/ahmed-shaon/tasty-kitchen-server/routes"
)

func TestIssueToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tm := helper.NewTokenMaker("test-secret")
	router := gin.New()
	routes.TokenRoutes(router, tm)

	w := doJSON(t, router, http.MethodPost, "/jwt", map[string]interface{}{
		"email": "alice@example.com",
		"name":  "Alice",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
	}
	decodeBody(t, w, &resp)
	if resp.Token == "" {
		t.Fatal("response carries no token")
	}

	claims, err := tm.ValidateToken(resp.Token)
	if err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
	if claims.Email != "alice@example.com" {
		t.Errorf("email claim = %q, want the issued payload's email", claims.Email)
	}
}

func TestIssueTokenBadBody(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	routes.TokenRoutes(router, helper.NewTokenMaker("test-secret"))

	w := doJSON(t, router, http.MethodPost, "/jwt", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("empty body status = %d, want 400", w.Code)
	}
}
