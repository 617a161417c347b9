package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	helper "github.com/ahmed-shaon/tasty-kitchen-server/helpers"
	"github.com/ahmed-shaon/tasty-kitchen-server/models"
	"github.com/ahmed-shaon/tasty-kitchen-server/repository"
	"github.com/ahmed-shaon/tasty-kitchen-server/routes"
)

func newReviewServer(t *testing.T) (*gin.Engine, *helper.TokenMaker) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryReviewRepository()
	tm := helper.NewTokenMaker("test-secret")
	router := gin.New()
	routes.ReviewRoutes(router, repo, tm)
	return router, tm
}

func createReview(t *testing.T, router *gin.Engine, review models.Review) string {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/review", review)
	if w.Code != http.StatusOK {
		t.Fatalf("create review status = %d, body %s", w.Code, w.Body.String())
	}
	var created struct {
		InsertedID string `json:"insertedId"`
	}
	decodeBody(t, w, &created)
	return created.InsertedID
}

func bearerGet(t *testing.T, router *gin.Engine, path, token string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateReviewThenListByItem(t *testing.T) {
	router, _ := newReviewServer(t)

	createReview(t, router, models.Review{ItemID: "42", Email: "alice@example.com", Rating: 5, Message: "first"})
	createReview(t, router, models.Review{ItemID: "42", Email: "bob@example.com", Rating: 3, Message: "second"})
	createReview(t, router, models.Review{ItemID: "7", Email: "alice@example.com", Rating: 1, Message: "other item"})

	w := doJSON(t, router, http.MethodGet, "/reviewsbyid?id=42", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}

	var reviews []models.Review
	decodeBody(t, w, &reviews)
	if len(reviews) != 2 {
		t.Fatalf("listing returned %d reviews, want 2", len(reviews))
	}
	if reviews[0].Message != "first" || reviews[1].Message != "second" {
		t.Errorf("order = [%q, %q], want creation order", reviews[0].Message, reviews[1].Message)
	}
}

func TestCreateReviewValidation(t *testing.T) {
	router, _ := newReviewServer(t)

	tests := []struct {
		name string
		body models.Review
	}{
		{name: "missing itemId", body: models.Review{Email: "a@example.com", Rating: 4, Message: "ok"}},
		{name: "bad email", body: models.Review{ItemID: "42", Email: "nope", Rating: 4, Message: "ok"}},
		{name: "rating out of range", body: models.Review{ItemID: "42", Email: "a@example.com", Rating: 9, Message: "ok"}},
		{name: "missing message", body: models.Review{ItemID: "42", Email: "a@example.com", Rating: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, router, http.MethodPost, "/review", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}
}

func TestReviewsByEmailScoping(t *testing.T) {
	router, tm := newReviewServer(t)

	createReview(t, router, models.Review{ItemID: "42", Email: "alice@example.com", Rating: 5, Message: "mine"})
	createReview(t, router, models.Review{ItemID: "42", Email: "bob@example.com", Rating: 2, Message: "not mine"})

	aliceToken, err := tm.GenerateToken(map[string]interface{}{"email": "alice@example.com"})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	t.Run("matching identity sees own reviews", func(t *testing.T) {
		w := bearerGet(t, router, "/reviews?email=alice@example.com", aliceToken)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
		}
		var reviews []models.Review
		decodeBody(t, w, &reviews)
		if len(reviews) != 1 || reviews[0].Email != "alice@example.com" {
			t.Errorf("reviews = %+v, want exactly alice's", reviews)
		}
	})

	t.Run("mismatched identity is denied without data", func(t *testing.T) {
		for _, requested := range []string{"bob@example.com", "Alice@example.com", ""} {
			w := bearerGet(t, router, "/reviews?email="+requested, aliceToken)
			if w.Code != http.StatusForbidden {
				t.Errorf("requested %q: status = %d, want 403", requested, w.Code)
			}
			if strings.Contains(w.Body.String(), "not mine") || strings.Contains(w.Body.String(), "mine") {
				t.Errorf("requested %q: denial leaked review data: %s", requested, w.Body.String())
			}
		}
	})

	t.Run("no token", func(t *testing.T) {
		w := bearerGet(t, router, "/reviews?email=alice@example.com", "")
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})
}

func TestUpdateReview(t *testing.T) {
	router, _ := newReviewServer(t)

	id := createReview(t, router, models.Review{ItemID: "42", Email: "alice@example.com", Rating: 5, Message: "great"})

	rating := 2.0
	message := "changed my mind"
	w := doJSON(t, router, http.MethodPut, "/reviews/"+id, models.ReviewUpdate{Rating: &rating, Message: &message})
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d, body %s", w.Code, w.Body.String())
	}

	var result repository.UpdateResult
	decodeBody(t, w, &result)
	if result.MatchedCount != 1 {
		t.Errorf("matchedCount = %d, want 1", result.MatchedCount)
	}

	// Only rating and message change; identity fields stay put.
	w = doJSON(t, router, http.MethodGet, "/reviewsbyid?id=42", nil)
	var reviews []models.Review
	decodeBody(t, w, &reviews)
	if len(reviews) != 1 {
		t.Fatalf("listing returned %d reviews, want 1", len(reviews))
	}
	got := reviews[0]
	if got.Rating != 2.0 || got.Message != "changed my mind" {
		t.Errorf("updated review = %+v, want new rating and message", got)
	}
	if got.Email != "alice@example.com" || got.ItemID != "42" {
		t.Errorf("update touched identity fields: %+v", got)
	}
}

func TestUpdateReviewMissingID(t *testing.T) {
	router, _ := newReviewServer(t)

	rating := 4.0
	message := "from nowhere"
	update := models.ReviewUpdate{Rating: &rating, Message: &message}
	missing := primitive.NewObjectID().Hex()

	w := doJSON(t, router, http.MethodPut, "/reviews/"+missing, update)
	if w.Code != http.StatusNotFound {
		t.Errorf("update without upsert status = %d, want 404", w.Code)
	}

	w = doJSON(t, router, http.MethodPut, "/reviews/"+missing+"?upsert=true", update)
	if w.Code != http.StatusOK {
		t.Fatalf("upsert status = %d, body %s", w.Code, w.Body.String())
	}

	// The upserted record is now deletable under the same id.
	w = doJSON(t, router, http.MethodDelete, "/reviews/"+missing, nil)
	if w.Code != http.StatusOK {
		t.Errorf("delete of upserted review status = %d", w.Code)
	}
}

func TestUpdateReviewValidation(t *testing.T) {
	router, _ := newReviewServer(t)

	id := createReview(t, router, models.Review{ItemID: "42", Email: "alice@example.com", Rating: 5, Message: "great"})

	message := "no rating"
	w := doJSON(t, router, http.MethodPut, "/reviews/"+id, models.ReviewUpdate{Message: &message})
	if w.Code != http.StatusBadRequest {
		t.Errorf("update without rating status = %d, want 400", w.Code)
	}
}

func TestDeleteReview(t *testing.T) {
	router, _ := newReviewServer(t)

	id := createReview(t, router, models.Review{ItemID: "42", Email: "alice@example.com", Rating: 5, Message: "great"})

	w := doJSON(t, router, http.MethodDelete, "/reviews/"+id, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete status = %d, body %s", w.Code, w.Body.String())
	}
	var result struct {
		DeletedCount int64 `json:"deletedCount"`
	}
	decodeBody(t, w, &result)
	if result.DeletedCount != 1 {
		t.Errorf("deletedCount = %d, want 1", result.DeletedCount)
	}

	w = doJSON(t, router, http.MethodDelete, "/reviews/"+id, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", w.Code)
	}
}

func TestReviewMalformedIDs(t *testing.T) {
	router, _ := newReviewServer(t)

	rating := 4.0
	message := "whatever"
	update := models.ReviewUpdate{Rating: &rating, Message: &message}

	if w := doJSON(t, router, http.MethodPut, "/reviews/zzz", update); w.Code != http.StatusBadRequest {
		t.Errorf("PUT with malformed id status = %d, want 400", w.Code)
	}
	if w := doJSON(t, router, http.MethodDelete, "/reviews/zzz", nil); w.Code != http.StatusBadRequest {
		t.Errorf("DELETE with malformed id status = %d, want 400", w.Code)
	}
}
