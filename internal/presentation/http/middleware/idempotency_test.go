package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/akosiano1/itpm-proj/internal/domain/entity"
)

type fakeIdempotencyRepo struct {
	keys map[string]*entity.IdempotencyKey
}

func newFakeIdempotencyRepo() *fakeIdempotencyRepo {
	return &fakeIdempotencyRepo{keys: make(map[string]*entity.IdempotencyKey)}
}

func (r *fakeIdempotencyRepo) GetByKey(_ context.Context, key string, userID uuid.UUID) (*entity.IdempotencyKey, error) {
	ikey, ok := r.keys[key+"/"+userID.String()]
	if !ok {
		return nil, nil
	}
	return ikey, nil
}

func (r *fakeIdempotencyRepo) Create(_ context.Context, ikey *entity.IdempotencyKey) error {
	r.keys[ikey.Key+"/"+ikey.UserID.String()] = ikey
	return nil
}

func (r *fakeIdempotencyRepo) DeleteExpired(_ context.Context) error {
	return nil
}

func checkoutTestRouter(repo *fakeIdempotencyRepo, userID uuid.UUID, handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/checkout",
		func(c *gin.Context) { c.Set("user_id", userID) },
		IdempotencyRequired(IdempotencyConfig{Repo: repo}),
		handler,
	)
	return router
}

func TestIdempotencyRequiredRejectsMissingKey(t *testing.T) {
	repo := newFakeIdempotencyRepo()
	calls := 0
	router := checkoutTestRouter(repo, uuid.New(), func(c *gin.Context) {
		calls++
		c.JSON(http.StatusCreated, gin.H{"success": true})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/checkout", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if calls != 0 {
		t.Fatalf("handler ran %d times without a key", calls)
	}
}

func TestIdempotencyRequiredReplaysStoredResponse(t *testing.T) {
	repo := newFakeIdempotencyRepo()
	calls := 0
	router := checkoutTestRouter(repo, uuid.New(), func(c *gin.Context) {
		calls++
		c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Sale recorded"})
	})

	first := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/checkout", nil)
	req.Header.Set(IdempotencyKeyHeader, "abc-123")
	router.ServeHTTP(first, req)

	if first.Code != http.StatusCreated {
		t.Fatalf("first request: expected 201, got %d", first.Code)
	}
	if first.Header().Get("X-Idempotency-Replayed") != "" {
		t.Fatal("first request should not be marked replayed")
	}

	second := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodPost, "/checkout", nil)
	req2.Header.Set(IdempotencyKeyHeader, "abc-123")
	router.ServeHTTP(second, req2)

	if second.Code != http.StatusCreated {
		t.Fatalf("replay: expected 201, got %d", second.Code)
	}
	if second.Header().Get("X-Idempotency-Replayed") != "true" {
		t.Fatal("replay should be marked with X-Idempotency-Replayed")
	}
	if !strings.Contains(second.Body.String(), "Sale recorded") {
		t.Fatalf("replay body does not match stored response: %s", second.Body.String())
	}
	if calls != 1 {
		t.Fatalf("handler ran %d times, want 1", calls)
	}
}

func TestIdempotencyRequiredDoesNotStoreFailures(t *testing.T) {
	repo := newFakeIdempotencyRepo()
	calls := 0
	router := checkoutTestRouter(repo, uuid.New(), func(c *gin.Context) {
		calls++
		if calls == 1 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true})
	})

	first := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/checkout", nil)
	req.Header.Set(IdempotencyKeyHeader, "retry-1")
	router.ServeHTTP(first, req)

	if first.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", first.Code)
	}

	// The same key retries the request because the failure was not recorded.
	second := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodPost, "/checkout", nil)
	req2.Header.Set(IdempotencyKeyHeader, "retry-1")
	router.ServeHTTP(second, req2)

	if second.Code != http.StatusCreated {
		t.Fatalf("retry after failure: expected 201, got %d", second.Code)
	}
	if calls != 2 {
		t.Fatalf("handler ran %d times, want 2", calls)
	}
}

func TestIdempotencyRequiredScopesKeysPerUser(t *testing.T) {
	repo := newFakeIdempotencyRepo()

	serve := func(userID uuid.UUID) *httptest.ResponseRecorder {
		router := checkoutTestRouter(repo, userID, func(c *gin.Context) {
			c.JSON(http.StatusCreated, gin.H{"success": true})
		})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/checkout", nil)
		req.Header.Set(IdempotencyKeyHeader, "shared-key")
		router.ServeHTTP(w, req)
		return w
	}

	first := serve(uuid.New())
	second := serve(uuid.New())

	if first.Header().Get("X-Idempotency-Replayed") != "" {
		t.Fatal("first user's request should not replay")
	}
	if second.Header().Get("X-Idempotency-Replayed") != "" {
		t.Fatal("another user's key must not replay the first user's response")
	}
}

func TestIdempotencyExpiredKeyIsNotReplayed(t *testing.T) {
	repo := newFakeIdempotencyRepo()
	userID := uuid.New()
	repo.keys["old-key/"+userID.String()] = &entity.IdempotencyKey{
		Key:          "old-key",
		UserID:       userID,
		ResponseCode: http.StatusCreated,
		ResponseBody: `{"success":true}`,
		ExpiresAt:    time.Now().Add(-time.Minute),
	}

	calls := 0
	router := checkoutTestRouter(repo, userID, func(c *gin.Context) {
		calls++
		c.JSON(http.StatusCreated, gin.H{"success": true})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/checkout", nil)
	req.Header.Set(IdempotencyKeyHeader, "old-key")
	router.ServeHTTP(w, req)

	if w.Header().Get("X-Idempotency-Replayed") != "" {
		t.Fatal("expired key must not replay")
	}
	if calls != 1 {
		t.Fatalf("handler ran %d times, want 1", calls)
	}
}
