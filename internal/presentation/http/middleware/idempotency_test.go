package middleware

import (
	"bytes"
	"context"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmelo/assistech-api/internal/domain/entity"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockIdempotencyRepo struct {
	stored      map[string]*entity.IdempotencyKey
	createCalls int
	createErr   error
}

func newMockIdempotencyRepo() *mockIdempotencyRepo {
	return &mockIdempotencyRepo{stored: make(map[string]*entity.IdempotencyKey)}
}

func (m *mockIdempotencyRepo) GetByKey(ctx context.Context, key string, userID uuid.UUID) (*entity.IdempotencyKey, error) {
	return m.stored[key], nil
}

func (m *mockIdempotencyRepo) Create(ctx context.Context, key *entity.IdempotencyKey) error {
	m.createCalls++
	if m.createErr != nil {
		return m.createErr
	}
	m.stored[key.Key] = key
	return nil
}

func (m *mockIdempotencyRepo) DeleteExpired(ctx context.Context) error {
	return nil
}

func idempotencyRouter(repo *mockIdempotencyRepo, userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/sales",
		func(c *gin.Context) { c.Set("user_id", userID) },
		Idempotency(repo),
		func(c *gin.Context) { c.JSON(http.StatusCreated, gin.H{"sale_no": "VND-0001"}) },
	)
	return router
}

func TestIdempotency_StoresSuccessfulResponse(t *testing.T) {
	repo := newMockIdempotencyRepo()
	router := idempotencyRouter(repo, uuid.New())

	req := httptest.NewRequest("POST", "/sales", nil)
	req.Header.Set(IdempotencyKeyHeader, "key-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, repo.createCalls)
	require.NotNil(t, repo.stored["key-1"])
	assert.Contains(t, repo.stored["key-1"].ResponseBody, "VND-0001")
}

func TestIdempotency_ReplaysStoredResponse(t *testing.T) {
	repo := newMockIdempotencyRepo()
	userID := uuid.New()
	repo.stored["key-1"] = &entity.IdempotencyKey{
		Key:          "key-1",
		UserID:       userID,
		ResponseCode: http.StatusCreated,
		ResponseBody: `{"sale_no":"VND-0001"}`,
		ExpiresAt:    time.Now().Add(time.Hour),
	}
	router := idempotencyRouter(repo, userID)

	req := httptest.NewRequest("POST", "/sales", nil)
	req.Header.Set(IdempotencyKeyHeader, "key-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "true", w.Header().Get("X-Idempotency-Replayed"))
	assert.Equal(t, 0, repo.createCalls)
}

func TestIdempotency_SkipsWithoutHeader(t *testing.T) {
	repo := newMockIdempotencyRepo()
	router := idempotencyRouter(repo, uuid.New())

	req := httptest.NewRequest("POST", "/sales", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 0, repo.createCalls)
}

func TestIdempotency_StoreFailureIsLoggedNotSurfaced(t *testing.T) {
	repo := newMockIdempotencyRepo()
	repo.createErr = errors.New("db down")
	router := idempotencyRouter(repo, uuid.New())

	var logged bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&logged)
	defer log.SetOutput(prev)

	req := httptest.NewRequest("POST", "/sales", nil)
	req.Header.Set(IdempotencyKeyHeader, "key-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, repo.createCalls)
	assert.Contains(t, logged.String(), "failed to store idempotency key")
}
