package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"yatrasetu/pkg/utils"
)

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(TraceIDMiddleware())
	r.Use(mw...)
	r.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("user_id"))
	})
	return r
}

func TestTraceIDMiddleware(t *testing.T) {
	r := newEngine()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	_, err := uuid.Parse(w.Header().Get(TraceHeader))
	assert.NoError(t, err)

	given := uuid.New().String()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(TraceHeader, given)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, given, w.Header().Get(TraceHeader))

	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(TraceHeader, "not-a-uuid")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.NotEqual(t, "not-a-uuid", w.Header().Get(TraceHeader))
}

func TestJWTAuthMiddleware(t *testing.T) {
	tokens := utils.NewTokenManager("test-secret", time.Hour)
	r := newEngine(JWTAuthMiddleware(tokens))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	userID := uuid.New()
	token, err := tokens.CreateToken(userID, "traveller")
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID.String(), w.Body.String())
}

func TestRoleMiddleware(t *testing.T) {
	tokens := utils.NewTokenManager("test-secret", time.Hour)
	r := newEngine(JWTAuthMiddleware(tokens), RoleMiddleware(RoleAdmin))

	token, err := tokens.CreateToken(uuid.New(), "traveller")
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	r := newEngine(RequestLogger(zap.New(core)))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "/whoami", entry.ContextMap()["path"])
	assert.Equal(t, int64(http.StatusOK), entry.ContextMap()["status"])
	assert.Equal(t, w.Header().Get(TraceHeader), entry.ContextMap()["trace_id"])
}

func TestCORSPreflight(t *testing.T) {
	r := newEngine(CORSMiddleware())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/whoami", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
