package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/contractorpro/contractorpro/internal/auth"
	"github.com/contractorpro/contractorpro/internal/config"
	ierr "github.com/contractorpro/contractorpro/internal/errors"
	"github.com/contractorpro/contractorpro/internal/logger"
	"github.com/contractorpro/contractorpro/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() *config.Configuration {
	cfg := config.GetDefaultConfig()
	cfg.Auth.Secret = "middleware-test-secret"
	cfg.Auth.APIKey.Keys = map[string]config.APIKeyDetails{
		auth.HashAPIKey("sk_live_owner"): {UserID: "user_key_owner", Name: "ci", IsActive: true},
	}
	return cfg
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ierr.ErrorResponse {
	t.Helper()
	var body ierr.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestErrorHandlerUsesHintAndMappedStatus(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler(logger.NewNoopLogger()))
	r.GET("/invoices/:id", func(c *gin.Context) {
		c.Error(ierr.NewError("invoice missing").
			WithHint("Invoice not found").
			Mark(ierr.ErrNotFound))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/invoices/inv_1", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decodeError(t, w)
	assert.False(t, body.Success)
	assert.Equal(t, "Invoice not found", body.Error.Display)
}

func TestErrorHandlerHidesUnhintedErrors(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler(logger.NewNoopLogger()))
	r.GET("/boom", func(c *gin.Context) {
		c.Error(assert.AnError)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, defaultDisplayMessage, decodeError(t, w).Error.Display)
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
}

func TestErrorHandlerKeepsWrittenResponse(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler(logger.NewNoopLogger()))
	r.POST("/email", func(c *gin.Context) {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to send email"})
		c.Error(ierr.NewError("send failed").Mark(ierr.ErrHTTPClient))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/email", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"Failed to send email"}`, w.Body.String())
}

func newAuthRouter(cfg *config.Configuration) *gin.Engine {
	r := gin.New()
	r.Use(ErrorHandler(logger.NewNoopLogger()))
	r.Use(AuthenticateMiddleware(cfg, auth.NewProvider(cfg), logger.NewNoopLogger()))
	r.GET("/me", func(c *gin.Context) {
		c.String(http.StatusOK, types.GetUserID(c.Request.Context()))
	})
	return r
}

func TestAuthenticateMiddleware(t *testing.T) {
	cfg := testConfig()
	token, err := auth.NewProvider(cfg).GenerateToken("user_jwt_owner", "owner@example.com")
	require.NoError(t, err)

	tests := []struct {
		name     string
		headers  map[string]string
		wantCode int
		wantBody string
		wantHint string
	}{
		{
			name:     "bearer token",
			headers:  map[string]string{types.HeaderAuthorization: "Bearer " + token},
			wantCode: http.StatusOK,
			wantBody: "user_jwt_owner",
		},
		{
			name:     "api key",
			headers:  map[string]string{"x-api-key": "sk_live_owner"},
			wantCode: http.StatusOK,
			wantBody: "user_key_owner",
		},
		{
			name:     "unknown api key",
			headers:  map[string]string{"x-api-key": "sk_live_other"},
			wantCode: http.StatusUnauthorized,
			wantHint: "Invalid API key",
		},
		{
			name:     "missing credentials",
			wantCode: http.StatusUnauthorized,
			wantHint: "Authentication required",
		},
		{
			name:     "not a bearer header",
			headers:  map[string]string{types.HeaderAuthorization: "Token " + token},
			wantCode: http.StatusUnauthorized,
			wantHint: "Invalid authorization header format",
		},
		{
			name:     "tampered token",
			headers:  map[string]string{types.HeaderAuthorization: "Bearer " + token + "x"},
			wantCode: http.StatusUnauthorized,
			wantHint: "Invalid or expired token",
		},
	}

	r := newAuthRouter(cfg)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			require.Equal(t, tt.wantCode, w.Code)
			if tt.wantHint != "" {
				assert.Equal(t, tt.wantHint, decodeError(t, w).Error.Display)
				return
			}
			assert.Equal(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestRateLimiterPerCaller(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit.Enabled = true
	cfg.RateLimit.RequestsPerSecond = 0.5
	cfg.RateLimit.Burst = 1

	r := gin.New()
	r.Use(ErrorHandler(logger.NewNoopLogger()))
	r.Use(func(c *gin.Context) {
		if user := c.GetHeader("X-Test-User"); user != "" {
			c.Request = c.Request.WithContext(types.SetUserID(c.Request.Context(), user))
		}
		c.Next()
	})
	r.Use(NewRateLimiter(cfg, logger.NewNoopLogger()).Middleware())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	call := func(user string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Test-User", user)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusNoContent, call("user_a").Code)

	limited := call("user_a")
	assert.Equal(t, http.StatusTooManyRequests, limited.Code)
	assert.Equal(t, "2", limited.Header().Get(types.HeaderRetryAfter))

	// buckets are per caller
	assert.Equal(t, http.StatusNoContent, call("user_b").Code)
}

func TestRequestIDMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware)
	r.GET("/id", func(c *gin.Context) {
		c.String(http.StatusOK, types.GetRequestID(c.Request.Context()))
	})

	req := httptest.NewRequest(http.MethodGet, "/id", nil)
	req.Header.Set(types.HeaderRequestID, "req_fixed")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "req_fixed", w.Body.String())
	assert.Equal(t, "req_fixed", w.Header().Get(types.HeaderRequestID))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/id", nil))
	assert.NotEmpty(t, w.Body.String())
	assert.Equal(t, w.Body.String(), w.Header().Get(types.HeaderRequestID))
}

func TestCORSPreflight(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware)
	r.POST("/clients", func(c *gin.Context) { c.Status(http.StatusCreated) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/clients", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
