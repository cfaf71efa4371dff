package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autopilot/pkg/utils"
)

var testSecret = []byte("test-secret")

func signToken(t *testing.T, claims utils.Claims, method jwt.SigningMethod, key interface{}) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(TraceIDMiddleware())
	r.GET("/me", JWTAuthMiddleware(testSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString(ContextUserID), "role": c.GetString(ContextRole)})
	})
	r.GET("/admin", JWTAuthMiddleware(testSecret), RoleMiddleware("admin"), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestJWTAuthMiddleware(t *testing.T) {
	r := newAuthRouter()
	valid := func(userID, subject, role string) utils.Claims {
		return utils.Claims{
			UserID: userID,
			Role:   role,
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   subject,
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
	}

	tests := []struct {
		name     string
		header   string
		wantCode int
		wantBody string
	}{
		{name: "missing header", header: "", wantCode: http.StatusUnauthorized},
		{name: "not bearer", header: "Basic abc", wantCode: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer nope", wantCode: http.StatusUnauthorized},
		{name: "wrong secret", header: "Bearer " + signToken(t, valid("u1", "", "user"), jwt.SigningMethodHS256, []byte("other")), wantCode: http.StatusUnauthorized},
		{
			name: "expired",
			header: "Bearer " + signToken(t, utils.Claims{UserID: "u1", RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			}}, jwt.SigningMethodHS256, testSecret),
			wantCode: http.StatusUnauthorized,
		},
		{name: "no account", header: "Bearer " + signToken(t, valid("", "", "user"), jwt.SigningMethodHS256, testSecret), wantCode: http.StatusUnauthorized},
		{name: "user_id claim", header: "Bearer " + signToken(t, valid("u1", "", "user"), jwt.SigningMethodHS256, testSecret), wantCode: http.StatusOK, wantBody: `{"role":"user","user_id":"u1"}`},
		{name: "subject fallback", header: "Bearer " + signToken(t, valid("", "u2", "admin"), jwt.SigningMethodHS256, testSecret), wantCode: http.StatusOK, wantBody: `{"role":"admin","user_id":"u2"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, w.Body.String())
			}
		})
	}
}

func TestRoleMiddleware(t *testing.T) {
	r := newAuthRouter()
	claims := func(role string) utils.Claims {
		return utils.Claims{UserID: "u1", Role: role, RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}}
	}

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, claims("user"), jwt.SigningMethodHS256, testSecret))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, claims("admin"), jwt.SigningMethodHS256, testSecret))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestTraceIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(TraceIDMiddleware())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("trace_id")) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := w.Header().Get(TraceHeader)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, w.Body.String())

	incoming := "8a3c8f0e-6a43-4b6f-9a53-2f1b3c0d9e11"
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(TraceHeader, incoming)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, incoming, w.Header().Get(TraceHeader))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(TraceHeader, "not-a-uuid")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.NotEqual(t, "not-a-uuid", w.Header().Get(TraceHeader))
}
