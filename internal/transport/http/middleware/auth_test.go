package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ErlanBelekov/job-portal/internal/reqctx"
	"github.com/ErlanBelekov/job-portal/internal/transport/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const testKey = "middleware-test-secret-32-chars!!"

func init() {
	gin.SetMode(gin.TestMode)
}

// protectedEngine echoes the user id as seen through gin and through the request context.
func protectedEngine() *gin.Engine {
	r := gin.New()
	r.GET("/api/applications", middleware.Auth([]byte(testKey)), func(c *gin.Context) {
		c.String(http.StatusOK, "%s|%s", c.GetString(middleware.UserIDKey), reqctx.UserID(c.Request.Context()))
	})
	return r
}

func sign(t *testing.T, method jwt.SigningMethod, key any, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	if err != nil {
		t.Fatalf("sign jwt: %v", err)
	}
	return s
}

func sessionClaims(sub string, exp time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"sub":   sub,
		"email": "student@example.com",
		"iat":   time.Now().Unix(),
		"exp":   exp.Unix(),
	}
}

func TestAuth_Rejects(t *testing.T) {
	hour := time.Now().Add(time.Hour)

	cases := []struct {
		name   string
		header func(t *testing.T) string
	}{
		{"no header", func(*testing.T) string { return "" }},
		{"basic scheme", func(*testing.T) string { return "Basic dXNlcjpwYXNz" }},
		{"garbage token", func(*testing.T) string { return "Bearer not.a.jwt" }},
		{"expired", func(t *testing.T) string {
			return "Bearer " + sign(t, jwt.SigningMethodHS256, []byte(testKey), sessionClaims("user-1", time.Now().Add(-time.Minute)))
		}},
		{"wrong key", func(t *testing.T) string {
			return "Bearer " + sign(t, jwt.SigningMethodHS256, []byte("some-other-secret-of-32-chars!!!"), sessionClaims("user-1", hour))
		}},
		{"hs512 instead of hs256", func(t *testing.T) string {
			return "Bearer " + sign(t, jwt.SigningMethodHS512, []byte(testKey), sessionClaims("user-1", hour))
		}},
		{"no expiry", func(t *testing.T) string {
			return "Bearer " + sign(t, jwt.SigningMethodHS256, []byte(testKey), jwt.MapClaims{"sub": "user-1"})
		}},
		{"no subject", func(t *testing.T) string {
			return "Bearer " + sign(t, jwt.SigningMethodHS256, []byte(testKey), jwt.MapClaims{"email": "a@x.com", "exp": hour.Unix()})
		}},
		{"empty subject", func(t *testing.T) string {
			return "Bearer " + sign(t, jwt.SigningMethodHS256, []byte(testKey), sessionClaims("", hour))
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/applications", nil)
			if h := tc.header(t); h != "" {
				req.Header.Set("Authorization", h)
			}
			w := httptest.NewRecorder()
			protectedEngine().ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", w.Code)
			}
		})
	}
}

func TestAuth_ValidSession_SetsUserID(t *testing.T) {
	tok := sign(t, jwt.SigningMethodHS256, []byte(testKey), sessionClaims("user-abc", time.Now().Add(24*time.Hour)))

	req := httptest.NewRequest(http.MethodGet, "/api/applications", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	protectedEngine().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if got, want := w.Body.String(), "user-abc|user-abc"; got != want {
		t.Errorf("body = %q, want %q", got, want)
	}
}
