package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"digitalmindset/services/token"
	"digitalmindset/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// stubTokens accepts exactly one token/device pair.
type stubTokens struct {
	token.TokenService
	token    string
	device   string
	lastSeen string
}

func (s *stubTokens) Authorize(_ context.Context, tok, deviceID string) error {
	s.lastSeen = deviceID
	switch {
	case tok == "":
		return utils.ErrTokenRequired
	case tok != s.token:
		return utils.ErrTokenNotFound
	case deviceID != "" && deviceID != s.device:
		return utils.ErrDeviceConflict
	}
	return nil
}

type stubVerifier string

func (v stubVerifier) VerifyPassword(password string) bool { return password == string(v) }

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestContextMiddleware())
	r.Use(mw...)
	r.POST("/echo", func(c *gin.Context) {
		var body struct {
			Niche string `json:"niche"`
		}
		if c.Request.ContentLength > 0 {
			_ = c.ShouldBindBodyWith(&body, binding.JSON)
		}
		c.JSON(http.StatusOK, gin.H{
			"token":     c.GetString(CtxToken),
			"niche":     body.Niche,
			"requestID": c.GetString(CtxRequestID),
			"admin":     c.GetBool("isAdmin"),
		})
	})
	return r
}

func post(r *gin.Engine, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestTokenAuthMiddlewareKeepsBodyForHandler(t *testing.T) {
	tokens := &stubTokens{token: "ABC", device: "dev-1"}
	r := newEngine(TokenAuthMiddleware(tokens))

	w := post(r, `{"token":"ABC","deviceId":"dev-1","niche":"Keto"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"niche":"Keto"`)
	assert.Contains(t, w.Body.String(), `"token":"ABC"`)
	assert.Equal(t, "dev-1", tokens.lastSeen)
}

func TestTokenAuthMiddlewareHeaders(t *testing.T) {
	tokens := &stubTokens{token: "ABC", device: "dev-1"}
	r := newEngine(TokenAuthMiddleware(tokens))

	w := post(r, "", map[string]string{"X-Access-Token": "ABC", "X-Device-ID": "dev-1"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "dev-1", tokens.lastSeen)

	w = post(r, "", map[string]string{"X-Access-Token": "ABC", "X-Device-ID": "dev-2"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestTokenAuthMiddlewareRejects(t *testing.T) {
	r := newEngine(TokenAuthMiddleware(&stubTokens{token: "ABC", device: "dev-1"}))

	assert.Equal(t, http.StatusBadRequest, post(r, `{}`, nil).Code)
	assert.Equal(t, http.StatusNotFound, post(r, `{"token":"XYZ"}`, nil).Code)
	assert.Equal(t, http.StatusBadRequest, post(r, `{not json`, nil).Code)
}

func TestAdminAuthMiddleware(t *testing.T) {
	r := newEngine(AdminAuthMiddleware(stubVerifier("pw")))

	assert.Equal(t, http.StatusUnauthorized, post(r, "", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, post(r, "", map[string]string{"X-Admin-Password": "nope"}).Code)

	w := post(r, "", map[string]string{"X-Admin-Password": "pw"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"admin":true`)

	assert.Equal(t, http.StatusOK, post(r, "", map[string]string{"Authorization": "Bearer pw"}).Code)
}

func TestRequestContextMiddlewareRequestID(t *testing.T) {
	r := newEngine()

	w := post(r, "", map[string]string{"X-Request-ID": "req-42"})
	assert.Equal(t, "req-42", w.Header().Get("X-Request-ID"))
	assert.Contains(t, w.Body.String(), `"requestID":"req-42"`)

	w = post(r, "", nil)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestGetClientIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.RemoteAddr = "10.0.0.9:5555"
	assert.Equal(t, "10.0.0.9", getClientIP(c))

	c.Request.Header.Set("X-Real-IP", "192.0.2.7")
	assert.Equal(t, "192.0.2.7", getClientIP(c))

	c.Request.Header.Set("X-Forwarded-For", "198.51.100.1, 10.0.0.1")
	assert.Equal(t, "198.51.100.1", getClientIP(c))
}

func TestRequestLoggerCarriesRequestFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	restore := zap.ReplaceGlobals(zap.New(core))
	defer restore()

	r := newEngine(TokenAuthMiddleware(&stubTokens{token: "ABC", device: "dev-1"}))
	w := post(r, `{"token":"ABC"}`, map[string]string{
		"X-Request-ID":    "req-7",
		"X-Forwarded-For": "203.0.113.5",
		"X-Device-ID":     "dev-2",
	})
	require.Equal(t, http.StatusForbidden, w.Code)

	rejected := logs.FilterMessage("TokenAuthMiddleware: rejected").All()
	require.Len(t, rejected, 1)
	fields := rejected[0].ContextMap()
	assert.Equal(t, "req-7", fields["requestID"])
	assert.Equal(t, "203.0.113.5", fields["clientIP"])
	assert.Equal(t, "dev-2", fields["deviceID"])
}

func TestAdminAuthLogsClientIP(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	restore := zap.ReplaceGlobals(zap.New(core))
	defer restore()

	r := newEngine(AdminAuthMiddleware(stubVerifier("pw")))
	w := post(r, "", map[string]string{"X-Admin-Password": "nope", "X-Real-IP": "192.0.2.44"})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	entries := logs.FilterMessage("AdminAuthMiddleware: wrong admin password").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "192.0.2.44", entries[0].ContextMap()["ip"])
}

func TestRequestLoggerFallsBackToGlobal(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Same(t, zap.L(), RequestLogger(c))
}
