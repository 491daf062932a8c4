package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hris-web/internal/middleware"
	"go-hris-web/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", handlers...)
	return r
}

func TestSession(t *testing.T) {
	t.Run("issues a cookie when missing", func(t *testing.T) {
		var got string
		r := newRouter(middleware.Session(), func(c *gin.Context) {
			got = c.GetString("session_id")
			assert.Equal(t, got, contextutil.GetSessionID(c.Request.Context()))
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		_, err := uuid.Parse(got)
		assert.NoError(t, err)
		cookies := w.Result().Cookies()
		if assert.Len(t, cookies, 1) {
			assert.Equal(t, middleware.SessionCookie, cookies[0].Name)
			assert.Equal(t, got, cookies[0].Value)
			assert.True(t, cookies[0].HttpOnly)
		}
	})

	t.Run("keeps a valid cookie", func(t *testing.T) {
		sid := uuid.New().String()
		var got string
		r := newRouter(middleware.Session(), func(c *gin.Context) {
			got = c.GetString("session_id")
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: sid})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, sid, got)
		assert.Empty(t, w.Result().Cookies())
	})

	t.Run("replaces a forged cookie", func(t *testing.T) {
		var got string
		r := newRouter(middleware.Session(), func(c *gin.Context) {
			got = c.GetString("session_id")
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "../../admin"})
		r.ServeHTTP(httptest.NewRecorder(), req)

		assert.NotEqual(t, "../../admin", got)
	})
}

func TestRequestIDAndContextLogger(t *testing.T) {
	var ctxRID, ctxSID string
	r := newRouter(
		middleware.RequestID(),
		middleware.Session(),
		middleware.ContextLogger(zap.NewNop()),
		func(c *gin.Context) {
			ctxRID = contextutil.GetRequestID(c.Request.Context())
			ctxSID = contextutil.GetSessionID(c.Request.Context())
			assert.NotNil(t, contextutil.GetLogger(c.Request.Context(), nil))
		},
	)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "rid-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "rid-123", ctxRID)
	assert.Equal(t, "rid-123", w.Header().Get("X-Request-ID"))
	assert.NotEmpty(t, ctxSID)
}

func TestRequestID_ReplacesUnusableHeader(t *testing.T) {
	r := newRouter(middleware.RequestID(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for _, rid := range []string{"", "has space", "<script>", strings.Repeat("a", 65)} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.RequestIDHeader, rid)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		got := w.Header().Get(middleware.RequestIDHeader)
		assert.NotEqual(t, rid, got)
		_, err := uuid.Parse(got)
		assert.NoError(t, err)
	}
}

func TestRateLimitByIP(t *testing.T) {
	r := newRouter(middleware.RateLimitByIP(1, 2), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	codes := make([]int, 0, 3)
	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		last = httptest.NewRecorder()
		r.ServeHTTP(last, httptest.NewRequest(http.MethodGet, "/", nil))
		codes = append(codes, last.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	assert.Contains(t, last.Body.String(), `"code":"RATE_LIMITED"`)
}

func TestRateLimitBySession(t *testing.T) {
	handler := func(c *gin.Context) { c.Status(http.StatusOK) }
	setSession := func(sid string) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.Set("session_id", sid)
			c.Next()
		}
	}

	limiter := middleware.RateLimitBySession(1, 1)
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/a", setSession("a"), limiter, handler)
	r.GET("/b", setSession("b"), limiter, handler)
	r.GET("/anon", limiter, handler)

	hit := func(path string) int {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		return w.Code
	}

	assert.Equal(t, http.StatusOK, hit("/a"))
	assert.Equal(t, http.StatusTooManyRequests, hit("/a"))
	assert.Equal(t, http.StatusOK, hit("/b"))
	assert.Equal(t, http.StatusOK, hit("/anon"))
	assert.Equal(t, http.StatusOK, hit("/anon"))
}
