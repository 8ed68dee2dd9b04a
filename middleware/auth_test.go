package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newAuthTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(sessions.Sessions("hotel_session", cookie.NewStore([]byte("test_secret"))))

	r.GET("/login-as-admin", func(c *gin.Context) {
		sess := sessions.Default(c)
		sess.Set("admin_id", uint(1))
		_ = sess.Save()
		c.String(http.StatusOK, "ok")
	})

	admin := r.Group("/admin", AdminRequired())
	admin.GET("/panel", func(c *gin.Context) {
		c.String(http.StatusOK, "admin %d", AdminID(c))
	})
	return r
}

func TestAdminRequiredRedirectsAnonymous(t *testing.T) {
	r := newAuthTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/panel", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/login", w.Header().Get("Location"))
	assert.NotContains(t, w.Body.String(), "admin 1")
}

func TestAdminRequiredAllowsSession(t *testing.T) {
	r := newAuthTestRouter()

	// Establish a session first and carry its cookie over.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/login-as-admin", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	assert.NotEmpty(t, cookies)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/admin/panel", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "admin 1", w.Body.String())
}
