package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"hotel-booking/utils"
)

// AdminIDKey is where AdminRequired stores the authenticated admin's id in
// the request context.
const AdminIDKey = "admin_id"

// AdminRequired gates /admin/* routes on a logged-in admin session. Without
// one the request is redirected to the login page before any handler runs.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		adminID, ok := sess.Get("admin_id").(uint)
		if !ok || adminID == 0 {
			utils.Flash(c, "danger", "Admin login required")
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Set(AdminIDKey, adminID)
		c.Next()
	}
}

// AdminID returns the authenticated admin's id, or 0 outside a gated route.
func AdminID(c *gin.Context) uint {
	id, _ := c.Get(AdminIDKey)
	v, _ := id.(uint)
	return v
}
