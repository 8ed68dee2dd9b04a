package controllers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"hotel-booking/utils"
)

// render executes an HTML template with the flash messages popped from the
// session and the logged-in admin name (when any) merged into the data.
func render(c *gin.Context, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Flashes"] = utils.Flashes(c)

	sess := sessions.Default(c)
	if username, ok := sess.Get("admin_username").(string); ok {
		data["AdminUsername"] = username
	}

	c.HTML(http.StatusOK, name, data)
}
