package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"hotel-booking/services"
	"hotel-booking/utils"
)

// AuthController starts and ends the admin session. The session cookie
// carrying admin_id is the sole authorization gate for /admin/*.
type AuthController struct {
	Users *services.UserService
}

func NewAuthController(users *services.UserService) *AuthController {
	return &AuthController{Users: users}
}

func (ac *AuthController) LoginForm(c *gin.Context) {
	render(c, "admin_login.html", gin.H{"Title": "Admin Login"})
}

func (ac *AuthController) Login(c *gin.Context) {
	user, err := ac.Users.Authenticate(c.PostForm("username"), c.PostForm("password"))
	if err != nil {
		if !errors.Is(err, services.ErrInvalidCredentials) {
			log.Error().Err(err).Msg("login lookup failed")
		}
		utils.Flash(c, "danger", "Invalid credentials")
		render(c, "admin_login.html", gin.H{"Title": "Admin Login"})
		return
	}

	sess := sessions.Default(c)
	sess.Set("admin_id", user.ID)
	sess.Set("admin_username", user.Username)
	if err := sess.Save(); err != nil {
		log.Error().Err(err).Msg("failed to save session")
		c.String(http.StatusInternalServerError, "server error")
		return
	}

	utils.Flash(c, "success", "Logged in as admin")
	c.Redirect(http.StatusFound, "/admin")
}

func (ac *AuthController) Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Delete("admin_id")
	sess.Delete("admin_username")
	_ = sess.Save()

	utils.Flash(c, "success", "Logged out")
	c.Redirect(http.StatusFound, "/")
}
