package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"hotel-booking/middleware"
	"hotel-booking/models"
	"hotel-booking/services"
	"hotel-booking/utils"
)

// UserController is the admin panel: account CRUD plus the user_phones
// sub-records.
type UserController struct {
	Users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{Users: users}
}

func (uc *UserController) Panel(c *gin.Context) {
	users, err := uc.Users.ListUsers()
	if err != nil {
		log.Error().Err(err).Msg("failed to list users")
		c.String(http.StatusInternalServerError, "server error")
		return
	}
	render(c, "admin_panel.html", gin.H{"Title": "Admin Panel", "Users": users})
}

func (uc *UserController) CreateForm(c *gin.Context) {
	render(c, "edit_user.html", gin.H{"Title": "Create User"})
}

func userFromForm(c *gin.Context) models.User {
	return models.User{
		Username:       strings.TrimSpace(c.PostForm("username")),
		UserName:       strings.TrimSpace(c.PostForm("user_name")),
		Email:          strings.TrimSpace(c.PostForm("email")),
		Phone:          strings.TrimSpace(c.PostForm("phone")),
		IsAdmin:        utils.FormBool(c, "is_admin"),
		AdminID:        utils.FormUint(c, "admin_id"),
		ManagerID:      utils.FormUint(c, "manager_id"),
		ManagingFloor:  utils.FormInt(c, "managing_floor"),
		ReceptionistID: utils.FormUint(c, "receptionist_id"),
		AdminType:      strings.TrimSpace(c.PostForm("admin_type")),
	}
}

func (uc *UserController) Create(c *gin.Context) {
	user := userFromForm(c)
	_, err := uc.Users.CreateUser(user, c.PostForm("password"))
	switch {
	case err == nil:
		utils.Flash(c, "success", "User created")
		c.Redirect(http.StatusFound, "/admin")
	case errors.Is(err, services.ErrDuplicate):
		utils.Flash(c, "danger", "Username already exists")
		render(c, "edit_user.html", gin.H{"Title": "Create User", "User": user})
	case errors.Is(err, services.ErrMissingField):
		utils.Flash(c, "danger", "Username and password are required")
		render(c, "edit_user.html", gin.H{"Title": "Create User", "User": user})
	default:
		log.Error().Err(err).Msg("failed to create user")
		c.String(http.StatusInternalServerError, "server error")
	}
}

func (uc *UserController) EditForm(c *gin.Context) {
	user, err := uc.Users.GetUser(utils.ParamUint(c, "id"))
	if err != nil {
		utils.Flash(c, "danger", "User not found")
		c.Redirect(http.StatusFound, "/admin")
		return
	}
	render(c, "edit_user.html", gin.H{"Title": "Edit User", "User": user})
}

func (uc *UserController) Edit(c *gin.Context) {
	id := utils.ParamUint(c, "id")
	user := userFromForm(c)
	err := uc.Users.UpdateUser(id, user, c.PostForm("password"))
	switch {
	case err == nil:
		utils.Flash(c, "success", "User updated")
		c.Redirect(http.StatusFound, "/admin")
	case errors.Is(err, services.ErrDuplicate):
		utils.Flash(c, "danger", "Username already exists")
		user.ID = id
		render(c, "edit_user.html", gin.H{"Title": "Edit User", "User": user})
	case errors.Is(err, services.ErrNotFound):
		utils.Flash(c, "danger", "User not found")
		c.Redirect(http.StatusFound, "/admin")
	default:
		log.Error().Err(err).Msg("failed to update user")
		c.String(http.StatusInternalServerError, "server error")
	}
}

func (uc *UserController) Delete(c *gin.Context) {
	err := uc.Users.DeleteUser(utils.ParamUint(c, "id"), middleware.AdminID(c))
	switch {
	case err == nil:
		utils.Flash(c, "success", "User deleted")
	case errors.Is(err, services.ErrSelfDelete):
		utils.Flash(c, "danger", "You cannot delete the logged-in admin")
	case errors.Is(err, services.ErrNotFound):
		utils.Flash(c, "danger", "User not found")
	default:
		log.Error().Err(err).Msg("failed to delete user")
		c.String(http.StatusInternalServerError, "server error")
		return
	}
	c.Redirect(http.StatusFound, "/admin")
}

func (uc *UserController) PhoneList(c *gin.Context) {
	phones, err := uc.Users.ListUserPhones()
	if err != nil {
		log.Error().Err(err).Msg("failed to list user phones")
		c.String(http.StatusInternalServerError, "server error")
		return
	}
	render(c, "admin_user_phones.html", gin.H{"Title": "User Phones", "Phones": phones})
}

func (uc *UserController) PhoneCreateForm(c *gin.Context) {
	users, err := uc.Users.ListUsers()
	if err != nil {
		log.Error().Err(err).Msg("failed to list users")
		c.String(http.StatusInternalServerError, "server error")
		return
	}
	render(c, "edit_user_phone.html", gin.H{"Title": "Add User Phone", "Users": users})
}

func (uc *UserController) PhoneCreate(c *gin.Context) {
	userID := utils.FormUint(c, "user_id")
	phone := c.PostForm("phone")
	if userID == nil || strings.TrimSpace(phone) == "" {
		utils.Flash(c, "danger", "User and phone are required")
		c.Redirect(http.StatusFound, "/admin/user_phones/create")
		return
	}
	if err := uc.Users.AddUserPhone(*userID, phone); err != nil {
		log.Error().Err(err).Msg("failed to add user phone")
		c.String(http.StatusInternalServerError, "server error")
		return
	}
	utils.Flash(c, "success", "Phone added for user")
	c.Redirect(http.StatusFound, "/admin/user_phones")
}

func (uc *UserController) PhoneDelete(c *gin.Context) {
	userID := utils.FormUint(c, "user_id")
	phone := c.PostForm("phone")
	if userID == nil || strings.TrimSpace(phone) == "" {
		utils.Flash(c, "danger", "Missing parameters")
		c.Redirect(http.StatusFound, "/admin/user_phones")
		return
	}
	if err := uc.Users.DeleteUserPhone(*userID, phone); err != nil {
		log.Error().Err(err).Msg("failed to delete user phone")
		c.String(http.StatusInternalServerError, "server error")
		return
	}
	utils.Flash(c, "success", "Phone deleted")
	c.Redirect(http.StatusFound, "/admin/user_phones")
}
