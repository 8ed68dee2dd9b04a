package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"hotel-booking/models"
)

func TestCreateUserHashesPassword(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	user, err := svc.CreateUser(models.User{Username: "alice", Email: "alice@example.com"}, "secret")
	assert.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.NotEqual(t, "secret", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret")))
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	first, err := svc.CreateUser(models.User{Username: "bob", Email: "bob@example.com"}, "pw1")
	assert.NoError(t, err)

	_, err = svc.CreateUser(models.User{Username: "bob", Email: "other@example.com"}, "pw2")
	assert.ErrorIs(t, err, ErrDuplicate)

	// Existing row is untouched.
	got, err := svc.GetUser(first.ID)
	assert.NoError(t, err)
	assert.Equal(t, "bob@example.com", got.Email)

	users, err := svc.ListUsers()
	assert.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestCreateUserMissingFields(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	_, err := svc.CreateUser(models.User{Username: ""}, "pw")
	assert.ErrorIs(t, err, ErrMissingField)

	_, err = svc.CreateUser(models.User{Username: "carol"}, "")
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestUpdateUserBlankPasswordKeepsHash(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	user, err := svc.CreateUser(models.User{Username: "dave"}, "original")
	assert.NoError(t, err)

	err = svc.UpdateUser(user.ID, models.User{Username: "dave", Email: "dave@example.com"}, "")
	assert.NoError(t, err)

	got, err := svc.GetUser(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, "dave@example.com", got.Email)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(got.Password), []byte("original")))
}

func TestDeleteUserSelf(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	admin, err := svc.CreateUser(models.User{Username: "admin", IsAdmin: true}, "admin")
	assert.NoError(t, err)

	assert.ErrorIs(t, svc.DeleteUser(admin.ID, admin.ID), ErrSelfDelete)

	// Still present.
	_, err = svc.GetUser(admin.ID)
	assert.NoError(t, err)

	other, err := svc.CreateUser(models.User{Username: "temp"}, "pw")
	assert.NoError(t, err)
	assert.NoError(t, svc.DeleteUser(other.ID, admin.ID))
	_, err = svc.GetUser(other.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAuthenticate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	_, err := svc.CreateUser(models.User{Username: "admin", IsAdmin: true}, "admin")
	assert.NoError(t, err)
	_, err = svc.CreateUser(models.User{Username: "guest", IsAdmin: false}, "guest")
	assert.NoError(t, err)

	user, err := svc.Authenticate("admin", "admin")
	assert.NoError(t, err)
	assert.Equal(t, "admin", user.Username)

	_, err = svc.Authenticate("admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Non-admin accounts cannot log in even with the right password.
	_, err = svc.Authenticate("guest", "guest")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate("nobody", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserPhones(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	user, err := svc.CreateUser(models.User{Username: "erin"}, "pw")
	assert.NoError(t, err)

	assert.NoError(t, svc.AddUserPhone(user.ID, "555-0101"))
	// Re-adding the same pair is a no-op.
	assert.NoError(t, svc.AddUserPhone(user.ID, "555-0101"))
	assert.NoError(t, svc.AddUserPhone(user.ID, "555-0102"))

	phones, err := svc.ListUserPhones()
	assert.NoError(t, err)
	assert.Len(t, phones, 2)

	assert.NoError(t, svc.DeleteUserPhone(user.ID, "555-0101"))
	phones, err = svc.ListUserPhones()
	assert.NoError(t, err)
	assert.Len(t, phones, 1)
	assert.Equal(t, "555-0102", phones[0].Phone)

	assert.ErrorIs(t, svc.AddUserPhone(0, "555-0103"), ErrMissingField)
	assert.ErrorIs(t, svc.AddUserPhone(user.ID, "  "), ErrMissingField)
}
