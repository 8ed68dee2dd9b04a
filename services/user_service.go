package services

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hotel-booking/models"
)

// UserService manages accounts, credentials and the user_phones sub-table.
type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

func (s *UserService) ListUsers() ([]models.User, error) {
	var users []models.User
	err := s.DB.Find(&users).Error
	return users, err
}

func (s *UserService) GetUser(id uint) (models.User, error) {
	var user models.User
	err := s.DB.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return user, ErrNotFound
	}
	return user, err
}

// CreateUser hashes the password and inserts the row. A taken username
// surfaces as ErrDuplicate with the existing row untouched.
func (s *UserService) CreateUser(user models.User, password string) (models.User, error) {
	if strings.TrimSpace(user.Username) == "" || password == "" {
		return models.User{}, ErrMissingField
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}
	user.Password = string(hash)

	if err := s.DB.Create(&user).Error; err != nil {
		if isDuplicateErr(err) {
			return models.User{}, ErrDuplicate
		}
		return models.User{}, err
	}
	return user, nil
}

// UpdateUser replaces the editable columns. A blank password keeps the
// stored hash.
func (s *UserService) UpdateUser(id uint, user models.User, password string) error {
	updates := map[string]interface{}{
		"username":        user.Username,
		"user_name":       user.UserName,
		"email":           user.Email,
		"phone":           user.Phone,
		"is_admin":        user.IsAdmin,
		"admin_id":        user.AdminID,
		"manager_id":      user.ManagerID,
		"managing_floor":  user.ManagingFloor,
		"receptionist_id": user.ReceptionistID,
		"admin_type":      user.AdminType,
	}
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		updates["password"] = string(hash)
	}

	res := s.DB.Model(&models.User{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		if isDuplicateErr(res.Error) {
			return ErrDuplicate
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteUser hard-deletes an account. The logged-in admin cannot delete
// themselves.
func (s *UserService) DeleteUser(id, actorID uint) error {
	if id == actorID {
		return ErrSelfDelete
	}
	res := s.DB.Delete(&models.User{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Authenticate checks a username/password pair against admin accounts only.
func (s *UserService) Authenticate(username, password string) (models.User, error) {
	var user models.User
	err := s.DB.Where("username = ? AND is_admin = ?", strings.TrimSpace(username), true).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (s *UserService) ListUserPhones() ([]models.UserPhone, error) {
	var phones []models.UserPhone
	err := s.DB.Preload("User").Order("user_id").Find(&phones).Error
	return phones, err
}

// AddUserPhone inserts the (user, phone) pair, ignoring an existing one.
func (s *UserService) AddUserPhone(userID uint, phone string) error {
	phone = strings.TrimSpace(phone)
	if userID == 0 || phone == "" {
		return ErrMissingField
	}
	row := models.UserPhone{UserID: userID, Phone: phone}
	err := s.DB.FirstOrCreate(&row, models.UserPhone{UserID: userID, Phone: phone}).Error
	if isDuplicateErr(err) {
		return nil
	}
	return err
}

func (s *UserService) DeleteUserPhone(userID uint, phone string) error {
	if userID == 0 || strings.TrimSpace(phone) == "" {
		return ErrMissingField
	}
	return s.DB.Where("user_id = ? AND phone = ?", userID, phone).
		Delete(&models.UserPhone{}).Error
}
