package models

import "time"

// User is an account row. The hierarchy columns (AdminID, ManagerID,
// ManagingFloor, ReceptionistID, AdminType) are stored and displayed but
// never drive any behavior.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"uniqueIndex;size:150;not null" json:"username"`
	Password string `gorm:"size:255;not null" json:"-"` // bcrypt hash, never returned
	UserName string `gorm:"column:user_name;size:255" json:"user_name"`
	Email    string `gorm:"size:150" json:"email"`
	Phone    string `gorm:"size:50" json:"phone"`
	IsAdmin  bool   `gorm:"column:is_admin;default:false" json:"is_admin"`

	AdminID        *uint  `gorm:"column:admin_id" json:"admin_id,omitempty"`
	ManagerID      *uint  `gorm:"column:manager_id" json:"manager_id,omitempty"`
	ManagingFloor  *int   `gorm:"column:managing_floor" json:"managing_floor,omitempty"`
	ReceptionistID *uint  `gorm:"column:receptionist_id" json:"receptionist_id,omitempty"`
	AdminType      string `gorm:"column:admin_type;size:64" json:"admin_type,omitempty"`

	CreatedAt time.Time `json:"created_at"`

	Phones []UserPhone `gorm:"foreignKey:UserID" json:"phones,omitempty"`
}

func (User) TableName() string { return "users" }
