package models

// UserPhone is an extra phone number for a user, keyed by (user_id, phone).
type UserPhone struct {
	UserID uint   `gorm:"primaryKey;column:user_id" json:"user_id"`
	Phone  string `gorm:"primaryKey;size:50" json:"phone"`

	User User `gorm:"foreignKey:UserID;references:ID" json:"user,omitempty"`
}

func (UserPhone) TableName() string { return "user_phones" }
