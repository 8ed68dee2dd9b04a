package models

// HiredAs records a role assignment for an employee over a date range.
type HiredAs struct {
	ID         uint   `gorm:"primaryKey;column:hired_as_id" json:"hired_as_id"`
	EmployeeID uint   `gorm:"column:employee_id;index;not null" json:"employee_id"`
	Role       string `gorm:"size:150" json:"role"`
	StartDate  string `gorm:"column:start_date;size:32" json:"start_date"`
	EndDate    string `gorm:"column:end_date;size:32" json:"end_date"`

	Employee Employee `gorm:"foreignKey:EmployeeID;references:ID" json:"employee,omitempty"`
}

func (HiredAs) TableName() string { return "hired_as" }
