package models

type Employee struct {
	ID       uint     `gorm:"primaryKey;column:employee_id" json:"employee_id"`
	Name     string   `gorm:"size:255;not null" json:"name"`
	Phone    string   `gorm:"size:50" json:"phone"`
	Position string   `gorm:"size:150" json:"position"`
	HireDate string   `gorm:"column:hire_date;size:32" json:"hire_date"`
	Salary   *float64 `gorm:"column:salary" json:"salary,omitempty"`
}

func (Employee) TableName() string { return "employees" }
