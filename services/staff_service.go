package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"hotel-booking/models"
)

// StaffService manages the employee roster and hired_as role history.
type StaffService struct {
	DB *gorm.DB
}

func NewStaffService(db *gorm.DB) *StaffService {
	return &StaffService{DB: db}
}

func (s *StaffService) ListEmployees() ([]models.Employee, error) {
	var emps []models.Employee
	err := s.DB.Find(&emps).Error
	return emps, err
}

func (s *StaffService) GetEmployee(id uint) (models.Employee, error) {
	var emp models.Employee
	err := s.DB.First(&emp, "employee_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return emp, ErrNotFound
	}
	return emp, err
}

func (s *StaffService) CreateEmployee(emp models.Employee) (models.Employee, error) {
	if strings.TrimSpace(emp.Name) == "" {
		return models.Employee{}, ErrMissingField
	}
	if err := s.DB.Create(&emp).Error; err != nil {
		return models.Employee{}, err
	}
	return emp, nil
}

func (s *StaffService) UpdateEmployee(id uint, emp models.Employee) error {
	res := s.DB.Model(&models.Employee{}).Where("employee_id = ?", id).
		Updates(map[string]interface{}{
			"name":      emp.Name,
			"phone":     emp.Phone,
			"position":  emp.Position,
			"hire_date": emp.HireDate,
			"salary":    emp.Salary,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *StaffService) DeleteEmployee(id uint) error {
	res := s.DB.Where("employee_id = ?", id).Delete(&models.Employee{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *StaffService) ListHiredAs() ([]models.HiredAs, error) {
	var rows []models.HiredAs
	err := s.DB.Preload("Employee").Order("start_date DESC").Find(&rows).Error
	return rows, err
}

func (s *StaffService) GetHiredAs(id uint) (models.HiredAs, error) {
	var rec models.HiredAs
	err := s.DB.First(&rec, "hired_as_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return rec, ErrNotFound
	}
	return rec, err
}

func (s *StaffService) CreateHiredAs(rec models.HiredAs) (models.HiredAs, error) {
	if rec.EmployeeID == 0 {
		return models.HiredAs{}, ErrMissingField
	}
	if err := s.DB.Create(&rec).Error; err != nil {
		return models.HiredAs{}, err
	}
	return rec, nil
}

func (s *StaffService) UpdateHiredAs(id uint, rec models.HiredAs) error {
	res := s.DB.Model(&models.HiredAs{}).Where("hired_as_id = ?", id).
		Updates(map[string]interface{}{
			"employee_id": rec.EmployeeID,
			"role":        rec.Role,
			"start_date":  rec.StartDate,
			"end_date":    rec.EndDate,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *StaffService) DeleteHiredAs(id uint) error {
	res := s.DB.Where("hired_as_id = ?", id).Delete(&models.HiredAs{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
