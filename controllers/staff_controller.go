package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"hotel-booking/models"
	"hotel-booking/services"
	"hotel-booking/utils"
)

// StaffController manages employees and their hired_as role history.
type StaffController struct {
	Staff *services.StaffService
}

func NewStaffController(staff *services.StaffService) *StaffController {
	return &StaffController{Staff: staff}
}

func (sc *StaffController) EmployeeList(c *gin.Context) {
	emps, err := sc.Staff.ListEmployees()
	if err != nil {
		log.Error().Err(err).Msg("failed to list employees")
		c.String(http.StatusInternalServerError, "server error")
		return
	}
	render(c, "admin_employees.html", gin.H{"Title": "Employees", "Employees": emps})
}

func (sc *StaffController) EmployeeCreateForm(c *gin.Context) {
	render(c, "edit_employee.html", gin.H{"Title": "Create Employee"})
}

func employeeFromForm(c *gin.Context) models.Employee {
	return models.Employee{
		Name:     strings.TrimSpace(c.PostForm("name")),
		Phone:    strings.TrimSpace(c.PostForm("phone")),
		Position: strings.TrimSpace(c.PostForm("position")),
		HireDate: strings.TrimSpace(c.PostForm("hire_date")),
		Salary:   utils.FormFloat(c, "salary"),
	}
}

func (sc *StaffController) EmployeeCreate(c *gin.Context) {
	emp := employeeFromForm(c)
	if _, err := sc.Staff.CreateEmployee(emp); err != nil {
		if errors.Is(err, services.ErrMissingField) {
			utils.Flash(c, "danger", "Name is required")
			render(c, "edit_employee.html", gin.H{"Title": "Create Employee", "Employee": emp})
			return
		}
		log.Error().Err(err).Msg("failed to create employee")
		c.String(http.StatusInternalServerError, "server error")
		return
	}
	utils.Flash(c, "success", "Employee created")
	c.Redirect(http.StatusFound, "/admin/employees")
}

func (sc *StaffController) EmployeeEditForm(c *gin.Context) {
	emp, err := sc.Staff.GetEmployee(utils.ParamUint(c, "id"))
	if err != nil {
		utils.Flash(c, "danger", "Employee not found")
		c.Redirect(http.StatusFound, "/admin/employees")
		return
	}
	render(c, "edit_employee.html", gin.H{"Title": "Edit Employee", "Employee": emp})
}

func (sc *StaffController) EmployeeEdit(c *gin.Context) {
	err := sc.Staff.UpdateEmployee(utils.ParamUint(c, "id"), employeeFromForm(c))
	switch {
	case err == nil:
		utils.Flash(c, "success", "Employee updated")
	case errors.Is(err, services.ErrNotFound):
		utils.Flash(c, "danger", "Employee not found")
	default:
		log.Error().Err(err).Msg("failed to update employee")
		c.String(http.StatusInternalServerError, "server error")
		return
	}
	c.Redirect(http.StatusFound, "/admin/employees")
}

func (sc *StaffController) EmployeeDelete(c *gin.Context) {
	err := sc.Staff.DeleteEmployee(utils.ParamUint(c, "id"))
	switch {
	case err == nil:
		utils.Flash(c, "success", "Employee deleted")
	case errors.Is(err, services.ErrNotFound):
		utils.Flash(c, "danger", "Employee not found")
	default:
		log.Error().Err(err).Msg("failed to delete employee")
		c.String(http.StatusInternalServerError, "server error")
		return
	}
	c.Redirect(http.StatusFound, "/admin/employees")
}

func (sc *StaffController) HiredAsList(c *gin.Context) {
	rows, err := sc.Staff.ListHiredAs()
	if err != nil {
		log.Error().Err(err).Msg("failed to list hired-as records")
		c.String(http.StatusInternalServerError, "server error")
		return
	}
	render(c, "admin_hired_as.html", gin.H{"Title": "Hired As", "Records": rows})
}

func (sc *StaffController) HiredAsCreateForm(c *gin.Context) {
	emps, err := sc.Staff.ListEmployees()
	if err != nil {
		log.Error().Err(err).Msg("failed to list employees")
		c.String(http.StatusInternalServerError, "server error")
		return
	}
	render(c, "edit_hired_as.html", gin.H{"Title": "Create Hired As", "Employees": emps})
}

func hiredAsFromForm(c *gin.Context) models.HiredAs {
	rec := models.HiredAs{
		Role:      strings.TrimSpace(c.PostForm("role")),
		StartDate: strings.TrimSpace(c.PostForm("start_date")),
		EndDate:   strings.TrimSpace(c.PostForm("end_date")),
	}
	if id := utils.FormUint(c, "employee_id"); id != nil {
		rec.EmployeeID = *id
	}
	return rec
}

func (sc *StaffController) HiredAsCreate(c *gin.Context) {
	if _, err := sc.Staff.CreateHiredAs(hiredAsFromForm(c)); err != nil {
		if errors.Is(err, services.ErrMissingField) {
			utils.Flash(c, "danger", "Employee is required")
			c.Redirect(http.StatusFound, "/admin/hired_as/create")
			return
		}
		log.Error().Err(err).Msg("failed to create hired-as record")
		c.String(http.StatusInternalServerError, "server error")
		return
	}
	utils.Flash(c, "success", "Hired-as record created")
	c.Redirect(http.StatusFound, "/admin/hired_as")
}

func (sc *StaffController) HiredAsEditForm(c *gin.Context) {
	rec, err := sc.Staff.GetHiredAs(utils.ParamUint(c, "id"))
	if err != nil {
		utils.Flash(c, "danger", "Record not found")
		c.Redirect(http.StatusFound, "/admin/hired_as")
		return
	}
	emps, err := sc.Staff.ListEmployees()
	if err != nil {
		log.Error().Err(err).Msg("failed to list employees")
		c.String(http.StatusInternalServerError, "server error")
		return
	}
	render(c, "edit_hired_as.html", gin.H{"Title": "Edit Hired As", "Record": rec, "Employees": emps})
}

func (sc *StaffController) HiredAsEdit(c *gin.Context) {
	err := sc.Staff.UpdateHiredAs(utils.ParamUint(c, "id"), hiredAsFromForm(c))
	switch {
	case err == nil:
		utils.Flash(c, "success", "Hired-as record updated")
	case errors.Is(err, services.ErrNotFound):
		utils.Flash(c, "danger", "Record not found")
	default:
		log.Error().Err(err).Msg("failed to update hired-as record")
		c.String(http.StatusInternalServerError, "server error")
		return
	}
	c.Redirect(http.StatusFound, "/admin/hired_as")
}

func (sc *StaffController) HiredAsDelete(c *gin.Context) {
	err := sc.Staff.DeleteHiredAs(utils.ParamUint(c, "id"))
	switch {
	case err == nil:
		utils.Flash(c, "success", "Hired-as record deleted")
	case errors.Is(err, services.ErrNotFound):
		utils.Flash(c, "danger", "Record not found")
	default:
		log.Error().Err(err).Msg("failed to delete hired-as record")
		c.String(http.StatusInternalServerError, "server error")
		return
	}
	c.Redirect(http.StatusFound, "/admin/hired_as")
}
