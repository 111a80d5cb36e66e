package controllers

import (
	"errors"
	"strconv"

	"payroll/config"
	"payroll/dto"
	"payroll/models"
	"payroll/response"
	"payroll/services"
	"payroll/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func GetEmployees(c *gin.Context) {
	search := c.Query("search")

	if search == "" {
		var cached []models.Employee
		if err := services.GetFromRedis(config.Ctx, config.RedisClient, services.CacheKeyEmployeeList, &cached); err == nil && len(cached) > 0 {
			response.Success(c, cached)
			return
		}
	}

	var employees []models.Employee
	if err := config.DB.Order("emp_id").Find(&employees).Error; err != nil {
		response.ServerError(c)
		return
	}

	if search != "" {
		response.Success(c, services.SearchEmployees(search, employees))
		return
	}

	_ = services.SetToRedis(config.Ctx, config.RedisClient, services.CacheKeyEmployeeList, employees, services.CacheTTL)
	response.Success(c, employees)
}

func GetEmployeeByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.ValidationError(c, "Invalid employee id")
		return
	}

	var employee models.Employee
	if err := config.DB.First(&employee, "emp_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "Employee not found")
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, employee)
}

func CreateEmployee(c *gin.Context) {
	var input dto.EmployeeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if err := validator.ValidateEmployee(&input); err != nil {
		respondError(c, err)
		return
	}

	employee := models.Employee{
		Name:           input.Name,
		Age:            input.Age,
		Organization:   input.Organization,
		Designation:    input.Designation,
		Email:          input.Email,
		Contact:        input.Contact,
		Department:     input.Department,
		Salary:         input.Salary,
		JoinDate:       input.JoinDate,
		EmploymentType: input.EmploymentType,
		Qualification:  input.Qualification,
	}

	if err := config.DB.Create(&employee).Error; err != nil {
		response.ServerError(c)
		return
	}

	services.InvalidatePayrollCaches()
	response.Created(c, employee)
}

func UpdateEmployee(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.ValidationError(c, "Invalid employee id")
		return
	}

	var employee models.Employee
	if err := config.DB.First(&employee, "emp_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "Employee not found")
			return
		}
		response.ServerError(c)
		return
	}

	var input dto.EmployeeUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	applyEmployeeUpdate(&employee, &input)

	if err := config.DB.Save(&employee).Error; err != nil {
		response.ServerError(c)
		return
	}

	services.InvalidatePayrollCaches()
	response.Success(c, employee)
}

func DeleteEmployee(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.ValidationError(c, "Invalid employee id")
		return
	}

	// Payroll rows for this employee are intentionally left in place; the
	// payroll listing returns them with an empty employee name.
	result := config.DB.Delete(&models.Employee{}, "emp_id = ?", id)
	if result.Error != nil {
		response.ServerError(c)
		return
	}
	if result.RowsAffected == 0 {
		response.NotFound(c, "Employee not found")
		return
	}

	services.InvalidatePayrollCaches()
	response.Message(c, "Employee deleted successfully")
}

func applyEmployeeUpdate(employee *models.Employee, input *dto.EmployeeUpdateInput) {
	if input.Name != nil {
		employee.Name = *input.Name
	}
	if input.Age != nil {
		employee.Age = input.Age
	}
	if input.Organization != nil {
		employee.Organization = *input.Organization
	}
	if input.Designation != nil {
		employee.Designation = *input.Designation
	}
	if input.Email != nil {
		employee.Email = *input.Email
	}
	if input.Contact != nil {
		employee.Contact = *input.Contact
	}
	if input.Department != nil {
		employee.Department = *input.Department
	}
	if input.Salary != nil {
		employee.Salary = *input.Salary
	}
	if input.JoinDate != nil {
		employee.JoinDate = *input.JoinDate
	}
	if input.EmploymentType != nil {
		employee.EmploymentType = *input.EmploymentType
	}
	if input.Qualification != nil {
		employee.Qualification = *input.Qualification
	}
}
