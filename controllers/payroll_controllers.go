package controllers

import (
	"errors"
	"strconv"
	"time"

	"payroll/config"
	"payroll/dto"
	"payroll/models"
	"payroll/response"
	"payroll/services"
	"payroll/services/logger"
	"payroll/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func GetPayrolls(c *gin.Context) {
	tx := config.DB.Model(&models.Payroll{})

	if empID := c.Query("emp_id"); empID != "" {
		tx = tx.Where("emp_id = ?", empID)
	}
	if year := c.Query("year"); year != "" {
		tx = tx.Where("payroll_year = ?", year)
	}
	if month := c.Query("month"); month != "" {
		tx = tx.Where("payroll_month = ?", month)
	}

	var records []models.Payroll
	if err := tx.Order("payroll_date DESC").Find(&records).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, attachEmployeeNames(records))
}

func CreatePayroll(c *gin.Context) {
	var input dto.PayrollInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if err := validator.ValidatePayrollInput(&input); err != nil {
		respondError(c, err)
		return
	}

	record := services.ComputePayroll(input, time.Now())

	if err := config.DB.Create(&record).Error; err != nil {
		if services.IsDuplicateErr(err) {
			response.BadRequest(c, "Payroll record already exists for this period")
			return
		}
		response.ServerError(c)
		return
	}

	services.InvalidatePayrollCaches()
	response.Created(c, record)
}

func UpdatePayroll(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.ValidationError(c, "Invalid payroll id")
		return
	}

	var record models.Payroll
	if err := config.DB.First(&record, "payroll_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "Payroll record not found")
			return
		}
		response.ServerError(c)
		return
	}

	var input dto.PayrollUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if err := validator.ValidatePayrollUpdate(&input); err != nil {
		respondError(c, err)
		return
	}

	applyPayrollUpdate(&record, &input)

	if err := config.DB.Save(&record).Error; err != nil {
		response.ServerError(c)
		return
	}

	services.InvalidatePayrollCaches()
	response.Success(c, record)
}

func DeletePayroll(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.ValidationError(c, "Invalid payroll id")
		return
	}

	result := config.DB.Delete(&models.Payroll{}, "payroll_id = ?", id)
	if result.Error != nil {
		response.ServerError(c)
		return
	}
	if result.RowsAffected == 0 {
		response.NotFound(c, "Payroll record not found")
		return
	}

	services.InvalidatePayrollCaches()
	response.Message(c, "Payroll record deleted successfully")
}

func GeneratePayroll(c *gin.Context) {
	var input dto.GeneratePayrollInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ValidationError(c, "Month and year are required")
		return
	}

	payrollService := services.NewPayrollService(services.PayrollServiceOptions{
		DB:     config.DB,
		Logger: logger.NewDefaultLogger(logger.InfoLevel),
	})

	result, err := payrollService.GenerateForPeriod(input.Month, input.Year)
	if err != nil {
		respondError(c, err)
		return
	}

	services.InvalidatePayrollCaches()
	response.Success(c, result)
}

func GetPayrollSummary(c *gin.Context) {
	summaries, err := services.GetMonthlySummary()
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, summaries)
}

// attachEmployeeNames decorates payroll rows with the employee's current
// name; rows whose employee was deleted keep an empty name.
func attachEmployeeNames(records []models.Payroll) []dto.PayrollRecord {
	empIDs := make([]uint, 0, len(records))
	seen := make(map[uint]bool)
	for _, rec := range records {
		if !seen[rec.EmpID] {
			seen[rec.EmpID] = true
			empIDs = append(empIDs, rec.EmpID)
		}
	}

	names := make(map[uint]string, len(empIDs))
	if len(empIDs) > 0 {
		var employees []models.Employee
		if err := config.DB.Where("emp_id IN ?", empIDs).Find(&employees).Error; err == nil {
			for _, emp := range employees {
				names[emp.EmpID] = emp.Name
			}
		}
	}

	decorated := make([]dto.PayrollRecord, 0, len(records))
	for _, rec := range records {
		decorated = append(decorated, dto.PayrollRecord{
			Payroll:      rec,
			EmployeeName: names[rec.EmpID],
		})
	}
	return decorated
}

// applyPayrollUpdate merges the provided fields into the record's raw inputs
// and recomputes every derived amount from the result. The id, period and
// payroll date are never touched by an update.
//
// A supplied group total wins as-is. When the update touches a group's
// components but not its total, the stale stored total is discarded so the
// recompute derives the group from its components.
func applyPayrollUpdate(record *models.Payroll, input *dto.PayrollUpdateInput) {
	in := dto.PayrollInput{
		EmpID:       record.EmpID,
		WorkingDays: record.WorkingDays,
		RatePerDay:  record.RatePerDay,

		NumberOfLeaves:    record.NumberOfLeaves,
		DeductionPerLeave: record.DeductionPerLeave,

		HouseRentAllowance:     record.HouseRentAllowance,
		TransportAllowance:     record.TransportAllowance,
		MobileAllowance:        record.MobileAllowance,
		MedicalAllowance:       record.MedicalAllowance,
		FuelAllowance:          record.FuelAllowance,
		VehicleRepairAllowance: record.VehicleRepairAllowance,
		OtherAllowance:         record.OtherAllowance,
		TotalAllowances:        record.TotalAllowances,

		AnnualBonus:      record.AnnualBonus,
		PerformanceBonus: record.PerformanceBonus,
		OvertimeRate:     record.OvertimeRate,
		OvertimeHours:    record.OvertimeHours,
		OvertimeBonus:    record.OvertimeBonus,
		TotalBonus:       record.TotalBonus,

		IncomeTax:          record.IncomeTax,
		LoanDeduction:      record.LoanDeduction,
		AdvanceDeduction:   record.AdvanceDeduction,
		InsuranceDeduction: record.InsuranceDeduction,
		OtherDeductions:    record.OtherDeductions,
		TotalDeductions:    record.TotalDeductions,
	}

	touched := func(fields ...*float64) bool {
		for _, f := range fields {
			if f != nil {
				return true
			}
		}
		return false
	}

	if input.TotalAllowances == nil && touched(
		input.HouseRentAllowance, input.TransportAllowance, input.MobileAllowance,
		input.MedicalAllowance, input.FuelAllowance, input.VehicleRepairAllowance,
		input.OtherAllowance) {
		in.TotalAllowances = 0
	}
	if input.OvertimeBonus == nil && touched(input.OvertimeRate, input.OvertimeHours) {
		in.OvertimeBonus = 0
	}
	if input.TotalBonus == nil && touched(
		input.AnnualBonus, input.PerformanceBonus,
		input.OvertimeRate, input.OvertimeHours, input.OvertimeBonus) {
		in.TotalBonus = 0
	}
	if input.TotalDeductions == nil && touched(
		input.IncomeTax, input.LoanDeduction, input.AdvanceDeduction,
		input.InsuranceDeduction, input.OtherDeductions,
		input.NumberOfLeaves, input.DeductionPerLeave) {
		in.TotalDeductions = 0
	}

	setF := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}

	setF(&in.WorkingDays, input.WorkingDays)
	setF(&in.RatePerDay, input.RatePerDay)
	setF(&in.NumberOfLeaves, input.NumberOfLeaves)
	setF(&in.DeductionPerLeave, input.DeductionPerLeave)

	setF(&in.HouseRentAllowance, input.HouseRentAllowance)
	setF(&in.TransportAllowance, input.TransportAllowance)
	setF(&in.MobileAllowance, input.MobileAllowance)
	setF(&in.MedicalAllowance, input.MedicalAllowance)
	setF(&in.FuelAllowance, input.FuelAllowance)
	setF(&in.VehicleRepairAllowance, input.VehicleRepairAllowance)
	setF(&in.OtherAllowance, input.OtherAllowance)
	setF(&in.TotalAllowances, input.TotalAllowances)

	setF(&in.AnnualBonus, input.AnnualBonus)
	setF(&in.PerformanceBonus, input.PerformanceBonus)
	setF(&in.OvertimeRate, input.OvertimeRate)
	setF(&in.OvertimeHours, input.OvertimeHours)
	setF(&in.OvertimeBonus, input.OvertimeBonus)
	setF(&in.TotalBonus, input.TotalBonus)

	setF(&in.IncomeTax, input.IncomeTax)
	setF(&in.LoanDeduction, input.LoanDeduction)
	setF(&in.AdvanceDeduction, input.AdvanceDeduction)
	setF(&in.InsuranceDeduction, input.InsuranceDeduction)
	setF(&in.OtherDeductions, input.OtherDeductions)
	setF(&in.TotalDeductions, input.TotalDeductions)

	recomputed := services.ComputePayroll(in, record.PayrollDate)

	payrollID := record.PayrollID
	month, year := record.PayrollMonth, record.PayrollYear
	date := record.PayrollDate
	status := record.Status
	if input.Status != nil {
		status = *input.Status
	}
	createdAt := record.CreatedAt

	*record = recomputed
	record.PayrollID = payrollID
	record.PayrollMonth = month
	record.PayrollYear = year
	record.PayrollDate = date
	record.Status = status
	record.CreatedAt = createdAt
}
