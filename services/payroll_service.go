package services

import (
	"fmt"
	"time"

	"payroll/constants"
	"payroll/dto"
	"payroll/errors"
	"payroll/models"
	"payroll/services/logger"

	"gorm.io/gorm"
)

// DefaultWorkingDays is the working-day basis used when a payroll record is
// synthesized from an employee's stored monthly salary.
const DefaultWorkingDays = 22

// ComputePayroll applies the canonical salary formula to the raw inputs and
// stamps the record with now. Overtime bonus is a component of the bonus
// total and is never added a second time.
//
// The frontend pre-sums each group and sends the total alongside the
// components; a supplied non-zero total is trusted as-is, and only an absent
// total is derived from the components. A supplied total_deductions already
// includes the leave deduction; a derived one has it added.
func ComputePayroll(input dto.PayrollInput, now time.Time) models.Payroll {
	leaveDeduction := input.NumberOfLeaves * input.DeductionPerLeave
	basicSalary := input.WorkingDays * input.RatePerDay

	totalAllowances := input.TotalAllowances
	if totalAllowances == 0 {
		totalAllowances = input.HouseRentAllowance + input.TransportAllowance +
			input.MobileAllowance + input.MedicalAllowance + input.FuelAllowance +
			input.VehicleRepairAllowance + input.OtherAllowance
	}

	overtimeBonus := input.OvertimeBonus
	if overtimeBonus == 0 {
		overtimeBonus = input.OvertimeRate * input.OvertimeHours
	}
	totalBonus := input.TotalBonus
	if totalBonus == 0 {
		totalBonus = input.AnnualBonus + input.PerformanceBonus + overtimeBonus
	}

	totalDeductions := input.TotalDeductions
	if totalDeductions == 0 {
		totalDeductions = input.IncomeTax + input.LoanDeduction +
			input.AdvanceDeduction + input.InsuranceDeduction + input.OtherDeductions +
			leaveDeduction
	}

	grossSalary := basicSalary + totalAllowances
	netSalary := grossSalary + totalBonus - totalDeductions

	return models.Payroll{
		EmpID:       input.EmpID,
		WorkingDays: input.WorkingDays,
		RatePerDay:  input.RatePerDay,
		BasicSalary: basicSalary,

		NumberOfLeaves:    input.NumberOfLeaves,
		DeductionPerLeave: input.DeductionPerLeave,
		LeaveDeduction:    leaveDeduction,

		HouseRentAllowance:     input.HouseRentAllowance,
		TransportAllowance:     input.TransportAllowance,
		MobileAllowance:        input.MobileAllowance,
		MedicalAllowance:       input.MedicalAllowance,
		FuelAllowance:          input.FuelAllowance,
		VehicleRepairAllowance: input.VehicleRepairAllowance,
		OtherAllowance:         input.OtherAllowance,
		TotalAllowances:        totalAllowances,

		AnnualBonus:      input.AnnualBonus,
		PerformanceBonus: input.PerformanceBonus,
		OvertimeRate:     input.OvertimeRate,
		OvertimeHours:    input.OvertimeHours,
		OvertimeBonus:    overtimeBonus,
		TotalBonus:       totalBonus,

		IncomeTax:          input.IncomeTax,
		LoanDeduction:      input.LoanDeduction,
		AdvanceDeduction:   input.AdvanceDeduction,
		InsuranceDeduction: input.InsuranceDeduction,
		OtherDeductions:    input.OtherDeductions,
		TotalDeductions:    totalDeductions,

		GrossSalary: grossSalary,
		NetSalary:   netSalary,
		TotalSalary: netSalary,

		PayrollDate:  now,
		PayrollMonth: int(now.Month()),
		PayrollYear:  now.Year(),
		Status:       constants.PayrollStatusDraft,
	}
}

// DeriveSalaryBasis maps an employee's stored monthly salary to the
// working-day breakdown bulk generation feeds into ComputePayroll.
func DeriveSalaryBasis(salary float64) (workingDays, ratePerDay float64) {
	return DefaultWorkingDays, salary / DefaultWorkingDays
}

type PayrollService struct {
	db     *gorm.DB
	logger logger.Logger
}

type PayrollServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewPayrollService(opts PayrollServiceOptions) *PayrollService {
	return &PayrollService{
		db:     opts.DB,
		logger: opts.Logger,
	}
}

// GenerateForPeriod creates one payroll record per employee for the period,
// skipping employees that already have one. Per-employee failures are logged
// and reported but never abort the batch.
func (s *PayrollService) GenerateForPeriod(month, year int) (dto.GeneratePayrollResult, error) {
	result := dto.GeneratePayrollResult{
		Skipped: []uint{},
		Failed:  []uint{},
	}

	var employees []models.Employee
	if err := s.db.Order("emp_id").Find(&employees).Error; err != nil {
		return result, errors.NewAppError(errors.ErrCodeDBError, "Could not load employees", err)
	}

	var existingIDs []uint
	if err := s.db.Model(&models.Payroll{}).
		Where("payroll_month = ? AND payroll_year = ?", month, year).
		Pluck("emp_id", &existingIDs).Error; err != nil {
		return result, errors.NewAppError(errors.ErrCodeDBError, "Could not load existing payroll records", err)
	}
	existing := make(map[uint]bool, len(existingIDs))
	for _, id := range existingIDs {
		existing[id] = true
	}

	now := time.Now()
	for _, emp := range employees {
		if existing[emp.EmpID] {
			result.Skipped = append(result.Skipped, emp.EmpID)
			continue
		}

		workingDays, ratePerDay := DeriveSalaryBasis(emp.Salary)
		record := ComputePayroll(dto.PayrollInput{
			EmpID:       emp.EmpID,
			WorkingDays: workingDays,
			RatePerDay:  ratePerDay,
		}, now)
		record.PayrollMonth = month
		record.PayrollYear = year

		if err := s.db.Create(&record).Error; err != nil {
			if IsDuplicateErr(err) {
				// Lost the race against a concurrent generation run.
				s.logger.Info("payroll for employee %d already generated for %d-%02d", emp.EmpID, year, month)
				result.Skipped = append(result.Skipped, emp.EmpID)
				continue
			}
			s.logger.Error("payroll generation failed for employee %d: %v", emp.EmpID, err)
			result.Failed = append(result.Failed, emp.EmpID)
			continue
		}
		result.CreatedCount++
	}

	result.Message = fmt.Sprintf("Generated %d payroll record(s) for %d-%02d", result.CreatedCount, year, month)
	return result, nil
}
