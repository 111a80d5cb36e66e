package validator

import (
	"regexp"

	"payroll/constants"
	"payroll/dto"
	"payroll/errors"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func isValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidateRegister checks the registration payload before it reaches storage.
func ValidateRegister(input *dto.RegisterInput) error {
	if input.Username == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Username is required", nil)
	}

	if input.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email is required", nil)
	}

	if !isValidEmail(input.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Email is not valid", nil)
	}

	if input.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Password is required", nil)
	}

	if len(input.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "Password must be at least 6 characters", nil)
	}

	if input.Role != "" && input.Role != constants.RoleAdmin && input.Role != constants.RoleEmployee {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "Role must be admin or employee", nil)
	}

	return nil
}

// ValidateEmployee checks an employee create payload.
func ValidateEmployee(input *dto.EmployeeInput) error {
	if input.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Name is required", nil)
	}

	if input.Email != "" && !isValidEmail(input.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Email is not valid", nil)
	}

	if input.Age != nil && (*input.Age < 14 || *input.Age > 100) {
		return errors.NewAppError(errors.ErrCodeValidation, "Age is out of range", nil)
	}

	if input.Salary < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Salary cannot be negative", nil)
	}

	return nil
}

// ValidatePayrollInput checks a payroll create payload.
func ValidatePayrollInput(input *dto.PayrollInput) error {
	if input.EmpID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Employee id is required", nil)
	}

	for _, v := range []float64{
		input.WorkingDays, input.RatePerDay,
		input.NumberOfLeaves, input.DeductionPerLeave,
		input.HouseRentAllowance, input.TransportAllowance, input.MobileAllowance,
		input.MedicalAllowance, input.FuelAllowance, input.VehicleRepairAllowance,
		input.OtherAllowance, input.TotalAllowances,
		input.AnnualBonus, input.PerformanceBonus,
		input.OvertimeRate, input.OvertimeHours, input.OvertimeBonus, input.TotalBonus,
		input.IncomeTax, input.LoanDeduction, input.AdvanceDeduction,
		input.InsuranceDeduction, input.OtherDeductions, input.TotalDeductions,
	} {
		if v < 0 {
			return errors.NewAppError(errors.ErrCodeValidation, "Payroll amounts cannot be negative", nil)
		}
	}

	return nil
}

// ValidatePayrollUpdate checks a payroll partial-update payload.
func ValidatePayrollUpdate(input *dto.PayrollUpdateInput) error {
	for _, v := range []*float64{
		input.WorkingDays, input.RatePerDay,
		input.NumberOfLeaves, input.DeductionPerLeave,
		input.HouseRentAllowance, input.TransportAllowance, input.MobileAllowance,
		input.MedicalAllowance, input.FuelAllowance, input.VehicleRepairAllowance,
		input.OtherAllowance, input.TotalAllowances,
		input.AnnualBonus, input.PerformanceBonus,
		input.OvertimeRate, input.OvertimeHours, input.OvertimeBonus, input.TotalBonus,
		input.IncomeTax, input.LoanDeduction, input.AdvanceDeduction,
		input.InsuranceDeduction, input.OtherDeductions, input.TotalDeductions,
	} {
		if v != nil && *v < 0 {
			return errors.NewAppError(errors.ErrCodeValidation, "Payroll amounts cannot be negative", nil)
		}
	}

	if input.Status != nil {
		switch *input.Status {
		case constants.PayrollStatusDraft, constants.PayrollStatusFinal, constants.PayrollStatusPaid:
		default:
			return errors.NewAppError(errors.ErrCodeValidation, "Status must be draft, final, or paid", nil)
		}
	}

	return nil
}
