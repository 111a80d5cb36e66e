package validator

import (
	"testing"

	"payroll/dto"
	"payroll/errors"

	"github.com/stretchr/testify/assert"
)

func TestValidateRegister(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    dto.RegisterInput
		wantCode errors.ErrorCode
	}{
		{
			name:  "valid",
			input: dto.RegisterInput{Username: "jdoe", Password: "secret1", Email: "jdoe@example.com"},
		},
		{
			name:  "valid with role",
			input: dto.RegisterInput{Username: "boss", Password: "secret1", Email: "boss@example.com", Role: "admin"},
		},
		{
			name:     "missing username",
			input:    dto.RegisterInput{Password: "secret1", Email: "jdoe@example.com"},
			wantCode: errors.ErrCodeRequiredField,
		},
		{
			name:     "missing email",
			input:    dto.RegisterInput{Username: "jdoe", Password: "secret1"},
			wantCode: errors.ErrCodeRequiredField,
		},
		{
			name:     "bad email",
			input:    dto.RegisterInput{Username: "jdoe", Password: "secret1", Email: "not-an-email"},
			wantCode: errors.ErrCodeInvalidFormat,
		},
		{
			name:     "short password",
			input:    dto.RegisterInput{Username: "jdoe", Password: "12345", Email: "jdoe@example.com"},
			wantCode: errors.ErrCodeValidation,
		},
		{
			name:     "unknown role",
			input:    dto.RegisterInput{Username: "jdoe", Password: "secret1", Email: "jdoe@example.com", Role: "superuser"},
			wantCode: errors.ErrCodeInvalidRole,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRegister(&tt.input)
			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			appErr := errors.GetAppError(err)
			if appErr == nil {
				t.Fatalf("expected AppError, got %v", err)
			}
			assert.Equal(t, tt.wantCode, appErr.Code)
		})
	}
}

func TestValidateEmployee(t *testing.T) {
	t.Parallel()

	age := 30
	badAge := 5

	assert.NoError(t, ValidateEmployee(&dto.EmployeeInput{Name: "Alina Khan", Age: &age, Salary: 50000}))
	assert.Error(t, ValidateEmployee(&dto.EmployeeInput{}))
	assert.Error(t, ValidateEmployee(&dto.EmployeeInput{Name: "X", Email: "bad"}))
	assert.Error(t, ValidateEmployee(&dto.EmployeeInput{Name: "X", Age: &badAge}))
	assert.Error(t, ValidateEmployee(&dto.EmployeeInput{Name: "X", Salary: -1}))
}

func TestValidatePayrollInput(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidatePayrollInput(&dto.PayrollInput{EmpID: 1, WorkingDays: 22, RatePerDay: 1000}))
	assert.Error(t, ValidatePayrollInput(&dto.PayrollInput{WorkingDays: 22}))
	assert.Error(t, ValidatePayrollInput(&dto.PayrollInput{EmpID: 1, RatePerDay: -5}))

	// Itemised fields are checked too, not just the group totals.
	assert.Error(t, ValidatePayrollInput(&dto.PayrollInput{EmpID: 1, HouseRentAllowance: -5000}))
	assert.Error(t, ValidatePayrollInput(&dto.PayrollInput{EmpID: 1, AnnualBonus: -1}))
	assert.Error(t, ValidatePayrollInput(&dto.PayrollInput{EmpID: 1, IncomeTax: -1}))
}

func TestValidatePayrollUpdate(t *testing.T) {
	t.Parallel()

	amount := 500.0
	negative := -500.0
	draft := "draft"
	paid := "paid"
	bogus := "approved"

	assert.NoError(t, ValidatePayrollUpdate(&dto.PayrollUpdateInput{}))
	assert.NoError(t, ValidatePayrollUpdate(&dto.PayrollUpdateInput{MedicalAllowance: &amount, Status: &draft}))
	assert.NoError(t, ValidatePayrollUpdate(&dto.PayrollUpdateInput{Status: &paid}))
	assert.Error(t, ValidatePayrollUpdate(&dto.PayrollUpdateInput{LoanDeduction: &negative}))
	assert.Error(t, ValidatePayrollUpdate(&dto.PayrollUpdateInput{Status: &bogus}))
}
