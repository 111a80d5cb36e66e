package dto

import "payroll/models"

// PayrollInput carries the payroll form fields the frontend submits: the
// itemised components plus the pre-summed group totals. A supplied non-zero
// total is trusted as-is; only when a group's total is absent is it derived
// from the components. total_deductions, when supplied, already includes the
// leave deduction.
type PayrollInput struct {
	EmpID       uint    `json:"emp_id" binding:"required"`
	WorkingDays float64 `json:"working_days"`
	RatePerDay  float64 `json:"rate_per_day"`

	NumberOfLeaves    float64 `json:"number_of_leaves"`
	DeductionPerLeave float64 `json:"deduction_per_leave"`

	HouseRentAllowance     float64 `json:"house_rent_allowance"`
	TransportAllowance     float64 `json:"transport_allowance"`
	MobileAllowance        float64 `json:"mobile_allowance"`
	MedicalAllowance       float64 `json:"medical_allowance"`
	FuelAllowance          float64 `json:"fuel_allowance"`
	VehicleRepairAllowance float64 `json:"vehicle_repair_allowance"`
	OtherAllowance         float64 `json:"other_allowance"`
	TotalAllowances        float64 `json:"total_allowances"`

	AnnualBonus      float64 `json:"annual_bonus"`
	PerformanceBonus float64 `json:"performance_bonus"`
	OvertimeRate     float64 `json:"overtime_rate"`
	OvertimeHours    float64 `json:"overtime_hours"`
	OvertimeBonus    float64 `json:"overtime_bonus"`
	TotalBonus       float64 `json:"total_bonus"`

	IncomeTax          float64 `json:"income_tax"`
	LoanDeduction      float64 `json:"loan_deduction"`
	AdvanceDeduction   float64 `json:"advance_deduction"`
	InsuranceDeduction float64 `json:"insurance_deduction"`
	OtherDeductions    float64 `json:"other_deductions"`
	TotalDeductions    float64 `json:"total_deductions"`
}

// PayrollUpdateInput carries pointers so absent fields keep their stored value.
// Derived fields (basic, gross, net, totals) are recomputed after the merge.
type PayrollUpdateInput struct {
	WorkingDays *float64 `json:"working_days"`
	RatePerDay  *float64 `json:"rate_per_day"`

	NumberOfLeaves    *float64 `json:"number_of_leaves"`
	DeductionPerLeave *float64 `json:"deduction_per_leave"`

	HouseRentAllowance     *float64 `json:"house_rent_allowance"`
	TransportAllowance     *float64 `json:"transport_allowance"`
	MobileAllowance        *float64 `json:"mobile_allowance"`
	MedicalAllowance       *float64 `json:"medical_allowance"`
	FuelAllowance          *float64 `json:"fuel_allowance"`
	VehicleRepairAllowance *float64 `json:"vehicle_repair_allowance"`
	OtherAllowance         *float64 `json:"other_allowance"`
	TotalAllowances        *float64 `json:"total_allowances"`

	AnnualBonus      *float64 `json:"annual_bonus"`
	PerformanceBonus *float64 `json:"performance_bonus"`
	OvertimeRate     *float64 `json:"overtime_rate"`
	OvertimeHours    *float64 `json:"overtime_hours"`
	OvertimeBonus    *float64 `json:"overtime_bonus"`
	TotalBonus       *float64 `json:"total_bonus"`

	IncomeTax          *float64 `json:"income_tax"`
	LoanDeduction      *float64 `json:"loan_deduction"`
	AdvanceDeduction   *float64 `json:"advance_deduction"`
	InsuranceDeduction *float64 `json:"insurance_deduction"`
	OtherDeductions    *float64 `json:"other_deductions"`
	TotalDeductions    *float64 `json:"total_deductions"`

	Status *string `json:"status"`
}

type GeneratePayrollInput struct {
	Month int `json:"month" binding:"required,min=1,max=12"`
	Year  int `json:"year" binding:"required,min=2000"`
}

// PayrollRecord is a payroll row joined with the employee's current name.
// EmployeeName is empty when the employee has since been deleted.
type PayrollRecord struct {
	models.Payroll
	EmployeeName string `json:"employee_name"`
}

type GeneratePayrollResult struct {
	Message      string `json:"message"`
	CreatedCount int    `json:"created_count"`
	Skipped      []uint `json:"skipped"`
	Failed       []uint `json:"failed"`
}

type MonthlySummary struct {
	PayrollMonth        int     `json:"payroll_month"`
	PayrollYear         int     `json:"payroll_year"`
	EmployeeCount       int     `json:"employee_count"`
	TotalSalaryPaid     float64 `json:"total_salary_paid"`
	TotalAllowancesPaid float64 `json:"total_allowances_paid"`
}
