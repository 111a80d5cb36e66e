package models

import "time"

// Payroll is one computed salary record for an employee and period.
// The (emp_id, payroll_month, payroll_year) unique index guarantees at most
// one record per employee-period even under concurrent generation requests.
type Payroll struct {
	PayrollID uint `gorm:"primaryKey;column:payroll_id" json:"payroll_id"`
	EmpID     uint `gorm:"column:emp_id;not null;uniqueIndex:idx_payroll_emp_period" json:"emp_id"`

	WorkingDays float64 `json:"working_days"`
	RatePerDay  float64 `json:"rate_per_day"`
	BasicSalary float64 `json:"basic_salary"`

	NumberOfLeaves    float64 `json:"number_of_leaves"`
	DeductionPerLeave float64 `json:"deduction_per_leave"`
	LeaveDeduction    float64 `json:"leave_deduction"`

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

	GrossSalary float64 `json:"gross_salary"`
	NetSalary   float64 `json:"net_salary"`
	// Mirrors NetSalary; retained because the report views read it.
	TotalSalary float64 `json:"total_salary"`

	PayrollDate  time.Time `json:"payroll_date"`
	PayrollMonth int       `gorm:"uniqueIndex:idx_payroll_emp_period" json:"payroll_month"`
	PayrollYear  int       `gorm:"uniqueIndex:idx_payroll_emp_period" json:"payroll_year"`
	Status       string    `gorm:"type:varchar(16);default:'draft'" json:"status"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Payroll) TableName() string {
	return "payroll"
}
