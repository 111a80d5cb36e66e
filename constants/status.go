package constants

// User roles
const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// Payroll status
const (
	PayrollStatusDraft = "draft"
	PayrollStatusFinal = "final"
	PayrollStatusPaid  = "paid"
)

// Defaults applied to the employee stub created during self-service registration
const (
	DefaultDesignation = "Employee"
	DefaultDepartment  = "General"
)
