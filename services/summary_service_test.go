package services

import (
	"testing"

	"payroll/models"

	"github.com/stretchr/testify/assert"
)

func TestSummarizePayrolls_GroupsAndSorts(t *testing.T) {
	t.Parallel()

	records := []models.Payroll{
		{EmpID: 1, PayrollMonth: 4, PayrollYear: 2025, NetSalary: 1000, TotalAllowances: 100},
		{EmpID: 2, PayrollMonth: 4, PayrollYear: 2025, NetSalary: 2000, TotalAllowances: 200},
		{EmpID: 1, PayrollMonth: 5, PayrollYear: 2025, NetSalary: 1100, TotalAllowances: 110},
		{EmpID: 1, PayrollMonth: 12, PayrollYear: 2024, NetSalary: 900, TotalAllowances: 90},
	}

	summaries := SummarizePayrolls(records)
	if len(summaries) != 3 {
		t.Fatalf("expected 3 periods, got %d", len(summaries))
	}

	// Most recent period first: 2025-05, 2025-04, 2024-12.
	assert.Equal(t, 2025, summaries[0].PayrollYear)
	assert.Equal(t, 5, summaries[0].PayrollMonth)
	assert.Equal(t, 2025, summaries[1].PayrollYear)
	assert.Equal(t, 4, summaries[1].PayrollMonth)
	assert.Equal(t, 2024, summaries[2].PayrollYear)
	assert.Equal(t, 12, summaries[2].PayrollMonth)

	april := summaries[1]
	assert.Equal(t, 2, april.EmployeeCount)
	assert.InDelta(t, 3000, april.TotalSalaryPaid, 1e-9)
	assert.InDelta(t, 300, april.TotalAllowancesPaid, 1e-9)
}

func TestSummarizePayrolls_DistinctEmployeeCount(t *testing.T) {
	t.Parallel()

	// Two manual records for the same employee and period still count one
	// employee.
	records := []models.Payroll{
		{EmpID: 3, PayrollMonth: 1, PayrollYear: 2025, NetSalary: 500},
		{EmpID: 3, PayrollMonth: 1, PayrollYear: 2025, NetSalary: 700},
	}

	summaries := SummarizePayrolls(records)
	if len(summaries) != 1 {
		t.Fatalf("expected 1 period, got %d", len(summaries))
	}
	assert.Equal(t, 1, summaries[0].EmployeeCount)
	assert.InDelta(t, 1200, summaries[0].TotalSalaryPaid, 1e-9)
}

func TestSummarizePayrolls_Empty(t *testing.T) {
	t.Parallel()

	summaries := SummarizePayrolls(nil)
	assert.Empty(t, summaries)
}
