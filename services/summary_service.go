package services

import (
	"sort"
	"time"

	"payroll/config"
	"payroll/dto"
	"payroll/errors"
	"payroll/models"
)

const (
	CacheKeyPayrollSummary = "payroll:summary"
	CacheKeyEmployeeList   = "employees:all"
	CacheTTL               = 5 * time.Minute
)

// SummarizePayrolls groups records by (month, year) and totals them,
// counting each employee once per period, most recent period first.
func SummarizePayrolls(records []models.Payroll) []dto.MonthlySummary {
	type periodKey struct {
		month int
		year  int
	}

	totals := make(map[periodKey]*dto.MonthlySummary)
	seen := make(map[periodKey]map[uint]bool)

	for _, rec := range records {
		key := periodKey{month: rec.PayrollMonth, year: rec.PayrollYear}
		summary, ok := totals[key]
		if !ok {
			summary = &dto.MonthlySummary{
				PayrollMonth: rec.PayrollMonth,
				PayrollYear:  rec.PayrollYear,
			}
			totals[key] = summary
			seen[key] = make(map[uint]bool)
		}

		summary.TotalSalaryPaid += rec.NetSalary
		summary.TotalAllowancesPaid += rec.TotalAllowances
		if !seen[key][rec.EmpID] {
			seen[key][rec.EmpID] = true
			summary.EmployeeCount++
		}
	}

	summaries := make([]dto.MonthlySummary, 0, len(totals))
	for _, summary := range totals {
		summaries = append(summaries, *summary)
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		if summaries[i].PayrollYear != summaries[j].PayrollYear {
			return summaries[i].PayrollYear > summaries[j].PayrollYear
		}
		return summaries[i].PayrollMonth > summaries[j].PayrollMonth
	})
	return summaries
}

// GetMonthlySummary serves the aggregation, cached for CacheTTL and
// invalidated by the payroll mutation handlers.
func GetMonthlySummary() ([]dto.MonthlySummary, error) {
	var cached []dto.MonthlySummary
	if err := GetFromRedis(config.Ctx, config.RedisClient, CacheKeyPayrollSummary, &cached); err == nil && len(cached) > 0 {
		return cached, nil
	}

	var records []models.Payroll
	if err := config.DB.Find(&records).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Could not load payroll records", err)
	}

	summaries := SummarizePayrolls(records)

	_ = SetToRedis(config.Ctx, config.RedisClient, CacheKeyPayrollSummary, summaries, CacheTTL)
	return summaries, nil
}

// InvalidatePayrollCaches drops every cache a payroll or employee mutation
// can stale.
func InvalidatePayrollCaches() {
	_ = DeleteFromRedis(config.Ctx, config.RedisClient, CacheKeyPayrollSummary, CacheKeyEmployeeList)
}
