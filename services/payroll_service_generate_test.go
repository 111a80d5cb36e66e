package services

import (
	stderrors "errors"
	"testing"

	"payroll/services/logger"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newServiceWithMock(t *testing.T) (*PayrollService, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		t.Fatalf("gorm.Open error: %v", err)
	}

	return NewPayrollService(PayrollServiceOptions{
		DB:     db,
		Logger: logger.NewDefaultLogger(logger.ErrorLevel),
	}), mock
}

func expectEmployeeList(mock sqlmock.Sqlmock) {
	mock.ExpectQuery(`SELECT \* FROM "employees" ORDER BY emp_id`).
		WillReturnRows(sqlmock.NewRows([]string{"emp_id", "name", "salary"}).
			AddRow(1, "Alina Khan", 22000).
			AddRow(2, "Bashir Ahmed", 44000))
}

func expectExistingEmpIDs(mock sqlmock.Sqlmock, month, year int, empIDs ...uint) {
	rows := sqlmock.NewRows([]string{"emp_id"})
	for _, id := range empIDs {
		rows.AddRow(id)
	}
	mock.ExpectQuery(`SELECT "emp_id" FROM "payroll" WHERE payroll_month = \$1 AND payroll_year = \$2`).
		WithArgs(month, year).
		WillReturnRows(rows)
}

func TestGenerateForPeriod_CreatesOnePerEmployee(t *testing.T) {
	t.Parallel()

	svc, mock := newServiceWithMock(t)

	expectEmployeeList(mock)
	expectExistingEmpIDs(mock, 5, 2025)
	for id := 1; id <= 2; id++ {
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "payroll"`).
			WillReturnRows(sqlmock.NewRows([]string{"payroll_id"}).AddRow(id))
		mock.ExpectCommit()
	}

	result, err := svc.GenerateForPeriod(5, 2025)
	if err != nil {
		t.Fatalf("GenerateForPeriod error: %v", err)
	}

	assert.Equal(t, 2, result.CreatedCount)
	assert.Empty(t, result.Skipped)
	assert.Empty(t, result.Failed)
	assert.Equal(t, "Generated 2 payroll record(s) for 2025-05", result.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGenerateForPeriod_SecondRunSkipsAll(t *testing.T) {
	t.Parallel()

	svc, mock := newServiceWithMock(t)

	// Every employee already has a record for the period; running again must
	// create nothing and report them all as skipped.
	expectEmployeeList(mock)
	expectExistingEmpIDs(mock, 5, 2025, 1, 2)

	result, err := svc.GenerateForPeriod(5, 2025)
	if err != nil {
		t.Fatalf("GenerateForPeriod error: %v", err)
	}

	assert.Equal(t, 0, result.CreatedCount)
	assert.Equal(t, []uint{1, 2}, result.Skipped)
	assert.Empty(t, result.Failed)
	assert.Equal(t, "Generated 0 payroll record(s) for 2025-05", result.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGenerateForPeriod_DuplicateInsertCountsAsSkipped(t *testing.T) {
	t.Parallel()

	svc, mock := newServiceWithMock(t)

	// A concurrent run can insert between the pre-check and the create; the
	// unique-index violation is treated as a skip, not a failure.
	expectEmployeeList(mock)
	expectExistingEmpIDs(mock, 5, 2025)
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "payroll"`).
		WillReturnError(stderrors.New(`ERROR: duplicate key value violates unique constraint "idx_payroll_emp_period"`))
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "payroll"`).
		WillReturnRows(sqlmock.NewRows([]string{"payroll_id"}).AddRow(2))
	mock.ExpectCommit()

	result, err := svc.GenerateForPeriod(5, 2025)
	if err != nil {
		t.Fatalf("GenerateForPeriod error: %v", err)
	}

	assert.Equal(t, 1, result.CreatedCount)
	assert.Equal(t, []uint{1}, result.Skipped)
	assert.Empty(t, result.Failed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGenerateForPeriod_FailureDoesNotAbortBatch(t *testing.T) {
	t.Parallel()

	svc, mock := newServiceWithMock(t)

	expectEmployeeList(mock)
	expectExistingEmpIDs(mock, 5, 2025)
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "payroll"`).
		WillReturnError(stderrors.New("connection reset by peer"))
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "payroll"`).
		WillReturnRows(sqlmock.NewRows([]string{"payroll_id"}).AddRow(2))
	mock.ExpectCommit()

	result, err := svc.GenerateForPeriod(5, 2025)
	if err != nil {
		t.Fatalf("GenerateForPeriod error: %v", err)
	}

	assert.Equal(t, 1, result.CreatedCount)
	assert.Equal(t, []uint{1}, result.Failed)
	assert.Empty(t, result.Skipped)
	assert.NoError(t, mock.ExpectationsWereMet())
}
