package models

import "time"

type Employee struct {
	EmpID          uint      `gorm:"primaryKey;column:emp_id" json:"emp_id"`
	Name           string    `gorm:"not null" json:"name"`
	Age            *int      `json:"age"`
	Organization   string    `json:"organization"`
	Designation    string    `json:"designation"`
	Email          string    `json:"email"`
	Contact        string    `json:"contact"`
	Department     string    `json:"department"`
	Salary         float64   `json:"salary"`
	JoinDate       string    `json:"join_date"` // YYYY-MM-DD, empty when unknown
	EmploymentType string    `json:"employment_type"`
	Qualification  string    `json:"qualification"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
