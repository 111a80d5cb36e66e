package dto

type EmployeeInput struct {
	Name           string  `json:"name" binding:"required"`
	Age            *int    `json:"age"`
	Organization   string  `json:"organization"`
	Designation    string  `json:"designation"`
	Email          string  `json:"email"`
	Contact        string  `json:"contact"`
	Department     string  `json:"department"`
	Salary         float64 `json:"salary"`
	JoinDate       string  `json:"join_date"`
	EmploymentType string  `json:"employment_type"`
	Qualification  string  `json:"qualification"`
}

// EmployeeUpdateInput carries pointers so absent fields keep their stored value.
type EmployeeUpdateInput struct {
	Name           *string  `json:"name"`
	Age            *int     `json:"age"`
	Organization   *string  `json:"organization"`
	Designation    *string  `json:"designation"`
	Email          *string  `json:"email"`
	Contact        *string  `json:"contact"`
	Department     *string  `json:"department"`
	Salary         *float64 `json:"salary"`
	JoinDate       *string  `json:"join_date"`
	EmploymentType *string  `json:"employment_type"`
	Qualification  *string  `json:"qualification"`
}
