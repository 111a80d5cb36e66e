package config

import (
	"errors"
	"log"

	"payroll/constants"
	"payroll/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedDefaultUsers creates the demo admin and employee accounts as real rows
// so the login path never branches on literal credentials. Existing accounts
// are left untouched.
func SeedDefaultUsers() {
	seedUser(models.User{
		Username: GetEnvDefault("SEED_ADMIN_USERNAME", "admin"),
		Email:    "admin@payroll.local",
		Role:     constants.RoleAdmin,
	}, GetEnvDefault("SEED_ADMIN_PASSWORD", "admin123"), nil)

	emp := models.Employee{
		Name:        "Demo Employee",
		Designation: constants.DefaultDesignation,
		Department:  constants.DefaultDepartment,
		Email:       "emp1@payroll.local",
	}
	seedUser(models.User{
		Username: GetEnvDefault("SEED_EMPLOYEE_USERNAME", "emp1"),
		Email:    emp.Email,
		Role:     constants.RoleEmployee,
	}, GetEnvDefault("SEED_EMPLOYEE_PASSWORD", "Employee@2025"), &emp)
}

func seedUser(user models.User, password string, emp *models.Employee) {
	var existing models.User
	err := DB.Where("username = ?", user.Username).First(&existing).Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Warning: seed lookup for %q failed: %v", user.Username, err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Warning: could not hash seed password for %q: %v", user.Username, err)
		return
	}
	user.PasswordHash = string(hash)

	err = DB.Transaction(func(tx *gorm.DB) error {
		if emp != nil {
			if err := tx.Create(emp).Error; err != nil {
				return err
			}
			user.EmpID = &emp.EmpID
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		log.Printf("Warning: could not seed user %q: %v", user.Username, err)
		return
	}
	log.Printf("Seeded default %s account %q", user.Role, user.Username)
}
