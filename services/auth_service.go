package services

import (
	stderrors "errors"
	"strings"
	"time"

	"payroll/config"
	"payroll/constants"
	"payroll/dto"
	"payroll/errors"
	"payroll/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// Login verifies the credentials and issues a token. The error is identical
// for unknown usernames and wrong passwords.
func Login(input dto.LoginInput) (string, models.User, error) {
	var user models.User
	if err := config.DB.Where("username = ?", input.Username).First(&user).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return "", models.User{}, errors.NewAppError(errors.ErrCodeInvalidCredentials, "Invalid credentials", errors.ErrInvalidCredentials)
		}
		return "", models.User{}, errors.NewAppError(errors.ErrCodeDBError, "Login failed", err)
	}

	if !CheckPassword(user.PasswordHash, input.Password) {
		return "", models.User{}, errors.NewAppError(errors.ErrCodeInvalidCredentials, "Invalid credentials", errors.ErrInvalidCredentials)
	}

	token, err := GenerateToken(user)
	if err != nil {
		return "", models.User{}, errors.NewAppError(errors.ErrCodeDBError, "Could not issue token", err)
	}

	now := time.Now()
	user.LastLogin = &now
	if err := config.DB.Model(&models.User{}).Where("user_id = ?", user.UserID).Update("last_login", now).Error; err != nil {
		return "", models.User{}, errors.NewAppError(errors.ErrCodeDBError, "Login failed", err)
	}

	return token, user, nil
}

// RegisterUser creates an account. The self-service path also creates the
// employee stub the user record points at; both inserts run in one
// transaction so a failed user insert leaves no orphaned stub behind.
func RegisterUser(input dto.RegisterInput) (models.User, error) {
	role := input.Role
	if role == "" {
		role = constants.RoleEmployee
	}
	if role != constants.RoleAdmin && role != constants.RoleEmployee {
		return models.User{}, errors.NewAppError(errors.ErrCodeInvalidRole, "Unknown role", nil)
	}

	var count int64
	if err := config.DB.Model(&models.User{}).
		Where("username = ? OR email = ?", input.Username, input.Email).
		Count(&count).Error; err != nil {
		return models.User{}, errors.NewAppError(errors.ErrCodeDBError, "Registration failed", err)
	}
	if count > 0 {
		return models.User{}, errors.NewAppError(errors.ErrCodeDBDuplicate, "Username or email already exists", errors.ErrUserAlreadyExists)
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return models.User{}, errors.NewAppError(errors.ErrCodeDBError, "Registration failed", err)
	}

	user := models.User{
		Username:     input.Username,
		PasswordHash: hash,
		Email:        input.Email,
		Role:         role,
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if role == constants.RoleEmployee {
			emp := models.Employee{
				Name:        input.Username,
				Email:       input.Email,
				Designation: constants.DefaultDesignation,
				Department:  constants.DefaultDepartment,
				Salary:      0,
			}
			if err := tx.Create(&emp).Error; err != nil {
				return err
			}
			user.EmpID = &emp.EmpID
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		if IsDuplicateErr(err) {
			return models.User{}, errors.NewAppError(errors.ErrCodeDBDuplicate, "Username or email already exists", err)
		}
		return models.User{}, errors.NewAppError(errors.ErrCodeDBError, "Registration failed", err)
	}

	return user, nil
}

// IsDuplicateErr reports whether err is a unique-constraint violation.
func IsDuplicateErr(err error) bool {
	if err == nil {
		return false
	}
	if stderrors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "duplicate key")
}

// SanitizeUser strips everything a client must not see from a user record.
func SanitizeUser(user models.User) dto.UserResponse {
	return dto.UserResponse{
		UserID:    user.UserID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		EmpID:     user.EmpID,
		LastLogin: user.LastLogin,
	}
}
