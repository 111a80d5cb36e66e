package controllers

import (
	"strings"

	"payroll/constants"
	"payroll/dto"
	"payroll/response"
	"payroll/services"
	"payroll/validator"

	"github.com/gin-gonic/gin"
)

func Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ValidationError(c, "Username and password required")
		return
	}

	token, user, err := services.Login(input)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, dto.LoginResponse{
		Token: token,
		User:  services.SanitizeUser(user),
	})
}

// Register handles both variants: self-service signup (always an employee
// account with its stub employee row) and admin-driven registration, which
// may assign any role but requires a valid admin token.
func Register(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ValidationError(c, "Username, password, and email are required")
		return
	}

	if err := validator.ValidateRegister(&input); err != nil {
		respondError(c, err)
		return
	}

	if input.Role != "" && input.Role != constants.RoleEmployee {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c)
			return
		}
		claims, err := services.VerifyToken(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			response.Unauthorized(c)
			return
		}
		if claims.Role != constants.RoleAdmin {
			response.Forbidden(c)
			return
		}
	}

	user, err := services.RegisterUser(input)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Created(c, dto.RegisterResponse{
		Message: "Account created successfully. Please log in.",
		User:    services.SanitizeUser(user),
	})
}
