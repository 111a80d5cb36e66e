package controllers

import (
	"log"

	"payroll/errors"
	"payroll/response"

	"github.com/gin-gonic/gin"
)

// respondError maps a service error onto the HTTP error taxonomy. Anything
// unmapped is logged and surfaced as the generic 500 body.
func respondError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		log.Printf("[ERROR] unhandled error: %v", err)
		response.ServerError(c)
		return
	}

	switch appErr.Code {
	case errors.ErrCodeValidation, errors.ErrCodeRequiredField, errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidRole:
		response.ValidationError(c, appErr.Message)
	case errors.ErrCodeDBDuplicate:
		response.BadRequest(c, appErr.Message)
	case errors.ErrCodeInvalidCredentials, errors.ErrCodeInvalidToken, errors.ErrCodeMissingToken, errors.ErrCodeUnauthorized:
		response.Unauthorized(c)
	case errors.ErrCodeForbidden:
		response.Forbidden(c)
	case errors.ErrCodeDBNotFound:
		response.NotFound(c, appErr.Message)
	default:
		log.Printf("[ERROR] %v", appErr)
		response.ServerError(c)
	}
}
