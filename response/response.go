package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the wire shape for every non-2xx response.
type ErrorBody struct {
	Error string `json:"error"`
}

// MessageBody is the wire shape for mutations that only confirm an action.
type MessageBody struct {
	Message string `json:"message"`
}

// Success writes data as-is with 200.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created writes data as-is with 201.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Message writes a confirmation body with 200.
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, MessageBody{Message: message})
}

// BadRequest writes a 400 with the given message.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorBody{Error: message})
}

// ValidationError writes a 400 for malformed or missing input.
func ValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorBody{Error: message})
}

// Unauthorized writes a 401 with a fixed message so callers cannot
// distinguish unknown usernames from wrong passwords.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, ErrorBody{Error: "Invalid or missing credentials"})
}

// Forbidden writes a 403.
func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, ErrorBody{Error: "Admin access required"})
}

// NotFound writes a 404.
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Resource not found"
	}
	c.JSON(http.StatusNotFound, ErrorBody{Error: message})
}

// ServerError writes a generic 500 body; details stay in the logs.
func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, ErrorBody{Error: "Internal server error"})
}
