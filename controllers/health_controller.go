package controllers

import (
	"time"

	"payroll/response"

	"github.com/gin-gonic/gin"
)

func Health(c *gin.Context) {
	response.Success(c, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
