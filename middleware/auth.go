package middleware

import (
	"strings"

	"payroll/response"
	"payroll/services"

	"github.com/gin-gonic/gin"
)

const (
	CtxClaimsKey = "claims"
	CtxUserIDKey = "userID"
	CtxRoleKey   = "userRole"
	CtxEmpIDKey  = "empID"
)

// AuthMiddleware verifies the bearer token signature and expiry, and when
// roles are given also requires one of them.
func AuthMiddleware(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := services.VerifyToken(tokenString)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		if len(roles) > 0 {
			hasRole := false
			for _, role := range roles {
				if role == claims.Role {
					hasRole = true
					break
				}
			}
			if !hasRole {
				response.Forbidden(c)
				c.Abort()
				return
			}
		}

		c.Set(CtxClaimsKey, claims)
		c.Set(CtxUserIDKey, claims.UserID)
		c.Set(CtxRoleKey, claims.Role)
		if claims.EmpID != nil {
			c.Set(CtxEmpIDKey, *claims.EmpID)
		}
		c.Next()
	}
}

// ClaimsFromContext returns the verified claims stored by AuthMiddleware.
func ClaimsFromContext(c *gin.Context) (*services.Claims, bool) {
	val, exists := c.Get(CtxClaimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := val.(*services.Claims)
	return claims, ok
}
