package services

import (
	stderrors "errors"
	"fmt"
	"time"

	"payroll/config"
	"payroll/errors"
	"payroll/models"

	"github.com/dgrijalva/jwt-go"
)

const TokenLifetime = 24 * time.Hour

// Claims is the signed token payload asserting a user's identity and role.
type Claims struct {
	UserID   uint   `json:"user_id"`
	Role     string `json:"role"`
	EmpID    *uint  `json:"emp_id"`
	Username string `json:"username"`
	jwt.StandardClaims
}

// Read per call so a .env loaded in main is picked up.
func tokenSecret() []byte {
	if s := config.GetEnv("JWT_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("your-secret-key")
}

// GenerateToken issues a 24h HS256 token for user.
func GenerateToken(user models.User) (string, error) {
	claims := &Claims{
		UserID:   user.UserID,
		Role:     user.Role,
		EmpID:    user.EmpID,
		Username: user.Username,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(TokenLifetime).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tokenSecret())
}

// VerifyToken checks the signature and expiry and returns the claims.
func VerifyToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return tokenSecret(), nil
	})
	if err != nil {
		var vErr *jwt.ValidationError
		if stderrors.As(err, &vErr) && vErr.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Token expired", errors.ErrTokenExpired)
		}
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Invalid token", err)
	}
	if !token.Valid {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Invalid token", nil)
	}

	return claims, nil
}
