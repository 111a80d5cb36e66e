package services

import (
	stderrors "errors"
	"testing"
	"time"

	"payroll/constants"
	"payroll/errors"
	"payroll/models"

	"github.com/dgrijalva/jwt-go"
)

func TestGenerateAndVerifyToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	empID := uint(4)
	user := models.User{
		UserID:   12,
		Username: "jdoe",
		Role:     constants.RoleAdmin,
		EmpID:    &empID,
	}

	tok, err := GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	claims, err := VerifyToken(tok)
	if err != nil {
		t.Fatalf("VerifyToken error: %v", err)
	}
	if claims.UserID != user.UserID {
		t.Fatalf("user id mismatch: got %d want %d", claims.UserID, user.UserID)
	}
	if claims.Role != constants.RoleAdmin {
		t.Fatalf("role mismatch: got %q", claims.Role)
	}
	if claims.Username != "jdoe" {
		t.Fatalf("username mismatch: got %q", claims.Username)
	}
	if claims.EmpID == nil || *claims.EmpID != empID {
		t.Fatalf("emp id mismatch: got %v", claims.EmpID)
	}
}

func TestVerifyToken_Expired(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		UserID:   1,
		Role:     constants.RoleEmployee,
		Username: "old",
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(-time.Hour).Unix(),
		},
	})
	tok, err := expired.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}

	_, err = VerifyToken(tok)
	if err == nil {
		t.Fatal("expected error for expired token, got nil")
	}
	if !stderrors.Is(err, errors.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "right-secret")

	tok, err := GenerateToken(models.User{UserID: 2, Username: "u2", Role: constants.RoleEmployee})
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	t.Setenv("JWT_SECRET", "wrong-secret")
	if _, err := VerifyToken(tok); err == nil {
		t.Fatal("expected error for wrong secret, got nil")
	}
}

func TestVerifyToken_Malformed(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	if _, err := VerifyToken("not.a.jwt"); err == nil {
		t.Fatal("expected error for malformed token, got nil")
	}
}
