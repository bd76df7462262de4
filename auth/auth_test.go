// C:\Users\seoro\OneDrive\바탕 화면\SEROE\auth\auth_test.go
package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestHashAndVerifyPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("비밀번호1234")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !VerifyPassword(hash, "비밀번호1234") {
		t.Fatalf("correct password should verify")
	}
	if VerifyPassword(hash, "틀린비밀번호") {
		t.Fatalf("wrong password should not verify")
	}
	if VerifyPassword("", "비밀번호1234") {
		t.Fatalf("empty hash should not verify")
	}
}

func TestIssueTokenClaims(t *testing.T) {
	t.Parallel()

	secret := "test-secret"
	now := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)

	tokenString, err := IssueToken(secret, now)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	}, jwt.WithTimeFunc(func() time.Time { return now }))
	if err != nil || !token.Valid {
		t.Fatalf("issued token should parse as valid: %v", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatalf("claims type: %T", token.Claims)
	}
	if role, _ := claims["role"].(string); role != "admin" {
		t.Fatalf("role = %v, want admin", claims["role"])
	}
	exp, _ := claims["exp"].(float64)
	if int64(exp) != now.Add(12*time.Hour).Unix() {
		t.Fatalf("exp = %v", claims["exp"])
	}
}

func TestIssueTokenRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	tokenString, err := IssueToken("secret-a", time.Now())
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	_, err = jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret-b"), nil
	})
	if err == nil {
		t.Fatalf("token signed with another secret should not validate")
	}
}
