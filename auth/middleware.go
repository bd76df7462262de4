// C:\Users\seoro\OneDrive\바탕 화면\SEROE\auth\middleware.go
package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"seroe/config"
)

type contextKey string

// RoleCtxKey는 검증된 역할이 담기는 컨텍스트 키입니다.
const RoleCtxKey contextKey = "role"

func tokenFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie(TokenCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	authHeader := r.Header.Get("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}

// RequireAdmin은 관리자 토큰이 유효할 때만 next 를 호출합니다.
// 역할은 요청 컨텍스트로 전달합니다.
func RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tokenString := tokenFromRequest(r)
		if tokenString == "" {
			http.Error(w, "관리자 로그인이 필요합니다.", http.StatusUnauthorized)
			return
		}

		secret := config.GetConfig().JWTSecret
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			http.Error(w, "토큰이 유효하지 않거나 만료되었습니다.", http.StatusUnauthorized)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			http.Error(w, "토큰 클레임이 올바르지 않습니다.", http.StatusInternalServerError)
			return
		}
		role, ok := claims["role"].(string)
		if !ok || role != "admin" {
			http.Error(w, "관리자 권한이 없습니다.", http.StatusForbidden)
			return
		}

		ctx := context.WithValue(r.Context(), RoleCtxKey, role)
		next(w, r.WithContext(ctx))
	}
}
