// C:\Users\seoro\OneDrive\바탕 화면\SEROE\auth\auth.go
package auth

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"seroe/config"
)

// 관리자 인증. 전역 세션 플래그 대신 서명된 토큰을 발급하고,
// 요청마다 미들웨어에서 검증합니다.

const TokenCookieName = "seroe_token"

const tokenLifetime = 12 * time.Hour

type loginRequest struct {
	Password string `json:"password"`
}

// IssueToken은 관리자용 JWT 를 발급합니다.
func IssueToken(secret string, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"role": "admin",
		"iat":  now.Unix(),
		"exp":  now.Add(tokenLifetime).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifyPassword는 입력 비밀번호를 설정의 bcrypt 해시와 비교합니다.
func VerifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// HashPassword는 설정 파일에 저장할 bcrypt 해시를 만듭니다.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// LoginHandler는 관리자 로그인을 처리하고 토큰 쿠키를 발급합니다.
func LoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "요청 형식이 올바르지 않습니다.", http.StatusBadRequest)
			return
		}

		cfg := config.GetConfig()
		if cfg.AdminPasswordHash == "" || cfg.JWTSecret == "" {
			http.Error(w, "관리자 비밀번호 설정을 확인하세요.", http.StatusInternalServerError)
			return
		}

		if !VerifyPassword(cfg.AdminPasswordHash, req.Password) {
			log.Println("WARN: 관리자 로그인 실패 (비밀번호 불일치)")
			http.Error(w, "비밀번호가 틀렸습니다.", http.StatusUnauthorized)
			return
		}

		token, err := IssueToken(cfg.JWTSecret, time.Now())
		if err != nil {
			log.Printf("Error issuing admin token: %v", err)
			http.Error(w, "토큰 발급에 실패했습니다.", http.StatusInternalServerError)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     TokenCookieName,
			Value:    token,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
			Expires:  time.Now().Add(tokenLifetime),
		})
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "관리자 로그인 성공"})
	}
}

// LogoutHandler는 토큰 쿠키를 만료시킵니다.
func LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{
			Name:     TokenCookieName,
			Value:    "",
			Path:     "/",
			HttpOnly: true,
			MaxAge:   -1,
		})
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "로그아웃 되었습니다."})
	}
}
