package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenTTL bounds a login session; the dashboard re-authenticates daily.
const tokenTTL = 24 * time.Hour

// IssueToken signs a JWT for an authenticated operator.
func IssueToken(secret, subject, role string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": role,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// RequireAuth rejects requests that carry no valid Bearer token. The public
// tracking endpoint and login/signup stay outside this wrapper.
func RequireAuth(secret string, handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			writeJSON(w, http.StatusUnauthorized, ApiResponse{
				Success: false,
				Message: "Missing or malformed Authorization header",
			})
			return
		}

		tokenStr := strings.TrimPrefix(auth, "Bearer ")
		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			writeJSON(w, http.StatusUnauthorized, ApiResponse{
				Success: false,
				Message: "Invalid or expired token",
			})
			return
		}

		handler(w, r)
	}
}
