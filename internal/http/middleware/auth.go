package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/solusi-cipta-media/taraje-hotel/internal/domain"
)

const requestContextKey = "request_context"

// Auth memvalidasi bearer token HS256 dan menaruh identitas pengguna di
// context request.
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token tidak ditemukan"})
			return
		}
		raw := strings.TrimPrefix(header, "Bearer ")

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token tidak valid"})
			return
		}

		rc := domain.RequestContext{}
		if v, ok := claims["user_id"].(string); ok {
			rc.UserID = v
		}
		if v, ok := claims["role"].(string); ok {
			rc.Role = v
		}
		c.Set(requestContextKey, rc)
		c.Next()
	}
}

// GetRequestContext mengambil identitas pengguna hasil middleware Auth.
func GetRequestContext(c *gin.Context) (domain.RequestContext, bool) {
	v, ok := c.Get(requestContextKey)
	if !ok {
		return domain.RequestContext{}, false
	}
	rc, ok := v.(domain.RequestContext)
	return rc, ok
}

// RequireRoles hanya mengizinkan request dengan peran yang terdaftar.
// Diasumsikan middleware Auth sudah berjalan lebih dulu.
func RequireRoles(allowedRoles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[strings.ToLower(strings.TrimSpace(r))] = struct{}{}
	}

	return func(c *gin.Context) {
		rc, ok := GetRequestContext(c)
		if !ok || rc.Role == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "unauthorized: role tidak ditemukan pada context",
			})
			return
		}
		if _, ok := allowed[strings.ToLower(strings.TrimSpace(rc.Role))]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "forbidden: role tidak diizinkan",
			})
			return
		}
		c.Next()
	}
}
