package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"kanban-workspace-api/internal/response"
)

// Auth returns a middleware that validates the Bearer token and places the
// caller's user id into both the gin context and the request context. The
// service layer reads "user_id" from the request context, so both must carry it.
func Auth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Authorization header is required")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Invalid authorization header format")
			c.Abort()
			return
		}
		userID, err := UserIDFromToken(parts[1], jwtSecret)
		if err != nil {
			response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		ctx := context.WithValue(c.Request.Context(), "user_id", userID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// UserIDFromToken validates an HMAC-signed token and extracts the caller's
// user id. The websocket handler uses it directly because browsers cannot set
// headers on websocket upgrade requests.
func UserIDFromToken(tokenString, jwtSecret string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(jwtSecret), nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	if !token.Valid {
		return uuid.Nil, jwt.ErrTokenUnverifiable
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, jwt.ErrTokenInvalidClaims
	}
	return userIDFromClaims(claims)
}

// userIDFromClaims accepts either a "user_id" or a "sub" claim
func userIDFromClaims(claims jwt.MapClaims) (uuid.UUID, error) {
	if uid, ok := claims["user_id"].(string); ok {
		return uuid.Parse(uid)
	}
	if sub, ok := claims["sub"].(string); ok {
		return uuid.Parse(sub)
	}
	return uuid.Nil, jwt.ErrTokenInvalidClaims
}
