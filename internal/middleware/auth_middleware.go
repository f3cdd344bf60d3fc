package middleware

import (
	"errors"
	"fmt"
	"strings"

	"go-leave/internal/shared/apperror"
	"go-leave/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// ContextIdentity is the gin key holding the authenticated email.
const ContextIdentity = "identity"

var (
	ErrTokenNotFound = apperror.ErrUnauthorized.WithMessage("Token not found")
	ErrInvalidToken  = apperror.ErrUnauthorized.WithMessage("Invalid token")
	ErrTokenExpired  = apperror.ErrUnauthorized.WithMessage("Token has expired")
	ErrMissingEmail  = apperror.ErrUnauthorized.WithMessage("Email not found in token")
)

func abortWith(c *gin.Context, err *apperror.AppError) {
	response.Error(c, err.HTTPStatus, err.Code, err.Message, nil)
	c.Abort()
}

// AuthMiddleware reads an HS256 token from the Authorization header or the
// access_token cookie and stores its email claim as the request identity.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			abortWith(c, ErrTokenNotFound)
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			if errors.Is(err, jwt.ErrTokenExpired) {
				abortWith(c, ErrTokenExpired)
				return
			}
			abortWith(c, ErrInvalidToken)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abortWith(c, ErrInvalidToken)
			return
		}

		email, _ := claims["email"].(string)
		if strings.TrimSpace(email) == "" {
			abortWith(c, ErrMissingEmail)
			return
		}

		c.Set(ContextIdentity, email)
		c.Next()
	}
}

// GetIdentity returns the email stored by AuthMiddleware, or "".
func GetIdentity(c *gin.Context) string {
	return c.GetString(ContextIdentity)
}
