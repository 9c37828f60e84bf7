package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	autherrors "github.com/alex-morcg/horarios-vacaciones/internal/auth/errors"
	"github.com/alex-morcg/horarios-vacaciones/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	ContextEmployeeCode = "employee_code"
	ContextEmployeeName = "employee_name"
	ContextIsAdmin      = "is_admin"
)

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Token not found", nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})

		if err != nil || !token.Valid {
			errObj := autherrors.ErrInvalidToken
			if err != nil && strings.Contains(err.Error(), "expired") {
				errObj = autherrors.ErrTokenExpired
			}
			response.Error(c, errObj.HTTPStatus, errObj.Code, errObj.Message, nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid token claims", nil)
			c.Abort()
			return
		}

		code, ok := claims["employee_code"].(string)
		if !ok || code == "" {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Employee code not found in token", nil)
			c.Abort()
			return
		}

		name, _ := claims["employee_name"].(string)
		isAdmin, _ := claims["is_admin"].(bool)

		c.Set(ContextEmployeeCode, code)
		c.Set(ContextEmployeeName, name)
		c.Set(ContextIsAdmin, isAdmin)

		c.Next()
	}
}

// AdminOnly gates admin operations. The product has a single boolean admin
// flag, no role hierarchy.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(ContextIsAdmin) {
			response.Error(c, autherrors.ErrForbidden.HTTPStatus, autherrors.ErrForbidden.Code, autherrors.ErrForbidden.Message, nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
