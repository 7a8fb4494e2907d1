package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/akosiano1/itpm-proj/internal/presentation/http/dto/response"
	"github.com/akosiano1/itpm-proj/pkg/utils"
)

// AuthMiddleware creates a JWT authentication middleware
func AuthMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateAccessToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Set("user_role", claims.Role)
		c.Set("user_capabilities", claims.Capabilities)

		c.Next()
	}
}

// RequireCapability creates a middleware that admits only tokens carrying
// the named capability. Capabilities are resolved at token issue, so the
// check here is a plain membership test.
func RequireCapability(capability string) gin.HandlerFunc {
	return func(c *gin.Context) {
		capsValue, exists := c.Get("user_capabilities")
		if !exists {
			response.Forbidden(c, "Access denied")
			c.Abort()
			return
		}

		capabilities, ok := capsValue.([]string)
		if !ok {
			response.Forbidden(c, "Access denied")
			c.Abort()
			return
		}

		for _, granted := range capabilities {
			if granted == capability {
				c.Next()
				return
			}
		}

		response.Forbidden(c, "You do not have permission to perform this action")
		c.Abort()
	}
}
