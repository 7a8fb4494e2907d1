package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/akosiano1/itpm-proj/pkg/utils"
)

// GetUserID extracts the user ID from the Gin context
func GetUserID(c *gin.Context) *uuid.UUID {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &userID
}

// GetUserEmail extracts the user email from the Gin context
func GetUserEmail(c *gin.Context) string {
	email, exists := c.Get("user_email")
	if !exists {
		return ""
	}
	return email.(string)
}

// GetUserRole extracts the user role from the Gin context
func GetUserRole(c *gin.Context) string {
	role, exists := c.Get("user_role")
	if !exists {
		return ""
	}
	return role.(string)
}

// GetUserCapabilities extracts the user capabilities from the Gin context
func GetUserCapabilities(c *gin.Context) []string {
	caps, exists := c.Get("user_capabilities")
	if !exists {
		return nil
	}
	return caps.([]string)
}

// parseIDParam parses a UUID path parameter, returning uuid.Nil when the
// value is not a valid UUID.
func parseIDParam(c *gin.Context, name string) uuid.UUID {
	id, err := utils.ParseUUID(c.Param(name))
	if err != nil {
		return uuid.Nil
	}
	return id
}
