package utils

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	Info(handlerName+": "+message, ctx)
}
