package httpx

import "github.com/gin-gonic/gin"

// HTTPError represents a standard error in JSON.
// swagger:model
type HTTPError struct {
	// Error message
	// example: not found
	Error string `json:"error"`
}

func JSONError(c *gin.Context, code int, msg string) {
	c.JSON(code, HTTPError{Error: msg})
}
