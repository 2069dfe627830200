package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lojinha/catalog-api/pkg/validation"
)

// Error writes the uniform error body {"error": message}.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// AbortError writes an error body and stops the handler chain. Meant for
// middleware.
func AbortError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

// Invalid reports a failed payload validation with the full list of field
// issues collected from the binding error.
func Invalid(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":  "Invalid payload.",
		"issues": validation.ToIssues(err),
	})
}

// Internal hides the cause behind a generic 500 body.
func Internal(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
