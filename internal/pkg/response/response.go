// Package response writes the JSON envelope every DealersHub endpoint
// returns: {"success": true, "data": ...} on success and
// {"success": false, "error": {code, message, details?}} on failure. Error
// codes are stable machine-readable strings such as DUPLICATE_LEAD or
// ALREADY_COMPLETED.
package response

import "github.com/gin-gonic/gin"

func Success(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

func Error(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// ErrorWithDetails adds a details object, typically the per-field map from
// request validation.
func ErrorWithDetails(c *gin.Context, statusCode int, code, message string, details any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}
