package utils

import "github.com/gin-gonic/gin"

// JSONError writes the API's error shape: {"error": "<display message>"}.
// Messages are display text for the UI toast, not machine-readable codes.
func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// JSONMessage writes a confirmation payload: {"message": "<display message>"}.
func JSONMessage(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}
