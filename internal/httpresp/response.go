package httpresp

import "github.com/gin-gonic/gin"

func OK(c *gin.Context, message string) {
	c.JSON(200, gin.H{
		"success": true,
		"message": message,
	})
}

// OKWith agrega campos propios de la operación al {success, message} base.
func OKWith(c *gin.Context, message string, fields gin.H) {
	payload := gin.H{
		"success": true,
		"message": message,
	}
	for k, v := range fields {
		payload[k] = v
	}
	c.JSON(200, payload)
}
