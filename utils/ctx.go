package utils

import "github.com/gin-gonic/gin"

func CurrentPhone(c *gin.Context) string {
	if v, ok := c.Get("phone"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func CurrentName(c *gin.Context) string {
	if v, ok := c.Get("name"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
