package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/neurobridge-education-mock/internal/http/response"
)

const (
	allowOrigin  = "*"
	allowMethods = "GET, POST, PUT, DELETE, OPTIONS"
	allowHeaders = "Content-Type, Authorization, x-refresh-token"
)

// CORS stamps the permissive CORS headers and the JSON content type on every
// response, and answers any OPTIONS request with an empty 200.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		stampContractHeaders(c.Writer.Header())
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	}
}

func stampContractHeaders(h http.Header) {
	h.Set("Access-Control-Allow-Origin", allowOrigin)
	h.Set("Access-Control-Allow-Methods", allowMethods)
	h.Set("Access-Control-Allow-Headers", allowHeaders)
	h.Set("Content-Type", response.ContentTypeJSON)
}
