package mw

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MaxBodyBytes caps the size of accepted request bodies. Reads past the
// limit fail, which surfaces as a form parse error in the handler.
func MaxBodyBytes(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		c.Next()
	}
}
