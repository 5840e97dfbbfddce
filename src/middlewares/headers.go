package middlewares

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SecureHeaders(ctx *gin.Context) {
	ctx.Header("X-Content-Type-Options", "nosniff")
	ctx.Header("X-Frame-Options", "DENY")
	ctx.Header("Referrer-Policy", "no-referrer")
}

// CacheControl marks public GET responses as cacheable for maxAge seconds.
func CacheControl(maxAge int) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if ctx.Request.Method == http.MethodGet {
			ctx.Header("Cache-Control", fmt.Sprintf("public, max-age=%d", maxAge))
		}
	}
}
