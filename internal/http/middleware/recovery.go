package middleware

import (
	"io"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/neurobridge-education-mock/internal/http/response"
	"github.com/yungbote/neurobridge-education-mock/internal/platform/apierr"
	"github.com/yungbote/neurobridge-education-mock/internal/platform/ctxutil"
	"github.com/yungbote/neurobridge-education-mock/internal/platform/logger"
)

// Recovery turns a panic anywhere later in the chain into a 500 JSON envelope.
// The CORS headers are stamped here too, since the panic may fire before CORS ran.
func Recovery(log *logger.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, rec any) {
		if log != nil {
			fields := []interface{}{
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"panic", rec,
				"stack", string(debug.Stack()),
			}
			fields = append(fields, ctxutil.GetTraceData(c.Request.Context()).LogFields()...)
			log.Error("panic recovered", fields...)
		}
		stampContractHeaders(c.Writer.Header())
		response.RespondError(c, apierr.Internal())
	})
}
