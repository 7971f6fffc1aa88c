package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/neurobridge-education-mock/internal/http/response"
	"github.com/yungbote/neurobridge-education-mock/internal/platform/apierr"
	"github.com/yungbote/neurobridge-education-mock/internal/platform/ctxutil"
	"github.com/yungbote/neurobridge-education-mock/internal/platform/logger"
)

// NotFound answers every method/path pair outside the route table.
func NotFound(log *logger.Logger) gin.HandlerFunc {
	if log == nil {
		log = logger.NewNop()
	}
	return func(c *gin.Context) {
		fields := append([]interface{}{"method", c.Request.Method, "path", c.Request.URL.Path},
			ctxutil.GetTraceData(c.Request.Context()).LogFields()...)
		log.Warn("route not found", fields...)
		response.RespondError(c, apierr.NotFound())
	}
}
