package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/neurobridge-education-mock/internal/http/handlers"
	httpMW "github.com/yungbote/neurobridge-education-mock/internal/http/middleware"
	"github.com/yungbote/neurobridge-education-mock/internal/platform/logger"
)

type RouterConfig struct {
	Log              *logger.Logger
	ServiceName      string
	EducationHandler *httpH.EducationHandler
}

// NewRouter builds the route table. Paths match exactly: trailing-slash and
// case-fixing redirects are off so unknown spellings fall through to 404.
func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false
	r.HandleMethodNotAllowed = false

	r.Use(httpMW.Recovery(cfg.Log))
	if cfg.ServiceName != "" {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.RequestDiagnostics(cfg.Log))
	r.Use(httpMW.CORS())

	api := r.Group("/api")
	{
		if cfg.EducationHandler != nil {
			api.GET("/chapters", cfg.EducationHandler.ListChapters)
			api.POST("/theory/enter", cfg.EducationHandler.EnterTheory)
		}
	}

	r.NoRoute(httpH.NotFound(cfg.Log))

	return r
}
