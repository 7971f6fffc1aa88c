package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/yungbote/neurobridge-education-mock/internal/domain/education"
	"github.com/yungbote/neurobridge-education-mock/internal/http/response"
	"github.com/yungbote/neurobridge-education-mock/internal/platform/apierr"
	"github.com/yungbote/neurobridge-education-mock/internal/platform/ctxutil"
	"github.com/yungbote/neurobridge-education-mock/internal/platform/logger"
)

type EducationHandler struct {
	log             *logger.Logger
	catalog         *education.Catalog
	maxRequestBytes int64
}

type EducationHandlerDeps struct {
	Log             *logger.Logger
	Catalog         *education.Catalog
	MaxRequestBytes int64
}

func NewEducationHandler(deps EducationHandlerDeps) *EducationHandler {
	log := deps.Log
	if log == nil {
		log = logger.NewNop()
	}
	return &EducationHandler{
		log:             log.With("handler", "EducationHandler"),
		catalog:         deps.Catalog,
		maxRequestBytes: deps.MaxRequestBytes,
	}
}

type enterTheoryRequest struct {
	ChapterID *int `json:"chapterId" binding:"required"`
}

// GET /api/chapters
func (h *EducationHandler) ListChapters(c *gin.Context) {
	chapters := h.catalog.Chapters()
	h.reqLog(c).Info("chapter list requested", "count", len(chapters))
	response.RespondOK(c, chapters)
}

// POST /api/theory/enter
func (h *EducationHandler) EnterTheory(c *gin.Context) {
	log := h.reqLog(c)

	if h.maxRequestBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxRequestBytes)
	}
	body, err := c.GetRawData()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			log.Warn("theory enter body too large", "limit", tooLarge.Limit)
			response.RespondError(c, apierr.BodyTooLarge(tooLarge.Limit))
			return
		}
		log.Warn("theory enter body read failed", "error", err)
		response.RespondError(c, apierr.MalformedBody(err))
		return
	}
	log.Info("theory enter requested", "body", string(body))

	// The binder stops after the first JSON value; trailing data is still malformed.
	if !json.Valid(body) {
		err := errors.New("request body is not a single valid JSON value")
		log.Warn("theory enter body rejected", "error", err)
		response.RespondError(c, apierr.MalformedBody(err))
		return
	}

	var req enterTheoryRequest
	if err := binding.JSON.BindBody(body, &req); err != nil {
		log.Warn("theory enter body rejected", "error", err)
		response.RespondError(c, apierr.MalformedBody(err))
		return
	}

	bundle := h.catalog.EnterTheory(*req.ChapterID)
	log.Info("theory data returned", "chapter_id", bundle.ChapterID, "theories", len(bundle.Theories))
	response.RespondOK(c, bundle)
}

func (h *EducationHandler) reqLog(c *gin.Context) *logger.Logger {
	return h.log.With(ctxutil.GetTraceData(c.Request.Context()).LogFields()...)
}
