package response

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/neurobridge-education-mock/internal/platform/apierr"
)

// ContentTypeJSON is sent verbatim; clients of the mock compare it exactly,
// so gin's "; charset=utf-8" suffix is not used.
const ContentTypeJSON = "application/json"

// ErrorEnvelope is the body of every non-2xx response. A bare route miss
// renders as {"error":"Not Found"}.
type ErrorEnvelope struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

func RespondOK(c *gin.Context, payload any) {
	writeJSON(c, http.StatusOK, payload)
}

// RespondError renders err as an ErrorEnvelope and aborts the chain.
func RespondError(c *gin.Context, err error) {
	ae := apierr.From(err)
	if ae == nil {
		ae = apierr.Internal()
	}
	status := ae.Status
	if status == 0 {
		status = http.StatusInternalServerError
	}
	env := ErrorEnvelope{
		Error: http.StatusText(status),
		Code:  ae.Code,
	}
	if ae.Err != nil && status < http.StatusInternalServerError {
		env.Message = ae.Err.Error()
	}
	writeJSON(c, status, env)
	c.Abort()
}

func writeJSON(c *gin.Context, status int, payload any) {
	b, err := json.Marshal(payload)
	if err != nil {
		_ = c.Error(err)
		status = http.StatusInternalServerError
		b = []byte(`{"error":"Internal Server Error","code":"internal"}`)
	}
	c.Data(status, ContentTypeJSON, b)
}
