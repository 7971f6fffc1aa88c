package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/yungbote/neurobridge-education-mock/internal/platform/ctxutil"
	"github.com/yungbote/neurobridge-education-mock/internal/platform/logger"
)

// RequestDiagnostics logs the request line and the raw Authorization header
// before routing. Bearer JWTs are decoded without verification so the
// subject and expiry show up in the log; nothing is enforced.
func RequestDiagnostics(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if log == nil {
			c.Next()
			return
		}
		l := log.With(ctxutil.GetTraceData(c.Request.Context()).LogFields()...)
		l.Info("education api request", "method", c.Request.Method, "path", c.Request.URL.Path)

		authz := c.GetHeader("Authorization")
		fields := []interface{}{"authorization", authz, "present", authz != ""}
		fields = append(fields, bearerClaimFields(authz)...)
		l.Info("education api authorization", fields...)

		c.Next()
	}
}

func bearerClaimFields(header string) []interface{} {
	if len(header) <= 7 || !strings.EqualFold(header[:7], "Bearer ") {
		return nil
	}
	raw := strings.TrimSpace(header[7:])
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return []interface{}{"auth_kind", "opaque"}
	}
	out := []interface{}{"auth_kind", "jwt"}
	if sub, err := claims.GetSubject(); err == nil && sub != "" {
		out = append(out, "auth_subject", sub)
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out = append(out, "auth_expires_at", exp.UTC().Format(time.RFC3339), "auth_expired", exp.Before(time.Now()))
	}
	return out
}
