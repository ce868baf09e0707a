package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const clientDNHeader = "X-Ssl-Client-S-Dn"

// RequestLogger logs each request with a request ID and safe fields.
func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := ensureRequestID(c)

		c.Next()

		status := c.Writer.Status()
		route := c.FullPath()
		if strings.TrimSpace(route) == "" {
			route = "unknown"
		}
		fields := []zap.Field{
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("route", route),
			zap.Int("status", status),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		}

		if dn := strings.TrimSpace(c.GetHeader(clientDNHeader)); dn != "" {
			fields = append(fields, zap.String("client_dn", dn))
		}

		if status >= http.StatusInternalServerError {
			log.Error("http_request", fields...)
			return
		}
		log.Info("http_request", fields...)
	}
}

func ensureRequestID(c *gin.Context) string {
	requestID := strings.TrimSpace(c.GetHeader("X-Request-Id"))
	if requestID == "" {
		requestID = uuid.NewString()
	}

	c.Set("request_id", requestID)
	c.Header("X-Request-Id", requestID)
	return requestID
}

// RequireAllowedClient gates the provisioning endpoints on the client
// certificate DN forwarded by the TLS terminator. No access configuration
// means every caller is rejected.
func (s *Server) RequireAllowedClient() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientDN := c.GetHeader(clientDNHeader)
		if !s.access.Allowed(clientDN) {
			s.log.Error("client certificate is not allowed", zap.String("client_dn", clientDN))
			c.Abort()
			s.respond(c, http.StatusForbidden, response{
				Code: "FORBIDDEN",
				Msg:  "Client certificate is not allowed: " + clientDN,
			})
			return
		}
		c.Next()
	}
}
