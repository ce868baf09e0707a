package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetStatus probes backend connectivity. The endpoint carries no access
// control: it reveals readiness only.
func (s *Server) GetStatus(c *gin.Context) {
	result, err := s.registry.Status(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}

	s.respond(c, http.StatusOK, response{Code: "OK", Msg: result.Msg})
}
