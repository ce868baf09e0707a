package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	registrydomain "github.com/xroadkit/csadmin/internal/registry/domain"
)

type addSubsystemRequest struct {
	MemberClass   *string `json:"member_class"`
	MemberCode    *string `json:"member_code"`
	SubsystemCode *string `json:"subsystem_code"`
}

func (s *Server) AddSubsystem(c *gin.Context) {
	var req addSubsystemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		req = addSubsystemRequest{}
	}

	if req.MemberClass == nil {
		s.respond(c, http.StatusBadRequest, missingParameter("member_class"))
		return
	}
	if req.MemberCode == nil {
		s.respond(c, http.StatusBadRequest, missingParameter("member_code"))
		return
	}
	if req.SubsystemCode == nil {
		s.respond(c, http.StatusBadRequest, missingParameter("subsystem_code"))
		return
	}

	err := s.registry.AddSubsystem(c.Request.Context(), registrydomain.AddSubsystemRequest{
		MemberClass:   *req.MemberClass,
		MemberCode:    *req.MemberCode,
		SubsystemCode: *req.SubsystemCode,
	})
	if err != nil {
		s.respondError(c, err)
		return
	}

	s.respond(c, http.StatusCreated, response{Code: "CREATED", Msg: "New Subsystem added"})
}
