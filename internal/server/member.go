package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	registrydomain "github.com/xroadkit/csadmin/internal/registry/domain"
)

// Field presence is what matters: an empty string value passes, an absent
// key does not. Checks run in documented order and the first missing key
// short-circuits.
type addMemberRequest struct {
	MemberClass *string `json:"member_class"`
	MemberCode  *string `json:"member_code"`
	MemberName  *string `json:"member_name"`
}

func (s *Server) AddMember(c *gin.Context) {
	var req addMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// An unparseable body is missing every parameter; the first one in
		// the check order wins.
		req = addMemberRequest{}
	}

	if req.MemberClass == nil {
		s.respond(c, http.StatusBadRequest, missingParameter("member_class"))
		return
	}
	if req.MemberCode == nil {
		s.respond(c, http.StatusBadRequest, missingParameter("member_code"))
		return
	}
	if req.MemberName == nil {
		s.respond(c, http.StatusBadRequest, missingParameter("member_name"))
		return
	}

	err := s.registry.AddMember(c.Request.Context(), registrydomain.AddMemberRequest{
		MemberClass: *req.MemberClass,
		MemberCode:  *req.MemberCode,
		MemberName:  *req.MemberName,
	})
	if err != nil {
		s.respondError(c, err)
		return
	}

	s.respond(c, http.StatusCreated, response{Code: "CREATED", Msg: "New Member added"})
}
