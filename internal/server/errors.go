package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	registrydomain "github.com/xroadkit/csadmin/internal/registry/domain"
	"go.uber.org/zap"
)

// response is the uniform body of every reply, success or failure.
type response struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
}

func (s *Server) respond(c *gin.Context, status int, resp response) {
	s.log.Info("response",
		zap.Int("http_status", status),
		zap.String("code", resp.Code),
		zap.String("msg", resp.Msg),
	)
	c.JSON(status, resp)
}

func (s *Server) respondError(c *gin.Context, err error) {
	status, resp := mapError(err)
	s.respond(c, status, resp)
}

func missingParameter(name string) response {
	return response{
		Code: "MISSING_PARAMETER",
		Msg:  "Request parameter " + name + " is missing",
	}
}

func mapError(err error) (int, response) {
	switch {
	case errors.Is(err, registrydomain.ErrMemberClassNotFound):
		return http.StatusBadRequest, response{
			Code: "INVALID_MEMBER_CLASS",
			Msg:  "Provided Member Class does not exist",
		}
	case errors.Is(err, registrydomain.ErrMemberNotFound):
		return http.StatusBadRequest, response{
			Code: "INVALID_MEMBER",
			Msg:  "Provided Member does not exist",
		}
	case errors.Is(err, registrydomain.ErrMemberExists):
		return http.StatusConflict, response{
			Code: "MEMBER_EXISTS",
			Msg:  "Provided Member already exists",
		}
	case errors.Is(err, registrydomain.ErrSubsystemExists):
		return http.StatusConflict, response{
			Code: "SUBSYSTEM_EXISTS",
			Msg:  "Provided Subsystem already exists",
		}
	case errors.Is(err, registrydomain.ErrDatabaseConfig):
		return http.StatusInternalServerError, response{
			Code: "DB_CONF_ERROR",
			Msg:  "Cannot access database configuration",
		}
	case errors.Is(err, registrydomain.ErrDatabase):
		return http.StatusInternalServerError, response{
			Code: "DB_ERROR",
			Msg:  "Unclassified database error",
		}
	case errors.Is(err, registrydomain.ErrUpstreamAPI):
		return http.StatusInternalServerError, response{
			Code: "API_ERROR",
			Msg:  "Unclassified API error",
		}
	default:
		return http.StatusInternalServerError, response{
			Code: "INTERNAL_ERROR",
			Msg:  "Internal server error",
		}
	}
}
