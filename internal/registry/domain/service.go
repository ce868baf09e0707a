package domain

import (
	"context"
	"errors"
)

type AddMemberRequest struct {
	MemberClass string
	MemberCode  string
	MemberName  string
}

type AddSubsystemRequest struct {
	MemberClass   string
	MemberCode    string
	SubsystemCode string
}

type StatusResult struct {
	Msg string
}

// Service is the provisioning interface. Two implementations exist: a
// direct-SQL one writing to the registry database, and one forwarding to the
// central management API. The backend is selected at startup.
type Service interface {
	AddMember(ctx context.Context, req AddMemberRequest) error
	AddSubsystem(ctx context.Context, req AddSubsystemRequest) error
	Status(ctx context.Context) (StatusResult, error)
}

var (
	ErrMemberClassNotFound = errors.New("member class not found")
	ErrMemberNotFound      = errors.New("member not found")
	ErrMemberExists        = errors.New("member exists")
	ErrSubsystemExists     = errors.New("subsystem exists")

	// ErrDatabaseConfig signals unreadable or incomplete db.properties; no
	// store operation has been attempted.
	ErrDatabaseConfig = errors.New("cannot access database configuration")

	// ErrDatabase and ErrUpstreamAPI wrap unexpected backend failures; the
	// detail is logged, never returned to the caller.
	ErrDatabase    = errors.New("database error")
	ErrUpstreamAPI = errors.New("upstream api error")
)
