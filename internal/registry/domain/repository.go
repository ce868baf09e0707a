package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// Repository exposes the typed registry operations of the direct-SQL backend.
// Callers pass the database handle so the write sequence can run on one
// transaction.
type Repository interface {
	MemberClassID(ctx context.Context, db *gorm.DB, code string) (*int64, error)
	MemberExists(ctx context.Context, db *gorm.DB, memberCode string) (bool, error)
	SubsystemExists(ctx context.Context, db *gorm.DB, memberID int64, subsystemCode string) (bool, error)
	MemberData(ctx context.Context, db *gorm.DB, classID int64, memberCode string) (*MemberData, error)
	InstanceIdentifier(ctx context.Context, db *gorm.DB) (string, error)

	InsertMemberIdentifier(ctx context.Context, db *gorm.DB, memberClass, memberCode string, at time.Time) (int64, error)
	InsertSubsystemIdentifier(ctx context.Context, db *gorm.DB, memberClass, memberCode, subsystemCode string, at time.Time) (int64, error)
	InsertMemberClient(ctx context.Context, db *gorm.DB, memberCode, memberName string, classID, identifierID int64, at time.Time) error
	InsertSubsystemClient(ctx context.Context, db *gorm.DB, subsystemCode string, memberID, identifierID int64, at time.Time) error
	InsertClientName(ctx context.Context, db *gorm.DB, name string, identifierID int64, at time.Time) error
}
