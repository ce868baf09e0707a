package repository

import (
	"context"
	"time"

	"github.com/xroadkit/csadmin/internal/registry/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) MemberClassID(ctx context.Context, db *gorm.DB, code string) (*int64, error) {
	var row struct{ ID int64 }
	err := db.WithContext(ctx).Raw(
		`select id from member_classes where code = ?`,
		code,
	).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == 0 {
		return nil, nil
	}
	return &row.ID, nil
}

func (r *repo) MemberExists(ctx context.Context, db *gorm.DB, memberCode string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Raw(
		`select count(1) from security_server_clients
		 where type = 'XRoadMember' and member_code = ?`,
		memberCode,
	).Scan(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repo) SubsystemExists(ctx context.Context, db *gorm.DB, memberID int64, subsystemCode string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Raw(
		`select count(1) from security_server_clients
		 where type = 'Subsystem' and xroad_member_id = ? and subsystem_code = ?`,
		memberID,
		subsystemCode,
	).Scan(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repo) MemberData(ctx context.Context, db *gorm.DB, classID int64, memberCode string) (*domain.MemberData, error) {
	var row domain.MemberData
	err := db.WithContext(ctx).Raw(
		`select id, name from security_server_clients
		 where type = 'XRoadMember' and member_class_id = ? and member_code = ?`,
		classID,
		memberCode,
	).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == 0 {
		return nil, nil
	}
	return &row, nil
}

func (r *repo) InstanceIdentifier(ctx context.Context, db *gorm.DB) (string, error) {
	var row struct{ Value string }
	err := db.WithContext(ctx).Raw(
		`select value from system_parameters where key = ?`,
		domain.InstanceIdentifierKey,
	).Scan(&row).Error
	if err != nil {
		return "", err
	}
	return row.Value, nil
}

func (r *repo) InsertMemberIdentifier(ctx context.Context, db *gorm.DB, memberClass, memberCode string, at time.Time) (int64, error) {
	var row struct{ ID int64 }
	err := db.WithContext(ctx).Raw(
		`insert into identifiers (
		     object_type, xroad_instance, member_class, member_code, type, created_at, updated_at
		 ) values (
		     'MEMBER', (select value from system_parameters where key='instanceIdentifier'),
		     ?, ?, 'ClientId', ?, ?
		 ) returning id`,
		memberClass,
		memberCode,
		at,
		at,
	).Scan(&row).Error
	if err != nil {
		return 0, err
	}
	return row.ID, nil
}

func (r *repo) InsertSubsystemIdentifier(ctx context.Context, db *gorm.DB, memberClass, memberCode, subsystemCode string, at time.Time) (int64, error) {
	var row struct{ ID int64 }
	err := db.WithContext(ctx).Raw(
		`insert into identifiers (
		     object_type, xroad_instance, member_class, member_code, subsystem_code, type,
		     created_at, updated_at
		 ) values (
		     'SUBSYSTEM', (select value from system_parameters where key='instanceIdentifier'),
		     ?, ?, ?, 'ClientId', ?, ?
		 ) returning id`,
		memberClass,
		memberCode,
		subsystemCode,
		at,
		at,
	).Scan(&row).Error
	if err != nil {
		return 0, err
	}
	return row.ID, nil
}

func (r *repo) InsertMemberClient(ctx context.Context, db *gorm.DB, memberCode, memberName string, classID, identifierID int64, at time.Time) error {
	return db.WithContext(ctx).Exec(
		`insert into security_server_clients (
		     member_code, name, member_class_id, server_client_id, type, created_at, updated_at
		 ) values (?, ?, ?, ?, 'XRoadMember', ?, ?)`,
		memberCode,
		memberName,
		classID,
		identifierID,
		at,
		at,
	).Error
}

func (r *repo) InsertSubsystemClient(ctx context.Context, db *gorm.DB, subsystemCode string, memberID, identifierID int64, at time.Time) error {
	return db.WithContext(ctx).Exec(
		`insert into security_server_clients (
		     subsystem_code, xroad_member_id, server_client_id, type, created_at, updated_at
		 ) values (?, ?, ?, 'Subsystem', ?, ?)`,
		subsystemCode,
		memberID,
		identifierID,
		at,
		at,
	).Error
}

func (r *repo) InsertClientName(ctx context.Context, db *gorm.DB, name string, identifierID int64, at time.Time) error {
	return db.WithContext(ctx).Exec(
		`insert into security_server_client_names (
		     name, client_identifier_id, created_at, updated_at
		 ) values (?, ?, ?, ?)`,
		name,
		identifierID,
		at,
		at,
	).Error
}
