package service

import (
	"context"
	"errors"
	"sync"

	"github.com/xroadkit/csadmin/internal/clock"
	"github.com/xroadkit/csadmin/internal/config"
	"github.com/xroadkit/csadmin/internal/registry/domain"
	"github.com/xroadkit/csadmin/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Connector opens a database handle for the given credentials. Tests swap in
// a connector bound to an in-memory store.
type Connector func(creds db.Credentials) (*gorm.DB, error)

type Params struct {
	fx.In

	Cfg       config.Config
	Log       *zap.Logger
	Clock     clock.Clock
	Repo      domain.Repository
	Connector Connector `optional:"true"`
}

// Service provisions members and subsystems by writing directly to the
// central server registry database.
type Service struct {
	cfg     config.DBConfig
	log     *zap.Logger
	clock   clock.Clock
	repo    domain.Repository
	connect Connector

	mu   sync.Mutex
	gdb  *gorm.DB
	gdsn string
}

func New(p Params) *Service {
	connect := p.Connector
	if connect == nil {
		cfg := p.Cfg.DB
		connect = func(creds db.Credentials) (*gorm.DB, error) {
			return gorm.Open(db.Dialect(cfg.Host, cfg.Port, creds), &gorm.Config{})
		}
	}
	return &Service{
		cfg:     p.Cfg.DB,
		log:     p.Log.Named("registry.service"),
		clock:   p.Clock,
		repo:    p.Repo,
		connect: connect,
	}
}

func (s *Service) AddMember(ctx context.Context, req domain.AddMemberRequest) error {
	gdb, err := s.resolve()
	if err != nil {
		return err
	}

	err = gdb.Transaction(func(tx *gorm.DB) error {
		classID, err := s.repo.MemberClassID(ctx, tx, req.MemberClass)
		if err != nil {
			return err
		}
		if classID == nil {
			return domain.ErrMemberClassNotFound
		}

		exists, err := s.repo.MemberExists(ctx, tx, req.MemberCode)
		if err != nil {
			return err
		}
		if exists {
			return domain.ErrMemberExists
		}

		// One timestamp for every row of this call.
		now := s.clock.Now()

		identifierID, err := s.repo.InsertMemberIdentifier(ctx, tx, req.MemberClass, req.MemberCode, now)
		if err != nil {
			return err
		}
		if err := s.repo.InsertMemberClient(ctx, tx, req.MemberCode, req.MemberName, *classID, identifierID, now); err != nil {
			return err
		}
		return s.repo.InsertClientName(ctx, tx, req.MemberName, identifierID, now)
	})
	if err != nil {
		return s.classify(err, domain.ErrMemberExists, zap.String("member_class", req.MemberClass), zap.String("member_code", req.MemberCode))
	}

	s.log.Info("added new member",
		zap.String("member_code", req.MemberCode),
		zap.String("member_name", req.MemberName),
		zap.String("member_class", req.MemberClass),
	)
	return nil
}

func (s *Service) AddSubsystem(ctx context.Context, req domain.AddSubsystemRequest) error {
	gdb, err := s.resolve()
	if err != nil {
		return err
	}

	err = gdb.Transaction(func(tx *gorm.DB) error {
		classID, err := s.repo.MemberClassID(ctx, tx, req.MemberClass)
		if err != nil {
			return err
		}
		if classID == nil {
			return domain.ErrMemberClassNotFound
		}

		member, err := s.repo.MemberData(ctx, tx, *classID, req.MemberCode)
		if err != nil {
			return err
		}
		if member == nil {
			return domain.ErrMemberNotFound
		}

		exists, err := s.repo.SubsystemExists(ctx, tx, member.ID, req.SubsystemCode)
		if err != nil {
			return err
		}
		if exists {
			return domain.ErrSubsystemExists
		}

		now := s.clock.Now()

		identifierID, err := s.repo.InsertSubsystemIdentifier(ctx, tx, req.MemberClass, req.MemberCode, req.SubsystemCode, now)
		if err != nil {
			return err
		}
		if err := s.repo.InsertSubsystemClient(ctx, tx, req.SubsystemCode, member.ID, identifierID, now); err != nil {
			return err
		}
		// The subsystem's name row carries the parent member's name.
		return s.repo.InsertClientName(ctx, tx, member.Name, identifierID, now)
	})
	if err != nil {
		return s.classify(err, domain.ErrSubsystemExists,
			zap.String("member_class", req.MemberClass),
			zap.String("member_code", req.MemberCode),
			zap.String("subsystem_code", req.SubsystemCode),
		)
	}

	s.log.Info("added new subsystem",
		zap.String("member_class", req.MemberClass),
		zap.String("member_code", req.MemberCode),
		zap.String("subsystem_code", req.SubsystemCode),
	)
	return nil
}

func (s *Service) Status(ctx context.Context) (domain.StatusResult, error) {
	gdb, err := s.resolve()
	if err != nil {
		return domain.StatusResult{}, err
	}

	if _, err := s.repo.InstanceIdentifier(ctx, gdb); err != nil {
		s.log.Error("status probe failed", zap.Error(err))
		return domain.StatusResult{}, domain.ErrDatabase
	}

	return domain.StatusResult{Msg: "Database is ready"}, nil
}

// resolve re-reads db.properties on every call, so credential rotation needs
// no restart. The connection is cached until the credentials change.
func (s *Service) resolve() (*gorm.DB, error) {
	creds := db.LoadCredentials(s.cfg.PropertiesFile)
	if !creds.Complete() {
		s.log.Error("cannot access database configuration",
			zap.String("properties_file", s.cfg.PropertiesFile))
		return nil, domain.ErrDatabaseConfig
	}

	dsn := db.DSN(s.cfg.Host, s.cfg.Port, creds)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gdb != nil && s.gdsn == dsn {
		return s.gdb, nil
	}

	gdb, err := s.connect(creds)
	if err != nil {
		s.log.Error("cannot connect to registry database", zap.Error(err))
		return nil, domain.ErrDatabase
	}

	s.gdb = gdb
	s.gdsn = dsn
	return gdb, nil
}

// classify separates business-rule rejections from unexpected store errors.
// Duplicate-key violations from the inserts are the authoritative conflict
// signal when concurrent requests slip past the existence pre-check.
func (s *Service) classify(err error, conflict error, fields ...zap.Field) error {
	switch {
	case errors.Is(err, domain.ErrMemberClassNotFound),
		errors.Is(err, domain.ErrMemberNotFound),
		errors.Is(err, domain.ErrMemberExists),
		errors.Is(err, domain.ErrSubsystemExists):
		s.log.Warn(err.Error(), fields...)
		return err
	case db.IsDuplicateKeyErr(err):
		s.log.Warn("conflicting row already present", append(fields, zap.Error(err))...)
		return conflict
	default:
		s.log.Error("unclassified database error", append(fields, zap.Error(err))...)
		return domain.ErrDatabase
	}
}
