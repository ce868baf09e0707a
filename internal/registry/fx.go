package registry

import (
	"github.com/xroadkit/csadmin/internal/clock"
	"github.com/xroadkit/csadmin/internal/config"
	"github.com/xroadkit/csadmin/internal/registry/domain"
	"github.com/xroadkit/csadmin/internal/registry/remote"
	"github.com/xroadkit/csadmin/internal/registry/repository"
	"github.com/xroadkit/csadmin/internal/registry/service"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Cfg   config.Config
	Log   *zap.Logger
	Clock clock.Clock
	Repo  domain.Repository
}

// ProvideService selects the provisioning backend at startup.
func ProvideService(p Params) domain.Service {
	if p.Cfg.Backend == config.BackendAPI {
		p.Log.Info("using management API backend", zap.String("api_url", p.Cfg.API.URL))
		return remote.New(p.Cfg.API, p.Log)
	}

	p.Log.Info("using direct database backend",
		zap.String("properties_file", p.Cfg.DB.PropertiesFile))
	return service.New(service.Params{
		Cfg:   p.Cfg,
		Log:   p.Log,
		Clock: p.Clock,
		Repo:  p.Repo,
	})
}

var Module = fx.Module("registry",
	fx.Provide(repository.Provide),
	fx.Provide(ProvideService),
)
