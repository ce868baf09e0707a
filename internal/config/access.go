package config

import (
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// AccessConfig is the client-DN allow-list for the provisioning endpoints.
// A nil AccessConfig means the section is absent from the config file and
// every request is rejected.
type AccessConfig struct {
	AllowAll bool     `mapstructure:"allow_all"`
	Allowed  []string `mapstructure:"allowed"`
}

// AccessHolder keeps the current allow-list and follows config file changes,
// so operators can admit a new client DN without restarting the service.
type AccessHolder struct {
	current atomic.Value // holds *AccessConfig, possibly nil inside accessBox
}

type accessBox struct {
	cfg *AccessConfig
}

// NewAccessHolder loads the access section from the service config file and
// watches the file for updates.
func NewAccessHolder(cfg Config, log *zap.Logger) *AccessHolder {
	holder := &AccessHolder{}
	holder.current.Store(accessBox{})

	v := viper.New()
	v.SetConfigFile(cfg.ConfigFile)

	load := func() {
		if err := v.ReadInConfig(); err != nil {
			log.Warn("access configuration unavailable",
				zap.String("config_file", cfg.ConfigFile),
				zap.Error(err))
			holder.current.Store(accessBox{})
			return
		}
		if !v.IsSet("access") {
			holder.current.Store(accessBox{})
			return
		}
		var access AccessConfig
		if err := v.UnmarshalKey("access", &access); err != nil {
			log.Error("invalid access configuration ignored", zap.Error(err))
			return
		}
		holder.current.Store(accessBox{cfg: &access})
	}

	load()

	v.OnConfigChange(func(e fsnotify.Event) {
		log.Info("reloading access configuration", zap.String("event", e.Name))
		load()
	})
	v.WatchConfig()

	return holder
}

// NewStaticAccessHolder wraps a fixed allow-list; nil rejects everything.
func NewStaticAccessHolder(cfg *AccessConfig) *AccessHolder {
	holder := &AccessHolder{}
	holder.current.Store(accessBox{cfg: cfg})
	return holder
}

// Allowed reports whether the given client DN may call the provisioning
// endpoints. No configuration means no clients are allowed.
func (h *AccessHolder) Allowed(clientDN string) bool {
	box, _ := h.current.Load().(accessBox)
	if box.cfg == nil {
		return false
	}
	if box.cfg.AllowAll {
		return true
	}
	if clientDN == "" {
		return false
	}
	for _, dn := range box.cfg.Allowed {
		if dn == clientDN {
			return true
		}
	}
	return false
}
