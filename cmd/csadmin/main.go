package main

import (
	"syscall"

	"github.com/xroadkit/csadmin/internal/clock"
	"github.com/xroadkit/csadmin/internal/config"
	"github.com/xroadkit/csadmin/internal/logger"
	"github.com/xroadkit/csadmin/internal/metrics"
	"github.com/xroadkit/csadmin/internal/registry"
	"github.com/xroadkit/csadmin/internal/server"
	"go.uber.org/fx"
)

func main() {
	// Files created by the service (logs) must not be world-readable.
	syscall.Umask(0o137)

	app := fx.New(
		config.Module,
		logger.Module,
		clock.Module,
		metrics.Module,
		registry.Module,
		server.Module,
	)
	app.Run()
}
