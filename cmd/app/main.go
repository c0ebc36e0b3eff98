package main

import (
	"os"

	"tzresolve/config"
	"tzresolve/di"
	"tzresolve/shared/logger"
	"tzresolve/shared/timezone"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.SetOutput(cfg, os.Stdout)
	logger.SetLogLevel(cfg)

	// An unreadable zone is logged and leaves the clock on UTC.
	_ = timezone.InitAppZone(di.InitializeResolver(), cfg.App.Timezone)

	http := di.InitializeService()
	http.Serve()
}
