package handler

import (
	"net/http"
	"os"

	"tzresolve/config"
	"tzresolve/di"
	"tzresolve/shared/logger"
	"tzresolve/shared/timezone"
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger()
	logger.SetOutput(cfg, os.Stdout)
	logger.SetLogLevel(cfg)

	_ = timezone.InitAppZone(di.InitializeResolver(), cfg.App.Timezone)

	handler := di.InitializeService()
	handler.ServeHTTP(w, r)
}
