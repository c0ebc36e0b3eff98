package logger_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"tzresolve/config"
	"tzresolve/shared/logger"
)

func TestInitLogger(t *testing.T) {
	originalLogger := log.Logger
	defer func() { log.Logger = originalLogger }()

	logger.InitLogger()

	if zerolog.TimeFieldFormat != zerolog.TimeFormatUnix {
		t.Errorf("expected TimeFieldFormat to be %s, got %s", zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
	}

	if zerolog.GlobalLevel() != zerolog.TraceLevel {
		t.Errorf("expected global level to be %s, got %s", zerolog.TraceLevel, zerolog.GlobalLevel())
	}
}

func TestErrorWithStack(t *testing.T) {
	originalLogger := log.Logger
	defer func() { log.Logger = originalLogger }()

	var buf bytes.Buffer
	log.Logger = log.Output(&buf)

	logger.ErrorWithStack(errors.New(`timezone "Not/AZone" can not be read`))

	if !strings.Contains(buf.String(), "Not/AZone") {
		t.Errorf("expected log output to contain the zone name, got %q", buf.String())
	}
}

func TestSetLogLevel(t *testing.T) {
	originalLevel := zerolog.GlobalLevel()
	defer zerolog.SetGlobalLevel(originalLevel)

	tests := []struct {
		name          string
		logLevel      string
		expectedLevel zerolog.Level
	}{
		{name: "debug level", logLevel: "debug", expectedLevel: zerolog.DebugLevel},
		{name: "info level", logLevel: "info", expectedLevel: zerolog.InfoLevel},
		{name: "error level", logLevel: "error", expectedLevel: zerolog.ErrorLevel},
		{name: "invalid level defaults to trace", logLevel: "invalid_level", expectedLevel: zerolog.TraceLevel},
		{name: "empty level uses NoLevel", logLevel: "", expectedLevel: zerolog.NoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Server.LogLevel = tt.logLevel

			logger.SetLogLevel(cfg)

			if zerolog.GlobalLevel() != tt.expectedLevel {
				t.Errorf("expected global level to be %s, got %s", tt.expectedLevel, zerolog.GlobalLevel())
			}
		})
	}
}

func TestSetOutput(t *testing.T) {
	originalLogger := log.Logger
	originalTimeFormat := zerolog.TimeFieldFormat
	originalLevel := zerolog.GlobalLevel()

	defer func() {
		log.Logger = originalLogger
		zerolog.TimeFieldFormat = originalTimeFormat
		zerolog.SetGlobalLevel(originalLevel)
	}()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	t.Run("development keeps console output", func(t *testing.T) {
		var buf bytes.Buffer
		log.Logger = log.Output(&buf)

		cfg := &config.Config{}
		cfg.Server.Env = "development"
		logger.SetOutput(cfg, &bytes.Buffer{})

		log.Info().Msg("still here")

		if !strings.Contains(buf.String(), "still here") {
			t.Errorf("expected the original writer to be kept, got %q", buf.String())
		}
	})

	t.Run("production writes json", func(t *testing.T) {
		var buf bytes.Buffer

		cfg := &config.Config{}
		cfg.Server.Env = "production"
		cfg.App.Name = "tzresolve"
		logger.SetOutput(cfg, &buf)

		log.Info().Str("timezone", "UTC").Msg("resolved")

		if !strings.Contains(buf.String(), `"timezone":"UTC"`) || !strings.Contains(buf.String(), `"app":"tzresolve"`) {
			t.Errorf("expected json output with fields, got %q", buf.String())
		}
	})
}
