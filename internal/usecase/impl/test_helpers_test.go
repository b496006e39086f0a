package impl

import (
	"io"
	"log/slog"
	"time"

	"givebox/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:     12,
			AccessTokenTTL: 15 * time.Minute,
		},
		OTP: &config.OTPConfig{
			TTL: 5 * time.Minute,
		},
	}
}
