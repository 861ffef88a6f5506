package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/zeebo/errs"
)

// ParseEnv loads configuration from environment variables into target, which
// must be a pointer to a struct with `env` tags.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return errs.New("parse env: %w", err)
	}
	return nil
}
