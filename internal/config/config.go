// Package config loads server settings from the environment.
package config

import (
	"github.com/caarlos0/env/v11"

	"github.com/noctale/noctale/internal/errors"
)

// Config holds every server setting.
type Config struct {
	// HTTPAddr is the listen address of the API server.
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`

	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`

	AniListURL string `env:"ANILIST_URL" envDefault:"https://graphql.anilist.co"`

	// TokenSecret enables bearer auth when set. Empty runs the API
	// open, for local development only.
	TokenSecret string `env:"TOKEN_SECRET"`
	TokenIssuer string `env:"TOKEN_ISSUER" envDefault:"noctale"`

	// GachaEnabled gates the pull engine.
	GachaEnabled bool `env:"GACHA_ENABLED" envDefault:"true"`
	// EventBoost switches pulls to the boosted rate tables.
	EventBoost bool `env:"EVENT_BOOST"`
	// CommunityPacks gates per-guild pack installs.
	CommunityPacks bool `env:"COMMUNITY_PACKS" envDefault:"true"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse environment")
	}
	return &cfg, nil
}
