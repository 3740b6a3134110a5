package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/minewise/pitpixie/pkg/log"
)

type SearchConfig struct {
	Endpoint       string `env:"SEARCH_ENDPOINT,required,notEmpty"`
	APIKey         string `env:"SEARCH_KEY,required,notEmpty"`
	Index          string `env:"SEARCH_INDEX,required,notEmpty"`
	SemanticConfig string `env:"SEARCH_SEMANTIC_CONFIG"`
	APIVersion     string `env:"SEARCH_API_VERSION" envDefault:"2024-07-01"`
}

func NewSearchConfig(ctx context.Context) *SearchConfig {
	c := &SearchConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Search config")
	}
	return c
}
