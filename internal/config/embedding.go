package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/minewise/pitpixie/pkg/log"
)

type EmbeddingConfig struct {
	Endpoint   string `env:"OPENAI_ENDPOINT,required,notEmpty"`
	APIKey     string `env:"OPENAI_KEY,required,notEmpty"`
	Deployment string `env:"EMBEDDING_DEPLOYMENT,required,notEmpty" envDefault:"text-embedding-3-small"`
	APIVersion string `env:"OPENAI_API_VERSION" envDefault:"2024-02-15-preview"`
}

func NewEmbeddingConfig(ctx context.Context) *EmbeddingConfig {
	c := &EmbeddingConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Embedding config")
	}
	return c
}
