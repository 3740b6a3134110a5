package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/minewise/pitpixie/pkg/log"
)

type ChatConfig struct {
	// Full URL of the chat-completions deployment.
	Endpoint            string `env:"FOUNDRY_ENDPOINT,required,notEmpty"`
	APIKey              string `env:"FOUNDRY_KEY,required,notEmpty"`
	MaxCompletionTokens int    `env:"FOUNDRY_MAX_COMPLETION_TOKENS" envDefault:"1024"`
}

func NewChatConfig(ctx context.Context) *ChatConfig {
	c := &ChatConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Chat config")
	}
	return c
}
