package config

import (
	"context"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/minewise/pitpixie/pkg/log"
)

type AppConfig struct {
	RuntimePath   string `env:"PIXIE_RUNTIME_PATH" envDefault:".pitpixie"`
	OutputsPath   string `env:"PIXIE_OUTPUTS_PATH" envDefault:"outputs"`
	QuestionsPath string `env:"PIXIE_QUESTIONS_PATH" envDefault:"questions.txt"`

	// Retrieval fan-out per turn.
	TopK int `env:"PIXIE_TOP_K" envDefault:"10"`

	// Prompt window over conversation history. Full history stays in memory;
	// only the window is serialized into prompts.
	HistoryMaxTurns    int `env:"PIXIE_HISTORY_MAX_TURNS" envDefault:"30"`
	HistoryTokenBudget int `env:"PIXIE_HISTORY_TOKEN_BUDGET" envDefault:"6000"`

	// Persist completed turns to the transcript database.
	PersistTranscript bool `env:"PIXIE_PERSIST_TRANSCRIPT" envDefault:"true"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}

func (c AppConfig) GetDatabasePath() string {
	return filepath.Join(c.RuntimePath, "pitpixie.db")
}
