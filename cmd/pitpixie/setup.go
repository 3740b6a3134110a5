package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/minewise/pitpixie/internal/config"
	"github.com/minewise/pitpixie/internal/providers/embedding"
	"github.com/minewise/pitpixie/internal/providers/llm"
	"github.com/minewise/pitpixie/internal/providers/search"
	"github.com/minewise/pitpixie/internal/session"
	"github.com/minewise/pitpixie/internal/storage/sqlite"
	"github.com/minewise/pitpixie/internal/ui"
	"github.com/minewise/pitpixie/pkg/log"
)

// newSession wires configuration, providers and the optional transcript
// store into one conversation session. Required credentials fail fast here,
// before any network call. The returned cleanup must be deferred.
func newSession(ctx context.Context, variant session.Variant, sessionID string, withProgress bool) (*session.Session, *config.AppConfig, func()) {
	logger := log.FromCtx(ctx)

	initEnv(ctx)

	appCfg := config.NewAppConfig(ctx)
	embeddingCfg := config.NewEmbeddingConfig(ctx)
	searchCfg := config.NewSearchConfig(ctx)
	chatCfg := config.NewChatConfig(ctx)

	embedder := embedding.NewClient(embeddingCfg)
	retriever := search.NewClient(searchCfg, embedder)
	provider := llm.NewFoundry(chatCfg)

	cleanup := func() {}
	var store session.TurnStore
	if appCfg.PersistTranscript {
		db, err := sqlite.NewDB(ctx, appCfg.GetDatabasePath())
		if err != nil {
			logger.Warn().Err(err).Msg("transcript store unavailable, continuing without it")
		} else {
			store = sqlite.NewTurnsRepo(db)
			cleanup = func() {
				if err := db.Close(); err != nil {
					logger.Error().Err(err).Msg("failed to close transcript store")
				}
			}
		}
	}

	var progress session.Progress
	if withProgress {
		progress = ui.NewSpinner(os.Stdout)
	}

	sess := session.New(retriever, provider, session.Options{
		SessionID:   sessionID,
		Variant:     variant,
		TopK:        appCfg.TopK,
		MaxTurns:    appCfg.HistoryMaxTurns,
		TokenBudget: appCfg.HistoryTokenBudget,
		Store:       store,
		Progress:    progress,
	})

	return sess, appCfg, cleanup
}

func initEnv(ctx context.Context) {
	logger := log.FromCtx(ctx)

	if _, err := os.Stat(".env"); err != nil {
		return
	}
	if err := godotenv.Load(".env"); err != nil {
		logger.Warn().Err(err).Msg("failed to load .env file")
		return
	}
	logger.Debug().Msg("loaded .env file")
}
