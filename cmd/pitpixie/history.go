package main

import (
	"fmt"
	"strings"

	"github.com/minewise/pitpixie/internal/config"
	"github.com/minewise/pitpixie/internal/storage/sqlite"
	"github.com/spf13/cobra"
)

var (
	historySession string
	historyLimit   int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent turns from the transcript store",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		appCfg := config.NewAppConfig(ctx)

		db, err := sqlite.NewDB(ctx, appCfg.GetDatabasePath())
		if err != nil {
			return fmt.Errorf("open transcript store: %w", err)
		}
		defer db.Close()

		turns, err := sqlite.NewTurnsRepo(db).Recent(ctx, historySession, historyLimit)
		if err != nil {
			return err
		}
		if len(turns) == 0 {
			fmt.Printf("no recorded turns for session %q\n", historySession)
			return nil
		}

		for _, turn := range turns {
			fmt.Printf("[%s] You: %s\n", turn.CreatedAt.Format("2006-01-02 15:04"), turn.Question)
			fmt.Printf("PitPixie: %s\n", turn.Answer)
			if len(turn.References) > 0 {
				fmt.Printf("References: %s\n", strings.Join(turn.References, "; "))
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().StringVarP(&historySession, "session", "s", "interactive", "session id to show")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "max turns to show")
	rootCmd.AddCommand(historyCmd)
}
