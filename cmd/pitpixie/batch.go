package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/minewise/pitpixie/internal/batch"
	"github.com/minewise/pitpixie/internal/session"
	"github.com/spf13/cobra"
)

var (
	batchFormat    string
	batchLimit     int
	batchVariant   string
	batchQuestions string
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Answer a question list and write artifacts",
	Long:  `Feeds a newline-delimited question file through one shared session, so later questions see earlier answers as context. Writes per-question text files or one consolidated JSON document.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		mode, err := batch.ParseMode(batchFormat)
		if err != nil {
			return err
		}
		variant, err := parseVariant(batchVariant)
		if err != nil {
			return err
		}

		sess, appCfg, cleanup := newSession(ctx, variant, "batch", true)
		defer cleanup()

		questions := batchQuestions
		if questions == "" {
			questions = appCfg.QuestionsPath
		}

		runner := batch.NewRunner(sess, appCfg.OutputsPath, batchLimit)
		return runner.Run(ctx, questions, mode)
	},
}

func parseVariant(s string) (session.Variant, error) {
	switch s {
	case "conversational":
		return session.VariantConversational, nil
	case "concise":
		return session.VariantConcise, nil
	default:
		return 0, fmt.Errorf("unknown variant %q (want conversational or concise)", s)
	}
}

func init() {
	batchCmd.Flags().StringVarP(&batchFormat, "format", "f", "json", "artifact format: text or json")
	batchCmd.Flags().IntVarP(&batchLimit, "limit", "n", 0, "max questions to process (0 = all)")
	batchCmd.Flags().StringVar(&batchVariant, "variant", "concise", "instruction variant: conversational or concise")
	batchCmd.Flags().StringVarP(&batchQuestions, "questions", "q", "", "question file (default from config)")
	rootCmd.AddCommand(batchCmd)
}
