package main

import (
	"os"
	"os/signal"

	"github.com/minewise/pitpixie/internal/session"
	"github.com/minewise/pitpixie/internal/transport/cli"
	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive grounded Q&A session",
	Long:  `Reads questions from the console, grounds each one in retrieved Pit-Void snippets and prints the model's answer. Type 'exit' or 'quit' to leave.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		sess, appCfg, cleanup := newSession(ctx, session.VariantConversational, "interactive", true)
		defer cleanup()

		chat, err := cli.NewChat(sess, appCfg)
		if err != nil {
			return err
		}
		return chat.Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
