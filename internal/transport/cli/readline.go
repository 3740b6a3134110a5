package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/minewise/pitpixie/internal/config"
	"github.com/minewise/pitpixie/internal/core"
	"github.com/minewise/pitpixie/internal/session"
	"github.com/minewise/pitpixie/internal/ui"
	"github.com/minewise/pitpixie/pkg/log"
)

// Chat is the interactive console transport: reads questions line by line,
// prints branded answers, closes on exit/quit.
type Chat struct {
	cfg     *config.AppConfig
	session *session.Session
	rl      *readline.Instance
}

func NewChat(sess *session.Session, cfg *config.AppConfig) (*Chat, error) {
	if err := os.MkdirAll(cfg.RuntimePath, 0755); err != nil {
		return nil, fmt.Errorf("create runtime directory: %w", err)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "You: ",
		HistoryFile:     filepath.Join(cfg.RuntimePath, "input_history"),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}

	return &Chat{
		cfg:     cfg,
		session: sess,
		rl:      rl,
	}, nil
}

func (c *Chat) Run(ctx context.Context) error {
	defer c.rl.Close()

	out := c.rl.Stdout()
	fmt.Fprintln(out, ui.BannerStyle.Render("Welcome to "+core.PixieName+"!"))
	fmt.Fprintln(out, "You can ask questions about Pit Voids. Type 'exit' to quit.")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := c.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				if len(line) == 0 {
					return nil
				}
				continue
			} else if err == io.EOF {
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if isExit(line) {
			fmt.Fprintln(out, "Good-bye!")
			return nil
		}

		answer, err := c.session.Ask(ctx, line)
		if err != nil {
			log.FromCtx(ctx).Error().Err(err).Msg("turn failed")
			fmt.Fprintf(out, "Error: %v\n", err)
			continue
		}

		fmt.Fprintf(out, "\n%s\n%s\n\n", ui.SpeakerStyle.Render(core.PixieName+":"), answer)
	}
}

// isExit recognises the terminal signal before any retrieval or model call.
func isExit(line string) bool {
	switch strings.ToLower(line) {
	case "exit", "quit":
		return true
	}
	return false
}
