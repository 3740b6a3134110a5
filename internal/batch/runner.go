package batch

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/minewise/pitpixie/internal/session"
	"github.com/minewise/pitpixie/pkg/log"
)

// Mode selects the artifact format of a batch run.
type Mode string

const (
	// ModeText writes one plain-text file per question.
	ModeText Mode = "text"
	// ModeJSON writes one consolidated structured document.
	ModeJSON Mode = "json"
)

const JSONFileName = "batch_responses.json"

func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(s)) {
	case ModeText:
		return ModeText, nil
	case ModeJSON:
		return ModeJSON, nil
	default:
		return "", fmt.Errorf("unknown batch mode %q (want text or json)", s)
	}
}

// Record is one processed question in the structured document.
type Record struct {
	Prompt     string   `json:"prompt"`
	Answer     string   `json:"answer"`
	References []string `json:"references"`
}

// Document is the consolidated structured batch output.
type Document struct {
	Responses []Record `json:"responses"`
}

// Runner drives one shared session over an ordered question list, so later
// questions see earlier turns as conversational context.
type Runner struct {
	session *session.Session
	outDir  string
	limit   int
}

// NewRunner creates a batch runner writing artifacts under outDir. A limit
// of zero processes every question.
func NewRunner(sess *session.Session, outDir string, limit int) *Runner {
	return &Runner{
		session: sess,
		outDir:  outDir,
		limit:   limit,
	}
}

func (r *Runner) Run(ctx context.Context, questionsPath string, mode Mode) error {
	logger := log.FromCtx(ctx)

	questions, err := LoadQuestions(questionsPath)
	if err != nil {
		return fmt.Errorf("load questions: %w", err)
	}
	if r.limit > 0 && len(questions) > r.limit {
		questions = questions[:r.limit]
	}
	if len(questions) == 0 {
		return fmt.Errorf("no questions found in %s", questionsPath)
	}

	if err := os.MkdirAll(r.outDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	var records []Record
	for idx, question := range questions {
		logger.Info().Int("n", idx+1).Str("question", question).Msg("processing question")

		answer, pairs, err := r.session.AskWithSources(ctx, question)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			// One failing question must not abort the run.
			logger.Error().Err(err).Int("n", idx+1).Msg("question failed, continuing")
			continue
		}

		switch mode {
		case ModeText:
			if err := r.writeTextArtifact(idx+1, question, answer); err != nil {
				return err
			}
		case ModeJSON:
			records = append(records, Record{
				Prompt:     question,
				Answer:     answer,
				References: session.References(pairs),
			})
		}
	}

	if mode == ModeJSON {
		return r.writeJSONArtifact(records)
	}
	return nil
}

func (r *Runner) writeTextArtifact(n int, question, answer string) error {
	content := fmt.Sprintf("Question: %s\n\nResponse:\n%s\n", question, answer)
	path := filepath.Join(r.outDir, fmt.Sprintf("response_%02d.txt", n))
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func (r *Runner) writeJSONArtifact(records []Record) error {
	if records == nil {
		records = []Record{}
	}
	data, err := json.MarshalIndent(Document{Responses: records}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	path := filepath.Join(r.outDir, JSONFileName)
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// LoadQuestions reads a newline-delimited question list, trimming whitespace
// and skipping blank lines.
func LoadQuestions(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var questions []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		questions = append(questions, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return questions, nil
}
