package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/minewise/pitpixie/internal/config"
	"github.com/minewise/pitpixie/internal/core"
	"github.com/minewise/pitpixie/pkg/log"
)

// UnexpectedResponseSentinel is returned in place of an answer when the
// upstream replies 200 but the body does not carry a completion. A single odd
// response must not abort a whole session.
const UnexpectedResponseSentinel = "Received unexpected response format from Azure OpenAI."

const systemPrompt = "You are an AI assistant that analyses Pit-Void data."

// Foundry is a client for an Azure-OpenAI-style chat-completions deployment.
// The configured endpoint is the full completions URL.
type Foundry struct {
	base                baseProvider
	maxCompletionTokens int
}

func NewFoundry(cfg *config.ChatConfig) *Foundry {
	return &Foundry{
		base:                newBaseProvider(strings.TrimRight(cfg.Endpoint, "/"), cfg.APIKey, 300*time.Second),
		maxCompletionTokens: cfg.MaxCompletionTokens,
	}
}

func (f *Foundry) Complete(ctx context.Context, prompt string) (string, error) {
	payload := map[string]any{
		"messages": []core.Message{
			{Role: core.RoleSystem, Content: systemPrompt},
			{Role: core.RoleUser, Content: prompt},
		},
		// o-series deployments reject max_tokens
		"max_completion_tokens": f.maxCompletionTokens,
	}
	headers := map[string]string{
		"api-key": f.base.apiKey,
	}

	resp, err := f.base.doRequest(ctx, http.MethodPost, "", payload, headers)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		// Surface the raw error body; 400s from these deployments are
		// undiagnosable without it.
		log.FromCtx(ctx).Error().
			Int("status", resp.StatusCode).
			Str("body", string(data)).
			Msg("chat completion request failed")
		return "", fmt.Errorf("http %d: %s", resp.StatusCode, string(data))
	}

	var result struct {
		Choices []struct {
			Message core.Message `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return UnexpectedResponseSentinel, nil
	}
	if len(result.Choices) == 0 {
		return UnexpectedResponseSentinel, nil
	}
	return strings.TrimSpace(result.Choices[0].Message.Content), nil
}
