package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/minewise/pitpixie/internal/config"
	"github.com/minewise/pitpixie/internal/core"
)

// maxSnippetLen caps each grounding snippet to keep prompts bounded.
const maxSnippetLen = 500

const fallbackTitle = "unknown"

// Client retrieves grounding pairs through a hosted hybrid search index:
// one request combines semantic ranking over the text fields with a KNN
// match over the vector field. The service fuses the two signals; the
// client never re-ranks.
type Client struct {
	http     *http.Client
	cfg      *config.SearchConfig
	embedder core.Embedder
}

func NewClient(cfg *config.SearchConfig, embedder core.Embedder) *Client {
	return &Client{
		http: &http.Client{
			Timeout: 60 * time.Second,
		},
		cfg:      cfg,
		embedder: embedder,
	}
}

type vectorQuery struct {
	Kind   string    `json:"kind"`
	Vector []float32 `json:"vector"`
	K      int       `json:"k"`
	Fields string    `json:"fields"`
}

type searchRequest struct {
	Search                string        `json:"search"`
	Select                string        `json:"select"`
	SearchFields          string        `json:"searchFields"`
	QueryType             string        `json:"queryType"`
	SemanticConfiguration string        `json:"semanticConfiguration,omitempty"`
	Top                   int           `json:"top"`
	VectorQueries         []vectorQuery `json:"vectorQueries"`
}

type searchDocument struct {
	Title   string `json:"title"`
	ChunkID string `json:"chunk_id"`
	Chunk   string `json:"chunk"`
}

func (c *Client) Retrieve(ctx context.Context, query string, top int) ([]core.GroundingPair, error) {
	// Embedded fresh on every call; see DESIGN.md on caching.
	vector, err := c.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	reqBody := searchRequest{
		Search:                query,
		Select:                "title,chunk,chunk_id",
		SearchFields:          "chunk,title",
		QueryType:             "semantic",
		SemanticConfiguration: c.cfg.SemanticConfig,
		Top:                   top,
		VectorQueries: []vectorQuery{{
			Kind:   "vector",
			Vector: vector,
			K:      top,
			Fields: "text_vector",
		}},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}

	url := fmt.Sprintf("%s/indexes/%s/docs/search?api-version=%s",
		strings.TrimRight(c.cfg.Endpoint, "/"), c.cfg.Index, c.cfg.APIVersion)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("api-key", c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("http %d: %s", resp.StatusCode, string(data))
	}

	var result struct {
		Value []searchDocument `json:"value"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	pairs := make([]core.GroundingPair, 0, len(result.Value))
	for _, doc := range result.Value {
		if doc.Chunk == "" {
			continue
		}
		pairs = append(pairs, core.GroundingPair{
			Title:   titleOf(doc),
			Snippet: truncate(doc.Chunk, maxSnippetLen),
		})
		if len(pairs) == top {
			break
		}
	}
	return pairs, nil
}

func titleOf(doc searchDocument) string {
	if doc.Title != "" {
		return doc.Title
	}
	if doc.ChunkID != "" {
		return doc.ChunkID
	}
	return fallbackTitle
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
