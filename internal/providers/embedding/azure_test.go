package embedding

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/minewise/pitpixie/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(url string) *Client {
	return NewClient(&config.EmbeddingConfig{
		Endpoint:   url,
		APIKey:     "test-key",
		Deployment: "text-embedding-3-small",
		APIVersion: "2024-02-15-preview",
	})
}

func TestClient_Embed(t *testing.T) {
	var gotPath, gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("api-key")
		fmt.Fprint(w, `{"data":[{"embedding":[0.1,0.2,0.3]}]}`)
	}))
	defer srv.Close()

	vec, err := newTestClient(srv.URL).Embed(context.Background(), "pit void depth in Zone 3")
	require.NoError(t, err)

	assert.Equal(t, []float32{0.1, 0.2, 0.3}, vec)
	assert.Equal(t, "/openai/deployments/text-embedding-3-small/embeddings", gotPath)
	assert.Equal(t, "test-key", gotKey)
}

func TestClient_Embed_EmptyInput(t *testing.T) {
	_, err := newTestClient("http://unreachable.invalid").Embed(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty input")
}

func TestClient_Embed_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error":"invalid key"}`)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Embed(context.Background(), "some text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 401")
}

func TestClient_Embed_EmptyData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":[]}`)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Embed(context.Background(), "some text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty embedding response")
}
