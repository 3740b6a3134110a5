package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/minewise/pitpixie/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFoundry(url string) *Foundry {
	return NewFoundry(&config.ChatConfig{
		Endpoint:            url,
		APIKey:              "test-key",
		MaxCompletionTokens: 1024,
	})
}

func TestFoundry_Complete(t *testing.T) {
	tests := []struct {
		name       string
		handler    http.HandlerFunc
		want       string
		wantErr    bool
		wantErrMsg string
	}{
		{
			name: "successful completion is trimmed",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"choices":[{"message":{"role":"assistant","content":"  42 voids in Zone 3.  \n"}}]}`)
			},
			want: "42 voids in Zone 3.",
		},
		{
			name: "empty choices returns sentinel, not error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"choices":[]}`)
			},
			want: UnexpectedResponseSentinel,
		},
		{
			name: "garbage body returns sentinel, not error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `not json at all`)
			},
			want: UnexpectedResponseSentinel,
		},
		{
			name: "non-200 surfaces status and body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				fmt.Fprint(w, `{"error":{"message":"max_tokens is not supported"}}`)
			},
			wantErr:    true,
			wantErrMsg: "http 400",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			got, err := newTestFoundry(srv.URL).Complete(context.Background(), "How many pit voids were recorded?")
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFoundry_Complete_RequestShape(t *testing.T) {
	var captured struct {
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
		MaxCompletionTokens int `json:"max_completion_tokens"`
	}
	var apiKey string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey = r.Header.Get("api-key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		fmt.Fprint(w, `{"choices":[{"message":{"role":"assistant","content":"ok"}}]}`)
	}))
	defer srv.Close()

	_, err := newTestFoundry(srv.URL).Complete(context.Background(), "the prompt")
	require.NoError(t, err)

	assert.Equal(t, "test-key", apiKey)
	assert.Equal(t, 1024, captured.MaxCompletionTokens)
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Equal(t, "user", captured.Messages[1].Role)
	assert.Equal(t, "the prompt", captured.Messages[1].Content)
}
