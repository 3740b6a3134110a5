package core

import "context"

// Embedder turns text into a fixed-dimension vector via a hosted service.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Retriever returns up to top grounding pairs for a query, in relevance order.
type Retriever interface {
	Retrieve(ctx context.Context, query string, top int) ([]GroundingPair, error)
}

// ChatProvider sends one composed prompt to a hosted model and returns the
// answer text.
type ChatProvider interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
