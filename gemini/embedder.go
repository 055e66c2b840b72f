package gemini

import (
	"context"

	"google.golang.org/genai"

	"github.com/noto-news/noto"
)

const embeddingModel = "gemini-embedding-001"

// Ensure Embedder implements noto.Embedder at compile time.
var _ noto.Embedder = (*Embedder)(nil)

// Embedder implements noto.Embedder using the Gemini embedding model.
type Embedder struct {
	client *genai.Client
}

// NewEmbedder creates a new Embedder.
func NewEmbedder(client *genai.Client) *Embedder {
	return &Embedder{client: client}
}

// Embed returns a dense vector for text.
func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if text == "" {
		return nil, noto.Errorf(noto.EINVALID, "text required")
	}

	result, err := e.client.Models.EmbedContent(ctx, embeddingModel,
		[]*genai.Content{
			genai.NewContentFromText(text, "user"),
		},
		nil,
	)
	if err != nil {
		return nil, err
	}
	if result == nil || len(result.Embeddings) == 0 || len(result.Embeddings[0].Values) == 0 {
		return nil, noto.Errorf(noto.EINTERNAL, "gemini returned empty embedding")
	}

	return result.Embeddings[0].Values, nil
}
