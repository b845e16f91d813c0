package embedding

import (
	"context"
	"errors"
	"strings"
)

// ErrInvalidInput marks caller mistakes (empty text). It is rejected before
// any remote call so a bad input never costs a request.
var ErrInvalidInput = errors.New("embedding: text must be a non-empty string")

// Provider generates fixed-dimension embeddings for text.
// No retries happen at this layer: a failure while embedding the corpus must
// abort startup, and a failure at query time degrades at the retriever.
type Provider interface {
	Generate(ctx context.Context, text string) ([]float32, error)
}

func validateInput(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrInvalidInput
	}
	return nil
}
