package response

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"terra-assistant-be/internal/pkg/logger"
	"terra-assistant-be/pkg/llm"
	"terra-assistant-be/pkg/store"
)

type stubLLM struct {
	reply   string
	err     error
	gotHist []llm.Message
}

func (s *stubLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	s.gotHist = history
	return s.reply, s.err
}

func (s *stubLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return s.reply, s.err
}

func TestCompleteReturnsModelTextVerbatim(t *testing.T) {
	stub := &stubLLM{reply: "  TerraPeak helps with APAC expansion.  "}
	g := NewGenerator(stub, logger.NewNop())

	messages := []store.Message{
		{Role: store.RoleSystem, Content: "sys"},
		{Role: store.RoleUser, Content: "q"},
	}
	got := g.Complete(context.Background(), messages)

	if got != stub.reply {
		t.Errorf("Complete = %q, want the model text unmodified", got)
	}
	if len(stub.gotHist) != 2 || stub.gotHist[0].Role != "system" {
		t.Errorf("history not forwarded: %+v", stub.gotHist)
	}
}

func TestCompleteMapsRateLimitToApology(t *testing.T) {
	wrapped := fmt.Errorf("openai error: status 429: %w", llm.ErrRateLimited)
	g := NewGenerator(&stubLLM{err: wrapped}, logger.NewNop())

	got := g.Complete(context.Background(), []store.Message{{Role: store.RoleUser, Content: "q"}})
	if got != RateLimitApology {
		t.Errorf("Complete = %q, want RateLimitApology", got)
	}
}

func TestCompleteMapsOtherFailuresToServiceApology(t *testing.T) {
	g := NewGenerator(&stubLLM{err: errors.New("connection refused")}, logger.NewNop())

	got := g.Complete(context.Background(), []store.Message{{Role: store.RoleUser, Content: "q"}})
	if got != ServiceErrorApology {
		t.Errorf("Complete = %q, want ServiceErrorApology", got)
	}
}
