package response

import (
	"context"
	"errors"
	"time"

	"terra-assistant-be/internal/pkg/logger"
	"terra-assistant-be/pkg/llm"
	"terra-assistant-be/pkg/store"
)

// completionTimeout bounds one completion call. A timeout surfaces as a
// service failure; the in-flight call is abandoned, not cancelled twice.
const completionTimeout = 15 * time.Second

// Generator is the single point where completion-service failures become
// user-presentable text. The rest of the pipeline never sees the external
// service's error taxonomy.
type Generator struct {
	llmProvider llm.Provider
	logger      logger.ILogger
}

// NewGenerator creates a new response generator
func NewGenerator(llmProvider llm.Provider, log logger.ILogger) *Generator {
	return &Generator{
		llmProvider: llmProvider,
		logger:      log,
	}
}

// Complete sends the message window to the model and returns the generated
// text verbatim. Failures are converted to safe fallback strings and logged;
// no synchronous retry happens within the turn.
func (g *Generator) Complete(ctx context.Context, messages []store.Message, opts ...llm.Option) string {
	ctx, cancel := context.WithTimeout(ctx, completionTimeout)
	defer cancel()

	history := make([]llm.Message, len(messages))
	for i, msg := range messages {
		history[i] = llm.Message{Role: msg.Role, Content: msg.Content}
	}

	reply, err := g.llmProvider.Chat(ctx, history, opts...)
	if err != nil {
		if errors.Is(err, llm.ErrRateLimited) {
			g.logger.Warn("response", "Completion rate limited", map[string]interface{}{
				"error": err.Error(),
			})
			return RateLimitApology
		}

		g.logger.Error("response", "Completion failed", map[string]interface{}{
			"error": err.Error(),
		})
		return ServiceErrorApology
	}

	return reply
}
