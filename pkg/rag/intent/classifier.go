package intent

import (
	"context"
	"strings"

	"terra-assistant-be/internal/pkg/logger"
	"terra-assistant-be/pkg/llm"
)

// Intent is the closed classification outcome for one user message.
type Intent string

const (
	IntentHandoff Intent = "handoff"
	IntentGeneral Intent = "general"
	IntentOther   Intent = "other"
)

// handoffKeywords is the deterministic fallback signal set. It needs no
// external dependency, so classification never blocks on the same failure
// mode as the primary classifier.
var handoffKeywords = []string{
	"speak", "human", "consultant", "call", "agent", "person",
}

// Classifier determines whether a message asks for a human handoff.
// Primary path is a constrained model call; a keyword fallback covers
// transient model failures.
type Classifier struct {
	llmProvider llm.Provider
	logger      logger.ILogger
}

// NewClassifier creates a new intent classifier
func NewClassifier(llmProvider llm.Provider, log logger.ILogger) *Classifier {
	return &Classifier{
		llmProvider: llmProvider,
		logger:      log,
	}
}

// Classify resolves the intent of a single message. It never returns an
// error: a failing primary call degrades to the keyword fallback.
func (c *Classifier) Classify(ctx context.Context, message string) Intent {
	response, err := c.llmProvider.Generate(ctx, buildPrompt(message), llm.WithTemperature(0.0))
	if err != nil {
		c.logger.Warn("intent", "Primary classification failed, using keyword fallback", map[string]interface{}{
			"error": err.Error(),
		})
		return FallbackClassify(message)
	}

	return parseIntent(response)
}

func buildPrompt(message string) string {
	var prompt strings.Builder

	prompt.WriteString("You are an intent analyzer. Your ONLY job is to classify the user's message.\n")
	prompt.WriteString("You do NOT answer questions. You only classify intent.\n\n")

	prompt.WriteString("Classify the message into exactly one of:\n")
	prompt.WriteString("- handoff: the user asks to talk to a human, consultant, or live agent\n")
	prompt.WriteString("- general: a normal question or business inquiry\n")
	prompt.WriteString("- other: greetings, small talk, or anything else\n\n")

	prompt.WriteString("Message: ")
	prompt.WriteString(message)
	prompt.WriteString("\n\nAnswer with exactly one of: handoff, general, other")

	return prompt.String()
}

// parseIntent reads the single-word answer case-insensitively; anything
// unrecognized defaults to other.
func parseIntent(response string) Intent {
	normalized := strings.ToLower(strings.TrimSpace(response))
	normalized = strings.Trim(normalized, ".\"'")

	switch normalized {
	case "handoff":
		return IntentHandoff
	case "general":
		return IntentGeneral
	case "other":
		return IntentOther
	}

	// Models sometimes wrap the verdict in a sentence; look for it
	if strings.Contains(normalized, "handoff") {
		return IntentHandoff
	}
	if strings.Contains(normalized, "general") {
		return IntentGeneral
	}
	return IntentOther
}

// FallbackClassify is the deterministic keyword path: a handoff keyword
// anywhere in the message signals handoff, otherwise general.
func FallbackClassify(message string) Intent {
	lowered := strings.ToLower(message)
	for _, kw := range handoffKeywords {
		if strings.Contains(lowered, kw) {
			return IntentHandoff
		}
	}
	return IntentGeneral
}
