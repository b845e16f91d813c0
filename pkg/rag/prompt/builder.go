package prompt

import (
	"strings"

	"terra-assistant-be/pkg/rag/retriever"
)

// excerptBudget bounds how many characters of each document enter the
// prompt. This is a cost/latency control, not a correctness requirement.
const excerptBudget = 1200

// ContextualBuilder composes a grounded prompt from retrieved documents and
// the user's question.
type ContextualBuilder struct {
	query     string
	retrieved []retriever.Result
}

// NewContextualBuilder creates a new contextual prompt builder
func NewContextualBuilder(query string, retrieved []retriever.Result) *ContextualBuilder {
	return &ContextualBuilder{
		query:     query,
		retrieved: retrieved,
	}
}

// Build creates the grounded prompt. With an empty retrieval set the context
// section stays empty and the model answers from its system instruction.
func (b *ContextualBuilder) Build() string {
	var prompt strings.Builder

	b.writeContext(&prompt)
	b.writeUserQuery(&prompt)

	return prompt.String()
}

func (b *ContextualBuilder) writeContext(prompt *strings.Builder) {
	prompt.WriteString("Relevant Context:\n")
	for _, res := range b.retrieved {
		prompt.WriteString(res.Document.Title)
		prompt.WriteString("\n")
		prompt.WriteString(excerpt(res.Document.Content))
		prompt.WriteString("\n\n")
	}
}

func (b *ContextualBuilder) writeUserQuery(prompt *strings.Builder) {
	prompt.WriteString("User Query: ")
	prompt.WriteString(b.query)
	prompt.WriteString("\n\nAnswer:")
}

func excerpt(content string) string {
	runes := []rune(content)
	if len(runes) <= excerptBudget {
		return content
	}
	return string(runes[:excerptBudget])
}
