package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"terra-assistant-be/internal/constant"
	"terra-assistant-be/internal/dto"
	"terra-assistant-be/internal/pkg/logger"
	"terra-assistant-be/internal/repository/memory"
	"terra-assistant-be/pkg/corpus"
	"terra-assistant-be/pkg/llm"
	"terra-assistant-be/pkg/logsink"
	"terra-assistant-be/pkg/rag/handoff"
	"terra-assistant-be/pkg/rag/intent"
	"terra-assistant-be/pkg/rag/response"
	"terra-assistant-be/pkg/rag/retriever"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// scriptedLLM serves both pipeline roles: Generate answers the intent
// classification, Chat produces the completion.
type scriptedLLM struct {
	verdict     string
	answer      string
	chatCalls   int
	lastHistory []llm.Message
}

func (s *scriptedLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	s.chatCalls++
	s.lastHistory = history
	return s.answer, nil
}

func (s *scriptedLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return s.verdict, nil
}

// flatEmbedder embeds everything to the same vector, so retrieval returns
// documents in corpus order.
type flatEmbedder struct{}

func (flatEmbedder) Generate(ctx context.Context, text string) ([]float32, error) {
	return []float32{1, 0}, nil
}

type recordingSink struct {
	records []logsink.Record
	err     error
}

func (s *recordingSink) Append(ctx context.Context, record logsink.Record) error {
	if s.err != nil {
		return s.err
	}
	s.records = append(s.records, record)
	return nil
}

func newTestService(t *testing.T, model *scriptedLLM, sink logsink.Sink) IAssistantService {
	t.Helper()
	nop := logger.NewNop()

	refCorpus := corpus.New([]corpus.Document{
		{Title: "Launch", Content: "TerraPeak launches with APAC market entry services."},
		{Title: "Growth", Content: "Sales growth strategies for Asian SMEs."},
		{Title: "AI", Content: "Practical AI integration for operations."},
	})

	index, err := retriever.BuildIndex(context.Background(), flatEmbedder{}, refCorpus)
	assert.NoError(t, err)

	return NewAssistantService(
		memory.NewSessionRepository(),
		retriever.New(flatEmbedder{}, index, refCorpus, nop),
		intent.NewClassifier(model, nop),
		response.NewGenerator(model, nop),
		sink,
		nop,
		Options{SystemPrompt: "You are Terra.", RetrievalTopK: 2, HistoryWindow: 10},
	)
}

func createSession(t *testing.T, svc IAssistantService) string {
	t.Helper()
	resp, err := svc.CreateSession(context.Background(), &dto.CreateSessionRequest{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Phone:   "+6581234567",
		Country: "Singapore",
	})
	assert.NoError(t, err)
	assert.Equal(t, constant.GreetingMessage, resp.Greeting)
	return resp.Id
}

func TestSendChatGeneralTurn(t *testing.T) {
	model := &scriptedLLM{verdict: "general", answer: "We specialize in APAC market entry."}
	sink := &recordingSink{}
	svc := newTestService(t, model, sink)
	sessionId := createSession(t, svc)

	resp, err := svc.SendChat(context.Background(), &dto.SendChatRequest{
		SessionId: sessionId,
		Message:   "What does TerraPeak do?",
	})
	assert.NoError(t, err)

	assert.Equal(t, "We specialize in APAC market entry.", resp.Reply.Content)
	assert.False(t, resp.HandoffCTA)
	assert.Empty(t, resp.BookingRef)
	assert.Equal(t, 1, resp.MessageNumber)
	assert.Equal(t, 1, model.chatCalls)

	// The completion request carries the system message first and the
	// grounded prompt as the final user message; the transcript keeps the
	// raw question.
	assert.Equal(t, "system", model.lastHistory[0].Role)
	last := model.lastHistory[len(model.lastHistory)-1]
	assert.Equal(t, "user", last.Role)
	assert.Contains(t, last.Content, "Relevant Context:")
	assert.Contains(t, last.Content, "TerraPeak launches with APAC market entry services.")
	assert.Contains(t, last.Content, "User Query: What does TerraPeak do?")

	history, err := svc.GetHistory(context.Background(), uuid.MustParse(sessionId))
	assert.NoError(t, err)
	// Greeting, user question, assistant reply.
	assert.Len(t, history.Messages, 3)
	assert.Equal(t, "What does TerraPeak do?", history.Messages[1].Content)

	assert.Len(t, sink.records, 1)
	assert.Equal(t, "general", sink.records[0].Intent)
	assert.Equal(t, "Ada Lovelace", sink.records[0].Contact.Name)
}

func TestSendChatImmediateHandoff(t *testing.T) {
	model := &scriptedLLM{verdict: "handoff", answer: "should not be used"}
	sink := &recordingSink{}
	svc := newTestService(t, model, sink)
	sessionId := createSession(t, svc)

	resp, err := svc.SendChat(context.Background(), &dto.SendChatRequest{
		SessionId: sessionId,
		Message:   "I want to speak to a human",
	})
	assert.NoError(t, err)

	assert.True(t, resp.HandoffCTA)
	assert.True(t, strings.HasPrefix(resp.BookingRef, "TP-"))
	assert.Equal(t, handoff.Message(resp.BookingRef), resp.Reply.Content)
	// The turn short-circuits: no completion call.
	assert.Equal(t, 0, model.chatCalls)

	assert.Len(t, sink.records, 1)
	assert.True(t, sink.records[0].HandoffTriggered)
	assert.Equal(t, resp.BookingRef, sink.records[0].BookingRef)
}

func TestSendChatThresholdOfferFiresOnce(t *testing.T) {
	model := &scriptedLLM{verdict: "general", answer: "Answer."}
	svc := newTestService(t, model, &recordingSink{})
	sessionId := createSession(t, svc)

	var replies []string
	for i := 0; i < 7; i++ {
		resp, err := svc.SendChat(context.Background(), &dto.SendChatRequest{
			SessionId: sessionId,
			Message:   "another question",
		})
		assert.NoError(t, err)
		replies = append(replies, resp.Reply.Content)

		wantCTA := i == 5 // the sixth user message
		assert.Equal(t, wantCTA, resp.HandoffCTA, "turn %d", i+1)
	}

	for i, reply := range replies {
		hasOffer := strings.Contains(reply, handoff.OfferSuffix)
		if i == 5 {
			assert.True(t, hasOffer, "sixth turn must carry the consultant offer")
			assert.True(t, strings.HasPrefix(reply, "Answer."), "offer comes after the generated answer")
		} else {
			assert.False(t, hasOffer, "turn %d must not carry the offer", i+1)
		}
	}
}

func TestSendChatToleratesSinkFailure(t *testing.T) {
	model := &scriptedLLM{verdict: "general", answer: "Answer."}
	svc := newTestService(t, model, &recordingSink{err: errors.New("sink down")})
	sessionId := createSession(t, svc)

	resp, err := svc.SendChat(context.Background(), &dto.SendChatRequest{
		SessionId: sessionId,
		Message:   "q",
	})
	assert.NoError(t, err)
	assert.Equal(t, "Answer.", resp.Reply.Content)
}

func TestSendChatUnknownSession(t *testing.T) {
	svc := newTestService(t, &scriptedLLM{verdict: "general"}, &recordingSink{})

	_, err := svc.SendChat(context.Background(), &dto.SendChatRequest{
		SessionId: uuid.New().String(),
		Message:   "q",
	})
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = svc.GetHistory(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestHistoryAccumulatesAcrossTurns(t *testing.T) {
	model := &scriptedLLM{verdict: "general", answer: "A."}
	svc := newTestService(t, model, &recordingSink{})
	sessionId := createSession(t, svc)

	for i := 0; i < 3; i++ {
		_, err := svc.SendChat(context.Background(), &dto.SendChatRequest{
			SessionId: sessionId,
			Message:   "q",
		})
		assert.NoError(t, err)
	}

	history, err := svc.GetHistory(context.Background(), uuid.MustParse(sessionId))
	assert.NoError(t, err)
	// Greeting plus three user/assistant pairs.
	assert.Len(t, history.Messages, 7)
}
