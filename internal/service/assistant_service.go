package service

import (
	"context"
	"fmt"
	"time"

	"terra-assistant-be/internal/constant"
	"terra-assistant-be/internal/dto"
	"terra-assistant-be/internal/pkg/logger"
	"terra-assistant-be/internal/repository/memory"
	"terra-assistant-be/pkg/llm"
	"terra-assistant-be/pkg/logsink"
	"terra-assistant-be/pkg/rag/handoff"
	"terra-assistant-be/pkg/rag/intent"
	"terra-assistant-be/pkg/rag/prompt"
	"terra-assistant-be/pkg/rag/response"
	"terra-assistant-be/pkg/rag/retriever"
	"terra-assistant-be/pkg/store"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned when a chat targets an unknown or expired
// session.
var ErrSessionNotFound = fmt.Errorf("session not found")

// IAssistantService defines the assistant service interface
type IAssistantService interface {
	CreateSession(ctx context.Context, request *dto.CreateSessionRequest) (*dto.CreateSessionResponse, error)
	SendChat(ctx context.Context, request *dto.SendChatRequest) (*dto.SendChatResponse, error)
	GetHistory(ctx context.Context, sessionId uuid.UUID) (*dto.GetHistoryResponse, error)
}

// Options carries the tunable pipeline parameters.
type Options struct {
	SystemPrompt  string
	RetrievalTopK int
	HistoryWindow int
	Temperature   float64
}

// assistantService coordinates the per-turn pipeline: classify intent,
// branch to handoff or retrieval+completion, update the session, emit a log
// record.
type assistantService struct {
	sessionRepo *memory.SessionRepository
	retriever   *retriever.Retriever
	classifier  *intent.Classifier
	generator   *response.Generator
	sink        logsink.Sink
	logger      logger.ILogger
	opts        Options
}

// NewAssistantService creates a new assistant service with all domain components
func NewAssistantService(
	sessionRepo *memory.SessionRepository,
	ret *retriever.Retriever,
	classifier *intent.Classifier,
	generator *response.Generator,
	sink logsink.Sink,
	log logger.ILogger,
	opts Options,
) IAssistantService {
	if opts.RetrievalTopK < 1 {
		opts.RetrievalTopK = 2
	}
	if opts.HistoryWindow < 1 {
		opts.HistoryWindow = 10
	}
	return &assistantService{
		sessionRepo: sessionRepo,
		retriever:   ret,
		classifier:  classifier,
		generator:   generator,
		sink:        sink,
		logger:      log,
		opts:        opts,
	}
}

// CreateSession starts a conversation for a validated contact and greets.
func (s *assistantService) CreateSession(ctx context.Context, request *dto.CreateSessionRequest) (*dto.CreateSessionResponse, error) {
	contact := store.Contact{
		Name:    request.Name,
		Email:   request.Email,
		Company: request.Company,
		Phone:   request.Phone,
		Country: request.Country,
	}

	sess := store.NewSession(uuid.New().String(), contact, s.opts.SystemPrompt)
	sess.Append(store.Message{Role: store.RoleAssistant, Content: constant.GreetingMessage})
	s.sessionRepo.Save(sess)

	return &dto.CreateSessionResponse{
		Id:       sess.ID,
		Greeting: constant.GreetingMessage,
	}, nil
}

// SendChat processes one user turn synchronously, end to end.
func (s *assistantService) SendChat(ctx context.Context, request *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	sess, found := s.sessionRepo.Get(request.SessionId)
	if !found {
		return nil, ErrSessionNotFound
	}

	now := time.Now()

	// 1. Session mutation comes first so the transcript the user sees can
	// never be behind the log.
	sess.Append(store.Message{Role: store.RoleUser, Content: request.Message})
	messageNumber := sess.UserMessageCount

	// 2. Classify intent and evaluate the handoff policy.
	classified := s.classifier.Classify(ctx, request.Message)
	decision := handoff.Evaluate(sess, classified)

	var reply string
	if decision.Immediate {
		// Short-circuit: no completion call for the primary answer.
		reply = handoff.Message(decision.BookingRef)
	} else {
		reply = s.answer(ctx, sess, request.Message)
		if decision.DelayedOffer {
			reply += handoff.OfferSuffix
		}
	}

	sess.Append(store.Message{Role: store.RoleAssistant, Content: reply})
	s.sessionRepo.Save(sess)

	s.emitLogRecord(logsink.Record{
		Timestamp:        now,
		SessionID:        sess.ID,
		Contact:          sess.Contact,
		Question:         request.Message,
		Response:         reply,
		Intent:           string(classified),
		HandoffTriggered: decision.Immediate,
		MessageNumber:    messageNumber,
		BookingRef:       decision.BookingRef,
	})

	return &dto.SendChatResponse{
		SessionId:     sess.ID,
		Sent:          dto.ChatMessageDTO{Role: store.RoleUser, Content: request.Message},
		Reply:         dto.ChatMessageDTO{Role: store.RoleAssistant, Content: reply},
		HandoffCTA:    decision.Triggered(),
		BookingRef:    decision.BookingRef,
		MessageNumber: messageNumber,
		CreatedAt:     now,
	}, nil
}

// answer runs the retrieval+completion branch. Retrieval is best-effort;
// the completion client converts its own failures to safe text, so this
// always produces something presentable.
func (s *assistantService) answer(ctx context.Context, sess *store.Session, message string) string {
	retrieved := s.retriever.Retrieve(ctx, message, s.opts.RetrievalTopK)
	if len(retrieved) == 0 {
		s.logger.Info("assistant", "Answering without retrieved context", map[string]interface{}{
			"session_id": sess.ID,
		})
	}

	groundedPrompt := prompt.NewContextualBuilder(message, retrieved).Build()

	// The grounded prompt replaces the raw user message in the completion
	// request only; the transcript keeps the original text.
	window := sess.WindowedHistory(s.opts.HistoryWindow)
	if last := len(window) - 1; last >= 1 && window[last].Role == store.RoleUser {
		window[last].Content = groundedPrompt
	} else {
		window = append(window, store.Message{Role: store.RoleUser, Content: groundedPrompt})
	}

	return s.generator.Complete(ctx, window, llm.WithTemperature(s.opts.Temperature))
}

// GetHistory returns the displayable transcript (system message excluded).
func (s *assistantService) GetHistory(ctx context.Context, sessionId uuid.UUID) (*dto.GetHistoryResponse, error) {
	sess, found := s.sessionRepo.Get(sessionId.String())
	if !found {
		return nil, ErrSessionNotFound
	}

	messages := make([]dto.ChatMessageDTO, 0, len(sess.History))
	for _, msg := range sess.History {
		messages = append(messages, dto.ChatMessageDTO{Role: msg.Role, Content: msg.Content})
	}

	return &dto.GetHistoryResponse{
		SessionId: sess.ID,
		Messages:  messages,
	}, nil
}

// emitLogRecord is fire-and-forget: a sink failure is surfaced server-side
// only and never fails the user-facing turn.
func (s *assistantService) emitLogRecord(record logsink.Record) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.sink.Append(ctx, record); err != nil {
		s.logger.Warn("assistant", "Log sink append failed", map[string]interface{}{
			"session_id": record.SessionID,
			"error":      err.Error(),
		})
	}
}
