package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"

	"bearworld/internal/ai"
	"bearworld/internal/http-api/dto"
	"bearworld/internal/http-api/models"
	"bearworld/internal/http-api/repository"
)

var ErrEmptyMessage = errors.New("message is empty")

type ChatService interface {
	Chat(ctx context.Context, userID string, req *dto.ChatRequest) (*dto.ChatPayload, error)
	ProviderInfo() dto.ProviderInfoPayload
}

type chatService struct {
	responder ai.Responder
	fallback  *ai.TemplateResponder
	chatRepo  repository.ChatHistoryRepository
	logger    *slog.Logger
}

func NewChatService(responder ai.Responder, chatRepo repository.ChatHistoryRepository, logger *slog.Logger) ChatService {
	return &chatService{
		responder: responder,
		fallback:  ai.NewTemplateResponder(),
		chatRepo:  chatRepo,
		logger:    logger,
	}
}

// Chat asks the configured backend and falls back to canned replies when the
// provider cannot answer, so the endpoint never fails just because an
// external account ran dry.
func (s *chatService) Chat(ctx context.Context, userID string, req *dto.ChatRequest) (*dto.ChatPayload, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, ErrEmptyMessage
	}

	history := make([]ai.Message, 0, len(req.History))
	for _, turn := range req.History {
		history = append(history, ai.Message{Role: turn.Role, Content: turn.Content})
	}

	source := s.responder.Info().Current
	reply, err := s.responder.Respond(ctx, message, history)
	if err != nil {
		s.logger.Warn("ai provider failed, using canned reply", "provider", source, "error", err)
		source = "mock"
		if reply, err = s.fallback.Respond(ctx, message, history); err != nil {
			return nil, err
		}
	}

	s.recordExchange(ctx, userID, message, reply, history)

	return &dto.ChatPayload{Response: reply, Source: source}, nil
}

// recordExchange persists the conversation for logged-in users. Failures are
// logged and swallowed; history is best-effort.
func (s *chatService) recordExchange(ctx context.Context, userID, message, reply string, history []ai.Message) {
	if userID == "" {
		return
	}
	full := append(history,
		ai.Message{Role: "user", Content: message},
		ai.Message{Role: "assistant", Content: reply},
	)
	raw, err := json.Marshal(full)
	if err != nil {
		s.logger.Warn("failed to serialize chat history", "error", err)
		return
	}
	record := &models.ChatHistory{UserID: userID, Messages: string(raw)}
	if err := s.chatRepo.Create(ctx, record); err != nil {
		s.logger.Warn("failed to store chat history", "error", err)
	}
}

func (s *chatService) ProviderInfo() dto.ProviderInfoPayload {
	info := s.responder.Info()
	return dto.ProviderInfoPayload{
		Current:     info.Current,
		Name:        info.Name,
		Description: info.Description,
		Enabled:     info.Enabled,
	}
}
