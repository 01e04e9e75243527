package service

import (
	"context"
	"errors"

	"bearworld/internal/http-api/dto"
	"bearworld/internal/http-api/models"
	"bearworld/internal/http-api/repository"
	"bearworld/internal/sanitize"
)

// The guestbook shows at most this many recent entries.
const messageListLimit = 50

var ErrIncompleteMessage = errors.New("message is missing required fields")

type MessageService interface {
	Create(ctx context.Context, req *dto.CreateMessageRequest) (*models.Message, error)
	ListRecent(ctx context.Context) ([]models.Message, error)
}

type messageService struct {
	messageRepo repository.MessageRepository
}

func NewMessageService(messageRepo repository.MessageRepository) MessageService {
	return &messageService{messageRepo: messageRepo}
}

func (s *messageService) Create(ctx context.Context, req *dto.CreateMessageRequest) (*models.Message, error) {
	name := sanitize.Clean(req.Name)
	email := sanitize.Clean(req.Email)
	content := sanitize.Clean(req.Content)
	if name == "" || email == "" || content == "" {
		return nil, ErrIncompleteMessage
	}

	message := &models.Message{
		Name:    name,
		Email:   email,
		Content: content,
	}
	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

func (s *messageService) ListRecent(ctx context.Context) ([]models.Message, error) {
	return s.messageRepo.ListRecent(ctx, messageListLimit)
}
