package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/convokit/chatbot-api/internal/models"
	"github.com/convokit/chatbot-api/internal/repo/mysql"
)

type ConversationUsecase interface {
	Create(ctx context.Context, req models.ConversationCreate) (*models.Conversation, error)
	Get(ctx context.Context, id uint) (*models.Conversation, error)
	List(ctx context.Context, page models.PageQuery) ([]*models.Conversation, error)
	ListByUser(ctx context.Context, userID uint, page models.PageQuery) ([]*models.Conversation, error)
	Update(ctx context.Context, id uint, req models.ConversationUpdate) (*models.Conversation, error)
	Delete(ctx context.Context, id uint) error
}

type conversationUsecase struct {
	conversations mysql.ConversationRepository
	users         mysql.UserRepository
}

func NewConversationUsecase(
	conversations mysql.ConversationRepository,
	users mysql.UserRepository,
) ConversationUsecase {
	return &conversationUsecase{
		conversations: conversations,
		users:         users,
	}
}

// Create persists a conversation after confirming the referenced user
// exists. The check and the insert are separate round trips; a user
// deleted in between is a known race left to the storage constraint.
func (uc *conversationUsecase) Create(ctx context.Context, req models.ConversationCreate) (*models.Conversation, error) {
	if _, err := uc.users.GetByID(ctx, req.UserID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrUserNotFound
		}
		return nil, fmt.Errorf("check user: %w", err)
	}

	conversation := &models.Conversation{
		UserID:   req.UserID,
		Message:  req.Message,
		BotReply: req.BotReply,
	}
	if err := uc.conversations.Create(ctx, conversation); err != nil {
		return nil, err
	}
	return conversation, nil
}

func (uc *conversationUsecase) Get(ctx context.Context, id uint) (*models.Conversation, error) {
	return uc.conversations.GetByID(ctx, id)
}

func (uc *conversationUsecase) List(ctx context.Context, page models.PageQuery) ([]*models.Conversation, error) {
	return uc.conversations.List(ctx, page)
}

func (uc *conversationUsecase) ListByUser(ctx context.Context, userID uint, page models.PageQuery) ([]*models.Conversation, error) {
	if _, err := uc.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrUserNotFound
		}
		return nil, fmt.Errorf("check user: %w", err)
	}
	return uc.conversations.ListByUser(ctx, userID, page)
}

func (uc *conversationUsecase) Update(ctx context.Context, id uint, req models.ConversationUpdate) (*models.Conversation, error) {
	return uc.conversations.Update(ctx, id, req.Changes())
}

func (uc *conversationUsecase) Delete(ctx context.Context, id uint) error {
	return uc.conversations.Delete(ctx, id)
}
