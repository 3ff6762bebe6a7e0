package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/convokit/chatbot-api/internal/models"
	"github.com/convokit/chatbot-api/internal/repo/mongodb"
)

type DocConversationUsecase interface {
	Create(ctx context.Context, req models.ConversationDocCreate) (*models.ConversationDoc, error)
	Get(ctx context.Context, id string) (*models.ConversationDoc, error)
	List(ctx context.Context, page models.PageQuery) ([]*models.ConversationDoc, error)
	ListByUser(ctx context.Context, userID string, page models.PageQuery) ([]*models.ConversationDoc, error)
	Update(ctx context.Context, id string, req models.ConversationUpdate) (*models.ConversationDoc, error)
	Delete(ctx context.Context, id string) error
}

type docConversationUsecase struct {
	conversations mongodb.ConversationRepository
	users         mongodb.UserRepository
}

func NewDocConversationUsecase(
	conversations mongodb.ConversationRepository,
	users mongodb.UserRepository,
) DocConversationUsecase {
	return &docConversationUsecase{
		conversations: conversations,
		users:         users,
	}
}

// Create applies the same referential pre-check as the relational
// backend: the owning user document must exist.
func (uc *docConversationUsecase) Create(ctx context.Context, req models.ConversationDocCreate) (*models.ConversationDoc, error) {
	if _, err := uc.users.GetByID(ctx, req.UserID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrUserNotFound
		}
		return nil, fmt.Errorf("check user: %w", err)
	}

	conversation := &models.ConversationDoc{
		UserID:   req.UserID,
		Message:  req.Message,
		BotReply: req.BotReply,
	}
	if err := uc.conversations.Create(ctx, conversation); err != nil {
		return nil, err
	}
	return conversation, nil
}

func (uc *docConversationUsecase) Get(ctx context.Context, id string) (*models.ConversationDoc, error) {
	return uc.conversations.GetByID(ctx, id)
}

func (uc *docConversationUsecase) List(ctx context.Context, page models.PageQuery) ([]*models.ConversationDoc, error) {
	return uc.conversations.List(ctx, page)
}

func (uc *docConversationUsecase) ListByUser(ctx context.Context, userID string, page models.PageQuery) ([]*models.ConversationDoc, error) {
	if _, err := uc.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrUserNotFound
		}
		return nil, fmt.Errorf("check user: %w", err)
	}
	return uc.conversations.ListByUser(ctx, userID, page)
}

func (uc *docConversationUsecase) Update(ctx context.Context, id string, req models.ConversationUpdate) (*models.ConversationDoc, error) {
	return uc.conversations.Update(ctx, id, req.Changes())
}

func (uc *docConversationUsecase) Delete(ctx context.Context, id string) error {
	return uc.conversations.Delete(ctx, id)
}
