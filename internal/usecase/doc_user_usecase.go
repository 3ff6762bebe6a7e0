package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/convokit/chatbot-api/internal/models"
	"github.com/convokit/chatbot-api/internal/repo/mongodb"
)

// DocUserUsecase is the document-backend counterpart of UserUsecase.
// Identifiers are hex document keys.
type DocUserUsecase interface {
	Create(ctx context.Context, req models.UserCreate) (*models.UserDoc, error)
	Get(ctx context.Context, id string) (*models.UserDoc, error)
	GetByUsername(ctx context.Context, username string) (*models.UserDoc, error)
	List(ctx context.Context, page models.PageQuery) ([]*models.UserDoc, error)
	Update(ctx context.Context, id string, req models.UserUpdate) (*models.UserDoc, error)
	Delete(ctx context.Context, id string) error
	ConversationCount(ctx context.Context, id string) (int64, error)
}

type docUserUsecase struct {
	users         mongodb.UserRepository
	conversations mongodb.ConversationRepository
}

func NewDocUserUsecase(
	users mongodb.UserRepository,
	conversations mongodb.ConversationRepository,
) DocUserUsecase {
	return &docUserUsecase{
		users:         users,
		conversations: conversations,
	}
}

func (uc *docUserUsecase) Create(ctx context.Context, req models.UserCreate) (*models.UserDoc, error) {
	existing, err := uc.users.GetByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return nil, fmt.Errorf("check existing email: %w", err)
	}
	if existing != nil {
		return nil, models.ErrEmailExists
	}

	user := &models.UserDoc{
		Username: req.Username,
		Email:    req.Email,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (uc *docUserUsecase) Get(ctx context.Context, id string) (*models.UserDoc, error) {
	return uc.users.GetByID(ctx, id)
}

func (uc *docUserUsecase) GetByUsername(ctx context.Context, username string) (*models.UserDoc, error) {
	return uc.users.GetByUsername(ctx, username)
}

func (uc *docUserUsecase) List(ctx context.Context, page models.PageQuery) ([]*models.UserDoc, error) {
	return uc.users.List(ctx, page)
}

func (uc *docUserUsecase) Update(ctx context.Context, id string, req models.UserUpdate) (*models.UserDoc, error) {
	return uc.users.Update(ctx, id, req.Changes())
}

func (uc *docUserUsecase) Delete(ctx context.Context, id string) error {
	return uc.users.Delete(ctx, id)
}

func (uc *docUserUsecase) ConversationCount(ctx context.Context, id string) (int64, error) {
	if _, err := uc.users.GetByID(ctx, id); err != nil {
		return 0, err
	}
	return uc.conversations.CountByUser(ctx, id)
}
