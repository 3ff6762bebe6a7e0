package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/convokit/chatbot-api/internal/models"
	"github.com/convokit/chatbot-api/internal/repo/mysql"
)

type UserUsecase interface {
	Create(ctx context.Context, req models.UserCreate) (*models.User, error)
	Get(ctx context.Context, id uint) (*models.User, error)
	GetWithConversations(ctx context.Context, id uint) (*models.User, error)
	List(ctx context.Context, page models.PageQuery) ([]*models.User, error)
	Update(ctx context.Context, id uint, req models.UserUpdate) (*models.User, error)
	Delete(ctx context.Context, id uint) error
	ConversationCount(ctx context.Context, id uint) (int64, error)
}

type userUsecase struct {
	users         mysql.UserRepository
	conversations mysql.ConversationRepository
}

func NewUserUsecase(
	users mysql.UserRepository,
	conversations mysql.ConversationRepository,
) UserUsecase {
	return &userUsecase{
		users:         users,
		conversations: conversations,
	}
}

func (uc *userUsecase) Create(ctx context.Context, req models.UserCreate) (*models.User, error) {
	existing, err := uc.users.GetByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return nil, fmt.Errorf("check existing email: %w", err)
	}
	if existing != nil {
		return nil, models.ErrEmailExists
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (uc *userUsecase) Get(ctx context.Context, id uint) (*models.User, error) {
	return uc.users.GetByID(ctx, id)
}

func (uc *userUsecase) GetWithConversations(ctx context.Context, id uint) (*models.User, error) {
	return uc.users.GetWithConversations(ctx, id)
}

func (uc *userUsecase) List(ctx context.Context, page models.PageQuery) ([]*models.User, error) {
	return uc.users.List(ctx, page)
}

func (uc *userUsecase) Update(ctx context.Context, id uint, req models.UserUpdate) (*models.User, error) {
	return uc.users.Update(ctx, id, req.Changes())
}

func (uc *userUsecase) Delete(ctx context.Context, id uint) error {
	return uc.users.Delete(ctx, id)
}

func (uc *userUsecase) ConversationCount(ctx context.Context, id uint) (int64, error) {
	if _, err := uc.users.GetByID(ctx, id); err != nil {
		return 0, err
	}
	return uc.conversations.CountByUser(ctx, id)
}
