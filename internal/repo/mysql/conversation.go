package mysql

import (
	"context"
	"errors"
	"fmt"

	"github.com/convokit/chatbot-api/internal/models"
	"github.com/convokit/chatbot-api/internal/repo"
	"gorm.io/gorm"
)

type ConversationRepository interface {
	Create(ctx context.Context, conversation *models.Conversation) error
	GetByID(ctx context.Context, id uint) (*models.Conversation, error)
	List(ctx context.Context, page models.PageQuery) ([]*models.Conversation, error)
	ListByUser(ctx context.Context, userID uint, page models.PageQuery) ([]*models.Conversation, error)
	CountByUser(ctx context.Context, userID uint) (int64, error)
	Update(ctx context.Context, id uint, changes map[string]any) (*models.Conversation, error)
	Delete(ctx context.Context, id uint) error
}

var _ repo.Repository[models.Conversation, uint] = (ConversationRepository)(nil)

type conversationRepo struct {
	db *gorm.DB
}

func NewConversationRepository(db *gorm.DB) ConversationRepository {
	return &conversationRepo{db: db}
}

func (r *conversationRepo) Create(ctx context.Context, conversation *models.Conversation) error {
	if err := r.db.WithContext(ctx).Create(conversation).Error; err != nil {
		return fmt.Errorf("create conversation: %w", err)
	}
	return nil
}

func (r *conversationRepo) GetByID(ctx context.Context, id uint) (*models.Conversation, error) {
	var conversation models.Conversation
	err := r.db.WithContext(ctx).First(&conversation, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get conversation: %w", err)
	}
	return &conversation, nil
}

func (r *conversationRepo) List(ctx context.Context, page models.PageQuery) ([]*models.Conversation, error) {
	page = page.Normalize()

	var conversations []*models.Conversation
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(page.Skip).
		Limit(page.Limit).
		Find(&conversations).Error
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	return conversations, nil
}

func (r *conversationRepo) ListByUser(ctx context.Context, userID uint, page models.PageQuery) ([]*models.Conversation, error) {
	page = page.Normalize()

	var conversations []*models.Conversation
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(page.Skip).
		Limit(page.Limit).
		Find(&conversations).Error
	if err != nil {
		return nil, fmt.Errorf("list user conversations: %w", err)
	}
	return conversations, nil
}

func (r *conversationRepo) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Conversation{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count user conversations: %w", err)
	}
	return count, nil
}

func (r *conversationRepo) Update(ctx context.Context, id uint, changes map[string]any) (*models.Conversation, error) {
	conversation, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(changes) == 0 {
		return conversation, nil
	}

	if err := r.db.WithContext(ctx).Model(conversation).Updates(changes).Error; err != nil {
		return nil, fmt.Errorf("update conversation: %w", err)
	}
	return r.GetByID(ctx, id)
}

func (r *conversationRepo) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Conversation{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete conversation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}
