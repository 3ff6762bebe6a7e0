package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/convokit/chatbot-api/internal/models"
	"github.com/convokit/chatbot-api/internal/repo/mysql"
)

type ChatUsecase interface {
	Chat(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error)
}

type chatUsecase struct {
	users         mysql.UserRepository
	conversations mysql.ConversationRepository
}

func NewChatUsecase(
	users mysql.UserRepository,
	conversations mysql.ConversationRepository,
) ChatUsecase {
	return &chatUsecase{
		users:         users,
		conversations: conversations,
	}
}

// Chat replies to a user message and records the exchange as a
// conversation owned by the sender.
func (uc *chatUsecase) Chat(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	if _, err := uc.users.GetByID(ctx, req.UserID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrUserNotFound
		}
		return nil, fmt.Errorf("check user: %w", err)
	}

	reply := BotReply(req.UserMessage)

	conversation := &models.Conversation{
		UserID:   req.UserID,
		Message:  req.UserMessage,
		BotReply: &reply,
	}
	if err := uc.conversations.Create(ctx, conversation); err != nil {
		return nil, err
	}

	return &models.ChatResponse{
		BotReply:       reply,
		UserMessage:    req.UserMessage,
		ConversationID: conversation.ID,
		Timestamp:      conversation.CreatedAt.Format("2006-01-02 15:04:05"),
	}, nil
}
