package usecase

import (
	"context"
	"testing"

	"github.com/convokit/chatbot-api/internal/models"
	"github.com/convokit/chatbot-api/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatPersistsConversation(t *testing.T) {
	users := newStubUserRepo()
	conversations := newStubConversationRepo()
	userUC := NewUserUsecase(users, conversations)
	chatUC := NewChatUsecase(users, conversations)
	ctx := context.Background()

	alice, err := userUC.Create(ctx, models.UserCreate{Username: "alice", Email: "alice@example.com"})
	require.NoError(t, err)

	resp, err := chatUC.Chat(ctx, models.ChatRequest{UserID: alice.ID, UserMessage: "hello"})
	require.NoError(t, err)

	assert.Equal(t, "hello", resp.UserMessage)
	assert.Equal(t, "Hi there! How can I help you today?", resp.BotReply)
	assert.NotZero(t, resp.ConversationID)
	assert.NotEmpty(t, resp.Timestamp)

	saved, err := conversations.GetByID(ctx, resp.ConversationID)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, saved.UserID)
	assert.Equal(t, "hello", saved.Message)
	assert.Equal(t, resp.BotReply, util.Val(saved.BotReply))
}

func TestChatUnknownUser(t *testing.T) {
	users := newStubUserRepo()
	conversations := newStubConversationRepo()
	chatUC := NewChatUsecase(users, conversations)

	_, err := chatUC.Chat(context.Background(), models.ChatRequest{UserID: 42, UserMessage: "hello"})
	assert.ErrorIs(t, err, models.ErrUserNotFound)
	assert.Empty(t, conversations.conversations)
}
