package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/convokit/chatbot-api/internal/models"
	"github.com/convokit/chatbot-api/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserUsecase() (UserUsecase, *stubUserRepo, *stubConversationRepo) {
	users := newStubUserRepo()
	conversations := newStubConversationRepo()
	return NewUserUsecase(users, conversations), users, conversations
}

func TestUserCreateRoundTrip(t *testing.T) {
	uc, _, _ := newUserUsecase()
	ctx := context.Background()

	created, err := uc.Create(ctx, models.UserCreate{Username: "alice", Email: "alice@example.com"})
	require.NoError(t, err)

	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, "alice", created.Username)
	assert.Equal(t, "alice@example.com", created.Email)

	fetched, err := uc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Username, fetched.Username)
	assert.Equal(t, created.Email, fetched.Email)
	assert.Equal(t, created.CreatedAt.Unix(), fetched.CreatedAt.Unix())
}

func TestUserCreateDuplicateEmail(t *testing.T) {
	uc, users, _ := newUserUsecase()
	ctx := context.Background()

	first, err := uc.Create(ctx, models.UserCreate{Username: "alice", Email: "alice@example.com"})
	require.NoError(t, err)

	_, err = uc.Create(ctx, models.UserCreate{Username: "impostor", Email: "alice@example.com"})
	assert.ErrorIs(t, err, models.ErrEmailExists)

	// the existing record is untouched and no second user exists
	assert.Len(t, users.users, 1)
	kept, err := uc.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", kept.Username)
}

func TestUserGetAbsent(t *testing.T) {
	uc, _, _ := newUserUsecase()

	user, err := uc.Get(context.Background(), 42)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.Nil(t, user)
}

func TestUserUpdateSelectivity(t *testing.T) {
	uc, _, _ := newUserUsecase()
	ctx := context.Background()

	created, err := uc.Create(ctx, models.UserCreate{Username: "alice", Email: "alice@example.com"})
	require.NoError(t, err)

	t.Run("only the set field changes", func(t *testing.T) {
		updated, err := uc.Update(ctx, created.ID, models.UserUpdate{Username: util.Ptr("alice2")})
		require.NoError(t, err)
		assert.Equal(t, "alice2", updated.Username)
		assert.Equal(t, "alice@example.com", updated.Email)
	})

	t.Run("explicit empty value is applied", func(t *testing.T) {
		updated, err := uc.Update(ctx, created.ID, models.UserUpdate{Username: util.Ptr("")})
		require.NoError(t, err)
		assert.Equal(t, "", updated.Username)
		assert.Equal(t, "alice@example.com", updated.Email)
	})

	t.Run("empty delta leaves everything unchanged", func(t *testing.T) {
		before, err := uc.Get(ctx, created.ID)
		require.NoError(t, err)

		updated, err := uc.Update(ctx, created.ID, models.UserUpdate{})
		require.NoError(t, err)
		assert.Equal(t, before, updated)
	})

	t.Run("absent id", func(t *testing.T) {
		_, err := uc.Update(ctx, 999, models.UserUpdate{Username: util.Ptr("x")})
		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestUserDeleteObservability(t *testing.T) {
	uc, _, _ := newUserUsecase()
	ctx := context.Background()

	created, err := uc.Create(ctx, models.UserCreate{Username: "alice", Email: "alice@example.com"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, created.ID))
	assert.ErrorIs(t, uc.Delete(ctx, created.ID), models.ErrNotFound)

	_, err = uc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestUserListPaginationCoverage(t *testing.T) {
	uc, _, _ := newUserUsecase()
	ctx := context.Background()

	const total = 7
	for i := 0; i < total; i++ {
		_, err := uc.Create(ctx, models.UserCreate{
			Username: fmt.Sprintf("user%d", i),
			Email:    fmt.Sprintf("user%d@example.com", i),
		})
		require.NoError(t, err)
	}

	const limit = 3
	seen := map[uint]bool{}
	for skip := 0; ; skip += limit {
		page, err := uc.List(ctx, models.PageQuery{Skip: skip, Limit: limit})
		require.NoError(t, err)
		if len(page) == 0 {
			break
		}
		for _, user := range page {
			assert.False(t, seen[user.ID], "user %d returned twice", user.ID)
			seen[user.ID] = true
		}
	}
	assert.Len(t, seen, total)
}

func TestUserConversationCount(t *testing.T) {
	users := newStubUserRepo()
	conversations := newStubConversationRepo()
	uc := NewUserUsecase(users, conversations)
	convoUC := NewConversationUsecase(conversations, users)
	ctx := context.Background()

	alice, err := uc.Create(ctx, models.UserCreate{Username: "alice", Email: "alice@example.com"})
	require.NoError(t, err)

	count, err := uc.ConversationCount(ctx, alice.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	conversation, err := convoUC.Create(ctx, models.ConversationCreate{UserID: alice.ID, Message: "hi"})
	require.NoError(t, err)

	count, err = uc.ConversationCount(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	require.NoError(t, convoUC.Delete(ctx, conversation.ID))
	count, err = uc.ConversationCount(ctx, alice.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	_, err = uc.ConversationCount(ctx, 999)
	assert.ErrorIs(t, err, models.ErrNotFound)
}
