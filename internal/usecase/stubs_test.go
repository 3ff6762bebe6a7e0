package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/convokit/chatbot-api/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repository stubs used by the usecase tests.

type stubUserRepo struct {
	users  map[uint]models.User
	nextID uint
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: map[uint]models.User{}}
}

func (s *stubUserRepo) Create(_ context.Context, user *models.User) error {
	s.nextID++
	user.ID = s.nextID
	user.CreatedAt = time.Now()
	s.users[user.ID] = *user
	return nil
}

func (s *stubUserRepo) GetByID(_ context.Context, id uint) (*models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &user, nil
}

func (s *stubUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range s.users {
		if user.Email == email {
			return &user, nil
		}
	}
	return nil, models.ErrNotFound
}

func (s *stubUserRepo) GetWithConversations(ctx context.Context, id uint) (*models.User, error) {
	return s.GetByID(ctx, id)
}

func (s *stubUserRepo) List(_ context.Context, page models.PageQuery) ([]*models.User, error) {
	page = page.Normalize()

	ids := make([]uint, 0, len(s.users))
	for id := range s.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var out []*models.User
	for i, id := range ids {
		if i < page.Skip {
			continue
		}
		if len(out) == page.Limit {
			break
		}
		user := s.users[id]
		out = append(out, &user)
	}
	return out, nil
}

func (s *stubUserRepo) Update(_ context.Context, id uint, changes map[string]any) (*models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	if username, ok := changes["username"]; ok {
		user.Username = username.(string)
	}
	if email, ok := changes["email"]; ok {
		user.Email = email.(string)
	}
	s.users[id] = user
	return &user, nil
}

func (s *stubUserRepo) Delete(_ context.Context, id uint) error {
	if _, ok := s.users[id]; !ok {
		return models.ErrNotFound
	}
	delete(s.users, id)
	return nil
}

type stubConversationRepo struct {
	conversations map[uint]models.Conversation
	nextID        uint
}

func newStubConversationRepo() *stubConversationRepo {
	return &stubConversationRepo{conversations: map[uint]models.Conversation{}}
}

func (s *stubConversationRepo) Create(_ context.Context, conversation *models.Conversation) error {
	s.nextID++
	conversation.ID = s.nextID
	conversation.CreatedAt = time.Now()
	s.conversations[conversation.ID] = *conversation
	return nil
}

func (s *stubConversationRepo) GetByID(_ context.Context, id uint) (*models.Conversation, error) {
	conversation, ok := s.conversations[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &conversation, nil
}

func (s *stubConversationRepo) sorted() []models.Conversation {
	out := make([]models.Conversation, 0, len(s.conversations))
	for _, c := range s.conversations {
		out = append(out, c)
	}
	// newest first, matching the repository ordering
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (s *stubConversationRepo) List(_ context.Context, page models.PageQuery) ([]*models.Conversation, error) {
	return paginate(s.sorted(), page, nil), nil
}

func (s *stubConversationRepo) ListByUser(_ context.Context, userID uint, page models.PageQuery) ([]*models.Conversation, error) {
	match := func(c models.Conversation) bool { return c.UserID == userID }
	return paginate(s.sorted(), page, match), nil
}

func paginate(all []models.Conversation, page models.PageQuery, match func(models.Conversation) bool) []*models.Conversation {
	page = page.Normalize()

	var out []*models.Conversation
	skipped := 0
	for _, c := range all {
		if match != nil && !match(c) {
			continue
		}
		if skipped < page.Skip {
			skipped++
			continue
		}
		if len(out) == page.Limit {
			break
		}
		c := c
		out = append(out, &c)
	}
	return out
}

func (s *stubConversationRepo) CountByUser(_ context.Context, userID uint) (int64, error) {
	var count int64
	for _, c := range s.conversations {
		if c.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (s *stubConversationRepo) Update(_ context.Context, id uint, changes map[string]any) (*models.Conversation, error) {
	conversation, ok := s.conversations[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	if message, ok := changes["message"]; ok {
		conversation.Message = message.(string)
	}
	if reply, ok := changes["bot_reply"]; ok {
		value := reply.(string)
		conversation.BotReply = &value
	}
	s.conversations[id] = conversation
	return &conversation, nil
}

func (s *stubConversationRepo) Delete(_ context.Context, id uint) error {
	if _, ok := s.conversations[id]; !ok {
		return models.ErrNotFound
	}
	delete(s.conversations, id)
	return nil
}

// Document-backend stubs; identifiers are hex keys.

type stubDocUserRepo struct {
	users map[string]models.UserDoc
	order []string
}

func newStubDocUserRepo() *stubDocUserRepo {
	return &stubDocUserRepo{users: map[string]models.UserDoc{}}
}

func (s *stubDocUserRepo) Create(_ context.Context, user *models.UserDoc) error {
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()
	s.users[user.ID.Hex()] = *user
	s.order = append(s.order, user.ID.Hex())
	return nil
}

func (s *stubDocUserRepo) GetByID(_ context.Context, id string) (*models.UserDoc, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &user, nil
}

func (s *stubDocUserRepo) GetByEmail(_ context.Context, email string) (*models.UserDoc, error) {
	for _, user := range s.users {
		if user.Email == email {
			return &user, nil
		}
	}
	return nil, models.ErrNotFound
}

func (s *stubDocUserRepo) GetByUsername(_ context.Context, username string) (*models.UserDoc, error) {
	for _, user := range s.users {
		if user.Username == username {
			return &user, nil
		}
	}
	return nil, models.ErrNotFound
}

func (s *stubDocUserRepo) List(_ context.Context, page models.PageQuery) ([]*models.UserDoc, error) {
	page = page.Normalize()

	var out []*models.UserDoc
	for i, id := range s.order {
		if i < page.Skip {
			continue
		}
		if len(out) == page.Limit {
			break
		}
		user := s.users[id]
		out = append(out, &user)
	}
	return out, nil
}

func (s *stubDocUserRepo) Update(_ context.Context, id string, changes map[string]any) (*models.UserDoc, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	if username, ok := changes["username"]; ok {
		user.Username = username.(string)
	}
	if email, ok := changes["email"]; ok {
		user.Email = email.(string)
	}
	s.users[id] = user
	return &user, nil
}

func (s *stubDocUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := s.users[id]; !ok {
		return models.ErrNotFound
	}
	delete(s.users, id)
	return nil
}

type stubDocConversationRepo struct {
	conversations map[string]models.ConversationDoc
	order         []string
}

func newStubDocConversationRepo() *stubDocConversationRepo {
	return &stubDocConversationRepo{conversations: map[string]models.ConversationDoc{}}
}

func (s *stubDocConversationRepo) Create(_ context.Context, conversation *models.ConversationDoc) error {
	conversation.ID = primitive.NewObjectID()
	conversation.CreatedAt = time.Now()
	s.conversations[conversation.ID.Hex()] = *conversation
	s.order = append(s.order, conversation.ID.Hex())
	return nil
}

func (s *stubDocConversationRepo) GetByID(_ context.Context, id string) (*models.ConversationDoc, error) {
	conversation, ok := s.conversations[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &conversation, nil
}

func (s *stubDocConversationRepo) List(_ context.Context, page models.PageQuery) ([]*models.ConversationDoc, error) {
	return s.page(page, func(models.ConversationDoc) bool { return true }), nil
}

func (s *stubDocConversationRepo) ListByUser(_ context.Context, userID string, page models.PageQuery) ([]*models.ConversationDoc, error) {
	return s.page(page, func(c models.ConversationDoc) bool { return c.UserID == userID }), nil
}

func (s *stubDocConversationRepo) page(page models.PageQuery, match func(models.ConversationDoc) bool) []*models.ConversationDoc {
	page = page.Normalize()

	// newest first: iterate insertion order backwards
	var out []*models.ConversationDoc
	skipped := 0
	for i := len(s.order) - 1; i >= 0; i-- {
		c, ok := s.conversations[s.order[i]]
		if !ok || !match(c) {
			continue
		}
		if skipped < page.Skip {
			skipped++
			continue
		}
		if len(out) == page.Limit {
			break
		}
		out = append(out, &c)
	}
	return out
}

func (s *stubDocConversationRepo) CountByUser(_ context.Context, userID string) (int64, error) {
	var count int64
	for _, c := range s.conversations {
		if c.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (s *stubDocConversationRepo) Update(_ context.Context, id string, changes map[string]any) (*models.ConversationDoc, error) {
	conversation, ok := s.conversations[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	if message, ok := changes["message"]; ok {
		conversation.Message = message.(string)
	}
	if reply, ok := changes["bot_reply"]; ok {
		value := reply.(string)
		conversation.BotReply = &value
	}
	s.conversations[id] = conversation
	return &conversation, nil
}

func (s *stubDocConversationRepo) Delete(_ context.Context, id string) error {
	if _, ok := s.conversations[id]; !ok {
		return models.ErrNotFound
	}
	delete(s.conversations, id)
	return nil
}
