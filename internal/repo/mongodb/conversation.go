package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/convokit/chatbot-api/internal/models"
	"github.com/convokit/chatbot-api/internal/repo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ConversationRepository interface {
	Create(ctx context.Context, conversation *models.ConversationDoc) error
	GetByID(ctx context.Context, id string) (*models.ConversationDoc, error)
	List(ctx context.Context, page models.PageQuery) ([]*models.ConversationDoc, error)
	ListByUser(ctx context.Context, userID string, page models.PageQuery) ([]*models.ConversationDoc, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
	Update(ctx context.Context, id string, changes map[string]any) (*models.ConversationDoc, error)
	Delete(ctx context.Context, id string) error
}

var _ repo.Repository[models.ConversationDoc, string] = (ConversationRepository)(nil)

type conversationRepo struct {
	collection *mongo.Collection
}

func NewConversationRepository(db *DB) ConversationRepository {
	return &conversationRepo{
		collection: db.Database.Collection("conversations"),
	}
}

func (r *conversationRepo) Create(ctx context.Context, conversation *models.ConversationDoc) error {
	conversation.ID = primitive.NewObjectID()
	conversation.CreatedAt = time.Now()

	if _, err := r.collection.InsertOne(ctx, conversation); err != nil {
		return fmt.Errorf("create conversation: %w", err)
	}
	return nil
}

func (r *conversationRepo) GetByID(ctx context.Context, id string) (*models.ConversationDoc, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrNotFound
	}

	var conversation models.ConversationDoc
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&conversation)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get conversation: %w", err)
	}
	return &conversation, nil
}

func (r *conversationRepo) List(ctx context.Context, page models.PageQuery) ([]*models.ConversationDoc, error) {
	return r.find(ctx, bson.M{}, page)
}

func (r *conversationRepo) ListByUser(ctx context.Context, userID string, page models.PageQuery) ([]*models.ConversationDoc, error) {
	return r.find(ctx, bson.M{"user_id": userID}, page)
}

func (r *conversationRepo) find(ctx context.Context, filter bson.M, page models.PageQuery) ([]*models.ConversationDoc, error) {
	page = page.Normalize()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(page.Skip)).
		SetLimit(int64(page.Limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}

	var conversations []*models.ConversationDoc
	if err := cursor.All(ctx, &conversations); err != nil {
		return nil, fmt.Errorf("decode conversations: %w", err)
	}
	return conversations, nil
}

func (r *conversationRepo) CountByUser(ctx context.Context, userID string) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"user_id": userID})
	if err != nil {
		return 0, fmt.Errorf("count user conversations: %w", err)
	}
	return count, nil
}

func (r *conversationRepo) Update(ctx context.Context, id string, changes map[string]any) (*models.ConversationDoc, error) {
	if len(changes) == 0 {
		return r.GetByID(ctx, id)
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrNotFound
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var conversation models.ConversationDoc
	err = r.collection.
		FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": changes}, opts).
		Decode(&conversation)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update conversation: %w", err)
	}
	return &conversation, nil
}

func (r *conversationRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.ErrNotFound
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete conversation: %w", err)
	}
	if result.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}
