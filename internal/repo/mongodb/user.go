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

type UserRepository interface {
	Create(ctx context.Context, user *models.UserDoc) error
	GetByID(ctx context.Context, id string) (*models.UserDoc, error)
	GetByEmail(ctx context.Context, email string) (*models.UserDoc, error)
	GetByUsername(ctx context.Context, username string) (*models.UserDoc, error)
	List(ctx context.Context, page models.PageQuery) ([]*models.UserDoc, error)
	Update(ctx context.Context, id string, changes map[string]any) (*models.UserDoc, error)
	Delete(ctx context.Context, id string) error
}

var _ repo.Repository[models.UserDoc, string] = (UserRepository)(nil)

type userRepo struct {
	collection *mongo.Collection
}

func NewUserRepository(db *DB) UserRepository {
	return &userRepo{
		collection: db.Database.Collection("users"),
	}
}

func (r *userRepo) Create(ctx context.Context, user *models.UserDoc) error {
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()

	if _, err := r.collection.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*models.UserDoc, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// a malformed key cannot match any document
		return nil, models.ErrNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*models.UserDoc, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*models.UserDoc, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *userRepo) findOne(ctx context.Context, filter bson.M) (*models.UserDoc, error) {
	var user models.UserDoc
	err := r.collection.FindOne(ctx, filter).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &user, nil
}

func (r *userRepo) List(ctx context.Context, page models.PageQuery) ([]*models.UserDoc, error) {
	page = page.Normalize()

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(int64(page.Skip)).
		SetLimit(int64(page.Limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	var users []*models.UserDoc
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}

func (r *userRepo) Update(ctx context.Context, id string, changes map[string]any) (*models.UserDoc, error) {
	if len(changes) == 0 {
		return r.GetByID(ctx, id)
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrNotFound
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user models.UserDoc
	err = r.collection.
		FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": changes}, opts).
		Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return &user, nil
}

func (r *userRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.ErrNotFound
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if result.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}
