package repo

import (
	"context"

	"github.com/convokit/chatbot-api/internal/models"
)

// Repository is the storage contract shared by both backends,
// instantiated per entity. E is the stored entity, ID its identity
// type: integer surrogate keys in MySQL, hex document keys in MongoDB.
//
// Lookups return models.ErrNotFound when nothing matches; that is a
// normal outcome the caller checks with errors.Is, never a storage
// failure. Update applies only the fields present in changes and
// returns the full updated entity; an empty changes map is a no-op
// that returns the current entity. Delete returns models.ErrNotFound
// when no entity matched.
type Repository[E any, ID comparable] interface {
	Create(ctx context.Context, entity *E) error
	GetByID(ctx context.Context, id ID) (*E, error)
	List(ctx context.Context, page models.PageQuery) ([]*E, error)
	Update(ctx context.Context, id ID, changes map[string]any) (*E, error)
	Delete(ctx context.Context, id ID) error
}
