package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserDoc is a document in the users collection.
type UserDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username  string             `bson:"username" json:"username"`
	Email     string             `bson:"email" json:"email"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// ConversationDoc is a document in the conversations collection.
// UserID holds the hex key of the owning user document.
type ConversationDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"user_id" json:"user_id"`
	Message   string             `bson:"message" json:"message"`
	BotReply  *string            `bson:"bot_reply,omitempty" json:"bot_reply,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
