package models

import (
	"time"
)

// User is a row in the users table.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"size:50;not null"`
	Email     string    `json:"email" gorm:"size:100;uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Conversations is populated only by eager-loading queries.
	Conversations []Conversation `json:"conversations,omitempty" gorm:"foreignKey:UserID"`
}

// Conversation is a row in the conversations table. BotReply is nullable.
type Conversation struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	BotReply  *string   `json:"bot_reply" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
