package models

// Create and update payloads shared by the HTTP layer and usecases.
//
// Update payloads use pointer fields so that "explicitly set to empty"
// and "omitted" stay distinguishable after JSON binding. Changes()
// turns the set fields into a column/field map that both storage
// backends apply verbatim.

type UserCreate struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
}

type UserUpdate struct {
	Username *string `json:"username"`
	Email    *string `json:"email" validate:"omitempty,email"`
}

// Changes returns only the fields the caller explicitly set.
func (u UserUpdate) Changes() map[string]any {
	changes := map[string]any{}
	if u.Username != nil {
		changes["username"] = *u.Username
	}
	if u.Email != nil {
		changes["email"] = *u.Email
	}
	return changes
}

type ConversationCreate struct {
	UserID   uint    `json:"user_id" validate:"required"`
	Message  string  `json:"message" validate:"required"`
	BotReply *string `json:"bot_reply"`
}

// ConversationDocCreate is the document-backend variant; the owning
// user is addressed by its hex document key.
type ConversationDocCreate struct {
	UserID   string  `json:"user_id" validate:"required"`
	Message  string  `json:"message" validate:"required"`
	BotReply *string `json:"bot_reply"`
}

type ConversationUpdate struct {
	Message  *string `json:"message"`
	BotReply *string `json:"bot_reply"`
}

func (c ConversationUpdate) Changes() map[string]any {
	changes := map[string]any{}
	if c.Message != nil {
		changes["message"] = *c.Message
	}
	if c.BotReply != nil {
		changes["bot_reply"] = *c.BotReply
	}
	return changes
}
