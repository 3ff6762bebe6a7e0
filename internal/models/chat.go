package models

type ChatRequest struct {
	UserID      uint   `json:"user_id" validate:"required"`
	UserMessage string `json:"user_message" validate:"required"`
}

type ChatResponse struct {
	BotReply       string `json:"bot_reply"`
	UserMessage    string `json:"user_message"`
	ConversationID uint   `json:"conversation_id"`
	Timestamp      string `json:"timestamp"`
}
