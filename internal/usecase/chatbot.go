package usecase

import (
	"strings"
)

// replyRule maps trigger phrases to a canned reply. Rules are checked
// in order and the first phrase found in the message wins.
type replyRule struct {
	phrases []string
	reply   string
}

var replyRules = []replyRule{
	{
		phrases: []string{"hello", "hi", "hey", "greetings"},
		reply:   "Hi there! How can I help you today?",
	},
	{
		phrases: []string{"your name", "who are you"},
		reply:   "I'm ConvoBot, your friendly chat assistant!",
	},
	{
		phrases: []string{"how are you"},
		reply:   "I'm doing great! Thanks for asking. How can I assist you?",
	},
	{
		phrases: []string{"help"},
		reply:   "I can chat with you! Try saying hello, asking how I am, or asking my name.",
	},
}

const fallbackReply = "Interesting! I'm still learning. Can you try asking something else?"

// BotReply produces the rule-based reply for a user message.
func BotReply(input string) string {
	message := strings.ToLower(strings.TrimSpace(input))
	for _, rule := range replyRules {
		for _, phrase := range rule.phrases {
			if strings.Contains(message, phrase) {
				return rule.reply
			}
		}
	}
	return fallbackReply
}
