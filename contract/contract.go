// Package contract declares the narrow capability surfaces a presentation
// layer drives. Any front (terminal, GUI, test harness) talks to the chat
// session through these and nothing else.
package contract

import (
	"groupchat/domain"
)

// MessageActions is the message-exchange surface of a chat session.
type MessageActions interface {
	SendMessage(sender, content string) (domain.Message, error)
	Recent(n int) []domain.Message
	Members() []*domain.Member
}

// NotificationHandler is the alerting and summarizing surface of a chat
// session. Every method returns display-ready text; an empty string means
// there is nothing to show.
type NotificationHandler interface {
	OfflineDigest(username string) (string, error)
	MentionAlert(username string) (string, error)
	UnreadSummary(username string) (string, error)
	ChatSummary(username string) (string, error)
}
