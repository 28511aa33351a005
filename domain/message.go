// Package domain contains core concepts of the chat system.
// This file defines Message events and related rules.
// Messages are immutable and validated by the domain.
package domain

import (
	"fmt"
	"strings"
	"time"
)

// Message represents an immutable chat event. Mention detection happens once
// at construction: the first whitespace-separated token starting with '@' and
// longer than the marker itself becomes the mentioned user. A message may
// visually contain several '@' references but only the first one is tracked.
type Message struct {
	Sender        string
	Content       string
	SentAt        time.Time
	HasMention    bool
	MentionedUser string
}

// NewMessage builds a message stamped with the current time.
func NewMessage(sender, content string) Message {
	return NewMessageAt(sender, content, time.Now())
}

// NewMessageAt builds a message with an explicit timestamp.
func NewMessageAt(sender, content string, at time.Time) Message {
	mentioned := firstMention(content)
	return Message{
		Sender:        sender,
		Content:       content,
		SentAt:        at,
		HasMention:    mentioned != "",
		MentionedUser: mentioned,
	}
}

func firstMention(content string) string {
	if !strings.Contains(content, "@") {
		return ""
	}
	for _, word := range strings.Fields(content) {
		if strings.HasPrefix(word, "@") && len(word) > 1 {
			return word[1:]
		}
	}
	return ""
}

// Render formats the message the way it is shown on screen:
// "[HH:MM] sender: content". Stored mentions reuse this rendering so they
// stay readable without re-joining against the message log.
func (m Message) Render() string {
	return fmt.Sprintf("[%s] %s: %s", m.SentAt.Format("15:04"), m.Sender, m.Content)
}
