package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewMessage_MentionDetection(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		mentioned string
	}{
		{"no mention", "hello everyone", ""},
		{"single mention", "hello @bob", "bob"},
		{"only first mention is tracked", "hello @bob and @carol", "bob"},
		{"bare at sign is not a mention", "meet @ noon", ""},
		{"mention after bare at sign", "meet @ noon with @carol", "carol"},
		{"mention mid-token stays untracked", "mail me at bob@example.com", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			m := NewMessage("alice", tt.content)
			req.Equal(tt.mentioned, m.MentionedUser)
			req.Equal(tt.mentioned != "", m.HasMention)
		})
	}
}

func TestMessage_Render(t *testing.T) {
	req := require.New(t)
	at := time.Date(2024, 3, 1, 9, 5, 0, 0, time.UTC)
	m := NewMessageAt("alice", "standup in 5", at)
	req.Equal("[09:05] alice: standup in 5", m.Render())
}
