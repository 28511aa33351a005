// Package domain contains core concepts of the chat system.
// This file defines Member entities and their presence rules.
package domain

import (
	"fmt"
	"time"
)

// Member is a chat participant. Online is session local and never persisted;
// LastSeen refreshes whenever the member transitions to offline.
type Member struct {
	Username string
	Password string
	Online   bool
	LastSeen time.Time
}

func NewMember(username, password string) *Member {
	return &Member{
		Username: username,
		Password: password,
		LastSeen: time.Now(),
	}
}

// SetOnline flips the presence flag. Going offline stamps LastSeen.
func (m *Member) SetOnline(online bool) {
	m.Online = online
	if !online {
		m.LastSeen = time.Now()
	}
}

// Status renders the member for roster displays.
func (m *Member) Status() string {
	if m.Online {
		return fmt.Sprintf("%s (Online)", m.Username)
	}
	return fmt.Sprintf("%s (Offline)", m.Username)
}
