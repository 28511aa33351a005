package internal

import (
	"fmt"
)

// Config holds everything the chat process reads from its environment.
// Each record store lives in its own flat file.
type Config struct {
	UsersFilepath    string `env:"USERS_FILEPATH,default=users.txt"`
	MessagesFilepath string `env:"MESSAGES_FILEPATH,default=chat_history.txt"`
	MentionsFilepath string `env:"MENTIONS_FILEPATH,default=mentions.txt"`
	LastSeenFilepath string `env:"LAST_SEEN_FILEPATH,default=last_seen.txt"`

	GroupName      string `env:"GROUP_NAME,default=Dev Team Chat"`
	RecentMessages int    `env:"RECENT_MESSAGES,default=50"`
	LogLevel       string `env:"LOG_LEVEL,default=INFO"`

	// Comma-separated word list; empty disables moderation.
	CensoredWords []string `env:"CENSORED_WORDS"`
	CensoredChar  string   `env:"CENSORED_CHARACTER,default=*"`
}

// MaskRune converts the configured replacement character, rejecting anything
// that is not exactly one rune.
func (c Config) MaskRune() (rune, error) {
	r := []rune(c.CensoredChar)
	if len(r) != 1 {
		return 0, fmt.Errorf("CENSORED_CHARACTER must be a single character, got %q", c.CensoredChar)
	}
	return r[0], nil
}
