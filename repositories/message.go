//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"groupchat/domain"
)

type IMessageRepository interface {
	Append(message domain.Message) error
	LoadAll() ([]domain.Message, int, error)
}

// MessageRepository is the durable, append-only message log. Records are
// "epochMillis|sender|content" lines; content is everything after the second
// delimiter and is not escaped, so a sender name must never contain '|'.
type MessageRepository struct {
	path string
	log  *slog.Logger
}

func NewMessageRepository(path string, log *slog.Logger) IMessageRepository {
	return &MessageRepository{path: path, log: log}
}

// Append serializes and durably appends the message. On a write error the
// message is not part of the log and the caller must surface the failure.
func (r *MessageRepository) Append(message domain.Message) error {
	return appendLine(r.path, encodeMessage(message))
}

// LoadAll parses every record in file order. Records that fail to parse are
// skipped, not errors: the log tolerates partially written trailing lines.
// The number of skipped records is returned so callers can observe the
// lenient-read policy.
func (r *MessageRepository) LoadAll() ([]domain.Message, int, error) {
	lines, err := readLines(r.path)
	if err != nil {
		return nil, 0, err
	}
	var messages []domain.Message
	skipped := 0
	for i, line := range lines {
		message, ok := decodeMessage(line)
		if !ok {
			skipped++
			r.log.Warn("skipping malformed message record", "line", i+1)
			continue
		}
		messages = append(messages, message)
	}
	return messages, skipped, nil
}

func encodeMessage(m domain.Message) string {
	return fmt.Sprintf("%d%s%s%s%s", m.SentAt.UnixMilli(), delimiter, m.Sender, delimiter, m.Content)
}

// decodeMessage rebuilds a message from its record. Mention state is derived
// again from the content, exactly as it was at creation time.
func decodeMessage(line string) (domain.Message, bool) {
	parts := strings.SplitN(line, delimiter, 3)
	if len(parts) != 3 {
		return domain.Message{}, false
	}
	millis, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return domain.Message{}, false
	}
	return domain.NewMessageAt(parts[1], parts[2], time.UnixMilli(millis)), true
}
