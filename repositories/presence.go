//go:generate go run go.uber.org/mock/mockgen -source=presence.go -destination=../mocks/mock_presence_repository.go -package=mocks
package repositories

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

type IPresenceRepository interface {
	SaveLastSeen(username string, at time.Time) error
	LoadLastSeen(username string) (time.Time, error)
}

// PresenceRepository keeps one "username|epochMillis" line per user. Saving
// is a read-modify-write of the whole store, not an in-place patch.
type PresenceRepository struct {
	path string
	log  *slog.Logger
}

func NewPresenceRepository(path string, log *slog.Logger) IPresenceRepository {
	return &PresenceRepository{path: path, log: log}
}

// SaveLastSeen replaces the user's entry, or appends one if absent, then
// rewrites the whole store atomically.
func (r *PresenceRepository) SaveLastSeen(username string, at time.Time) error {
	lines, err := readLines(r.path)
	if err != nil {
		return err
	}
	entry := fmt.Sprintf("%s%s%d", username, delimiter, at.UnixMilli())
	found := false
	out := make([]string, 0, len(lines)+1)
	for _, line := range lines {
		if firstField(line) == username {
			out = append(out, entry)
			found = true
			continue
		}
		out = append(out, line)
	}
	if !found {
		out = append(out, entry)
	}
	return rewriteLines(r.path, out)
}

// LoadLastSeen returns the stored timestamp, or the zero time when the user
// has never been tracked. The zero value means "never offline" and callers
// use it to suppress the offline digest on a first login.
func (r *PresenceRepository) LoadLastSeen(username string) (time.Time, error) {
	lines, err := readLines(r.path)
	if err != nil {
		return time.Time{}, err
	}
	for _, line := range lines {
		name, value, ok := strings.Cut(line, delimiter)
		if !ok || name != username {
			continue
		}
		millis, err := strconv.ParseInt(value, 10, 64)
		if err != nil || millis == 0 {
			if err != nil {
				r.log.Warn("skipping malformed last-seen record", "username", username)
			}
			return time.Time{}, nil
		}
		return time.UnixMilli(millis), nil
	}
	return time.Time{}, nil
}
