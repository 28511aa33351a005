//go:generate go run go.uber.org/mock/mockgen -source=mention.go -destination=../mocks/mock_mention_repository.go -package=mocks
package repositories

import (
	"log/slog"
	"strings"
)

type IMentionRepository interface {
	Record(target, rendered string) error
	PendingFor(username string) ([]string, error)
	ClearFor(username string) error
}

// MentionRepository is the pending-mention queue, one
// "targetUser|renderedMessageText" line per entry. The rendered text is the
// on-screen form of the message, so stored mentions are self-describing.
// Each (user, mention) pair moves from pending to cleared and nothing else.
type MentionRepository struct {
	path string
	log  *slog.Logger
}

func NewMentionRepository(path string, log *slog.Logger) IMentionRepository {
	return &MentionRepository{path: path, log: log}
}

// Record appends a pending entry for the target user.
func (r *MentionRepository) Record(target, rendered string) error {
	return appendLine(r.path, target+delimiter+rendered)
}

// PendingFor returns every pending rendered text for the user in file order.
// Entries stay queued until ClearFor.
func (r *MentionRepository) PendingFor(username string) ([]string, error) {
	lines, err := readLines(r.path)
	if err != nil {
		return nil, err
	}
	var pending []string
	for _, line := range lines {
		target, rendered, ok := strings.Cut(line, delimiter)
		if ok && target == username {
			pending = append(pending, rendered)
		}
	}
	return pending, nil
}

// ClearFor removes every entry for the user, rewriting the store with all
// other users' entries preserved verbatim in their original order.
func (r *MentionRepository) ClearFor(username string) error {
	lines, err := readLines(r.path)
	if err != nil {
		return err
	}
	if lines == nil {
		return nil
	}
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if firstField(line) != username {
			kept = append(kept, line)
		}
	}
	return rewriteLines(r.path, kept)
}
