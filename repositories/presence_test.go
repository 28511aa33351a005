package repositories

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newPresenceRepo(t *testing.T) (IPresenceRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "last_seen.txt")
	return NewPresenceRepository(path, slog.New(slog.NewTextHandler(io.Discard, nil))), path
}

func TestPresenceRepository_SaveAndLoad(t *testing.T) {
	req := require.New(t)
	repo, _ := newPresenceRepo(t)

	at := time.UnixMilli(1_700_000_000_000)
	req.NoError(repo.SaveLastSeen("alice", at))

	loaded, err := repo.LoadLastSeen("alice")
	req.NoError(err)
	req.Equal(at.UnixMilli(), loaded.UnixMilli())
}

func TestPresenceRepository_SaveReplacesExistingEntry(t *testing.T) {
	req := require.New(t)
	repo, path := newPresenceRepo(t)

	req.NoError(repo.SaveLastSeen("alice", time.UnixMilli(1000)))
	req.NoError(repo.SaveLastSeen("bob", time.UnixMilli(2000)))
	req.NoError(repo.SaveLastSeen("alice", time.UnixMilli(3000)))

	loaded, err := repo.LoadLastSeen("alice")
	req.NoError(err)
	req.Equal(int64(3000), loaded.UnixMilli())

	// One line per user, in first-seen order.
	raw, err := os.ReadFile(path)
	req.NoError(err)
	req.Equal("alice|3000\nbob|2000\n", string(raw))
}

func TestPresenceRepository_UnknownUserIsZeroTime(t *testing.T) {
	req := require.New(t)
	repo, _ := newPresenceRepo(t)

	loaded, err := repo.LoadLastSeen("ghost")
	req.NoError(err)
	req.True(loaded.IsZero())
}

func TestPresenceRepository_MalformedEntryIsZeroTime(t *testing.T) {
	req := require.New(t)
	repo, path := newPresenceRepo(t)

	req.NoError(os.WriteFile(path, []byte("alice|not-millis\n"), 0o644))

	loaded, err := repo.LoadLastSeen("alice")
	req.NoError(err)
	req.True(loaded.IsZero())
}
