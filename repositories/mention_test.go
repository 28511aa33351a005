package repositories

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func newMentionRepo(t *testing.T) (IMentionRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mentions.txt")
	return NewMentionRepository(path, slog.New(slog.NewTextHandler(io.Discard, nil))), path
}

func TestMentionRepository_RecordAndPending(t *testing.T) {
	req := require.New(t)
	repo, _ := newMentionRepo(t)

	req.NoError(repo.Record("bob", "[10:00] alice: ping @bob"))
	req.NoError(repo.Record("carol", "[10:01] alice: hey @carol"))
	req.NoError(repo.Record("bob", "[10:02] dave: @bob lunch?"))

	pending, err := repo.PendingFor("bob")
	req.NoError(err)
	req.Equal([]string{"[10:00] alice: ping @bob", "[10:02] dave: @bob lunch?"}, pending)

	pending, err = repo.PendingFor("eve")
	req.NoError(err)
	req.Empty(pending)
}

func TestMentionRepository_ClearFor(t *testing.T) {
	req := require.New(t)
	repo, path := newMentionRepo(t)

	req.NoError(repo.Record("bob", "one"))
	req.NoError(repo.Record("carol", "two"))
	req.NoError(repo.Record("bob", "three"))

	req.NoError(repo.ClearFor("bob"))

	pending, err := repo.PendingFor("bob")
	req.NoError(err)
	req.Empty(pending)

	// Other users' entries survive, byte for byte.
	raw, err := os.ReadFile(path)
	req.NoError(err)
	req.Equal("carol|two\n", string(raw))
}

func TestMentionRepository_ClearForMissingFile(t *testing.T) {
	req := require.New(t)
	repo, path := newMentionRepo(t)

	req.NoError(repo.ClearFor("bob"))

	// Clearing an empty queue must not create the file.
	_, err := os.Stat(path)
	req.True(os.IsNotExist(err))
}

func TestMentionRepository_RenderedTextMayContainDelimiter(t *testing.T) {
	req := require.New(t)
	repo, _ := newMentionRepo(t)

	req.NoError(repo.Record("bob", "[10:00] alice: yes|no @bob"))

	pending, err := repo.PendingFor("bob")
	req.NoError(err)
	req.Equal([]string{"[10:00] alice: yes|no @bob"}, pending)
}
