package notification

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"groupchat/domain"
)

func msgAt(sender, content string, millis int64) domain.Message {
	return domain.NewMessageAt(sender, content, time.UnixMilli(millis))
}

func TestOfflineDigest_EmptyWhenNothingMissed(t *testing.T) {
	req := require.New(t)
	ref := time.UnixMilli(5000)

	// Only older messages, and own messages after the reference.
	messages := []domain.Message{
		msgAt("bob", "before", 1000),
		msgAt("alice", "own message", 9000),
	}
	req.Empty(OfflineDigest(messages, "alice", ref))
	req.Empty(OfflineDigest(nil, "alice", ref))
}

func TestOfflineDigest_SingleMessageEdge(t *testing.T) {
	req := require.New(t)
	messages := []domain.Message{msgAt("alice", "hi", 0)}

	// Own message at the reference instant: nothing to report.
	req.Empty(OfflineDigest(messages, "alice", time.UnixMilli(0)))

	// Same instant from somebody else, reference just before it.
	digest := OfflineDigest([]domain.Message{msgAt("bob", "hi", 0)}, "alice", time.UnixMilli(-1))
	req.Contains(digest, "📬 You received 1 message(s) while offline!")
	req.Contains(digest, "• bob: 1 msg (100%)")
}

func TestOfflineDigest_CountsAndDistribution(t *testing.T) {
	req := require.New(t)
	ref := time.UnixMilli(0)

	messages := []domain.Message{
		msgAt("bob", "first", 60_000),
		msgAt("bob", "second", 120_000),
		msgAt("carol", "third", 200_000),
		msgAt("alice", "mine, filtered out", 250_000),
	}
	digest := OfflineDigest(messages, "alice", ref)

	req.Contains(digest, "📬 You received 3 message(s) while offline!")
	req.Contains(digest, "• bob: 2 msgs (67%)")
	req.Contains(digest, "• carol: 1 msg (33%)")
	req.Contains(digest, "✓ No urgent mentions")
	req.NotContains(digest, "mine, filtered out")
}

func TestOfflineDigest_MentionsShownInFull(t *testing.T) {
	req := require.New(t)
	long := strings.Repeat("x", 80)

	messages := []domain.Message{
		msgAt("bob", "@alice "+long, 60_000),
	}
	digest := OfflineDigest(messages, "alice", time.UnixMilli(0))

	// The important section carries the whole content; the recent section
	// truncates at 50.
	req.Contains(digest, "🔔 bob: @alice "+long)
	req.Contains(digest, "1. bob: "+("@alice "+long)[:47]+"...")
	req.NotContains(digest, "No urgent mentions")
}

func TestOfflineDigest_TimeAnalysis(t *testing.T) {
	req := require.New(t)
	base := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

	messages := []domain.Message{
		domain.NewMessageAt("bob", "first", base),
		domain.NewMessageAt("carol", "last", base.Add(7*time.Minute+30*time.Second)),
	}
	digest := OfflineDigest(messages, "alice", time.Time{})

	req.Contains(digest, "• First: 09:00")
	req.Contains(digest, "• Last: 09:07")
	req.Contains(digest, "• Duration: 7 minute(s)")
}

func TestMentionAlert(t *testing.T) {
	req := require.New(t)

	req.Empty(MentionAlert(nil))

	alert := MentionAlert([]string{"[10:00] bob: hi @alice"})
	req.Contains(alert, "You were mentioned 1 time(s) while offline:")
	req.Contains(alert, "- [10:00] bob: hi @alice")
	req.NotContains(alert, "more")

	pending := []string{"a", "b", "c", "d", "e", "f", "g"}
	alert = MentionAlert(pending)
	req.Contains(alert, "You were mentioned 7 time(s) while offline:")
	req.Contains(alert, "- e\n")
	req.NotContains(alert, "- f\n")
	req.Contains(alert, "... and 2 more")
}

func TestUnreadSummary(t *testing.T) {
	req := require.New(t)
	ref := time.UnixMilli(0)

	req.Equal("No new messages", UnreadSummary(nil, "alice", ref))

	var messages []domain.Message
	for i := int64(1); i <= 7; i++ {
		messages = append(messages, msgAt("bob", "msg", i*60_000))
	}
	summary := UnreadSummary(messages, "alice", ref)
	req.Equal(5, strings.Count(summary, "bob: msg"))
	req.Contains(summary, "... and 2 more messages")
}

func TestChatSummary_Empty(t *testing.T) {
	require.Equal(t, "No messages in chat yet!", ChatSummary(nil, 3, "alice", time.Now()))
}

func TestChatSummary_Statistics(t *testing.T) {
	req := require.New(t)
	base := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

	messages := []domain.Message{
		domain.NewMessageAt("alice", "morning all", base),
		domain.NewMessageAt("alice", "ready for standup?", base.Add(5*time.Minute)),
		domain.NewMessageAt("alice", "@bob your turn", base.Add(10*time.Minute)),
		domain.NewMessageAt("bob", "done, no blockers", base.Add(75*time.Minute)),
	}
	summary := ChatSummary(messages, 2, "alice", base.Add(2*time.Hour))

	req.Contains(summary, "• Total Messages: 4")
	req.Contains(summary, "• Active Members: 2")
	req.Contains(summary, "• Chat Duration: 1h 15m")
	req.Contains(summary, "• Started: Mar 10, 09:00")

	req.Contains(summary, "• Most Active: alice (3 messages)")
	req.Contains(summary, "alice (YOU): [███████░░░] 3 (75%)")
	req.Contains(summary, "bob: [██░░░░░░░░] 1 (25%)")

	req.Contains(summary, "• Total Mentions: 1")
	req.Contains(summary, "• Questions Asked: 1")
	req.Contains(summary, "• Detailed Messages: 0 (>100 chars)")

	req.Contains(summary, "• Your Messages: 3 (75.0%)")
	req.Contains(summary, "• You Mentioned Others: 1")
	req.Contains(summary, "• Engagement Level: Very High")

	req.Contains(summary, "Top 1 tagged discussions:")
	req.Contains(summary, "1. alice: @bob your turn")

	req.Contains(summary, "📌 Great engagement! You're very active")
	req.Contains(summary, "Generated: Mar 10, 11:00:00")
}

func TestChatSummary_MostActiveTieBreaksToFirstSender(t *testing.T) {
	req := require.New(t)

	messages := []domain.Message{
		msgAt("bob", "one", 1000),
		msgAt("carol", "two", 2000),
		msgAt("carol", "three", 3000),
		msgAt("bob", "four", 4000),
	}
	summary := ChatSummary(messages, 2, "dave", time.Now())
	req.Contains(summary, "• Most Active: bob (2 messages)")
}

func TestChatSummary_NoEngagementTierWithoutOwnMessages(t *testing.T) {
	req := require.New(t)

	summary := ChatSummary([]domain.Message{msgAt("bob", "hello", 1000)}, 2, "alice", time.Now())
	req.NotContains(summary, "Engagement Level")
	req.Contains(summary, "📌 Start participating in the conversation!")
}

func TestEngagementTier(t *testing.T) {
	tests := []struct {
		participation float64
		want          string
	}{
		{participation: 75, want: "Very High"},
		{participation: 50, want: "High"},
		{participation: 31, want: "High"},
		{participation: 30, want: "Moderate"},
		{participation: 16, want: "Moderate"},
		{participation: 15, want: "Low"},
		{participation: 0, want: "Low"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, engagementTier(tt.participation))
	}
}

func TestTruncate(t *testing.T) {
	req := require.New(t)
	req.Equal("short", truncate("short", 40))
	req.Equal(strings.Repeat("a", 40), truncate(strings.Repeat("a", 40), 40))
	req.Equal(strings.Repeat("a", 37)+"...", truncate(strings.Repeat("a", 41), 40))

	// Multi-byte content counts characters, not bytes.
	req.Equal(strings.Repeat("é", 40), truncate(strings.Repeat("é", 40), 40))
	req.Equal(strings.Repeat("é", 37)+"...", truncate(strings.Repeat("é", 41), 40))
}

func TestProgressBar(t *testing.T) {
	req := require.New(t)
	req.Equal("[░░░░░░░░░░]", progressBar(0))
	req.Equal("[███░░░░░░░]", progressBar(33))
	req.Equal("[██████████]", progressBar(100))
}
