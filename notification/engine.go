// Package notification renders the reports shown to members: the offline
// message digest, the pending-mention alert, and the whole-chat summary.
// Everything here is a pure computation over a snapshot of the aggregate;
// nothing reads state or performs IO.
package notification

import (
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"

	"groupchat/domain"
)

// OfflineDigest builds the catch-up report over every message sent after the
// reference point by somebody else. Zero qualifying messages produce an empty
// string, not an empty report.
func OfflineDigest(messages []domain.Message, current string, ref time.Time) string {
	offline := lo.Filter(messages, func(m domain.Message, _ int) bool {
		return m.SentAt.After(ref) && m.Sender != current
	})
	if len(offline) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("╔═══════════════════════════════════════╗\n")
	b.WriteString("║   OFFLINE MESSAGES SUMMARY            ║\n")
	b.WriteString("╚═══════════════════════════════════════╝\n\n")
	fmt.Fprintf(&b, "📬 You received %d message(s) while offline!\n\n", len(offline))

	senders := lo.Uniq(lo.Map(offline, func(m domain.Message, _ int) string { return m.Sender }))
	counts := lo.CountValuesBy(offline, func(m domain.Message) string { return m.Sender })

	b.WriteString("📊 MESSAGE DISTRIBUTION:\n")
	for _, sender := range senders {
		count := counts[sender]
		percent := float64(count) * 100 / float64(len(offline))
		plural := ""
		if count > 1 {
			plural = "s"
		}
		fmt.Fprintf(&b, "   • %s: %d msg%s (%.0f%%)\n", sender, count, plural, percent)
	}
	b.WriteString("\n")

	// Mentions of the reader are shown in full, never truncated.
	b.WriteString("⚠️ IMPORTANT MESSAGES:\n")
	important := 0
	for _, m := range offline {
		if m.HasMention && m.MentionedUser == current {
			important++
			fmt.Fprintf(&b, "   🔔 %s: %s\n", m.Sender, m.Content)
		}
	}
	if important == 0 {
		b.WriteString("   ✓ No urgent mentions\n")
	}
	b.WriteString("\n")

	b.WriteString("💬 RECENT MESSAGES:\n")
	for i, m := range lastN(offline, 5) {
		fmt.Fprintf(&b, "   %d. %s: %s\n", i+1, m.Sender, truncate(m.Content, 50))
	}
	b.WriteString("\n")

	first := offline[0]
	last := offline[len(offline)-1]
	minutes := (last.SentAt.UnixMilli() - first.SentAt.UnixMilli()) / 60000
	b.WriteString("⏰ TIME ANALYSIS:\n")
	fmt.Fprintf(&b, "   • First: %s\n", first.SentAt.Format("15:04"))
	fmt.Fprintf(&b, "   • Last: %s\n", last.SentAt.Format("15:04"))
	fmt.Fprintf(&b, "   • Duration: %d minute(s)\n\n", minutes)

	b.WriteString("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n")
	b.WriteString("💡 TIP: Scroll up in chat to see full history")
	return b.String()
}

// MentionAlert renders the pending-mention entries for a user: the first five
// in full, then a count of the remainder. No entries, no alert.
func MentionAlert(pending []string) string {
	if len(pending) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "You were mentioned %d time(s) while offline:\n\n", len(pending))
	for _, entry := range pending[:min(len(pending), 5)] {
		fmt.Fprintf(&b, "- %s\n", entry)
	}
	if len(pending) > 5 {
		fmt.Fprintf(&b, "\n... and %d more", len(pending)-5)
	}
	return b.String()
}

// UnreadSummary is the compact variant of the digest: the first five unread
// messages rendered in full plus an overflow count.
func UnreadSummary(messages []domain.Message, current string, ref time.Time) string {
	count := 0
	var b strings.Builder
	for _, m := range messages {
		if m.SentAt.After(ref) && m.Sender != current {
			count++
			if count <= 5 {
				b.WriteString(m.Render() + "\n")
			}
		}
	}
	if count > 5 {
		fmt.Fprintf(&b, "\n... and %d more messages", count-5)
	}
	if b.Len() == 0 {
		return "No new messages"
	}
	return b.String()
}

// ChatSummary reports statistics over the full history: totals, per-sender
// activity with glyph bars, communication patterns, the caller's involvement
// and engagement tier, tagged and recent messages, and rule-based tips.
func ChatSummary(messages []domain.Message, memberCount int, current string, now time.Time) string {
	if len(messages) == 0 {
		return "No messages in chat yet!"
	}

	var b strings.Builder
	b.WriteString("╔════════════════════════════════════════╗\n")
	b.WriteString("║    COMPLETE CHAT SUMMARY               ║\n")
	b.WriteString("║         KEY POINTS                     ║\n")
	b.WriteString("╚════════════════════════════════════════╝\n\n")

	total := len(messages)

	b.WriteString("📈 KEY POINT 1: OVERALL STATISTICS\n")
	fmt.Fprintf(&b, "   • Total Messages: %d\n", total)
	fmt.Fprintf(&b, "   • Active Members: %d\n", memberCount)
	if total > 1 {
		span := messages[total-1].SentAt.UnixMilli() - messages[0].SentAt.UnixMilli()
		hours := span / (1000 * 60 * 60)
		minutes := (span / (1000 * 60)) % 60
		b.WriteString("   • Chat Duration: ")
		if hours > 0 {
			fmt.Fprintf(&b, "%dh ", hours)
		}
		fmt.Fprintf(&b, "%dm\n", minutes)
		fmt.Fprintf(&b, "   • Started: %s\n", messages[0].SentAt.Format("Jan 02, 15:04"))
	}
	b.WriteString("\n")

	senders := lo.Uniq(lo.Map(messages, func(m domain.Message, _ int) string { return m.Sender }))
	counts := lo.CountValuesBy(messages, func(m domain.Message) string { return m.Sender })

	// Ties on the maximum break to the first-encountered sender.
	mostActive := senders[0]
	for _, sender := range senders[1:] {
		if counts[sender] > counts[mostActive] {
			mostActive = sender
		}
	}

	b.WriteString("👥 KEY POINT 2: PARTICIPANT ACTIVITY\n")
	fmt.Fprintf(&b, "   • Most Active: %s (%d messages)\n", mostActive, counts[mostActive])
	for _, sender := range senders {
		count := counts[sender]
		percent := float64(count) * 100 / float64(total)
		indicator := ""
		if sender == current {
			indicator = " (YOU)"
		}
		fmt.Fprintf(&b, "   %s%s: %s %d (%.0f%%)\n", sender, indicator, progressBar(percent), count, percent)
	}
	b.WriteString("\n")

	totalMentions := 0
	questions := 0
	longMessages := 0
	contentLength := 0
	for _, m := range messages {
		if m.HasMention {
			totalMentions++
		}
		if strings.Contains(m.Content, "?") {
			questions++
		}
		if len(m.Content) > 100 {
			longMessages++
		}
		contentLength += len(m.Content)
	}

	b.WriteString("💬 KEY POINT 3: COMMUNICATION PATTERNS\n")
	fmt.Fprintf(&b, "   • Total Mentions: %d\n", totalMentions)
	fmt.Fprintf(&b, "   • Questions Asked: %d\n", questions)
	fmt.Fprintf(&b, "   • Detailed Messages: %d (>100 chars)\n", longMessages)
	fmt.Fprintf(&b, "   • Avg Message Length: %.1f chars\n\n", float64(contentLength)/float64(total))

	mine := counts[current]
	myMentions := 0
	mentionsByMe := 0
	for _, m := range messages {
		if !m.HasMention {
			continue
		}
		if m.MentionedUser == current {
			myMentions++
		}
		if m.Sender == current {
			mentionsByMe++
		}
	}
	participation := float64(mine) * 100 / float64(total)

	b.WriteString("🎯 KEY POINT 4: YOUR INVOLVEMENT\n")
	fmt.Fprintf(&b, "   • Your Messages: %d (%.1f%%)\n", mine, participation)
	fmt.Fprintf(&b, "   • Times Mentioned: %d\n", myMentions)
	fmt.Fprintf(&b, "   • You Mentioned Others: %d\n", mentionsByMe)
	if mine > 0 {
		fmt.Fprintf(&b, "   • Engagement Level: %s\n", engagementTier(participation))
	}
	b.WriteString("\n")

	tagged := lo.Filter(messages, func(m domain.Message, _ int) bool { return m.HasMention })
	b.WriteString("🔑 KEY POINT 5: IMPORTANT TOPICS\n")
	if len(tagged) == 0 {
		b.WriteString("   • No tagged discussions\n")
	} else {
		show := lastN(tagged, 3)
		fmt.Fprintf(&b, "   Top %d tagged discussions:\n", len(show))
		for i, m := range show {
			fmt.Fprintf(&b, "   %d. %s: %s\n", i+1, m.Sender, truncate(m.Content, 40))
		}
	}
	b.WriteString("\n")

	b.WriteString("⭐ KEY POINT 6: RECENT ACTIVITY\n")
	b.WriteString("   Latest 5 messages:\n")
	for _, m := range lastN(messages, 5) {
		fmt.Fprintf(&b, "   [%s] %s: %s\n", m.SentAt.Format("15:04"), m.Sender, truncate(m.Content, 45))
	}
	b.WriteString("\n")

	b.WriteString("💡 KEY POINT 7: INSIGHTS & TIPS\n")
	switch {
	case mine == 0:
		b.WriteString("   📌 Start participating in the conversation!\n")
	case participation < 10:
		b.WriteString("   📌 Consider engaging more with the team\n")
	case participation > 60:
		b.WriteString("   📌 Great engagement! You're very active\n")
	}
	if myMentions > 0 && mentionsByMe == 0 {
		b.WriteString("   📌 People are mentioning you - respond back!\n")
	}
	if float64(totalMentions) > float64(total)*0.3 {
		b.WriteString("   📌 Highly collaborative conversation\n")
	}
	if float64(questions) > float64(total)*0.2 {
		b.WriteString("   📌 Active problem-solving discussion\n")
	}

	b.WriteString("\n━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n")
	fmt.Fprintf(&b, "Generated: %s", now.Format("Jan 02, 15:04:05"))
	return b.String()
}

// engagementTier maps a participation percentage to its label.
func engagementTier(participation float64) string {
	switch {
	case participation > 50:
		return "Very High"
	case participation > 30:
		return "High"
	case participation > 15:
		return "Moderate"
	default:
		return "Low"
	}
}

// progressBar renders a ten-segment bar: one segment filled per full ten
// percent.
func progressBar(percent float64) string {
	filled := int(percent / 10)
	var b strings.Builder
	b.WriteString("[")
	for i := 0; i < 10; i++ {
		if i < filled {
			b.WriteString("█")
		} else {
			b.WriteString("░")
		}
	}
	b.WriteString("]")
	return b.String()
}

// truncate keeps content at most max characters, replacing the tail with an
// ellipsis when it overflows. Counting is per rune so multi-byte content is
// never cut mid-character.
func truncate(content string, max int) string {
	runes := []rune(content)
	if len(runes) > max {
		return string(runes[:max-3]) + "..."
	}
	return content
}

func lastN(messages []domain.Message, n int) []domain.Message {
	if len(messages) <= n {
		return messages
	}
	return messages[len(messages)-n:]
}
