package services

import (
	"log/slog"
	"time"

	"groupchat/contract"
	"groupchat/domain"
	"groupchat/errors"
	"groupchat/moderation"
	"groupchat/notification"
	"groupchat/repositories"
)

// ChatService owns the in-memory aggregate for the single channel and the
// persistence around it. It implements both capability surfaces consumed by
// presentation layers.
//
// On a storage failure the aggregate may already reflect the unsaved change:
// callers needing strict durability must treat such an error as "retry or
// warn", never as "replicated".
type ChatService struct {
	chat     *domain.GroupChat
	messages repositories.IMessageRepository
	mentions repositories.IMentionRepository
	presence repositories.IPresenceRepository
	users    repositories.IUserRepository
	filter   *moderation.Filter
	log      *slog.Logger
}

var (
	_ contract.MessageActions      = (*ChatService)(nil)
	_ contract.NotificationHandler = (*ChatService)(nil)
)

// NewChatService wires the aggregate to its stores. The mention repository
// doubles as the aggregate's mention queue. A nil filter disables content
// moderation.
func NewChatService(
	groupName string,
	messages repositories.IMessageRepository,
	mentions repositories.IMentionRepository,
	presence repositories.IPresenceRepository,
	users repositories.IUserRepository,
	filter *moderation.Filter,
	log *slog.Logger,
) *ChatService {
	return &ChatService{
		chat:     domain.NewGroupChat(groupName, mentions),
		messages: messages,
		mentions: mentions,
		presence: presence,
		users:    users,
		filter:   filter,
		log:      log,
	}
}

// Join opens a session for the user: the durable log is replayed into the
// aggregate, the roster is seeded from the credential store with each
// member's last-seen timestamp, and the joining user is marked online.
func (s *ChatService) Join(username string) error {
	history, skipped, err := s.messages.LoadAll()
	if err != nil {
		return err
	}
	if skipped > 0 {
		s.log.Warn("skipped malformed message records", "count", skipped)
	}
	s.chat.Replay(history...)

	names, err := s.users.Usernames()
	if err != nil {
		return err
	}
	for _, name := range names {
		member := domain.NewMember(name, "")
		lastSeen, err := s.presence.LoadLastSeen(name)
		if err != nil {
			return err
		}
		member.LastSeen = lastSeen
		member.Online = name == username
		s.chat.AddMember(member)
	}

	s.log.Info("session opened", "chat", s.chat.ID, "username", username)
	return nil
}

// SendMessage runs the message through the moderation filter, appends it to
// the aggregate (which queues a mention when the mentioned member is
// offline), then appends it to the durable log.
func (s *ChatService) SendMessage(sender, content string) (domain.Message, error) {
	if s.filter != nil {
		content = s.filter.Censor(content)
	}
	message := domain.NewMessage(sender, content)

	if err := s.chat.AddMessage(message); err != nil {
		return message, err
	}
	if err := s.messages.Append(message); err != nil {
		return message, err
	}
	return message, nil
}

// SetOnline flips the member's presence. Going offline persists the
// last-seen timestamp. Coming back online first re-queues any mention
// addressed to the member since their reference point, so the pending queue
// is complete before an alert is requested.
func (s *ChatService) SetOnline(username string, online bool) error {
	member := s.chat.Member(username)
	if member == nil {
		return errors.ErrUnknownMember
	}

	if !online {
		member.SetOnline(false)
		return s.presence.SaveLastSeen(username, member.LastSeen)
	}

	// A zero reference means never tracked offline: there is no window of
	// missed mentions to recover, and scanning against it would re-queue
	// entries the member already drained.
	if !member.LastSeen.IsZero() {
		for _, m := range s.chat.Messages() {
			if m.SentAt.After(member.LastSeen) && m.Sender != username &&
				m.HasMention && m.MentionedUser == username {
				if err := s.mentions.Record(username, m.Render()); err != nil {
					return err
				}
			}
		}
	}
	member.SetOnline(true)
	return nil
}

// OfflineDigest builds the catch-up report for everything that arrived after
// the member's reference point. A zero reference means the member has never
// been tracked offline and suppresses the digest entirely. Once computed,
// the reference advances to now.
func (s *ChatService) OfflineDigest(username string) (string, error) {
	member := s.chat.Member(username)
	if member == nil {
		return "", errors.ErrUnknownMember
	}
	if member.LastSeen.IsZero() {
		// Suppressed, but the check still counts: the reference advances
		// so later requeue scans do not cover the whole history.
		member.LastSeen = time.Now()
		return "", nil
	}
	digest := notification.OfflineDigest(s.chat.Messages(), username, member.LastSeen)
	member.LastSeen = time.Now()
	return digest, nil
}

// MentionAlert drains the pending-mention queue: the alert is rendered from
// every entry, then the queue is cleared.
func (s *ChatService) MentionAlert(username string) (string, error) {
	pending, err := s.mentions.PendingFor(username)
	if err != nil {
		return "", err
	}
	if len(pending) == 0 {
		return "", nil
	}
	alert := notification.MentionAlert(pending)
	if err := s.mentions.ClearFor(username); err != nil {
		return alert, err
	}
	return alert, nil
}

// UnreadSummary renders the compact unread-messages view against the
// member's current reference point, without advancing it.
func (s *ChatService) UnreadSummary(username string) (string, error) {
	member := s.chat.Member(username)
	if member == nil {
		return "", errors.ErrUnknownMember
	}
	return notification.UnreadSummary(s.chat.Messages(), username, member.LastSeen), nil
}

// ChatSummary reports statistics over the whole history from the member's
// point of view.
func (s *ChatService) ChatSummary(username string) (string, error) {
	if s.chat.Member(username) == nil {
		return "", errors.ErrUnknownMember
	}
	return notification.ChatSummary(s.chat.Messages(), len(s.chat.Members()), username, time.Now()), nil
}

// Recent returns the last n messages in append order.
func (s *ChatService) Recent(n int) []domain.Message {
	return s.chat.Recent(n)
}

// Members returns the roster in insertion order.
func (s *ChatService) Members() []*domain.Member {
	return s.chat.Members()
}

// Logout stamps and persists the member's last-seen timestamp and marks them
// offline.
func (s *ChatService) Logout(username string) error {
	member := s.chat.Member(username)
	if member == nil {
		return errors.ErrUnknownMember
	}
	member.SetOnline(false)
	s.log.Info("session closed", "chat", s.chat.ID, "username", username)
	return s.presence.SaveLastSeen(username, member.LastSeen)
}
