package domain

import (
	"github.com/google/uuid"
)

// MentionQueue receives mentions addressed to members who are offline at
// append time. Implementations decide how the pending entries are kept.
type MentionQueue interface {
	Record(target, rendered string) error
}

// GroupChat is the in-memory aggregate for the single channel: the member
// roster plus the full message history in append order. It owns mutation
// ordering (append message, then update the mention queue) and hands out
// copies on every read view.
type GroupChat struct {
	ID       uuid.UUID
	Name     string
	members  []*Member
	messages []Message
	mentions MentionQueue
}

func NewGroupChat(name string, mentions MentionQueue) *GroupChat {
	return &GroupChat{
		ID:       uuid.New(),
		Name:     name,
		mentions: mentions,
	}
}

// AddMember appends the member to the roster unless one with the same
// username is already present.
func (g *GroupChat) AddMember(member *Member) {
	if g.Member(member.Username) != nil {
		return
	}
	g.members = append(g.members, member)
}

// AddMessage appends the message to the history and, when it carries a
// mention, enqueues it for the mentioned user unless that user is currently
// online. A mentioned user missing from the roster counts as offline.
// Senders mentioning themselves never enqueue anything.
func (g *GroupChat) AddMessage(message Message) error {
	g.messages = append(g.messages, message)

	if !message.HasMention || g.mentions == nil {
		return nil
	}
	if message.MentionedUser == message.Sender {
		return nil
	}
	if m := g.Member(message.MentionedUser); m != nil && m.Online {
		return nil
	}
	return g.mentions.Record(message.MentionedUser, message.Render())
}

// Replay appends historical messages without touching the mention queue.
// Used when rebuilding the aggregate from the durable log: the queue already
// holds whatever was pending when those messages were first appended.
func (g *GroupChat) Replay(messages ...Message) {
	g.messages = append(g.messages, messages...)
}

// Member returns the roster entry for the username, or nil.
func (g *GroupChat) Member(username string) *Member {
	for _, m := range g.members {
		if m.Username == username {
			return m
		}
	}
	return nil
}

// Members returns the roster in insertion order.
func (g *GroupChat) Members() []*Member {
	out := make([]*Member, len(g.members))
	copy(out, g.members)
	return out
}

// Messages returns the full history in append order.
func (g *GroupChat) Messages() []Message {
	out := make([]Message, len(g.messages))
	copy(out, g.messages)
	return out
}

// Recent returns a copy of the last min(n, total) messages in append order,
// so callers may freely hold or mutate the result.
func (g *GroupChat) Recent(n int) []Message {
	if n < 0 {
		n = 0
	}
	if n >= len(g.messages) {
		return g.Messages()
	}
	out := make([]Message, n)
	copy(out, g.messages[len(g.messages)-n:])
	return out
}
