// Package talk provides the chat domain model: messages, rooms, and the
// backends that serve them. Rooms come from an in-memory store seeded from
// JSONL archives on disk or from the built-in demo script; the UI consumes
// them through the Backend interface and never mutates messages directly.
package talk

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// MessageID identifies a message within a room. IDs are unique per room and
// ascend in posting order, so sorting by ID is sorting by time.
type MessageID int64

// MessageKind distinguishes renderable comments from bookkeeping entries.
type MessageKind string

const (
	// KindComment is a regular chat message.
	KindComment MessageKind = "comment"
	// KindReaction is a reaction event; the transcript skips these and
	// shows reactions on the target message instead.
	KindReaction MessageKind = "reaction"
	// KindEditNote is the notice generated when a message is edited.
	KindEditNote MessageKind = "edit_note"
	// KindDeleted is the tombstone left by a deleted message.
	KindDeleted MessageKind = "deleted"
	// KindSystem is a room event (joins, renames). Rendered like a comment.
	KindSystem MessageKind = "system"
)

// Message is one entry in a room transcript. Messages are immutable once
// created; reactions are the only field a backend updates in place.
type Message struct {
	ID        MessageID
	Timestamp time.Time
	ActorID   string
	ActorName string
	Text      string
	Kind      MessageKind
	Reactions map[string]int
}

// IsReaction reports whether this entry is a reaction event.
func (m Message) IsReaction() bool {
	return m.Kind == KindReaction
}

// IsEditNote reports whether this entry is an edit notice.
func (m Message) IsEditNote() bool {
	return m.Kind == KindEditNote
}

// IsCommentDeleted reports whether this entry is a deletion tombstone.
func (m Message) IsCommentDeleted() bool {
	return m.Kind == KindDeleted
}

// DateLabel formats the message's calendar date using the given Go layout.
func (m Message) DateLabel(layout string) string {
	return m.Timestamp.Format(layout)
}

// TimeLabel formats the message's time of day using the given Go layout.
func (m Message) TimeLabel(layout string) string {
	return m.Timestamp.Format(layout)
}

// HasReactions reports whether any reaction has a positive count.
func (m Message) HasReactions() bool {
	for _, n := range m.Reactions {
		if n > 0 {
			return true
		}
	}
	return false
}

// ReactionSummary renders the message's reactions as a single line,
// highest count first, ties broken by emoji so the output is stable.
// Returns "" when there are no reactions.
func (m Message) ReactionSummary() string {
	type entry struct {
		emoji string
		count int
	}

	entries := make([]entry, 0, len(m.Reactions))
	for emoji, n := range m.Reactions {
		if n > 0 {
			entries = append(entries, entry{emoji, n})
		}
	}
	if len(entries) == 0 {
		return ""
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].emoji < entries[j].emoji
	})

	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = fmt.Sprintf("%s %d", e.emoji, e.count)
	}
	return strings.Join(parts, ", ")
}
