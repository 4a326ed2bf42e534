package talk

import (
	"time"

	"github.com/palaver-chat/palaver/internal/logger"
)

// FeedItem is one scripted delivery. Text carries the comment body, or the
// emoji when Kind is KindReaction (the reaction targets the room's newest
// message at delivery time).
type FeedItem struct {
	Token     string
	ActorID   string
	ActorName string
	Text      string
	Kind      MessageKind
}

// FeedInterval is the cadence the app delivers scripted items at.
const FeedInterval = 4 * time.Second

// Feed replays a script of messages into a Store, one per Deliver call.
// The app drives it from a timer so rooms keep moving while the UI is open.
type Feed struct {
	items []FeedItem
	pos   int
}

// NewFeed returns a Feed over the given script.
func NewFeed(items []FeedItem) *Feed {
	return &Feed{items: items}
}

// Remaining returns how many items have not been delivered yet.
func (f *Feed) Remaining() int {
	return len(f.items) - f.pos
}

// Deliver appends the next scripted item to the store, stamped with now.
// Returns the room token and the stored message, or ok=false when the
// script is exhausted or the target room is gone.
func (f *Feed) Deliver(store *Store, now time.Time) (string, Message, bool) {
	for f.pos < len(f.items) {
		item := f.items[f.pos]
		f.pos++

		room, ok := store.rooms[item.Token]
		if !ok {
			logger.Warn("feed item for unknown room %s dropped", item.Token)
			continue
		}

		kind := item.Kind
		if kind == "" {
			kind = KindComment
		}

		msg := Message{
			ID:        room.NextID(),
			Timestamp: now,
			ActorID:   item.ActorID,
			ActorName: item.ActorName,
			Text:      item.Text,
			Kind:      kind,
		}

		if kind == KindReaction {
			target := room.MaxID()
			if target == 0 {
				// Nothing to react to; skip the event entirely.
				continue
			}
			room.insert(msg)
			// React through the store so the target's summary updates.
			if err := store.React(item.Token, target, item.Text); err != nil {
				logger.Warn("feed reaction failed: %v", err)
			}
			return item.Token, msg, true
		}

		room.insert(msg)
		return item.Token, msg, true
	}
	return "", Message{}, false
}
