// Package demo seeds deterministic rooms and a scripted live feed so
// palaver can be exercised end to end without any archives on disk.
// The seed covers the cases the transcript has to handle: date
// boundaries, multi-line bodies, unbreakable tokens, reactions, edit
// notes, deletion tombstones, and an unread boundary mid-room.
package demo

import (
	"time"

	"github.com/palaver-chat/palaver/internal/talk"
)

// Seed returns a store populated with demo rooms plus the feed script
// that keeps them moving. Timestamps derive from now so "today" grouping
// behaves the same on every machine.
func Seed(now time.Time) (*talk.Store, *talk.Feed) {
	store := talk.NewStore()

	general := store.AddRoom("General")
	random := store.AddRoom("Random")
	planning := store.AddRoom("Planning")

	twoDaysAgo := now.Add(-48 * time.Hour)
	yesterday := now.Add(-24 * time.Hour)

	msgs := []talk.Message{
		{
			ID:        1,
			Timestamp: twoDaysAgo,
			ActorID:   "ada",
			ActorName: "Ada Lovelace",
			Text:      "Morning all. Kicking off the analytics rework today.",
			Kind:      talk.KindComment,
		},
		{
			ID:        2,
			Timestamp: twoDaysAgo.Add(4 * time.Minute),
			ActorID:   "grace",
			ActorName: "Grace Hopper",
			Text:      "Nice. I left review notes on the parser branch:\n- tokenizer allocs\n- error positions are off by one",
			Kind:      talk.KindComment,
			Reactions: map[string]int{"👍": 2},
		},
		{
			ID:        3,
			Timestamp: twoDaysAgo.Add(5 * time.Minute),
			ActorID:   "ada",
			ActorName: "Ada Lovelace",
			Text:      "👍",
			Kind:      talk.KindReaction,
		},
		{
			ID:        4,
			Timestamp: yesterday,
			ActorID:   "linus",
			ActorName: "Linus",
			Text:      "Build is green again. The flaky test was the clock mock.",
			Kind:      talk.KindComment,
		},
		{
			ID:        5,
			Timestamp: yesterday.Add(2 * time.Minute),
			ActorID:   "linus",
			ActorName: "Linus",
			Text:      "message edited",
			Kind:      talk.KindEditNote,
		},
		{
			ID:        6,
			Timestamp: yesterday.Add(10 * time.Minute),
			ActorID:   "marie",
			ActorName: "Marie Curie-Skłodowska",
			Text:      "Deployed. Dashboard: https://status.example.internal/deployments/2026-08/palaver-rollout-canary",
			Kind:      talk.KindComment,
			Reactions: map[string]int{"🚀": 3, "🎉": 1},
		},
		{
			ID:        7,
			Timestamp: yesterday.Add(11 * time.Minute),
			ActorID:   "linus",
			ActorName: "Linus",
			Text:      "message deleted",
			Kind:      talk.KindDeleted,
		},
		{
			ID:        8,
			Timestamp: now.Add(-30 * time.Minute),
			ActorID:   "grace",
			ActorName: "Grace Hopper",
			Text:      "Standup in five.",
			Kind:      talk.KindComment,
		},
		{
			ID:        9,
			Timestamp: now.Add(-5 * time.Minute),
			ActorID:   "ada",
			ActorName: "Ada Lovelace",
			Text:      "Running a couple minutes late, start without me.",
			Kind:      talk.KindComment,
		},
	}
	for _, m := range msgs {
		store.Append(general.Token(), m)
	}
	// Everything up to the deploy announcement has been seen.
	store.MarkReadAt(general.Token(), 6)

	randomMsgs := []talk.Message{
		{
			ID:        1,
			Timestamp: yesterday.Add(3 * time.Hour),
			ActorID:   "marie",
			ActorName: "Marie Curie-Skłodowska",
			Text:      "Someone left a keyboard in the kitchen. Again.",
			Kind:      talk.KindComment,
		},
		{
			ID:        2,
			Timestamp: yesterday.Add(3*time.Hour + time.Minute),
			ActorID:   "linus",
			ActorName: "Linus",
			Text:      "not me",
			Kind:      talk.KindComment,
			Reactions: map[string]int{"😅": 1},
		},
	}
	for _, m := range randomMsgs {
		store.Append(random.Token(), m)
	}
	store.MarkRead(random.Token())

	// Planning stays empty: the transcript must render an empty room
	// without separators or markers.
	_ = planning

	feed := talk.NewFeed([]talk.FeedItem{
		{Token: general.Token(), ActorID: "grace", ActorName: "Grace Hopper", Text: "Standup notes are up."},
		{Token: random.Token(), ActorID: "ada", ActorName: "Ada Lovelace", Text: "The kitchen keyboard is mine, sorry."},
		{Token: general.Token(), ActorID: "grace", ActorName: "Grace Hopper", Text: "🎉", Kind: talk.KindReaction},
		{Token: general.Token(), ActorID: "marie", ActorName: "Marie Curie-Skłodowska", Text: "Canary looks healthy, promoting to all regions after lunch."},
		{Token: planning.Token(), ActorID: "linus", ActorName: "Linus", Text: "Moving Thursday's planning to 14:00."},
		{Token: general.Token(), ActorID: "ada", ActorName: "Ada Lovelace", Text: "ACK. I'll watch the error budget burn-down while it rolls."},
	})

	return store, feed
}
