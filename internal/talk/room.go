package talk

// Room is a read view over one conversation. Implementations return
// messages in ascending ID order; callers must not mutate the slice.
type Room interface {
	// Token is the stable identifier used to address the room.
	Token() string
	// Name is the human-readable room title.
	Name() string
	// Messages returns the full transcript in ascending ID order.
	Messages() []Message
	// HasUnread reports whether messages exist past the last-read mark.
	HasUnread() bool
	// LastRead returns the ID of the newest message the user has seen,
	// or 0 if nothing has been read.
	LastRead() MessageID
}

// Backend serves rooms to the UI. The transcript view only ever asks for
// one room by token; the room list uses Rooms for its ordering.
type Backend interface {
	// Room returns the room with the given token, or an error carrying
	// errors.KindNotFound when no such room exists.
	Room(token string) (Room, error)
	// Rooms returns all rooms in a stable display order.
	Rooms() []Room
}
