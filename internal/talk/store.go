package talk

import (
	"sort"

	"github.com/google/uuid"
	"github.com/palaver-chat/palaver/internal/errors"
)

// StoredRoom is the Store's Room implementation. Messages are kept sorted
// by ID; the unread state derives from comparing lastRead to the max ID.
type StoredRoom struct {
	token    string
	name     string
	messages []Message
	lastRead MessageID
}

// Token implements Room.
func (r *StoredRoom) Token() string { return r.token }

// Name implements Room.
func (r *StoredRoom) Name() string { return r.name }

// Messages implements Room. The returned slice is shared; callers must
// treat it as read-only.
func (r *StoredRoom) Messages() []Message { return r.messages }

// LastRead implements Room.
func (r *StoredRoom) LastRead() MessageID { return r.lastRead }

// HasUnread implements Room. A room with no messages is never unread.
func (r *StoredRoom) HasUnread() bool {
	if len(r.messages) == 0 {
		return false
	}
	return r.lastRead < r.messages[len(r.messages)-1].ID
}

// MaxID returns the highest message ID in the room, or 0 when empty.
func (r *StoredRoom) MaxID() MessageID {
	if len(r.messages) == 0 {
		return 0
	}
	return r.messages[len(r.messages)-1].ID
}

// NextID returns the ID the next appended message should carry.
func (r *StoredRoom) NextID() MessageID {
	return r.MaxID() + 1
}

func (r *StoredRoom) insert(msg Message) {
	// Appends arrive in order almost always; binary search covers replays.
	i := sort.Search(len(r.messages), func(i int) bool {
		return r.messages[i].ID >= msg.ID
	})
	if i < len(r.messages) && r.messages[i].ID == msg.ID {
		r.messages[i] = msg
		return
	}
	r.messages = append(r.messages, Message{})
	copy(r.messages[i+1:], r.messages[i:])
	r.messages[i] = msg
}

// Store is an in-memory Backend. It is not safe for concurrent use: the
// single UI loop is the only writer, matching how the views consume it.
type Store struct {
	order []string
	rooms map[string]*StoredRoom
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{rooms: make(map[string]*StoredRoom)}
}

// AddRoom creates a room with a generated token and returns it.
func (s *Store) AddRoom(name string) *StoredRoom {
	return s.AddRoomWithToken(uuid.New().String(), name)
}

// AddRoomWithToken creates a room under a caller-chosen token, replacing
// any existing room with that token.
func (s *Store) AddRoomWithToken(token, name string) *StoredRoom {
	if existing, ok := s.rooms[token]; ok {
		existing.name = name
		return existing
	}
	room := &StoredRoom{token: token, name: name}
	s.rooms[token] = room
	s.order = append(s.order, token)
	return room
}

// Room implements Backend.
func (s *Store) Room(token string) (Room, error) {
	room, ok := s.rooms[token]
	if !ok {
		return nil, errors.RoomNotFound(token)
	}
	return room, nil
}

// Rooms implements Backend. Rooms appear in creation order.
func (s *Store) Rooms() []Room {
	out := make([]Room, 0, len(s.order))
	for _, token := range s.order {
		out = append(out, s.rooms[token])
	}
	return out
}

// Append adds a message to a room, keeping ID order. A message whose ID
// already exists replaces the stored one, which is how reaction updates
// land.
func (s *Store) Append(token string, msg Message) error {
	room, ok := s.rooms[token]
	if !ok {
		return errors.RoomNotFound(token)
	}
	room.insert(msg)
	return nil
}

// NextID returns the ID the next message appended to a room should carry.
func (s *Store) NextID(token string) (MessageID, error) {
	room, ok := s.rooms[token]
	if !ok {
		return 0, errors.RoomNotFound(token)
	}
	return room.NextID(), nil
}

// React adds one reaction to a message in a room.
func (s *Store) React(token string, id MessageID, emoji string) error {
	room, ok := s.rooms[token]
	if !ok {
		return errors.RoomNotFound(token)
	}
	for i := range room.messages {
		if room.messages[i].ID == id {
			if room.messages[i].Reactions == nil {
				room.messages[i].Reactions = make(map[string]int)
			}
			room.messages[i].Reactions[emoji]++
			return nil
		}
	}
	return errors.E(errors.Op("talk.React"), errors.KindNotFound, "message not found")
}

// MarkRead moves a room's last-read mark to its newest message.
func (s *Store) MarkRead(token string) error {
	room, ok := s.rooms[token]
	if !ok {
		return errors.RoomNotFound(token)
	}
	room.lastRead = room.MaxID()
	return nil
}

// MarkReadAt pins a room's last-read mark to a specific message ID.
// Used to restore persisted watermarks.
func (s *Store) MarkReadAt(token string, id MessageID) error {
	room, ok := s.rooms[token]
	if !ok {
		return errors.RoomNotFound(token)
	}
	room.lastRead = id
	return nil
}
