package talk

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/palaver-chat/palaver/internal/errors"
	"github.com/palaver-chat/palaver/internal/logger"
)

// Room archives are JSONL: an optional header line naming the room,
// then one message record per line.
//
//	{"room": "General", "token": "general"}
//	{"id": 1, "ts": "2026-08-20T09:00:00Z", "actor_id": "ada", "actor": "Ada", "text": "hello"}
//
// Files missing the header take their room name and token from the
// file stem.

type roomHeader struct {
	Room  string `json:"room"`
	Token string `json:"token,omitempty"`
}

type messageRecord struct {
	ID        int64          `json:"id"`
	Timestamp time.Time      `json:"ts"`
	ActorID   string         `json:"actor_id"`
	ActorName string         `json:"actor"`
	Text      string         `json:"text"`
	Kind      string         `json:"kind,omitempty"`
	Reactions map[string]int `json:"reactions,omitempty"`
}

func (r messageRecord) toMessage() Message {
	kind := MessageKind(r.Kind)
	if kind == "" {
		kind = KindComment
	}
	return Message{
		ID:        MessageID(r.ID),
		Timestamp: r.Timestamp,
		ActorID:   r.ActorID,
		ActorName: r.ActorName,
		Text:      r.Text,
		Kind:      kind,
		Reactions: r.Reactions,
	}
}

// LoadDir builds a Store from every *.jsonl archive in dir. Files load in
// name order so the room list is stable across runs.
func LoadDir(dir string) (*Store, error) {
	pattern := filepath.Join(dir, "*.jsonl")
	paths, err := filepath.Glob(pattern)
	if err != nil {
		return nil, errors.ArchiveInvalid(dir, err)
	}

	store := NewStore()
	for _, path := range paths {
		if err := loadFile(store, path); err != nil {
			return nil, err
		}
	}

	logger.Info("loaded %d room archive(s) from %s", len(paths), dir)
	return store, nil
}

func loadFile(store *Store, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.ArchiveInvalid(path, err)
	}
	defer f.Close()

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var room *StoredRoom
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		if room == nil {
			// The first record may be a header naming the room.
			var header roomHeader
			if err := json.Unmarshal([]byte(text), &header); err == nil && header.Room != "" {
				token := header.Token
				if token == "" {
					token = stem
				}
				room = store.AddRoomWithToken(token, header.Room)
				continue
			}
			room = store.AddRoomWithToken(stem, stem)
		}

		var rec messageRecord
		if err := json.Unmarshal([]byte(text), &rec); err != nil {
			return errors.ArchiveRecordInvalid(path, line, err)
		}
		room.insert(rec.toMessage())
	}
	if err := scanner.Err(); err != nil {
		return errors.ArchiveInvalid(path, err)
	}

	// A file holding only a header still declares a room.
	if room == nil {
		store.AddRoomWithToken(stem, stem)
	}

	return nil
}

// ApplyWatermarks restores persisted last-read marks onto the store.
// Unknown tokens are skipped: archives may have been removed since the
// watermark was written.
func ApplyWatermarks(store *Store, lastRead map[string]int64) {
	for token, id := range lastRead {
		if err := store.MarkReadAt(token, MessageID(id)); err != nil {
			logger.Debug("skipping watermark for unknown room %s", token)
		}
	}
}
