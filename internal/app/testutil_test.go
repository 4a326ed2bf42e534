package app

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/palaver-chat/palaver/internal/config"
	"github.com/palaver-chat/palaver/internal/keys"
	"github.com/palaver-chat/palaver/internal/talk"
)

// testConfig creates a minimal config for testing. Notifications stay off
// so feed deliveries never reach the desktop from a test run.
func testConfig() *config.Config {
	return &config.Config{
		Theme:      config.DefaultTheme,
		DateFormat: config.DefaultDateFormat,
		TimeFormat: config.DefaultTimeFormat,
	}
}

// testStore builds a store with two rooms: "general" holding three read
// comments across two days, "random" holding one unread comment.
func testStore() *talk.Store {
	store := talk.NewStore()
	store.AddRoomWithToken("general", "General")
	store.AddRoomWithToken("random", "Random")

	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	general := []talk.Message{
		{ID: 1, Timestamp: base, ActorID: "ada", ActorName: "Ada", Text: "Morning.", Kind: talk.KindComment},
		{ID: 2, Timestamp: base.Add(time.Hour), ActorID: "grace", ActorName: "Grace", Text: "Morning!", Kind: talk.KindComment},
		{ID: 3, Timestamp: base.Add(26 * time.Hour), ActorID: "ada", ActorName: "Ada", Text: "Design doc is up.", Kind: talk.KindComment},
	}
	for _, msg := range general {
		if err := store.Append("general", msg); err != nil {
			panic(err)
		}
	}
	if err := store.MarkRead("general"); err != nil {
		panic(err)
	}

	if err := store.Append("random", talk.Message{
		ID: 1, Timestamp: base.Add(2 * time.Hour),
		ActorID: "grace", ActorName: "Grace",
		Text: "Lunch?", Kind: talk.KindComment,
	}); err != nil {
		panic(err)
	}

	return store
}

// testModel creates a test Model over testStore with no feed.
func testModel(cfg *config.Config) *Model {
	return New(cfg, "0.0.0-test", testStore(), nil)
}

// testModelWithSize creates a test Model and sets its size.
func testModelWithSize(cfg *config.Config, width, height int) *Model {
	m := testModel(cfg)
	m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return m
}

// testModelWithFeed creates a sized test Model with a scripted feed.
func testModelWithFeed(cfg *config.Config, items []talk.FeedItem, width, height int) *Model {
	m := New(cfg, "0.0.0-test", testStore(), talk.NewFeed(items))
	m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return m
}

// keyPress creates a tea.KeyPressMsg for the given key string.
// Examples: "a", "enter", "tab", "esc", "ctrl+c", "up", "down"
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case keys.Enter:
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case keys.ShiftEnter:
		return tea.KeyPressMsg{Code: tea.KeyEnter, Mod: tea.ModShift}
	case keys.Tab:
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case keys.Escape:
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case keys.Backspace:
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	case keys.Up:
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case keys.Down:
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case keys.Home:
		return tea.KeyPressMsg{Code: tea.KeyHome}
	case keys.End:
		return tea.KeyPressMsg{Code: tea.KeyEnd}
	case keys.PgUp:
		return tea.KeyPressMsg{Code: tea.KeyPgUp}
	case keys.PgDown:
		return tea.KeyPressMsg{Code: tea.KeyPgDown}
	case keys.CtrlC:
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	case keys.CtrlU:
		return tea.KeyPressMsg{Code: 'u', Mod: tea.ModCtrl}
	case keys.CtrlD:
		return tea.KeyPressMsg{Code: 'd', Mod: tea.ModCtrl}
	default:
		// Regular character - for single characters, set both Code and Text
		if len(key) == 1 {
			return tea.KeyPressMsg{Code: rune(key[0]), Text: key}
		}
		// Fallback for unknown keys
		return tea.KeyPressMsg{Text: key}
	}
}

// sendKey sends a key press to the model and returns the updated model.
func sendKey(m *Model, key string) *Model {
	result, _ := m.Update(keyPress(key))
	return result.(*Model)
}

// sendKeyCmd sends a key press and returns the resulting command.
func sendKeyCmd(m *Model, key string) tea.Cmd {
	_, cmd := m.Update(keyPress(key))
	return cmd
}

// typeText simulates typing a string by sending individual character key
// presses.
func typeText(m *Model, text string) *Model {
	for _, ch := range text {
		m = sendKey(m, string(ch))
	}
	return m
}

// openTestRoom opens the first room ("general") via the room list.
func openTestRoom(m *Model) *Model {
	return sendKey(m, keys.Enter)
}

// mouseClick creates a tea.MouseClickMsg at the given coordinates.
func mouseClick(x, y int) tea.MouseClickMsg {
	return tea.MouseClickMsg{
		X:      x,
		Y:      y,
		Button: tea.MouseLeft,
	}
}

// mouseMotion creates a tea.MouseMotionMsg at the given coordinates.
func mouseMotion(x, y int) tea.MouseMotionMsg {
	return tea.MouseMotionMsg{
		X:      x,
		Y:      y,
		Button: tea.MouseLeft,
	}
}

// mouseRelease creates a tea.MouseReleaseMsg at the given coordinates.
func mouseRelease(x, y int) tea.MouseReleaseMsg {
	return tea.MouseReleaseMsg{
		X:      x,
		Y:      y,
		Button: tea.MouseLeft,
	}
}
