// Package app holds the top-level Bubble Tea model: it owns the widgets,
// routes input by focus, keeps the layout sized, and drives the demo feed.
package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/palaver-chat/palaver/internal/config"
	"github.com/palaver-chat/palaver/internal/logger"
	"github.com/palaver-chat/palaver/internal/talk"
	"github.com/palaver-chat/palaver/internal/ui"
)

// Model is the main Bubble Tea model
type Model struct {
	config  *config.Config
	version string // App version (injected at build time)

	store *talk.Store
	feed  *talk.Feed // nil outside demo mode

	header     *ui.Header
	footer     *ui.Footer
	rooms      *ui.RoomList
	transcript *ui.Transcript
	composer   *ui.Composer
	detail     *ui.Detail
	modal      *ui.Modal

	width  int
	height int
	focus  ui.FocusArea

	activeRoom    string // token of the room open in the transcript, "" for none
	windowFocused bool   // tracked via tea.FocusMsg/BlurMsg
}

// New creates a new app model over an already-populated store. feed may be
// nil; without one the rooms only move when the user sends something.
func New(cfg *config.Config, version string, store *talk.Store, feed *talk.Feed) *Model {
	// Load saved theme from config, or use default
	if savedTheme := cfg.GetTheme(); savedTheme != "" {
		ui.SetThemeByName(savedTheme)
	}

	m := &Model{
		config:        cfg,
		version:       version,
		store:         store,
		feed:          feed,
		header:        ui.NewHeader(),
		footer:        ui.NewFooter(),
		rooms:         ui.NewRoomList(),
		transcript:    ui.NewTranscript(cfg),
		composer:      ui.NewComposer(),
		detail:        ui.NewDetail(cfg),
		modal:         ui.NewModal(),
		focus:         ui.FocusRooms,
		windowFocused: true,
	}

	m.rooms.SetRooms(store.Rooms())
	m.rooms.SetFocused(true)

	logger.Info("app: palaver %s ready, %d rooms", m.version, len(store.Rooms()))

	// Reopen the room that was active when the app last exited
	if last := cfg.GetLastRoom(); last != "" {
		if _, err := store.Room(last); err == nil {
			m.openRoom(last)
			m.setFocus(ui.FocusRooms)
		}
	}

	return m
}

// StartupModalMsg is sent on app start to trigger the what's new modal.
type StartupModalMsg struct{}

// ActiveRoom returns the token of the room open in the transcript.
func (m *Model) ActiveRoom() string {
	return m.activeRoom
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return StartupModalMsg{} },
		m.scheduleFeedTick(),
	)
}

// setFocus moves keyboard focus to the given pane and syncs the widgets.
func (m *Model) setFocus(focus ui.FocusArea) {
	m.focus = focus
	m.rooms.SetFocused(focus == ui.FocusRooms)
	m.composer.SetFocused(focus == ui.FocusComposer)
}

// cycleFocus advances focus room list -> transcript -> composer -> room
// list. Without an open room there is nothing to cycle to.
func (m *Model) cycleFocus() {
	switch m.focus {
	case ui.FocusRooms:
		if m.activeRoom == "" {
			return
		}
		m.setFocus(ui.FocusTranscript)
	case ui.FocusTranscript:
		m.setFocus(ui.FocusComposer)
	default:
		m.setFocus(ui.FocusRooms)
	}
}

// openRoom makes a room the active one: rebuild the transcript at the
// current width, land the selection on the newest row, then advance the
// read mark. The rebuild runs before MarkRead so the unread marker still
// renders at the stored watermark.
func (m *Model) openRoom(token string) tea.Cmd {
	room, err := m.store.Room(token)
	if err != nil {
		logger.Warn("app: open room %s: %v", token, err)
		return m.showFlashError(err.Error())
	}

	m.activeRoom = token
	m.rooms.SetActive(token)
	m.rooms.SelectRoom(token)
	m.detail.Close()

	if err := m.transcript.SetWidthAndRebuild(m.transcriptWidth(), m.store, token); err != nil {
		m.activeRoom = ""
		m.rooms.SetActive("")
		logger.Error("app: rebuild for room %s: %v", token, err)
		return m.showFlashError(err.Error())
	}
	m.transcript.SelectLast()

	if err := m.store.MarkRead(token); err != nil {
		logger.Warn("app: mark read %s: %v", token, err)
	}

	m.header.SetRoomName(room.Name())
	m.setFocus(ui.FocusTranscript)
	return nil
}

// rebuildTranscript rebuilds the active room's rows after its data
// changed. Errors go to the footer flash; the transcript keeps its
// previous rows rather than showing a partial render.
func (m *Model) rebuildTranscript() tea.Cmd {
	if m.activeRoom == "" {
		return nil
	}
	if err := m.transcript.Rebuild(m.store, m.activeRoom); err != nil {
		logger.Error("app: rebuild for room %s: %v", m.activeRoom, err)
		return m.showFlashError(err.Error())
	}
	return nil
}

// transcriptWidth returns the table width inside the chat panel border.
func (m *Model) transcriptWidth() int {
	ctx := ui.GetViewContext()
	return ctx.InnerWidth(ctx.ChatWidth)
}

// activeRoomUnread counts the active room's messages past its read mark.
func (m *Model) activeRoomUnread() int {
	if m.activeRoom == "" {
		return 0
	}
	room, err := m.store.Room(m.activeRoom)
	if err != nil {
		return 0
	}
	count := 0
	for _, msg := range room.Messages() {
		if msg.ID > room.LastRead() && !msg.IsReaction() {
			count++
		}
	}
	return count
}

// selectedMessage resolves the transcript's selected row back to its
// source message in the active room.
func (m *Model) selectedMessage() (talk.Message, bool) {
	row, ok := m.transcript.Selected()
	if !ok || row.Kind != ui.RowMessage {
		return talk.Message{}, false
	}
	room, err := m.store.Room(m.activeRoom)
	if err != nil {
		return talk.Message{}, false
	}
	for _, msg := range room.Messages() {
		if msg.ID == row.MessageID {
			return msg, true
		}
	}
	return talk.Message{}, false
}
