package app

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/palaver-chat/palaver/internal/keys"
	"github.com/palaver-chat/palaver/internal/logger"
	"github.com/palaver-chat/palaver/internal/talk"
	"github.com/palaver-chat/palaver/internal/ui"
)

// Identity stamped on messages the user sends. There is no account system;
// the local actor is a fixed author like any scripted one.
const (
	localActorID   = "you"
	localActorName = "You"
)

// handleKeyPress dispatches a key press. A nil model means the key was not
// consumed and should fall through to the focused widget.
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	// Modal owns the keyboard while visible
	if m.modal.IsVisible() {
		return m.handleModalKey(msg)
	}

	key := msg.String()

	if keys.IsQuit(key) {
		return m, tea.Quit
	}

	// The detail overlay owns the chat pane: esc or v closes it, scroll
	// keys go to its viewport.
	if m.detail.IsOpen() {
		switch key {
		case keys.Escape, "v":
			m.detail.Close()
			return m, nil
		}
		detail, cmd := m.detail.Update(msg)
		m.detail = detail
		return m, cmd
	}

	// Global keys
	switch key {
	case "q":
		// Only quit on 'q' when the composer is not focused, so the
		// letter can still be typed.
		if m.focus != ui.FocusComposer {
			return m, tea.Quit
		}
	case keys.Tab:
		m.cycleFocus()
		return m, nil
	case ",":
		if m.focus != ui.FocusComposer {
			m.openSettings()
			return m, nil
		}
	}

	// Scroll keys reach the transcript even when the room list is focused
	if m.focus != ui.FocusComposer && m.activeRoom != "" {
		switch key {
		case keys.PgUp, keys.CtrlU:
			m.transcriptPage(-1)
			return m, nil
		case keys.PgDown, keys.CtrlD:
			m.transcriptPage(1)
			return m, nil
		case keys.Home:
			m.transcript.SelectFirst()
			return m, nil
		case keys.End:
			m.transcript.SelectLast()
			return m, nil
		}
	}

	switch m.focus {
	case ui.FocusRooms:
		return m.handleRoomsKey(msg)
	case ui.FocusTranscript:
		return m.handleTranscriptKey(msg)
	case ui.FocusComposer:
		return m.handleComposerKey(msg)
	}

	return nil, nil
}

// handleRoomsKey handles keys while the room list is focused. Navigation
// falls through to the widget's own Update.
func (m *Model) handleRoomsKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if msg.String() == keys.Enter {
		if room, ok := m.rooms.SelectedRoom(); ok {
			return m, m.openRoom(room.Token())
		}
		return m, nil
	}
	return nil, nil
}

// handleTranscriptKey handles keys while the transcript is focused.
func (m *Model) handleTranscriptKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keys.Up, "k":
		m.transcript.SelectUp()
	case keys.Down, "j":
		m.transcript.SelectDown()
	case "g":
		m.transcript.SelectFirst()
	case "G":
		m.transcript.SelectLast()
	case "v":
		if message, ok := m.selectedMessage(); ok {
			m.detail.Open(message)
		}
	case keys.Enter:
		m.setFocus(ui.FocusComposer)
	case keys.Escape:
		m.setFocus(ui.FocusRooms)
	}
	// The transcript has no Update of its own; consume everything.
	return m, nil
}

// handleComposerKey handles keys while the composer is focused. Typing
// falls through to the textarea.
func (m *Model) handleComposerKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keys.Enter:
		return m.sendMessage()
	case keys.ShiftEnter, keys.AltEnter:
		m.composer.InsertNewline()
		return m, nil
	case keys.Escape:
		m.setFocus(ui.FocusTranscript)
		return m, nil
	}
	return nil, nil
}

// sendMessage appends the composer text to the active room as a comment
// from the local actor, then rebuilds with the selection pinned to it.
func (m *Model) sendMessage() (tea.Model, tea.Cmd) {
	if m.activeRoom == "" || m.composer.IsEmpty() {
		return m, nil
	}

	text := strings.TrimRight(m.composer.Value(), " \t\n")

	id, err := m.store.NextID(m.activeRoom)
	if err != nil {
		return m, m.showFlashError(err.Error())
	}

	message := talk.Message{
		ID:        id,
		Timestamp: time.Now(),
		ActorID:   localActorID,
		ActorName: localActorName,
		Text:      text,
		Kind:      talk.KindComment,
	}

	if err := m.store.Append(m.activeRoom, message); err != nil {
		logger.Error("app: send to room %s: %v", m.activeRoom, err)
		return m, m.showFlashError(err.Error())
	}
	// The author has read their own message.
	if err := m.store.MarkRead(m.activeRoom); err != nil {
		logger.Warn("app: mark read %s: %v", m.activeRoom, err)
	}

	m.composer.Reset()

	if cmd := m.rebuildTranscript(); cmd != nil {
		return m, cmd
	}
	m.transcript.SelectLast()
	return m, nil
}

// transcriptPage moves the selection by half the visible window in the
// given direction.
func (m *Model) transcriptPage(dir int) {
	step := (m.transcript.Height() - ui.TableHeaderHeight) / 2
	if step < 1 {
		step = 1
	}
	for i := 0; i < step; i++ {
		if dir < 0 {
			m.transcript.SelectUp()
		} else {
			m.transcript.SelectDown()
		}
	}
}
