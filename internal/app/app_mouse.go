package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/palaver-chat/palaver/internal/ui"
)

// adjustMouseForTranscript checks whether a mouse event landed in the chat
// panel and rewrites its coordinates into the transcript's own text space.
// The offsets are the room list column plus the panel border on the left,
// and the header bar plus the panel border on top.
func (m *Model) adjustMouseForTranscript(msg tea.Msg) (tea.Msg, bool) {
	offsetX := m.rooms.Width() + 1
	offsetY := ui.HeaderHeight + 1

	switch mouseMsg := msg.(type) {
	case tea.MouseClickMsg:
		if mouseMsg.X > m.rooms.Width() {
			return tea.MouseClickMsg{
				X:      mouseMsg.X - offsetX,
				Y:      mouseMsg.Y - offsetY,
				Button: mouseMsg.Button,
				Mod:    mouseMsg.Mod,
			}, true
		}
	case tea.MouseMotionMsg:
		if mouseMsg.X > m.rooms.Width() {
			return tea.MouseMotionMsg{
				X:      mouseMsg.X - offsetX,
				Y:      mouseMsg.Y - offsetY,
				Button: mouseMsg.Button,
				Mod:    mouseMsg.Mod,
			}, true
		}
	case tea.MouseReleaseMsg:
		if mouseMsg.X > m.rooms.Width() {
			return tea.MouseReleaseMsg{
				X:      mouseMsg.X - offsetX,
				Y:      mouseMsg.Y - offsetY,
				Button: mouseMsg.Button,
				Mod:    mouseMsg.Mod,
			}, true
		}
	}
	return nil, false
}

// routeMouseToTranscript forwards click, drag, and release events in the
// chat panel to the transcript's text selection. Events over the room
// list, or while an overlay covers the transcript, are left alone.
func (m *Model) routeMouseToTranscript(msg tea.Msg) (*Model, tea.Cmd, bool) {
	if m.modal.IsVisible() || m.detail.IsOpen() || m.activeRoom == "" {
		return m, nil, false
	}

	adjusted, ok := m.adjustMouseForTranscript(msg)
	if !ok {
		return m, nil, false
	}

	switch mouseMsg := adjusted.(type) {
	case tea.MouseClickMsg:
		if mouseMsg.Button == tea.MouseLeft {
			return m, m.transcript.HandleMouseClick(mouseMsg.X, mouseMsg.Y), true
		}
	case tea.MouseMotionMsg:
		m.transcript.HandleMouseMotion(mouseMsg.X, mouseMsg.Y)
		return m, nil, true
	case tea.MouseReleaseMsg:
		return m, m.transcript.HandleMouseRelease(mouseMsg.X, mouseMsg.Y), true
	}
	return m, nil, false
}

// handleMouseWheel scrolls whichever view owns the chat column: the detail
// viewport while it is open, otherwise the transcript selection. Wheel
// events over the room list are ignored.
func (m *Model) handleMouseWheel(msg tea.MouseWheelMsg) (*Model, tea.Cmd, bool) {
	if m.modal.IsVisible() || msg.X <= m.rooms.Width() {
		return m, nil, false
	}

	if m.detail.IsOpen() {
		detail, cmd := m.detail.Update(msg)
		m.detail = detail
		return m, cmd, true
	}

	if m.activeRoom == "" {
		return m, nil, false
	}

	switch msg.Button {
	case tea.MouseWheelUp:
		m.transcript.SelectUp()
		return m, nil, true
	case tea.MouseWheelDown:
		m.transcript.SelectDown()
		return m, nil, true
	}
	return m, nil, false
}
