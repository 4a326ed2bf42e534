package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/palaver-chat/palaver/internal/logger"
	"github.com/palaver-chat/palaver/internal/ui"
)

// Update handles messages. This is the core Bubble Tea update function that
// routes all messages to appropriate handlers.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()

	case tea.FocusMsg:
		return m.handleWindowFocus()

	case tea.BlurMsg:
		m.windowFocused = false
		logger.Debug("app: window blurred")

	case tea.KeyPressMsg:
		if model, cmd := m.handleKeyPress(msg); model != nil {
			return model, cmd
		}
		// Key not handled by the shortcut table, falls through to the
		// focused widget below.

	case StartupModalMsg:
		return m.handleStartupModal()

	case FeedTickMsg:
		return m.handleFeedTick()

	case ui.SelectionFlashTickMsg:
		return m, m.transcript.HandleSelectionFlashTick()

	case ui.FlashTickMsg:
		return m, m.handleFlashTick()

	case ui.ClipboardErrorMsg:
		return m.handleClipboardError(msg)

	case tea.MouseClickMsg, tea.MouseMotionMsg, tea.MouseReleaseMsg:
		if model, cmd, handled := m.routeMouseToTranscript(msg); handled {
			return model, cmd
		}

	case tea.MouseWheelMsg:
		if model, cmd, handled := m.handleMouseWheel(msg); handled {
			return model, cmd
		}
	}

	// Update modal
	if m.modal.IsVisible() {
		modal, cmd := m.modal.Update(msg)
		m.modal = modal
		cmds = append(cmds, cmd)
	}

	// The detail overlay owns the chat pane while open
	if m.detail.IsOpen() {
		detail, cmd := m.detail.Update(msg)
		m.detail = detail
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)
	}

	// Update focused widget for other messages
	switch m.focus {
	case ui.FocusRooms:
		rooms, cmd := m.rooms.Update(msg)
		m.rooms = rooms
		cmds = append(cmds, cmd)
	case ui.FocusComposer:
		composer, cmd := m.composer.Update(msg)
		m.composer = composer
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}
