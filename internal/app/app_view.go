package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/palaver-chat/palaver/internal/logger"
	"github.com/palaver-chat/palaver/internal/ui"
)

// View renders the app. This is the core Bubble Tea view function.
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	v.ReportFocus = true

	if m.width == 0 || m.height == 0 {
		v.SetContent("Loading...")
		return v
	}

	v.SetContent(m.RenderToString())
	return v
}

// RenderToString renders the current view as a string.
// This is useful for demos and testing.
func (m *Model) RenderToString() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	m.updateChrome()

	if m.modal.IsVisible() {
		return m.modal.View(m.width, m.height)
	}

	panels := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.rooms.View(),
		m.chatColumnView(),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.header.View(),
		panels,
		m.footer.View(),
	)
}

// chatColumnView renders the right column: the detail overlay when open, a
// placeholder before any room is opened, otherwise the transcript panel
// stacked on the composer.
func (m *Model) chatColumnView() string {
	ctx := ui.GetViewContext()

	if m.detail.IsOpen() {
		return m.detail.View()
	}

	if m.activeRoom == "" {
		hint := lipgloss.NewStyle().
			Foreground(ui.ColorTextMuted).
			Italic(true).
			Render("Select a room to start talking.")
		return ui.PanelStyle.
			Width(ctx.ChatWidth).
			Height(ctx.ContentHeight).
			Render(lipgloss.Place(
				ctx.InnerWidth(ctx.ChatWidth), ctx.InnerHeight(ctx.ContentHeight),
				lipgloss.Center, lipgloss.Center,
				hint,
			))
	}

	style := ui.PanelStyle
	if m.focus == ui.FocusTranscript {
		style = ui.PanelFocusedStyle
	}
	transcriptPanel := style.
		Width(ctx.ChatWidth).
		Height(ctx.ContentHeight - ui.ComposerTotalHeight).
		Render(m.transcript.View())

	return lipgloss.JoinVertical(lipgloss.Left, transcriptPanel, m.composer.View())
}

// updateChrome syncs the header and footer with the current state before a
// render.
func (m *Model) updateChrome() {
	focus := m.focus
	if m.modal.IsVisible() {
		focus = ui.FocusModal
	}
	m.footer.SetContext(focus, m.activeRoom != "", m.detail.IsOpen())

	if m.activeRoom == "" {
		m.header.SetRoomName("")
		m.header.SetUnread(0)
		return
	}
	if room, err := m.store.Room(m.activeRoom); err == nil {
		m.header.SetRoomName(room.Name())
	}
	m.header.SetUnread(m.activeRoomUnread())
}

// updateSizes updates component sizes based on terminal dimensions
func (m *Model) updateSizes() {
	ctx := ui.GetViewContext()
	ctx.UpdateTerminalSize(m.width, m.height)

	m.header.SetWidth(ctx.TerminalWidth)
	m.footer.SetWidth(ctx.TerminalWidth)
	m.rooms.SetSize(ctx.RoomListWidth, ctx.ContentHeight)
	m.composer.SetWidth(ctx.ChatWidth)
	m.detail.SetSize(ctx.ChatWidth, ctx.ContentHeight)

	// The transcript height is its line budget inside the panel border.
	transcriptPanelHeight := ctx.ContentHeight - ui.ComposerTotalHeight
	m.transcript.SetHeight(ctx.InnerHeight(transcriptPanelHeight))

	// A width change rewraps every row, so this rebuild only runs while a
	// room is open.
	if m.activeRoom != "" {
		if err := m.transcript.SetWidthAndRebuild(m.transcriptWidth(), m.store, m.activeRoom); err != nil {
			logger.Error("app: resize rebuild for room %s: %v", m.activeRoom, err)
		}
	}
}
