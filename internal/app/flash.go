package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/palaver-chat/palaver/internal/ui"
)

// showFlash displays a flash message in the footer and returns a command
// to start the auto-dismiss timer.
func (m *Model) showFlash(text string) tea.Cmd {
	m.footer.SetFlash(text, false)
	return ui.FlashTick()
}

// showFlashError displays an error flash message.
func (m *Model) showFlashError(text string) tea.Cmd {
	m.footer.SetFlash(text, true)
	return ui.FlashTick()
}
