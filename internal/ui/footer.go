package ui

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// FocusArea identifies which pane owns keyboard input.
type FocusArea int

const (
	// FocusRooms is the room list pane.
	FocusRooms FocusArea = iota
	// FocusTranscript is the transcript pane.
	FocusTranscript
	// FocusComposer is the compose box.
	FocusComposer
	// FocusModal means a modal owns input.
	FocusModal
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// DefaultFlashDuration is how long a flash message stays in the footer.
const DefaultFlashDuration = 4 * time.Second

// flashTickInterval is how often the expiry check runs while a flash is up.
const flashTickInterval = 500 * time.Millisecond

// FlashTickMsg is sent periodically while a flash message is showing.
type FlashTickMsg time.Time

// FlashTick returns a command that schedules the next flash expiry check.
func FlashTick() tea.Cmd {
	return tea.Tick(flashTickInterval, func(t time.Time) tea.Msg {
		return FlashTickMsg(t)
	})
}

// Footer represents the bottom footer bar with keybindings. A flash message
// (usually an error) temporarily replaces the hints.
type Footer struct {
	width      int
	focus      FocusArea
	hasRoom    bool // whether a room is open in the transcript
	detailOpen bool // whether the message detail overlay is showing
	flash      string
	flashError bool
	flashSetAt time.Time
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{}
}

// SetContext updates the footer's context for conditional bindings
func (f *Footer) SetContext(focus FocusArea, hasRoom, detailOpen bool) {
	f.focus = focus
	f.hasRoom = hasRoom
	f.detailOpen = detailOpen
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetFlash replaces the key hints with a transient message. isError picks
// the error style over the plain one.
func (f *Footer) SetFlash(msg string, isError bool) {
	f.flash = msg
	f.flashError = isError
	f.flashSetAt = time.Now()
}

// ClearFlash removes the flash message
func (f *Footer) ClearFlash() {
	f.flash = ""
	f.flashError = false
	f.flashSetAt = time.Time{}
}

// ClearIfExpired clears the flash once it has outlived DefaultFlashDuration.
// Returns true if the flash was cleared.
func (f *Footer) ClearIfExpired() bool {
	if f.flash == "" {
		return false
	}
	if time.Since(f.flashSetAt) < DefaultFlashDuration {
		return false
	}
	f.ClearFlash()
	return true
}

// HasFlash reports whether a flash message is showing
func (f *Footer) HasFlash() bool {
	return f.flash != ""
}

// bindings returns the hints for the current context
func (f *Footer) bindings() []KeyBinding {
	if f.detailOpen {
		return []KeyBinding{
			{Key: "esc/v", Desc: "close"},
			{Key: "↑/↓/j/k", Desc: "scroll"},
			{Key: "pgup/dn", Desc: "page"},
		}
	}

	switch f.focus {
	case FocusModal:
		return []KeyBinding{
			{Key: "tab", Desc: "next field"},
			{Key: "enter", Desc: "save"},
			{Key: "esc", Desc: "cancel"},
		}
	case FocusComposer:
		return []KeyBinding{
			{Key: "enter", Desc: "send"},
			{Key: "esc", Desc: "back"},
			{Key: "tab", Desc: "switch pane"},
		}
	case FocusTranscript:
		return []KeyBinding{
			{Key: "↑/↓/j/k", Desc: "select"},
			{Key: "g/G", Desc: "first/last"},
			{Key: "v", Desc: "detail"},
			{Key: "enter", Desc: "compose"},
			{Key: "tab", Desc: "switch pane"},
			{Key: ",", Desc: "settings"},
			{Key: "q", Desc: "quit"},
		}
	default: // FocusRooms
		hints := []KeyBinding{
			{Key: "↑/↓/j/k", Desc: "select room"},
			{Key: "enter", Desc: "open"},
		}
		if f.hasRoom {
			hints = append(hints, KeyBinding{Key: "tab", Desc: "switch pane"})
		}
		hints = append(hints,
			KeyBinding{Key: ",", Desc: "settings"},
			KeyBinding{Key: "q", Desc: "quit"},
		)
		return hints
	}
}

// View renders the footer
func (f *Footer) View() string {
	if f.flash != "" {
		style := FooterDescStyle
		if f.flashError {
			style = StatusErrorStyle
		}
		return FooterStyle.Width(f.width).Render(style.Render(f.flash))
	}

	var parts []string
	for _, b := range f.bindings() {
		key := FooterKeyStyle.Render(b.Key)
		desc := FooterDescStyle.Render(": " + b.Desc)
		parts = append(parts, key+desc)
	}

	content := strings.Join(parts, "  "+lipgloss.NewStyle().Foreground(ColorBorder).Render("|")+"  ")

	return FooterStyle.Width(f.width).Render(content)
}
