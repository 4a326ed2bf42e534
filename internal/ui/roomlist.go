package ui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/palaver-chat/palaver/internal/keys"
	"github.com/palaver-chat/palaver/internal/talk"
)

// RoomList represents the left panel with the room list
type RoomList struct {
	rooms        []talk.Room
	selectedIdx  int
	width        int
	height       int
	focused      bool
	scrollOffset int
	activeToken  string // room currently open in the transcript
}

// NewRoomList creates a new room list
func NewRoomList() *RoomList {
	return &RoomList{}
}

// SetSize sets the room list dimensions
func (r *RoomList) SetSize(width, height int) {
	r.width = width
	r.height = height
}

// Width returns the room list width
func (r *RoomList) Width() int {
	return r.width
}

// SetFocused sets the focus state
func (r *RoomList) SetFocused(focused bool) {
	r.focused = focused
}

// IsFocused returns the focus state
func (r *RoomList) IsFocused() bool {
	return r.focused
}

// SetRooms replaces the room list. The selection follows the previously
// selected room's token when it is still present, and is clamped otherwise.
func (r *RoomList) SetRooms(rooms []talk.Room) {
	var keep string
	if room, ok := r.SelectedRoom(); ok {
		keep = room.Token()
	}

	r.rooms = rooms

	if keep != "" {
		for i, room := range rooms {
			if room.Token() == keep {
				r.selectedIdx = i
				return
			}
		}
	}
	if r.selectedIdx >= len(rooms) {
		r.selectedIdx = len(rooms) - 1
	}
	if r.selectedIdx < 0 {
		r.selectedIdx = 0
	}
}

// SelectedRoom returns the currently selected room, if any.
func (r *RoomList) SelectedRoom() (talk.Room, bool) {
	if r.selectedIdx < 0 || r.selectedIdx >= len(r.rooms) {
		return nil, false
	}
	return r.rooms[r.selectedIdx], true
}

// SelectRoom moves the selection to the room with the given token.
func (r *RoomList) SelectRoom(token string) {
	for i, room := range r.rooms {
		if room.Token() == token {
			r.selectedIdx = i
			return
		}
	}
}

// SetActive marks the room that is open in the transcript.
func (r *RoomList) SetActive(token string) {
	r.activeToken = token
}

// SelectUp moves the selection one room up, saturating at the top.
func (r *RoomList) SelectUp() {
	if r.selectedIdx > 0 {
		r.selectedIdx--
	}
}

// SelectDown moves the selection one room down, saturating at the bottom.
func (r *RoomList) SelectDown() {
	if r.selectedIdx < len(r.rooms)-1 {
		r.selectedIdx++
	}
}

// Update handles messages
func (r *RoomList) Update(msg tea.Msg) (*RoomList, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		if !r.focused {
			return r, nil
		}
		switch msg.String() {
		case keys.Up, "k":
			r.SelectUp()
		case keys.Down, "j":
			r.SelectDown()
		}
	}
	return r, nil
}

// View renders the room list
func (r *RoomList) View() string {
	ctx := GetViewContext()

	style := PanelStyle
	if r.focused {
		style = PanelFocusedStyle
	}

	innerWidth := ctx.InnerWidth(r.width)
	innerHeight := ctx.InnerHeight(r.height)

	var content string
	if len(r.rooms) == 0 {
		content = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true).
			Render("No rooms.")
	} else {
		lines := make([]string, 0, len(r.rooms))
		selectedLine := 0
		for i, room := range r.rooms {
			if i == r.selectedIdx {
				selectedLine = len(lines)
			}
			lines = append(lines, r.renderRoom(room, i == r.selectedIdx, innerWidth))
		}

		// Keep the selected room inside the visible window
		if selectedLine < r.scrollOffset {
			r.scrollOffset = selectedLine
		} else if innerHeight > 0 && selectedLine >= r.scrollOffset+innerHeight {
			r.scrollOffset = selectedLine - innerHeight + 1
		}
		if r.scrollOffset < 0 {
			r.scrollOffset = 0
		}
		maxScroll := len(lines) - innerHeight
		if maxScroll < 0 {
			maxScroll = 0
		}
		if r.scrollOffset > maxScroll {
			r.scrollOffset = maxScroll
		}

		if r.scrollOffset > 0 && r.scrollOffset < len(lines) {
			lines = lines[r.scrollOffset:]
		}
		if innerHeight > 0 && len(lines) > innerHeight {
			lines = lines[:innerHeight]
		}
		content = strings.Join(lines, "\n")
	}

	// In lipgloss v2, Width/Height include borders, so pass full panel size
	return style.Width(r.width).Height(r.height).Render(content)
}

// renderRoom builds one room line: an unread badge, the name, and the
// selection or active highlight.
func (r *RoomList) renderRoom(room talk.Room, selected bool, innerWidth int) string {
	badge := "○"
	if room.HasUnread() {
		badge = "●"
	}

	name := room.Name()
	if name == "" {
		name = room.Token()
	}

	if selected {
		line := "> " + badge + " " + name
		if innerWidth > 0 {
			line = ansi.Truncate(line, innerWidth, "…")
		}
		return RoomSelectedStyle.Width(innerWidth).Render(line)
	}

	var badgeStyled string
	if room.HasUnread() {
		badgeStyled = RoomUnreadBadgeStyle.Render(badge)
	} else {
		badgeStyled = lipgloss.NewStyle().Foreground(ColorTextMuted).Render(badge)
	}

	nameStyle := lipgloss.NewStyle().Foreground(ColorText)
	if room.Token() == r.activeToken {
		nameStyle = nameStyle.Foreground(ColorSecondary)
	}
	if innerWidth > 4 {
		name = ansi.Truncate(name, innerWidth-4, "…")
	}

	return "  " + badgeStyled + " " + nameStyle.Render(name)
}
