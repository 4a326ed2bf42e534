package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

// Header represents the top header bar
type Header struct {
	width    int
	roomName string
	unread   int
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetRoomName sets the active room name to display
func (h *Header) SetRoomName(name string) {
	h.roomName = name
}

// SetUnread sets the unread message count for the active room
func (h *Header) SetUnread(count int) {
	h.unread = count
}

// View renders the header
func (h *Header) View() string {
	// Build the content string (without styling)
	titleText := " palaver"
	var rightText, unreadMarker string
	if h.roomName != "" {
		rightText = h.roomName
		if h.unread > 0 {
			unreadMarker = fmt.Sprintf("(%d unread)", h.unread)
			rightText += " " + unreadMarker
		}
		rightText += " "
	}

	// Calculate padding
	paddingLen := h.width - LineWidth(titleText) - LineWidth(rightText)
	if paddingLen < 0 {
		paddingLen = 0
	}

	fullContent := titleText + strings.Repeat(" ", paddingLen) + rightText

	// Render with gradient background
	return h.renderGradient(fullContent, unreadMarker)
}

// parseHexColor parses a hex color string (e.g., "#7C3AED") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient renders the content with a theme-aware gradient background.
// mutedMarker identifies the trailing portion of the text to dim (the unread
// count), when present.
func (h *Header) renderGradient(content string, mutedMarker string) string {
	if len(content) == 0 {
		return ""
	}

	// Get colors from current theme
	theme := CurrentTheme()
	startR, startG, startB := parseHexColor(theme.Primary)
	// End color: fade to the main background
	endR, endG, endB := parseHexColor(theme.Bg)

	// Text color from theme
	textColor := lipgloss.Color(theme.Text)
	mutedColor := lipgloss.Color(theme.TextMuted)

	// Find where the muted portion starts (if present), in runes because
	// the render loop below walks runes
	mutedStart := -1
	if mutedMarker != "" {
		if b := strings.Index(content, mutedMarker); b >= 0 {
			mutedStart = len([]rune(content[:b]))
		}
	}

	runes := []rune(content)
	width := len(runes)
	var result strings.Builder

	for i, r := range runes {
		// Calculate interpolation factor (0.0 to 1.0)
		t := float64(i) / float64(width)

		// Interpolate colors
		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)

		// Create color string
		bgColor := lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))

		// Determine if this character is in the muted portion
		inMuted := mutedStart >= 0 && i >= mutedStart

		// Style for this character
		style := lipgloss.NewStyle().
			Background(bgColor).
			Bold(i < 8) // Bold for the " palaver" title

		if inMuted {
			style = style.Foreground(mutedColor)
		} else {
			style = style.Foreground(textColor)
		}

		result.WriteString(style.Render(string(r)))
	}

	return result.String()
}
