package ui

import (
	"strings"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
)

// Composer is the message input below the transcript.
type Composer struct {
	input   textarea.Model
	width   int
	focused bool
}

// NewComposer creates a new composer
func NewComposer() *Composer {
	ti := textarea.New()
	ti.Placeholder = "Type a message..."
	ti.CharLimit = 0
	ti.SetHeight(ComposerHeight)
	ti.ShowLineNumbers = false
	ti.Prompt = ""

	return &Composer{input: ti}
}

// SetWidth sets the composer width, sizing the textarea to the space
// inside the border and padding.
func (c *Composer) SetWidth(width int) {
	c.width = width

	ctx := GetViewContext()
	innerWidth := ctx.InnerWidth(width) - ComposerPaddingWidth
	if innerWidth < 1 {
		innerWidth = 1
	}
	c.input.SetWidth(innerWidth)
}

// SetFocused sets the focus state
func (c *Composer) SetFocused(focused bool) {
	c.focused = focused
	if focused {
		c.input.Focus()
	} else {
		c.input.Blur()
	}
}

// IsFocused returns the focus state
func (c *Composer) IsFocused() bool {
	return c.focused
}

// Value returns the current input text.
func (c *Composer) Value() string {
	return c.input.Value()
}

// IsEmpty reports whether the input holds only whitespace.
func (c *Composer) IsEmpty() bool {
	return strings.TrimSpace(c.input.Value()) == ""
}

// SetValue replaces the input text.
func (c *Composer) SetValue(value string) {
	c.input.SetValue(value)
}

// Reset clears the input.
func (c *Composer) Reset() {
	c.input.Reset()
}

// InsertNewline inserts a line break at the cursor. Plain enter sends, so
// the caller maps shift+enter and alt+enter here.
func (c *Composer) InsertNewline() {
	c.input.InsertString("\n")
}

// Update forwards messages to the textarea while focused. Enter and
// escape are handled by the caller and never reach the textarea.
func (c *Composer) Update(msg tea.Msg) (*Composer, tea.Cmd) {
	if !c.focused {
		return c, nil
	}
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

// View renders the composer
func (c *Composer) View() string {
	style := ComposerStyle
	if c.focused {
		style = ComposerFocusedStyle
	}
	return style.Width(c.width).Render(c.input.View())
}
