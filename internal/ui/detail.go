package ui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/palaver-chat/palaver/internal/config"
	"github.com/palaver-chat/palaver/internal/talk"
)

// Detail shows a single message full-size: author, timestamps, reactions,
// and the body rendered as markdown with highlighted code blocks. It
// replaces the transcript pane while open and scrolls independently.
type Detail struct {
	viewport   viewport.Model
	msg        talk.Message
	open       bool
	width      int
	height     int
	dateFormat string
	timeFormat string
}

// NewDetail creates a new detail view
func NewDetail(cfg *config.Config) *Detail {
	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	return &Detail{
		viewport:   vp,
		dateFormat: cfg.GetDateFormat(),
		timeFormat: cfg.GetTimeFormat(),
	}
}

// SetFormats swaps the date and time layouts used in the metadata line.
func (d *Detail) SetFormats(dateFormat, timeFormat string) {
	d.dateFormat = dateFormat
	d.timeFormat = timeFormat
	if d.open {
		d.viewport.SetContent(d.renderContent())
	}
}

// Open shows the given message and scrolls to the top.
func (d *Detail) Open(msg talk.Message) {
	d.msg = msg
	d.open = true
	d.viewport.SetContent(d.renderContent())
	d.viewport.GotoTop()
}

// Close hides the detail view.
func (d *Detail) Close() {
	d.open = false
}

// IsOpen returns whether the detail view is showing.
func (d *Detail) IsOpen() bool {
	return d.open
}

// Message returns the message being shown.
func (d *Detail) Message() talk.Message {
	return d.msg
}

// SetSize sets the detail pane dimensions and re-wraps the body.
func (d *Detail) SetSize(width, height int) {
	d.width = width
	d.height = height

	ctx := GetViewContext()
	innerWidth := ctx.InnerWidth(width)
	// The title line takes one row inside the panel
	innerHeight := ctx.InnerHeight(height) - 1
	if innerWidth < 1 {
		innerWidth = 1
	}
	if innerHeight < 1 {
		innerHeight = 1
	}

	d.viewport.SetWidth(innerWidth)
	d.viewport.SetHeight(innerHeight)

	if d.open {
		d.viewport.SetContent(d.renderContent())
	}
}

// Update handles messages, forwarding scroll input to the viewport.
func (d *Detail) Update(msg tea.Msg) (*Detail, tea.Cmd) {
	if !d.open {
		return d, nil
	}
	var cmd tea.Cmd
	d.viewport, cmd = d.viewport.Update(msg)
	return d, cmd
}

// renderContent builds the metadata header and rendered body.
func (d *Detail) renderContent() string {
	width := d.viewport.Width()
	if width <= 0 {
		width = DefaultWrapWidth
	}

	author := d.msg.ActorName
	if author == "" {
		author = d.msg.ActorID
	}
	authorLine := DetailAuthorStyle.Foreground(AuthorColor(d.msg.ActorID)).Render(author)

	when := d.msg.DateLabel(d.dateFormat) + " " + d.msg.TimeLabel(d.timeFormat)
	metaLine := DetailMetaStyle.Render(fmt.Sprintf("%s · #%d · %s", when, d.msg.ID, d.msg.Kind))

	var sb strings.Builder
	sb.WriteString(authorLine)
	sb.WriteString("\n")
	sb.WriteString(metaLine)
	sb.WriteString("\n")
	if d.msg.HasReactions() {
		sb.WriteString(DetailMetaStyle.Render(d.msg.ReactionSummary()))
		sb.WriteString("\n")
	}
	sb.WriteString(MarkdownHRStyle.Render(strings.Repeat("─", width)))
	sb.WriteString("\n")
	sb.WriteString(renderMarkdown(d.msg.Text, width))

	return sb.String()
}

// View renders the detail pane
func (d *Detail) View() string {
	if !d.open {
		return ""
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		PanelTitleStyle.Render("Message"),
		d.viewport.View(),
	)
	return PanelFocusedStyle.Width(d.width).Height(d.height).Render(content)
}
