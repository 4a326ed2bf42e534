package ui

import (
	"log/slog"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"

	"github.com/palaver-chat/palaver/internal/config"
	"github.com/palaver-chat/palaver/internal/errors"
	"github.com/palaver-chat/palaver/internal/logger"
	"github.com/palaver-chat/palaver/internal/talk"
)

// RowKind identifies the variant of a transcript row.
type RowKind int

const (
	// RowDateSeparator introduces the first message of a calendar date.
	RowDateSeparator RowKind = iota
	// RowMessage is a rendered chat message.
	RowMessage
	// RowReaction summarizes the reactions on the message row above it.
	RowReaction
	// RowUnreadMarker marks the last-read boundary.
	RowUnreadMarker
)

// Row is one renderable unit of the transcript. Message rows fill all
// fields; separator, reaction, and marker rows carry only Label (and the
// MessageID they annotate, for reaction and marker rows).
type Row struct {
	Kind      RowKind
	MessageID talk.MessageID
	Time      string
	NameLines []string
	NameStyle lipgloss.Style
	BodyLines []string
	Label     string
	Height    int
}

// Transcript turns a room's messages into the three-column transcript
// table: a row sequence (separators, messages, reactions, unread marker),
// a selection index over it, and a windowed view. The row sequence is
// rebuilt in full whenever the width or the room data changes; there is
// no incremental update path.
type Transcript struct {
	rows     []Row
	selected int // -1 when the transcript is empty
	offset   int // first visible row

	width     int // total table width last applied
	bodyWidth int // message column width derived from it
	height    int // visible lines including the header; 0 means unbounded

	dateFormat string
	timeFormat string

	// Per-author name styles, keyed by actor id. Derived, never persisted.
	colorCache map[string]lipgloss.Style

	// Mouse text selection over the rendered view.
	selection TextSelection

	// now is stubbed in tests to pin the "Today!" boundary.
	now func() time.Time

	log *slog.Logger
}

// NewTranscript creates an empty transcript using the config's date and
// time layouts.
func NewTranscript(cfg *config.Config) *Transcript {
	return &Transcript{
		selected:   -1,
		dateFormat: cfg.GetDateFormat(),
		timeFormat: cfg.GetTimeFormat(),
		colorCache: make(map[string]lipgloss.Style),
		selection:  *NewTextSelection(),
		now:        time.Now,
		log:        logger.ComponentLogger("transcript"),
	}
}

// SetFormats swaps the date and time layouts. The caller rebuilds.
func (t *Transcript) SetFormats(dateFormat, timeFormat string) {
	t.dateFormat = dateFormat
	t.timeFormat = timeFormat
}

// bodyWidthFor derives the message column width from the total table
// width: fixed time and name columns plus one space either side of the
// name column come off the top, floored at MinBodyWidth.
func bodyWidthFor(total int) int {
	w := total - TimeColWidth - NameColWidth - 2*ColSpacing
	if w < MinBodyWidth {
		return MinBodyWidth
	}
	return w
}

// SetWidthAndRebuild applies a new total table width and rebuilds the row
// sequence when the derived body width actually changed. Returns without
// rebuilding when it did not; on a rebuild error the previous width and
// rows stay in effect.
func (t *Transcript) SetWidthAndRebuild(total int, backend talk.Backend, token string) error {
	bodyWidth := bodyWidthFor(total)
	if bodyWidth == t.bodyWidth {
		t.width = total
		return nil
	}

	prevWidth, prevBody := t.width, t.bodyWidth
	t.width = total
	t.bodyWidth = bodyWidth
	if err := t.Rebuild(backend, token); err != nil {
		t.width = prevWidth
		t.bodyWidth = prevBody
		return err
	}
	return nil
}

// SetHeight sets the number of visible lines, including the header line.
func (t *Transcript) SetHeight(h int) {
	t.height = h
}

// Width returns the total table width last applied.
func (t *Transcript) Width() int { return t.width }

// Height returns the visible line count last applied.
func (t *Transcript) Height() int { return t.height }

// Rebuild recomputes the full row sequence for the given room. Reaction
// events, edit notices, and deletion tombstones are skipped; a date
// separator precedes the first message of each calendar date (prefixed
// when the date is today); a reaction summary row follows any message
// that has reactions; the unread marker follows the last-read message
// when the room has unread messages. On error the existing rows are left
// untouched. A stale selection index is clamped into range, not
// preserved.
func (t *Transcript) Rebuild(backend talk.Backend, token string) error {
	room, err := backend.Room(token)
	if err != nil {
		return err
	}

	bodyWidth := t.bodyWidth
	if bodyWidth < MinBodyWidth {
		bodyWidth = MinBodyWidth
	}

	today := t.now().Format(t.dateFormat)
	unread := room.HasUnread()
	lastRead := room.LastRead()

	var rows []Row
	lastDate := ""

	for _, msg := range room.Messages() {
		if msg.IsReaction() || msg.IsEditNote() || msg.IsCommentDeleted() {
			continue
		}

		date := msg.DateLabel(t.dateFormat)
		if date != lastDate {
			label := date
			if date == today {
				label = TodayPrefix + label
			}
			rows = append(rows, Row{Kind: RowDateSeparator, Label: label, Height: 1})
			lastDate = date
		}

		nameLines := WrapText(msg.ActorName, NameColWidth)
		bodyLines := WrapText(msg.Text, bodyWidth)
		height := len(nameLines)
		if len(bodyLines) > height {
			height = len(bodyLines)
		}
		height = t.clampRowHeight(msg.ID, height)

		rows = append(rows, Row{
			Kind:      RowMessage,
			MessageID: msg.ID,
			Time:      msg.TimeLabel(t.timeFormat),
			NameLines: nameLines,
			NameStyle: t.authorStyle(msg.ActorID),
			BodyLines: bodyLines,
			Height:    height,
		})

		if msg.HasReactions() {
			rows = append(rows, Row{
				Kind:      RowReaction,
				MessageID: msg.ID,
				Label:     msg.ReactionSummary(),
				Height:    1,
			})
		}

		if unread && msg.ID == lastRead {
			rows = append(rows, Row{
				Kind:      RowUnreadMarker,
				MessageID: msg.ID,
				Label:     UnreadMarkerText,
				Height:    1,
			})
		}
	}

	t.rows = rows
	t.clampSelection()
	t.log.Debug("transcript rebuilt",
		"room", token, "rows", len(rows), "bodyWidth", bodyWidth)
	return nil
}

// clampRowHeight saturates a wrapped line count at MaxRowHeight. The
// overflow is logged as a layout error; rendering clips instead of
// failing.
func (t *Transcript) clampRowHeight(id talk.MessageID, lines int) int {
	if lines <= MaxRowHeight {
		return lines
	}
	err := errors.LayoutOverflow(errors.Op("ui.Transcript.Rebuild"), lines)
	t.log.Error("clamping oversized row", "message", int64(id), "err", err)
	return MaxRowHeight
}

// clampSelection forces the selection index into range after a rebuild.
func (t *Transcript) clampSelection() {
	switch {
	case len(t.rows) == 0:
		t.selected = -1
	case t.selected < 0:
		t.selected = 0
	case t.selected >= len(t.rows):
		t.selected = len(t.rows) - 1
	}
}

// authorStyle returns the name style for an actor id, caching per view.
func (t *Transcript) authorStyle(id string) lipgloss.Style {
	if style, ok := t.colorCache[id]; ok {
		return style
	}
	style := lipgloss.NewStyle().Foreground(AuthorColor(id))
	t.colorCache[id] = style
	return style
}

// SelectFirst moves the selection to the first row.
func (t *Transcript) SelectFirst() {
	if len(t.rows) == 0 {
		t.selected = -1
		return
	}
	t.selected = 0
}

// SelectLast moves the selection to the last row.
func (t *Transcript) SelectLast() {
	if len(t.rows) == 0 {
		t.selected = -1
		return
	}
	t.selected = len(t.rows) - 1
}

// SelectUp moves the selection one row up, saturating at the first row.
// No-op on an empty transcript.
func (t *Transcript) SelectUp() {
	if len(t.rows) == 0 {
		return
	}
	if t.selected <= 0 {
		t.selected = 0
		return
	}
	t.selected--
}

// SelectDown moves the selection one row down, saturating at the last
// row. No-op on an empty transcript.
func (t *Transcript) SelectDown() {
	if len(t.rows) == 0 {
		return
	}
	if t.selected >= len(t.rows)-1 {
		t.selected = len(t.rows) - 1
		return
	}
	t.selected++
}

// SelectedIndex returns the selection index, or -1 when empty.
func (t *Transcript) SelectedIndex() int { return t.selected }

// Selected returns the selected row, if any.
func (t *Transcript) Selected() (Row, bool) {
	if t.selected < 0 || t.selected >= len(t.rows) {
		return Row{}, false
	}
	return t.rows[t.selected], true
}

// Len returns the number of rows.
func (t *Transcript) Len() int { return len(t.rows) }

// RowAt returns the row at index i, if in range.
func (t *Transcript) RowAt(i int) (Row, bool) {
	if i < 0 || i >= len(t.rows) {
		return Row{}, false
	}
	return t.rows[i], true
}

// visibleRows returns the window [start, end) of rows to render so the
// selected row stays inside the given line budget. The stored offset
// anchors the window; it is pulled down or up as the selection moves out
// of it, the way a fixed-offset table scrolls variable-height rows.
func (t *Transcript) visibleRows(budget int) (int, int) {
	if len(t.rows) == 0 || budget <= 0 {
		return 0, 0
	}

	offset := t.offset
	if offset >= len(t.rows) {
		offset = len(t.rows) - 1
	}
	if offset < 0 {
		offset = 0
	}

	start, end := offset, offset
	visible := 0
	for end < len(t.rows) {
		h := t.rows[end].Height
		// The first row always joins the window, even oversized; it
		// renders clipped rather than leaving the table blank.
		if visible+h > budget && end > start {
			break
		}
		visible += h
		end++
		if visible >= budget {
			break
		}
	}

	if t.selected >= 0 {
		for t.selected >= end {
			visible += t.rows[end].Height
			end++
			for visible > budget && start < t.selected {
				visible -= t.rows[start].Height
				start++
			}
		}
		for t.selected < start {
			start--
			visible += t.rows[start].Height
			for visible > budget && end > t.selected+1 {
				end--
				visible -= t.rows[end].Height
			}
		}
	}

	t.offset = start
	return start, end
}

// clampedBodyWidth is the body width rows were built with.
func (t *Transcript) clampedBodyWidth() int {
	if t.bodyWidth < MinBodyWidth {
		return MinBodyWidth
	}
	return t.bodyWidth
}

// padCell pads s with spaces to the given display width.
func padCell(s string, width int) string {
	if w := LineWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// headerLine renders the fixed column header.
func (t *Transcript) headerLine() string {
	gap := strings.Repeat(" ", ColSpacing)
	line := padCell("Time", TimeColWidth) + gap +
		padCell("Name", NameColWidth) + gap +
		padCell("Message", t.clampedBodyWidth())
	return TableHeaderStyle.Render(line)
}

// renderRow renders one row into its terminal lines. A selected row is
// highlighted across the full table width, replacing per-cell styles.
func (t *Transcript) renderRow(row Row, selected bool) []string {
	bodyWidth := t.clampedBodyWidth()
	gap := strings.Repeat(" ", ColSpacing)
	emptyTime := strings.Repeat(" ", TimeColWidth)
	emptyName := strings.Repeat(" ", NameColWidth)

	if row.Kind != RowMessage {
		label := padCell(ansi.Truncate(row.Label, bodyWidth, ""), bodyWidth)
		if selected {
			return []string{RowHighlightStyle.Render(emptyTime + gap + emptyName + gap + label)}
		}
		switch row.Kind {
		case RowDateSeparator:
			label = DateSeparatorStyle.Render(label)
		case RowUnreadMarker:
			label = UnreadStyle.Render(label)
		}
		return []string{emptyTime + gap + emptyName + gap + label}
	}

	lines := make([]string, 0, row.Height)
	for j := 0; j < row.Height; j++ {
		var timeCell, nameCell, bodyCell string
		if j == 0 {
			timeCell = row.Time
		}
		if j < len(row.NameLines) {
			nameCell = row.NameLines[j]
		}
		if j < len(row.BodyLines) {
			bodyCell = row.BodyLines[j]
		}

		timeCell = padCell(ansi.Truncate(timeCell, TimeColWidth, ""), TimeColWidth)
		nameCell = padCell(ansi.Truncate(nameCell, NameColWidth, ""), NameColWidth)
		bodyCell = padCell(ansi.Truncate(bodyCell, bodyWidth, ""), bodyWidth)

		if selected {
			lines = append(lines, RowHighlightStyle.Render(timeCell+gap+nameCell+gap+bodyCell))
			continue
		}
		lines = append(lines, timeCell+gap+row.NameStyle.Render(nameCell)+gap+bodyCell)
	}
	return lines
}

// View renders the transcript table with any mouse selection overlaid.
func (t *Transcript) View() string {
	return t.selectionView(t.tableView())
}

// tableView renders the header line plus the visible window of rows.
// Every line is clipped to the applied width; rows past the line budget
// are cut at the bottom.
func (t *Transcript) tableView() string {
	// Height zero means no window was applied; render every row.
	budget := 1 << 30
	if t.height > 0 {
		budget = t.height - TableHeaderHeight
		if budget < 0 {
			budget = 0
		}
	}

	lines := []string{t.headerLine()}
	start, end := t.visibleRows(budget)
	remaining := budget
	for i := start; i < end && remaining > 0; i++ {
		rowLines := t.renderRow(t.rows[i], i == t.selected)
		if len(rowLines) > remaining {
			rowLines = rowLines[:remaining]
		}
		lines = append(lines, rowLines...)
		remaining -= len(rowLines)
	}

	if t.width > 0 {
		for i, line := range lines {
			if LineWidth(ansi.Strip(line)) > t.width {
				lines[i] = ansi.Truncate(line, t.width, "")
			}
		}
	}

	return strings.Join(lines, "\n")
}

// Draw renders the transcript into a cell buffer clipped to area.
func (t *Transcript) Draw(scr *uv.ScreenBuffer, area uv.Rectangle) {
	uv.NewStyledString(t.View()).Draw(scr, area)
}
