package ui

import (
	"image/color"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"
	"github.com/rivo/uniseg"

	"github.com/palaver-chat/palaver/internal/clipboard"
)

// Selection coordinates are relative to the transcript pane's inner area:
// (0,0) is the first cell of the header line. The app translates terminal
// mouse coordinates into pane coordinates (panel border subtracted) before
// calling the Handle* methods, so the rendered view, the highlight overlay,
// and text extraction all share one coordinate space.

// ClipboardErrorMsg is sent when a native clipboard write fails.
type ClipboardErrorMsg struct {
	Error error
}

// SelectionFlashTickMsg advances the copy flash animation.
type SelectionFlashTickMsg time.Time

const (
	doubleClickThreshold = 500 * time.Millisecond
	clickTolerance       = 2 // cells
)

// TextSelection tracks mouse-based text selection over the transcript view.
type TextSelection struct {
	StartCol, StartLine int
	EndCol, EndLine     int
	Active              bool // true during a drag

	// Click tracking for double/triple click detection
	LastClickTime time.Time
	LastClickX    int
	LastClickY    int
	ClickCount    int

	// Copy flash animation: -1 inactive, 0 flash visible, 1+ done
	FlashFrame int
}

// NewTextSelection returns an inactive selection.
func NewTextSelection() *TextSelection {
	return &TextSelection{FlashFrame: -1}
}

// HasSelection reports whether the selection spans at least one cell.
func (s *TextSelection) HasSelection() bool {
	if s.StartLine != s.EndLine {
		return true
	}
	return s.StartCol != s.EndCol
}

// Clear resets the selection to empty.
func (s *TextSelection) Clear() {
	s.StartCol, s.StartLine = 0, 0
	s.EndCol, s.EndLine = 0, 0
	s.Active = false
}

// StartSelection begins a selection at the given pane coordinates.
func (t *Transcript) StartSelection(col, line int) {
	t.selection.StartCol, t.selection.StartLine = col, line
	t.selection.EndCol, t.selection.EndLine = col, line
	t.selection.Active = true
}

// EndSelection moves the selection end position during a drag.
func (t *Transcript) EndSelection(col, line int) {
	if !t.selection.Active {
		return
	}
	t.selection.EndCol, t.selection.EndLine = col, line
}

// SelectionStop ends the drag but keeps the selection visible.
func (t *Transcript) SelectionStop() {
	t.selection.Active = false
}

// SelectionClear drops the selection entirely.
func (t *Transcript) SelectionClear() {
	t.selection.Clear()
}

// HasTextSelection reports whether a non-empty selection exists.
func (t *Transcript) HasTextSelection() bool {
	return t.selection.HasSelection()
}

// HandleMouseClick starts a selection, growing to a word on double click
// and a paragraph on triple click. Word and paragraph selections copy
// immediately.
func (t *Transcript) HandleMouseClick(x, y int) tea.Cmd {
	now := time.Now()
	s := &t.selection

	if now.Sub(s.LastClickTime) <= doubleClickThreshold &&
		abs(x-s.LastClickX) <= clickTolerance &&
		abs(y-s.LastClickY) <= clickTolerance {
		s.ClickCount++
	} else {
		s.ClickCount = 1
	}
	s.LastClickTime = now
	s.LastClickX = x
	s.LastClickY = y

	switch s.ClickCount {
	case 1:
		t.StartSelection(x, y)
	case 2:
		t.SelectWord(x, y)
		return t.CopySelectedText()
	default:
		t.SelectParagraph(x, y)
		s.ClickCount = 0
		return t.CopySelectedText()
	}
	return nil
}

// HandleMouseMotion extends the selection while dragging.
func (t *Transcript) HandleMouseMotion(x, y int) {
	t.EndSelection(x, y)
}

// HandleMouseRelease finishes a drag, copying when anything was selected.
func (t *Transcript) HandleMouseRelease(x, y int) tea.Cmd {
	if !t.selection.Active {
		return nil
	}
	t.EndSelection(x, y)
	t.SelectionStop()
	if !t.HasTextSelection() {
		return nil
	}
	return t.CopySelectedText()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// SelectWord selects the word at the given position. Byte offsets match
// display columns for the padded table layout, which is ASCII except for
// message text.
func (t *Transcript) SelectWord(col, line int) {
	lines := strings.Split(t.tableView(), "\n")
	if line < 0 || line >= len(lines) {
		return
	}

	currentLine := ansi.Strip(lines[line])
	if col < 0 || col >= len(currentLine) {
		return
	}

	startCol := col
	endCol := col

	// Search backward for the word start.
	gr := uniseg.NewGraphemes(currentLine[:col])
	pos := 0
	lastBoundary := 0
	for gr.Next() {
		if gr.IsWordBoundary() {
			lastBoundary = pos
		}
		pos += len(gr.Str())
	}
	startCol = lastBoundary

	// Search forward for the word end.
	gr = uniseg.NewGraphemes(currentLine[col:])
	pos = col
	for gr.Next() {
		if gr.IsWordBoundary() {
			endCol = pos
			break
		}
		pos += len(gr.Str())
	}
	if endCol <= col {
		endCol = len(currentLine)
	}

	t.selection.StartCol, t.selection.StartLine = startCol, line
	t.selection.EndCol, t.selection.EndLine = endCol, line
	t.selection.Active = false
}

// SelectParagraph selects the contiguous block of non-blank lines around
// the given position.
func (t *Transcript) SelectParagraph(col, line int) {
	lines := strings.Split(t.tableView(), "\n")
	if line < 0 || line >= len(lines) {
		return
	}

	startLine := line
	endLine := line

	for startLine > 0 {
		prev := ansi.Strip(lines[startLine-1])
		if strings.TrimSpace(prev) == "" {
			break
		}
		startLine--
	}
	for endLine < len(lines)-1 {
		next := ansi.Strip(lines[endLine+1])
		if strings.TrimSpace(next) == "" {
			break
		}
		endLine++
	}

	t.selection.StartCol, t.selection.StartLine = 0, startLine
	t.selection.EndCol = len(ansi.Strip(lines[endLine]))
	t.selection.EndLine = endLine
	t.selection.Active = false
}

// selectionArea returns the selection normalized to reading order: drags
// can run bottom-right to top-left, so swap ends until (startCol,
// startLine) comes first.
func (t *Transcript) selectionArea() (startCol, startLine, endCol, endLine int) {
	startCol = t.selection.StartCol
	startLine = t.selection.StartLine
	endCol = t.selection.EndCol
	endLine = t.selection.EndLine

	if startLine > endLine || (startLine == endLine && startCol > endCol) {
		startCol, endCol = endCol, startCol
		startLine, endLine = endLine, startLine
	}
	return
}

// GetSelectedText extracts the selected text from the rendered view.
// ANSI codes are stripped first so selection columns index visible
// characters, not escape bytes.
func (t *Transcript) GetSelectedText() string {
	if !t.HasTextSelection() {
		return ""
	}

	lines := strings.Split(t.tableView(), "\n")
	startCol, startLine, endCol, endLine := t.selectionArea()

	var result strings.Builder
	for y := startLine; y <= endLine && y < len(lines); y++ {
		if y < 0 {
			continue
		}
		line := ansi.Strip(lines[y])

		lineStart, lineEnd := 0, len(line)
		if y == startLine {
			lineStart = startCol
		}
		if y == endLine {
			lineEnd = endCol
		}
		if lineStart < 0 {
			lineStart = 0
		}
		if lineEnd > len(line) {
			lineEnd = len(line)
		}
		if lineStart > lineEnd {
			lineStart = lineEnd
		}

		if lineStart < len(line) {
			result.WriteString(line[lineStart:lineEnd])
		}
		if y < endLine {
			result.WriteString("\n")
		}
	}

	return strings.TrimSpace(result.String())
}

// CopySelectedText copies the selection to the clipboard and starts the
// copy flash.
func (t *Transcript) CopySelectedText() tea.Cmd {
	if !t.HasTextSelection() {
		return nil
	}
	text := t.GetSelectedText()
	if text == "" {
		return nil
	}

	t.selection.FlashFrame = 0

	return tea.Batch(
		// OSC 52 escape sequence, which works in modern terminals
		tea.SetClipboard(text),
		// Native clipboard fallback
		func() tea.Msg {
			if err := clipboard.WriteText(text); err != nil {
				t.log.Warn("clipboard write failed", "err", err)
				return ClipboardErrorMsg{Error: err}
			}
			return nil
		},
		SelectionFlashTick(),
	)
}

// SelectionFlashTick schedules the next copy flash frame.
func SelectionFlashTick() tea.Cmd {
	return tea.Tick(150*time.Millisecond, func(ts time.Time) tea.Msg {
		return SelectionFlashTickMsg(ts)
	})
}

// HandleSelectionFlashTick advances the copy flash, clearing the
// selection once the flash has been shown.
func (t *Transcript) HandleSelectionFlashTick() tea.Cmd {
	if t.selection.FlashFrame < 0 {
		return nil
	}
	t.selection.FlashFrame++
	if t.selection.FlashFrame >= 2 {
		t.selection.FlashFrame = -1
		t.selection.Clear()
		return nil
	}
	return SelectionFlashTick()
}

// IsSelectionFlashing reports whether the copy flash is running.
func (t *Transcript) IsSelectionFlashing() bool {
	return t.selection.FlashFrame >= 0
}

// selectionView overlays the selection highlight onto the rendered view
// using a cell buffer, flashing in the copy style right after a copy.
func (t *Transcript) selectionView(view string) string {
	if !t.HasTextSelection() {
		return view
	}

	width := t.width
	height := t.height
	if width <= 0 || height <= 0 {
		return view
	}

	area := uv.Rect(0, 0, width, height)
	scr := uv.NewScreenBuffer(area.Dx(), area.Dy())
	uv.NewStyledString(view).Draw(scr, area)

	startCol, startLine, endCol, endLine := t.selectionArea()

	var selBg, selFg color.Color
	if t.selection.FlashFrame == 0 {
		selBg = TextSelectionFlashStyle.GetBackground()
		selFg = TextSelectionFlashStyle.GetForeground()
	} else {
		selBg = TextSelectionStyle.GetBackground()
		selFg = TextSelectionStyle.GetForeground()
	}

	for y := startLine; y <= endLine && y < height; y++ {
		var xStart, xEnd int
		switch {
		case y == startLine && y == endLine:
			xStart, xEnd = startCol, endCol
		case y == startLine:
			xStart, xEnd = startCol, width
		case y == endLine:
			xStart, xEnd = 0, endCol
		default:
			xStart, xEnd = 0, width
		}

		for x := xStart; x < xEnd && x < width; x++ {
			cell := scr.CellAt(x, y)
			if cell != nil {
				cell = cell.Clone()
				cell.Style.Bg = selBg
				cell.Style.Fg = selFg
				scr.SetCell(x, y, cell)
			}
		}
	}

	return scr.Render()
}
