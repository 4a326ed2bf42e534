package ui

import "math"

// Transcript column geometry. The transcript is a three-column table:
// time, author name, message body.
const (
	// TimeColWidth is the fixed width of the timestamp column
	TimeColWidth = 5

	// NameColWidth is the fixed width of the author name column
	NameColWidth = 20

	// ColSpacing is the gap between adjacent columns
	ColSpacing = 1

	// MinBodyWidth is the floor for the message body column; narrower
	// terminals still wrap at this width and let the terminal clip
	MinBodyWidth = 10

	// MaxRowHeight caps how many lines a single transcript row may span
	MaxRowHeight = math.MaxUint16
)

// Transcript marker text
const (
	// TodayPrefix is prepended to a date separator when the date is the
	// current local day
	TodayPrefix = "Today! "

	// UnreadMarkerText is the banner inserted after the last read message
	UnreadMarkerText = "+++ LAST READ +++"
)

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// RoomListWidthRatio is the denominator for room list width (1/4 of total width)
	RoomListWidthRatio = 4

	// ComposerHeight is the number of lines for the composer textarea
	ComposerHeight = 3

	// ComposerBorderHeight is the border size around the composer
	ComposerBorderHeight = 2

	// ComposerTotalHeight is the total height of the composer (textarea + borders)
	ComposerTotalHeight = ComposerHeight + ComposerBorderHeight

	// ComposerPaddingWidth is the horizontal padding inside the composer border
	ComposerPaddingWidth = 2

	// TableHeaderHeight is the height of the transcript column header row
	TableHeaderHeight = 1

	// DefaultWrapWidth is the default width for text wrapping when the
	// terminal size is unknown
	DefaultWrapWidth = 80

	// MinTerminalWidth is the smallest width layout math is computed for;
	// narrower terminals are treated as this wide and clip
	MinTerminalWidth = 40

	// MinTerminalHeight is the smallest height layout math is computed for
	MinTerminalHeight = 10
)

// Modal dimensions
const (
	// ModalWidth is the default width of modals
	ModalWidth = 60

	// ModalInputCharLimit is the character limit for modal text inputs
	ModalInputCharLimit = 256

	// ModalInputWidth is the width of modal text inputs
	ModalInputWidth = 50
)
