// Package ui provides the user interface components for the Palaver TUI.
//
// # Overview
//
// The ui package implements the visual components of Palaver using the
// Bubble Tea framework and Lipgloss styling library. It follows the
// Model-Update-View pattern established by Bubble Tea.
//
// # Layout System
//
// The layout is organized as follows:
//
//	┌─────────────────────────────────────────────────────┐
//	│ Header (1 line)                                     │
//	├─────────────┬───────────────────────────────────────┤
//	│             │                                       │
//	│  Room List  │         Transcript                    │
//	│  (1/4 width)│         (3/4 width)                   │
//	│             ├───────────────────────────────────────┤
//	│             │         Composer (3 lines + border)   │
//	├─────────────┴───────────────────────────────────────┤
//	│ Footer (1 line)                                     │
//	└─────────────────────────────────────────────────────┘
//
// # Components
//
// Transcript: The layout engine at the heart of the application. It turns
// a room's message history into a flat list of variable-height table rows
// (date separators, messages, reaction summaries, the unread marker) and
// renders them as a three-column table: time (5 cells), author name
// (20 cells), and a flexible message body column.
//
// Header: Displays the application title and the active room name.
// Uses a gradient background with the primary color.
//
// Footer: Shows context-aware keyboard shortcuts. The displayed shortcuts
// change based on focus state.
//
// RoomList: Lists all rooms with unread badges. Supports selection with
// keyboard navigation (j/k or arrow keys).
//
// Composer: Textarea for writing a new message to the active room.
//
// Detail: Full view of the selected message with fenced code blocks
// syntax highlighted.
//
// Modal: Popup dialogs, currently the settings form.
//
// # Focus System
//
// Focus cycles between the room list, the transcript, and the composer
// with Tab. The 'q' key only quits when the composer is not focused
// (to allow typing 'q' in a message).
//
// # Styles
//
// All styles are defined in styles.go using Lipgloss and regenerated from
// the active theme. Author name colors are not part of the theme: they are
// derived deterministically from the author id so the same person keeps
// the same color across sessions and machines.
package ui
