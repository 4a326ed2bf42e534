// Package clipboard writes selection text to the system clipboard.
//
// Copies run through the terminal's OSC 52 escape sequence first; this
// package is the native fallback for terminals that ignore it. On macOS
// it talks to the pasteboard directly, elsewhere it goes through
// golang.design/x/clipboard.
package clipboard
