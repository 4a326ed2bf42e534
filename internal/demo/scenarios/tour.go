// Package scenarios contains built-in demo scenarios for palaver.
package scenarios

import (
	"time"

	"github.com/palaver-chat/palaver/internal/demo"
)

// Tour demonstrates the core loop:
// - Opening a room that has unread messages
// - Scrolling back through the transcript
// - Sending a message
// - Live feed deliveries landing while the room is open
// - Inspecting a message in the detail view
var Tour = &demo.Scenario{
	Name:        "tour",
	Description: "Open a room, catch up, send a message, inspect one",
	Width:       120,
	Height:      40,
	Steps: []demo.Step{
		// Initial view: three rooms, General carrying an unread badge
		demo.Wait(1 * time.Second),
		demo.Capture(),

		// Open General; the transcript lands on the newest row with the
		// unread marker above everything that arrived since last time
		demo.Annotate("Opening a room with unread messages"),
		demo.KeyWithDesc("enter", "Open General"),
		demo.Wait(800 * time.Millisecond),
		demo.Capture(),

		// Scroll back through older days
		demo.Key("k"),
		demo.Wait(200 * time.Millisecond),
		demo.Key("k"),
		demo.Wait(200 * time.Millisecond),
		demo.Key("k"),
		demo.Wait(400 * time.Millisecond),
		demo.Capture(),

		// Jump back to the newest row
		demo.KeyWithDesc("G", "Jump to newest"),
		demo.Wait(400 * time.Millisecond),
		demo.Capture(),

		// Compose and send
		demo.KeyWithDesc("enter", "Focus composer"),
		demo.TypeWithDesc("Morning! Watching the canary dashboards now.", "Compose a message"),
		demo.Wait(400 * time.Millisecond),
		demo.Capture(),
		demo.Key("enter"),
		demo.Wait(600 * time.Millisecond),
		demo.Capture(),
		demo.KeyWithDesc("escape", "Back to the transcript"),

		// Scripted deliveries land: one in General, one in Random,
		// which lights up Random's unread badge
		demo.Annotate("Live deliveries keep the rooms moving"),
		demo.Feed(2),
		demo.Wait(800 * time.Millisecond),
		demo.Capture(),

		// Inspect the selected message in the detail view
		demo.KeyWithDesc("v", "Open message detail"),
		demo.Wait(800 * time.Millisecond),
		demo.Capture(),
		demo.Key("escape"),

		// Final pause
		demo.Wait(2 * time.Second),
	},
}
