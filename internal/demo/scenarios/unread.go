package scenarios

import (
	"time"

	"github.com/palaver-chat/palaver/internal/demo"
)

// Unread demonstrates read tracking:
// - Deliveries to background rooms light up their unread badges
// - Opening a room shows the read marker where the user left off
// - The badge clears once the room has been opened
var Unread = &demo.Scenario{
	Name:        "unread",
	Description: "Unread badges and the read marker",
	Width:       120,
	Height:      40,
	Steps: []demo.Step{
		demo.Wait(1 * time.Second),
		demo.Capture(),

		// Open General so the other rooms sit in the background
		demo.KeyWithDesc("enter", "Open General"),
		demo.Wait(600 * time.Millisecond),
		demo.Capture(),

		// Back to the room list, then let deliveries land elsewhere
		demo.KeyWithDesc("escape", "Back to the room list"),
		demo.Annotate("Background rooms collect unread badges"),
		demo.Feed(2),
		demo.Wait(800 * time.Millisecond),
		demo.Capture(),

		// Open Random: the read marker sits above the new arrival
		demo.Key("j"),
		demo.Wait(300 * time.Millisecond),
		demo.KeyWithDesc("enter", "Open Random"),
		demo.Annotate("The marker shows where you left off"),
		demo.Wait(800 * time.Millisecond),
		demo.Capture(),

		// Reopening the list shows the badge has cleared
		demo.Key("escape"),
		demo.Wait(600 * time.Millisecond),
		demo.Capture(),

		demo.Wait(2 * time.Second),
	},
}

// All returns all built-in scenarios.
func All() []*demo.Scenario {
	return []*demo.Scenario{
		Tour,
		Unread,
	}
}

// Get returns a scenario by name, or nil if not found.
func Get(name string) *demo.Scenario {
	for _, s := range All() {
		if s.Name == name {
			return s
		}
	}
	return nil
}
