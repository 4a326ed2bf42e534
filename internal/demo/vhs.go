package demo

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/palaver-chat/palaver/internal/talk"
)

// VHSConfig configures VHS tape generation.
type VHSConfig struct {
	Output      string        // Rendered output file (gif, mp4, webm)
	FontSize    int           // Terminal font size
	Width       int           // Terminal window width in pixels
	Height      int           // Terminal window height in pixels
	TypingSpeed time.Duration // Delay between typed characters
}

// DefaultVHSConfig returns the default VHS configuration.
func DefaultVHSConfig() VHSConfig {
	return VHSConfig{
		Output:      "demo.gif",
		FontSize:    14,
		Width:       1200,
		Height:      800,
		TypingSpeed: 50 * time.Millisecond,
	}
}

// GenerateVHSTape writes a VHS tape that replays the scenario's input
// against a real palaver binary. A tape scripts keystrokes rather than
// captured output, so feed steps become sleeps long enough for the app's
// own delivery timer to fire.
func GenerateVHSTape(w io.Writer, scenario *Scenario, cfg VHSConfig) error {
	if err := scenario.Validate(); err != nil {
		return fmt.Errorf("invalid scenario: %w", err)
	}

	var b strings.Builder

	fmt.Fprintf(&b, "# %s: %s\n", scenario.Name, scenario.Description)
	fmt.Fprintf(&b, "# Render with: vhs <this file>\n\n")
	fmt.Fprintf(&b, "Output %s\n\n", cfg.Output)
	fmt.Fprintf(&b, "Set FontSize %d\n", cfg.FontSize)
	fmt.Fprintf(&b, "Set Width %d\n", cfg.Width)
	fmt.Fprintf(&b, "Set Height %d\n", cfg.Height)
	fmt.Fprintf(&b, "Set TypingSpeed %s\n\n", cfg.TypingSpeed)

	// Launch the app off-camera
	b.WriteString("Hide\n")
	b.WriteString("Type \"palaver --demo\"\n")
	b.WriteString("Enter\n")
	b.WriteString("Sleep 1s\n")
	b.WriteString("Show\n\n")

	screenshots := 0
	for _, step := range scenario.Steps {
		if step.Description != "" {
			fmt.Fprintf(&b, "# %s\n", step.Description)
		}

		switch step.Type {
		case StepWait:
			fmt.Fprintf(&b, "Sleep %s\n", step.Duration)

		case StepKey:
			b.WriteString(vhsKey(step.Key) + "\n")

		case StepTypeText:
			fmt.Fprintf(&b, "Type %q\n", step.Text)

		case StepFeed:
			// The real app delivers on its own cadence.
			fmt.Fprintf(&b, "Sleep %s\n", time.Duration(step.Count)*talk.FeedInterval)

		case StepAnnotate:
			fmt.Fprintf(&b, "# %s\n", step.Annotation)

		case StepCapture:
			screenshots++
			fmt.Fprintf(&b, "Screenshot %s-%02d.png\n", scenario.Name, screenshots)
		}
	}

	b.WriteString("\nSleep 2s\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// vhsKey maps a scenario key name to the VHS command for it.
func vhsKey(key string) string {
	switch key {
	case "enter":
		return "Enter"
	case "shift+enter":
		return "Shift+Enter"
	case "tab":
		return "Tab"
	case "escape", "esc":
		return "Escape"
	case "space":
		return "Space"
	case "backspace":
		return "Backspace"
	case "up":
		return "Up"
	case "down":
		return "Down"
	case "left":
		return "Left"
	case "right":
		return "Right"
	case "pgup":
		return "PageUp"
	case "pgdown":
		return "PageDown"
	case "home":
		return "Home"
	case "end":
		return "End"
	case "ctrl+u":
		return "Ctrl+U"
	case "ctrl+d":
		return "Ctrl+D"
	default:
		return fmt.Sprintf("Type %q", key)
	}
}
