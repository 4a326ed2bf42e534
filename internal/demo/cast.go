package demo

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
)

// clearScreen resets the terminal before each frame so successive full
// renders do not scroll.
const clearScreen = "\x1b[2J\x1b[H"

// GenerateASCIICast writes the frames as an asciinema v2 cast file: a
// JSON header line, then one output event per frame. Each frame clears
// the screen and repaints, so players show the demo as discrete states.
func GenerateASCIICast(w io.Writer, frames []Frame, width, height int) error {
	header := map[string]any{
		"version":   2,
		"width":     width,
		"height":    height,
		"timestamp": time.Now().Unix(),
		"env": map[string]string{
			"TERM":  "xterm-256color",
			"SHELL": "/bin/bash",
		},
	}
	if err := writeJSONLine(w, header); err != nil {
		return fmt.Errorf("writing cast header: %w", err)
	}

	elapsed := time.Duration(0)
	for _, frame := range frames {
		elapsed += frame.Delay

		// Raw terminal output needs CRLF line endings.
		content := clearScreen + strings.ReplaceAll(frame.Content, "\n", "\r\n")

		event := []any{elapsed.Seconds(), "o", content}
		if err := writeJSONLine(w, event); err != nil {
			return fmt.Errorf("writing cast event: %w", err)
		}
	}

	return nil
}

func writeJSONLine(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
