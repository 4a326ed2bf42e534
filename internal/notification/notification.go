// Package notification provides cross-platform desktop notifications.
// It uses the beeep library to send notifications on macOS, Linux, and Windows.
package notification

import (
	"github.com/gen2brain/beeep"

	"github.com/palaver-chat/palaver/internal/logger"
)

// notifier is the function that raises the notification. Tests swap it out
// so they never hit the real notification system.
var notifier = beeep.Notify

// SetNotifier replaces the notification function.
func SetNotifier(f func(title, message string, icon any) error) {
	notifier = f
}

// ResetNotifier restores the default notification function.
func ResetNotifier() {
	notifier = beeep.Notify
}

// Send sends a desktop notification with the given title and message.
// On macOS, it uses terminal-notifier or AppleScript.
// On Linux, it uses D-Bus or notify-send.
// On Windows, it uses the Windows Runtime COM API.
func Send(title, message string) error {
	logger.Debug("Notification: sending - title=%q, message=%q", title, message)
	// Use empty string for icon - beeep handles platform defaults
	err := notifier(title, message, "")
	if err != nil {
		logger.Warn("Notification: failed to send: %v", err)
	}
	return err
}

// NewMessage sends a notification for a message that arrived while the
// room was out of view.
func NewMessage(roomName, actorName string) error {
	return Send("Palaver", actorName+" in "+roomName)
}
