package app

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/palaver-chat/palaver/internal/logger"
	"github.com/palaver-chat/palaver/internal/notification"
	"github.com/palaver-chat/palaver/internal/talk"
	"github.com/palaver-chat/palaver/internal/ui"
)

// FeedTickMsg is sent when it is time to deliver the next scripted feed
// item.
type FeedTickMsg time.Time

// scheduleFeedTick arms the next feed delivery, or returns nil when there
// is no feed or nothing left in it.
func (m *Model) scheduleFeedTick() tea.Cmd {
	if m.feed == nil || m.feed.Remaining() == 0 {
		return nil
	}
	return tea.Tick(talk.FeedInterval, func(t time.Time) tea.Msg {
		return FeedTickMsg(t)
	})
}

// handleFeedTick delivers one scripted item into the store, refreshes the
// transcript when the delivery hit the open room, and notifies for rooms
// the user is not looking at.
func (m *Model) handleFeedTick() (tea.Model, tea.Cmd) {
	if m.feed == nil {
		return m, nil
	}

	token, message, ok := m.feed.Deliver(m.store, time.Now())
	if !ok {
		logger.Debug("app: feed exhausted")
		return m, nil
	}

	var cmds []tea.Cmd

	if token == m.activeRoom {
		// Stay pinned to the newest row only if the user was already there.
		followLast := m.transcript.SelectedIndex() == m.transcript.Len()-1
		if cmd := m.rebuildTranscript(); cmd != nil {
			cmds = append(cmds, cmd)
		} else if followLast {
			m.transcript.SelectLast()
		}
		// Keep the watermark current while the user is actually looking.
		// While the window is blurred it stays put, so the unread marker
		// lands where they left off.
		if m.windowFocused {
			if err := m.store.MarkRead(token); err != nil {
				logger.Warn("app: mark read %s: %v", token, err)
			}
		}
	}

	if m.shouldNotify(token) {
		name := token
		if room, err := m.store.Room(token); err == nil {
			name = room.Name()
		}
		go notification.NewMessage(name, message.ActorName)
	}

	cmds = append(cmds, m.scheduleFeedTick())
	return m, tea.Batch(cmds...)
}

// shouldNotify reports whether a delivery warrants a desktop notification:
// notifications are enabled and the user is not already looking at the
// room it landed in.
func (m *Model) shouldNotify(token string) bool {
	if !m.config.GetNotificationsEnabled() {
		return false
	}
	return token != m.activeRoom || !m.windowFocused
}

// handleWindowFocus catches the read mark up with anything that arrived
// while the window was blurred.
func (m *Model) handleWindowFocus() (tea.Model, tea.Cmd) {
	m.windowFocused = true
	logger.Debug("app: window focused")
	if m.activeRoom != "" {
		if err := m.store.MarkRead(m.activeRoom); err != nil {
			logger.Warn("app: mark read %s: %v", m.activeRoom, err)
		}
	}
	return m, nil
}

// handleFlashTick expires the footer flash, rescheduling while one is
// still showing.
func (m *Model) handleFlashTick() tea.Cmd {
	if m.footer.ClearIfExpired() {
		return nil
	}
	if m.footer.HasFlash() {
		return ui.FlashTick()
	}
	return nil
}

// handleClipboardError surfaces a failed native clipboard write. The OSC
// 52 path may still have worked, so this is a flash, not a modal.
func (m *Model) handleClipboardError(msg ui.ClipboardErrorMsg) (tea.Model, tea.Cmd) {
	logger.Warn("app: clipboard: %v", msg.Error)
	return m, m.showFlashError("copy failed: " + msg.Error.Error())
}
