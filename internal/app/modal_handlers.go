package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/palaver-chat/palaver/internal/changelog"
	"github.com/palaver-chat/palaver/internal/keys"
	"github.com/palaver-chat/palaver/internal/logger"
	"github.com/palaver-chat/palaver/internal/ui"
)

// handleModalKey routes modal key events to the handler for the modal's
// state type.
func (m *Model) handleModalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch s := m.modal.State.(type) {
	case *ui.SettingsState:
		return m.handleSettingsModal(msg.String(), msg, s)
	case *ui.ChangelogState:
		return m.handleChangelogModal(msg.String(), msg, s)
	}

	// Unknown modal state; let the form consume the key.
	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// handleStartupModal shows the what's new modal when the app runs a newer
// version than the one the changelog was last shown for. Dev builds and
// fresh installs just record the version.
func (m *Model) handleStartupModal() (tea.Model, tea.Cmd) {
	if m.version == "" || m.version == "dev" {
		return m, nil
	}
	lastSeen := m.config.GetLastSeenVersion()
	if lastSeen == m.version {
		return m, nil
	}
	if lastSeen == "" {
		m.recordSeenVersion()
		return m, nil
	}

	entries := changelog.Parse(changelog.Content)
	changes := changelog.GetChangesSince(lastSeen, entries)
	if len(changes) == 0 {
		m.recordSeenVersion()
		return m, nil
	}

	logger.Info("app: showing changelog %s -> %s (%d entries)", lastSeen, m.version, len(changes))
	uiEntries := make([]ui.ChangelogEntry, len(changes))
	for i, e := range changes {
		uiEntries[i] = ui.ChangelogEntry{
			Version: e.Version,
			Date:    e.Date,
			Changes: e.Changes,
		}
	}
	m.modal.Show(ui.NewChangelogState(uiEntries))
	return m, nil
}

// handleChangelogModal handles key events for the what's new modal.
// Dismissing it marks the running version as seen.
func (m *Model) handleChangelogModal(key string, msg tea.KeyPressMsg, state *ui.ChangelogState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape, keys.Enter:
		m.recordSeenVersion()
		m.modal.Hide()
		return m, nil
	}

	// Forward other keys so the entry list can scroll
	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

func (m *Model) recordSeenVersion() {
	m.config.SetLastSeenVersion(m.version)
	if err := m.config.Save(); err != nil {
		logger.Error("app: save seen version: %v", err)
	}
}

// openSettings shows the settings modal seeded from the current config.
func (m *Model) openSettings() {
	names := ui.ThemeNames()
	themeKeys := make([]string, len(names))
	displayNames := make([]string, len(names))
	for i, name := range names {
		themeKeys[i] = string(name)
		displayNames[i] = ui.GetTheme(name).Name
	}

	m.modal.Show(ui.NewSettingsState(
		themeKeys,
		displayNames,
		string(ui.CurrentThemeName()),
		m.config.GetDateFormat(),
		m.config.GetTimeFormat(),
		m.config.GetNotificationsEnabled(),
	))
}

// handleSettingsModal handles key events for the Settings modal.
func (m *Model) handleSettingsModal(key string, msg tea.KeyPressMsg, state *ui.SettingsState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape:
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		return m.applySettings(state)
	}

	// Forward other keys to the form for input handling
	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// applySettings writes the modal's values to config and pushes the new
// theme and layouts through the widgets.
func (m *Model) applySettings(state *ui.SettingsState) (tea.Model, tea.Cmd) {
	m.config.SetDateFormat(state.GetDateFormat())
	m.config.SetTimeFormat(state.GetTimeFormat())
	m.config.SetNotificationsEnabled(state.GetNotificationsEnabled())

	if state.ThemeChanged() {
		ui.SetThemeByName(state.GetSelectedTheme())
		m.config.SetTheme(state.GetSelectedTheme())
	}

	if err := m.config.Save(); err != nil {
		logger.Error("app: save settings: %v", err)
		m.modal.SetError("Failed to save: " + err.Error())
		return m, nil
	}

	// The setters normalize empty layouts back to the defaults, so read
	// the applied values rather than trusting the raw form input.
	m.transcript.SetFormats(m.config.GetDateFormat(), m.config.GetTimeFormat())
	m.detail.SetFormats(m.config.GetDateFormat(), m.config.GetTimeFormat())

	var cmd tea.Cmd
	if m.activeRoom != "" {
		cmd = m.rebuildTranscript()
	}
	m.modal.Hide()
	return m, cmd
}
