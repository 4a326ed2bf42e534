package ui

import (
	"fmt"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func testSettingsState() *SettingsState {
	return NewSettingsState(
		[]string{"dark-purple", "light"},
		[]string{"Dark Purple", "Light"},
		"dark-purple",
		"Monday 02 January 2006",
		"15:04",
		true,
	)
}

func TestNewModal(t *testing.T) {
	m := NewModal()

	if m == nil {
		t.Fatal("NewModal() returned nil")
	}

	if m.IsVisible() {
		t.Error("New modal should not be visible")
	}
}

func TestModal_ShowHide(t *testing.T) {
	m := NewModal()

	m.Show(testSettingsState())

	if !m.IsVisible() {
		t.Error("Expected visible after Show")
	}

	m.Hide()

	if m.IsVisible() {
		t.Error("Expected hidden after Hide")
	}

	if m.State != nil {
		t.Error("Expected nil state after Hide")
	}
}

func TestModal_Error(t *testing.T) {
	m := NewModal()
	m.Show(testSettingsState())

	m.SetError("invalid time layout")

	if got := m.GetError(); got != "invalid time layout" {
		t.Errorf("Expected error message, got %q", got)
	}

	view := stripANSI(m.View(100, 40))
	if !strings.Contains(view, "invalid time layout") {
		t.Errorf("Modal view should include the error, got: %q", view)
	}

	// Showing a new state clears the error
	m.Show(testSettingsState())
	if m.GetError() != "" {
		t.Error("Show should clear a previous error")
	}
}

func TestModal_View_HiddenIsEmpty(t *testing.T) {
	m := NewModal()

	if got := m.View(100, 40); got != "" {
		t.Errorf("Hidden modal should render nothing, got %q", got)
	}
}

func TestModal_View_ShowsSettingsForm(t *testing.T) {
	m := NewModal()
	m.Show(testSettingsState())

	view := stripANSI(m.View(100, 40))

	for _, want := range []string{"Settings", "Theme", "Date format", "Time format", "Desktop notifications"} {
		if !strings.Contains(view, want) {
			t.Errorf("Settings modal should contain %q, got: %q", want, view)
		}
	}
}

func TestModal_Update_DelegatesToState(t *testing.T) {
	m := NewModal()
	m.Show(testSettingsState())

	// Should not panic and must keep the state
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyTab})

	if !m.IsVisible() {
		t.Error("Update should keep the modal visible")
	}
}

func TestSettingsState_Getters(t *testing.T) {
	s := testSettingsState()

	if got := s.GetSelectedTheme(); got != "dark-purple" {
		t.Errorf("Expected theme 'dark-purple', got %q", got)
	}

	if got := s.GetDateFormat(); got != "Monday 02 January 2006" {
		t.Errorf("Expected date format preserved, got %q", got)
	}

	if got := s.GetTimeFormat(); got != "15:04" {
		t.Errorf("Expected time format preserved, got %q", got)
	}

	if !s.GetNotificationsEnabled() {
		t.Error("Expected notifications enabled")
	}
}

func TestSettingsState_GettersTrimWhitespace(t *testing.T) {
	s := testSettingsState()
	s.dateFormat = "  2006-01-02  "
	s.timeFormat = " 15:04:05 "

	if got := s.GetDateFormat(); got != "2006-01-02" {
		t.Errorf("Expected trimmed date format, got %q", got)
	}

	if got := s.GetTimeFormat(); got != "15:04:05" {
		t.Errorf("Expected trimmed time format, got %q", got)
	}
}

func TestSettingsState_ThemeChanged(t *testing.T) {
	s := testSettingsState()

	if s.ThemeChanged() {
		t.Error("Theme should be unchanged initially")
	}

	s.selectedTheme = "light"

	if !s.ThemeChanged() {
		t.Error("Expected ThemeChanged after selecting a different theme")
	}
}

func TestSettingsState_SyncFromMultiSelect(t *testing.T) {
	s := testSettingsState()

	s.generalOptions = nil
	s.syncFromMultiSelect()

	if s.GetNotificationsEnabled() {
		t.Error("Expected notifications disabled after deselecting the option")
	}

	s.generalOptions = []string{optionNotifications}
	s.syncFromMultiSelect()

	if !s.GetNotificationsEnabled() {
		t.Error("Expected notifications enabled after selecting the option")
	}
}

func TestSettingsState_Update_InterceptsEnterAndEscape(t *testing.T) {
	s := testSettingsState()

	// Enter and Escape belong to the app layer; the form must not consume them
	state, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if state != ModalState(s) {
		t.Error("Enter should leave the settings state in place")
	}
	if cmd != nil {
		t.Error("Enter should produce no command from the form")
	}

	state, cmd = s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if state != ModalState(s) {
		t.Error("Escape should leave the settings state in place")
	}
	if cmd != nil {
		t.Error("Escape should produce no command from the form")
	}
}

func TestSettingsState_RenderHasHelp(t *testing.T) {
	s := testSettingsState()

	rendered := stripANSI(s.Render())

	if !strings.Contains(rendered, "Enter: save") {
		t.Errorf("Settings render should carry the help line, got: %q", rendered)
	}
}

func testChangelogEntries(n int) []ChangelogEntry {
	entries := make([]ChangelogEntry, n)
	for i := range entries {
		entries[i] = ChangelogEntry{
			Version: fmt.Sprintf("0.%d.0", n-i),
			Date:    "2026-01-01",
			Changes: []string{"Change one", "Change two"},
		}
	}
	return entries
}

func TestChangelogState_Render(t *testing.T) {
	s := NewChangelogState([]ChangelogEntry{
		{Version: "0.2.0", Date: "2026-04-20", Changes: []string{"Theme picker", "Detail view"}},
		{Version: "0.1.0", Changes: []string{"Initial release"}},
	})

	rendered := stripANSI(s.Render())

	wants := []string{
		"What's New",
		"v0.2.0 (2026-04-20)",
		"Theme picker",
		"v0.1.0",
		"Initial release",
		"Enter or Esc",
	}
	for _, want := range wants {
		if !strings.Contains(rendered, want) {
			t.Errorf("Changelog render should contain %q, got: %q", want, rendered)
		}
	}
	if strings.Contains(rendered, "scroll for more") {
		t.Error("Two entries should not show the scroll hint")
	}
}

func TestChangelogState_ScrollHintWhenOverflowing(t *testing.T) {
	s := NewChangelogState(testChangelogEntries(7))

	rendered := stripANSI(s.Render())
	if !strings.Contains(rendered, "scroll for more") {
		t.Error("Overflowing entries should show the scroll hint")
	}
	if !strings.Contains(s.Help(), "j/k") {
		t.Errorf("Help = %q, want the scroll keys mentioned", s.Help())
	}
}

func TestChangelogState_ScrollClamps(t *testing.T) {
	s := NewChangelogState(testChangelogEntries(7))

	down := tea.KeyPressMsg{Code: 'j', Text: "j"}
	up := tea.KeyPressMsg{Code: 'k', Text: "k"}

	// Seven entries with five visible leaves two scroll positions.
	for i := 0; i < 4; i++ {
		s.Update(down)
	}
	if s.ScrollOffset != 2 {
		t.Errorf("ScrollOffset = %d, want 2 after scrolling past the end", s.ScrollOffset)
	}

	for i := 0; i < 4; i++ {
		s.Update(up)
	}
	if s.ScrollOffset != 0 {
		t.Errorf("ScrollOffset = %d, want 0 after scrolling past the top", s.ScrollOffset)
	}
}
