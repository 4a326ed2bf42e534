package ui

import (
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
)

// ModalState is a discriminated union interface for modal-specific state.
// Each modal type implements this interface with its own state struct,
// ensuring type-safe access to modal-specific fields.
type ModalState interface {
	modalState() // marker method to restrict implementations
	Title() string
	Help() string
	Render() string
	Update(msg tea.Msg) (ModalState, tea.Cmd)
}

// Modal represents a popup dialog with type-safe state management.
// The State field is nil when no modal is visible.
type Modal struct {
	State ModalState
	error string
}

// NewModal creates a new modal
func NewModal() *Modal {
	return &Modal{}
}

// Show displays a modal with the given state
func (m *Modal) Show(state ModalState) {
	m.State = state
	m.error = ""
}

// Hide hides the modal
func (m *Modal) Hide() {
	m.State = nil
	m.error = ""
}

// IsVisible returns whether the modal is visible
func (m *Modal) IsVisible() bool {
	return m.State != nil
}

// SetError sets an error message
func (m *Modal) SetError(err string) {
	m.error = err
}

// GetError returns the current error message
func (m *Modal) GetError() string {
	return m.error
}

// Update handles messages by delegating to the current state
func (m *Modal) Update(msg tea.Msg) (*Modal, tea.Cmd) {
	if m.State == nil {
		return m, nil
	}
	var cmd tea.Cmd
	m.State, cmd = m.State.Update(msg)
	return m, cmd
}

// View renders the modal centered on the screen
func (m *Modal) View(screenWidth, screenHeight int) string {
	if m.State == nil {
		return ""
	}

	content := m.State.Render()

	// Add error if present
	if m.error != "" {
		content += "\n" + StatusErrorStyle.Render(m.error)
	}

	modal := ModalStyle.Render(content)

	return lipgloss.Place(
		screenWidth, screenHeight,
		lipgloss.Center, lipgloss.Center,
		modal,
	)
}

// =============================================================================
// SettingsState - State for the Settings modal
// =============================================================================

const optionNotifications = "notifications"

type SettingsState struct {
	// Bound form values
	selectedTheme        string
	OriginalTheme        string // To detect if theme changed
	dateFormat           string
	timeFormat           string
	NotificationsEnabled bool

	// MultiSelect bindings
	generalOptions []string

	form *huh.Form
}

func (*SettingsState) modalState() {}

func (s *SettingsState) Title() string { return "Settings" }

func (s *SettingsState) Help() string {
	return "Tab: next field  Enter: save  Esc: cancel"
}

func (s *SettingsState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), help)
}

func (s *SettingsState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	s.syncFromMultiSelect()
	return s, cmd
}

// syncFromMultiSelect updates boolean fields from the MultiSelect bindings.
func (s *SettingsState) syncFromMultiSelect() {
	s.NotificationsEnabled = slices.Contains(s.generalOptions, optionNotifications)
}

// GetSelectedTheme returns the selected theme key.
func (s *SettingsState) GetSelectedTheme() string {
	return s.selectedTheme
}

// ThemeChanged returns true if the selected theme differs from the original.
func (s *SettingsState) ThemeChanged() bool {
	return s.selectedTheme != s.OriginalTheme
}

// GetDateFormat returns the date separator layout, trimmed.
func (s *SettingsState) GetDateFormat() string {
	return strings.TrimSpace(s.dateFormat)
}

// GetTimeFormat returns the time column layout, trimmed.
func (s *SettingsState) GetTimeFormat() string {
	return strings.TrimSpace(s.timeFormat)
}

// GetNotificationsEnabled returns whether notifications are enabled
func (s *SettingsState) GetNotificationsEnabled() bool {
	return s.NotificationsEnabled
}

// NewSettingsState creates a new SettingsState with the current settings values.
func NewSettingsState(themes []string, themeDisplayNames []string, currentTheme string,
	dateFormat, timeFormat string, notificationsEnabled bool) *SettingsState {

	s := &SettingsState{
		selectedTheme:        currentTheme,
		OriginalTheme:        currentTheme,
		dateFormat:           dateFormat,
		timeFormat:           timeFormat,
		NotificationsEnabled: notificationsEnabled,
	}

	// Build theme options
	themeOptions := make([]huh.Option[string], len(themes))
	for i := range themes {
		themeOptions[i] = huh.NewOption(themeDisplayNames[i], themes[i])
	}

	// Build general options MultiSelect
	generalOpts := []huh.Option[string]{
		huh.NewOption("Desktop notifications", optionNotifications).
			Selected(notificationsEnabled),
	}
	// Initialize the bound slice to match
	if notificationsEnabled {
		s.generalOptions = append(s.generalOptions, optionNotifications)
	}

	group := huh.NewGroup(
		huh.NewSelect[string]().
			Title("Theme").
			Options(themeOptions...).
			Value(&s.selectedTheme),
		huh.NewInput().
			Title("Date format").
			Description("Go layout for transcript date separators").
			Placeholder("Monday 02 January 2006").
			CharLimit(ModalInputCharLimit).
			Value(&s.dateFormat),
		huh.NewInput().
			Title("Time format").
			Description("Go layout for the time column").
			Placeholder("15:04").
			CharLimit(ModalInputCharLimit).
			Value(&s.timeFormat),
		huh.NewMultiSelect[string]().
			Title("Options").
			Options(generalOpts...).
			Value(&s.generalOptions),
	)

	s.form = huh.NewForm(group).
		WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(ModalWidth - 10).
		WithLayout(huh.LayoutStack)

	initHuhForm(s.form)
	return s
}

// =============================================================================
// ChangelogState - State for the "What's New" changelog modal
// =============================================================================

// ChangelogEntry represents a single version's changelog for display
type ChangelogEntry struct {
	Version string
	Date    string
	Changes []string
}

type ChangelogState struct {
	Entries      []ChangelogEntry
	ScrollOffset int
	MaxVisible   int
}

func (*ChangelogState) modalState() {}

func (s *ChangelogState) Title() string { return "What's New" }

func (s *ChangelogState) Help() string {
	if len(s.Entries) > s.MaxVisible {
		return "j/k: scroll  Enter/Esc: dismiss"
	}
	return "Press Enter or Esc to dismiss"
}

func (s *ChangelogState) Render() string {
	title := ModalTitleStyle.Render(s.Title())

	versionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)
	bulletStyle := lipgloss.NewStyle().
		Foreground(ColorSecondary)
	changeStyle := lipgloss.NewStyle().
		Foreground(ColorText).
		Width(ModalWidth - 10)

	var b strings.Builder
	end := min(len(s.Entries), s.ScrollOffset+s.MaxVisible)
	for i := s.ScrollOffset; i < end; i++ {
		entry := s.Entries[i]

		header := "v" + entry.Version
		if entry.Date != "" {
			header += " (" + entry.Date + ")"
		}
		b.WriteString(versionStyle.Render(header))
		b.WriteString("\n")

		for _, change := range entry.Changes {
			b.WriteString(bulletStyle.Render("  - "))
			b.WriteString(changeStyle.Render(change))
			b.WriteString("\n")
		}
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	if len(s.Entries) > s.MaxVisible {
		b.WriteString(lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true).
			Render("(scroll for more)"))
	}

	help := ModalHelpStyle.Render(s.Help())

	return lipgloss.JoinVertical(lipgloss.Left, title, b.String(), help)
}

func (s *ChangelogState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "up", "k":
			if s.ScrollOffset > 0 {
				s.ScrollOffset--
			}
		case "down", "j":
			if s.ScrollOffset < len(s.Entries)-s.MaxVisible {
				s.ScrollOffset++
			}
		}
	}
	return s, nil
}

// NewChangelogState creates a new ChangelogState
func NewChangelogState(entries []ChangelogEntry) *ChangelogState {
	return &ChangelogState{
		Entries:      entries,
		ScrollOffset: 0,
		MaxVisible:   5,
	}
}
