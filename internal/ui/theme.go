// Package ui provides theme management for the application.
// Themes define the color palette used throughout the UI, allowing users
// to customize the visual appearance of Palaver.
package ui

import "charm.land/lipgloss/v2"

// Theme defines a complete color palette for the application.
// Each theme provides colors for all UI elements, ensuring visual consistency.
// Author name colors are deliberately not themed; see AuthorColor.
type Theme struct {
	// Name is the display name of the theme
	Name string

	// Primary is the main accent color (used for focus, highlights, headers)
	Primary string
	// Secondary is the secondary accent color (used for key hints, info)
	Secondary string

	// Background colors
	Bg         string // Main background
	BgSelected string // Selected item background (defaults to Primary if empty)

	// Text colors
	Text        string // Primary text
	TextMuted   string // Secondary/muted text
	TextInverse string // Text on colored backgrounds

	// Semantic colors
	Unread  string // Unread marker and date separators in the transcript
	Warning string // Warnings
	Error   string // Error messages
	Success string // Success flashes (copy confirmation)
	Info    string // Information

	// Border colors
	Border      string // Default borders
	BorderFocus string // Focused element borders (defaults to Primary if empty)

	// Text selection colors (mouse selection overlay)
	TextSelectionBg string
	TextSelectionFg string
}

// GetBgSelected returns the selected background color, defaulting to Primary
func (t Theme) GetBgSelected() string {
	if t.BgSelected != "" {
		return t.BgSelected
	}
	return t.Primary
}

// GetBorderFocus returns the focused border color, defaulting to Primary
func (t Theme) GetBorderFocus() string {
	if t.BorderFocus != "" {
		return t.BorderFocus
	}
	return t.Primary
}

// ThemeName is a type for theme identifiers
type ThemeName string

// Available theme names
const (
	ThemeDarkPurple     ThemeName = "dark-purple"
	ThemeNord           ThemeName = "nord"
	ThemeDracula        ThemeName = "dracula"
	ThemeGruvbox        ThemeName = "gruvbox"
	ThemeTokyoNight     ThemeName = "tokyo-night"
	ThemeCatppuccin     ThemeName = "catppuccin"
	ThemeScienceFiction ThemeName = "science-fiction"
	ThemeLight          ThemeName = "light"
)

// DefaultTheme is the default theme name
const DefaultTheme = ThemeDarkPurple

// BuiltinThemes contains all built-in themes
var BuiltinThemes = map[ThemeName]Theme{
	ThemeDarkPurple: {
		Name:            "Dark Purple",
		Primary:         "#7C3AED",
		Secondary:       "#06B6D4",
		Bg:              "#1F2937",
		Text:            "#F9FAFB",
		TextMuted:       "#9CA3AF",
		TextInverse:     "#1F2937",
		Unread:          "#F59E0B",
		Warning:         "#F59E0B",
		Error:           "#EF4444",
		Success:         "#10B981",
		Info:            "#06B6D4",
		Border:          "#374151",
		TextSelectionBg: "#4C1D95",
		TextSelectionFg: "#F9FAFB",
	},
	ThemeNord: {
		Name:            "Nord",
		Primary:         "#88C0D0",
		Secondary:       "#81A1C1",
		Bg:              "#2E3440",
		Text:            "#ECEFF4",
		TextMuted:       "#D8DEE9",
		TextInverse:     "#2E3440",
		Unread:          "#EBCB8B",
		Warning:         "#EBCB8B",
		Error:           "#BF616A",
		Success:         "#A3BE8C",
		Info:            "#81A1C1",
		Border:          "#4C566A",
		TextSelectionBg: "#434C5E",
		TextSelectionFg: "#ECEFF4",
	},
	ThemeDracula: {
		Name:            "Dracula",
		Primary:         "#BD93F9",
		Secondary:       "#8BE9FD",
		Bg:              "#282A36",
		Text:            "#F8F8F2",
		TextMuted:       "#6272A4",
		TextInverse:     "#282A36",
		Unread:          "#FFB86C",
		Warning:         "#FFB86C",
		Error:           "#FF5555",
		Success:         "#50FA7B",
		Info:            "#8BE9FD",
		Border:          "#44475A",
		TextSelectionBg: "#44475A",
		TextSelectionFg: "#F8F8F2",
	},
	ThemeGruvbox: {
		Name:            "Gruvbox Dark",
		Primary:         "#FE8019",
		Secondary:       "#83A598",
		Bg:              "#282828",
		Text:            "#EBDBB2",
		TextMuted:       "#A89984",
		TextInverse:     "#282828",
		Unread:          "#FABD2F",
		Warning:         "#FE8019",
		Error:           "#FB4934",
		Success:         "#B8BB26",
		Info:            "#83A598",
		Border:          "#504945",
		TextSelectionBg: "#504945",
		TextSelectionFg: "#EBDBB2",
	},
	ThemeTokyoNight: {
		Name:            "Tokyo Night",
		Primary:         "#7AA2F7",
		Secondary:       "#BB9AF7",
		Bg:              "#1A1B26",
		Text:            "#C0CAF5",
		TextMuted:       "#565F89",
		TextInverse:     "#1A1B26",
		Unread:          "#E0AF68",
		Warning:         "#E0AF68",
		Error:           "#F7768E",
		Success:         "#9ECE6A",
		Info:            "#7DCFFF",
		Border:          "#3B4261",
		TextSelectionBg: "#33467C",
		TextSelectionFg: "#C0CAF5",
	},
	ThemeCatppuccin: {
		Name:            "Catppuccin Mocha",
		Primary:         "#CBA6F7",
		Secondary:       "#89DCEB",
		Bg:              "#1E1E2E",
		Text:            "#CDD6F4",
		TextMuted:       "#6C7086",
		TextInverse:     "#1E1E2E",
		Unread:          "#FAB387",
		Warning:         "#FAB387",
		Error:           "#F38BA8",
		Success:         "#A6E3A1",
		Info:            "#89DCEB",
		Border:          "#313244",
		TextSelectionBg: "#45475A",
		TextSelectionFg: "#CDD6F4",
	},
	ThemeScienceFiction: {
		Name:            "Science Fiction",
		Primary:         "#E50914",
		Secondary:       "#8B0000",
		Bg:              "#0A0A0A",
		BgSelected:      "#2D0A0A",
		Text:            "#E8E8E8",
		TextMuted:       "#666666",
		TextInverse:     "#0A0A0A",
		Unread:          "#FF6600",
		Warning:         "#FF6600",
		Error:           "#FF0000",
		Success:         "#00AA00",
		Info:            "#AA0000",
		Border:          "#330000",
		BorderFocus:     "#E50914",
		TextSelectionBg: "#660000",
		TextSelectionFg: "#E8E8E8",
	},
	ThemeLight: {
		Name:            "Light",
		Primary:         "#6366F1",
		Secondary:       "#0891B2",
		Bg:              "#FFFFFF",
		BgSelected:      "#E0E7FF",
		Text:            "#1F2937",
		TextMuted:       "#6B7280",
		TextInverse:     "#FFFFFF",
		Unread:          "#D97706",
		Warning:         "#D97706",
		Error:           "#DC2626",
		Success:         "#16A34A",
		Info:            "#0891B2",
		Border:          "#D1D5DB",
		BorderFocus:     "#6366F1",
		TextSelectionBg: "#C7D2FE",
		TextSelectionFg: "#1F2937",
	},
}

// ThemeNames returns a list of all available theme names in display order
func ThemeNames() []ThemeName {
	return []ThemeName{
		ThemeDarkPurple,
		ThemeNord,
		ThemeDracula,
		ThemeGruvbox,
		ThemeTokyoNight,
		ThemeCatppuccin,
		ThemeScienceFiction,
		ThemeLight,
	}
}

// GetTheme returns a theme by name, defaulting to DarkPurple if not found
func GetTheme(name ThemeName) Theme {
	if theme, ok := BuiltinThemes[name]; ok {
		return theme
	}
	return BuiltinThemes[DefaultTheme]
}

// currentTheme holds the active theme
var currentTheme = BuiltinThemes[DefaultTheme]

// CurrentTheme returns the currently active theme
func CurrentTheme() Theme {
	return currentTheme
}

// SetTheme sets the active theme and regenerates all styles
func SetTheme(name ThemeName) {
	currentTheme = GetTheme(name)
	regenerateStyles()
}

// SetThemeByName sets the active theme by string name
func SetThemeByName(name string) {
	SetTheme(ThemeName(name))
}

// CurrentThemeName returns the name of the current theme
func CurrentThemeName() ThemeName {
	for name, theme := range BuiltinThemes {
		if theme.Name == currentTheme.Name {
			return name
		}
	}
	return DefaultTheme
}

// regenerateStyles updates all style variables based on the current theme
func regenerateStyles() {
	t := currentTheme

	// Update color variables
	ColorPrimary = lipgloss.Color(t.Primary)
	ColorSecondary = lipgloss.Color(t.Secondary)
	ColorMuted = lipgloss.Color(t.TextMuted)
	ColorBorder = lipgloss.Color(t.Border)
	ColorBorderFocus = lipgloss.Color(t.GetBorderFocus())
	ColorBg = lipgloss.Color(t.Bg)
	ColorText = lipgloss.Color(t.Text)
	ColorTextMuted = lipgloss.Color(t.TextMuted)
	ColorTextInverse = lipgloss.Color(t.TextInverse)
	ColorUnread = lipgloss.Color(t.Unread)
	ColorWarning = lipgloss.Color(t.Warning)
	ColorInfo = lipgloss.Color(t.Info)
	ColorError = lipgloss.Color(t.Error)
	ColorSuccess = lipgloss.Color(t.Success)

	// Update header styles
	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText).
		Background(ColorPrimary).
		Padding(0, 1)

	HeaderTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText)

	// Update footer styles
	FooterStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	// Update panel styles
	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder)

	PanelFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus)

	PanelTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		Padding(0, 1)

	// Update room list styles
	RoomItemStyle = lipgloss.NewStyle().
		Padding(0, 1)

	RoomSelectedStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.GetBgSelected())).
		Foreground(lipgloss.Color(t.Text)).
		Bold(true).
		Padding(0, 1)

	RoomUnreadBadgeStyle = lipgloss.NewStyle().
		Foreground(ColorUnread).
		Bold(true)

	// Update transcript styles
	TableHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary)

	RowHighlightStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.GetBgSelected())).
		Foreground(lipgloss.Color(t.Text))

	UnreadStyle = lipgloss.NewStyle().
		Foreground(ColorUnread).
		Bold(true)

	DateSeparatorStyle = lipgloss.NewStyle().
		Foreground(ColorUnread).
		Bold(true)

	TranscriptTextStyle = lipgloss.NewStyle().
		Foreground(ColorText)

	// Update composer styles
	ComposerStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1)

	ComposerFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus).
		Padding(0, 1)

	// Update modal styles
	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2).
		Width(ModalWidth)

	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		MarginBottom(1)

	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true).
		MarginTop(1)

	// Update status styles
	StatusLoadingStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Italic(true)

	StatusErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)

	// Update detail styles
	DetailMetaStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	DetailAuthorStyle = lipgloss.NewStyle().
		Bold(true)

	// Update markdown styles
	MarkdownH1Style = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		MarginTop(1)

	MarkdownH2Style = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary).
		MarginTop(1)

	MarkdownH3Style = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorInfo)

	MarkdownH4Style = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorTextMuted)

	MarkdownBoldStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText)

	MarkdownItalicStyle = lipgloss.NewStyle().
		Italic(true).
		Foreground(ColorText)

	MarkdownInlineCodeStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Background(lipgloss.Color(t.GetBgSelected()))

	MarkdownListBulletStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary)

	MarkdownBlockquoteStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true).
		BorderLeft(true).
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(ColorBorder).
		PaddingLeft(1)

	MarkdownHRStyle = lipgloss.NewStyle().
		Foreground(ColorBorder)

	MarkdownLinkStyle = lipgloss.NewStyle().
		Foreground(ColorInfo).
		Underline(true)

	// Update text selection styles
	TextSelectionStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.TextSelectionBg)).
		Foreground(lipgloss.Color(t.TextSelectionFg))

	TextSelectionFlashStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.Success)).
		Foreground(lipgloss.Color(t.TextInverse))
}
