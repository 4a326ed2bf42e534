package ui

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color variables, regenerated when the theme changes
var (
	ColorPrimary     color.Color = lipgloss.Color(BuiltinThemes[DefaultTheme].Primary)
	ColorSecondary   color.Color = lipgloss.Color(BuiltinThemes[DefaultTheme].Secondary)
	ColorMuted       color.Color = lipgloss.Color(BuiltinThemes[DefaultTheme].TextMuted)
	ColorBorder      color.Color = lipgloss.Color(BuiltinThemes[DefaultTheme].Border)
	ColorBorderFocus color.Color = lipgloss.Color(BuiltinThemes[DefaultTheme].GetBorderFocus())
	ColorBg          color.Color = lipgloss.Color(BuiltinThemes[DefaultTheme].Bg)
	ColorText        color.Color = lipgloss.Color(BuiltinThemes[DefaultTheme].Text)
	ColorTextMuted   color.Color = lipgloss.Color(BuiltinThemes[DefaultTheme].TextMuted)
	ColorTextInverse color.Color = lipgloss.Color(BuiltinThemes[DefaultTheme].TextInverse)
	ColorUnread      color.Color = lipgloss.Color(BuiltinThemes[DefaultTheme].Unread)
	ColorWarning     color.Color = lipgloss.Color(BuiltinThemes[DefaultTheme].Warning)
	ColorInfo        color.Color = lipgloss.Color(BuiltinThemes[DefaultTheme].Info)
	ColorError       color.Color = lipgloss.Color(BuiltinThemes[DefaultTheme].Error)
	ColorSuccess     color.Color = lipgloss.Color(BuiltinThemes[DefaultTheme].Success)
)

// Header styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Background(ColorPrimary).
			Padding(0, 1)

	HeaderTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorText)
)

// Footer styles
var (
	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// Panel styles for bordered regions (room list, transcript)
var (
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
)

// Room list styles
var (
	RoomItemStyle = lipgloss.NewStyle().
			Padding(0, 1)

	RoomSelectedStyle = lipgloss.NewStyle().
				Background(lipgloss.Color(BuiltinThemes[DefaultTheme].GetBgSelected())).
				Foreground(ColorText).
				Bold(true).
				Padding(0, 1)

	RoomUnreadBadgeStyle = lipgloss.NewStyle().
				Foreground(ColorUnread).
				Bold(true)
)

// Transcript styles
var (
	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPrimary)

	RowHighlightStyle = lipgloss.NewStyle().
				Background(lipgloss.Color(BuiltinThemes[DefaultTheme].GetBgSelected())).
				Foreground(ColorText)

	UnreadStyle = lipgloss.NewStyle().
			Foreground(ColorUnread).
			Bold(true)

	DateSeparatorStyle = lipgloss.NewStyle().
				Foreground(ColorUnread).
				Bold(true)

	TranscriptTextStyle = lipgloss.NewStyle().
				Foreground(ColorText)
)

// Composer styles
var (
	ComposerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	ComposerFocusedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorderFocus).
				Padding(0, 1)
)

// Modal styles
var (
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
)

// Status styles
var (
	StatusLoadingStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Italic(true)

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(ColorError).
				Bold(true)
)

// Detail view styles
var (
	DetailMetaStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	DetailAuthorStyle = lipgloss.NewStyle().
				Bold(true)
)

// Markdown styles for the message detail body. Colors derive from the
// semantic palette rather than dedicated theme fields.
var (
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
				Background(lipgloss.Color(BuiltinThemes[DefaultTheme].GetBgSelected()))

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
)

// Text selection styles
var (
	TextSelectionStyle = lipgloss.NewStyle().
				Background(lipgloss.Color(BuiltinThemes[DefaultTheme].TextSelectionBg)).
				Foreground(lipgloss.Color(BuiltinThemes[DefaultTheme].TextSelectionFg))

	TextSelectionFlashStyle = lipgloss.NewStyle().
				Background(lipgloss.Color(BuiltinThemes[DefaultTheme].Success)).
				Foreground(ColorTextInverse)
)
