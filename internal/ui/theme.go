package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Hamster Isle theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconIsland   = "🏝️"
	IconHamster  = "🐹"
	IconSeed     = "🌻"
	IconSparkle  = "✨"
	IconPlus     = "➕"
	IconDone     = "✅"
	IconTomato   = "🍅"
	IconCalendar = "📅"
	IconBook     = "📖"
	IconLock     = "🔒"
	IconShop     = "🛒"
	IconInfo     = "ℹ️"
	IconWarn     = "⚠️"
	IconError    = "🧨"
)

var (
	cPrimary = lipgloss.Color("#FF9E5E") // island orange
	cAccent  = lipgloss.Color("205")     // magenta
	cGood    = lipgloss.Color("42")      // green
	cWarn    = lipgloss.Color("214")     // orange
	cBad     = lipgloss.Color("196")     // red
	cMuted   = lipgloss.Color("244")     // gray
	cGold    = lipgloss.Color("220")     // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	Dim   = lipgloss.NewStyle().Foreground(cMuted)

	Panel      = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	PanelTitle = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	TodayCell  = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// TaskColor turns a stored palette hex value into a lipgloss style.
func TaskColor(hex string) lipgloss.Style {
	if hex == "" {
		return Muted
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}

// Checkbox renders task/subtask completion state.
func Checkbox(done bool) string {
	if done {
		return Good.Render("[x]")
	}
	return Muted.Render("[ ]")
}
