package viewer

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/chronos/internal/model"
)

// Color Palette
var (
	ColorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorSuccess   = lipgloss.Color("#10B981") // Emerald
	ColorWarning   = lipgloss.Color("#F59E0B") // Amber
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorDimmed    = lipgloss.Color("#374151") // Dark Gray

	ColorBgPanel = lipgloss.Color("#1E293B") // Slate 800

	ColorText      = lipgloss.Color("#F8FAFC") // Slate 50
	ColorTextMuted = lipgloss.Color("#94A3B8") // Slate 400
	ColorTextDim   = lipgloss.Color("#64748B") // Slate 500
)

// itemColors maps the named item colors to terminal colors
var itemColors = map[model.Color]lipgloss.Color{
	model.ColorRed:    lipgloss.Color("#EF4444"),
	model.ColorGreen:  lipgloss.Color("#10B981"),
	model.ColorBlue:   lipgloss.Color("#3B82F6"),
	model.ColorYellow: lipgloss.Color("#EAB308"),
	model.ColorOrange: lipgloss.Color("#F97316"),
	model.ColorPurple: lipgloss.Color("#8B5CF6"),
	model.ColorPink:   lipgloss.Color("#EC4899"),
	model.ColorCyan:   lipgloss.Color("#06B6D4"),
}

// Header styles
var (
	LogoStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	SubHeaderStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true)

	TitlePanelStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 2).
			MarginBottom(1)
)

// Entry styles
var (
	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	GroupStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)

	ContentStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	DescriptionStyle = lipgloss.NewStyle().
				Foreground(ColorTextMuted).
				Italic(true)

	LinkStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Underline(true)

	MarkerStyle = lipgloss.NewStyle().
			Foreground(ColorWarning).
			Bold(true)

	TodayStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	ArrowStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)
)

// Panel and bar styles
var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDimmed).
			Padding(0, 1)

	FilterBarStyle = lipgloss.NewStyle().
			Background(ColorBgPanel).
			Foreground(ColorText).
			Padding(0, 1)

	StatusBarStyle = lipgloss.NewStyle().
			Background(ColorBgPanel).
			Foreground(ColorText).
			Padding(0, 1)

	StatusPausedStyle = lipgloss.NewStyle().
				Foreground(ColorWarning).
				Bold(true)

	StatusOKStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)
)

// Help styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	FilterActiveStyle = lipgloss.NewStyle().
				Foreground(ColorSuccess).
				Bold(true)

	FilterInactiveStyle = lipgloss.NewStyle().
				Foreground(ColorTextDim)
)

// Kind glyphs
const (
	IconEvent  = "■"
	IconPeriod = "░"
	IconPoint  = "●"
	IconMarker = "│"
	IconToday  = "▶"
	IconArrow  = "→"
)

// Logo
const Logo = "chronos"

// RenderKeyHint renders a keyboard shortcut hint
func RenderKeyHint(key, description string) string {
	return HelpKeyStyle.Render(key) + " " + HelpDescStyle.Render(description)
}

// RenderFilterStatus renders a filter status indicator
func RenderFilterStatus(name string, active bool) string {
	if active {
		return FilterActiveStyle.Render(name)
	}
	return FilterInactiveStyle.Render(name)
}

// colorOf recovers the named color from an item style
func colorOf(style string) (model.Color, bool) {
	const prefix = "--color-"
	i := strings.Index(style, prefix)
	if i < 0 {
		return 0, false
	}
	name := style[i+len(prefix):]
	if j := strings.IndexAny(name, "-)"); j >= 0 {
		name = name[:j]
	}
	return model.ParseColor(name)
}

// RenderGlyph renders the kind glyph in the item's color
func RenderGlyph(it model.Item) string {
	glyph := IconEvent
	switch it.Kind() {
	case model.KindBackground:
		glyph = IconPeriod
	case model.KindPoint:
		glyph = IconPoint
	}

	style := lipgloss.NewStyle().Foreground(ColorTextMuted)
	if c, ok := colorOf(it.Style); ok {
		style = style.Foreground(itemColors[c])
	}
	return style.Render(glyph)
}
