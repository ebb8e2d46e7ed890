package viz

import (
	"image/color"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Theme defines the colors of the rain and the page header drawn over it.
type Theme struct {
	Name       string
	Background lipgloss.Color // fade base
	Accent     lipgloss.Color // glyphs
	Title      lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
}

// Available themes
var (
	ThemeMatrix = Theme{
		Name:       "matrix",
		Background: lipgloss.Color("#000000"),
		Accent:     lipgloss.Color("#00ff00"),
		Title:      lipgloss.Color("#88ff88"),
		Text:       lipgloss.Color("#ccffcc"),
		Muted:      lipgloss.Color("#005500"),
	}

	ThemeCyberpunk = Theme{
		Name:       "cyberpunk",
		Background: lipgloss.Color("#0a0a0a"),
		Accent:     lipgloss.Color("#ff00ff"), // Magenta
		Title:      lipgloss.Color("#00ffff"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#666666"),
	}

	ThemeOcean = Theme{
		Name:       "ocean",
		Background: lipgloss.Color("#001a33"),
		Accent:     lipgloss.Color("#00a8cc"),
		Title:      lipgloss.Color("#ffd700"),
		Text:       lipgloss.Color("#e0f0ff"),
		Muted:      lipgloss.Color("#4488aa"),
	}

	ThemeSunset = Theme{
		Name:       "sunset",
		Background: lipgloss.Color("#2d1b2e"),
		Accent:     lipgloss.Color("#ff6b6b"), // Coral
		Title:      lipgloss.Color("#feca57"),
		Text:       lipgloss.Color("#fff5f5"),
		Muted:      lipgloss.Color("#8b6b8c"),
	}

	ThemeMinimal = Theme{
		Name:       "minimal",
		Background: lipgloss.Color("#000000"),
		Accent:     lipgloss.Color("#ffffff"),
		Title:      lipgloss.Color("#ffffff"),
		Text:       lipgloss.Color("#cccccc"),
		Muted:      lipgloss.Color("#888888"),
	}

	DefaultTheme = ThemeMatrix

	Themes = []Theme{
		ThemeMatrix,
		ThemeCyberpunk,
		ThemeOcean,
		ThemeSunset,
		ThemeMinimal,
	}
)

// GetTheme returns a theme by name, falling back to the default.
func GetTheme(name string) Theme {
	t, _ := LookupTheme(name)
	return t
}

// LookupTheme reports whether name is a known theme.
func LookupTheme(name string) (Theme, bool) {
	for _, t := range Themes {
		if t.Name == name {
			return t, true
		}
	}
	return DefaultTheme, false
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// BackgroundColor is the fade base as an image color.
func (t Theme) BackgroundColor() color.Color { return ToColor(t.Background) }

// AccentColor is the glyph color as an image color.
func (t Theme) AccentColor() color.Color { return ToColor(t.Accent) }

// ToColor parses a hex theme color; anything else becomes white.
func ToColor(c lipgloss.Color) color.Color {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return color.White
	}
	r, g, b := col.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}
