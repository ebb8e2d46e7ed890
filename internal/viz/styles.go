package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Header is the landing-page copy drawn over the rain.
type Header struct {
	Title   string
	Tagline string
}

// HeaderView renders the header box for a terminal of the given width.
func HeaderView(t Theme, h Header, width int) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Muted).
		Padding(1, 4).
		Align(lipgloss.Center)

	title := lipgloss.NewStyle().Bold(true).Render(GradientText(strings.ToUpper(h.Title), t.Title, t.Accent))
	tagline := lipgloss.NewStyle().Foreground(t.Text).Render(h.Tagline)

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, box.Render(title+"\n\n"+tagline))
}

// HelpView lists the key bindings.
func HelpView(t Theme) string {
	key := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	desc := lipgloss.NewStyle().Foreground(t.Text)
	rows := [][2]string{
		{"q", "quit"},
		{"h", "toggle header"},
		{"s", "toggle stats"},
		{"?", "toggle help"},
	}
	var b strings.Builder
	for _, r := range rows {
		b.WriteString(key.Render(padRight(r[0], 4)) + desc.Render(r[1]) + "\n")
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Muted).
		Padding(0, 2).
		Render(strings.TrimRight(b.String(), "\n"))
}

// StatusLine renders a dim one-line status bar.
func StatusLine(t Theme, text string, width int) string {
	return lipgloss.NewStyle().Foreground(t.Muted).Width(width).Render(text)
}

// GradientText colors each rune along a blend from start to end.
func GradientText(text string, start, end lipgloss.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	c1, err1 := colorful.Hex(string(start))
	c2, err2 := colorful.Hex(string(end))
	if err1 != nil || err2 != nil {
		return text
	}

	var b strings.Builder
	for i, r := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		c := c1.BlendLab(c2, t).Clamped()
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render(string(r)))
	}
	return b.String()
}

func padRight(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return s + strings.Repeat(" ", n-len(s))
}
