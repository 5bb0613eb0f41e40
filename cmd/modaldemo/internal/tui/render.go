package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/modal/pkg/graphics"
)

var (
	// BackdropColor fills the host.
	BackdropColor = graphics.RGB(0x1e, 0x1e, 0x2e)
	// PanelColor fills a fully opaque panel.
	PanelColor = graphics.RGB(0xd0, 0x30, 0x30)

	backdropStyle = lipgloss.NewStyle().Background(lipgloss.Color(BackdropColor.Hex()))
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f5e0dc"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))
)

// shade returns the terminal color of c drawn over the backdrop at opacity.
// Terminal cells have no alpha, so the blend is done here.
func shade(c graphics.Color, opacity float64) lipgloss.Color {
	return lipgloss.Color(BackdropColor.Lerp(c, opacity).Hex())
}

// Render draws the host backdrop and its attached panel, one line per row.
// The panel is clipped to the host and shaded by its opacity.
func Render(h *Host) string {
	w, ht := int(h.size.Width), int(h.size.Height)
	if w <= 0 || ht <= 0 {
		return ""
	}

	rows := make([]string, ht)
	blank := backdropStyle.Render(strings.Repeat(" ", w))
	p := h.child
	if p == nil {
		for y := range rows {
			rows[y] = blank
		}
		return strings.Join(rows, "\n")
	}

	frame := cellRect(p.Frame())
	pl, pt := int(frame.Left), int(frame.Top)
	pw, ph := int(frame.Width()), int(frame.Height())
	left, right := clamp(pl, 0, w), clamp(pl+pw, 0, w)
	top, bottom := clamp(pt, 0, ht), clamp(pt+ph, 0, ht)

	style := lipgloss.NewStyle().
		Background(shade(PanelColor, p.opacity)).
		Foreground(shade(graphics.ColorWhite, p.opacity))

	for y := range rows {
		if y < top || y >= bottom || left >= right {
			rows[y] = blank
			continue
		}
		line := panelLine(p.Label, pw, ph, y-pt)
		rows[y] = backdropStyle.Render(strings.Repeat(" ", left)) +
			style.Render(line[left-pl:right-pl]) +
			backdropStyle.Render(strings.Repeat(" ", w-right))
	}
	return strings.Join(rows, "\n")
}

// panelLine returns row y of a panel w cells wide and h rows tall, with the
// label centered on the middle row.
func panelLine(label string, w, h, y int) string {
	if y != h/2 || len(label) == 0 {
		return strings.Repeat(" ", w)
	}
	if len(label) > w {
		label = label[:w]
	}
	pad := (w - len(label)) / 2
	return strings.Repeat(" ", pad) + label + strings.Repeat(" ", w-pad-len(label))
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
