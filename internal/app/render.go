package app

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/adrianAraqueG/gaston/internal/core"
	"github.com/adrianAraqueG/gaston/internal/dashboard"
)

const barWidth = 24

type styles struct {
	title     lipgloss.Style
	section   lipgloss.Style
	muted     lipgloss.Style
	banner    lipgloss.Style
	formError lipgloss.Style
	notice    lipgloss.Style
	success   lipgloss.Style
	income    lipgloss.Style
	expense   lipgloss.Style
}

// newStyles binds the styles to out; writers that are not terminals get
// plain text.
func newStyles(out io.Writer) styles {
	r := lipgloss.NewRenderer(out)
	return styles{
		title:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("#89b4fa")),
		section:   r.NewStyle().Bold(true).Underline(true),
		muted:     r.NewStyle().Foreground(lipgloss.Color("#7f849c")),
		banner:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("#f38ba8")),
		formError: r.NewStyle().Foreground(lipgloss.Color("#f38ba8")),
		notice:    r.NewStyle().Foreground(lipgloss.Color("#f9e2af")),
		success:   r.NewStyle().Foreground(lipgloss.Color("#a6e3a1")),
		income:    r.NewStyle().Foreground(lipgloss.Color("#a6e3a1")),
		expense:   r.NewStyle().Foreground(lipgloss.Color("#f38ba8")),
	}
}

func (a *App) title(s string) {
	fmt.Fprintln(a.out, a.ui.title.Render(s))
}

func (a *App) section(s string) {
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, a.ui.section.Render(s))
}

func (a *App) empty(s string) {
	fmt.Fprintln(a.out, a.ui.muted.Render(s))
}

// table writes tab-aligned rows under an upper-cased header.
func (a *App) table(header []string, rows [][]string) {
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	upper := make([]string, len(header))
	for i, h := range header {
		upper[i] = strings.ToUpper(h)
	}
	fmt.Fprintln(tw, strings.Join(upper, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	tw.Flush()
}

func (a *App) bar(v, scale core.Money, style lipgloss.Style) string {
	n := dashboard.BarWidth(v, scale, barWidth)
	return style.Render(strings.Repeat("█", n)) + strings.Repeat("░", barWidth-n)
}

func typeLabel(t core.TransactionType) string {
	if t == "" {
		return "-"
	}
	return t.Label()
}

func categoryName(c *core.CategoryRef) string {
	if c == nil {
		return "-"
	}
	return c.Name
}

func pocketName(p *core.PocketRef) string {
	if p == nil {
		return "-"
	}
	return p.Name
}

func yesNo(b bool) string {
	if b {
		return "Sí"
	}
	return "No"
}
