package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"farmdash/pkg/dashboard"
)

const barWidth = 20

func (m Model) viewDashboard() string {
	s := m.styles
	d := m.app.Dashboard
	if m.loadErr != "" {
		return s.Error.Render("Error") + "\n" + m.loadErr + "\n\n" + s.Muted.Render("press r to retry")
	}
	sum := d.Summary()

	cards := make([]string, 0, len(sum.Cards))
	for _, c := range sum.Cards {
		cards = append(cards, s.Card.Render(c.Title+"\n"+s.CardValue.Render(c.Value)+"\n"+s.Muted.Render(c.Trend)))
	}

	var prog strings.Builder
	prog.WriteString(s.Title.Render("Crop Progress") + "\n")
	if len(sum.Progress) == 0 {
		prog.WriteString(s.Muted.Render("No crops yet"))
	}
	for i, p := range sum.Progress {
		if i > 0 {
			prog.WriteString("\n")
		}
		fmt.Fprintf(&prog, "%-14s %s %3d%%  %s", truncate(p.Name, 14), m.bar(p.Percent), p.Percent, s.Muted.Render(p.Status))
	}

	panels := lipgloss.JoinHorizontal(lipgloss.Top,
		s.Panel.Render(m.activityList("Upcoming Tasks", sum.Upcoming, "Nothing scheduled")),
		s.Panel.Render(m.activityList("Recent Activities", sum.Recent, "No recent activities")),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render(d.Title()),
		lipgloss.JoinHorizontal(lipgloss.Top, cards...),
		s.Panel.Render(prog.String()),
		panels,
	)
}

func (m Model) activityList(title string, items []dashboard.ActivityItem, empty string) string {
	s := m.styles
	var b strings.Builder
	b.WriteString(s.Title.Render(title))
	if len(items) == 0 {
		b.WriteString("\n" + s.Muted.Render(empty))
	}
	for _, it := range items {
		fmt.Fprintf(&b, "\n%s\n  %s", it.Description, s.Muted.Render(it.Crop+" · "+it.When))
	}
	return b.String()
}

func (m Model) bar(pct int) string {
	pct = min(max(pct, 0), 100)
	on := pct * barWidth / 100
	return m.styles.ProgressOn.Render(strings.Repeat("█", on)) +
		m.styles.ProgressOff.Render(strings.Repeat("░", barWidth-on))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
