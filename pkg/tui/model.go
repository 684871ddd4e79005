// Package tui is the terminal front end of the farm dashboard: a bubbletea
// program with one tab per page.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"farmdash/pkg/dashboard"
)

type Tab int

const (
	TabDashboard Tab = iota
	TabCrops
	TabActivities
	TabResources
)

var tabNames = []string{"Dashboard", "Crops", "Activities", "Resources"}

type mode int

const (
	modeBrowse mode = iota
	modeForm
	modeConfirm
	modeFilter
)

// Completion messages of the commands that talk to the backend.
type (
	loadedMsg    struct{ err error }
	refreshedMsg struct{ err error }
	submittedMsg struct{ err error }
	deletedMsg   struct{ err error }
)

type Model struct {
	app    *dashboard.App
	ctx    context.Context
	pages  []dashboard.CRUDView
	tables []table.Model
	styles Styles

	tab     Tab
	mode    mode
	form    formModel
	filter  textinput.Model
	dialog  *dashboard.ConfirmDialog
	loaded  bool
	loadErr string
	busy    bool

	width  int
	height int
}

func New(ctx context.Context, app *dashboard.App) Model {
	pages := app.Pages()
	tables := make([]table.Model, len(pages))
	for i, p := range pages {
		cols := make([]table.Column, 0, len(p.Headers()))
		for _, h := range p.Headers() {
			cols = append(cols, table.Column{Title: h, Width: len(h) + 2})
		}
		tables[i] = table.New(table.WithColumns(cols), table.WithFocused(true), table.WithHeight(12))
	}
	fi := textinput.New()
	fi.Placeholder = "type to filter..."
	fi.CharLimit = 50
	fi.Width = 30

	return Model{
		app:    app,
		ctx:    ctx,
		pages:  pages,
		tables: tables,
		styles: DefaultStyles(),
		filter: fi,
	}
}

func (m Model) Init() tea.Cmd {
	app, ctx := m.app, m.ctx
	return func() tea.Msg { return loadedMsg{err: app.LoadAll(ctx)} }
}

// page is the CRUD page behind the current tab, nil on the dashboard.
func (m Model) page() dashboard.CRUDView {
	if m.tab == TabDashboard {
		return nil
	}
	return m.pages[m.tab-1]
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		for i := range m.tables {
			m.tables[i].SetHeight(max(5, msg.Height-10))
		}
		return m, nil

	case loadedMsg:
		m.loaded = true
		if msg.err != nil {
			m.loadErr = msg.err.Error()
		}
		m.sync()
		return m, nil

	case refreshedMsg:
		m.busy = false
		if msg.err == nil {
			m.loadErr = ""
		}
		m.sync()
		return m, nil

	case submittedMsg:
		m.busy = false
		if p := m.page(); p != nil && !p.Form().IsOpen() {
			m.mode = modeBrowse
		}
		m.sync()
		return m, nil

	case deletedMsg:
		m.busy = false
		if m.dialog == nil || !m.dialog.IsOpen() {
			m.dialog = nil
			m.mode = modeBrowse
		}
		m.sync()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.mode {
		case modeForm:
			return m.updateForm(msg)
		case modeConfirm:
			return m.updateConfirm(msg)
		case modeFilter:
			return m.updateFilter(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "q":
		return m, tea.Quit
	case "1", "2", "3", "4":
		m.setTab(Tab(key[0] - '1'))
		return m, nil
	case "tab":
		m.setTab((m.tab + 1) % Tab(len(tabNames)))
		return m, nil
	case "shift+tab":
		m.setTab((m.tab + Tab(len(tabNames)) - 1) % Tab(len(tabNames)))
		return m, nil
	case "r":
		if m.busy {
			return m, nil
		}
		m.busy = true
		return m, m.refreshCmd()
	}

	p := m.page()
	if p == nil || m.fatal(p) {
		return m, nil
	}
	t := &m.tables[m.tab-1]
	switch msg.String() {
	case "a":
		p.OpenCreate()
		m.form = newFormModel(p.Form())
		m.mode = modeForm
		return m, nil
	case "e", "enter":
		if p.EditAt(t.Cursor()) {
			m.form = newFormModel(p.Form())
			m.mode = modeForm
		}
		return m, nil
	case "d":
		if d, ok := p.DeleteAt(t.Cursor()); ok {
			m.dialog = d
			m.mode = modeConfirm
		}
		return m, nil
	case "/":
		m.filter.SetValue(p.Filter())
		m.filter.Focus()
		m.mode = modeFilter
		return m, nil
	case "esc":
		p.SetFilter("")
		m.sync()
		return m, nil
	}
	var cmd tea.Cmd
	*t, cmd = t.Update(msg)
	return m, cmd
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.form.view
	switch msg.String() {
	case "esc":
		if f.Submitting() {
			return m, nil
		}
		f.Close()
		m.mode = modeBrowse
		return m, nil
	case "enter", "ctrl+s":
		if !f.CanSubmit() {
			return m, nil
		}
		m.busy = true
		ctx := m.ctx
		return m, func() tea.Msg { return submittedMsg{err: f.Submit(ctx)} }
	}
	m.form = m.form.update(msg)
	return m, nil
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	d := m.dialog
	switch msg.String() {
	case "y", "enter":
		if !d.ButtonsEnabled() {
			return m, nil
		}
		m.busy = true
		ctx := m.ctx
		return m, func() tea.Msg { return deletedMsg{err: d.Confirm(ctx)} }
	case "n", "esc":
		d.Cancel()
		if !d.IsOpen() {
			m.dialog = nil
			m.mode = modeBrowse
		}
	}
	return m, nil
}

func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.filter.Blur()
		m.mode = modeBrowse
		return m, nil
	}
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.page().SetFilter(m.filter.Value())
	m.sync()
	return m, cmd
}

func (m *Model) setTab(t Tab) {
	m.tab = t
	if t == TabDashboard {
		m.app.Dashboard.Recompute()
	}
}

func (m Model) refreshCmd() tea.Cmd {
	ctx := m.ctx
	if p := m.page(); p != nil {
		return func() tea.Msg { return refreshedMsg{err: p.Refresh(ctx)} }
	}
	d := m.app.Dashboard
	return func() tea.Msg { return refreshedMsg{err: d.Refresh(ctx)} }
}

// fatal reports whether the initial load failed for p and nothing has
// replaced it since.
func (m Model) fatal(p dashboard.CRUDView) bool {
	return m.loadErr != "" && p.Err() != ""
}

// sync copies page rows into the tables, widening columns to fit.
func (m *Model) sync() {
	for i, p := range m.pages {
		headers := p.Headers()
		rows := p.Rows()
		widths := make([]int, len(headers))
		for j, h := range headers {
			widths[j] = len(h) + 2
		}
		trows := make([]table.Row, len(rows))
		for r, row := range rows {
			for j, cell := range row {
				widths[j] = min(max(widths[j], lipgloss.Width(cell)+2), 40)
			}
			trows[r] = table.Row(row)
		}
		cols := make([]table.Column, len(headers))
		for j, h := range headers {
			cols[j] = table.Column{Title: h, Width: widths[j]}
		}
		m.tables[i].SetRows(nil)
		m.tables[i].SetColumns(cols)
		m.tables[i].SetRows(trows)
		if c := m.tables[i].Cursor(); c >= len(trows) && len(trows) > 0 {
			m.tables[i].SetCursor(len(trows) - 1)
		}
	}
}

func (m Model) View() string {
	s := m.styles
	var b strings.Builder

	tabs := []string{s.Brand.Render("farmdash")}
	for i, name := range tabNames {
		label := fmt.Sprintf("%d %s", i+1, name)
		if Tab(i) == m.tab {
			tabs = append(tabs, s.ActiveTab.Render(label))
		} else {
			tabs = append(tabs, s.Tab.Render(label))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n\n")

	switch {
	case !m.loaded:
		b.WriteString(s.Muted.Render("Loading..."))
	case m.tab == TabDashboard:
		b.WriteString(m.viewDashboard())
	default:
		b.WriteString(m.viewPage(m.page()))
	}
	b.WriteString("\n\n")
	b.WriteString(m.viewToast())
	b.WriteString("\n")
	b.WriteString(s.Muted.Render(m.help()))
	return b.String()
}

func (m Model) viewPage(p dashboard.CRUDView) string {
	s := m.styles
	if m.fatal(p) {
		return s.Error.Render("Error") + "\n" + p.Err() + "\n\n" + s.Muted.Render("press r to retry")
	}
	if m.mode == modeForm {
		return m.form.render(s)
	}

	var b strings.Builder
	refresh := s.Button
	if p.Refreshing() {
		refresh = s.ButtonOff
	}
	b.WriteString(s.Title.Render(p.Title()) + "  " + refresh.Render(p.RefreshLabel()))
	b.WriteString("\n")
	if e := p.Err(); e != "" {
		b.WriteString(s.Error.Render(e) + "\n")
	}
	if m.mode == modeFilter {
		b.WriteString("Filter " + p.FilterColumn() + ": " + m.filter.View() + "\n")
	} else if f := p.Filter(); f != "" {
		b.WriteString(s.Muted.Render("Filter "+p.FilterColumn()+": "+f) + "\n")
	}
	b.WriteString("\n")

	if p.Len() == 0 {
		b.WriteString(s.Muted.Render(p.EmptyMessage()) + "\n" + s.Muted.Render(p.EmptyHint()))
	} else {
		b.WriteString(m.tables[m.tab-1].View())
	}

	if m.mode == modeConfirm && m.dialog != nil {
		b.WriteString("\n\n")
		b.WriteString(m.viewDialog())
	}
	return b.String()
}

func (m Model) viewDialog() string {
	s := m.styles
	d := m.dialog
	confirm, cancel := s.Danger, s.Button
	if !d.ButtonsEnabled() {
		confirm, cancel = s.ButtonOff, s.ButtonOff
	}
	body := s.Title.Render(d.Title()) + "\n" + d.Description() + "\n\n" +
		cancel.Render(dashboard.DialogCancel+" (n)") + "  " + confirm.Render(d.ConfirmLabel()+" (y)")
	return s.Dialog.Render(body)
}

func (m Model) viewToast() string {
	n, ok := m.app.Toasts.Latest()
	if !ok {
		return ""
	}
	st := m.styles.Success
	if n.Variant == dashboard.VariantDestructive {
		st = m.styles.Error
	}
	return st.Render(n.Title + ": " + n.Description)
}

func (m Model) help() string {
	switch m.mode {
	case modeForm:
		return "esc cancel"
	case modeConfirm:
		return "y delete • n cancel"
	case modeFilter:
		return "enter done • esc done"
	}
	if m.tab == TabDashboard {
		return "1-4 switch tab • r refresh • q quit"
	}
	return "1-4 switch tab • a add • e edit • d delete • / filter • r refresh • q quit"
}

// Run starts the program on the alternate screen and blocks until it exits.
func Run(ctx context.Context, app *dashboard.App) error {
	p := tea.NewProgram(New(ctx, app), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
