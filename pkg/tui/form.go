package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"farmdash/pkg/dashboard"
)

// formModel binds one textinput per field to a dashboard form. Select fields
// keep an input too so indexes line up, but cycle with left/right.
type formModel struct {
	view   dashboard.FormView
	fields []dashboard.Field
	inputs []textinput.Model
	focus  int
}

func newFormModel(view dashboard.FormView) formModel {
	f := formModel{view: view, fields: view.Fields()}
	f.inputs = make([]textinput.Model, len(f.fields))
	for i, fd := range f.fields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 120
		ti.Width = 32
		switch fd.Type {
		case dashboard.FieldDate:
			ti.Placeholder = "YYYY-MM-DD"
			ti.CharLimit = 10
		case dashboard.FieldNumber:
			ti.Placeholder = "0"
		}
		ti.SetValue(view.Value(fd.Name))
		f.inputs[i] = ti
	}
	f.setFocus(0)
	return f
}

func (f *formModel) setFocus(i int) {
	n := len(f.inputs)
	if n == 0 {
		return
	}
	f.focus = (i%n + n) % n
	for j := range f.inputs {
		if j == f.focus {
			f.inputs[j].Focus()
		} else {
			f.inputs[j].Blur()
		}
	}
}

func (f formModel) current() dashboard.Field { return f.fields[f.focus] }

// cycle moves a select field to the next or previous option.
func (f *formModel) cycle(step int) {
	fd := f.current()
	opts := f.view.Options(fd.Name)
	if len(opts) == 0 {
		return
	}
	idx := -1
	cur := f.view.Value(fd.Name)
	for i, o := range opts {
		if o.Value == cur {
			idx = i
		}
	}
	next := 0
	if idx >= 0 {
		next = ((idx+step)%len(opts) + len(opts)) % len(opts)
	} else if step < 0 {
		next = len(opts) - 1
	}
	f.view.Set(fd.Name, opts[next].Value)
	f.pull()
}

// pull copies the form's values back into the inputs; normalisation may
// have changed fields other than the one being edited.
func (f *formModel) pull() {
	for i, fd := range f.fields {
		if v := f.view.Value(fd.Name); f.inputs[i].Value() != v {
			f.inputs[i].SetValue(v)
		}
	}
}

func (f formModel) update(msg tea.KeyMsg) formModel {
	switch msg.String() {
	case "tab", "down":
		f.setFocus(f.focus + 1)
		return f
	case "shift+tab", "up":
		f.setFocus(f.focus - 1)
		return f
	}
	if f.current().Type == dashboard.FieldSelect {
		switch msg.String() {
		case "left":
			f.cycle(-1)
		case "right", " ":
			f.cycle(1)
		}
		return f
	}
	var ti textinput.Model
	ti, _ = f.inputs[f.focus].Update(msg)
	f.inputs[f.focus] = ti
	f.view.Set(f.current().Name, ti.Value())
	f.pull()
	return f
}

func (f formModel) render(s Styles) string {
	var b strings.Builder
	b.WriteString(s.Title.Render(f.view.Title()))
	b.WriteString("\n\n")
	for i, fd := range f.fields {
		label := s.Label
		if i == f.focus {
			label = s.FocusLabel
		}
		b.WriteString(label.Render(fd.Label))
		if fd.Type == dashboard.FieldSelect {
			b.WriteString(f.renderSelect(fd, s))
		} else {
			b.WriteString(f.inputs[i].View())
		}
		b.WriteString("\n")
		if msg := f.view.Error(fd.Name); msg != "" {
			b.WriteString(s.Label.Render(""))
			b.WriteString(s.Error.Render(msg))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	btn := s.ButtonOff
	if f.view.CanSubmit() {
		btn = s.Button
	}
	b.WriteString(btn.Render(f.view.SubmitLabel()))
	b.WriteString("\n\n")
	b.WriteString(s.Muted.Render("tab next field • ←/→ choose • enter save • esc cancel"))
	return s.Panel.Render(b.String())
}

func (f formModel) renderSelect(fd dashboard.Field, s Styles) string {
	opts := f.view.Options(fd.Name)
	if len(opts) == 0 {
		return s.Muted.Render("(no " + strings.ToLower(fd.Label) + "s available)")
	}
	cur := f.view.Value(fd.Name)
	for _, o := range opts {
		if o.Value == cur {
			return "‹ " + o.Label + " ›"
		}
	}
	return s.Muted.Render("‹ Select a " + strings.ToLower(fd.Label) + " ›")
}
