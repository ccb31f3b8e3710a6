package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wippyai/treebridge/errors"
	"github.com/wippyai/treebridge/schema"
	"github.com/wippyai/treebridge/tree"
)

// frame is one level of the drill-down stack: a list and the entry under
// the cursor. seg is the path segment that led here.
type frame struct {
	list     tree.List
	seg      string
	selected int
}

type browserState int

const (
	stateBrowse browserState = iota
	stateJump
	stateDetail
)

type browserModel struct {
	err    error
	root   tree.Value
	source string
	format string
	data   []byte
	status string
	title  string
	stack  []frame
	jump   textinput.Model
	detail viewport.Model
	width  int
	height int
	state  browserState
	loaded bool
}

type loadedMsg struct {
	err   error
	value tree.Value
}

func newBrowserModel(source, format string, data []byte) *browserModel {
	ti := textinput.New()
	ti.Prompt = "path: "
	ti.Placeholder = "field.0.name"
	ti.Width = 40

	return &browserModel{
		source: source,
		format: format,
		data:   data,
		jump:   ti,
		detail: viewport.New(80, 20),
		height: 24,
		state:  stateBrowse,
	}
}

func (m *browserModel) Init() tea.Cmd {
	return m.load
}

func (m *browserModel) load() tea.Msg {
	format, err := resolveFormat(m.format, m.source, m.data)
	if err != nil {
		return loadedMsg{err: err}
	}
	v, err := load(format, m.data)
	return loadedMsg{value: v, err: err}
}

func (m *browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		m.loaded = true
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.root = msg.value
		m.stack = rootFrames(msg.value)
		if len(m.stack) == 0 {
			m.openDetail("$", msg.value)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.detail.Width = msg.Width
		m.detail.Height = max(msg.Height-6, 3)
		return m, nil

	case tea.KeyMsg:
		if m.state == stateJump {
			return m.updateJump(msg)
		}
		if k := msg.String(); k == "ctrl+c" || k == "q" {
			return m, tea.Quit
		}
		if m.err != nil || !m.loaded {
			return m, nil
		}
		if m.state == stateDetail {
			return m.updateDetail(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m *browserModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	top := &m.stack[len(m.stack)-1]
	m.status = ""

	switch msg.String() {
	case "up", "k":
		if top.selected > 0 {
			top.selected--
		}
	case "down", "j":
		if top.selected < len(top.list)-1 {
			top.selected++
		}
	case "home", "g":
		top.selected = 0
	case "end", "G":
		top.selected = max(len(top.list)-1, 0)
	case "enter", "right", "l":
		m.descend()
	case "left", "h", "backspace", "esc":
		if len(m.stack) > 1 {
			m.stack = m.stack[:len(m.stack)-1]
		}
	case "s":
		m.openDetail(m.path(), top.list)
	case "/":
		m.state = stateJump
		m.jump.Reset()
		return m, m.jump.Focus()
	}
	return m, nil
}

func (m *browserModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "left", "h", "backspace":
		if len(m.stack) > 0 {
			m.state = stateBrowse
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return m, cmd
}

func (m *browserModel) updateJump(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.jump.Blur()
		m.state = stateBrowse
		return m, nil
	case "enter":
		m.jump.Blur()
		m.state = stateBrowse
		frames, err := resolvePath(m.root, m.jump.Value())
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.stack = frames
		return m, nil
	}
	var cmd tea.Cmd
	m.jump, cmd = m.jump.Update(msg)
	return m, cmd
}

// descend pushes the selected list, or shows the selected leaf.
func (m *browserModel) descend() {
	top := &m.stack[len(m.stack)-1]
	if len(top.list) == 0 {
		return
	}
	e := top.list[top.selected]
	seg := segment(top.selected, e)
	if sub, ok := e.Value.(tree.List); ok && len(sub) > 0 {
		m.stack = append(m.stack, frame{list: sub, seg: seg})
		return
	}
	m.openDetail(m.path()+"."+seg, e.Value)
}

func (m *browserModel) openDetail(title string, v tree.Value) {
	r := renderer{styled: true}
	var b strings.Builder
	b.WriteString(r.Render(v))
	b.WriteByte('\n')
	if t, err := schema.Infer(v); err != nil {
		b.WriteString(errorStyle.Render(err.Error()))
	} else {
		b.WriteString(typeStyle.Render("WIT " + schema.Describe(t)))
	}

	m.title = title
	m.detail.SetContent(b.String())
	m.detail.GotoTop()
	m.state = stateDetail
}

func (m *browserModel) path() string {
	segs := make([]string, 0, len(m.stack))
	segs = append(segs, "$")
	for _, f := range m.stack[1:] {
		segs = append(segs, f.seg)
	}
	return strings.Join(segs, ".")
}

func (m *browserModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}
	if !m.loaded {
		return "Loading document..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Tree Browser"))
	b.WriteString(" ")
	b.WriteString(m.source)
	b.WriteString("\n\n")

	switch m.state {
	case stateBrowse, stateJump:
		b.WriteString(nameStyle.Render(m.path()))
		b.WriteString("\n\n")
		m.writeEntries(&b)
		b.WriteString("\n")
		if m.state == stateJump {
			b.WriteString(m.jump.View())
			b.WriteString("\n")
			b.WriteString(helpStyle.Render("enter jump • esc cancel"))
			break
		}
		if m.status != "" {
			b.WriteString(errorStyle.Render(m.status))
			b.WriteString("\n")
		}
		b.WriteString(helpStyle.Render("↑/↓ select • enter open • ← back • / jump • s schema • q quit"))

	case stateDetail:
		b.WriteString(nameStyle.Render(m.title))
		b.WriteString("\n\n")
		b.WriteString(m.detail.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("↑/↓ scroll • esc back • q quit"))
	}

	return b.String()
}

// writeEntries draws the entries of the top frame, scrolled so the cursor
// stays visible.
func (m *browserModel) writeEntries(b *strings.Builder) {
	top := m.stack[len(m.stack)-1]
	if len(top.list) == 0 {
		b.WriteString(helpStyle.Render("(empty)"))
		b.WriteString("\n")
		return
	}

	rows := max(m.height-8, 1)
	start := 0
	if top.selected >= rows {
		start = top.selected - rows + 1
	}
	end := min(start+rows, len(top.list))

	r := renderer{styled: true, width: m.width / 2}
	for i := start; i < end; i++ {
		e := top.list[i]
		line := r.label(i, e) + " " + r.summary(e.Value)
		if i == top.selected {
			b.WriteString(selectedStyle.Render("> " + segment(i, e) + " "))
			b.WriteString(r.summary(e.Value))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	if end < len(top.list) {
		b.WriteString(helpStyle.Render(fmt.Sprintf("  … %d more", len(top.list)-end)))
		b.WriteString("\n")
	}
}

func rootFrames(v tree.Value) []frame {
	l, ok := v.(tree.List)
	if !ok {
		return nil
	}
	return []frame{{list: l, seg: "$"}}
}

// segment names an entry in a path: its name, or its index when unnamed.
func segment(i int, e tree.Entry) string {
	if e.Named {
		return e.Name
	}
	return strconv.Itoa(i)
}

// lookup finds seg in l, first by name, then as an index.
func lookup(l tree.List, seg string) (int, bool) {
	for i, e := range l {
		if e.Named && e.Name == seg {
			return i, true
		}
	}
	if i, err := strconv.Atoi(seg); err == nil && i >= 0 && i < len(l) {
		return i, true
	}
	return 0, false
}

// resolvePath builds the frame stack for a dotted path such as "items.2.id".
// A leading "$" is optional. The last segment may name a leaf; it is left
// selected in the deepest frame.
func resolvePath(root tree.Value, path string) ([]frame, error) {
	frames := rootFrames(root)
	if frames == nil {
		return nil, errors.InvalidInput(errors.PhaseCLI, "value has no entries")
	}

	path = strings.TrimPrefix(strings.TrimPrefix(path, "$"), ".")
	if path == "" {
		return frames, nil
	}

	segs := strings.Split(path, ".")
	for n, seg := range segs {
		top := &frames[len(frames)-1]
		i, ok := lookup(top.list, seg)
		if !ok {
			return nil, errors.InvalidInput(errors.PhaseCLI,
				fmt.Sprintf("no entry %q at %s", seg, joinSegs(frames)))
		}
		top.selected = i

		sub, isList := top.list[i].Value.(tree.List)
		switch {
		case isList && len(sub) > 0:
			frames = append(frames, frame{list: sub, seg: segment(i, top.list[i])})
		case n < len(segs)-1:
			return nil, errors.InvalidInput(errors.PhaseCLI,
				fmt.Sprintf("%q at %s has no entries", seg, joinSegs(frames)))
		}
	}
	return frames, nil
}

func joinSegs(frames []frame) string {
	segs := make([]string, len(frames))
	for i, f := range frames {
		segs[i] = f.seg
	}
	return strings.Join(segs, ".")
}

func runInteractive(source, format string, data []byte) error {
	p := tea.NewProgram(newBrowserModel(source, format, data), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
