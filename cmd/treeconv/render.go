package main

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/treebridge/tree"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	stringStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F4D03F"))

	numberStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// renderer draws a tree value as an indented outline. With styled unset it
// emits plain text; a positive width truncates long leaf text.
type renderer struct {
	styled bool
	width  int
}

func (r renderer) paint(s lipgloss.Style, text string) string {
	if !r.styled {
		return text
	}
	return s.Render(text)
}

// Render returns the outline of v, one line per value.
func (r renderer) Render(v tree.Value) string {
	var b strings.Builder
	b.WriteString(r.summary(v))
	b.WriteByte('\n')
	if l, ok := v.(tree.List); ok {
		r.children(&b, l, "")
	}
	return b.String()
}

func (r renderer) children(b *strings.Builder, l tree.List, indent string) {
	for i, e := range l {
		branch, next := "├── ", "│   "
		if i == len(l)-1 {
			branch, next = "└── ", "    "
		}
		b.WriteString(indent)
		b.WriteString(branch)
		b.WriteString(r.label(i, e))
		b.WriteByte(' ')
		b.WriteString(r.summary(e.Value))
		b.WriteByte('\n')
		if sub, ok := e.Value.(tree.List); ok {
			r.children(b, sub, indent+next)
		}
	}
}

func (r renderer) label(i int, e tree.Entry) string {
	if e.Named {
		return r.paint(nameStyle, e.Name+":")
	}
	return r.paint(helpStyle, "["+strconv.Itoa(i)+"]")
}

// summary is the one-line form of v: the value and its kind for leaves, a
// count for lists.
func (r renderer) summary(v tree.Value) string {
	switch x := v.(type) {
	case nil:
		return r.paint(errorStyle, "<nil>")
	case tree.Null:
		return r.paint(helpStyle, "null")
	case tree.List:
		return r.paint(typeStyle, describeList(x))
	case tree.String, tree.Bytes:
		return r.paint(stringStyle, r.truncate(v.String())) + " " + r.paint(typeStyle, v.Kind().String())
	default:
		return r.paint(numberStyle, v.String()) + " " + r.paint(typeStyle, v.Kind().String())
	}
}

func describeList(l tree.List) string {
	switch {
	case len(l) == 0:
		return "[]"
	case l.IsRecord():
		return "record (" + plural(len(l), "field") + ")"
	default:
		return "list (" + plural(len(l), "item") + ")"
	}
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}

func (r renderer) truncate(s string) string {
	if r.width <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= r.width {
		return s
	}
	return string(runes[:max(r.width-1, 0)]) + "…"
}
