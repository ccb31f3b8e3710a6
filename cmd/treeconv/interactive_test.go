package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wippyai/treebridge/tree"
)

func sample() tree.Value {
	return tree.FromPairs(
		tree.Pair{Name: "name", Value: tree.String("ada")},
		tree.Pair{Name: "items", Value: tree.FromValues(
			tree.FromPairs(tree.Pair{Name: "id", Value: tree.U32(1)}),
			tree.FromPairs(tree.Pair{Name: "id", Value: tree.U32(2)}),
		)},
	)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestResolvePath(t *testing.T) {
	tests := []struct {
		path     string
		depth    int
		selected int
		name     string
	}{
		{"", 1, 0, "root"},
		{"$", 1, 0, "dollar"},
		{"name", 1, 0, "leaf at root"},
		{"items", 2, 0, "list"},
		{"$.items.1", 3, 0, "record in list"},
		{"items.1.id", 3, 0, "leaf in nested record"},
		{"1.0", 3, 0, "indices only"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frames, err := resolvePath(sample(), tt.path)
			if err != nil {
				t.Fatalf("resolvePath(%q) error: %v", tt.path, err)
			}
			if len(frames) != tt.depth {
				t.Fatalf("depth = %d, want %d", len(frames), tt.depth)
			}
			if got := frames[len(frames)-1].selected; got != tt.selected {
				t.Errorf("selected = %d, want %d", got, tt.selected)
			}
		})
	}

	frames, _ := resolvePath(sample(), "items.1")
	if frames[1].selected != 1 || joinSegs(frames) != "$.items.1" {
		t.Errorf("frames = %+v", frames)
	}

	for _, bad := range []string{"missing", "name.x", "items.5", "items.-1"} {
		if _, err := resolvePath(sample(), bad); err == nil {
			t.Errorf("resolvePath(%q) should fail", bad)
		}
	}
	if _, err := resolvePath(tree.S32(1), ""); err == nil {
		t.Error("scalar root has no frames")
	}
}

func TestBrowserModel_Navigation(t *testing.T) {
	m := newBrowserModel("<test>", "json", nil)
	m.Update(loadedMsg{value: sample()})

	if got := m.View(); !strings.Contains(got, "$") || !strings.Contains(got, "name") {
		t.Fatalf("View after load = %s", got)
	}

	m.Update(key("j"))
	m.Update(key("enter"))
	if m.path() != "$.items" {
		t.Fatalf("path = %s, want $.items", m.path())
	}

	m.Update(key("j"))
	m.Update(key("enter"))
	m.Update(key("enter"))
	if m.state != stateDetail || m.title != "$.items.1.id" {
		t.Fatalf("state = %v, title = %q", m.state, m.title)
	}
	if !strings.Contains(m.View(), "$.items.1.id") {
		t.Error("detail view should show the path")
	}

	m.Update(key("esc"))
	m.Update(key("h"))
	m.Update(key("h"))
	if m.path() != "$" || m.state != stateBrowse {
		t.Errorf("path = %s, state = %v after backing out", m.path(), m.state)
	}

	m.Update(key("/"))
	if m.state != stateJump {
		t.Fatalf("state = %v, want jump", m.state)
	}
	m.Update(key("items.0"))
	m.Update(key("enter"))
	if m.path() != "$.items.0" {
		t.Errorf("path after jump = %s", m.path())
	}

	m.Update(key("/"))
	m.Update(key("nope"))
	m.Update(key("enter"))
	if m.status == "" {
		t.Error("failed jump should set a status")
	}
	if m.path() != "$.items.0" {
		t.Errorf("failed jump moved to %s", m.path())
	}
}

func TestBrowserModel_ScalarRoot(t *testing.T) {
	m := newBrowserModel("<test>", "json", nil)
	m.Update(loadedMsg{value: tree.String("only")})
	if m.state != stateDetail {
		t.Errorf("state = %v, want detail", m.state)
	}
	m.Update(key("esc"))
	if m.state != stateDetail {
		t.Error("scalar root has nothing to go back to")
	}
}

func TestBrowserModel_Load(t *testing.T) {
	m := newBrowserModel("doc.json", "auto", []byte(`{"a": [1, 2]}`))
	msg := m.Init()()
	m.Update(msg)
	if m.err != nil {
		t.Fatal(m.err)
	}
	if m.path() != "$" || len(m.stack[0].list) != 1 {
		t.Errorf("stack = %+v", m.stack)
	}

	bad := newBrowserModel("doc.json", "auto", []byte(`{`))
	bad.Update(bad.Init()())
	if bad.err == nil || !strings.Contains(bad.View(), "Error") {
		t.Error("decode failure should be shown")
	}
}
