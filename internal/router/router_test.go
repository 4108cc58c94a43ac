package router

import (
	"slices"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/hemepath/internal/screen"
)

type fakeScreen struct {
	title   string
	inits   int
	updates int
}

func (s *fakeScreen) Init() tea.Cmd                           { s.inits++; return nil }
func (s *fakeScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { s.updates++; return s, nil }
func (s *fakeScreen) View(int, int) string                    { return "view:" + s.title }
func (s *fakeScreen) Title() string                           { return s.title }

func screens(titles ...string) []*fakeScreen {
	out := make([]*fakeScreen, len(titles))
	for i, t := range titles {
		out[i] = &fakeScreen{title: t}
	}
	return out
}

func TestRouter_Navigation(t *testing.T) {
	s := screens("Home", "Cases", "Summary", "Pathway")

	tests := []struct {
		name  string
		msgs  []tea.Msg
		trail []string
	}{
		{"push", []tea.Msg{PushScreenMsg{s[1]}}, []string{"Home", "Cases"}},
		{"push then pop", []tea.Msg{PushScreenMsg{s[1]}, PopScreenMsg{}}, []string{"Home"}},
		{"pop at root", []tea.Msg{PopScreenMsg{}, PopScreenMsg{}}, []string{"Home"}},
		{"replace keeps depth", []tea.Msg{PushScreenMsg{s[1]}, ReplaceScreenMsg{s[2]}}, []string{"Home", "Summary"}},
		{"replace root", []tea.Msg{ReplaceScreenMsg{s[3]}}, []string{"Pathway"}},
		{"pop to root", []tea.Msg{PushScreenMsg{s[1]}, PushScreenMsg{s[2]}, PopToRootMsg{}}, []string{"Home"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(s[0])
			for _, msg := range tt.msgs {
				r.Update(msg)
			}
			if got := r.Trail(); !slices.Equal(got, tt.trail) {
				t.Errorf("trail = %v, want %v", got, tt.trail)
			}
			if r.Depth() != len(tt.trail) {
				t.Errorf("depth = %d", r.Depth())
			}
			if got := r.Active().Title(); got != tt.trail[len(tt.trail)-1] {
				t.Errorf("active = %q", got)
			}
		})
	}
}

func TestRouter_InitRunsOnOpen(t *testing.T) {
	s := screens("Home", "Flow", "Summary")
	r := New(s[0])
	r.Push(s[1])
	r.Replace(s[2])
	if s[0].inits != 0 || s[1].inits != 1 || s[2].inits != 1 {
		t.Errorf("inits = %d %d %d", s[0].inits, s[1].inits, s[2].inits)
	}
}

func TestRouter_ForwardsToActive(t *testing.T) {
	s := screens("Home", "Flow")
	r := New(s[0])
	r.Push(s[1])
	r.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	if s[0].updates != 0 || s[1].updates != 1 {
		t.Errorf("updates = %d %d", s[0].updates, s[1].updates)
	}
	if got := r.View(80, 24); got != "view:Flow" {
		t.Errorf("view = %q", got)
	}
}

func TestCommands(t *testing.T) {
	s := &fakeScreen{title: "Pathway"}
	if msg, ok := Push(s)().(PushScreenMsg); !ok || msg.Screen != s {
		t.Errorf("Push() = %#v", msg)
	}
	if msg, ok := Replace(s)().(ReplaceScreenMsg); !ok || msg.Screen != s {
		t.Errorf("Replace() = %#v", msg)
	}
	if _, ok := Pop().(PopScreenMsg); !ok {
		t.Error("Pop() is not PopScreenMsg")
	}
	if _, ok := PopToRoot().(PopToRootMsg); !ok {
		t.Error("PopToRoot() is not PopToRootMsg")
	}
}
