// Package router keeps the stack of open screens. Screens navigate by
// returning the commands below instead of touching the stack directly.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/hemepath/internal/screen"
)

type (
	PushScreenMsg    struct{ Screen screen.Screen }
	ReplaceScreenMsg struct{ Screen screen.Screen }
	PopScreenMsg     struct{}
	PopToRootMsg     struct{}
)

// Push opens s above the active screen.
func Push(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return PushScreenMsg{Screen: s} }
}

// Replace swaps the active screen for s, e.g. a finished drill for its summary.
func Replace(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return ReplaceScreenMsg{Screen: s} }
}

// Pop closes the active screen. It is a tea.Cmd itself.
func Pop() tea.Msg { return PopScreenMsg{} }

// PopToRoot closes everything above the home screen.
func PopToRoot() tea.Msg { return PopToRootMsg{} }

// Router is a stack of screens. The bottom screen is never popped.
type Router struct {
	stack []screen.Screen
}

func New(root screen.Screen) *Router {
	return &Router{stack: []screen.Screen{root}}
}

func (r *Router) top() int { return len(r.stack) - 1 }

func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

func (r *Router) Replace(s screen.Screen) tea.Cmd {
	r.stack[r.top()] = s
	return s.Init()
}

func (r *Router) Pop() {
	if r.top() > 0 {
		r.stack[r.top()] = nil
		r.stack = r.stack[:r.top()]
	}
}

func (r *Router) PopToRoot() {
	clear(r.stack[1:])
	r.stack = r.stack[:1]
}

func (r *Router) Active() screen.Screen { return r.stack[r.top()] }

func (r *Router) Depth() int { return len(r.stack) }

// Trail lists the titles of the open screens, root first.
func (r *Router) Trail() []string {
	titles := make([]string, len(r.stack))
	for i, s := range r.stack {
		titles[i] = s.Title()
	}
	return titles
}

// Update applies navigation messages and hands everything else to the
// active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case ReplaceScreenMsg:
		return r.Replace(msg.Screen)
	case PopScreenMsg:
		r.Pop()
		return nil
	case PopToRootMsg:
		r.PopToRoot()
		return nil
	}
	next, cmd := r.Active().Update(msg)
	r.stack[r.top()] = next
	return cmd
}

func (r *Router) View(width, height int) string {
	return r.Active().View(width, height)
}
