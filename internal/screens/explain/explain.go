// Package explain shows an LLM explanation for a topic while it streams in
// from the tutor in the background.
package explain

import (
	"context"
	"strings"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/hemepath/internal/diagnosis"
	"github.com/abhisek/hemepath/internal/router"
	"github.com/abhisek/hemepath/internal/screen"
	"github.com/abhisek/hemepath/internal/tutor"
	"github.com/abhisek/hemepath/internal/ui/components"
	"github.com/abhisek/hemepath/internal/ui/layout"
)

const pollInterval = 150 * time.Millisecond

type pollMsg struct{}

// Screen requests an explanation on Init and polls until it arrives.
type Screen struct {
	deps    *screen.Deps
	topic   tutor.Topic
	spinner spinner.Model
	cancel  context.CancelFunc

	done   bool
	result *tutor.Explanation
	err    error
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates an explanation screen for topic.
func New(deps *screen.Deps, topic tutor.Topic) *Screen {
	return &Screen{
		deps:    deps,
		topic:   topic,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

// Push returns a command that opens an explanation for topic, or nil when
// no tutor is configured.
func Push(deps *screen.Deps, topic tutor.Topic) tea.Cmd {
	if deps == nil || deps.Tutor == nil {
		return nil
	}
	return router.Push(New(deps, topic))
}

func (s *Screen) Title() string { return "Explain" }

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) Init() tea.Cmd {
	if s.deps.Tutor == nil {
		s.done = true
		s.err = tutor.ErrUnavailable
		return nil
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.deps.Tutor.Request(ctx, s.topic)
	return tea.Batch(s.spinner.Tick, poll())
}

func poll() tea.Cmd {
	return tea.Tick(pollInterval, func(time.Time) tea.Msg { return pollMsg{} })
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case pollMsg:
		if s.done {
			return s, nil
		}
		e, ok, err := s.deps.Tutor.Consume()
		if !ok {
			return s, poll()
		}
		s.done, s.result, s.err = true, e, err
		if s.cancel != nil {
			s.cancel()
		}
		return s, nil

	case spinner.TickMsg:
		if s.done {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyPressMsg:
		if msg.String() == "enter" && s.done {
			return s, router.Pop
		}
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	st := s.deps.Styles()
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(st.Title.Width(cw).Render(s.topic.Title))
	b.WriteString("\n\n")

	switch {
	case !s.done:
		b.WriteString(s.spinner.View() + " " + st.Hint.Render("Asking the tutor..."))
	case s.err != nil:
		b.WriteString(st.Warning.Render("Explanation unavailable."))
		b.WriteString("\n")
		b.WriteString(st.Hint.Render(layout.Wrap(s.err.Error(), cw)))
	default:
		b.WriteString(components.Card(st, s.render(cw-4), cw))
	}

	b.WriteString("\n\n")
	b.WriteString(st.Hint.Render(diagnosis.Disclaimer))
	return components.Center(b.String(), width, height)
}

func (s *Screen) render(w int) string {
	st := s.deps.Styles()
	e := s.result

	var b strings.Builder
	b.WriteString(st.Body.Render(layout.Wrap(e.Summary, w)))
	if len(e.KeyPoints) > 0 {
		b.WriteString("\n\n" + st.Label.Render("Key points") + "\n")
		for _, p := range e.KeyPoints {
			b.WriteString(st.Body.Render(layout.Wrap("• "+p, w)) + "\n")
		}
	}
	if len(e.Pitfalls) > 0 {
		b.WriteString("\n" + st.Label.Render("Pitfalls") + "\n")
		for _, p := range e.Pitfalls {
			b.WriteString(st.Warning.Render(layout.Wrap("! "+p, w)) + "\n")
		}
	}
	if e.Cached {
		b.WriteString("\n" + st.Hint.Render("(cached)"))
	}
	return strings.TrimRight(b.String(), "\n")
}
