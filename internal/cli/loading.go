package cli

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/connorhpbrn/findtravel/internal/cli/formatter"
)

// ErrCancelled is returned when the traveler bails out of a long-running
// generation step with ctrl+c or esc.
var ErrCancelled = errors.New("cancelled")

// statusInterval is how long each rotating status line stays on screen.
const statusInterval = 3 * time.Second

type workDoneMsg struct{ err error }

type statusTickMsg struct{}

// loadingModel renders a spinner with rotating status lines while a
// background work function runs. The model quits as soon as the work
// reports back.
type loadingModel struct {
	spinner  spinner.Model
	messages []string
	idx      int
	work     func() error
	cancel   context.CancelFunc
	err      error
	aborted  bool
}

func newLoadingModel(messages []string, work func() error, cancel context.CancelFunc) loadingModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(formatter.ColorPurple)
	return loadingModel{
		spinner:  sp,
		messages: messages,
		work:     work,
		cancel:   cancel,
	}
}

func (m loadingModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		func() tea.Msg { return workDoneMsg{err: m.work()} },
		tea.Tick(statusInterval, func(time.Time) tea.Msg { return statusTickMsg{} }),
	)
}

func (m loadingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case workDoneMsg:
		m.err = msg.err
		return m, tea.Quit

	case statusTickMsg:
		m.idx = (m.idx + 1) % len(m.messages)
		return m, tea.Tick(statusInterval, func(time.Time) tea.Msg { return statusTickMsg{} })

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			// Cancel the work and keep spinning until it reports back,
			// so the goroutine never outlives the program.
			m.aborted = true
			if m.cancel != nil {
				m.cancel()
			}
			return m, nil
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m loadingModel) View() string {
	status := m.messages[m.idx]
	if m.aborted {
		status = "Stopping..."
	}
	return "\n  " + m.spinner.View() + formatter.Dim(status) + "\n"
}

// runWithLoading executes work in the background while a spinner plays,
// rotating through the given status messages. It returns the work's
// error, or ErrCancelled when the traveler aborted.
func runWithLoading(ctx context.Context, messages []string, work func(context.Context) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := newLoadingModel(messages, func() error { return work(ctx) }, cancel)
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return err
	}

	lm := final.(loadingModel)
	if lm.aborted {
		return ErrCancelled
	}
	return lm.err
}
