package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arjun/codequest/internal/config"
	"github.com/arjun/codequest/internal/orchestrator"
	"github.com/arjun/codequest/internal/router"
	"github.com/arjun/codequest/internal/screen"
	"github.com/arjun/codequest/internal/screens/dashboard"
	"github.com/arjun/codequest/internal/screens/practice"
	"github.com/arjun/codequest/internal/ui/layout"
)

// progressReporter is implemented by screens that know the run's
// curriculum position, for the header readout.
type progressReporter interface {
	Progress() (done, total int)
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates an AppModel opening on the slot dashboard.
func newAppModel(orch *orchestrator.Orchestrator, cfg config.Config) AppModel {
	dash := dashboard.New(orch, cfg.DefaultSlot)
	return AppModel{
		router: router.New(dash),
	}
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	done, total := 0, 0
	if pr, ok := active.(progressReporter); ok {
		done, total = pr.Progress()
	}
	header := layout.RenderHeader(title, done, total, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); hints != nil {
			footerHints = hints
		}
	}
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program on the slot dashboard.
func Run(orch *orchestrator.Orchestrator, cfg config.Config) error {
	return runProgram(newAppModel(orch, cfg))
}

// RunAuto starts or resumes the given slot and opens directly in practice.
func RunAuto(orch *orchestrator.Orchestrator, saveID string) error {
	r, err := orch.StartOrResumeRun(context.Background(), saveID)
	if err != nil {
		return fmt.Errorf("start run: %w", err)
	}
	m := AppModel{router: router.New(practice.New(orch, r))}
	return runProgram(m)
}

func runProgram(m AppModel) error {
	p := tea.NewProgram(m)
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
