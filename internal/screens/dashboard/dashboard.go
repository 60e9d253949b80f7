// Package dashboard is the landing screen: save slots with their
// curriculum progress, most recently played first.
package dashboard

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arjun/codequest/internal/curriculum"
	"github.com/arjun/codequest/internal/orchestrator"
	"github.com/arjun/codequest/internal/router"
	"github.com/arjun/codequest/internal/run"
	"github.com/arjun/codequest/internal/screen"
	"github.com/arjun/codequest/internal/screens/practice"
	"github.com/arjun/codequest/internal/ui/components"
	"github.com/arjun/codequest/internal/ui/layout"
	"github.com/arjun/codequest/internal/ui/theme"
)

// slotsLoadedMsg carries the slot list from the store.
type slotsLoadedMsg struct {
	Slots []run.Summary
	Err   error
}

// runReadyMsg carries a started or resumed run.
type runReadyMsg struct {
	Run run.Run
	Err error
}

// DashboardScreen implements screen.Screen for the slot list.
type DashboardScreen struct {
	orch        *orchestrator.Orchestrator
	defaultSlot string
	slots       []run.Summary
	menu        components.Menu
	loaded      bool
	errMsg      string
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)

// New creates the dashboard. defaultSlot is opened by the "new slot" row
// when no slot with that name exists yet.
func New(orch *orchestrator.Orchestrator, defaultSlot string) *DashboardScreen {
	return &DashboardScreen{orch: orch, defaultSlot: defaultSlot}
}

func (d *DashboardScreen) Init() tea.Cmd {
	return d.loadSlots()
}

func (d *DashboardScreen) Title() string {
	return "Save Slots"
}

func (d *DashboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Play"},
		{Key: "X", Description: "Reset slot"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (d *DashboardScreen) loadSlots() tea.Cmd {
	return func() tea.Msg {
		slots, err := d.orch.ListSlots(context.Background())
		return slotsLoadedMsg{Slots: slots, Err: err}
	}
}

func (d *DashboardScreen) startRun(saveID string) tea.Cmd {
	return func() tea.Msg {
		r, err := d.orch.StartOrResumeRun(context.Background(), saveID)
		return runReadyMsg{Run: r, Err: err}
	}
}

func (d *DashboardScreen) hasDefaultSlot() bool {
	for _, s := range d.slots {
		if s.SaveID == d.defaultSlot {
			return true
		}
	}
	return false
}

// rebuildMenu regenerates the menu rows from the slot list, keeping the
// selection index when possible.
func (d *DashboardScreen) rebuildMenu() {
	total := curriculum.Len()
	items := make([]components.MenuItem, 0, len(d.slots)+1)

	for _, slot := range d.slots {
		saveID := slot.SaveID
		status := fmt.Sprintf("topic %d/%d · %d questions", slot.TopicPointer, total, slot.CompletedQuestions)
		if slot.Status == run.StatusCompleted {
			status = fmt.Sprintf("completed · %d questions", slot.CompletedQuestions)
		}
		items = append(items, components.MenuItem{
			Label:  fmt.Sprintf("%s · %s", saveID, status),
			Action: func() tea.Cmd { return d.startRun(saveID) },
		})
	}

	if !d.hasDefaultSlot() {
		items = append(items, components.MenuItem{
			Label:  fmt.Sprintf("start fresh (%s)", d.defaultSlot),
			Action: func() tea.Cmd { return d.startRun(d.defaultSlot) },
		})
	}

	selected := d.menu.Selected
	d.menu = components.NewMenu(items)
	if selected > 0 && selected < len(items) {
		d.menu.Selected = selected
	}
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case slotsLoadedMsg:
		if msg.Err != nil {
			d.errMsg = msg.Err.Error()
			return d, nil
		}
		d.slots = msg.Slots
		d.loaded = true
		d.rebuildMenu()
		return d, nil

	case runReadyMsg:
		if msg.Err != nil {
			d.errMsg = msg.Err.Error()
			return d, nil
		}
		p := practice.New(d.orch, msg.Run)
		return d, func() tea.Msg { return router.PushScreenMsg{Screen: p} }

	case tea.KeyMsg:
		return d.handleKey(msg)
	}
	return d, nil
}

func (d *DashboardScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if !d.loaded {
		return d, nil
	}

	if msg.String() == "x" && d.menu.Selected < len(d.slots) {
		saveID := d.slots[d.menu.Selected].SaveID
		return d, func() tea.Msg {
			if err := d.orch.ResetSlot(context.Background(), saveID); err != nil {
				return slotsLoadedMsg{Err: err}
			}
			slots, err := d.orch.ListSlots(context.Background())
			return slotsLoadedMsg{Slots: slots, Err: err}
		}
	}

	var cmd tea.Cmd
	d.menu, cmd = d.menu.Update(msg)
	return d, cmd
}

func (d *DashboardScreen) View(width, height int) string {
	if d.errMsg != "" {
		return theme.Incorrect.Render("Error: " + d.errMsg)
	}
	if !d.loaded {
		return theme.Hint.Render("  Loading save slots...")
	}

	s := theme.Title.Width(width).Render("Pick a save slot") + "\n\n"
	s += d.menu.View()

	return lipgloss.NewStyle().Padding(1, 4).Render(s)
}
