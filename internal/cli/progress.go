package cli

import (
	"fmt"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/tourbound/tourbound/pkg/solver"
)

// solveOutcome collects the search result. finished is closed after res and
// err are set, so any number of waiters can observe the outcome.
type solveOutcome struct {
	res      *solver.Result
	err      error
	finished chan struct{}
}

// solveDone signals the bubbletea event loop that the search ended.
type solveDone struct{}

type tickMsg time.Time

// progressModel is the bubbletea model showing live per-worker counters
// while a search runs.
type progressModel struct {
	search  *solver.Search
	outcome *solveOutcome
	start   time.Time

	stats    []solver.WorkerStat
	finished bool
}

func newProgressModel(search *solver.Search, outcome *solveOutcome) progressModel {
	return progressModel{
		search:  search,
		outcome: outcome,
		start:   time.Now(),
		stats:   search.Snapshot(),
	}
}

func tick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func waitDone(outcome *solveOutcome) tea.Cmd {
	return func() tea.Msg {
		<-outcome.finished
		return solveDone{}
	}
}

func (m progressModel) Init() tea.Cmd {
	return tea.Batch(tick(), waitDone(m.outcome))
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.stats = m.search.Snapshot()
		return m, tick()
	case solveDone:
		m.finished = true
		return m, tea.Quit
	case tea.KeyMsg:
		// The search itself cannot be interrupted; quitting only hides the
		// progress view.
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m progressModel) View() string {
	if m.finished {
		return ""
	}

	rows := make([][]string, len(m.stats))
	for i, ws := range m.stats {
		rows[i] = []string{
			strconv.Itoa(ws.ID),
			ws.State.String(),
			strconv.Itoa(ws.StackLen),
			strconv.FormatInt(ws.Expanded, 10),
			strconv.FormatInt(ws.Pruned, 10),
			strconv.FormatInt(ws.Champions, 10),
			strconv.FormatInt(ws.Donations, 10),
		}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Worker", "State", "Stack", "Expanded", "Pruned", "Champions", "Donations").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 1 && row < len(m.stats) {
				switch m.stats[row].State {
				case solver.WorkerRunning:
					return StyleSuccess
				case solver.WorkerParked:
					return StyleWarning
				default:
					return StyleDim
				}
			}
			return lipgloss.NewStyle()
		})

	header := StyleTitle.Render("Searching") + " " +
		StyleDim.Render(fmt.Sprintf("(%s)", time.Since(m.start).Round(time.Millisecond)))

	footer := StyleDim.Render("q hide view (search continues)")
	if cities, cost, ok := m.search.Best(); ok {
		footer = StyleDim.Render("best so far: ") +
			StyleNumber.Render(strconv.Itoa(cost)) +
			StyleDim.Render("  "+fmtTour(cities)) + "\n" + footer
	}

	return header + "\n\n" + t.Render() + "\n\n" + footer + "\n"
}

// runWithProgress runs the search under a live progress view and returns its
// result. If the user dismisses the view early, the search keeps running and
// runWithProgress still waits for it.
func runWithProgress(search *solver.Search) (*solver.Result, error) {
	outcome := &solveOutcome{finished: make(chan struct{})}
	go func() {
		outcome.res, outcome.err = search.Run()
		close(outcome.finished)
	}()

	// Errors here mean the view could not run (e.g. no TTY); the search is
	// unaffected either way.
	_, _ = tea.NewProgram(newProgressModel(search, outcome)).Run()

	<-outcome.finished
	return outcome.res, outcome.err
}
