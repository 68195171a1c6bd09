package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lemaire-dev/yasolve/internal/sat"
	"github.com/lemaire-dev/yasolve/internal/search"
)

var (
	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	doneStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	failStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
)

type statsMsg search.Stats

type doneMsg struct {
	status sat.LBool
	err    error
}

type dashboardModel struct {
	stats  search.Stats
	status sat.LBool
	err    error
	done   bool
}

func (m dashboardModel) Init() tea.Cmd {
	return nil
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statsMsg:
		m.stats = search.Stats(msg)
		return m, nil
	case doneMsg:
		m.done = true
		m.status = msg.status
		m.err = msg.err
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m dashboardModel) View() string {
	row := func(label string, value any) string {
		return fmt.Sprintf("%s %s\n", labelStyle.Render(label+":"), valueStyle.Render(fmt.Sprint(value)))
	}

	view := labelStyle.Render("yasolve — live search stats") + "\n\n"
	view += row("iterations", m.stats.Iterations)
	view += row("conflicts", m.stats.Conflicts)
	view += row("restarts", m.stats.Restarts)
	view += row("decisions", m.stats.Decisions)
	view += row("elapsed", m.stats.Elapsed)

	if m.done {
		switch {
		case m.err != nil:
			view += "\n" + failStyle.Render("error: "+m.err.Error())
		case m.status == sat.True:
			view += "\n" + doneStyle.Render("SATISFIABLE")
		case m.status == sat.False:
			view += "\n" + failStyle.Render("UNSATISFIABLE")
		default:
			view += "\n" + failStyle.Render("UNKNOWN")
		}
	} else {
		view += "\n" + valueStyle.Render("press q to quit")
	}
	return view
}

// runWithTUI drives s's search in the background while a bubbletea program
// renders its progress in the foreground, returning once the search (or a
// user quit) ends the program.
func runWithTUI(s *sat.Solver, opts search.Options) (sat.LBool, error) {
	p := tea.NewProgram(dashboardModel{})

	opts.OnStats = func(st search.Stats) {
		recordMetrics(st)
		p.Send(statsMsg(st))
	}

	go func() {
		d := search.NewDriver(s, opts)
		status := d.Solve()
		p.Send(doneMsg{status: status})
	}()

	final, err := p.Run()
	if err != nil {
		return sat.Unknown, err
	}
	m := final.(dashboardModel)
	if !m.done {
		return sat.Unknown, nil
	}
	return m.status, m.err
}
