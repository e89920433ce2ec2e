package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/rpmdlab/internal/phase"
)

const (
	historyCapacity  = 400
	stepsPerFrame    = 5
	liveGraphHeight  = 10
	liveGraphWidth   = 70
	defaultFrameRate = 30
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model is the Bubble Tea state for the live oscillator view.
type Model struct {
	force      phase.Force
	energy     phase.EnergyFunc
	mass       float64
	integrator phase.Integrator

	state     phase.State
	initial   phase.State
	t, dt     float64
	frameRate int
	running   bool

	forceName string
	history   []float64
	energy0   float64
}

func NewModel(f phase.Force, energy phase.EnergyFunc, mass float64, integ phase.Integrator, s0 phase.State, dt float64, forceName string) Model {
	return Model{
		force:      f,
		energy:     energy,
		mass:       mass,
		integrator: integ,
		state:      s0,
		initial:    s0,
		dt:         dt,
		frameRate:  defaultFrameRate,
		running:    true,
		forceName:  forceName,
		history:    make([]float64, 0, historyCapacity),
		energy0:    energy(s0),
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.frameRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.state = m.initial
			m.t = 0
			m.history = m.history[:0]
		case "v":
			// Momentum reversal on the fly: the trajectory walks back
			// through its own positions.
			m.state.P = -m.state.P
		}
		return m, nil

	case TickMsg:
		if m.running {
			for i := 0; i < stepsPerFrame; i++ {
				m.state = m.integrator.Step(m.force, m.mass, m.state, m.dt)
				m.t += m.dt
			}
			m.history = append(m.history, m.state.Q)
			if len(m.history) > historyCapacity {
				m.history = m.history[1:]
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("rpmdlab live — %s oscillator", m.forceName)))
	b.WriteString("\n")

	if len(m.history) > 1 {
		graph := asciigraph.Plot(m.history,
			asciigraph.Height(liveGraphHeight),
			asciigraph.Width(liveGraphWidth),
			asciigraph.Caption("q(t)"),
		)
		b.WriteString(graphStyle.Render(graph))
		b.WriteString("\n")
	}

	e := m.energy(m.state)
	rows := []struct {
		label string
		value string
	}{
		{"time", fmt.Sprintf("%.2f", m.t)},
		{"position", fmt.Sprintf("%+.4f", m.state.Q)},
		{"momentum", fmt.Sprintf("%+.4f", m.state.P)},
		{"energy", fmt.Sprintf("%.6f", e)},
		{"drift", fmt.Sprintf("%.2e", e-m.energy0)},
	}
	for _, row := range rows {
		b.WriteString(labelStyle.Render(row.label))
		b.WriteString(valueStyle.Render(row.value))
		b.WriteString("\n")
	}

	status := "running"
	if !m.running {
		status = "paused"
	}
	b.WriteString(helpStyle.Render(fmt.Sprintf("[%s]  space pause · v reverse momentum · r reset · q quit", status)))
	b.WriteString("\n")
	return b.String()
}
