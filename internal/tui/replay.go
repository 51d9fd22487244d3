// Package tui is the interactive replay front end: both algorithm traces
// of a comparison session played side by side under one shared cursor.
package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hullscope/hullscope/internal/playback"
	"github.com/hullscope/hullscope/internal/session"
	"github.com/hullscope/hullscope/internal/trace"
	"github.com/hullscope/hullscope/internal/viz"
)

const (
	paneWidth  = 36
	paneHeight = 14

	minInterval = 50 * time.Millisecond
	maxInterval = 3 * time.Second
)

var (
	canvasStyle  = lipgloss.NewStyle().Padding(0, 1)
	paneTitle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	focusedTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	descStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Width(paneWidth + 2).Height(2).Padding(0, 1)
	statsStyle   = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(0, 2).Width(36)
)

// TickMsg carries the scheduler serial it was armed for, so ticks from a
// replaced arm can be recognized and dropped.
type TickMsg struct {
	Serial int
	Time   time.Time
}

// Model drives one replay session. The controller and scheduler are
// shared pointers, so the value copies bubbletea makes all steer the same
// cursor.
type Model struct {
	sess  *session.Session
	ctrl  *playback.Controller
	sched *playback.ManualScheduler

	focus    trace.Algorithm
	autoPlay bool
	showHelp bool
}

func NewModel(sess *session.Session, interval time.Duration, autoPlay bool) Model {
	sched := &playback.ManualScheduler{}
	ctrl := playback.NewController(sched, interval)
	ctrl.Load(sess.Jarvis().Trace, sess.Graham().Trace)

	return Model{
		sess:     sess,
		ctrl:     ctrl,
		sched:    sched,
		focus:    trace.Jarvis,
		autoPlay: autoPlay,
	}
}

func (m Model) Init() tea.Cmd {
	if m.autoPlay {
		m.ctrl.Play()
		if m.ctrl.Playing() {
			return m.tickCmd()
		}
	}
	return nil
}

// tickCmd schedules the next tick for the current arm. The serial taken
// here is compared on arrival; a mismatch means the arm was replaced
// while the tick was in flight.
func (m Model) tickCmd() tea.Cmd {
	serial := m.sched.Serial()
	return tea.Tick(m.sched.Interval(), func(t time.Time) tea.Msg {
		return TickMsg{Serial: serial, Time: t}
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.ctrl.Close()
			return m, tea.Quit
		case " ":
			wasPlaying := m.ctrl.Playing()
			m.ctrl.Play()
			if !wasPlaying && m.ctrl.Playing() {
				return m, m.tickCmd()
			}
		case "r":
			m.ctrl.Reset()
		case "[":
			m.ctrl.StepBackward()
		case "]":
			m.ctrl.StepForward()
		case "+", "=":
			m.ctrl.SetSpeed(clampInterval(m.ctrl.Interval() * 3 / 4))
			if m.ctrl.Playing() {
				return m, m.tickCmd()
			}
		case "-", "_":
			m.ctrl.SetSpeed(clampInterval(m.ctrl.Interval() * 4 / 3))
			if m.ctrl.Playing() {
				return m, m.tickCmd()
			}
		case "tab":
			if m.focus == trace.Jarvis {
				m.focus = trace.Graham
			} else {
				m.focus = trace.Jarvis
			}
		case "1":
			m.focus = trace.Jarvis
		case "2":
			m.focus = trace.Graham
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if msg.Serial != m.sched.Serial() {
			return m, nil
		}
		m.sched.Fire()
		if m.sched.Running() {
			return m, m.tickCmd()
		}
	}
	return m, nil
}

func clampInterval(iv time.Duration) time.Duration {
	if iv < minInterval {
		return minInterval
	}
	if iv > maxInterval {
		return maxInterval
	}
	return iv
}

// View renders both panes over the shared cursor plus the stats column.
func (m Model) View() string {
	if m.showHelp {
		return helpOverlay
	}

	pos := m.ctrl.Position()
	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		m.pane(trace.Jarvis, pos),
		m.pane(trace.Graham, pos),
	)
	body := lipgloss.JoinHorizontal(lipgloss.Top, panes, m.statsPane(pos))
	return viz.HeaderStyle.Render("hullscope replay") + "\n" + body + "\n"
}

// pane renders one algorithm at the shared position. The cursor runs to
// the longer trace; this trace clamps, holding its final picture while
// the other finishes.
func (m Model) pane(algo trace.Algorithm, pos int) string {
	tr := m.sess.Trace(algo)
	frame := viz.Frame(m.sess.Project(algo, pos), paneWidth, paneHeight)

	clamped := pos
	if tr.Len() > 0 && clamped >= tr.Len() {
		clamped = tr.Len() - 1
	}

	title := fmt.Sprintf("%s  %d/%d", algo.DisplayName(), clamped+1, tr.Len())
	style := paneTitle
	if algo == m.focus {
		style = focusedTitle
		title = "> " + title
	} else {
		title = "  " + title
	}

	desc := ""
	if tr.Len() > 0 {
		desc = tr.At(clamped).Description
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		style.Render(title),
		canvasStyle.Render(frame),
		descStyle.Render(desc),
	)
}

func (m Model) statsPane(pos int) string {
	sum := m.sess.Summary()
	total := m.ctrl.MaxSteps()

	status := strings.ToUpper(m.ctrl.State().String())
	statusStyle := viz.StatusPaused
	if m.ctrl.Playing() {
		statusStyle = viz.StatusPlaying
	}

	frac := 0.0
	if total > 1 {
		frac = float64(pos) / float64(total-1)
	}

	var s strings.Builder
	s.WriteString(statusStyle.Render(status) + "\n\n")
	s.WriteString(viz.ProgressBar(frac, 24) + "\n")
	s.WriteString(viz.MetricLabel.Render(fmt.Sprintf("step %d of %d", pos+1, total)) + "\n")
	s.WriteString(viz.Separator(24) + "\n")

	s.WriteString(metric("Speed", m.ctrl.Interval().String()))
	s.WriteString(metric("Points", strconv.Itoa(m.sess.NumPoints())))
	s.WriteString(metric("Faster", sum.Faster.DisplayName()))
	s.WriteString(metric("Ratio", fmt.Sprintf("%.2fx", sum.SpeedRatio)))
	s.WriteString(metric("Hulls", hullsLine(m.sess)))
	s.WriteString(metric("Steps", fmt.Sprintf("%d / %d", sum.JarvisSteps, sum.GrahamSteps)))
	s.WriteString(viz.MetricLabel.Render(fmt.Sprintf("%-8s", "Work")) +
		viz.SparklineChart(workSeries(m.sess.Trace(m.focus)), 24) + "\n")

	s.WriteString(viz.KeyHint.Render("\nSP:Play  [ ]:Step  R:Reset\nTab:Focus  +/-:Speed  ?:Help  Q:Quit"))
	return statsStyle.Render(s.String())
}

// workSeries is the per-step working-set size of one trace: the partial
// hull for the gift wrap, the chain stack for the scan. Pops show up as
// dips, which is what makes the two traces look different at a glance.
func workSeries(tr trace.Trace) []float64 {
	out := make([]float64, tr.Len())
	for i := 0; i < tr.Len(); i++ {
		st := tr.At(i)
		switch {
		case st.Kind == trace.KindFinal:
			out[i] = float64(len(st.FinalHull))
		case st.Stack != nil:
			out[i] = float64(len(st.Stack))
		default:
			out[i] = float64(len(st.HullSoFar))
		}
	}
	return out
}

func metric(label, value string) string {
	return viz.MetricLabel.Render(fmt.Sprintf("%-8s", label)) + viz.MetricValue.Render(value) + "\n"
}

func hullsLine(sess *session.Session) string {
	j, g := sess.Jarvis().HullSize, sess.Graham().HullSize
	if sess.Summary().HullSizesMatch {
		return fmt.Sprintf("%d vertices, agree", j)
	}
	return fmt.Sprintf("%d vs %d, DISAGREE", j, g)
}

const helpOverlay = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Play / pause replay      ║
║  [ / ]    - Step backward / forward  ║
║  R        - Restart from step one    ║
║  + / -    - Faster / slower          ║
║  Tab      - Switch focused pane      ║
║  1 / 2    - Focus Jarvis / Graham    ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝
`

// Run opens the replay UI over sess and blocks until the user quits.
func Run(sess *session.Session, interval time.Duration, autoPlay bool) error {
	_, err := tea.NewProgram(NewModel(sess, interval, autoPlay), tea.WithAltScreen()).Run()
	return err
}
