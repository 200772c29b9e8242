package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/armchain/internal/chain"
)

const (
	defaultCols     = 60
	defaultRows     = 22
	minCols         = 20
	minRows         = 8
	statsWidth      = 40
	historyCapacity = 300
	maxFrameTime    = 0.1
)

type TickMsg time.Time

// Model holds the chain, its raster and the telemetry shown beside it.
type Model struct {
	chain        *chain.Chain
	worldW       float64
	worldH       float64
	fps          int
	canvas       *Canvas
	running      bool
	lastTick     time.Time
	elapsed      float64
	reachHistory []float64
	theme        int
	styles       styles
	showHelp     bool
}

// NewModel renders c, whose coordinates span worldW x worldH, ticking at fps.
func NewModel(c *chain.Chain, worldW, worldH float64, fps int) Model {
	if fps <= 0 {
		fps = 60
	}
	return Model{
		chain:        c,
		worldW:       worldW,
		worldH:       worldH,
		fps:          fps,
		canvas:       NewCanvas(defaultCols, defaultRows),
		running:      true,
		reachHistory: make([]float64, 0, historyCapacity),
		styles:       stylesFor(Themes[0]),
	}
}

// WithTheme returns m starting on the named theme; unknown names select the
// first theme.
func (m Model) WithTheme(name string) Model {
	t := GetTheme(name)
	m.theme = themeIndex(t.Name)
	m.styles = stylesFor(t)
	return m
}

// Run starts the TUI with mouse support and blocks until the user quits.
func Run(c *chain.Chain, worldW, worldH float64, fps int, theme string) error {
	m := NewModel(c, worldW, worldH, fps).WithTheme(theme)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and steps the simulation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "a", "enter":
			m.chain.Append()
		case "d", "x", "backspace":
			m.chain.RemoveTail()
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		case "t":
			m.theme = (m.theme + 1) % len(Themes)
			m.styles = stylesFor(Themes[m.theme])
		case "?":
			m.showHelp = !m.showHelp
		}
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			break
		}
		switch msg.Button {
		case tea.MouseButtonLeft:
			m.chain.Append()
		case tea.MouseButtonRight:
			m.chain.RemoveTail()
		}
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case TickMsg:
		now := time.Time(msg)
		dt := 0.0
		if !m.lastTick.IsZero() {
			dt = now.Sub(m.lastTick).Seconds()
		}
		m.lastTick = now
		if m.running {
			m.step(dt)
		}
		return m, m.tick()
	}
	return m, nil
}

// step advances the chain by dt seconds, capped so a stalled terminal does
// not make the arms jump.
func (m *Model) step(dt float64) {
	if dt > maxFrameTime {
		dt = maxFrameTime
	}
	m.chain.Update(dt)
	m.elapsed += dt

	m.reachHistory = append(m.reachHistory, m.chain.Reach())
	if len(m.reachHistory) > historyCapacity {
		m.reachHistory = m.reachHistory[1:]
	}
}

func (m *Model) reset() {
	m.chain.Reset()
	m.elapsed = 0
	m.reachHistory = m.reachHistory[:0]
}

func (m *Model) resize(w, h int) {
	cols := w - statsWidth - 8
	rows := h - 4
	if cols < minCols {
		cols = minCols
	}
	if rows < minRows {
		rows = minRows
	}
	m.canvas = NewCanvas(cols, rows)
}

// project maps world coordinates onto canvas sub-pixels, preserving aspect
// ratio and centring the world.
func (m *Model) project(p chain.Vec2) (int, int, float64) {
	cw, ch := float64(m.canvas.SubWidth()), float64(m.canvas.SubHeight())
	scale := math.Min(cw/m.worldW, ch/m.worldH)
	ox := (cw - m.worldW*scale) / 2
	oy := (ch - m.worldH*scale) / 2
	return int(math.Round(ox + p.X*scale)), int(math.Round(oy + p.Y*scale)), scale
}

func (m *Model) draw() {
	m.canvas.Clear()
	joints := m.chain.RenderData()
	for _, j := range joints {
		if !j.HasParent {
			continue
		}
		x0, y0, _ := m.project(j.Parent)
		x1, y1, _ := m.project(j.Position)
		m.canvas.DrawLine(x0, y0, x1, y1)
	}
	for _, j := range joints {
		x, y, scale := m.project(j.Position)
		m.canvas.FillCircle(x, y, int(j.Radius*scale))
	}
}

// View renders the TUI interface.
func (m Model) View() string {
	m.draw()
	st := m.styles
	theme := Themes[m.theme]

	var s strings.Builder
	s.WriteString(st.header.Render(GradientText("ARMCHAIN", theme.Primary, theme.Accent)) + "\n")
	if m.running {
		s.WriteString(st.value.Render("RUNNING") + "\n\n")
	} else {
		s.WriteString(st.paused.Render("PAUSED") + "\n\n")
	}

	tail := m.chain.Tail()
	s.WriteString(st.label.Render("Segments") + st.value.Render(fmt.Sprintf("%d", m.chain.Len())) + "\n")
	s.WriteString(st.label.Render("Tail") + st.value.Render(fmt.Sprintf("%.0f°", degrees(tail.Angle))) + "\n")
	s.WriteString(st.label.Render("Reach") + st.value.Render(fmt.Sprintf("%.1f", m.chain.Reach())) + "\n")
	s.WriteString(st.label.Render("Time") + st.value.Render(fmt.Sprintf("%.1fs", m.elapsed)) + "\n")

	if len(m.reachHistory) > 1 {
		chart := asciigraph.Plot(m.reachHistory, asciigraph.Height(5), asciigraph.Width(statsWidth-12), asciigraph.Caption("Reach"))
		s.WriteString(st.graph.Render(chart) + "\n")
	}
	s.WriteString(st.help.Render("LMB/A:Add RMB/D:Remove\nSP:Pause R:Reset T:Theme\n?:Help Q:Quit"))

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, st.canvas.Render(m.canvas.String()), st.stats.Render(s.String()))
	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║           KEYBOARD SHORTCUTS         ║
╠══════════════════════════════════════╣
║  Left click / A   - Add segment      ║
║  Right click / D  - Remove tail      ║
║  Space            - Pause/Resume     ║
║  R                - Reset to root    ║
║  T                - Cycle themes     ║
║  ?                - Toggle this help ║
║  Q                - Quit             ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}

// degrees converts an accumulated angle to [0, 360).
func degrees(rad float64) float64 {
	d := math.Mod(rad*180/math.Pi, 360)
	if d < 0 {
		d += 360
	}
	return d
}
