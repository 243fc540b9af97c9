package viz

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/UW-Physics-Undergrads-of-2024/sparc/internal/analysis"
	"github.com/UW-Physics-Undergrads-of-2024/sparc/internal/contour"
	"github.com/UW-Physics-Undergrads-of-2024/sparc/internal/export"
	"github.com/UW-Physics-Undergrads-of-2024/sparc/internal/mesh"
	"github.com/UW-Physics-Undergrads-of-2024/sparc/internal/potential"
)

const (
	// liveGridPoints keeps recomputes fast enough for keystroke latency.
	liveGridPoints = 141
	panFraction    = 0.2
	zoomFactor     = 0.8
)

// Model is the interactive field explorer: pan and zoom the contour
// view, adjust the mass configuration, and snapshot to SVG. Every
// change recomputes the field for the visible window.
type Model struct {
	cfg          potential.Config
	initialCfg   potential.Config
	centerX      float64
	centerY      float64
	halfWidth    float64
	initialWidth float64
	levels       int

	showLagrange bool
	shaded       bool
	showHelp     bool

	paramKeys []string
	selected  int

	width, height int

	xg, yg, z *mesh.Matrix
	stats     potential.Stats
	pts       []analysis.LagrangePoint
	status    string
}

func NewModel(cfg potential.Config, extent float64, levels int) Model {
	m := Model{
		cfg:          cfg,
		initialCfg:   cfg,
		halfWidth:    extent,
		initialWidth: extent,
		levels:       levels,
		showLagrange: true,
		paramKeys:    []string{"m1", "m2", "radius"},
		width:        100,
		height:       30,
	}
	m.recompute()
	return m
}

func (m *Model) recompute() {
	xs := mesh.Linspace(m.centerX-m.halfWidth, m.centerX+m.halfWidth, liveGridPoints)
	ys := mesh.Linspace(m.centerY-m.halfWidth, m.centerY+m.halfWidth, liveGridPoints)
	m.xg, m.yg = mesh.Meshgrid(xs, ys)

	z, stats, err := potential.EvaluateWithStats(m.cfg, m.xg, m.yg, 0)
	if err != nil {
		m.status = err.Error()
		return
	}
	m.z = z
	m.stats = stats
	m.pts = analysis.LagrangePoints(m.cfg)
	m.status = ""
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles key events; navigation and parameter edits trigger a
// synchronous recompute of the visible field.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "left", "h":
			m.centerX -= panFraction * m.halfWidth
			m.recompute()
		case "right", "l":
			m.centerX += panFraction * m.halfWidth
			m.recompute()
		case "up":
			m.centerY += panFraction * m.halfWidth
			m.recompute()
		case "down":
			m.centerY -= panFraction * m.halfWidth
			m.recompute()
		case "+", "=":
			m.halfWidth *= zoomFactor
			m.recompute()
		case "-", "_":
			m.halfWidth /= zoomFactor
			m.recompute()
		case "tab":
			m.selected = (m.selected + 1) % len(m.paramKeys)
		case "k":
			m.adjustParam(1.05)
		case "j":
			m.adjustParam(0.95)
		case "[":
			if m.levels > 2 {
				m.levels--
			}
		case "]":
			m.levels++
		case "L":
			m.showLagrange = !m.showLagrange
		case "b":
			m.shaded = !m.shaded
		case "s":
			m.saveSVG()
		case "r":
			m.cfg = m.initialCfg
			m.centerX, m.centerY = 0, 0
			m.halfWidth = m.initialWidth
			m.recompute()
		case "?":
			m.showHelp = !m.showHelp
		}
	}
	return m, nil
}

// adjustParam scales the selected parameter, rejecting edits that
// would invalidate the configuration (e.g. pushing m2 past m1).
func (m *Model) adjustParam(factor float64) {
	next := m.cfg
	switch m.paramKeys[m.selected] {
	case "m1":
		next.M1 *= factor
	case "m2":
		next.M2 *= factor
	case "radius":
		next.OrbitalRadius *= factor
	}
	if err := next.Validate(); err != nil {
		m.status = err.Error()
		return
	}
	m.cfg = next
	m.recompute()
}

func (m *Model) saveSVG() {
	levels := m.contourLevels()
	var pts []analysis.LagrangePoint
	if m.showLagrange {
		pts = m.pts
	}
	svg := export.ContourSVG(m.xg, m.yg, m.z, levels, m.cfg, pts, export.DefaultSVGOptions())

	name := fmt.Sprintf("sparc_%d.svg", time.Now().Unix())
	if err := os.WriteFile(name, []byte(svg), 0644); err != nil {
		m.status = err.Error()
		return
	}
	m.status = "saved " + name
}

// contourLevels merges evenly spread levels with the Lagrange-point
// potentials, which pin the contours that expose the Roche lobes.
func (m *Model) contourLevels() []float64 {
	levels := contour.Levels(m.z, m.levels)
	if m.showLagrange {
		for _, p := range m.pts {
			levels = append(levels, p.Potential)
		}
	}
	return levels
}

func (m Model) View() string {
	canvasW := m.width - 46
	if canvasW < 24 {
		canvasW = 24
	}
	canvasH := m.height - 5
	if canvasH < 10 {
		canvasH = 10
	}

	var left string
	if m.z == nil {
		left = ErrorStyle.Render(m.status)
	} else if m.shaded {
		left = ShadeField(m.z, canvasW, canvasH) + "\n" + ShadeLegend(m.z)
	} else {
		var pts []analysis.LagrangePoint
		if m.showLagrange {
			pts = m.pts
		}
		left = RenderContours(m.xg, m.yg, m.z, m.contourLevels(), m.cfg, pts,
			canvasW, canvasH, m.centerX, m.centerY, m.halfWidth)
	}

	view := lipgloss.JoinHorizontal(lipgloss.Top,
		CanvasStyle.Render(left),
		StatsStyle.Render(m.statsPanel()),
	)

	if m.showHelp {
		view += "\n" + HelpStyle.Render(helpText)
	} else {
		view += "\n" + HelpStyle.Render("? help · q quit")
	}
	return view
}

const helpText = `arrows/h/l pan · +/- zoom · tab select param · k/j adjust
[/] contour levels · L lagrange markers · b shaded view
s save svg · r reset · q quit`

func (m Model) statsPanel() string {
	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render("sparc · effective potential"))
	sb.WriteByte('\n')

	param := func(idx int, label, value string) {
		style := ValueStyle
		if idx == m.selected {
			style = ActiveParamStyle
		}
		sb.WriteString(LabelStyle.Render(label) + style.Render(value) + "\n")
	}
	param(0, "m1", fmt.Sprintf("%.4g", m.cfg.M1))
	param(1, "m2", fmt.Sprintf("%.4g", m.cfg.M2))
	param(2, "radius", fmt.Sprintf("%.4g", m.cfg.OrbitalRadius))

	x1, x2 := m.cfg.Barycentric()
	row := func(label, value string) {
		sb.WriteString(LabelStyle.Render(label) + ValueStyle.Render(value) + "\n")
	}
	row("omega", fmt.Sprintf("%.4f", m.cfg.Omega()))
	row("bodies", fmt.Sprintf("%.3f / %.3f", x1, x2))
	row("center", fmt.Sprintf("(%.2f, %.2f)", m.centerX, m.centerY))
	row("half-width", fmt.Sprintf("%.3f", m.halfWidth))
	row("levels", fmt.Sprintf("%d", m.levels))
	if m.z != nil {
		row("grid", fmt.Sprintf("%dx%d", m.z.Rows, m.z.Cols))
		row("eval", fmt.Sprintf("%s (%d workers)", m.stats.Elapsed.Round(time.Microsecond), m.stats.Workers))
	}

	if m.showLagrange {
		sb.WriteByte('\n')
		for _, p := range m.pts {
			row(p.Name, fmt.Sprintf("(%+.3f, %+.3f) Φ=%s", p.X, p.Y, formatPotential(p.Potential)))
		}
	}

	if m.status != "" {
		sb.WriteByte('\n')
		sb.WriteString(ErrorStyle.Render(m.status))
	}
	return sb.String()
}

// RunLive starts the interactive explorer.
func RunLive(cfg potential.Config, extent float64, levels int) error {
	p := tea.NewProgram(NewModel(cfg, extent, levels), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
