// Package viz renders a stored run as a terminal preview: a
// bubbletea program that steps through frames.csv drawing an ASCII
// scatter of particle positions, bordered with lipgloss, alongside an
// asciigraph sparkline of a scalar metric series.
//
// Grounded on internal/tui/live.go (the fixed-size rune-grid canvas,
// clear/set/render cycle, per-model draw dispatch) and
// internal/viz/canvas.go (the "canvas of runes, one rune per cell"
// layering idea -- this port uses a plain space/dot grid rather than
// braille sub-pixels, since particle scatter has no use for 2x4
// sub-cell resolution). The teacher's own interactive loop was a
// hand-rolled clear-screen/redraw timer; this port replaces that with
// a genuine bubbletea Model so frame-stepping is driven by key events
// instead of a wall-clock poll.
package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/particlesim/internal/store"
	"github.com/san-kum/particlesim/internal/vecmath"
)

const (
	canvasWidth  = 60
	canvasHeight = 24
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Bold(true)
)

// Preview is a bubbletea Model stepping through a stored run's frames.
type Preview struct {
	Scenario string
	Frames   []store.FrameSnapshot
	Series   []float64 // a scalar metric per frame; `preview` loads kinetic energy
	index    int
}

func NewPreview(scenario string, frames []store.FrameSnapshot, series []float64) *Preview {
	return &Preview{Scenario: scenario, Frames: frames, Series: series}
}

// Run launches the interactive bubbletea program over p until the user
// quits, after the teacher's gui.RunInteractive() entrypoint (spec.md
// has no CLI of its own; this is the ambient stack's
// `particlesim preview` surface; the root command prints help).
func Run(p *Preview) error {
	_, err := tea.NewProgram(p).Run()
	return err
}

func (p *Preview) Init() tea.Cmd { return nil }

func (p *Preview) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}
	switch keyMsg.String() {
	case "q", "ctrl+c", "esc":
		return p, tea.Quit
	case "right", "n", " ":
		if p.index < len(p.Frames)-1 {
			p.index++
		}
	case "left", "p":
		if p.index > 0 {
			p.index--
		}
	case "g":
		p.index = 0
	case "G":
		p.index = len(p.Frames) - 1
	}
	return p, nil
}

func (p *Preview) View() string {
	if len(p.Frames) == 0 {
		return "no frames to preview\n"
	}
	frame := p.Frames[p.index]

	canvas := renderScatter(frame.Positions)
	header := titleStyle.Render(fmt.Sprintf("%s  frame %d/%d  t=%.3fs  particles=%d",
		p.Scenario, p.index, len(p.Frames)-1, frame.Time, len(frame.Positions)))

	body := panelStyle.Render(canvas)

	var graph string
	if len(p.Series) > 1 {
		upTo := p.index + 1
		if upTo > len(p.Series) {
			upTo = len(p.Series)
		}
		graph = asciigraph.Plot(p.Series[:upTo], asciigraph.Height(8), asciigraph.Width(canvasWidth))
	}

	footer := "←/→ step   g/G first/last   q quit"
	return strings.Join([]string{header, body, graph, footer}, "\n")
}

// renderScatter draws positions into a fixed-size grid, auto-scaling
// the X/Y extent to whatever the frame actually spans (the teacher's
// canvas is a fixed world-to-screen mapping per model; this port has
// no fixed domain, so it fits the grid to the frame's own bounding box
// instead).
func renderScatter(positions []vecmath.Vector3) string {
	grid := make([][]rune, canvasHeight)
	for i := range grid {
		grid[i] = make([]rune, canvasWidth)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}
	if len(positions) == 0 {
		return gridToString(grid)
	}

	minX, maxX := positions[0].X, positions[0].X
	minY, maxY := positions[0].Y, positions[0].Y
	for _, p := range positions {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	spanX := maxX - minX
	spanY := maxY - minY
	if spanX < 1e-9 {
		spanX = 1
	}
	if spanY < 1e-9 {
		spanY = 1
	}

	for _, p := range positions {
		col := int((p.X - minX) / spanX * float64(canvasWidth-1))
		row := int((maxY - p.Y) / spanY * float64(canvasHeight-1))
		if col < 0 || col >= canvasWidth || row < 0 || row >= canvasHeight {
			continue
		}
		grid[row][col] = '*'
	}
	return gridToString(grid)
}

func gridToString(grid [][]rune) string {
	var b strings.Builder
	for i, row := range grid {
		b.WriteString(string(row))
		if i < len(grid)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
