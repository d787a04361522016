package viz

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/particlesim/internal/store"
	"github.com/san-kum/particlesim/internal/vecmath"
)

func sampleFrames() []store.FrameSnapshot {
	return []store.FrameSnapshot{
		{Frame: 0, Time: 0, Positions: []vecmath.Vector3{{X: 0, Y: 0}}},
		{Frame: 1, Time: 1.0 / 60, Positions: []vecmath.Vector3{{X: 1, Y: 1}}},
		{Frame: 2, Time: 2.0 / 60, Positions: []vecmath.Vector3{{X: 2, Y: 2}}},
	}
}

func TestPreviewViewEmptyFrames(t *testing.T) {
	p := NewPreview("water_drop", nil, nil)
	assert.Contains(t, p.View(), "no frames")
}

func TestPreviewStepsForwardAndBackward(t *testing.T) {
	p := NewPreview("water_drop", sampleFrames(), []float64{1, 2, 3})
	assert.Equal(t, 0, p.index)

	model, _ := p.Update(tea.KeyMsg{Type: tea.KeyRight})
	p = model.(*Preview)
	assert.Equal(t, 1, p.index)

	model, _ = p.Update(tea.KeyMsg{Type: tea.KeyLeft})
	p = model.(*Preview)
	assert.Equal(t, 0, p.index)
}

func TestPreviewStepDoesNotOverrunBounds(t *testing.T) {
	p := NewPreview("water_drop", sampleFrames(), nil)
	for i := 0; i < 10; i++ {
		model, _ := p.Update(tea.KeyMsg{Type: tea.KeyRight})
		p = model.(*Preview)
	}
	assert.Equal(t, len(sampleFrames())-1, p.index)
}

func TestPreviewQuitReturnsQuitCmd(t *testing.T) {
	p := NewPreview("water_drop", sampleFrames(), nil)
	_, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
}

func TestRenderScatterPlacesMarkerWithinBounds(t *testing.T) {
	out := renderScatter([]vecmath.Vector3{{X: 0.5, Y: 0.5}})
	assert.True(t, strings.ContainsRune(out, '*'))
}

func TestRenderScatterEmptyIsAllSpaces(t *testing.T) {
	out := renderScatter(nil)
	assert.False(t, strings.ContainsRune(out, '*'))
}
