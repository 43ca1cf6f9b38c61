package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderProgress(t *testing.T) {
	tests := []struct {
		name   string
		level  int
		width  int
		filled int
		label  string
	}{
		{"zero", 0, 10, 0, "  0%"},
		{"forty", 40, 10, 4, " 40%"},
		{"full", 100, 10, 10, "100%"},
		{"clamped high", 150, 10, 10, "100%"},
		{"clamped low", -20, 10, 0, "  0%"},
		{"min width", 50, 0, 1, " 50%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := stripANSI(RenderProgress(tt.level, tt.width))
			assert.Equal(t, tt.filled, strings.Count(out, filledBlock))
			assert.True(t, strings.HasSuffix(out, tt.label), out)
		})
	}
}

func TestMasteryStyle(t *testing.T) {
	assert.Equal(t, StyleRed, MasteryStyle(0))
	assert.Equal(t, StyleYellow, MasteryStyle(20))
	assert.Equal(t, StyleYellow, MasteryStyle(40))
	assert.Equal(t, StyleGreen, MasteryStyle(60))
	assert.Equal(t, StyleGreen, MasteryStyle(95))
}
