package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a mastery bar like [████░░░░]  40%.
func RenderProgress(level, width int) string {
	level = min(max(level, 0), 100)
	width = max(width, 2)

	filled := level * width / 100
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
	return fmt.Sprintf("[%s] %3d%%", MasteryStyle(level).Render(bar), level)
}
