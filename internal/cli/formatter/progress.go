package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderHoursBar renders logged hours against a weekly target, like
// [████░░░░] 18.50/40h. The bar turns yellow past 90% of target and red
// once it is exceeded.
func RenderHoursBar(hours, target float64, width int) string {
	if width < 2 {
		width = 2
	}
	pct := 0.0
	if target > 0 {
		pct = hours / target
	}
	if pct < 0 {
		pct = 0
	}

	filled := int(min(pct, 1) * float64(width))
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	switch {
	case pct > 1:
		style = StyleRed
	case pct > 0.9:
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %s/%gh", style.Render(bar), FormatHours(hours), target)
}
