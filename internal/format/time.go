// Package format holds the small pure helpers the editor uses to present
// timestamps, colours and caption styling.
package format

import (
	"fmt"
	"math"
)

// FormatTime renders seconds as M:SS.CC. Every component is truncated, never
// rounded, so 65.256 becomes "1:05.25".
func FormatTime(seconds float64) string {
	mins, secs := minutesSeconds(seconds)
	hundredths := int(math.Floor(math.Mod(seconds, 1) * 100))
	return fmt.Sprintf("%d:%02d.%02d", mins, secs, hundredths)
}

// FormatDuration renders seconds as M:SS, truncating.
func FormatDuration(seconds float64) string {
	mins, secs := minutesSeconds(seconds)
	return fmt.Sprintf("%d:%02d", mins, secs)
}

func minutesSeconds(seconds float64) (int, int) {
	return int(math.Floor(seconds / 60)), int(math.Floor(math.Mod(seconds, 60)))
}
