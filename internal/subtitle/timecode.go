package subtitle

import (
	"fmt"
	"strings"
)

// converts a seconds value to caption timestamp text.
//
// SRT style: HH:MM:SS,mmm (comma separator)
// VTT style: HH:MM:SS.mmm (dot separator)
//
// Milliseconds are truncated, not rounded. Hours are not wrapped at 24;
// the field grows as needed.
func FormatTime(seconds float64, format Format) string {
	if seconds < 0 {
		seconds = 0
	}

	millis := int64(seconds * 1000)
	hours := millis / 3600000
	minutes := (millis % 3600000) / 60000
	secs := float64(millis%60000) / 1000

	ts := fmt.Sprintf("%02d:%02d:%06.3f", hours, minutes, secs)
	if format == FormatVTT {
		return ts
	}
	return strings.Replace(ts, ".", ",", 1)
}

// timestamp span for a segment with numeric timing
func FormatTimeRange(start, end float64, format Format) string {
	return FormatTime(start, format) + " --> " + FormatTime(end, format)
}
