package subtitle

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// lossless structured form carrying the full segment sequence
type Document struct {
	Segments []Segment `json:"segments"`
}

// renders segments as caption text in the given mode and format.
//
// Structured formats renumber ordinals densely from 1. The newline
// escape inside segment text is expanded to real line breaks in srt,
// vtt, and txt output; json keeps segments exactly as held.
func Render(segments []Segment, mode Mode, format Format) (string, error) {
	switch format {
	case FormatSRT:
		return renderTimed(segments, mode, FormatSRT, true), nil
	case FormatVTT:
		return renderTimed(segments, mode, FormatVTT, false), nil
	case FormatTXT:
		return renderPlain(segments, mode), nil
	case FormatJSON:
		return renderJSON(segments)
	default:
		return "", fmt.Errorf("cannot render format %q", format)
	}
}

// renders and writes to path, creating parent directories
func WriteFile(
	path string,
	segments []Segment,
	mode Mode,
	format Format,
) error {
	out, err := Render(segments, mode, format)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(out), 0644); err != nil {
		return fmt.Errorf("failed to write caption file: %w", err)
	}
	return nil
}

func renderTimed(
	segments []Segment,
	mode Mode,
	format Format,
	withOrdinal bool,
) string {
	var sb strings.Builder

	if format == FormatVTT {
		sb.WriteString("WEBVTT\n\n")
	}

	for i, seg := range segments {
		if withOrdinal {
			fmt.Fprintf(&sb, "%d\n", i+1)
		}
		sb.WriteString(timeRangeFor(seg, i, format))
		sb.WriteString("\n")
		for _, line := range modeLines(seg, mode) {
			sb.WriteString(ExpandNewlines(line))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func renderPlain(segments []Segment, mode Mode) string {
	var sb strings.Builder
	for _, seg := range segments {
		for _, line := range modeLines(seg, mode) {
			sb.WriteString(ExpandNewlines(line))
			sb.WriteString("\n")
		}
		if mode == ModeBilingual {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func renderJSON(segments []Segment) (string, error) {
	doc := Document{Segments: make([]Segment, len(segments))}
	copy(doc.Segments, segments)
	for i := range doc.Segments {
		doc.Segments[i].Index = i + 1
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode segments: %w", err)
	}
	return string(data) + "\n", nil
}

// text lines a segment contributes under a render mode
func modeLines(seg Segment, mode Mode) []string {
	switch mode {
	case ModeTranslated:
		return []string{seg.Translated}
	case ModeBilingual:
		return []string{seg.Text, seg.Translated}
	default:
		return []string{seg.Text}
	}
}

// timestamp line for a segment: verbatim source span first, then
// numeric timing, then a synthetic one-second-per-index stamp
func timeRangeFor(seg Segment, idx int, format Format) string {
	if seg.TimeRange != "" {
		return seg.TimeRange
	}
	if seg.HasTiming {
		return FormatTimeRange(seg.Start, seg.End, format)
	}
	return FormatTimeRange(float64(idx), float64(idx+1), format)
}
