package subtitle

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// matches an SRT timestamp span anywhere in a line
var srtTimeRangeRegex = regexp.MustCompile(
	`\d{2,}:\d{2}:\d{2},\d{3}\s*-->\s*\d{2,}:\d{2}:\d{2},\d{3}`,
)

// matches a bare ordinal line
var ordinalRegex = regexp.MustCompile(`^\d+$`)

// converts raw caption text into an ordered segment sequence.
//
// SRT input without any timestamp span is handled as plain lines with
// synthetic one-second-per-line stamps so timed writers still work.
// An empty input yields an empty sequence, never an error.
func Parse(content string, format Format) ([]Segment, error) {
	content = strings.TrimPrefix(content, "\ufeff")

	switch format {
	case FormatSRT:
		if !srtTimeRangeRegex.MatchString(content) {
			return parseDegradedSRT(content), nil
		}
		return parseBlocks(content, true), nil
	case FormatVTT:
		return parseBlocks(stripVTTHeader(content), false), nil
	case FormatTXT:
		return parsePlain(content), nil
	case FormatJSON:
		return parseJSON(content)
	default:
		return nil, fmt.Errorf("cannot parse format %q", format)
	}
}

// reads and parses a caption file, picking the format from its extension
func ParseFile(path string) ([]Segment, error) {
	format, err := FormatFromExtension(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read caption file: %w", err)
	}

	return Parse(string(data), format)
}

// consumes blank-line-delimited blocks: optional ordinal line, timestamp
// line (kept verbatim), then text lines joined with the literal newline
// escape.
func parseBlocks(content string, withOrdinal bool) []Segment {
	lines := strings.Split(strings.TrimSpace(content), "\n")
	var segments []Segment

	i := 0
	for i < len(lines) {
		if strings.TrimSpace(lines[i]) == "" {
			i++
			continue
		}

		if withOrdinal && ordinalRegex.MatchString(strings.TrimSpace(lines[i])) {
			i++
		}
		if i >= len(lines) {
			break
		}

		timeRange := strings.TrimRight(lines[i], "\r")
		i++

		var text []string
		for i < len(lines) && strings.TrimSpace(lines[i]) != "" {
			text = append(text, strings.TrimRight(lines[i], "\r"))
			i++
		}

		segments = append(segments, Segment{
			TimeRange: timeRange,
			Text:      strings.Join(text, NewlineEscape),
		})
		i++
	}

	return segments
}

// non-standard SRT: every non-empty line becomes a segment with a
// synthetic stamp keyed on the raw line index
func parseDegradedSRT(content string) []Segment {
	if strings.TrimSpace(content) == "" {
		return nil
	}

	lines := strings.Split(strings.TrimSpace(content), "\n")
	var segments []Segment
	for i, line := range lines {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		segments = append(segments, Segment{
			TimeRange: fmt.Sprintf(
				"00:00:%02d,000 --> 00:00:%02d,000", i, i+1,
			),
			Text: line,
		})
	}
	return segments
}

// reads the lossless structured form back; the writer's exact inverse
func parseJSON(content string) ([]Segment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, nil
	}

	var doc Document
	if err := json.Unmarshal([]byte(content), &doc); err != nil {
		return nil, fmt.Errorf("failed to parse json captions: %w", err)
	}
	return doc.Segments, nil
}

func parsePlain(content string) []Segment {
	var segments []Segment
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		segments = append(segments, Segment{Text: line})
	}
	return segments
}

// drops the mandatory WEBVTT header line
func stripVTTHeader(content string) string {
	trimmed := strings.TrimSpace(content)
	if idx := strings.Index(trimmed, "\n"); idx >= 0 {
		return trimmed[idx+1:]
	}
	return ""
}
