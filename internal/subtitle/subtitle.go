package subtitle

import (
	"fmt"
	"path/filepath"
	"strings"
)

// newline escape used inside segment text so multi-line cues survive
// line-oriented parsing. It is the two characters backslash-n, not a
// control character.
const NewlineEscape = `\n`

// represents single caption segment
type Segment struct {
	Index      int     `json:"index"`
	TimeRange  string  `json:"time_range,omitempty"`
	Start      float64 `json:"start,omitempty"`
	End        float64 `json:"end,omitempty"`
	HasTiming  bool    `json:"has_timing,omitempty"`
	Text       string  `json:"text"`
	Translated string  `json:"translated,omitempty"`
}

// represents supported caption file formats
type Format string

const (
	FormatSRT  Format = "srt"
	FormatVTT  Format = "vtt"
	FormatTXT  Format = "txt"
	FormatJSON Format = "json"
)

// represents which text a writer emits per segment
type Mode string

const (
	ModeOriginal   Mode = "original"
	ModeTranslated Mode = "translated"
	ModeBilingual  Mode = "bilingual"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeOriginal:
		return ModeOriginal, nil
	case ModeTranslated:
		return ModeTranslated, nil
	case ModeBilingual:
		return ModeBilingual, nil
	default:
		return "", fmt.Errorf(
			"unsupported mode %q: use original, translated, or bilingual",
			s,
		)
	}
}

func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatSRT:
		return FormatSRT, nil
	case FormatVTT:
		return FormatVTT, nil
	case FormatTXT:
		return FormatTXT, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf(
			"unsupported format %q: use srt, vtt, txt, or json",
			s,
		)
	}
}

// caption format based on file extension
func FormatFromExtension(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".srt":
		return FormatSRT, nil
	case ".vtt":
		return FormatVTT, nil
	case ".txt":
		return FormatTXT, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported caption extension: %s", ext)
	}
}

// file extension for a format
func (f Format) Extension() string {
	return "." + string(f)
}

// replaces real line breaks with the literal escape
func EscapeNewlines(s string) string {
	return strings.ReplaceAll(s, "\n", NewlineEscape)
}

// expands the literal escape back to real line breaks
func ExpandNewlines(s string) string {
	return strings.ReplaceAll(s, NewlineEscape, "\n")
}
