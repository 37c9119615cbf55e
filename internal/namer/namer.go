// Package namer derives sibling output file names for caption variants
// and locates the caption files belonging to a media file.
//
// A variant marker is the token right before the extension: either a
// language code (xx or xx-YY) or the literal "bilingual". Derivation is
// the same whether naming a caption file or a hard-subtitled video, so
// names stay consistent across the pipeline.
package namer

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"subtext/internal/subtitle"
)

// marker appended to bilingual variants
const BilingualMarker = "bilingual"

// suffix appended to hard-subtitled video names
const hardcodedMarker = "hardcoded"

// suffix appended to content-summary file names
const summaryMarker = "summary"

var langCodeRegex = regexp.MustCompile(`^[a-z]{2}(-[A-Z]{2})?$`)

// caption extensions considered during discovery
var captionExtensions = []string{"srt", "vtt", "txt"}

// splits a file name into base name, variant marker, and extension.
// The marker is empty when the pre-extension token is not a language
// code or the bilingual marker.
func SplitMarker(name string) (base, marker, ext string) {
	ext = filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	if idx := strings.LastIndex(stem, "."); idx >= 0 {
		token := stem[idx+1:]
		if token == BilingualMarker || langCodeRegex.MatchString(token) {
			return stem[:idx], token, ext
		}
	}
	return stem, "", ext
}

// derives the output caption file name for a mode, stripping any
// existing variant marker first so the operation is idempotent
func Derive(name string, mode subtitle.Mode, destLang string) string {
	base, _, ext := SplitMarker(name)

	switch mode {
	case subtitle.ModeTranslated:
		return fmt.Sprintf("%s.%s%s", base, destLang, ext)
	case subtitle.ModeBilingual:
		return fmt.Sprintf("%s.%s%s", base, BilingualMarker, ext)
	default:
		return base + ext
	}
}

// derives the full output path next to the input file
func DerivePath(path string, mode subtitle.Mode, destLang string) string {
	return filepath.Join(
		filepath.Dir(path),
		Derive(filepath.Base(path), mode, destLang),
	)
}

// output name for a hard-subtitled video, carrying over the caption
// file's variant marker: {base}{.marker}.hardcoded{ext}
func HardcodedName(videoPath, subtitlePath string) string {
	videoExt := filepath.Ext(videoPath)
	videoBase := strings.TrimSuffix(filepath.Base(videoPath), videoExt)

	_, marker, _ := SplitMarker(filepath.Base(subtitlePath))
	if marker != "" {
		marker = "." + marker
	}

	return fmt.Sprintf(
		"%s%s.%s%s", videoBase, marker, hardcodedMarker, videoExt,
	)
}

// output name for the Markdown content summary of a video:
// {base}.summary.md
func SummaryName(videoPath string) string {
	base := strings.TrimSuffix(
		filepath.Base(videoPath),
		filepath.Ext(videoPath),
	)
	return fmt.Sprintf("%s.%s.md", base, summaryMarker)
}

// finds every caption file in dir whose base name (any variant marker
// ignored) matches the media file's base name. The result is an
// unordered, deduplicated set of paths.
func Discover(mediaPath, dir string) ([]string, error) {
	if dir == "" {
		dir = filepath.Dir(mediaPath)
	}
	mediaBase := strings.TrimSuffix(
		filepath.Base(mediaPath),
		filepath.Ext(mediaPath),
	)

	seen := make(map[string]bool)
	var files []string
	for _, ext := range captionExtensions {
		patterns := []string{
			filepath.Join(dir, mediaBase+"."+ext),
			filepath.Join(dir, mediaBase+".*."+ext),
		}
		for _, pattern := range patterns {
			matches, err := filepath.Glob(pattern)
			if err != nil {
				return nil, fmt.Errorf("bad glob pattern %q: %w", pattern, err)
			}
			for _, m := range matches {
				if !seen[m] {
					seen[m] = true
					files = append(files, m)
				}
			}
		}
	}

	return files, nil
}

// picks the caption file matching the requested mode from a discovered
// set, preferring srt and falling back to any srt file
func SelectForBurn(
	files []string,
	mode subtitle.Mode,
	destLang string,
) string {
	for _, file := range files {
		name := filepath.Base(file)
		if filepath.Ext(name) != ".srt" {
			continue
		}
		_, marker, _ := SplitMarker(name)

		switch mode {
		case subtitle.ModeOriginal:
			if marker == "" {
				return file
			}
		case subtitle.ModeTranslated:
			if marker == destLang {
				return file
			}
		case subtitle.ModeBilingual:
			if marker == BilingualMarker {
				return file
			}
		}
	}

	for _, file := range files {
		if filepath.Ext(file) == ".srt" {
			return file
		}
	}
	return ""
}
