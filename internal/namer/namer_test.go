package namer

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"subtext/internal/subtitle"
)

func TestSplitMarker(t *testing.T) {
	tests := []struct {
		name   string
		base   string
		marker string
		ext    string
	}{
		{"movie.srt", "movie", "", ".srt"},
		{"movie.zh-CN.srt", "movie", "zh-CN", ".srt"},
		{"movie.en.vtt", "movie", "en", ".vtt"},
		{"movie.bilingual.srt", "movie", "bilingual", ".srt"},
		// dots in the base name are not markers
		{"my.movie.2024.srt", "my.movie.2024", "", ".srt"},
		{"my.movie.2024.fr.srt", "my.movie.2024", "fr", ".srt"},
		// marker pattern is case sensitive
		{"movie.ZH-cn.srt", "movie.ZH-cn", "", ".srt"},
		{"movie.eng.srt", "movie.eng", "", ".srt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, marker, ext := SplitMarker(tt.name)
			if base != tt.base || marker != tt.marker || ext != tt.ext {
				t.Errorf(
					"SplitMarker(%q) = (%q, %q, %q), want (%q, %q, %q)",
					tt.name, base, marker, ext, tt.base, tt.marker, tt.ext,
				)
			}
		})
	}
}

func TestDerive(t *testing.T) {
	tests := []struct {
		name     string
		mode     subtitle.Mode
		destLang string
		want     string
	}{
		{"movie.srt", subtitle.ModeOriginal, "zh-CN", "movie.srt"},
		{"movie.srt", subtitle.ModeTranslated, "zh-CN", "movie.zh-CN.srt"},
		{"movie.srt", subtitle.ModeBilingual, "zh-CN", "movie.bilingual.srt"},
		// existing markers are stripped before re-applying: idempotent
		{"movie.zh-CN.srt", subtitle.ModeTranslated, "zh-CN", "movie.zh-CN.srt"},
		{"movie.bilingual.srt", subtitle.ModeBilingual, "zh-CN", "movie.bilingual.srt"},
		{"movie.en.srt", subtitle.ModeTranslated, "ja", "movie.ja.srt"},
		{"movie.bilingual.srt", subtitle.ModeOriginal, "zh-CN", "movie.srt"},
		{"movie.vtt", subtitle.ModeTranslated, "fr", "movie.fr.vtt"},
	}

	for _, tt := range tests {
		got := Derive(tt.name, tt.mode, tt.destLang)
		if got != tt.want {
			t.Errorf(
				"Derive(%q, %s, %q) = %q, want %q",
				tt.name, tt.mode, tt.destLang, got, tt.want,
			)
		}
	}
}

func TestDerivePath(t *testing.T) {
	in := filepath.Join("some", "dir", "movie.srt")
	got := DerivePath(in, subtitle.ModeTranslated, "zh-CN")
	want := filepath.Join("some", "dir", "movie.zh-CN.srt")
	if got != want {
		t.Errorf("DerivePath = %q, want %q", got, want)
	}
}

func TestHardcodedName(t *testing.T) {
	tests := []struct {
		video    string
		subtitle string
		want     string
	}{
		{"movie.mp4", "movie.srt", "movie.hardcoded.mp4"},
		{"movie.mp4", "movie.zh-CN.srt", "movie.zh-CN.hardcoded.mp4"},
		{"movie.mkv", "movie.bilingual.srt", "movie.bilingual.hardcoded.mkv"},
	}

	for _, tt := range tests {
		got := HardcodedName(tt.video, tt.subtitle)
		if got != tt.want {
			t.Errorf(
				"HardcodedName(%q, %q) = %q, want %q",
				tt.video, tt.subtitle, got, tt.want,
			)
		}
	}
}

func TestSummaryName(t *testing.T) {
	tests := []struct {
		video string
		want  string
	}{
		{"movie.mp4", "movie.summary.md"},
		{"/media/movie.2024.mkv", "movie.2024.summary.md"},
	}

	for _, tt := range tests {
		got := SummaryName(tt.video)
		if got != tt.want {
			t.Errorf("SummaryName(%q) = %q, want %q", tt.video, got, tt.want)
		}
	}
}

func TestDiscover(t *testing.T) {
	tmpDir := t.TempDir()
	present := []string{
		"a.srt", "a.vtt", "a.zh-CN.srt", "a.bilingual.srt", "b.srt",
	}
	for _, name := range present {
		path := filepath.Join(tmpDir, name)
		if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
			t.Fatalf("failed to create %s: %v", name, err)
		}
	}

	files, err := Discover(filepath.Join(tmpDir, "a.mp4"), tmpDir)
	if err != nil {
		t.Fatalf("Discover returned error: %v", err)
	}

	var names []string
	for _, f := range files {
		names = append(names, filepath.Base(f))
	}
	sort.Strings(names)

	want := []string{"a.bilingual.srt", "a.srt", "a.vtt", "a.zh-CN.srt"}
	if len(names) != len(want) {
		t.Fatalf("Discover = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("Discover = %v, want %v", names, want)
		}
	}
}

func TestDiscoverDefaultsToMediaDir(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "clip.srt")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}

	files, err := Discover(filepath.Join(tmpDir, "clip.mp4"), "")
	if err != nil {
		t.Fatalf("Discover returned error: %v", err)
	}
	if len(files) != 1 || filepath.Base(files[0]) != "clip.srt" {
		t.Errorf("Discover = %v", files)
	}
}

func TestSelectForBurn(t *testing.T) {
	files := []string{
		"dir/movie.srt",
		"dir/movie.vtt",
		"dir/movie.zh-CN.srt",
		"dir/movie.bilingual.srt",
	}

	tests := []struct {
		mode subtitle.Mode
		want string
	}{
		{subtitle.ModeOriginal, "dir/movie.srt"},
		{subtitle.ModeTranslated, "dir/movie.zh-CN.srt"},
		{subtitle.ModeBilingual, "dir/movie.bilingual.srt"},
	}

	for _, tt := range tests {
		got := SelectForBurn(files, tt.mode, "zh-CN")
		if got != tt.want {
			t.Errorf(
				"SelectForBurn(%s) = %q, want %q", tt.mode, got, tt.want,
			)
		}
	}
}

func TestSelectForBurnFallsBackToAnySRT(t *testing.T) {
	files := []string{"dir/movie.vtt", "dir/movie.ja.srt"}
	got := SelectForBurn(files, subtitle.ModeTranslated, "zh-CN")
	if got != "dir/movie.ja.srt" {
		t.Errorf("SelectForBurn fallback = %q", got)
	}

	if got := SelectForBurn([]string{"dir/movie.vtt"}, subtitle.ModeOriginal, ""); got != "" {
		t.Errorf("expected empty selection, got %q", got)
	}
}
