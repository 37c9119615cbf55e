package cli

import (
	"os"
	"path/filepath"
	"testing"

	"subtext/internal/translate"
)

func TestAPIKeyEnvVar(t *testing.T) {
	tests := []struct {
		provider translate.Provider
		want     string
	}{
		{translate.ProviderGemini, "GEMINI_API_KEY"},
		{translate.ProviderOpenAI, "OPENAI_API_KEY"},
		{translate.ProviderAnthropic, "ANTHROPIC_API_KEY"},
		{translate.Provider("unknown"), "API_KEY"},
	}

	for _, tt := range tests {
		t.Run(string(tt.provider), func(t *testing.T) {
			got := apiKeyEnvVar(tt.provider)
			if got != tt.want {
				t.Errorf(
					"apiKeyEnvVar(%q) = %q, want %q",
					tt.provider,
					got,
					tt.want,
				)
			}
		})
	}
}

func TestFindSiblingCaption(t *testing.T) {
	tmpDir := t.TempDir()
	for _, name := range []string{"movie.vtt", "movie.txt"} {
		path := filepath.Join(tmpDir, name)
		if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
			t.Fatalf("failed to create %s: %v", name, err)
		}
	}

	videoPath := filepath.Join(tmpDir, "movie.mp4")

	// srt is preferred but absent, vtt comes next
	got := findSiblingCaption(videoPath)
	want := filepath.Join(tmpDir, "movie.vtt")
	if got != want {
		t.Errorf("findSiblingCaption = %q, want %q", got, want)
	}

	if got := findSiblingCaption(filepath.Join(tmpDir, "other.mp4")); got != "" {
		t.Errorf("findSiblingCaption for missing captions = %q, want empty", got)
	}
}
