package video

import (
	"context"
	"testing"
)

func TestResolveColor(t *testing.T) {
	tests := []struct {
		color    string
		fallback string
		want     string
	}{
		{"white", "000000", "ffffff"},
		{"Black", "ffffff", "000000"},
		{"YELLOW", "000000", "ffff00"},
		{"ff8800", "000000", "ff8800"},
		{"FF8800", "000000", "ff8800"},
		// invalid values fall back
		{"not-a-color", "ffffff", "ffffff"},
		{"fff", "000000", "000000"},
		{"", "000000", "000000"},
	}

	for _, tt := range tests {
		got := resolveColor(tt.color, tt.fallback)
		if got != tt.want {
			t.Errorf(
				"resolveColor(%q, %q) = %q, want %q",
				tt.color, tt.fallback, got, tt.want,
			)
		}
	}
}

func TestAlignmentFor(t *testing.T) {
	tests := []struct {
		position string
		want     int
	}{
		{PositionBottom, 2},
		{PositionTop, 8},
		{PositionMiddle, 5},
		{"", 2},
		{"unknown", 2},
	}

	for _, tt := range tests {
		if got := alignmentFor(tt.position); got != tt.want {
			t.Errorf("alignmentFor(%q) = %d, want %d", tt.position, got, tt.want)
		}
	}
}

func TestBurnMissingInputs(t *testing.T) {
	ctx := context.Background()
	err := Burn(ctx, "missing.mp4", "missing.srt", "out.mp4", DefaultBurnOptions())
	if err == nil {
		t.Error("expected error for missing video file")
	}
}
