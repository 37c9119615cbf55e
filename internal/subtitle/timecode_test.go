package subtitle

import "testing"

func TestFormatTime(t *testing.T) {
	tests := []struct {
		seconds float64
		format  Format
		want    string
	}{
		{0, FormatSRT, "00:00:00,000"},
		{10.5, FormatSRT, "00:00:10,500"},
		{3661.75, FormatSRT, "01:01:01,750"},
		{10.5, FormatVTT, "00:00:10.500"},
		{61.25, FormatSRT, "00:01:01,250"},
		{3600, FormatVTT, "01:00:00.000"},
		// hours grow past 24 instead of wrapping
		{90000.25, FormatSRT, "25:00:00,250"},
		// milliseconds are truncated, not rounded
		{1.2348, FormatSRT, "00:00:01,234"},
	}

	for _, tt := range tests {
		got := FormatTime(tt.seconds, tt.format)
		if got != tt.want {
			t.Errorf(
				"FormatTime(%v, %s) = %q, want %q",
				tt.seconds, tt.format, got, tt.want,
			)
		}
	}
}

func TestFormatTimeRange(t *testing.T) {
	got := FormatTimeRange(1, 5, FormatSRT)
	want := "00:00:01,000 --> 00:00:05,000"
	if got != want {
		t.Errorf("FormatTimeRange(1, 5, srt) = %q, want %q", got, want)
	}

	got = FormatTimeRange(0.5, 2.25, FormatVTT)
	want = "00:00:00.500 --> 00:00:02.250"
	if got != want {
		t.Errorf("FormatTimeRange(0.5, 2.25, vtt) = %q, want %q", got, want)
	}
}
