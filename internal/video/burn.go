package video

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// vertical placement of burned-in captions
const (
	PositionBottom = "bottom"
	PositionTop    = "top"
	PositionMiddle = "middle"
)

// holds style options for burning captions into video frames
type BurnOptions struct {
	FontSize     int
	Position     string // bottom, top, or middle
	FontColor    string // named color or 6-hex-digit value
	OutlineColor string
}

func DefaultBurnOptions() BurnOptions {
	return BurnOptions{
		FontSize:     28,
		Position:     PositionBottom,
		FontColor:    "white",
		OutlineColor: "black",
	}
}

var hexColorRegex = regexp.MustCompile(`^[0-9a-fA-F]{6}$`)

var namedColors = map[string]string{
	"white":   "ffffff",
	"black":   "000000",
	"yellow":  "ffff00",
	"green":   "00ff00",
	"cyan":    "00ffff",
	"blue":    "0000ff",
	"magenta": "ff00ff",
	"red":     "ff0000",
}

// resolves a color to a 6-hex-digit value, falling back to the default
// when the input is neither a known name nor valid hex
func resolveColor(color, fallback string) string {
	hex, ok := namedColors[strings.ToLower(color)]
	if !ok {
		hex = color
	}
	if !hexColorRegex.MatchString(hex) {
		return fallback
	}
	return strings.ToLower(hex)
}

// alignment codes in the ASS force_style numbering
func alignmentFor(position string) int {
	switch position {
	case PositionTop:
		return 8
	case PositionMiddle:
		return 5
	default:
		return 2
	}
}

// burns a caption file into the video frames, producing a new video.
// Invalid colors fall back to white text on a black outline.
func Burn(
	ctx context.Context,
	videoPath, subtitlePath, outputPath string,
	opts BurnOptions,
) error {
	if _, err := os.Stat(videoPath); os.IsNotExist(err) {
		return fmt.Errorf("video file not found: %s", videoPath)
	}
	if _, err := os.Stat(subtitlePath); os.IsNotExist(err) {
		return fmt.Errorf("caption file not found: %s", subtitlePath)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	fontSize := opts.FontSize
	if fontSize <= 0 {
		fontSize = DefaultBurnOptions().FontSize
	}

	style := fmt.Sprintf(
		"FontName=Arial,FontSize=%d,PrimaryColour=&H%s,OutlineColour=&H%s,"+
			"BorderStyle=1,Outline=2,Shadow=1,Bold=1,Alignment=%d",
		fontSize,
		resolveColor(opts.FontColor, "ffffff"),
		resolveColor(opts.OutlineColor, "000000"),
		alignmentFor(opts.Position),
	)

	filter := fmt.Sprintf("subtitles=%s:force_style='%s'", subtitlePath, style)

	err := ffmpeg.Input(videoPath).
		Output(outputPath, ffmpeg.KwArgs{
			"vf":  filter,
			"c:v": "libx264",
			"crf": "18",
			"c:a": "copy",
			"y":   "",
		}).
		OverWriteOutput().
		Run()

	if err != nil {
		return fmt.Errorf("ffmpeg burn failed: %w", err)
	}

	return nil
}
