package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"subtext/internal/namer"
	"subtext/internal/subtitle"
	"subtext/internal/video"
)

var burnCmd = &cobra.Command{
	Use:   "burn [video_file]",
	Short: "Burn captions into the video frames",
	Long: `Burn a caption file into the video frames, producing a new video file
with hardcoded captions.

Without --subtitle, the caption file is discovered next to the video:
sibling files sharing the video's base name are collected and the one
matching --mode (and --language for translated captions) is picked.

Examples:
  subtext burn movie.mp4
  subtext burn movie.mp4 --subtitle movie.zh-CN.srt
  subtext burn movie.mp4 --mode bilingual --font-size 32 --position top`,
	Args: cobra.ExactArgs(1),
	RunE: runBurn,
}

func init() {
	rootCmd.AddCommand(burnCmd)

	burnCmd.Flags().
		StringP("subtitle", "s", "", "Caption file to burn (discovered next to the video when omitted)")
	burnCmd.Flags().
		StringP("mode", "m", "original", "Caption variant to discover (original, translated, bilingual)")
	burnCmd.Flags().
		Int("font-size", 28, "Caption font size")
	burnCmd.Flags().
		String("position", video.PositionBottom, "Caption position (bottom, top, middle)")
	burnCmd.Flags().
		String("font-color", "white", "Caption text color (named color or 6-hex-digit value)")
	burnCmd.Flags().
		String("outline-color", "black", "Caption outline color (named color or 6-hex-digit value)")
}

func runBurn(cmd *cobra.Command, args []string) error {
	videoPath := args[0]
	ctx := context.Background()

	subtitlePath, _ := cmd.Flags().GetString("subtitle")
	modeStr, _ := cmd.Flags().GetString("mode")
	fontSize, _ := cmd.Flags().GetInt("font-size")
	position, _ := cmd.Flags().GetString("position")
	fontColor, _ := cmd.Flags().GetString("font-color")
	outlineColor, _ := cmd.Flags().GetString("outline-color")
	outputPath, _ := cmd.Flags().GetString("output")
	language, _ := cmd.Flags().GetString("language")

	if _, err := os.Stat(videoPath); os.IsNotExist(err) {
		return fmt.Errorf("video file not found: %s", videoPath)
	}

	mode, err := subtitle.ParseMode(modeStr)
	if err != nil {
		return err
	}

	if subtitlePath == "" {
		files, err := namer.Discover(videoPath, "")
		if err != nil {
			return fmt.Errorf("failed to discover caption files: %w", err)
		}
		subtitlePath = namer.SelectForBurn(files, mode, language)
		if subtitlePath == "" {
			return fmt.Errorf(
				"no caption file found next to %s: use --subtitle to name one",
				videoPath,
			)
		}
		logger.Infow("Discovered caption file", "subtitle", subtitlePath)
	}

	if outputPath == "" {
		outputPath = filepath.Join(
			filepath.Dir(videoPath),
			namer.HardcodedName(videoPath, subtitlePath),
		)
	}

	opts := video.BurnOptions{
		FontSize:     fontSize,
		Position:     position,
		FontColor:    fontColor,
		OutlineColor: outlineColor,
	}

	logger.Infow("Burning captions into video",
		"video", videoPath,
		"subtitle", subtitlePath,
		"output", outputPath,
		"position", position,
	)

	if err := video.Burn(ctx, videoPath, subtitlePath, outputPath, opts); err != nil {
		return fmt.Errorf("burn failed: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Captions burned successfully: %s\n", absOutput)

	return nil
}
