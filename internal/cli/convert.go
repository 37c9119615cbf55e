package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"subtext/internal/subtitle"
)

var convertCmd = &cobra.Command{
	Use:   "convert [caption_file]",
	Short: "Convert a caption file to another format",
	Long: `Convert a caption file between SRT, VTT, plain-text, and JSON formats.

Timing lines are carried over verbatim where the target format allows
it. The JSON format round-trips every field losslessly.

Examples:
  subtext convert movie.srt --to vtt
  subtext convert movie.vtt --to txt -o transcript.txt
  subtext convert movie.json --to srt --mode bilingual`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().
		StringP("to", "t", "", "Target format (srt, vtt, txt, json) (required)")
	convertCmd.Flags().
		StringP("mode", "m", "original", "Output mode (original, translated, bilingual)")

	_ = convertCmd.MarkFlagRequired("to")
}

func runConvert(cmd *cobra.Command, args []string) error {
	captionPath := args[0]

	toStr, _ := cmd.Flags().GetString("to")
	modeStr, _ := cmd.Flags().GetString("mode")
	outputPath, _ := cmd.Flags().GetString("output")

	if _, err := os.Stat(captionPath); os.IsNotExist(err) {
		return fmt.Errorf("caption file not found: %s", captionPath)
	}

	target, err := subtitle.ParseFormat(toStr)
	if err != nil {
		return err
	}

	mode, err := subtitle.ParseMode(modeStr)
	if err != nil {
		return err
	}

	if outputPath == "" {
		base := strings.TrimSuffix(captionPath, filepath.Ext(captionPath))
		outputPath = base + target.Extension()
	}

	segments, err := subtitle.ParseFile(captionPath)
	if err != nil {
		return fmt.Errorf("failed to parse caption file: %w", err)
	}

	if mode != subtitle.ModeOriginal {
		for i := range segments {
			if segments[i].Translated == "" {
				segments[i].Translated = segments[i].Text
			}
		}
	}

	logger.Infow("Converting caption file",
		"input", captionPath,
		"output", outputPath,
		"format", target,
		"mode", mode,
		"segments", len(segments),
	)

	if err := subtitle.WriteFile(outputPath, segments, mode, target); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Captions converted successfully: %s\n", absOutput)

	return nil
}
