package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"subtext/internal/subtitle"
	"subtext/internal/transcribe"
	"subtext/internal/video"
)

var extractCmd = &cobra.Command{
	Use:   "extract [video_file]",
	Short: "Extract captions from a video file using AI transcription",
	Long: `Extract captions from a video file by transcribing its audio track.

The audio is extracted to a temporary file, transcribed with an AI
provider, and written as caption files in the requested formats.

Examples:
  subtext extract movie.mp4
  subtext extract movie.mp4 --formats srt,vtt
  subtext extract movie.mp4 -l en --formats json -o transcript.json`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().
		StringSliceP("formats", "f", []string{"srt"}, "Output formats (srt, vtt, txt, json)")
	extractCmd.Flags().
		StringP("api-key", "k", "", "API key (or set OPENAI_API_KEY env var)")
	extractCmd.Flags().
		String("model", "", "Model to use for transcription (uses a sensible default)")
	extractCmd.Flags().
		String("provider", "openai", "Transcription provider (openai)")
	extractCmd.Flags().
		String("prompt", "", "Optional prompt to guide the transcription")
}

func runExtract(cmd *cobra.Command, args []string) error {
	videoPath := args[0]
	ctx := context.Background()

	formatStrs, _ := cmd.Flags().GetStringSlice("formats")
	apiKey, _ := cmd.Flags().GetString("api-key")
	model, _ := cmd.Flags().GetString("model")
	providerStr, _ := cmd.Flags().GetString("provider")
	prompt, _ := cmd.Flags().GetString("prompt")
	outputPath, _ := cmd.Flags().GetString("output")
	language, _ := cmd.Flags().GetString("language")

	if _, err := os.Stat(videoPath); os.IsNotExist(err) {
		return fmt.Errorf("video file not found: %s", videoPath)
	}

	formats := make([]subtitle.Format, 0, len(formatStrs))
	for _, s := range formatStrs {
		format, err := subtitle.ParseFormat(s)
		if err != nil {
			return err
		}
		formats = append(formats, format)
	}
	if len(formats) == 0 {
		return fmt.Errorf("at least one output format is required")
	}
	if outputPath != "" && len(formats) > 1 {
		return fmt.Errorf("--output can only be used with a single format")
	}

	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf(
			"API key is required: use --api-key flag or set OPENAI_API_KEY environment variable",
		)
	}

	logger.Infow("Starting caption extraction",
		"input", videoPath,
		"formats", formatStrs,
		"language", language,
	)

	tempDir, err := os.MkdirTemp("", "subtext-*")
	if err != nil {
		return fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer os.RemoveAll(tempDir)

	audioPath := filepath.Join(tempDir, "audio.wav")

	logger.Infow("Extracting audio from video")
	extractOpts := video.DefaultExtractAudioOptions()
	if err := video.ExtractAudio(ctx, videoPath, audioPath, extractOpts); err != nil {
		return fmt.Errorf("failed to extract audio: %w", err)
	}

	transcriber, err := transcribe.Factory(
		ctx,
		transcribe.Provider(providerStr),
		apiKey,
		transcribe.Options{
			Language: language,
			Model:    model,
			Prompt:   prompt,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to create transcriber: %w", err)
	}

	logger.Infow("Transcribing audio")
	result, err := transcriber.Transcribe(ctx, audioPath)
	if err != nil {
		return fmt.Errorf("transcription failed: %w", err)
	}
	if len(result.Segments) == 0 {
		return fmt.Errorf("transcription produced no segments")
	}

	logger.Infow("Transcription complete",
		"segments", len(result.Segments),
		"language", result.Language,
		"duration", result.Duration,
	)

	baseName := strings.TrimSuffix(videoPath, filepath.Ext(videoPath))
	for _, format := range formats {
		path := outputPath
		if path == "" {
			path = baseName + format.Extension()
		}
		if err := subtitle.WriteFile(
			path,
			result.Segments,
			subtitle.ModeOriginal,
			format,
		); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}

		absOutput, _ := filepath.Abs(path)
		fmt.Printf("Captions extracted successfully: %s\n", absOutput)
	}

	return nil
}
