package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"subtext/internal/namer"
	"subtext/internal/subtitle"
	"subtext/internal/summarize"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize [video_file]",
	Short: "Summarize a video's content from its captions",
	Long: `Summarize a video's content by sending its caption transcript to AI
and writing the result as a Markdown file next to the video.

Without --subtitle, a sibling caption file sharing the video's base
name is looked up (srt first, then vtt, then txt).

Examples:
  subtext summarize movie.mp4
  subtext summarize movie.mp4 --subtitle movie.zh-CN.srt
  subtext summarize movie.mp4 -l french -o notes.md`,
	Args: cobra.ExactArgs(1),
	RunE: runSummarize,
}

func init() {
	rootCmd.AddCommand(summarizeCmd)

	summarizeCmd.Flags().
		StringP("subtitle", "s", "", "Caption file to summarize from (looked up next to the video when omitted)")
	summarizeCmd.Flags().
		StringP("api-key", "k", "", "API key (or set GEMINI_API_KEY env var)")
	summarizeCmd.Flags().
		String("model", "", "Model to use for summarization (uses a sensible default)")
}

// first sibling caption file sharing the video's base name
func findSiblingCaption(videoPath string) string {
	base := strings.TrimSuffix(videoPath, filepath.Ext(videoPath))
	for _, ext := range []string{".srt", ".vtt", ".txt"} {
		if _, err := os.Stat(base + ext); err == nil {
			return base + ext
		}
	}
	return ""
}

func runSummarize(cmd *cobra.Command, args []string) error {
	videoPath := args[0]
	ctx := context.Background()

	subtitlePath, _ := cmd.Flags().GetString("subtitle")
	apiKey, _ := cmd.Flags().GetString("api-key")
	model, _ := cmd.Flags().GetString("model")
	outputPath, _ := cmd.Flags().GetString("output")
	language, _ := cmd.Flags().GetString("language")

	if _, err := os.Stat(videoPath); os.IsNotExist(err) {
		return fmt.Errorf("video file not found: %s", videoPath)
	}

	if subtitlePath == "" {
		subtitlePath = findSiblingCaption(videoPath)
		if subtitlePath == "" {
			return fmt.Errorf(
				"no caption file found next to %s: use --subtitle to name one",
				videoPath,
			)
		}
		logger.Infow("Found caption file", "subtitle", subtitlePath)
	}

	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf(
			"API key is required: use --api-key flag or set GEMINI_API_KEY environment variable",
		)
	}

	if outputPath == "" {
		outputPath = filepath.Join(
			filepath.Dir(videoPath),
			namer.SummaryName(videoPath),
		)
	}

	segments, err := subtitle.ParseFile(subtitlePath)
	if err != nil {
		return fmt.Errorf("failed to parse caption file: %w", err)
	}

	transcript := summarize.ExtractText(segments)
	if transcript == "" {
		return fmt.Errorf("caption file contains no text")
	}

	logger.Infow("Summarizing video content",
		"video", videoPath,
		"subtitle", subtitlePath,
		"output", outputPath,
		"segments", len(segments),
		"language", language,
	)

	summarizer, err := summarize.NewGeminiSummarizer(
		ctx,
		apiKey,
		summarize.Options{
			Language: language,
			Model:    model,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to create summarizer: %w", err)
	}

	summary, err := summarizer.Summarize(ctx, transcript)
	if err != nil {
		return fmt.Errorf("summarization failed: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(
		outputPath,
		[]byte(summary+"\n"),
		0644,
	); err != nil {
		return fmt.Errorf("failed to write summary file: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Video summary written successfully: %s\n", absOutput)

	return nil
}
