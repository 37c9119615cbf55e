package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"subtext/internal/align"
	"subtext/internal/namer"
	"subtext/internal/subtitle"
	"subtext/internal/translate"
)

var translateCmd = &cobra.Command{
	Use:   "translate [caption_file]",
	Short: "Translate a caption file to another language using AI",
	Long: `Translate an existing caption file to another language using AI.

Supports SRT, VTT, plain-text, and JSON formats. Timing is taken from
the input file and never altered by the translation service.

The --mode flag controls the output text: "translated" replaces the
original text, "bilingual" keeps both, and "original" skips the
translation service entirely.

Examples:
  subtext translate movie.srt --target-language french
  subtext translate movie.vtt -t ja --mode bilingual
  subtext translate movie.srt -t es --provider anthropic -o out.srt`,
	Args: cobra.ExactArgs(1),
	RunE: runTranslate,
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().
		StringP("target-language", "t", "", "Target language for translation (required)")
	translateCmd.Flags().
		StringP("mode", "m", "translated", "Output mode (original, translated, bilingual)")
	translateCmd.Flags().
		StringP("api-key", "k", "", "API key (or set GEMINI_API_KEY/OPENAI_API_KEY/ANTHROPIC_API_KEY env var)")
	translateCmd.Flags().
		String("model", "", "Model to use for translation (provider-specific, uses sensible defaults)")
	translateCmd.Flags().
		String("provider", "gemini", "Translation provider (gemini, openai, anthropic)")
	translateCmd.Flags().
		Duration("timeout", translate.DefaultTimeout, "Per-request deadline for the translation service")

	_ = translateCmd.MarkFlagRequired("target-language")
}

// env variable that carries the API key for a translation provider
func apiKeyEnvVar(provider translate.Provider) string {
	switch provider {
	case translate.ProviderGemini:
		return "GEMINI_API_KEY"
	case translate.ProviderOpenAI:
		return "OPENAI_API_KEY"
	case translate.ProviderAnthropic:
		return "ANTHROPIC_API_KEY"
	default:
		return "API_KEY"
	}
}

func runTranslate(cmd *cobra.Command, args []string) error {
	captionPath := args[0]
	ctx := context.Background()

	targetLang, _ := cmd.Flags().GetString("target-language")
	modeStr, _ := cmd.Flags().GetString("mode")
	apiKey, _ := cmd.Flags().GetString("api-key")
	model, _ := cmd.Flags().GetString("model")
	providerStr, _ := cmd.Flags().GetString("provider")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	outputPath, _ := cmd.Flags().GetString("output")
	sourceLang, _ := cmd.Flags().GetString("language")

	if _, err := os.Stat(captionPath); os.IsNotExist(err) {
		return fmt.Errorf("caption file not found: %s", captionPath)
	}

	mode, err := subtitle.ParseMode(modeStr)
	if err != nil {
		return err
	}

	format, err := subtitle.FormatFromExtension(captionPath)
	if err != nil {
		return err
	}

	if sourceLang != "" &&
		strings.EqualFold(
			strings.TrimSpace(sourceLang),
			strings.TrimSpace(targetLang),
		) {
		return fmt.Errorf(
			"source language %q and target language %q cannot be the same",
			sourceLang,
			targetLang,
		)
	}

	if outputPath == "" {
		outputPath = namer.DerivePath(captionPath, mode, targetLang)
	}

	logger.Infow("Starting caption translation",
		"input", captionPath,
		"output", outputPath,
		"target_language", targetLang,
		"source_language", sourceLang,
		"mode", mode,
		"model", model,
	)

	segments, err := subtitle.ParseFile(captionPath)
	if err != nil {
		return fmt.Errorf("failed to parse caption file: %w", err)
	}
	if len(segments) == 0 {
		return fmt.Errorf("caption file contains no segments")
	}

	logger.Infow("Parsed caption file",
		"segments", len(segments),
		"format", format,
	)

	if mode == subtitle.ModeOriginal {
		for i := range segments {
			segments[i].Translated = segments[i].Text
		}
	} else {
		provider := translate.Provider(providerStr)
		if apiKey == "" {
			apiKey = os.Getenv(apiKeyEnvVar(provider))
		}
		if apiKey == "" {
			return fmt.Errorf(
				"API key is required: use --api-key flag or set %s environment variable",
				apiKeyEnvVar(provider),
			)
		}

		opts := translate.Options{
			SourceLanguage: sourceLang,
			TargetLanguage: targetLang,
			Model:          model,
			Timeout:        timeout,
		}

		translator, err := translate.Factory(ctx, provider, apiKey, opts)
		if err != nil {
			return fmt.Errorf("failed to create translator: %w", err)
		}

		logger.Infow("Translating captions",
			"segments", len(segments),
			"provider", provider,
		)

		start := time.Now()
		segments = align.New(translator, logger).Align(ctx, segments)

		logger.Infow("Translation complete",
			"elapsed", time.Since(start).Round(time.Millisecond),
		)
	}

	if err := subtitle.WriteFile(outputPath, segments, mode, format); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Captions translated successfully: %s\n", absOutput)
	fmt.Printf("  Segments: %d\n", len(segments))
	fmt.Printf("  Target language: %s\n", targetLang)
	fmt.Printf("  Mode: %s\n", mode)

	return nil
}
