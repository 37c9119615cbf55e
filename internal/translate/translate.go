package translate

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// interface for text translation. Translate takes one composite caption
// block and returns the raw translated text; callers reconstruct
// structure from it.
type Translator interface {
	Translate(ctx context.Context, block string) (string, error)
}

// adapter to allow plain functions as Translators
type Func func(ctx context.Context, block string) (string, error)

func (f Func) Translate(ctx context.Context, block string) (string, error) {
	return f(ctx, block)
}

// translation service provider
type Provider string

const (
	ProviderGemini    Provider = "gemini"
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
)

const DefaultTimeout = 120 * time.Second

type Options struct {
	SourceLanguage string // empty means auto-detect
	TargetLanguage string
	Model          string
	Timeout        time.Duration // per-request deadline (default 120s)
}

func (o Options) timeout() time.Duration {
	if o.Timeout > 0 {
		return o.Timeout
	}
	return DefaultTimeout
}

// creates Translator based on provider
func Factory(
	ctx context.Context,
	provider Provider,
	apiKey string,
	opts Options,
) (Translator, error) {
	if opts.TargetLanguage == "" {
		return nil, fmt.Errorf("target language is required")
	}

	switch provider {
	case ProviderGemini:
		return NewGeminiTranslator(ctx, apiKey, opts)
	case ProviderOpenAI:
		return NewOpenAITranslator(ctx, apiKey, opts)
	case ProviderAnthropic:
		return NewAnthropicTranslator(ctx, apiKey, opts)
	default:
		return nil, fmt.Errorf("unsupported translation provider: %s", provider)
	}
}

// BuildPrompt wraps a composite caption block in the translation
// instructions. The block carries explicit segmentation anchors
// (ordinal, timestamp) the service is told to preserve.
func BuildPrompt(opts Options, block string) string {
	var sb strings.Builder

	if opts.SourceLanguage != "" {
		sb.WriteString(fmt.Sprintf(
			"Translate the following %s subtitles to %s.\n\n",
			opts.SourceLanguage,
			opts.TargetLanguage,
		))
	} else {
		sb.WriteString(fmt.Sprintf(
			"Translate the following subtitles to %s.\n\n",
			opts.TargetLanguage,
		))
	}

	sb.WriteString("IMPORTANT INSTRUCTIONS:\n")
	sb.WriteString(
		"1. Each subtitle block has three parts: ordinal, timestamp, text.\n",
	)
	sb.WriteString(
		"2. Translate ONLY the text. Keep every ordinal and timestamp " +
			"line exactly as given.\n",
	)
	sb.WriteString(
		"3. Never merge or split blocks, even when sentences continue " +
			"across them. The output must have the same number of blocks " +
			"in the same order.\n",
	)
	sb.WriteString(
		"4. Reply with the complete subtitle file in the same shape, " +
			"and nothing else. No explanations, no markdown formatting.\n\n",
	)

	sb.WriteString(block)

	return sb.String()
}

var codeFenceRegex = regexp.MustCompile("```[a-zA-Z]*\\s*")

// strips markdown code fences some services wrap responses in
func cleanResponse(s string) string {
	s = codeFenceRegex.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}
