// Package summarize turns a caption transcript into a Markdown
// overview of the video's content.
package summarize

import (
	"context"
	"fmt"
	"strings"
	"time"

	"subtext/internal/subtitle"
)

// interface for transcript summarization. Summarize takes the plain
// transcript text and returns Markdown.
type Summarizer interface {
	Summarize(ctx context.Context, transcript string) (string, error)
}

// adapter to allow plain functions as Summarizers
type Func func(ctx context.Context, transcript string) (string, error)

func (f Func) Summarize(
	ctx context.Context,
	transcript string,
) (string, error) {
	return f(ctx, transcript)
}

const DefaultTimeout = 120 * time.Second

type Options struct {
	Language string // language to write the summary in; empty keeps the transcript's
	Model    string
	Timeout  time.Duration // per-request deadline (default 120s)
}

func (o Options) timeout() time.Duration {
	if o.Timeout > 0 {
		return o.Timeout
	}
	return DefaultTimeout
}

// flattens segments into plain transcript text, one line per segment.
// The literal newline escape inside segment text becomes a space so
// each cue stays on one line.
func ExtractText(segments []subtitle.Segment) string {
	var lines []string
	for _, seg := range segments {
		text := strings.TrimSpace(
			strings.ReplaceAll(seg.Text, subtitle.NewlineEscape, " "),
		)
		if text == "" {
			continue
		}
		lines = append(lines, text)
	}
	return strings.Join(lines, "\n")
}

// BuildPrompt wraps a transcript in the summary instructions
func BuildPrompt(opts Options, transcript string) string {
	var sb strings.Builder

	sb.WriteString(
		"Summarize the video whose caption transcript follows.\n\n",
	)
	sb.WriteString("The summary must cover:\n")
	sb.WriteString("1. The video's main topic and purpose.\n")
	sb.WriteString("2. The key points and important information discussed.\n")
	sb.WriteString("3. How the content is structured and organized.\n")
	sb.WriteString("4. Any notable data, facts, or opinions mentioned.\n\n")
	sb.WriteString(
		"Reply in Markdown with headings and lists where they help. " +
			"Be thorough but concise, and reply with the summary only.\n",
	)
	if opts.Language != "" {
		fmt.Fprintf(&sb,
			"Write the summary in %s regardless of the transcript's "+
				"language.\n",
			opts.Language,
		)
	}
	sb.WriteString("\nTranscript:\n")
	sb.WriteString(transcript)

	return sb.String()
}
