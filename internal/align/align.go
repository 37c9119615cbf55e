// Package align maps a translation service's free-form response back
// onto the original caption segment boundaries.
//
// The whole file goes out as one composite request so the service keeps
// cross-segment context; the price is that the response may come back
// with merged cues, missing blocks, or no structure at all. Align
// recovers what it can positionally and echoes the source text for the
// rest, so every returned segment carries a translation.
package align

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"subtext/internal/logging"
	"subtext/internal/subtitle"
	"subtext/internal/translate"
)

type Aligner struct {
	translator translate.Translator
	log        *logging.Logger
}

func New(translator translate.Translator, log *logging.Logger) *Aligner {
	if log == nil {
		log = logging.NewNop()
	}
	return &Aligner{translator: translator, log: log}
}

// fills Translated on every segment. Translation failures of any kind
// degrade to copying Text; Align never returns an error and never
// touches timing.
func (a *Aligner) Align(
	ctx context.Context,
	segments []subtitle.Segment,
) []subtitle.Segment {
	out := make([]subtitle.Segment, len(segments))
	copy(out, segments)

	if len(out) == 0 {
		return out
	}

	block := BuildBlock(out)

	response, err := a.translator.Translate(ctx, block)
	if err != nil {
		a.log.Warnw("Translation failed, keeping original text",
			"error", err,
		)
		return echo(out)
	}

	if strings.TrimSpace(response) == "" ||
		strings.TrimSpace(response) == strings.TrimSpace(block) {
		a.log.Warnw("Translation returned empty or unchanged text, " +
			"keeping original text")
		return echo(out)
	}

	return a.reconcile(out, response)
}

// parses the response and assigns translations onto the source
// segments: structured parse first, raw line scan when the response
// carries no recognizable structure
func (a *Aligner) reconcile(
	segments []subtitle.Segment,
	response string,
) []subtitle.Segment {
	if !spanRegex.MatchString(response) {
		a.log.Warnw("Translation response has no timestamp structure, " +
			"scanning raw lines")
		return assignTexts(segments, salvageTexts(response), a.log)
	}

	translated, err := subtitle.Parse(response, subtitle.FormatSRT)
	if err != nil || !wellFormed(translated) {
		a.log.Warnw("Could not parse translation response, "+
			"scanning raw lines",
			"error", err,
		)
		return assignTexts(segments, salvageTexts(response), a.log)
	}

	if len(translated) != len(segments) {
		a.log.Warnw("Translated segment count does not match source",
			"source", len(segments),
			"translated", len(translated),
		)
	}

	texts := make([]string, len(translated))
	for i, seg := range translated {
		texts[i] = seg.Text
	}
	return assignTexts(segments, texts, a.log)
}

// serializes segments into the composite block sent for translation:
// ordinal, timestamp, text per segment, blank-line delimited. Untimed
// segments contribute a bare text line.
func BuildBlock(segments []subtitle.Segment) string {
	var sb strings.Builder
	for i, seg := range segments {
		if seg.TimeRange != "" {
			fmt.Fprintf(&sb, "%d\n%s\n%s\n\n", i+1, seg.TimeRange, seg.Text)
		} else if seg.HasTiming {
			fmt.Fprintf(&sb, "%d\n%s\n%s\n\n",
				i+1,
				subtitle.FormatTimeRange(seg.Start, seg.End, subtitle.FormatSRT),
				seg.Text,
			)
		} else {
			fmt.Fprintf(&sb, "%s\n", seg.Text)
		}
	}
	return sb.String()
}

// assigns recovered texts positionally; segments beyond the overlap
// fall back to their own text
func assignTexts(
	segments []subtitle.Segment,
	texts []string,
	log *logging.Logger,
) []subtitle.Segment {
	for i := range segments {
		if i < len(texts) && texts[i] != "" {
			segments[i].Translated = texts[i]
		} else {
			segments[i].Translated = segments[i].Text
		}
	}
	if len(texts) < len(segments) {
		log.Warnw("Partial translation recovered",
			"translated", len(texts),
			"total", len(segments),
		)
	}
	return segments
}

// a structured parse counts as successful only when every block's
// timestamp line really is a timestamp; anything else means the
// response shape drifted and positional block assignment would attach
// stray prose to segments
func wellFormed(segments []subtitle.Segment) bool {
	if len(segments) == 0 {
		return false
	}
	for _, seg := range segments {
		if !spanRegex.MatchString(seg.TimeRange) {
			return false
		}
	}
	return true
}

func echo(segments []subtitle.Segment) []subtitle.Segment {
	for i := range segments {
		segments[i].Translated = segments[i].Text
	}
	return segments
}

var (
	digitLineRegex = regexp.MustCompile(`^\d+$`)
	spanRegex      = regexp.MustCompile(
		`\d{2,}:\d{2}:\d{2},\d{3}\s*-->\s*\d{2,}:\d{2}:\d{2},\d{3}`,
	)
)

// permissive last-resort pass over an unstructured response: pull the
// text line out of every {digits, timestamp, text, blank} run
func salvageTexts(response string) []string {
	lines := strings.Split(strings.TrimSpace(response), "\n")
	var texts []string

	i := 0
	for i < len(lines) {
		if i+2 < len(lines) &&
			digitLineRegex.MatchString(strings.TrimSpace(lines[i])) &&
			spanRegex.MatchString(lines[i+1]) {
			texts = append(texts, strings.TrimSpace(lines[i+2]))
			i += 4
		} else {
			i++
		}
	}

	return texts
}
