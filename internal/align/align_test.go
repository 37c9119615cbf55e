package align

import (
	"context"
	"errors"
	"strings"
	"testing"

	"subtext/internal/subtitle"
	"subtext/internal/translate"
)

func sourceSegments() []subtitle.Segment {
	return []subtitle.Segment{
		{TimeRange: "00:00:01,000 --> 00:00:05,000", Text: "Hello."},
		{TimeRange: "00:00:06,000 --> 00:00:10,000", Text: "How are you?"},
		{TimeRange: "00:00:11,000 --> 00:00:15,000", Text: "Goodbye."},
	}
}

func fixed(response string) translate.Translator {
	return translate.Func(
		func(ctx context.Context, block string) (string, error) {
			return response, nil
		},
	)
}

func assertAllTranslated(t *testing.T, segments []subtitle.Segment) {
	t.Helper()
	for i, seg := range segments {
		if seg.Translated == "" {
			t.Errorf("segment %d has empty translated text", i)
		}
	}
}

func TestAlignHappyPath(t *testing.T) {
	response := "1\n00:00:01,000 --> 00:00:05,000\nBonjour.\n\n" +
		"2\n00:00:06,000 --> 00:00:10,000\nComment allez-vous?\n\n" +
		"3\n00:00:11,000 --> 00:00:15,000\nAu revoir.\n\n"

	aligner := New(fixed(response), nil)
	out := aligner.Align(context.Background(), sourceSegments())

	if len(out) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(out))
	}
	want := []string{"Bonjour.", "Comment allez-vous?", "Au revoir."}
	for i, w := range want {
		if out[i].Translated != w {
			t.Errorf("segment %d translated = %q, want %q",
				i, out[i].Translated, w)
		}
	}
	assertAllTranslated(t, out)
}

func TestAlignPreservesTiming(t *testing.T) {
	// service mangles the timestamps; ours must stay untouched
	response := "1\n00:59:59,000 --> 01:00:00,000\nBonjour.\n\n" +
		"2\n00:59:59,000 --> 01:00:00,000\nBien.\n\n" +
		"3\n00:59:59,000 --> 01:00:00,000\nAu revoir.\n\n"

	aligner := New(fixed(response), nil)
	src := sourceSegments()
	out := aligner.Align(context.Background(), src)

	for i := range src {
		if out[i].TimeRange != src[i].TimeRange {
			t.Errorf("segment %d time range changed: %q -> %q",
				i, src[i].TimeRange, out[i].TimeRange)
		}
	}
}

func TestAlignTranslatorError(t *testing.T) {
	failing := translate.Func(
		func(ctx context.Context, block string) (string, error) {
			return "", errors.New("service unavailable")
		},
	)

	aligner := New(failing, nil)
	out := aligner.Align(context.Background(), sourceSegments())

	for i, seg := range out {
		if seg.Translated != seg.Text {
			t.Errorf("segment %d should echo its text, got %q",
				i, seg.Translated)
		}
	}
	assertAllTranslated(t, out)
}

func TestAlignEmptyResponse(t *testing.T) {
	aligner := New(fixed(""), nil)
	out := aligner.Align(context.Background(), sourceSegments())

	for _, seg := range out {
		if seg.Translated != seg.Text {
			t.Errorf("empty response should echo texts, got %q",
				seg.Translated)
		}
	}
}

func TestAlignUnchangedResponse(t *testing.T) {
	// echoing the input block back is treated as a silent failure
	src := sourceSegments()
	echoing := translate.Func(
		func(ctx context.Context, block string) (string, error) {
			return block, nil
		},
	)

	aligner := New(echoing, nil)
	out := aligner.Align(context.Background(), src)

	for i, seg := range out {
		if seg.Translated != src[i].Text {
			t.Errorf("segment %d should echo its text, got %q",
				i, seg.Translated)
		}
	}
}

func TestAlignCountMismatchShortResponse(t *testing.T) {
	// 3 source segments, only 2 come back: overlap assigned, rest echoes
	response := "1\n00:00:01,000 --> 00:00:05,000\nBonjour.\n\n" +
		"2\n00:00:06,000 --> 00:00:10,000\nComment allez-vous?\n\n"

	aligner := New(fixed(response), nil)
	out := aligner.Align(context.Background(), sourceSegments())

	if out[0].Translated != "Bonjour." {
		t.Errorf("segment 0 translated = %q", out[0].Translated)
	}
	if out[1].Translated != "Comment allez-vous?" {
		t.Errorf("segment 1 translated = %q", out[1].Translated)
	}
	if out[2].Translated != "Goodbye." {
		t.Errorf("segment 2 should fall back to source text, got %q",
			out[2].Translated)
	}
	assertAllTranslated(t, out)
}

func TestAlignCountMismatchLongResponse(t *testing.T) {
	// service split a cue; extra segments are ignored positionally
	response := "1\n00:00:01,000 --> 00:00:05,000\nA.\n\n" +
		"2\n00:00:06,000 --> 00:00:10,000\nB.\n\n" +
		"3\n00:00:11,000 --> 00:00:15,000\nC.\n\n" +
		"4\n00:00:16,000 --> 00:00:20,000\nD.\n\n"

	aligner := New(fixed(response), nil)
	out := aligner.Align(context.Background(), sourceSegments())

	if len(out) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(out))
	}
	want := []string{"A.", "B.", "C."}
	for i, w := range want {
		if out[i].Translated != w {
			t.Errorf("segment %d translated = %q, want %q",
				i, out[i].Translated, w)
		}
	}
}

func TestAlignSalvageScan(t *testing.T) {
	// response wrapped in prose, but with recoverable {ordinal,
	// timestamp, text} runs: line scan pulls the texts out
	response := "Here is your translation, preceded by chatter " +
		"that breaks block parsing\nand continues over lines\n" +
		"1\n00:00:01,000 --> 00:00:05,000\nBonjour.\n\n" +
		"2\n00:00:06,000 --> 00:00:10,000\nComment allez-vous?\n\n"

	aligner := New(fixed(response), nil)
	out := aligner.Align(context.Background(), sourceSegments())

	if out[0].Translated != "Bonjour." {
		t.Errorf("segment 0 translated = %q", out[0].Translated)
	}
	if out[1].Translated != "Comment allez-vous?" {
		t.Errorf("segment 1 translated = %q", out[1].Translated)
	}
	if out[2].Translated != "Goodbye." {
		t.Errorf("segment 2 should fall back to source text, got %q",
			out[2].Translated)
	}
	assertAllTranslated(t, out)
}

func TestAlignUnstructuredResponseEchoes(t *testing.T) {
	aligner := New(fixed("sorry, I cannot do that"), nil)
	out := aligner.Align(context.Background(), sourceSegments())

	for i, seg := range out {
		if seg.Translated != seg.Text {
			t.Errorf("segment %d should echo, got %q", i, seg.Translated)
		}
	}
}

func TestAlignEmptyInput(t *testing.T) {
	called := false
	tr := translate.Func(
		func(ctx context.Context, block string) (string, error) {
			called = true
			return "", nil
		},
	)

	aligner := New(tr, nil)
	out := aligner.Align(context.Background(), nil)

	if len(out) != 0 {
		t.Errorf("expected empty output, got %d segments", len(out))
	}
	if called {
		t.Error("translator should not be called for empty input")
	}
}

func TestAlignDoesNotMutateInput(t *testing.T) {
	src := sourceSegments()
	aligner := New(fixed(""), nil)
	aligner.Align(context.Background(), src)

	for i, seg := range src {
		if seg.Translated != "" {
			t.Errorf("input segment %d mutated: %+v", i, seg)
		}
	}
}

func TestBuildBlock(t *testing.T) {
	segments := sourceSegments()
	block := BuildBlock(segments)

	want := "1\n00:00:01,000 --> 00:00:05,000\nHello.\n\n" +
		"2\n00:00:06,000 --> 00:00:10,000\nHow are you?\n\n" +
		"3\n00:00:11,000 --> 00:00:15,000\nGoodbye.\n\n"
	if block != want {
		t.Errorf("BuildBlock = %q, want %q", block, want)
	}
}

func TestBuildBlockNumericTiming(t *testing.T) {
	segments := []subtitle.Segment{
		{Start: 1, End: 5, HasTiming: true, Text: "Numeric."},
	}
	block := BuildBlock(segments)

	want := "1\n00:00:01,000 --> 00:00:05,000\nNumeric.\n\n"
	if block != want {
		t.Errorf("BuildBlock = %q, want %q", block, want)
	}
}

func TestBuildBlockUntimedSegments(t *testing.T) {
	segments := []subtitle.Segment{{Text: "Just a line"}}
	if got := BuildBlock(segments); got != "Just a line\n" {
		t.Errorf("BuildBlock = %q", got)
	}
}

func TestSalvageTexts(t *testing.T) {
	response := "noise\n1\n00:00:01,000 --> 00:00:02,000\ntext one\n\n" +
		"junk line\n2\n00:00:03,000 --> 00:00:04,000\ntext two\n"

	texts := salvageTexts(response)
	if len(texts) != 2 {
		t.Fatalf("expected 2 salvaged texts, got %d: %v", len(texts), texts)
	}
	if texts[0] != "text one" || texts[1] != "text two" {
		t.Errorf("salvaged texts = %v", texts)
	}
}

func TestAlignBlockCarriesAnchors(t *testing.T) {
	var sent string
	tr := translate.Func(
		func(ctx context.Context, block string) (string, error) {
			sent = block
			return "", nil
		},
	)

	aligner := New(tr, nil)
	aligner.Align(context.Background(), sourceSegments())

	if !strings.Contains(sent, "00:00:06,000 --> 00:00:10,000") {
		t.Errorf("composite block missing timestamp anchors: %q", sent)
	}
	if !strings.HasPrefix(sent, "1\n") {
		t.Errorf("composite block missing ordinals: %q", sent)
	}
}
