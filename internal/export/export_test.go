package export

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/aschmelyun/tcaption/internal/project"
)

func TestSRTTimestamp(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "00:00:00,000"},
		{1.5, "00:00:01,500"},
		{61.25, "00:01:01,250"},
		{3723.0625, "01:02:03,062"},
	}
	for _, tt := range tests {
		if got := SRTTimestamp(tt.seconds); got != tt.want {
			t.Errorf("SRTTimestamp(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestWriteSRT(t *testing.T) {
	captions := []project.Caption{
		{ID: "a", Start: 0, End: 1.5, Text: " hello there "},
		{ID: "b", Start: 1.5, End: 3, Text: "fire away", Words: []project.Word{
			{Text: "fire", Start: 1.5, End: 2, Emoji: project.Ptr("🔥")},
			{Text: "away", Start: 2, End: 3},
		}},
	}
	style := project.DefaultStyle()
	style.TextTransform = "uppercase"

	var b strings.Builder
	if err := WriteSRT(&b, captions, style); err != nil {
		t.Fatalf("WriteSRT: %v", err)
	}
	want := "1\n00:00:00,000 --> 00:00:01,500\nHELLO THERE\n\n" +
		"2\n00:00:01,500 --> 00:00:03,000\nFIRE 🔥 AWAY\n\n"
	if b.String() != want {
		t.Fatalf("WriteSRT output:\n%q\nwant:\n%q", b.String(), want)
	}
}

func TestArgs(t *testing.T) {
	style, _ := project.PresetStyle("alex-hormozi")
	args, err := Args("in.mp4", "/tmp/my:subs.srt", "out.mp4", Settings{Resolution: "1080x1920", FPS: 30, Quality: "high"}, style)
	if err != nil {
		t.Fatalf("Args: %v", err)
	}

	crf := slices.Index(args, "-crf")
	if crf < 0 || args[crf+1] != "18" {
		t.Fatalf("expected crf 18 in %v", args)
	}
	if args[len(args)-1] != "out.mp4" {
		t.Fatalf("expected output last, got %v", args)
	}
	vf := args[slices.Index(args, "-vf")+1]
	for _, want := range []string{
		"scale=1080:1920:force_original_aspect_ratio=decrease",
		"pad=1080:1920:(ow-iw)/2:(oh-ih)/2:black",
		`subtitles=/tmp/my\:subs.srt`,
		"PrimaryColour=&H00FFFFFF",
		"Outline=4",
		"Alignment=2",
		"Bold=1",
		"Spacing=2",
	} {
		if !strings.Contains(vf, want) {
			t.Errorf("filter %q missing %q", vf, want)
		}
	}
}

func TestArgsRejectsBadSettings(t *testing.T) {
	style := project.DefaultStyle()
	if _, err := Args("in", "s", "o", Settings{Resolution: "1080x1920", Quality: "potato"}, style); !errors.Is(err, ErrUnknownQuality) {
		t.Fatalf("expected ErrUnknownQuality, got %v", err)
	}
	if _, err := Args("in", "s", "o", Settings{Resolution: "big", Quality: "high"}, style); !errors.Is(err, ErrInvalidResolution) {
		t.Fatalf("expected ErrInvalidResolution, got %v", err)
	}
}

func TestForceStyleColoursAndAlignment(t *testing.T) {
	style := project.DefaultStyle()
	style.Color = "#FF6B00"
	style.Position = "top"
	style.Alignment = "left"
	style.FontWeight = "normal"

	got := ForceStyle(style)
	if !strings.Contains(got, "PrimaryColour=&H00006BFF") {
		t.Errorf("expected BGR colour, got %q", got)
	}
	if !strings.Contains(got, "Alignment=7") {
		t.Errorf("expected top-left alignment, got %q", got)
	}
	if strings.Contains(got, "Bold=1") {
		t.Errorf("normal weight should not be bold: %q", got)
	}
}

func TestParseProgress(t *testing.T) {
	tests := []struct {
		line   string
		want   float64
		wantOK bool
	}{
		{"out_time_us=5000000", 50, true},
		{"out_time_ms=20000000", 100, true},
		{"progress=continue", 0, false},
		{"progress=end", 100, true},
		{"frame=12", 0, false},
		{"garbage", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseProgress(tt.line, 10)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("ParseProgress(%q) = %v, %v; want %v, %v", tt.line, got, ok, tt.want, tt.wantOK)
		}
	}
}
