package main

import (
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aschmelyun/tcaption/internal/config"
	"github.com/aschmelyun/tcaption/internal/derived"
	"github.com/aschmelyun/tcaption/internal/logging"
	"github.com/aschmelyun/tcaption/internal/project"
	"github.com/aschmelyun/tcaption/internal/projectfile"
)

func testProject() *project.Project {
	p := project.NewProject("p1", "clip", "clip.mp4", time.Unix(0, 0))
	p.VideoDuration = 10
	p.Captions = []project.Caption{
		{
			ID: "caption_0", Start: 0, End: 2, Text: "hello big world",
			Words: []project.Word{
				{Text: "hello", Start: 0, End: 0.5, Confidence: 0.9},
				{Text: "big", Start: 0.6, End: 1.2, Confidence: 0.9},
				{Text: "world!", Start: 1.3, End: 2, Confidence: 0.9},
			},
		},
		{ID: "caption_1", Start: 3, End: 4, Text: "bye"},
	}
	return p
}

func testEditor(t *testing.T) *editor {
	t.Helper()
	cfg := config.Default()
	ed := newEditor(&cfg, logging.Discard(), nil, nil, "clip.mp4")
	t.Cleanup(ed.close)
	ed.load(testProject())
	return ed
}

func TestCaptionItems(t *testing.T) {
	if items := captionItems(nil); items != nil {
		t.Fatalf("expected no items for nil project, got %d", len(items))
	}

	items := captionItems(testProject())
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	second := items[1].(item)
	if second.index != 1 || second.FilterValue() != "bye" {
		t.Fatalf("unexpected item %+v", second)
	}
}

func TestTargetBRoll(t *testing.T) {
	if _, ok := targetBRoll(nil, 0); ok {
		t.Fatal("expected no clip for nil project")
	}

	p := testProject()
	p.BRollClips = []project.BRollClip{
		{ID: "a", Start: 1, Duration: 2},
		{ID: "b", Start: 5, Duration: 1},
	}

	tests := []struct {
		at   float64
		want string
	}{
		{at: 2, want: "a"},
		{at: 5.5, want: "b"},
		{at: 9, want: "b"},
	}
	for _, tt := range tests {
		clip, ok := targetBRoll(p, tt.at)
		if !ok || clip.ID != tt.want {
			t.Errorf("targetBRoll(%v) = %q, %v; want %q", tt.at, clip.ID, ok, tt.want)
		}
	}
}

func TestHighlightColorFadesAcrossFirstHalf(t *testing.T) {
	style := project.DefaultStyle()
	style.Color = "#000000"
	style.HighlightColor = "#ffffff"
	w := project.Word{Text: "hi", Start: 1, End: 2}

	tests := []struct {
		now  float64
		want string
	}{
		{now: 1, want: "#000000"},
		{now: 1.25, want: "#808080"},
		{now: 1.5, want: "#ffffff"},
		{now: 1.9, want: "#ffffff"},
	}
	for _, tt := range tests {
		if got := highlightColor(style, w, tt.now); got != tt.want {
			t.Errorf("highlightColor at %v = %s, want %s", tt.now, got, tt.want)
		}
	}

	style.Color = "red"
	if got := highlightColor(style, w, 1.2); got != "#ffffff" {
		t.Errorf("expected fallback to highlight colour, got %s", got)
	}
}

func TestRenderCaption(t *testing.T) {
	p := testProject()

	if got := renderCaption(p.Style, derived.Compute(p, 2.5)); !strings.Contains(got, "no caption") {
		t.Fatalf("expected placeholder between captions, got %q", got)
	}

	style := p.Style
	style.TextTransform = "uppercase"
	style.WordByWord = true
	got := renderCaption(style, derived.Compute(p, 0.8))
	if !strings.Contains(got, "HELLO") || !strings.Contains(got, "BIG") {
		t.Fatalf("expected revealed words in %q", got)
	}
	if strings.Contains(got, "WORLD") {
		t.Fatalf("word-by-word should hide upcoming words, got %q", got)
	}
}

func TestEditorTracksActiveWord(t *testing.T) {
	ed := testEditor(t)

	ed.seek(0.8)
	if got := ed.ui.Get().ActiveWordIndex; got != 1 {
		t.Fatalf("expected active word 1, got %d", got)
	}

	ed.seek(1.7)
	if got := ed.ui.Get().ActiveWordIndex; got != -1 {
		t.Fatalf("expected no active word between captions, got %d", got)
	}

	ed.seek(-100)
	if got := ed.player.Get().CurrentTime; got != 0 {
		t.Fatalf("seek should clamp at 0, got %v", got)
	}
	ed.seek(100)
	if got := ed.player.Get().CurrentTime; got != 10 {
		t.Fatalf("seek should clamp at duration, got %v", got)
	}
}

func TestEditorWordEdits(t *testing.T) {
	ed := testEditor(t)
	ed.seek(0.8)

	if !ed.toggleKeyword() {
		t.Fatal("expected a word under the playhead")
	}
	if !ed.projects.Get().Captions[0].Words[1].IsKeyword {
		t.Fatal("expected keyword to be set")
	}

	ed.setEmoji("caption_0", 1, " 🔥 ")
	w := ed.projects.Get().Captions[0].Words[1]
	if w.Emoji == nil || *w.Emoji != "🔥" {
		t.Fatalf("unexpected emoji %v", w.Emoji)
	}
	ed.setEmoji("caption_0", 1, "")
	if ed.projects.Get().Captions[0].Words[1].Emoji != nil {
		t.Fatal("expected emoji to be cleared")
	}

	ed.setCaptionText("caption_1", "  see you  ")
	if got := ed.projects.Get().Captions[1].Text; got != "see you" {
		t.Fatalf("unexpected caption text %q", got)
	}

	ed.seek(1.7)
	if ed.toggleKeyword() {
		t.Fatal("expected no word in the gap before the second caption")
	}
}

func TestEditorPresetsAndStyleToggles(t *testing.T) {
	ed := testEditor(t)

	first := ed.cyclePreset()
	if first != project.PresetNames[(ed.preset)] {
		t.Fatalf("preset index out of sync: %s", first)
	}
	want, _ := project.PresetStyle(first)
	if ed.projects.Get().Style != want {
		t.Fatalf("expected style of %s to be applied", first)
	}

	before := ed.projects.Get().Style.HighlightWords
	ed.toggleHighlight()
	if ed.projects.Get().Style.HighlightWords == before {
		t.Fatal("expected highlight to toggle")
	}

	before = ed.projects.Get().Style.WordByWord
	ed.toggleWordByWord()
	if ed.projects.Get().Style.WordByWord == before {
		t.Fatal("expected word-by-word to toggle")
	}
}

func TestEditorBRoll(t *testing.T) {
	ed := testEditor(t)
	ed.seek(1.5)

	id := ed.addBRoll()
	clips := ed.projects.Get().BRollClips
	if len(clips) != 1 || clips[0].ID != id {
		t.Fatalf("unexpected clips %+v", clips)
	}
	if clips[0].Keyword != "world" || clips[0].Start != 1.5 || clips[0].Duration != defaultBRollSpan {
		t.Fatalf("unexpected clip %+v", clips[0])
	}

	ed.nudgeBRoll(-5)
	if got := ed.projects.Get().BRollClips[0].Start; got != 0 {
		t.Fatalf("start should clamp at 0, got %v", got)
	}

	ed.resizeBRoll(-10)
	if got := ed.projects.Get().BRollClips[0].Duration; got != project.MinBRollDuration {
		t.Fatalf("duration should clamp at minimum, got %v", got)
	}

	if !ed.removeBRoll() {
		t.Fatal("expected clip to be removed")
	}
	if ed.removeBRoll() {
		t.Fatal("expected nothing left to remove")
	}
}

func TestEditorEffects(t *testing.T) {
	ed := testEditor(t)

	ed.addZoom()
	ed.scaleLastZoom(0.3)
	zoom := ed.projects.Get().ZoomEffects[0]
	if scale, _ := zoom.Params["scale"].(float64); scale < 1.49 || scale > 1.51 {
		t.Fatalf("unexpected zoom scale %v", zoom.Params["scale"])
	}
	ed.scaleLastZoom(-5)
	if scale, _ := ed.projects.Get().ZoomEffects[0].Params["scale"].(float64); scale != 1 {
		t.Fatalf("zoom scale should not drop below 1, got %v", scale)
	}
	ed.removeLastZoom()
	if n := len(ed.projects.Get().ZoomEffects); n != 0 {
		t.Fatalf("expected no zoom effects, got %d", n)
	}

	ed.addSound()
	ed.toggleLastSoundMute()
	sound := ed.projects.Get().SoundEffects[0]
	if sound.Params["volume"] != 0.0 || sound.Params["name"] != "whoosh" {
		t.Fatalf("unexpected sound params %v", sound.Params)
	}
	ed.toggleLastSoundMute()
	if v := ed.projects.Get().SoundEffects[0].Params["volume"]; v != 0.8 {
		t.Fatalf("expected volume restored, got %v", v)
	}
	ed.removeLastSound()
	if n := len(ed.projects.Get().SoundEffects); n != 0 {
		t.Fatalf("expected no sound effects, got %d", n)
	}
}

func TestOnlyExportFailuresClearExportFlag(t *testing.T) {
	ed := testEditor(t)
	m := model{ed: ed}
	ed.ui.SetExport(true, 40)

	next, _ := m.Update(errorMsg{err: errors.New("save failed")})
	if !ed.ui.Get().IsExporting {
		t.Fatal("save error cleared the export flag while ffmpeg was still running")
	}

	next, _ = next.Update(previewErrorMsg{err: errors.New("mpv missing")})
	if !ed.ui.Get().IsExporting {
		t.Fatal("preview error cleared the export flag")
	}

	next.Update(exportErrorMsg{err: errors.New("ffmpeg exited")})
	ui := ed.ui.Get()
	if ui.IsExporting || ui.ExportProgress != 40 {
		t.Fatalf("expected export to stop at 40%%, got %+v", ui)
	}
}

func TestPreviewReportsMissingPlayer(t *testing.T) {
	ed := testEditor(t)
	ed.cfg.MPVPath = filepath.Join(t.TempDir(), "no-such-mpv")

	msg := previewCmd(ed, 0, 1)()
	if _, ok := msg.(previewErrorMsg); !ok {
		t.Fatalf("expected previewErrorMsg, got %T", msg)
	}
}

func TestAutosaverWritesLastSnapshot(t *testing.T) {
	var mu sync.Mutex
	var saved []string
	a := newAutosaver(50*time.Millisecond, func(p *project.Project) {
		mu.Lock()
		defer mu.Unlock()
		saved = append(saved, p.Name)
	})

	for _, name := range []string{"first", "second", "third"} {
		p := testProject()
		p.Name = name
		a.schedule(p)
	}

	time.Sleep(150 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if len(saved) != 2 || saved[0] != "first" || saved[1] != "third" {
		t.Fatalf("expected leading and trailing saves, got %v", saved)
	}
}

func TestAutosavePersistsEditsInsideWindow(t *testing.T) {
	file, err := projectfile.Open(filepath.Join(t.TempDir(), "clip"+projectfile.Extension))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	cfg := config.Default()
	cfg.AutosaveSeconds = 1
	ed := newEditor(&cfg, logging.Discard(), file, nil, "clip.mp4")
	t.Cleanup(ed.close)

	ed.load(testProject())
	ed.setCaptionText("caption_0", "first edit")
	ed.setCaptionText("caption_0", "second edit")

	time.Sleep(1500 * time.Millisecond)

	got, err := file.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if text := got.Captions[0].Text; text != "second edit" {
		t.Fatalf("expected last edit on disk, got %q", text)
	}
}
