package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aschmelyun/tcaption/internal/derived"
	"github.com/aschmelyun/tcaption/internal/export"
	"github.com/aschmelyun/tcaption/internal/format"
	"github.com/aschmelyun/tcaption/internal/project"
	"github.com/aschmelyun/tcaption/internal/transcribe"
)

const (
	seekStep         = 1.0
	brollNudge       = 0.5
	defaultBRollSpan = 3.0
)

func extractAudioCmd(ed *editor) tea.Cmd {
	return func() tea.Msg {
		audioFile, err := transcribe.ExtractAudio(ed.ctx, ed.cfg.FFmpegPath, ed.inputFile, os.TempDir())
		if err != nil {
			return errorMsg{err: err}
		}
		return audioExtractedMsg{audioFile: audioFile}
	}
}

func transcribeAudioCmd(ed *editor, audioFile string) tea.Cmd {
	return func() tea.Msg {
		defer os.Remove(audioFile)

		resp, err := ed.client.Transcribe(ed.ctx, audioFile, transcribe.Options{
			Language: ed.cfg.Language,
			Prompt:   ed.cfg.Prompt,
		})
		if err != nil {
			return errorMsg{err: err}
		}
		return transcriptionDoneMsg{response: resp}
	}
}

func saveCmd(ed *editor) tea.Cmd {
	return func() tea.Msg {
		if err := ed.save(); err != nil {
			return errorMsg{err: err}
		}
		return savedMsg{path: ed.file.Path()}
	}
}

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg { return tickMsg{} })
}

// exportCmd writes the captions to a temporary SRT file and burns them into
// the video. Progress is published through the UI store.
func exportCmd(ed *editor) tea.Cmd {
	p := ed.projects.Get()
	return func() tea.Msg {
		if p == nil {
			return exportErrorMsg{err: fmt.Errorf("no project loaded")}
		}

		srt, err := os.CreateTemp("", "tcaption-*.srt")
		if err != nil {
			return exportErrorMsg{err: fmt.Errorf("failed to create subtitle file: %w", err)}
		}
		defer os.Remove(srt.Name())

		if err := export.WriteSRT(srt, p.Captions, p.Style); err != nil {
			srt.Close()
			return exportErrorMsg{err: fmt.Errorf("failed to write subtitles: %w", err)}
		}
		if err := srt.Close(); err != nil {
			return exportErrorMsg{err: fmt.Errorf("failed to write subtitles: %w", err)}
		}

		basename := strings.TrimSuffix(filepath.Base(ed.inputFile), filepath.Ext(ed.inputFile))
		outputFile := filepath.Join(filepath.Dir(ed.inputFile), basename+"_captioned.mp4")

		settings := export.Settings{
			Resolution: p.Resolution,
			FPS:        ed.cfg.Export.FPS,
			Quality:    ed.cfg.Export.Quality,
		}
		if settings.Resolution == "" {
			settings.Resolution = ed.cfg.Export.Resolution
		}
		args, err := export.Args(ed.inputFile, srt.Name(), outputFile, settings, p.Style)
		if err != nil {
			return exportErrorMsg{err: err}
		}

		ed.log.WithFields(map[string]interface{}{
			"output":     outputFile,
			"resolution": settings.Resolution,
			"quality":    settings.Quality,
		}).Info("export started")

		report := format.Throttle(func(pct float64) {
			ed.ui.SetExport(true, pct)
		}, 250*time.Millisecond)

		if err := export.Run(ed.ctx, ed.cfg.FFmpegPath, args, p.VideoDuration, report); err != nil {
			return exportErrorMsg{err: err}
		}
		return exportDoneMsg{outputFile: outputFile}
	}
}

func previewCmd(ed *editor, start, end float64) tea.Cmd {
	return func() tea.Msg {
		if err := previewVideo(ed.ctx, ed.cfg.MPVPath, ed.inputFile, start, end); err != nil {
			return previewErrorMsg{err: err}
		}
		return nil
	}
}

func previewVideo(ctx context.Context, mpv, inputFile string, start, end float64) error {
	cmd := exec.CommandContext(ctx, mpv, fmt.Sprintf("--start=%.3f", start), fmt.Sprintf("--end=%.3f", end), inputFile)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("mpv preview failed: %w: %s", err, strings.TrimSpace(tail(string(out), 200)))
	}
	return nil
}

func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}

func captionItems(p *project.Project) []list.Item {
	if p == nil {
		return nil
	}
	items := make([]list.Item, len(p.Captions))
	for i, c := range p.Captions {
		items[i] = item{caption: c, index: i}
	}
	return items
}

// renderCaption draws the caption under the playhead in the project style.
func renderCaption(style project.Style, active derived.Active) string {
	if active.Caption == nil {
		return DimTextStyle.Render("no caption at this time")
	}

	base := lipgloss.NewStyle().Foreground(lipgloss.Color(style.Color))
	if style.FontWeight == "bold" || style.FontWeight == "900" {
		base = base.Bold(true)
	}

	words := active.Caption.Words
	if len(words) == 0 {
		return base.Render(applyTransform(active.Caption.Text, style.TextTransform))
	}

	var parts []string
	for i, w := range words {
		if style.WordByWord && active.WordIndex >= 0 && i > active.WordIndex {
			break
		}
		text := applyTransform(w.Text, style.TextTransform)
		if w.Emoji != nil {
			text += " " + *w.Emoji
		}

		ws := base
		if w.IsKeyword {
			ws = ws.Underline(true)
		}
		if style.HighlightWords && i == active.WordIndex {
			ws = ws.Foreground(lipgloss.Color(highlightColor(style, w, active.Time)))
		}
		parts = append(parts, ws.Render(text))
	}
	return strings.Join(parts, " ")
}

// highlightColor fades from the text colour to the highlight colour over the
// first half of the word.
func highlightColor(style project.Style, w project.Word, now float64) string {
	target := style.HighlightColor
	if target == "" {
		target = "#FFD700"
	}
	span := (w.End - w.Start) / 2
	factor := 1.0
	if span > 0 {
		factor = min(1, max(0, (now-w.Start)/span))
	}
	color, err := format.InterpolateColor(style.Color, target, factor)
	if err != nil {
		return target
	}
	return color
}

func applyTransform(text, mode string) string {
	switch mode {
	case "uppercase":
		return strings.ToUpper(text)
	case "lowercase":
		return strings.ToLower(text)
	default:
		return text
	}
}

func verticalPosition(position string) lipgloss.Position {
	switch position {
	case "top":
		return lipgloss.Top
	case "middle":
		return lipgloss.Center
	default:
		return lipgloss.Bottom
	}
}

func horizontalPosition(alignment string) lipgloss.Position {
	switch alignment {
	case "left":
		return lipgloss.Left
	case "right":
		return lipgloss.Right
	default:
		return lipgloss.Center
	}
}

// targetBRoll picks the clip under the playhead, or the most recently added
// one.
func targetBRoll(p *project.Project, t float64) (project.BRollClip, bool) {
	if p == nil || len(p.BRollClips) == 0 {
		return project.BRollClip{}, false
	}
	for _, c := range p.BRollClips {
		if t >= c.Start && t <= c.Start+c.Duration {
			return c, true
		}
	}
	return p.BRollClips[len(p.BRollClips)-1], true
}

func styleOutput(statuses []string) string {
	var styledStatuses []string
	for i, status := range statuses {
		bullet := "├"
		if i == len(statuses)-1 {
			bullet = "└"
		}
		styledStatuses = append(styledStatuses, BulletStyle.Render(bullet)+TextStyle.Render(status))
	}
	return strings.Join(styledStatuses, "\n") + "\n"
}

func checkDependency(command string) bool {
	_, err := exec.LookPath(command)
	return err == nil
}

func getSystemUser() string {
	username := os.Getenv("USER")
	if username == "" {
		username = os.Getenv("USERNAME") // Windows fallback
	}
	if username == "" {
		username = "anon" // Default fallback
	}

	return username
}
