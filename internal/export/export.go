// Package export renders captions to SRT and burns them into the video with
// ffmpeg.
package export

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os/exec"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/aschmelyun/tcaption/internal/project"
)

var (
	ErrUnknownQuality    = errors.New("unknown export quality")
	ErrInvalidResolution = errors.New("invalid resolution")
)

var crfByQuality = map[string]string{
	"standard": "23",
	"high":     "18",
	"ultra":    "15",
}

// Settings control the encoded output.
type Settings struct {
	Resolution string
	FPS        int
	Quality    string
}

// SRTTimestamp formats seconds as HH:MM:SS,mmm. Milliseconds are truncated.
func SRTTimestamp(seconds float64) string {
	hours := int(math.Floor(seconds / 3600))
	minutes := int(math.Floor(math.Mod(seconds, 3600) / 60))
	secs := int(math.Floor(math.Mod(seconds, 60)))
	millis := int((seconds - math.Trunc(seconds)) * 1000)
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, secs, millis)
}

// WriteSRT writes one cue per caption. When any word carries an emoji the cue
// text is rebuilt from the words so the emoji follow them; otherwise the
// caption text is used. The style's text transform is applied.
func WriteSRT(w io.Writer, captions []project.Caption, style project.Style) error {
	bw := bufio.NewWriter(w)
	for i, c := range captions {
		fmt.Fprintf(bw, "%d\n%s --> %s\n%s\n\n", i+1, SRTTimestamp(c.Start), SRTTimestamp(c.End), transform(cueText(c), style.TextTransform))
	}
	return bw.Flush()
}

func cueText(c project.Caption) string {
	withEmoji := false
	for _, w := range c.Words {
		if w.Emoji != nil {
			withEmoji = true
			break
		}
	}
	if !withEmoji || len(c.Words) == 0 {
		return strings.TrimSpace(c.Text)
	}
	parts := make([]string, 0, len(c.Words))
	for _, w := range c.Words {
		text := w.Text
		if w.Emoji != nil {
			text += " " + *w.Emoji
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, " ")
}

func transform(text, mode string) string {
	switch mode {
	case "uppercase":
		return strings.ToUpper(text)
	case "lowercase":
		return strings.ToLower(text)
	default:
		return text
	}
}

// ParseResolution splits WIDTHxHEIGHT.
func ParseResolution(resolution string) (int, int, error) {
	w, h, ok := strings.Cut(strings.ToLower(resolution), "x")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidResolution, resolution)
	}
	width, err := strconv.Atoi(w)
	if err != nil || width <= 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidResolution, resolution)
	}
	height, err := strconv.Atoi(h)
	if err != nil || height <= 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidResolution, resolution)
	}
	return width, height, nil
}

// Args builds the ffmpeg command line that scales and pads the video to the
// target resolution and burns in the subtitles at srtPath.
func Args(inputFile, srtPath, outputFile string, settings Settings, style project.Style) ([]string, error) {
	width, height, err := ParseResolution(settings.Resolution)
	if err != nil {
		return nil, err
	}
	crf, ok := crfByQuality[settings.Quality]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownQuality, settings.Quality)
	}
	fps := settings.FPS
	if fps <= 0 {
		fps = 30
	}

	filter := fmt.Sprintf(
		"scale=%d:%d:force_original_aspect_ratio=decrease,pad=%d:%d:(ow-iw)/2:(oh-ih)/2:black,subtitles=%s:force_style='%s'",
		width, height, width, height, escapeFilterValue(srtPath), ForceStyle(style),
	)

	return []string{
		"-y",
		"-i", inputFile,
		"-vf", filter,
		"-c:v", "libx264",
		"-preset", "fast",
		"-crf", crf,
		"-r", strconv.Itoa(fps),
		"-c:a", "copy",
		"-movflags", "+faststart",
		"-progress", "pipe:1",
		"-nostats",
		outputFile,
	}, nil
}

// ForceStyle maps the caption style onto libass style overrides.
func ForceStyle(style project.Style) string {
	parts := []string{
		"FontName=" + style.FontFamily,
		fmt.Sprintf("FontSize=%d", int(math.Round(style.FontSize/2))),
		"PrimaryColour=" + assColour(style.Color, "&H00FFFFFF"),
		"OutlineColour=&H00000000",
		fmt.Sprintf("Outline=%d", outlineWidth(style.TextShadow)),
		fmt.Sprintf("Alignment=%d", assAlignment(style.Position, style.Alignment)),
	}
	if isBold(style.FontWeight) {
		parts = append(parts, "Bold=1")
	}
	if style.LetterSpacing != 0 {
		parts = append(parts, fmt.Sprintf("Spacing=%g", style.LetterSpacing))
	}
	return strings.Join(parts, ",")
}

// assColour converts #RRGGBB to libass &HAABBGGRR.
func assColour(hex, fallback string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return fallback
	}
	r, g, b := c.RGB255()
	return fmt.Sprintf("&H00%02X%02X%02X", b, g, r)
}

func outlineWidth(shadow string) int {
	switch shadow {
	case "light":
		return 1
	case "medium":
		return 2
	case "heavy":
		return 4
	default:
		return 0
	}
}

// assAlignment uses the numpad layout libass expects.
func assAlignment(position, alignment string) int {
	base := 2
	switch position {
	case "middle":
		base = 5
	case "top":
		base = 8
	}
	switch alignment {
	case "left":
		return base - 1
	case "right":
		return base + 1
	default:
		return base
	}
}

func isBold(weight string) bool {
	switch weight {
	case "bold", "bolder", "600", "700", "800", "900":
		return true
	}
	return false
}

func escapeFilterValue(v string) string {
	r := strings.NewReplacer(`\`, `\\`, `:`, `\:`, `'`, `\'`)
	return r.Replace(v)
}

// ParseProgress reads one line of ffmpeg -progress output and returns the
// completion percentage when the line carries one.
func ParseProgress(line string, duration float64) (float64, bool) {
	key, value, ok := strings.Cut(strings.TrimSpace(line), "=")
	if !ok {
		return 0, false
	}
	switch key {
	case "progress":
		if value == "end" {
			return 100, true
		}
	case "out_time_us", "out_time_ms":
		us, err := strconv.ParseFloat(value, 64)
		if err != nil || duration <= 0 {
			return 0, false
		}
		pct := us / 1e6 / duration * 100
		return math.Max(0, math.Min(100, pct)), true
	}
	return 0, false
}

// Run executes ffmpeg with args and reports progress while it encodes.
func Run(ctx context.Context, ffmpeg string, args []string, duration float64, onProgress func(float64)) error {
	cmd := exec.CommandContext(ctx, ffmpeg, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("ffmpeg stdout: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start ffmpeg: %w", err)
	}

	scanner := bufio.NewScanner(stdout)
	for scanner.Scan() {
		if pct, ok := ParseProgress(scanner.Text(), duration); ok && onProgress != nil {
			onProgress(pct)
		}
	}

	if err := cmd.Wait(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if len(msg) > 500 {
			msg = msg[len(msg)-500:]
		}
		return fmt.Errorf("ffmpeg export failed: %w: %s", err, msg)
	}
	return nil
}
