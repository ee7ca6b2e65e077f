// Package transcribe turns a video into word-timed captions using ffmpeg and
// the OpenAI transcription API.
package transcribe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/aschmelyun/tcaption/internal/project"
)

// Response is the verbose_json transcription payload.
type Response struct {
	Text     string    `json:"text"`
	Language string    `json:"language"`
	Duration float64   `json:"duration"`
	Segments []Segment `json:"segments"`
	Words    []Word    `json:"words"`
}

type Segment struct {
	ID    int     `json:"id"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

type Word struct {
	Word        string  `json:"word"`
	Start       float64 `json:"start"`
	End         float64 `json:"end"`
	Probability float64 `json:"probability,omitempty"`
}

// Options tune a transcription request.
type Options struct {
	Language string
	Prompt   string
}

// Client calls the transcription endpoint.
type Client struct {
	BaseURL    string
	APIKey     string
	Model      string
	HTTPClient *http.Client
}

// NewClient returns a client with a generous timeout for long uploads.
func NewClient(baseURL, apiKey, model string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		APIKey:     apiKey,
		Model:      model,
		HTTPClient: &http.Client{Timeout: 10 * time.Minute},
	}
}

// ExtractAudio writes an mp3 of the video's audio track into dir and returns
// its path.
func ExtractAudio(ctx context.Context, ffmpeg, inputFile, dir string) (string, error) {
	basename := strings.TrimSuffix(filepath.Base(inputFile), filepath.Ext(inputFile))
	audioFile := filepath.Join(dir, basename+".mp3")

	cmd := exec.CommandContext(ctx, ffmpeg, "-y", "-i", inputFile, "-vn", audioFile)
	if out, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("failed to extract audio: %w: %s", err, tail(out, 300))
	}
	return audioFile, nil
}

// Transcribe uploads audioFile and returns segment and word timings.
func (c *Client) Transcribe(ctx context.Context, audioFile string, opts Options) (*Response, error) {
	if c.APIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is not set")
	}

	file, err := os.Open(audioFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio file: %w", err)
	}
	defer file.Close()

	var b bytes.Buffer
	writer := multipart.NewWriter(&b)

	part, err := writer.CreateFormFile("file", filepath.Base(audioFile))
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("failed to copy file: %w", err)
	}

	fields := [][2]string{
		{"model", c.Model},
		{"response_format", "verbose_json"},
		{"timestamp_granularities[]", "word"},
		{"timestamp_granularities[]", "segment"},
	}
	if opts.Language != "" && opts.Language != "auto" {
		fields = append(fields, [2]string{"language", opts.Language})
	}
	if opts.Prompt != "" {
		fields = append(fields, [2]string{"prompt", opts.Prompt})
	}
	for _, f := range fields {
		if err := writer.WriteField(f[0], f[1]); err != nil {
			return nil, fmt.Errorf("failed to write field %s: %w", f[0], err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to close writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/audio/transcriptions", &b)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, tail(body, 500))
	}

	var out Response
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &out, nil
}

// BuildCaptions turns each segment into a caption holding the words that fall
// entirely inside it. Caption ids are caption_<n>.
func BuildCaptions(resp *Response) []project.Caption {
	if resp == nil {
		return []project.Caption{}
	}
	captions := make([]project.Caption, 0, len(resp.Segments))
	for i, seg := range resp.Segments {
		words := []project.Word{}
		for _, w := range resp.Words {
			if w.Start >= seg.Start && w.End <= seg.End {
				confidence := w.Probability
				if confidence == 0 {
					confidence = 0.9
				}
				words = append(words, project.Word{
					Text:       strings.TrimSpace(w.Word),
					Start:      w.Start,
					End:        w.End,
					Confidence: confidence,
				})
			}
		}
		captions = append(captions, project.Caption{
			ID:    fmt.Sprintf("caption_%d", i),
			Start: seg.Start,
			End:   seg.End,
			Text:  strings.TrimSpace(seg.Text),
			Words: words,
		})
	}
	return captions
}

// Duration returns the reported media duration, or the end of the last
// caption when the API omitted it.
func Duration(resp *Response, captions []project.Caption) float64 {
	if resp != nil && resp.Duration > 0 {
		return resp.Duration
	}
	if len(captions) == 0 {
		return 0
	}
	return captions[len(captions)-1].End
}

func tail(b []byte, n int) string {
	s := strings.TrimSpace(string(b))
	if len(s) > n {
		return s[len(s)-n:]
	}
	return s
}
