package format

import (
	"errors"
	"regexp"
	"sync"
	"testing"
	"time"
)

func TestFormatTime(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "0:00.00"},
		{65.256, "1:05.25"},
		{9.999, "0:09.99"},
		{600.5, "10:00.50"},
	}
	for _, tt := range tests {
		if got := FormatTime(tt.seconds); got != tt.want {
			t.Errorf("FormatTime(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "0:00"},
		{59.99, "0:59"},
		{61, "1:01"},
		{3725.4, "62:05"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.seconds); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestThrottleLeadingEdge(t *testing.T) {
	var mu sync.Mutex
	var calls []int
	throttled := Throttle(func(v int) {
		mu.Lock()
		calls = append(calls, v)
		mu.Unlock()
	}, 100*time.Millisecond)

	throttled(0)
	time.Sleep(50 * time.Millisecond)
	throttled(50)
	time.Sleep(100 * time.Millisecond)
	throttled(150)

	mu.Lock()
	defer mu.Unlock()
	if len(calls) != 2 {
		t.Fatalf("expected 2 invocations, got %v", calls)
	}
	if calls[0] != 0 || calls[1] != 150 {
		t.Fatalf("expected invocations at 0 and 150, got %v", calls)
	}
}

func TestGenerateID(t *testing.T) {
	pattern := regexp.MustCompile(`^[0-9a-z]{7}$`)
	seen := make(map[string]struct{})
	for i := 0; i < 200; i++ {
		id := GenerateID()
		if !pattern.MatchString(id) {
			t.Fatalf("unexpected id format %q", id)
		}
		seen[id] = struct{}{}
	}
	if len(seen) < 195 {
		t.Fatalf("expected mostly distinct ids, got %d unique of 200", len(seen))
	}
}

func TestInterpolateColor(t *testing.T) {
	tests := []struct {
		c1, c2 string
		factor float64
		want   string
	}{
		{"#000000", "#FFFFFF", 0.5, "#808080"},
		{"#000000", "#FFFFFF", 0, "#000000"},
		{"#000000", "#ffffff", 1, "#ffffff"},
		{"#FF0000", "#0000FF", 0.25, "#bf0040"},
		{"FFD700", "#FFFFFF", 0.5, "#ffeb80"},
	}
	for _, tt := range tests {
		got, err := InterpolateColor(tt.c1, tt.c2, tt.factor)
		if err != nil {
			t.Fatalf("InterpolateColor(%q, %q, %v): %v", tt.c1, tt.c2, tt.factor, err)
		}
		if got != tt.want {
			t.Errorf("InterpolateColor(%q, %q, %v) = %q, want %q", tt.c1, tt.c2, tt.factor, got, tt.want)
		}
	}
}

func TestInterpolateColorExtrapolates(t *testing.T) {
	got, err := InterpolateColor("#000000", "#100000", 2)
	if err != nil {
		t.Fatalf("InterpolateColor: %v", err)
	}
	if got != "#200000" {
		t.Fatalf("expected extrapolated #200000, got %q", got)
	}
}

func TestInterpolateColorRejectsMalformed(t *testing.T) {
	for _, c := range []string{"", "#fff", "#zzzzzz", "rgba(0,0,0,1)"} {
		if _, err := InterpolateColor(c, "#ffffff", 0.5); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("InterpolateColor(%q) error = %v, want ErrInvalidColor", c, err)
		}
	}
}

func TestTextShadowCSS(t *testing.T) {
	if got := TextShadowCSS("light"); got != "0 1px 2px rgba(0,0,0,0.5)" {
		t.Errorf("light = %q", got)
	}
	if got := TextShadowCSS("heavy"); got == "none" || got == "" {
		t.Errorf("heavy = %q", got)
	}
	if got := TextShadowCSS("extreme"); got != "none" {
		t.Errorf("unknown shadow = %q, want none", got)
	}
}

func TestAnimationCSS(t *testing.T) {
	tests := map[string]string{
		"pop":      "animate-pop-in",
		"slide-up": "animate-slide-up",
		"fade":     "animate-fade-in",
		"bounce":   "animate-bounce-in",
		"spin":     "",
	}
	for in, want := range tests {
		if got := AnimationCSS(in); got != want {
			t.Errorf("AnimationCSS(%q) = %q, want %q", in, got, want)
		}
	}
}
