package format

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor is returned when a colour is not a #RRGGBB hex string.
var ErrInvalidColor = errors.New("invalid hex color")

// InterpolateColor blends two #RRGGBB colours channel by channel. factor is
// not clamped, so values outside [0, 1] extrapolate; channels that leave the
// 0-255 range are encoded as-is.
func InterpolateColor(color1, color2 string, factor float64) (string, error) {
	r1, g1, b1, err := hexChannels(color1)
	if err != nil {
		return "", err
	}
	r2, g2, b2, err := hexChannels(color2)
	if err != nil {
		return "", err
	}

	r := lerpChannel(r1, r2, factor)
	g := lerpChannel(g1, g2, factor)
	b := lerpChannel(b1, b2, factor)

	return fmt.Sprintf("#%02x%02x%02x", r, g, b), nil
}

func hexChannels(color string) (int, int, int, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(color), "#")
	if len(hex) != 6 {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidColor, color)
	}
	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidColor, color)
	}
	return toByte(c.R), toByte(c.G), toByte(c.B), nil
}

func toByte(v float64) int {
	return int(math.Round(v * 255))
}

// lerpChannel rounds half up, including for negative results.
func lerpChannel(from, to int, factor float64) int {
	return int(math.Floor(float64(from) + float64(to-from)*factor + 0.5))
}
