package project

// Style is the presentation of burned-in captions.
type Style struct {
	FontFamily      string  `json:"fontFamily"`
	FontWeight      string  `json:"fontWeight"`
	FontSize        float64 `json:"fontSize" validate:"gt=0"`
	Color           string  `json:"color" validate:"omitempty,hexcolor"`
	BackgroundColor string  `json:"backgroundColor"`
	TextTransform   string  `json:"textTransform" validate:"omitempty,oneof=none uppercase lowercase capitalize"`
	TextShadow      string  `json:"textShadow"`
	Animation       string  `json:"animation"`
	Position        string  `json:"position" validate:"omitempty,oneof=top middle bottom"`
	Alignment       string  `json:"alignment" validate:"omitempty,oneof=left center right"`
	HighlightWords  bool    `json:"highlightWords"`
	HighlightColor  string  `json:"highlightColor,omitempty" validate:"omitempty,hexcolor"`
	WordByWord      bool    `json:"wordByWord"`
	LetterSpacing   float64 `json:"letterSpacing"`
	LineHeight      float64 `json:"lineHeight"`
}

// StylePatch is a partial Style; non-nil fields override.
type StylePatch struct {
	FontFamily      *string
	FontWeight      *string
	FontSize        *float64
	Color           *string
	BackgroundColor *string
	TextTransform   *string
	TextShadow      *string
	Animation       *string
	Position        *string
	Alignment       *string
	HighlightWords  *bool
	HighlightColor  *string
	WordByWord      *bool
	LetterSpacing   *float64
	LineHeight      *float64
}

// Merge returns a copy of s with every field set in p applied.
func (s Style) Merge(p StylePatch) Style {
	setString(&s.FontFamily, p.FontFamily)
	setString(&s.FontWeight, p.FontWeight)
	setFloat(&s.FontSize, p.FontSize)
	setString(&s.Color, p.Color)
	setString(&s.BackgroundColor, p.BackgroundColor)
	setString(&s.TextTransform, p.TextTransform)
	setString(&s.TextShadow, p.TextShadow)
	setString(&s.Animation, p.Animation)
	setString(&s.Position, p.Position)
	setString(&s.Alignment, p.Alignment)
	setBool(&s.HighlightWords, p.HighlightWords)
	setString(&s.HighlightColor, p.HighlightColor)
	setBool(&s.WordByWord, p.WordByWord)
	setFloat(&s.LetterSpacing, p.LetterSpacing)
	setFloat(&s.LineHeight, p.LineHeight)
	return s
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

// DefaultStyle is the style every project starts with and every preset is
// layered on top of.
func DefaultStyle() Style {
	return Style{
		FontFamily:      "Inter",
		FontSize:        42,
		FontWeight:      "bold",
		Color:           "#FFFFFF",
		BackgroundColor: "transparent",
		TextTransform:   "none",
		TextShadow:      "medium",
		Animation:       "pop",
		Position:        "bottom",
		Alignment:       "center",
		LetterSpacing:   0,
		LineHeight:      1.2,
		HighlightWords:  false,
		WordByWord:      false,
	}
}

// PresetNames lists the built-in presets in display order.
var PresetNames = []string{"alex-hormozi", "minimal", "modern-vibe", "tiktok-viral"}

var presets = map[string]StylePatch{
	"alex-hormozi": {
		FontFamily:      Ptr("Inter"),
		FontWeight:      Ptr("900"),
		FontSize:        Ptr(48.0),
		Color:           Ptr("#FFFFFF"),
		BackgroundColor: Ptr("transparent"),
		TextTransform:   Ptr("uppercase"),
		TextShadow:      Ptr("heavy"),
		Animation:       Ptr("pop"),
		Position:        Ptr("bottom"),
		Alignment:       Ptr("center"),
		HighlightWords:  Ptr(true),
		HighlightColor:  Ptr("#FFD700"),
		WordByWord:      Ptr(true),
		LetterSpacing:   Ptr(2.0),
		LineHeight:      Ptr(1.2),
	},
	"minimal": {
		FontFamily:      Ptr("Inter"),
		FontWeight:      Ptr("normal"),
		FontSize:        Ptr(36.0),
		Color:           Ptr("#FFFFFF"),
		BackgroundColor: Ptr("rgba(0,0,0,0.6)"),
		TextTransform:   Ptr("none"),
		TextShadow:      Ptr("light"),
		Animation:       Ptr("fade"),
		Position:        Ptr("bottom"),
		Alignment:       Ptr("center"),
		HighlightWords:  Ptr(false),
		WordByWord:      Ptr(false),
	},
	"modern-vibe": {
		FontFamily:      Ptr("Inter"),
		FontWeight:      Ptr("bold"),
		FontSize:        Ptr(42.0),
		Color:           Ptr("#FFFFFF"),
		BackgroundColor: Ptr("transparent"),
		TextTransform:   Ptr("none"),
		TextShadow:      Ptr("medium"),
		Animation:       Ptr("slide-up"),
		Position:        Ptr("middle"),
		Alignment:       Ptr("center"),
		HighlightWords:  Ptr(true),
		HighlightColor:  Ptr("#FF6B6B"),
		WordByWord:      Ptr(true),
	},
	"tiktok-viral": {
		FontFamily:      Ptr("Inter"),
		FontWeight:      Ptr("900"),
		FontSize:        Ptr(52.0),
		Color:           Ptr("#FFFFFF"),
		BackgroundColor: Ptr("transparent"),
		TextTransform:   Ptr("uppercase"),
		TextShadow:      Ptr("heavy"),
		Animation:       Ptr("bounce"),
		Position:        Ptr("middle"),
		Alignment:       Ptr("center"),
		HighlightWords:  Ptr(true),
		HighlightColor:  Ptr("#00F5FF"),
		WordByWord:      Ptr(true),
		LetterSpacing:   Ptr(3.0),
	},
}

// Preset returns the named preset.
func Preset(name string) (StylePatch, bool) {
	p, ok := presets[name]
	return p, ok
}

// PresetStyle returns DefaultStyle with the named preset applied.
func PresetStyle(name string) (Style, bool) {
	p, ok := presets[name]
	if !ok {
		return Style{}, false
	}
	return DefaultStyle().Merge(p), true
}
