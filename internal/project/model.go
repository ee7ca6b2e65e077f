// Package project holds the caption project being edited and the operations
// the editor uses to change it.
package project

import "time"

// DefaultResolution is the portrait output size new projects start with.
const DefaultResolution = "1080x1920"

// Project is one caption-editing session. Values are snapshots: the Store
// replaces the whole Project on every change and never mutates slices that
// a previous snapshot can still see.
type Project struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	VideoURL      string      `json:"videoUrl"`
	VideoDuration float64     `json:"videoDuration" validate:"gte=0"`
	Captions      []Caption   `json:"captions" validate:"dive"`
	BRollClips    []BRollClip `json:"bRollClips" validate:"dive"`
	ZoomEffects   []Effect    `json:"zoomEffects" validate:"dive"`
	SoundEffects  []Effect    `json:"soundEffects" validate:"dive"`
	Style         Style       `json:"style"`
	Resolution    string      `json:"resolution"`
	Language      string      `json:"language,omitempty"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

// Caption is a timed text segment. Start <= End is expected but not enforced.
type Caption struct {
	ID    string  `json:"id" validate:"required"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
	Words []Word  `json:"words" validate:"dive"`
}

// Word is a single timed word inside a caption.
type Word struct {
	Text       string  `json:"text"`
	Start      float64 `json:"start"`
	End        float64 `json:"end"`
	Emoji      *string `json:"emoji,omitempty"`
	IsKeyword  bool    `json:"isKeyword,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`
}

// BRollClip is a secondary video laid over the main one.
type BRollClip struct {
	ID       string  `json:"id" validate:"required"`
	Start    float64 `json:"start" validate:"gte=0"`
	Duration float64 `json:"duration" validate:"gte=0.1"`
	URL      string  `json:"url,omitempty"`
	Keyword  string  `json:"keyword,omitempty"`
}

// Effect is a zoom or sound effect. Only ID has a fixed meaning; anything
// effect-specific lives in Params.
type Effect struct {
	ID       string         `json:"id" validate:"required"`
	Start    float64        `json:"start"`
	Duration float64        `json:"duration,omitempty"`
	Params   map[string]any `json:"params,omitempty"`
}

// CaptionPatch lists the caption fields to overwrite. Nil fields are left
// untouched.
type CaptionPatch struct {
	Start *float64
	End   *float64
	Text  *string
	Words []Word
}

func (c Caption) apply(p CaptionPatch) Caption {
	if p.Start != nil {
		c.Start = *p.Start
	}
	if p.End != nil {
		c.End = *p.End
	}
	if p.Text != nil {
		c.Text = *p.Text
	}
	if p.Words != nil {
		c.Words = p.Words
	}
	return c
}

// EffectPatch lists the effect fields to overwrite. Params are merged key by
// key into the existing ones.
type EffectPatch struct {
	Start    *float64
	Duration *float64
	Params   map[string]any
}

func (e Effect) apply(p EffectPatch) Effect {
	if p.Start != nil {
		e.Start = *p.Start
	}
	if p.Duration != nil {
		e.Duration = *p.Duration
	}
	if len(p.Params) > 0 {
		merged := make(map[string]any, len(e.Params)+len(p.Params))
		for k, v := range e.Params {
			merged[k] = v
		}
		for k, v := range p.Params {
			merged[k] = v
		}
		e.Params = merged
	}
	return e
}

// NewProject returns an empty project with the default style.
func NewProject(id, name, videoURL string, now time.Time) *Project {
	return &Project{
		ID:           id,
		Name:         name,
		VideoURL:     videoURL,
		Captions:     []Caption{},
		BRollClips:   []BRollClip{},
		ZoomEffects:  []Effect{},
		SoundEffects: []Effect{},
		Style:        DefaultStyle(),
		Resolution:   DefaultResolution,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Ptr returns a pointer to v, for building patches.
func Ptr[T any](v T) *T {
	return &v
}
