package project

import (
	"slices"
	"time"

	"github.com/aschmelyun/tcaption/internal/store"
)

// Store holds the project being edited, or nil before one is loaded.
//
// Every operation is total: with no project loaded, or when the target id,
// index or preset does not exist, the call is a no-op rather than an error.
// Successful operations publish a new *Project with UpdatedAt set to the
// store's clock.
type Store struct {
	*store.Store[*Project]
	now func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for UpdatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore returns a store holding initial, which may be nil.
func NewStore(initial *Project, opts ...Option) *Store {
	s := &Store{Store: store.New(initial), now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// mutate applies fn to a copy of the current project. fn reports whether it
// produced a change worth publishing.
func (s *Store) mutate(fn func(p *Project) bool) {
	s.UpdateIf(func(cur *Project) (*Project, bool) {
		if cur == nil {
			return cur, false
		}
		next := *cur
		if !fn(&next) {
			return cur, false
		}
		next.UpdatedAt = s.now()
		return &next, true
	})
}

func (s *Store) UpdateCaption(captionID string, updates CaptionPatch) {
	s.mutate(func(p *Project) bool {
		p.Captions = mapWhere(p.Captions,
			func(c Caption) bool { return c.ID == captionID },
			func(c Caption) Caption { return c.apply(updates) })
		return true
	})
}

func (s *Store) UpdateStyle(partial StylePatch) {
	s.mutate(func(p *Project) bool {
		p.Style = p.Style.Merge(partial)
		return true
	})
}

// ApplyPreset replaces the style with the named preset layered on
// DefaultStyle. Unknown names leave the project and its UpdatedAt untouched.
func (s *Store) ApplyPreset(name string) {
	s.mutate(func(p *Project) bool {
		style, ok := PresetStyle(name)
		if !ok {
			return false
		}
		p.Style = style
		return true
	})
}

func (s *Store) AddBRoll(clip BRollClip) {
	s.mutate(func(p *Project) bool {
		p.BRollClips = append(slices.Clip(p.BRollClips), clip)
		return true
	})
}

func (s *Store) RemoveBRoll(clipID string) {
	s.mutate(func(p *Project) bool {
		p.BRollClips = removeWhere(p.BRollClips, func(c BRollClip) bool { return c.ID == clipID })
		return true
	})
}

// UpdateBRollClipStart moves a clip, clamping negative starts to 0.
func (s *Store) UpdateBRollClipStart(clipID string, start float64) {
	start = max(0, start)
	s.mutate(func(p *Project) bool {
		p.BRollClips = mapWhere(p.BRollClips,
			func(c BRollClip) bool { return c.ID == clipID },
			func(c BRollClip) BRollClip {
				c.Start = start
				return c
			})
		return true
	})
}

// UpdateBRollClipDuration resizes a clip, never below MinBRollDuration.
func (s *Store) UpdateBRollClipDuration(clipID string, duration float64) {
	duration = max(MinBRollDuration, duration)
	s.mutate(func(p *Project) bool {
		p.BRollClips = mapWhere(p.BRollClips,
			func(c BRollClip) bool { return c.ID == clipID },
			func(c BRollClip) BRollClip {
				c.Duration = duration
				return c
			})
		return true
	})
}

// MinBRollDuration is the shortest b-roll clip the editor allows.
const MinBRollDuration = 0.1

// UpdateWordEmoji sets the emoji on the word at wordIndex of the caption.
// An empty emoji clears it.
func (s *Store) UpdateWordEmoji(captionID string, wordIndex int, emoji string) {
	var value *string
	if emoji != "" {
		value = &emoji
	}
	s.updateWord(captionID, wordIndex, func(w Word) Word {
		w.Emoji = value
		return w
	})
}

func (s *Store) UpdateWordIsKeyword(captionID string, wordIndex int, isKeyword bool) {
	s.updateWord(captionID, wordIndex, func(w Word) Word {
		w.IsKeyword = isKeyword
		return w
	})
}

func (s *Store) updateWord(captionID string, wordIndex int, fn func(Word) Word) {
	s.mutate(func(p *Project) bool {
		p.Captions = mapWhere(p.Captions,
			func(c Caption) bool { return c.ID == captionID },
			func(c Caption) Caption {
				if wordIndex >= 0 && wordIndex < len(c.Words) {
					words := slices.Clone(c.Words)
					words[wordIndex] = fn(words[wordIndex])
					c.Words = words
				}
				return c
			})
		return true
	})
}

func (s *Store) AddZoomEffect(effect Effect) {
	s.mutate(func(p *Project) bool {
		p.ZoomEffects = append(slices.Clip(p.ZoomEffects), effect)
		return true
	})
}

func (s *Store) RemoveZoomEffect(effectID string) {
	s.mutate(func(p *Project) bool {
		p.ZoomEffects = removeWhere(p.ZoomEffects, effectMatcher(effectID))
		return true
	})
}

func (s *Store) UpdateZoomEffect(effectID string, updates EffectPatch) {
	s.mutate(func(p *Project) bool {
		p.ZoomEffects = mapWhere(p.ZoomEffects, effectMatcher(effectID), func(e Effect) Effect { return e.apply(updates) })
		return true
	})
}

func (s *Store) AddSoundEffect(effect Effect) {
	s.mutate(func(p *Project) bool {
		p.SoundEffects = append(slices.Clip(p.SoundEffects), effect)
		return true
	})
}

func (s *Store) RemoveSoundEffect(effectID string) {
	s.mutate(func(p *Project) bool {
		p.SoundEffects = removeWhere(p.SoundEffects, effectMatcher(effectID))
		return true
	})
}

func (s *Store) UpdateSoundEffect(effectID string, updates EffectPatch) {
	s.mutate(func(p *Project) bool {
		p.SoundEffects = mapWhere(p.SoundEffects, effectMatcher(effectID), func(e Effect) Effect { return e.apply(updates) })
		return true
	})
}

func effectMatcher(id string) func(Effect) bool {
	return func(e Effect) bool { return e.ID == id }
}

// mapWhere returns a new slice with fn applied to every matching element.
func mapWhere[T any](items []T, match func(T) bool, fn func(T) T) []T {
	out := make([]T, len(items))
	for i, item := range items {
		if match(item) {
			item = fn(item)
		}
		out[i] = item
	}
	return out
}

// removeWhere returns a new slice without the matching elements.
func removeWhere[T any](items []T, match func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if !match(item) {
			out = append(out, item)
		}
	}
	return out
}
