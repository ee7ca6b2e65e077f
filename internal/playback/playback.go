// Package playback mirrors the state of the media player driving the editor.
// It performs no validation: whatever the player reports is stored as-is.
package playback

import "github.com/aschmelyun/tcaption/internal/store"

// State is a snapshot of the player.
type State struct {
	CurrentTime  float64
	Duration     float64
	IsPlaying    bool
	Volume       float64
	PlaybackRate float64
}

// DefaultState is the player before any media is loaded.
func DefaultState() State {
	return State{Volume: 1, PlaybackRate: 1}
}

// Store holds the playback state.
type Store struct {
	*store.Store[State]
}

// NewStore returns a store seeded with DefaultState.
func NewStore() *Store {
	return &Store{Store: store.New(DefaultState())}
}

func (s *Store) SetCurrentTime(t float64) {
	s.Update(func(v State) State {
		v.CurrentTime = t
		return v
	})
}

func (s *Store) SetPlaying(playing bool) {
	s.Update(func(v State) State {
		v.IsPlaying = playing
		return v
	})
}

func (s *Store) TogglePlay() {
	s.Update(func(v State) State {
		v.IsPlaying = !v.IsPlaying
		return v
	})
}

func (s *Store) SetDuration(d float64) {
	s.Update(func(v State) State {
		v.Duration = d
		return v
	})
}

// Advance moves the playhead by elapsed seconds scaled by the playback rate.
// It does nothing while paused. Reaching Duration pauses playback there.
func (s *Store) Advance(elapsed float64) {
	s.UpdateIf(func(v State) (State, bool) {
		if !v.IsPlaying {
			return v, false
		}
		v.CurrentTime += elapsed * v.PlaybackRate
		if v.Duration > 0 && v.CurrentTime >= v.Duration {
			v.CurrentTime = v.Duration
			v.IsPlaying = false
		}
		return v, true
	})
}
