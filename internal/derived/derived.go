// Package derived computes the caption and word under the playhead.
//
// Ranges are closed on both ends and scanned in sequence order, so when two
// ranges touch or overlap the one declared first wins.
package derived

import (
	"sync"

	"github.com/aschmelyun/tcaption/internal/playback"
	"github.com/aschmelyun/tcaption/internal/project"
	"github.com/aschmelyun/tcaption/internal/store"
)

// ActiveCaption returns the first caption containing t and its index, or
// nil and -1.
func ActiveCaption(p *project.Project, t float64) (*project.Caption, int) {
	if p == nil {
		return nil, -1
	}
	for i := range p.Captions {
		if t >= p.Captions[i].Start && t <= p.Captions[i].End {
			return &p.Captions[i], i
		}
	}
	return nil, -1
}

// ActiveWord returns the first word of c containing t and its index, or nil
// and -1.
func ActiveWord(c *project.Caption, t float64) (*project.Word, int) {
	if c == nil {
		return nil, -1
	}
	for i := range c.Words {
		if t >= c.Words[i].Start && t <= c.Words[i].End {
			return &c.Words[i], i
		}
	}
	return nil, -1
}

// Active is what sits under the playhead.
type Active struct {
	Caption      *project.Caption
	CaptionIndex int
	Word         *project.Word
	WordIndex    int
	Time         float64
}

// Compute evaluates both lookups for one project snapshot and time.
func Compute(p *project.Project, t float64) Active {
	caption, ci := ActiveCaption(p, t)
	word, wi := ActiveWord(caption, t)
	return Active{Caption: caption, CaptionIndex: ci, Word: word, WordIndex: wi, Time: t}
}

// Tracker keeps an Active value in sync with a project store and a playback
// store. Subscribers of Tracker.Store see a fresh value after every upstream
// change. Publishing is serialized, so subscribers must not write to the
// upstream stores from inside their callback.
type Tracker struct {
	*store.Store[Active]

	mu       sync.Mutex
	projects *project.Store
	player   *playback.Store
	unsubs   []func()
}

// NewTracker subscribes to both stores. Call Close to detach.
func NewTracker(projects *project.Store, player *playback.Store) *Tracker {
	t := &Tracker{
		Store:    store.New(Compute(projects.Get(), player.Get().CurrentTime)),
		projects: projects,
		player:   player,
	}
	t.unsubs = append(t.unsubs,
		projects.Subscribe(func(*project.Project) { t.recompute() }),
		player.Subscribe(func(playback.State) { t.recompute() }),
	)
	return t
}

// recompute reads both upstream stores rather than the notified values, and
// holds mu until the result is published. Notifications from different
// goroutines can arrive out of order, but the last recompute always sees the
// newest inputs.
func (t *Tracker) recompute() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.Set(Compute(t.projects.Get(), t.player.Get().CurrentTime))
}

// Close detaches the tracker from its upstream stores.
func (t *Tracker) Close() {
	for _, unsub := range t.unsubs {
		unsub()
	}
	t.unsubs = nil
}
