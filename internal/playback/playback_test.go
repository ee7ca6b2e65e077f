package playback

import "testing"

func TestDefaults(t *testing.T) {
	got := NewStore().Get()
	if got != (State{Volume: 1, PlaybackRate: 1}) {
		t.Fatalf("unexpected defaults %+v", got)
	}
}

func TestSettersAcceptAnyValue(t *testing.T) {
	s := NewStore()
	s.SetCurrentTime(-3)
	s.SetPlaying(true)

	got := s.Get()
	if got.CurrentTime != -3 {
		t.Fatalf("expected negative time to be stored as-is, got %v", got.CurrentTime)
	}
	if !got.IsPlaying {
		t.Fatal("expected playing")
	}

	s.TogglePlay()
	if s.Get().IsPlaying {
		t.Fatal("expected TogglePlay to pause")
	}
	s.TogglePlay()
	if !s.Get().IsPlaying {
		t.Fatal("expected TogglePlay to resume")
	}
}

func TestAdvance(t *testing.T) {
	s := NewStore()
	s.SetDuration(10)

	s.Advance(1)
	if got := s.Get().CurrentTime; got != 0 {
		t.Fatalf("paused advance moved playhead to %v", got)
	}

	s.Update(func(v State) State {
		v.IsPlaying = true
		v.PlaybackRate = 2
		return v
	})
	s.Advance(1.5)
	if got := s.Get().CurrentTime; got != 3 {
		t.Fatalf("CurrentTime = %v, want 3", got)
	}

	s.Advance(10)
	got := s.Get()
	if got.CurrentTime != 10 || got.IsPlaying {
		t.Fatalf("expected to stop at the end, got %+v", got)
	}
}
