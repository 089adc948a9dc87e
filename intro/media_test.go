package intro

import (
	"testing"
	"time"
)

type fakeMedia struct {
	pos     time.Duration
	playing bool
}

func (m *fakeMedia) Position() time.Duration { return m.pos }
func (m *fakeMedia) IsPlaying() bool         { return m.playing }

func TestMediaTriggerFiresAtPosition(t *testing.T) {
	store := NewStore(testPattern(true), true)
	loop := NewLoop()
	media := &fakeMedia{playing: true}

	fired := 0
	trigger := &MediaTrigger{
		Target:   "splash",
		Position: 3 * time.Second,
		Resolve:  func(string) Media { return media },
	}
	trigger.Attach(store, loop, func() { fired++ })

	for i := 0; i < 10; i++ {
		media.pos += 500 * time.Millisecond
		loop.Advance(500 * time.Millisecond)
		if media.pos < 3*time.Second && fired != 0 {
			t.Fatalf("fired at position %v, before the target", media.pos)
		}
	}
	if fired != 1 {
		t.Fatalf("fired %d times, want 1", fired)
	}
	if got := store.State().MediaTime; got < 3*time.Second {
		t.Fatalf("MediaTime = %v, want >= 3s", got)
	}
}

func TestMediaTriggerFailsafeWithoutTarget(t *testing.T) {
	store := NewStore(testPattern(true), true)
	loop := NewLoop()

	resolves := 0
	fired := 0
	trigger := &MediaTrigger{
		Target:   "missing",
		Position: time.Second,
		Resolve: func(string) Media {
			resolves++
			return nil
		},
	}
	trigger.Attach(store, loop, func() { fired++ })

	for i := 0; i < 49; i++ {
		loop.Advance(100 * time.Millisecond)
	}
	if fired != 0 {
		t.Fatalf("fired before the failsafe timeout")
	}
	loop.Advance(100 * time.Millisecond)
	if fired != 1 {
		t.Fatalf("failsafe fired %d times at 5s, want exactly 1", fired)
	}
	if resolves < 2 {
		t.Fatalf("expected bounded-interval re-resolves, got %d", resolves)
	}

	loop.Advance(10 * time.Second)
	if fired != 1 {
		t.Fatalf("fired again after the failsafe")
	}
}

func TestMediaTriggerTargetAppearsLate(t *testing.T) {
	store := NewStore(testPattern(true), true)
	loop := NewLoop()

	var media *fakeMedia
	fired := 0
	trigger := &MediaTrigger{
		Target:   "late",
		Position: 200 * time.Millisecond,
		Resolve: func(string) Media {
			if media == nil {
				return nil
			}
			return media
		},
	}
	trigger.Attach(store, loop, func() { fired++ })

	loop.Advance(300 * time.Millisecond)
	if fired != 0 {
		t.Fatalf("fired with no target attached")
	}

	media = &fakeMedia{pos: 500 * time.Millisecond, playing: true}
	loop.Advance(100 * time.Millisecond) // retry picks the target up
	loop.Advance(16 * time.Millisecond)
	if fired != 1 {
		t.Fatalf("fired %d times after the target appeared past position, want 1", fired)
	}
}

func TestMediaTriggerDispose(t *testing.T) {
	store := NewStore(testPattern(true), true)
	loop := NewLoop()
	media := &fakeMedia{pos: time.Minute, playing: true}

	fired := 0
	trigger := &MediaTrigger{
		Target:   "splash",
		Position: time.Second,
		Resolve:  func(string) Media { return media },
	}
	dispose := trigger.Attach(store, loop, func() { fired++ })
	dispose()

	loop.Advance(10 * time.Second)
	if fired != 0 {
		t.Fatalf("disposed trigger fired")
	}
	if got := store.State().MediaTime; got != 0 {
		t.Fatalf("disposed trigger still wrote MediaTime = %v", got)
	}
}
