package engine

import (
	"math"
	"testing"
	"time"
)

var testEpoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(5 * time.Millisecond)
	t2 := provider.Now()

	if diff := t2.Sub(t1); diff < 5*time.Millisecond {
		t.Errorf("Expected at least 5ms difference, got %v", diff)
	}
}

func TestMockTimeProvider(t *testing.T) {
	mock := NewMockTimeProvider(testEpoch)
	if !mock.Now().Equal(testEpoch) {
		t.Fatalf("Expected initial time %v, got %v", testEpoch, mock.Now())
	}

	mock.Advance(time.Hour)
	mock.AdvanceSeconds(1.5)
	want := testEpoch.Add(time.Hour + 1500*time.Millisecond)
	if !mock.Now().Equal(want) {
		t.Errorf("Expected %v after advances, got %v", want, mock.Now())
	}

	mock.SetTime(testEpoch)
	if !mock.Now().Equal(testEpoch) {
		t.Errorf("Expected SetTime to rewind to %v, got %v", testEpoch, mock.Now())
	}
}

func TestAnimationClockTick(t *testing.T) {
	mock := NewMockTimeProvider(testEpoch)
	clock := NewAnimationClock(mock, 0.1)

	now, dt := clock.Tick()
	if now != 0 || dt != 0 {
		t.Fatalf("Expected first tick at zero, got now=%v dt=%v", now, dt)
	}

	mock.Advance(16 * time.Millisecond)
	now, dt = clock.Tick()
	if !approx(now, 0.016) || !approx(dt, 0.016) {
		t.Errorf("Expected now=dt=0.016, got now=%v dt=%v", now, dt)
	}

	// A stall is reported in full as time but capped as a step
	mock.Advance(2 * time.Second)
	now, dt = clock.Tick()
	if !approx(now, 2.016) {
		t.Errorf("Expected now=2.016, got %v", now)
	}
	if dt != 0.1 {
		t.Errorf("Expected dt capped at 0.1, got %v", dt)
	}

	// Time going backwards yields a zero step
	mock.SetTime(testEpoch.Add(time.Second))
	if _, dt = clock.Tick(); dt != 0 {
		t.Errorf("Expected zero dt on backwards time, got %v", dt)
	}
}

func TestAnimationClockPause(t *testing.T) {
	mock := NewMockTimeProvider(testEpoch)
	clock := NewAnimationClock(mock, 0)

	mock.Advance(time.Second)
	clock.Pause()
	clock.Pause() // idempotent
	if !clock.IsPaused() {
		t.Fatal("Expected clock to be paused")
	}

	mock.Advance(3 * time.Second)
	if got := clock.Now(); !approx(got, 1) {
		t.Errorf("Expected frozen time 1s, got %v", got)
	}
	if got := clock.TotalPaused(); got != 3*time.Second {
		t.Errorf("Expected 3s paused in progress, got %v", got)
	}

	clock.Resume()
	mock.Advance(500 * time.Millisecond)
	if got := clock.Now(); !approx(got, 1.5) {
		t.Errorf("Expected 1.5s after resume, got %v", got)
	}

	if paused := clock.Toggle(); !paused {
		t.Error("Expected Toggle to pause")
	}
	if paused := clock.Toggle(); paused {
		t.Error("Expected Toggle to resume")
	}
}

func TestAnimationClockPausedTickIsZero(t *testing.T) {
	mock := NewMockTimeProvider(testEpoch)
	clock := NewAnimationClock(mock, 0.1)
	mock.Advance(50 * time.Millisecond)
	clock.Tick()

	clock.Pause()
	for i := 0; i < 5; i++ {
		mock.Advance(16 * time.Millisecond)
		if _, dt := clock.Tick(); dt != 0 {
			t.Fatalf("Expected zero dt while paused, got %v", dt)
		}
	}
}
