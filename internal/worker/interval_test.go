package worker

import (
	"sync/atomic"
	"testing"
	"time"
)

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatalf("condition not met within %v", timeout)
}

func TestIntervalTaskTicksUntilStopped(t *testing.T) {
	var ticks int32
	task := StartInterval(5*time.Millisecond, func() {
		atomic.AddInt32(&ticks, 1)
	})
	waitFor(t, time.Second, func() bool { return atomic.LoadInt32(&ticks) >= 3 })

	task.Stop()
	stopped := atomic.LoadInt32(&ticks)
	time.Sleep(30 * time.Millisecond)
	if got := atomic.LoadInt32(&ticks); got != stopped {
		t.Fatalf("tick ran after Stop returned: before=%d after=%d", stopped, got)
	}
}

func TestIntervalTaskStopIsIdempotent(t *testing.T) {
	task := StartInterval(time.Hour, func() {})
	done := make(chan struct{})
	go func() {
		task.Stop()
		task.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("repeated Stop should not block")
	}
	var nilTask *IntervalTask
	nilTask.Stop()
}

func TestIntervalTaskStopWaitsForRunningTick(t *testing.T) {
	started := make(chan struct{})
	var finished int32
	task := StartInterval(time.Millisecond, func() {
		select {
		case started <- struct{}{}:
		default:
		}
		time.Sleep(20 * time.Millisecond)
		atomic.StoreInt32(&finished, 1)
	})
	<-started
	task.Stop()
	if atomic.LoadInt32(&finished) != 1 {
		t.Fatalf("Stop returned while a tick was still running")
	}
}

func TestIntervalTaskPauseDelaysTicks(t *testing.T) {
	var ticks int32
	task := StartInterval(5*time.Millisecond, func() {
		atomic.AddInt32(&ticks, 1)
	})
	defer task.Stop()

	task.Pause(80 * time.Millisecond)
	if !task.Paused() {
		t.Fatalf("task should report paused")
	}
	base := atomic.LoadInt32(&ticks)
	time.Sleep(40 * time.Millisecond)
	if got := atomic.LoadInt32(&ticks); got > base+1 {
		t.Fatalf("ticks should be suspended during pause: base=%d got=%d", base, got)
	}
	waitFor(t, time.Second, func() bool { return atomic.LoadInt32(&ticks) > base+1 })
}

func TestIntervalTaskSuspendResume(t *testing.T) {
	var ticks int32
	task := StartInterval(5*time.Millisecond, func() {
		atomic.AddInt32(&ticks, 1)
	})
	defer task.Stop()

	task.Suspend()
	time.Sleep(10 * time.Millisecond)
	base := atomic.LoadInt32(&ticks)
	time.Sleep(30 * time.Millisecond)
	if got := atomic.LoadInt32(&ticks); got != base {
		t.Fatalf("suspended task should not tick: base=%d got=%d", base, got)
	}
	task.Resume()
	waitFor(t, time.Second, func() bool { return atomic.LoadInt32(&ticks) > base })
}

func TestAfterCancel(t *testing.T) {
	var fired int32
	cancel := After(20*time.Millisecond, func() {
		atomic.StoreInt32(&fired, 1)
	})
	cancel()
	time.Sleep(40 * time.Millisecond)
	if atomic.LoadInt32(&fired) != 0 {
		t.Fatalf("canceled callback should not run")
	}

	fire := make(chan struct{})
	After(time.Millisecond, func() { close(fire) })
	select {
	case <-fire:
	case <-time.After(time.Second):
		t.Fatalf("callback did not fire")
	}
}
