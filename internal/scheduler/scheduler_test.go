package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// fakeJob is a test double that counts runs, signals when the first run
// starts, and can block until explicitly released.
type fakeJob struct {
	callCount int32

	started chan struct{} // signals when a run starts (first call only)
	block   chan struct{} // keeps Run blocked until closed
}

func newFakeJob() *fakeJob {
	return &fakeJob{
		started: make(chan struct{}, 1),
		block:   make(chan struct{}),
	}
}

func (f *fakeJob) Run(ctx context.Context) error {
	atomic.AddInt32(&f.callCount, 1)

	// Signal "started" only once (non-blocking).
	select {
	case f.started <- struct{}{}:
	default:
	}

	// Wait until either the test releases the block or the context is done.
	select {
	case <-f.block:
	case <-ctx.Done():
	}

	return nil
}

func (f *fakeJob) Calls() int32 {
	return atomic.LoadInt32(&f.callCount)
}

func TestScheduler_StartTriggersRun(t *testing.T) {
	fake := newFakeJob()

	// Short tick interval, reasonably long run timeout so we don't hit it in this test.
	s := NewSchedulerService(fake, 10*time.Millisecond, 2*time.Second)

	s.Start()
	defer s.Stop()

	// We expect the job to be triggered shortly after Start.
	select {
	case <-fake.started:
		// ok
	case <-time.After(200 * time.Millisecond):
		t.Fatalf("expected the job to run after Start, but it didn't")
	}

	if !s.IsRunning() {
		t.Fatalf("expected scheduler to be running after Start()")
	}
}

func TestScheduler_StopWaitsForRunCompletion(t *testing.T) {
	fake := newFakeJob()

	// Very frequent ticks, but long enough run timeout so ctx doesn't kill the run
	// before we manually unblock it.
	s := NewSchedulerService(fake, 5*time.Millisecond, 2*time.Second)

	s.Start()

	// Wait until the first run actually starts so Stop happens mid-run.
	select {
	case <-fake.started:
	case <-time.After(200 * time.Millisecond):
		t.Fatalf("the job was not run in time")
	}

	// Call Stop in a separate goroutine so we can assert it blocks.
	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()

	// Stop should NOT return immediately while the run is still blocked.
	select {
	case <-done:
		t.Fatalf("Stop() returned before the run finished")
	case <-time.After(50 * time.Millisecond):
		// good: Stop is still waiting for the run to complete
	}

	// Now let the run complete.
	close(fake.block)

	// After unblocking the run, Stop should return in a reasonable time.
	select {
	case <-done:
		// ok
	case <-time.After(200 * time.Millisecond):
		t.Fatalf("Stop() did not return after run completion")
	}

	if s.IsRunning() {
		t.Fatalf("expected scheduler to not be running after Stop()")
	}
}

func TestScheduler_StartStopStartFlow(t *testing.T) {
	fake := newFakeJob()
	s := NewSchedulerService(fake, 10*time.Millisecond, 2*time.Second)

	// 1) First start
	s.Start()
	select {
	case <-fake.started:
	case <-time.After(200 * time.Millisecond):
		t.Fatalf("first Start: the job was not run")
	}

	// Release the first run.
	close(fake.block)

	// Stop the scheduler.
	s.Stop()
	if s.IsRunning() {
		t.Fatalf("scheduler should be stopped after Stop()")
	}

	// Prepare a new block channel for the next run.
	fake.block = make(chan struct{})

	// 2) Start again
	s.Start()
	if !s.IsRunning() {
		t.Fatalf("scheduler should be running after second Start()")
	}

	// We expect another run to be triggered.
	select {
	case <-fake.started:
	case <-time.After(200 * time.Millisecond):
		t.Fatalf("second Start: the job was not run")
	}
}

func TestScheduler_RaceStartStop(t *testing.T) {
	fake := newFakeJob()
	s := NewSchedulerService(fake, 5*time.Millisecond, 50*time.Millisecond)

	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(2)

		go func() {
			defer wg.Done()
			_ = s.Start()
		}()

		go func() {
			defer wg.Done()
			_ = s.Stop()
		}()
	}

	wg.Wait()
}
