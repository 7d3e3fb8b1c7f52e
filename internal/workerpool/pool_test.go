package workerpool

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSubmitAndShutdownRunsAllJobs(t *testing.T) {
	p := New(2, 10)
	var count atomic.Int32

	for i := 0; i < 5; i++ {
		ok := p.Submit(Job{Name: "job", Run: func() error {
			count.Add(1)
			return nil
		}})
		if !ok {
			t.Fatalf("Submit %d failed", i)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p.Shutdown(ctx)

	if got := count.Load(); got != 5 {
		t.Fatalf("count = %d, want 5", got)
	}
	if got := p.Completed(); got != 5 {
		t.Fatalf("Completed = %d, want 5", got)
	}
	if failures := p.Failures(); len(failures) != 0 {
		t.Fatalf("Failures = %v, want none", failures)
	}
}

func TestSubmitAfterShutdownReturnsFalse(t *testing.T) {
	p := New(1, 1)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p.Shutdown(ctx)

	if p.Submit(Job{Name: "late", Run: func() error { return nil }}) {
		t.Fatal("Submit after Shutdown should return false")
	}
}

func TestSubmitRacingShutdownNeverPanics(t *testing.T) {
	p := New(2, 2)
	var accepted atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				ok := p.Submit(Job{Name: "noop", Run: func() error { return nil }})
				if ok {
					accepted.Add(1)
				}
			}
		}()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p.Shutdown(ctx)
	wg.Wait()

	if got := int32(p.Completed()); got != accepted.Load() {
		t.Fatalf("Completed = %d, accepted = %d", got, accepted.Load())
	}
}

func TestFailuresAreCollected(t *testing.T) {
	p := New(1, 4)
	boom := errors.New("boom")

	p.Submit(Job{Name: "ok", Run: func() error { return nil }})
	p.Submit(Job{Name: "bad", Run: func() error { return boom }})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p.Shutdown(ctx)

	failures := p.Failures()
	if len(failures) != 1 {
		t.Fatalf("len(Failures) = %d, want 1", len(failures))
	}
	if failures[0].Name != "bad" || !errors.Is(failures[0].Err, boom) {
		t.Fatalf("failure = %+v", failures[0])
	}
}

func TestPanickingJobIsRecordedNotFatal(t *testing.T) {
	p := New(1, 2)
	p.Submit(Job{Name: "panics", Run: func() error { panic("kaboom") }})
	p.Submit(Job{Name: "after", Run: func() error { return nil }})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p.Shutdown(ctx)

	if got := p.Completed(); got != 2 {
		t.Fatalf("Completed = %d, want 2", got)
	}
	failures := p.Failures()
	if len(failures) != 1 || failures[0].Name != "panics" {
		t.Fatalf("Failures = %v", failures)
	}
}
