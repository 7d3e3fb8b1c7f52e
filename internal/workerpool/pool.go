// Package workerpool runs batch generation jobs on a bounded goroutine
// pool and collects per-job failures for the final batch report.
package workerpool

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"

	"github.com/fixturenet/walkgen/internal/logging"
)

var log = logging.L("workerpool")

// Job is one named unit of batch work.
type Job struct {
	Name string
	Run  func() error
}

// JobError records a failed job for the batch summary.
type JobError struct {
	Name string
	Err  error
}

func (e JobError) Error() string {
	return fmt.Sprintf("%s: %v", e.Name, e.Err)
}

// Pool executes jobs on maxWorkers goroutines with a fixed-size queue.
type Pool struct {
	maxWorkers int
	queue      chan Job
	wg         sync.WaitGroup

	// submitMu serializes Submit's check-then-send against Shutdown
	// closing the queue, so a racing Submit can never hit a closed channel.
	submitMu sync.RWMutex
	closed   bool

	mu       sync.Mutex
	failures []JobError
	done     int
}

// New creates a pool with maxWorkers goroutines and a job queue of queueSize.
func New(maxWorkers, queueSize int) *Pool {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	if queueSize < 1 {
		queueSize = 1
	}

	p := &Pool{
		maxWorkers: maxWorkers,
		queue:      make(chan Job, queueSize),
	}

	for i := 0; i < maxWorkers; i++ {
		go p.worker()
	}

	log.Debug("worker pool started", "workers", maxWorkers, "queueSize", queueSize)
	return p
}

// Submit enqueues a job, blocking while the queue is full. Returns false
// once the pool has been shut down.
func (p *Pool) Submit(job Job) bool {
	p.submitMu.RLock()
	defer p.submitMu.RUnlock()
	if p.closed {
		return false
	}
	p.wg.Add(1)
	p.queue <- job
	return true
}

// Shutdown stops accepting jobs and waits for queued and in-flight jobs to
// finish, respecting the context deadline. Safe to call more than once.
func (p *Pool) Shutdown(ctx context.Context) {
	p.submitMu.Lock()
	alreadyClosed := p.closed
	p.closed = true
	p.submitMu.Unlock()

	finished := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(finished)
	}()

	select {
	case <-finished:
		log.Debug("worker pool drained", "jobs", p.Completed())
	case <-ctx.Done():
		log.Warn("worker pool drain timed out")
	}

	if !alreadyClosed {
		close(p.queue)
	}
}

// Completed returns how many jobs have finished, failed ones included.
func (p *Pool) Completed() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.done
}

// Failures returns the jobs that returned an error or panicked, in
// completion order.
func (p *Pool) Failures() []JobError {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]JobError, len(p.failures))
	copy(out, p.failures)
	return out
}

func (p *Pool) worker() {
	for job := range p.queue {
		p.runJob(job)
	}
}

// runJob executes one job with panic recovery. wg.Done pairs with the
// wg.Add in Submit.
func (p *Pool) runJob(job Job) {
	defer p.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			log.Error("job panicked", "job", job.Name, "panic", r, "stack", string(debug.Stack()))
			p.record(job.Name, fmt.Errorf("panic: %v", r))
		}
	}()

	err := job.Run()
	p.record(job.Name, err)
}

func (p *Pool) record(name string, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.done++
	if err != nil {
		p.failures = append(p.failures, JobError{Name: name, Err: err})
	}
}
