package worker

import "sync"

// Task represents a unit of work executed by the pool.
type Task func()

// Pool defines a simple worker pool.
type Pool interface {
	// Submit queues t; it blocks only when the queue is full.
	Submit(Task)
	// TrySubmit queues t without blocking and reports false when the queue is full.
	TrySubmit(Task) bool
	// Stop drains queued tasks and waits for the workers to exit.
	Stop()
}

// queuePerWorker bounds how many tasks may wait per worker.
const queuePerWorker = 32

// NewPool creates a pool with n workers. n<=0 defaults to 1.
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{jobs: make(chan Task, n*queuePerWorker)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				if job != nil {
					job()
				}
			}
		}()
	}
	return p
}

type pool struct {
	jobs chan Task
	wg   sync.WaitGroup
	once sync.Once
}

func (p *pool) Submit(t Task) {
	p.jobs <- t
}

func (p *pool) TrySubmit(t Task) bool {
	select {
	case p.jobs <- t:
		return true
	default:
		return false
	}
}

func (p *pool) Stop() {
	p.once.Do(func() { close(p.jobs) })
	p.wg.Wait()
}
