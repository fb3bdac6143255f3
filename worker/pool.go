// Package worker runs independent backend fetches on a small pool of
// goroutines. The admin dashboard uses it to load several collections at
// once without opening one connection per collection.
package worker

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/bookly/bookly-cli/log"
	"go.uber.org/zap"
)

// Job is one named unit of work.
type Job struct {
	Name string
	Run  func(ctx context.Context) error
}

type Pool struct {
	ctx   context.Context
	queue chan Job
	wg    sync.WaitGroup

	mu   sync.Mutex
	errs []error
}

// NewPool creates a pool of background workers reading from a shared queue.
func NewPool(ctx context.Context, size int) *Pool {
	if size < 1 {
		size = 1
	}

	pool := &Pool{ctx: ctx, queue: make(chan Job)}
	for i := 0; i < size; i++ {
		worker := &fetchWorker{id: i, pool: pool}
		go worker.Run(pool.queue)
	}
	return pool
}

func (p *Pool) Push(jobs ...Job) {
	for _, job := range jobs {
		p.wg.Add(1)
		p.queue <- job
	}
}

// Wait blocks until every pushed job has finished and shuts the pool down.
// It returns the first job error; the rest are already logged by the
// workers.
func (p *Pool) Wait() error {
	p.wg.Wait()
	close(p.queue)

	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.errs) > 0 {
		return p.errs[0]
	}
	return nil
}

func (p *Pool) fail(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.errs = append(p.errs, err)
}

type fetchWorker struct {
	id   int
	pool *Pool
}

func (w *fetchWorker) Run(queue <-chan Job) {
	for job := range queue {
		log.Debug("Job received by worker",
			zap.Int("worker_id", w.id),
			zap.String("job", job.Name))

		if err := w.pool.ctx.Err(); err != nil {
			w.pool.fail(errors.Wrapf(err, "fetch %s", job.Name))
			w.pool.wg.Done()
			continue
		}

		if err := job.Run(w.pool.ctx); err != nil {
			log.Error("Job failed",
				zap.Int("worker_id", w.id),
				zap.String("job", job.Name),
				zap.Error(err))
			w.pool.fail(errors.Wrapf(err, "fetch %s", job.Name))
		}
		w.pool.wg.Done()
	}
}
