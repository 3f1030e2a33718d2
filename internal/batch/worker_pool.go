package batch

import (
	"sync"

	"github.com/rs/zerolog"
)

type Job func()

// WorkerPool — ограниченный пул для пакетной инициализации. Stop закрывает
// очередь и дожидается всех воркеров, поэтому итоги можно печатать сразу после него.
type WorkerPool struct {
	jobs       chan Job
	wg         sync.WaitGroup
	maxWorkers int
	logger     zerolog.Logger
}

func NewWorkerPool(maxWorkers int, logger zerolog.Logger) *WorkerPool {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	return &WorkerPool{
		jobs:       make(chan Job, maxWorkers*10),
		maxWorkers: maxWorkers,
		logger:     logger,
	}
}

func (wp *WorkerPool) Start() {
	wp.logger.Debug().Int("max_workers", wp.maxWorkers).Msg("Starting worker pool")

	for i := 0; i < wp.maxWorkers; i++ {
		wp.wg.Add(1)
		go wp.worker(i)
	}
}

// Submit блокируется, когда очередь заполнена: пакетный запуск не должен
// терять стажёров.
func (wp *WorkerPool) Submit(job Job) {
	wp.jobs <- job
}

func (wp *WorkerPool) Stop() {
	close(wp.jobs)
	wp.wg.Wait()

	wp.logger.Debug().Msg("Worker pool stopped")
}

func (wp *WorkerPool) worker(id int) {
	defer wp.wg.Done()

	for job := range wp.jobs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					wp.logger.Error().
						Int("worker_id", id).
						Interface("panic", r).
						Msg("Worker recovered from panic")
				}
			}()

			job()
		}()
	}
}
