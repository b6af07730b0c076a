package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/cornerstone/chores-api/internal/api/metrics"
	"github.com/cornerstone/chores-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

// Dispatcher routes activity events to a fixed set of workers using
// consistent hashing on the chore id, guaranteeing per-chore ordering of the
// recorded feed.
type Dispatcher struct {
	workers []chan ports.ActivityEvent
	service ports.ActivityService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.ActivityService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.ActivityEvent, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.ActivityEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends an event to the worker responsible for its chore id.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(event ports.ActivityEvent) {
	idx := d.shardIndex(event.ChoreID)
	d.workers[idx] <- event
	metrics.ActivityQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
}

// shardIndex maps a chore id deterministically to a worker index.
func (d *Dispatcher) shardIndex(choreID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(choreID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.ActivityEvent) {
	worker := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			start := time.Now()
			err := d.service.Record(ctx, event)
			metrics.ActivityQueueDepth.WithLabelValues(worker).Set(float64(len(ch)))
			metrics.ActivityProcessingDuration.WithLabelValues(event.Action).Observe(time.Since(start).Seconds())
			if err != nil {
				d.log.Error().Err(err).
					Str("chore_id", event.ChoreID).
					Int("worker_id", id).
					Msg("activity recording failed")
			}
		}
	}
}
