package countries

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/joefazee/countryview/internal/logger"
	"github.com/joefazee/countryview/internal/metrics"
	"github.com/joefazee/countryview/models"
)

// Orchestrator performs the single startup fetch and drives the controller
// through idle -> loading -> success/error.
type Orchestrator struct {
	fetcher    Fetcher
	controller *Controller
	logger     logger.Logger
	metrics    *metrics.Metrics

	once sync.Once
	done chan struct{}
}

// NewOrchestrator wires a fetcher to a controller. m may be nil.
func NewOrchestrator(fetcher Fetcher, controller *Controller, log logger.Logger, m *metrics.Metrics) *Orchestrator {
	if log == nil {
		log = logger.NewNullLogger()
	}
	return &Orchestrator{
		fetcher:    fetcher,
		controller: controller,
		logger:     log,
		metrics:    m,
		done:       make(chan struct{}),
	}
}

// Run fetches once. Fetch failures are recorded on the controller rather
// than returned; only a second call reports ErrFetchAlreadyStarted.
func (o *Orchestrator) Run(ctx context.Context) error {
	started := false
	o.once.Do(func() {
		started = true
		defer close(o.done)
		o.fetch(ctx)
	})
	if !started {
		return models.ErrFetchAlreadyStarted
	}
	return nil
}

// Done is closed when Run has finished.
func (o *Orchestrator) Done() <-chan struct{} {
	return o.done
}

func (o *Orchestrator) fetch(ctx context.Context) {
	if err := o.controller.BeginFetch(); err != nil {
		o.logger.Warn("fetch not started", logger.Fields{"reason": err.Error()})
		return
	}

	start := time.Now()
	records, err := o.fetcher.FetchUsers(ctx)
	elapsed := time.Since(start)

	if err != nil {
		o.fail(err, elapsed)
		return
	}

	if cerr := o.controller.CompleteFetch(records); cerr != nil {
		o.discard(cerr, elapsed)
		return
	}
	o.metrics.ObserveFetch(metrics.OutcomeSuccess, elapsed)
	o.logger.Info("user batch loaded", logger.Fields{
		"records":  len(records),
		"duration": elapsed.String(),
	})
}

func (o *Orchestrator) fail(err error, elapsed time.Duration) {
	if cerr := o.controller.FailFetch(err); cerr != nil {
		o.discard(cerr, elapsed)
		return
	}

	o.metrics.ObserveFetch(metrics.OutcomeError, elapsed)
	view := o.controller.Snapshot()
	o.logger.Error(err, logger.Fields{
		"component": "fetch",
		"kind":      string(view.ErrorKind),
		"duration":  elapsed.String(),
	})
}

func (o *Orchestrator) discard(err error, elapsed time.Duration) {
	o.metrics.ObserveFetch(metrics.OutcomeDiscarded, elapsed)
	if errors.Is(err, models.ErrViewClosed) {
		o.logger.Debug("fetch result dropped after view closed", nil)
		return
	}
	o.logger.Warn("fetch result dropped", logger.Fields{"reason": err.Error()})
}
