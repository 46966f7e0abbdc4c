package countries

import (
	"sync"

	"github.com/google/uuid"

	"github.com/joefazee/countryview/internal/metrics"
	"github.com/joefazee/countryview/internal/randomuser"
	"github.com/joefazee/countryview/models"
)

// View is a point-in-time copy of everything the presentation layer renders.
type View struct {
	Lifecycle       models.Lifecycle
	Loading         bool
	ErrorMessage    string
	ErrorKind       models.ErrorKind
	Aggregates      []models.CountryAggregate
	SelectedCountry string
	HasSelection    bool
	SelectedGender  models.GenderFilter
	BatchID         string
	BatchPresent    bool
	RecordCount     int

	// shared with the controller, read-only
	records []models.UserRecord
}

// Controller owns the selection, the fetch lifecycle and the current batch.
// All transitions are synchronous and serialized by mu.
type Controller struct {
	mu sync.RWMutex

	batch      models.RecordBatch
	batchID    string
	aggregates []models.CountryAggregate

	selectedCountry string
	hasSelection    bool
	gender          models.GenderFilter

	lifecycle models.Lifecycle
	loading   bool
	errMsg    string
	errKind   models.ErrorKind

	closed bool

	onBatchReplaced func(previousID string)
	metrics         *metrics.Metrics
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithControllerMetrics publishes batch and aggregate sizes.
func WithControllerMetrics(m *metrics.Metrics) ControllerOption {
	return func(c *Controller) {
		c.metrics = m
	}
}

// NewController starts idle with no batch and the All filter.
func NewController(opts ...ControllerOption) *Controller {
	c := &Controller{
		batch:      models.AbsentBatch(),
		aggregates: []models.CountryAggregate{},
		gender:     models.GenderFilterAll,
		lifecycle:  models.LifecycleIdle,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// OnBatchReplaced registers fn to run, outside the lock, whenever the batch
// is swapped out. fn receives the id of the batch that was dropped.
func (c *Controller) OnBatchReplaced(fn func(previousID string)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onBatchReplaced = fn
}

// OnGenderChange sets the filter and recomputes the aggregates against the
// current batch. The selected country is kept even if it drops out.
func (c *Controller) OnGenderChange(filter models.GenderFilter) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gender = filter
	c.recomputeLocked()
}

// OnCountryClick selects country, or clears the selection when country is
// already selected. Only countries in the current aggregate list can be
// selected; anything else returns ErrUnknownCountry and leaves the selection
// alone.
func (c *Controller) OnCountryClick(country string) (selected string, ok bool, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.hasSelection && c.selectedCountry == country {
		c.selectedCountry = ""
		c.hasSelection = false
		return "", false, nil
	}
	if !models.ContainsCountry(c.aggregates, country) {
		return c.selectedCountry, c.hasSelection, models.ErrUnknownCountry
	}
	c.selectedCountry = country
	c.hasSelection = true
	return country, true, nil
}

// BeginFetch enters the loading state. Existing data and errors stay in
// place until the fetch resolves.
func (c *Controller) BeginFetch() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return models.ErrViewClosed
	}
	if c.lifecycle != models.LifecycleIdle {
		return models.ErrFetchAlreadyStarted
	}
	c.lifecycle = models.LifecycleLoading
	c.loading = true
	return nil
}

// CompleteFetch replaces the batch wholesale and recomputes the aggregates
// with the current filter. It returns ErrViewClosed, and changes nothing,
// once the view has been closed.
func (c *Controller) CompleteFetch(records []models.UserRecord) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return models.ErrViewClosed
	}

	previous := c.batchID
	c.batch = models.PresentBatch(records)
	c.batchID = uuid.NewString()
	c.errMsg = ""
	c.errKind = models.ErrorKindNone
	c.recomputeLocked()
	c.lifecycle = models.LifecycleSuccess
	c.loading = false
	hook := c.onBatchReplaced
	c.mu.Unlock()

	if hook != nil && previous != "" {
		hook(previous)
	}
	return nil
}

// FailFetch clears the batch and aggregates and stores a displayable message
// for err. Like CompleteFetch it is a no-op after Close.
func (c *Controller) FailFetch(err error) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return models.ErrViewClosed
	}

	previous := c.batchID
	c.batch = models.AbsentBatch()
	c.batchID = ""
	c.aggregates = []models.CountryAggregate{}
	c.errMsg, c.errKind = describeFetchError(err)
	c.lifecycle = models.LifecycleError
	c.loading = false
	c.metrics.SetView(0, 0)
	hook := c.onBatchReplaced
	c.mu.Unlock()

	if hook != nil && previous != "" {
		hook(previous)
	}
	return nil
}

// Close discards the view. Fetch results arriving afterwards are dropped.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}

// Snapshot returns a copy of the current state. The batch, its id and the
// selection are read under one lock so they always belong together.
func (c *Controller) Snapshot() View {
	c.mu.RLock()
	defer c.mu.RUnlock()

	aggregates := make([]models.CountryAggregate, len(c.aggregates))
	copy(aggregates, c.aggregates)

	records, present := c.batch.Records()
	return View{
		Lifecycle:       c.lifecycle,
		Loading:         c.loading,
		ErrorMessage:    c.errMsg,
		ErrorKind:       c.errKind,
		Aggregates:      aggregates,
		SelectedCountry: c.selectedCountry,
		HasSelection:    c.hasSelection,
		SelectedGender:  c.gender,
		BatchID:         c.batchID,
		BatchPresent:    present,
		RecordCount:     c.batch.Len(),
		records:         records,
	}
}

func (c *Controller) recomputeLocked() {
	records, present := c.batch.Records()
	if !present {
		c.aggregates = []models.CountryAggregate{}
		c.metrics.SetView(0, 0)
		return
	}
	c.aggregates = Aggregate(records, c.gender)
	c.metrics.SetView(len(records), len(c.aggregates))
}

func describeFetchError(err error) (string, models.ErrorKind) {
	kind := models.ErrorKindUnknown
	if randomuser.IsTransportOrHTTP(err) {
		kind = models.ErrorKindTransportOrHTTP
	}
	if err == nil || err.Error() == "" {
		return models.UnknownErrorMessage, kind
	}
	return err.Error(), kind
}
