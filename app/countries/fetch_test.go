package countries

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joefazee/countryview/internal/logger"
	"github.com/joefazee/countryview/internal/metrics"
	"github.com/joefazee/countryview/internal/randomuser"
	"github.com/joefazee/countryview/models"
)

func TestOrchestrator_Success(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	controller := NewController()
	fetcher := &stubFetcher{records: scenarioRecords()}
	o := NewOrchestrator(fetcher, controller, logger.NewNullLogger(), m)

	require.NoError(t, o.Run(context.Background()))

	view := controller.Snapshot()
	assert.Equal(t, models.LifecycleSuccess, view.Lifecycle)
	assert.False(t, view.Loading)
	assert.Equal(t, []models.CountryAggregate{{Country: "US", Count: 2}, {Country: "FR", Count: 1}}, view.Aggregates)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.FetchTotal.WithLabelValues(metrics.OutcomeSuccess)))

	select {
	case <-o.Done():
	default:
		t.Fatal("Done should be closed after Run")
	}
}

func TestOrchestrator_RunsOnce(t *testing.T) {
	fetcher := &stubFetcher{records: scenarioRecords()}
	o := NewOrchestrator(fetcher, NewController(), nil, nil)

	require.NoError(t, o.Run(context.Background()))
	assert.ErrorIs(t, o.Run(context.Background()), models.ErrFetchAlreadyStarted)
	assert.Equal(t, 1, fetcher.calls)
}

func TestOrchestrator_HTTP500(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	var logs bytes.Buffer
	m := metrics.New(prometheus.NewRegistry())
	controller := NewController()
	client := randomuser.NewClient(randomuser.Config{BaseURL: srv.URL})
	o := NewOrchestrator(client, controller, logger.NewZeroLogger(&logs, logger.LevelInfo, nil), m)

	require.NoError(t, o.Run(context.Background()))

	view := controller.Snapshot()
	assert.Equal(t, models.LifecycleError, view.Lifecycle)
	assert.False(t, view.Loading)
	assert.Empty(t, view.Aggregates)
	assert.Equal(t, "HTTP error: Status 500", view.ErrorMessage)
	assert.Equal(t, models.ErrorKindTransportOrHTTP, view.ErrorKind)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.FetchTotal.WithLabelValues(metrics.OutcomeError)))
	assert.Contains(t, logs.String(), `"kind":"transport_or_http"`)
}

func TestOrchestrator_EmptyResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"results":[]}`))
	}))
	defer srv.Close()

	controller := NewController()
	client := randomuser.NewClient(randomuser.Config{BaseURL: srv.URL})
	require.NoError(t, NewOrchestrator(client, controller, nil, nil).Run(context.Background()))

	view := controller.Snapshot()
	assert.Equal(t, models.LifecycleSuccess, view.Lifecycle)
	assert.Empty(t, view.Aggregates)
	assert.Empty(t, view.ErrorMessage)
}

func TestOrchestrator_ResultAfterCloseIsDropped(t *testing.T) {
	release := make(chan struct{})
	m := metrics.New(prometheus.NewRegistry())
	controller := NewController()
	fetcher := &stubFetcher{records: scenarioRecords(), wait: release}
	o := NewOrchestrator(fetcher, controller, nil, m)

	go func() { _ = o.Run(context.Background()) }()

	require.Eventually(t, func() bool {
		return controller.Snapshot().Loading
	}, time.Second, time.Millisecond)

	controller.Close()
	close(release)
	<-o.Done()

	view := controller.Snapshot()
	assert.Equal(t, models.LifecycleLoading, view.Lifecycle)
	assert.False(t, view.BatchPresent)
	assert.Empty(t, view.Aggregates)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.FetchTotal.WithLabelValues(metrics.OutcomeDiscarded)))
}

func TestOrchestrator_CanceledAfterClose(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	controller := NewController()
	fetcher := &stubFetcher{wait: make(chan struct{})}
	o := NewOrchestrator(fetcher, controller, nil, nil)

	go func() { _ = o.Run(ctx) }()
	require.Eventually(t, func() bool {
		return controller.Snapshot().Loading
	}, time.Second, time.Millisecond)

	controller.Close()
	cancel()
	<-o.Done()

	assert.Empty(t, controller.Snapshot().ErrorMessage)
}

func TestOrchestrator_ClosedBeforeStart(t *testing.T) {
	controller := NewController()
	controller.Close()
	fetcher := &stubFetcher{records: scenarioRecords()}

	require.NoError(t, NewOrchestrator(fetcher, controller, nil, nil).Run(context.Background()))
	assert.Equal(t, 0, fetcher.calls)
	assert.Equal(t, models.LifecycleIdle, controller.Snapshot().Lifecycle)
}
