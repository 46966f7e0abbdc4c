package countries

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/joefazee/countryview/internal/cache"
	"github.com/joefazee/countryview/internal/logger"
	"github.com/joefazee/countryview/internal/metrics"
	"github.com/joefazee/countryview/models"
)

const detailKeyPrefix = "details:"

// service implements the Service interface
type service struct {
	controller *Controller
	cache      cache.Cache[[]models.UserRecord]
	ttl        time.Duration
	logger     logger.Logger
	metrics    *metrics.Metrics
}

// NewService creates a view service. A nil cache computes every detail
// list on demand.
func NewService(controller *Controller,
	detailCache cache.Cache[[]models.UserRecord],
	ttl time.Duration,
	log logger.Logger,
	m *metrics.Metrics,
) Service {
	if log == nil {
		log = logger.NewNullLogger()
	}
	return &service{
		controller: controller,
		cache:      detailCache,
		ttl:        ttl,
		logger:     log,
		metrics:    m,
	}
}

// View returns the full render state, including the details of the selected
// country when there is one.
func (s *service) View(ctx context.Context) (*ViewResponse, error) {
	view := s.controller.Snapshot()

	res := &ViewResponse{
		Lifecycle:       string(view.Lifecycle),
		Loading:         view.Loading,
		Countries:       ToCountryResponseList(view.Aggregates),
		Total:           models.TotalCount(view.Aggregates),
		SelectedCountry: selectedCountryPtr(&view),
		SelectedGender:  string(view.SelectedGender),
		Details:         []UserResponse{},
	}
	if view.Lifecycle == models.LifecycleError {
		res.Error = &ViewError{Kind: string(view.ErrorKind), Message: view.ErrorMessage}
	}

	if view.HasSelection {
		details, err := s.details(ctx, &view, view.SelectedCountry, view.SelectedGender)
		if err != nil {
			return nil, err
		}
		res.Details = ToUserResponseList(details)
	}
	return res, nil
}

// Countries returns the aggregate list for the current filter
func (s *service) Countries(_ context.Context) ([]CountryResponse, error) {
	view := s.controller.Snapshot()
	return ToCountryResponseList(view.Aggregates), nil
}

// CountryUsers lists one country's users. A nil filter uses the current one.
func (s *service) CountryUsers(ctx context.Context, country string, filter *models.GenderFilter) ([]UserResponse, error) {
	view := s.controller.Snapshot()
	gender := view.SelectedGender
	if filter != nil {
		gender = *filter
	}

	details, err := s.details(ctx, &view, country, gender)
	if err != nil {
		return nil, err
	}
	return ToUserResponseList(details), nil
}

// SetGender changes the filter and returns the recomputed list
func (s *service) SetGender(_ context.Context, filter models.GenderFilter) (*SelectionResponse, error) {
	s.controller.OnGenderChange(filter)
	return s.selection(), nil
}

// ToggleCountry selects or deselects country. Countries outside the current
// list are rejected with ErrUnknownCountry.
func (s *service) ToggleCountry(_ context.Context, country string) (*SelectionResponse, error) {
	if _, _, err := s.controller.OnCountryClick(country); err != nil {
		return nil, err
	}
	return s.selection(), nil
}

// SelectedUsers returns the detail list of the selected country, or an empty
// list when nothing is selected.
func (s *service) SelectedUsers(ctx context.Context) ([]UserResponse, error) {
	view := s.controller.Snapshot()
	if !view.HasSelection {
		return []UserResponse{}, nil
	}

	details, err := s.details(ctx, &view, view.SelectedCountry, view.SelectedGender)
	if err != nil {
		return nil, err
	}
	return ToUserResponseList(details), nil
}

// InvalidateBatch drops every cached detail list of batchID
func (s *service) InvalidateBatch(ctx context.Context, batchID string) error {
	if s.cache == nil || batchID == "" {
		return nil
	}
	if err := s.cache.DeletePrefix(ctx, detailKeyPrefix+batchID+":"); err != nil {
		return fmt.Errorf("invalidate batch %s: %w", batchID, err)
	}
	return nil
}

func (s *service) selection() *SelectionResponse {
	view := s.controller.Snapshot()
	return &SelectionResponse{
		SelectedCountry: selectedCountryPtr(&view),
		SelectedGender:  string(view.SelectedGender),
		Countries:       ToCountryResponseList(view.Aggregates),
	}
}

// details memoizes DetailsFor per batch, reading only from view. Cache
// failures fall back to computing the list directly.
func (s *service) details(ctx context.Context, view *View, country string, filter models.GenderFilter) ([]models.UserRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if !view.BatchPresent {
		return []models.UserRecord{}, nil
	}
	records := view.records
	if s.cache == nil {
		return DetailsFor(records, country, filter), nil
	}

	key := detailKey(view.BatchID, country, filter)
	cached, err := s.cache.Get(ctx, key)
	if err == nil {
		s.metrics.CacheLookup(true)
		return cached, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		s.logger.Warn("detail cache read failed", logger.Fields{"key": key, "error": err.Error()})
	}
	s.metrics.CacheLookup(false)

	details := DetailsFor(records, country, filter)
	if err := s.cache.Set(ctx, key, details, s.ttl); err != nil {
		s.logger.Warn("detail cache write failed", logger.Fields{"key": key, "error": err.Error()})
	}
	return details, nil
}

func detailKey(batchID, country string, filter models.GenderFilter) string {
	return detailKeyPrefix + batchID + ":" + country + ":" + string(filter)
}
