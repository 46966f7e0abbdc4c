package cache

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/joefazee/countryview/models"
)

// MockCache is a testify mock for the detail-list cache.
type MockCache struct {
	mock.Mock
}

var _ Cache[[]models.UserRecord] = (*MockCache)(nil)

func (m *MockCache) Get(ctx context.Context, key string) ([]models.UserRecord, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UserRecord), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value []models.UserRecord, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) DeletePrefix(ctx context.Context, prefix string) error {
	args := m.Called(ctx, prefix)
	return args.Error(0)
}

func (m *MockCache) Close() error {
	return m.Called().Error(0)
}
