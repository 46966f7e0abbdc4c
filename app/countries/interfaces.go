package countries

import (
	"context"

	"github.com/joefazee/countryview/models"
)

// Fetcher retrieves one batch of user records from the upstream source.
type Fetcher interface {
	FetchUsers(ctx context.Context) ([]models.UserRecord, error)
}

// Service defines the view operations exposed over HTTP
type Service interface {
	View(ctx context.Context) (*ViewResponse, error)
	Countries(ctx context.Context) ([]CountryResponse, error)
	CountryUsers(ctx context.Context, country string, filter *models.GenderFilter) ([]UserResponse, error)
	SetGender(ctx context.Context, filter models.GenderFilter) (*SelectionResponse, error)
	ToggleCountry(ctx context.Context, country string) (*SelectionResponse, error)
	SelectedUsers(ctx context.Context) ([]UserResponse, error)
	InvalidateBatch(ctx context.Context, batchID string) error
}
