package countries

import (
	"context"
	"time"

	"github.com/joefazee/countryview/models"
)

var baseTime = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

func record(id, country string, gender models.Gender, daysAfterBase int) models.UserRecord {
	return models.UserRecord{
		ID:           id,
		Name:         models.Name{First: "First" + id, Last: "Last" + id},
		Gender:       gender,
		Location:     models.Location{Country: country, City: "City" + id, State: "State" + id},
		RegisteredAt: baseTime.AddDate(0, 0, daysAfterBase),
	}
}

// scenarioRecords is the three-record batch used across the view tests.
func scenarioRecords() []models.UserRecord {
	return []models.UserRecord{
		record("1", "US", models.GenderMale, 1),
		record("2", "US", models.GenderFemale, 2),
		record("3", "FR", models.GenderMale, 3),
	}
}

type stubFetcher struct {
	records []models.UserRecord
	err     error
	calls   int
	wait    <-chan struct{}
}

func (f *stubFetcher) FetchUsers(ctx context.Context) ([]models.UserRecord, error) {
	f.calls++
	if f.wait != nil {
		select {
		case <-f.wait:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return f.records, f.err
}
