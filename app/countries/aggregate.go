package countries

import (
	"sort"

	"github.com/joefazee/countryview/models"
)

// Aggregate groups the records matching filter by country and returns one
// entry per country, largest count first. Countries with equal counts keep
// the order in which they first appear in records.
func Aggregate(records []models.UserRecord, filter models.GenderFilter) []models.CountryAggregate {
	index := make(map[string]int)
	aggregates := make([]models.CountryAggregate, 0)

	for i := range records {
		if !filter.Matches(records[i].Gender) {
			continue
		}
		country := records[i].Location.Country
		if pos, ok := index[country]; ok {
			aggregates[pos].Count++
			continue
		}
		index[country] = len(aggregates)
		aggregates = append(aggregates, models.CountryAggregate{Country: country, Count: 1})
	}

	sort.SliceStable(aggregates, func(i, j int) bool {
		return aggregates[i].Count > aggregates[j].Count
	})
	return aggregates
}

// DetailsFor returns the records from country that match filter, most
// recently registered first. The input slice is left untouched.
func DetailsFor(records []models.UserRecord, country string, filter models.GenderFilter) []models.UserRecord {
	details := make([]models.UserRecord, 0)
	for i := range records {
		if records[i].Location.Country == country && filter.Matches(records[i].Gender) {
			details = append(details, records[i])
		}
	}

	sort.SliceStable(details, func(i, j int) bool {
		return details[i].RegisteredAt.After(details[j].RegisteredAt)
	})
	return details
}
