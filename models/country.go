package models

// CountryAggregate is the number of records from one country that match the
// active gender filter. Aggregates are derived and never stored.
type CountryAggregate struct {
	Country string `json:"country"`
	Count   int    `json:"count"`
}

// TotalCount sums the counts of a list of aggregates
func TotalCount(aggregates []CountryAggregate) int {
	total := 0
	for _, a := range aggregates {
		total += a.Count
	}
	return total
}

// ContainsCountry reports whether country appears in aggregates
func ContainsCountry(aggregates []CountryAggregate, country string) bool {
	for _, a := range aggregates {
		if a.Country == country {
			return true
		}
	}
	return false
}
