package countries

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/joefazee/countryview/internal/validator"
	"github.com/joefazee/countryview/models"
)

var hundred = decimal.NewFromInt(100)

// SetGenderRequest represents the request to change the gender filter
type SetGenderRequest struct {
	Gender string `json:"gender" binding:"required"`
}

// Validate checks that Gender is one of All, male or female
func (r *SetGenderRequest) Validate(v *validator.Validator) bool {
	v.Check(validator.In(strings.ToLower(strings.TrimSpace(r.Gender)), "all", "male", "female"),
		"gender", "must be one of All, male, female")
	return v.Valid()
}

// Filter returns the parsed filter. Call Validate first.
func (r *SetGenderRequest) Filter() models.GenderFilter {
	f, _ := models.ParseGenderFilter(r.Gender)
	return f
}

// CountryClickRequest represents a click on a country row
type CountryClickRequest struct {
	Country string `json:"country" binding:"required"`
}

// Validate checks the shape of Country. Whether the country is in the
// current list is decided by the controller.
func (r *CountryClickRequest) Validate(v *validator.Validator) bool {
	validator.CountryName(v, "country", r.Country)
	return v.Valid()
}

// CountryResponse is one row of the aggregate list
type CountryResponse struct {
	Country string          `json:"country"`
	Count   int             `json:"count"`
	Share   decimal.Decimal `json:"share" swaggertype:"string" example:"12.5"`
}

// UserResponse represents one user in a country's detail list
type UserResponse struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	FullName     string    `json:"full_name"`
	Gender       string    `json:"gender"`
	Country      string    `json:"country"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	Email        string    `json:"email,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Nationality  string    `json:"nationality,omitempty"`
	RegisteredAt time.Time `json:"registered_at"`
}

// ViewError describes a failed fetch
type ViewError struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// ViewResponse is everything needed to render the page
type ViewResponse struct {
	Lifecycle       string            `json:"lifecycle"`
	Loading         bool              `json:"loading"`
	Error           *ViewError        `json:"error,omitempty"`
	Countries       []CountryResponse `json:"countries"`
	Total           int               `json:"total"`
	SelectedCountry *string           `json:"selected_country"`
	SelectedGender  string            `json:"selected_gender"`
	Details         []UserResponse    `json:"details"`
}

// SelectionResponse reports the selection after a change
type SelectionResponse struct {
	SelectedCountry *string           `json:"selected_country"`
	SelectedGender  string            `json:"selected_gender"`
	Countries       []CountryResponse `json:"countries"`
}

// ToCountryResponseList converts aggregates and computes each country's
// share of the filtered total as a percentage rounded to two places.
func ToCountryResponseList(aggregates []models.CountryAggregate) []CountryResponse {
	responses := make([]CountryResponse, len(aggregates))
	total := decimal.NewFromInt(int64(models.TotalCount(aggregates)))
	for i, a := range aggregates {
		share := decimal.Zero
		if total.IsPositive() {
			share = decimal.NewFromInt(int64(a.Count)).Mul(hundred).Div(total).Round(2)
		}
		responses[i] = CountryResponse{Country: a.Country, Count: a.Count, Share: share}
	}
	return responses
}

// ToUserResponse converts a models.UserRecord to UserResponse
func ToUserResponse(u *models.UserRecord) UserResponse {
	return UserResponse{
		ID:           u.ID,
		FirstName:    u.Name.First,
		LastName:     u.Name.Last,
		FullName:     u.Name.Full(),
		Gender:       string(u.Gender),
		Country:      u.Location.Country,
		City:         u.Location.City,
		State:        u.Location.State,
		Email:        u.Email,
		Phone:        u.Phone,
		Nationality:  u.Nationality,
		RegisteredAt: u.RegisteredAt,
	}
}

// ToUserResponseList converts a slice of models.UserRecord to UserResponse
func ToUserResponseList(records []models.UserRecord) []UserResponse {
	responses := make([]UserResponse, len(records))
	for i := range records {
		responses[i] = ToUserResponse(&records[i])
	}
	return responses
}

func selectedCountryPtr(v *View) *string {
	if !v.HasSelection {
		return nil
	}
	country := v.SelectedCountry
	return &country
}
