package models

import (
	"strings"
	"time"
)

// Gender is the gender value reported by the upstream API. Values outside
// the known set are kept as-is.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Name holds a person's given and family name
type Name struct {
	First string `json:"first"`
	Last  string `json:"last"`
}

// Full returns "First Last", trimming the separator when a part is missing.
func (n Name) Full() string {
	return strings.TrimSpace(n.First + " " + n.Last)
}

// Location is where a user lives
type Location struct {
	Country string `json:"country"`
	City    string `json:"city"`
	State   string `json:"state"`
}

// UserRecord is one fetched person. Records are never mutated after fetch;
// ID is the only stable key and is unique within a batch.
type UserRecord struct {
	ID           string    `json:"id"`
	Name         Name      `json:"name"`
	Gender       Gender    `json:"gender"`
	Location     Location  `json:"location"`
	RegisteredAt time.Time `json:"registered_at"`
	Email        string    `json:"email,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Nationality  string    `json:"nationality,omitempty"`
}

// Validate performs validation on a fetched record
func (u *UserRecord) Validate() error {
	if strings.TrimSpace(u.ID) == "" {
		return ErrInvalidRecordID
	}
	if u.RegisteredAt.IsZero() {
		return ErrInvalidRegistrationDate
	}
	return nil
}
