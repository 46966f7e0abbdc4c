package models

import (
	"strings"
)

// GenderFilter selects which genders take part in aggregation and detail
// listings.
type GenderFilter string

const (
	GenderFilterAll    GenderFilter = "All"
	GenderFilterMale   GenderFilter = GenderFilter(GenderMale)
	GenderFilterFemale GenderFilter = GenderFilter(GenderFemale)
)

// ParseGenderFilter accepts "All", "male" or "female" (case-insensitive).
// An empty string yields GenderFilterAll.
func ParseGenderFilter(s string) (GenderFilter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return GenderFilterAll, nil
	case string(GenderMale):
		return GenderFilterMale, nil
	case string(GenderFemale):
		return GenderFilterFemale, nil
	default:
		return "", ErrInvalidGenderFilter
	}
}

// Matches reports whether a record of gender g passes the filter.
func (f GenderFilter) Matches(g Gender) bool {
	if f == GenderFilterAll {
		return true
	}
	return Gender(f) == g
}

// Lifecycle is the state of the one-shot fetch
type Lifecycle string

const (
	LifecycleIdle    Lifecycle = "idle"
	LifecycleLoading Lifecycle = "loading"
	LifecycleSuccess Lifecycle = "success"
	LifecycleError   Lifecycle = "error"
)

// ErrorKind classifies a failed fetch for display
type ErrorKind string

const (
	ErrorKindNone            ErrorKind = ""
	ErrorKindTransportOrHTTP ErrorKind = "transport_or_http"
	ErrorKindUnknown         ErrorKind = "unknown"
)

// UnknownErrorMessage is shown when a failure carries no text of its own.
const UnknownErrorMessage = "An unknown error occurred."

// RecordBatch is an explicitly optional batch of records: either Present
// with a (possibly empty) slice, or Absent.
type RecordBatch struct {
	records []UserRecord
	present bool
}

// PresentBatch wraps records as a present batch. The slice is copied so later
// changes by the caller do not leak in.
func PresentBatch(records []UserRecord) RecordBatch {
	cp := make([]UserRecord, len(records))
	copy(cp, records)
	return RecordBatch{records: cp, present: true}
}

// AbsentBatch returns the empty arm.
func AbsentBatch() RecordBatch {
	return RecordBatch{}
}

// Records returns the batch contents and whether the batch is present.
func (b RecordBatch) Records() ([]UserRecord, bool) {
	return b.records, b.present
}

// Len is zero for an absent batch.
func (b RecordBatch) Len() int {
	return len(b.records)
}
