package models

import "errors"

var (
	ErrInvalidRecordID         = errors.New("invalid record ID")
	ErrInvalidRegistrationDate = errors.New("invalid registration date")
	ErrDuplicateRecordID       = errors.New("duplicate record ID in batch")

	ErrInvalidGenderFilter = errors.New("invalid gender filter")
	ErrUnknownCountry      = errors.New("country not in current list")

	ErrFetchAlreadyStarted = errors.New("fetch already started")
	ErrViewClosed          = errors.New("view closed")
)
