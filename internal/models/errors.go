package models

import "errors"

var (
	// ErrSourceBlocked means an upstream refused the request outright (403 etc).
	ErrSourceBlocked = errors.New("source blocked the request")

	// ErrMalformedPayload means a fetched payload was missing expected fields
	// or could not be decoded.
	ErrMalformedPayload = errors.New("malformed payload")

	// ErrContentTimeout means no content marker appeared within the bounded wait.
	ErrContentTimeout = errors.New("content marker did not appear in time")

	// ErrNoDescription means the page loaded but held no substantial
	// description text.
	ErrNoDescription = errors.New("no substantial description text on page")
)
