package service

import "github.com/pkg/errors"

// Sentinel errors surfaced to the transport layer.
var (
	ErrMalformedExtraction = errors.New("extraction produced malformed process data")
	ErrSessionNotFound     = errors.New("session not found")
	ErrSessionBusy         = errors.New("session is busy")
	ErrSessionComplete     = errors.New("session is already complete")
	ErrEmptyMessage        = errors.New("message must not be empty")
)
