package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores and the cache return
// these (optionally wrapped) so services can translate them into domain
// errors.
//
// These represent factual states about resources, not validation failures:
// - ErrNotFound: entry does not exist in the store
// - ErrConflict: entry already exists
// - ErrExpired: entry exists but is past its expiry
// - ErrUnavailable: backing service temporarily unreachable
//
// For validation errors (bad input), use pkg/domain-errors directly.
var (
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrExpired     = errors.New("expired")
	ErrUnavailable = errors.New("unavailable")
)
