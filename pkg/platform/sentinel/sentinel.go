package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Blob stores and the persisted
// layout return these (optionally wrapped) so services can translate them into
// domain errors.
//
//   - ErrNotFound: key or entity does not exist in the store
//   - ErrCorrupt: stored value exists but cannot be decoded
//   - ErrUnavailable: backend temporarily unreachable
//
// For validation errors (bad input, missing fields), use pkg/domain-errors directly.
var (
	ErrNotFound    = errors.New("not found")
	ErrCorrupt     = errors.New("corrupt")
	ErrUnavailable = errors.New("unavailable")
)
