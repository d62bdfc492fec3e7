package forecast

import "errors"

// Sentinel errors shared by the forecast engine and its storage backends.
// Handlers map these onto HTTP statuses.
var (
	// ErrStorageUnavailable marks a failed read or write against the
	// backing store. The whole calculation or commit is abandoned; the
	// caller may retry the operation as a unit.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrDuplicateObservation is returned when a sales observation
	// already exists for a (product, date, slot) and the caller did not
	// ask for an update.
	ErrDuplicateObservation = errors.New("sales observation already exists")

	// ErrNotFound is returned for lookups of unknown records.
	ErrNotFound = errors.New("record not found")

	// ErrValidation marks malformed caller input. Note that manual
	// overrides are exempt: an unusable override degrades to the
	// computed forecast instead of raising this.
	ErrValidation = errors.New("invalid input")
)
