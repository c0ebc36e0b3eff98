package timezone

import (
	"errors"
	"fmt"
)

var (
	// ErrZoneResolution is matched by every *ZoneResolutionError.
	ErrZoneResolution = errors.New("timezone can not be read")
	// ErrLocalZoneUnknown is returned when a detector reports neither a zone nor a key.
	ErrLocalZoneUnknown = errors.New("local timezone could not be detected")

	errEmptyName   = errors.New("empty zone name")
	errInvalidName = errors.New("invalid zone name")
	errNotFound    = errors.New("zone not found")
	errOutsideRoot = errors.New("path is outside the configured root paths")
)

// ZoneResolutionError is returned when the database cannot resolve a zone name.
type ZoneResolutionError struct {
	Zone string
	Err  error
}

func (e *ZoneResolutionError) Error() string {
	return fmt.Sprintf("timezone %q can not be read", e.Zone)
}

func (e *ZoneResolutionError) Unwrap() error {
	return e.Err
}

func (e *ZoneResolutionError) Is(target error) bool {
	return target == ErrZoneResolution
}
