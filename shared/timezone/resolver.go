package timezone

import (
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

// Resolver turns zone names into zones. It is safe for concurrent use.
type Resolver struct {
	database Database
	detector Detector
	roots    []string
}

// NewResolver returns a resolver. roots are stripped from the display name of
// path-style zone names.
func NewResolver(database Database, detector Detector, roots []string) *Resolver {
	return &Resolver{
		database: database,
		detector: detector,
		roots:    cleanRoots(roots),
	}
}

// Resolve returns the zone for name, or the host's local zone when name is
// empty. A name the database cannot read yields a *ZoneResolutionError.
func (r *Resolver) Resolve(name string) (Zone, error) {
	if name == "" {
		local, err := r.detector.Detect()
		if err != nil {
			return Zone{}, fmt.Errorf("detect local timezone: %w", err)
		}

		name, err = local.ID()
		if err != nil {
			return Zone{}, err
		}

		log.Trace().Str("timezone", name).Msg("local timezone detected")
	}

	zone, err := r.database.Lookup(name)
	if err != nil {
		return Zone{}, &ZoneResolutionError{Zone: name, Err: err}
	}

	if zone.Location == nil {
		return Zone{}, &ZoneResolutionError{Zone: name}
	}

	if zone.Name == "" {
		zone.Name = r.displayName(name)
	}

	return zone, nil
}

func (r *Resolver) displayName(name string) string {
	for _, root := range r.roots {
		if prefix := rootPrefix(root); strings.HasPrefix(name, prefix) {
			return name[len(prefix):]
		}
	}

	return name
}

var defaultResolver = sync.OnceValue(func() *Resolver {
	return NewResolver(
		NewSystemDatabase(DefaultRootPaths, true),
		NewSystemDetector(DefaultLocaltimePath, DefaultZoneFilePath, DefaultRootPaths),
		DefaultRootPaths,
	)
})

// Resolve resolves name with the system database and detector over the
// default root paths.
func Resolve(name string) (Zone, error) {
	return defaultResolver().Resolve(name)
}
