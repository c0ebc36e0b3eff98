// Package timezone resolves zone names into Zone handles and keeps the
// application clock.
//
// Usage Examples:
//
//  1. Resolving a named zone:
//     zone, err := timezone.Resolve("Europe/London")
//     offset := zone.Offset(time.Now())
//
//  2. Resolving the host's local zone:
//     zone, err := timezone.Resolve("")
//
//  3. A resolver with custom collaborators:
//     resolver := timezone.NewResolver(timezone.NewSystemDatabase(roots, true), detector, roots)
//     zone, err := resolver.Resolve(ctx, "America/New_York")
//
//  4. Application clock after SetAppZone:
//     now := timezone.Now()
//     formatted := timezone.Format(time.Now(), "2006-01-02 15:04:05")
//
// A name the database cannot read yields a *ZoneResolutionError that names
// the zone. Zone names may be database identifiers ("UTC", "Asia/Jakarta") or
// absolute paths below one of the configured root paths, in which case the
// root is stripped from the display name.
package timezone
