package timezone

import "time"

// Zone pairs a resolved location with the name it is displayed under.
type Zone struct {
	Location *time.Location
	Name     string
}

// String returns the display name, falling back to the location's own name.
func (z Zone) String() string {
	if z.Name != "" {
		return z.Name
	}

	if z.Location != nil {
		return z.Location.String()
	}

	return ""
}

// In returns t expressed in the zone.
func (z Zone) In(t time.Time) time.Time {
	return t.In(z.location())
}

// Offset returns the UTC offset in effect at t.
func (z Zone) Offset(t time.Time) time.Duration {
	_, offset := z.In(t).Zone()

	return time.Duration(offset) * time.Second
}

// Abbreviation returns the zone abbreviation in effect at t, such as "CET".
func (z Zone) Abbreviation(t time.Time) string {
	name, _ := z.In(t).Zone()

	return name
}

// IsDST reports whether daylight saving time is in effect at t.
func (z Zone) IsDST(t time.Time) bool {
	return z.In(t).IsDST()
}

func (z Zone) location() *time.Location {
	if z.Location == nil {
		return time.UTC
	}

	return z.Location
}
