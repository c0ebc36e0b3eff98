package dto

import (
	"fmt"
	"time"

	"tzresolve/shared/constant"
	"tzresolve/shared/timezone"
)

// WallTimeLayout is the layout of zone-less wall clock times.
const WallTimeLayout = "2006-01-02T15:04:05"

type ZoneResponse struct {
	Name          string `json:"name"`
	Location      string `json:"location"`
	At            string `json:"at"`
	LocalTime     string `json:"local_time"`
	Offset        string `json:"offset"`
	OffsetSeconds int    `json:"offset_seconds"`
	Abbreviation  string `json:"abbreviation"`
	DST           bool   `json:"dst"`
}

func (r *ZoneResponse) FromZone(zone timezone.Zone, at time.Time) {
	offset := zone.Offset(at)

	r.Name = zone.String()
	r.At = at.UTC().Format(constant.DateFormat)
	r.LocalTime = zone.In(at).Format(constant.DateFormat)
	r.Offset = FormatOffset(offset)
	r.OffsetSeconds = int(offset / time.Second)
	r.Abbreviation = zone.Abbreviation(at)
	r.DST = zone.IsDST(at)

	if zone.Location != nil {
		r.Location = zone.Location.String()
	}
}

// FormatOffset renders an offset as ±hh:mm.
func FormatOffset(offset time.Duration) string {
	sign := '+'
	if offset < 0 {
		sign = '-'
		offset = -offset
	}

	minutes := int(offset / time.Minute)

	return fmt.Sprintf("%c%02d:%02d", sign, minutes/60, minutes%60)
}

type ZoneListResponse struct {
	Zones []string `json:"zones"`
	Total int      `json:"total"`
}

func (r *ZoneListResponse) FromNames(zones []string) {
	r.Zones = zones
	r.Total = len(zones)
}

// ConvertRequest re-expresses a wall clock time read in From in the zone To.
// An empty zone means the host's local zone.
type ConvertRequest struct {
	Time string `json:"time" validate:"required,datetime=2006-01-02T15:04:05"`
	From string `json:"from" validate:"omitempty,max=255,zonename"`
	To   string `json:"to" validate:"omitempty,max=255,zonename"`
}

// WallTime parses Time in loc.
func (r ConvertRequest) WallTime(loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(WallTimeLayout, r.Time, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse wall time: %w", err)
	}

	return t, nil
}

type ConvertResponse struct {
	From ZoneResponse `json:"from"`
	To   ZoneResponse `json:"to"`
}
