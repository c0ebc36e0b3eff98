package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tzresolve/internal/domains/zone/model/dto"
	"tzresolve/shared/timezone"
)

func TestFormatOffset(t *testing.T) {
	tests := []struct {
		offset time.Duration
		want   string
	}{
		{offset: 0, want: "+00:00"},
		{offset: 5*time.Hour + 45*time.Minute, want: "+05:45"},
		{offset: -(3*time.Hour + 30*time.Minute), want: "-03:30"},
		{offset: 14 * time.Hour, want: "+14:00"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, dto.FormatOffset(tt.offset))
		})
	}
}

func TestZoneResponse_FromZone(t *testing.T) {
	zone, err := timezone.EmbeddedDatabase{}.Lookup("America/St_Johns")
	require.NoError(t, err)

	zone.Name = "America/St_Johns"
	at := time.Date(2024, time.July, 1, 12, 0, 0, 0, time.UTC)

	var res dto.ZoneResponse
	res.FromZone(zone, at)

	assert.Equal(t, "America/St_Johns", res.Name)
	assert.Equal(t, "America/St_Johns", res.Location)
	assert.Equal(t, "-02:30", res.Offset)
	assert.Equal(t, -9000, res.OffsetSeconds)
	assert.Equal(t, "NDT", res.Abbreviation)
	assert.True(t, res.DST)
	assert.Equal(t, "2024-07-01T09:30:00-02:30", res.LocalTime)
}

func TestConvertRequest_WallTime(t *testing.T) {
	loc := time.FixedZone("WIB", 7*3600)

	parsed, err := dto.ConvertRequest{Time: "2024-01-15T19:00:00"}.WallTime(loc)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC)))

	_, err = dto.ConvertRequest{Time: "2024-01-15"}.WallTime(loc)
	assert.Error(t, err)
}
