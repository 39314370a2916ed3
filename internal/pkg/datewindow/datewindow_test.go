package datewindow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		clock   string
		offset  string
		want    string
		wantErr bool
	}{
		{
			name:   "date with time and WIB",
			date:   "2024-01-15",
			clock:  "14:30",
			offset: "+07:00",
			want:   "Jan 15, 2024 14:30 WIB",
		},
		{
			name:   "date with time and WITA",
			date:   "2024-06-01",
			clock:  "09:00",
			offset: "+08:00",
			want:   "Jun 1, 2024 09:00 WITA",
		},
		{
			name:  "date only",
			date:  "2024-12-31",
			clock: "",
			want:  "Dec 31, 2024",
		},
		{
			name:    "garbage date",
			date:    "15-01-2024",
			wantErr: true,
		},
		{
			name:    "garbage time",
			date:    "2024-01-15",
			clock:   "25:99",
			offset:  "+07:00",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Format(tt.date, tt.clock, tt.offset)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDisplayRoundTrip(t *testing.T) {
	display, err := Format("2024-01-15", "14:30", "+07:00")
	require.NoError(t, err)
	require.Equal(t, "Jan 15, 2024 14:30 WIB", display)

	parsed, err := ParseDisplay(display, DefaultOffset)
	require.NoError(t, err)

	want, err := time.Parse(time.RFC3339, "2024-01-15T14:30:00+07:00")
	require.NoError(t, err)
	assert.True(t, parsed.Equal(want))
}

func TestParseDisplayDateOnly(t *testing.T) {
	parsed, err := ParseDisplay("Dec 31, 2024", DefaultOffset)
	require.NoError(t, err)

	want, err := time.Parse(time.RFC3339, "2024-12-31T00:00:00+07:00")
	require.NoError(t, err)
	assert.True(t, parsed.Equal(want))
}

func TestParseDisplayZoneLabels(t *testing.T) {
	wita, err := ParseDisplay("Jan 15, 2024 14:30 WITA", DefaultOffset)
	require.NoError(t, err)

	wib, err := ParseDisplay("Jan 15, 2024 14:30 WIB", DefaultOffset)
	require.NoError(t, err)

	// The same wall clock an hour apart on the absolute timeline.
	assert.Equal(t, time.Hour, wib.Sub(wita))
}

func TestCanonicalPrefersRawParts(t *testing.T) {
	// Display deliberately disagrees with the raw parts; the raw parts
	// win whenever all three are present.
	v := Value{
		Date:     "2024-01-15",
		Time:     "14:30",
		TimeZone: "+07:00",
		Display:  "Feb 20, 2025 09:00 WIB",
	}

	got, err := v.Canonical(DefaultOffset)
	require.NoError(t, err)

	want, err := time.Parse(time.RFC3339, "2024-01-15T14:30:00+07:00")
	require.NoError(t, err)
	assert.True(t, got.Equal(want))
}

func TestCanonicalFallsBackToDisplay(t *testing.T) {
	v := Value{
		Date:    "2024-01-15", // time and zone missing, display decides
		Display: "Feb 20, 2025 09:00 WIB",
	}

	got, err := v.Canonical(DefaultOffset)
	require.NoError(t, err)

	want, err := time.Parse(time.RFC3339, "2025-02-20T09:00:00+07:00")
	require.NoError(t, err)
	assert.True(t, got.Equal(want))
}

func TestCanonicalUnresolvable(t *testing.T) {
	v := Value{Display: "sometime next week"}

	_, err := v.Canonical(DefaultOffset)
	assert.Error(t, err)
}

func TestZoneLabel(t *testing.T) {
	assert.Equal(t, "WIB", ZoneLabel("+07:00"))
	assert.Equal(t, "WITA", ZoneLabel("+08:00"))
	assert.Equal(t, "WIT", ZoneLabel("+09:00"))
	assert.Equal(t, "+05:30", ZoneLabel("+05:30"))
}
