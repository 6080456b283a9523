package workday

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateBucketsByCompanyTimezone(t *testing.T) {
	jakarta, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)
	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	tests := []struct {
		name string
		now  time.Time
		loc  *time.Location
		want time.Time
	}{
		{
			// 23:30 UTC is already 06:30 the next day in UTC+7
			name: "late UTC evening rolls into the next Jakarta day",
			now:  time.Date(2026, 3, 10, 23, 30, 0, 0, time.UTC),
			loc:  jakarta,
			want: time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "same instant stays on the UTC day in UTC",
			now:  time.Date(2026, 3, 10, 23, 30, 0, 0, time.UTC),
			loc:  time.UTC,
			want: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			// 03:00 UTC is still the previous evening in New York
			name: "early UTC morning stays on the previous New York day",
			now:  time.Date(2026, 3, 10, 3, 0, 0, 0, time.UTC),
			loc:  newYork,
			want: time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "local midnight is its own day",
			now:  time.Date(2026, 3, 9, 17, 0, 0, 0, time.UTC), // 00:00 Mar 10 in UTC+7
			loc:  jakarta,
			want: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Date(tc.now, tc.loc))
		})
	}
}

func TestDateNormalizesToUTCMidnight(t *testing.T) {
	jakarta, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	got := Date(time.Date(2026, 3, 10, 5, 45, 12, 0, time.UTC), jakarta)

	assert.Equal(t, time.UTC, got.Location())
	h, m, s := got.Clock()
	assert.Zero(t, h)
	assert.Zero(t, m)
	assert.Zero(t, s)
}
