package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateAcceptsKnownLayouts(t *testing.T) {
	want := time.Date(2022, time.May, 10, 0, 0, 0, 0, time.UTC)

	for _, in := range []string{"10-05-2022", "2022-05-10", "2022-05-10T00:00:00Z", " 10-05-2022 "} {
		got, err := ParseDate(in)
		require.NoError(t, err, in)
		assert.True(t, want.Equal(got), in)
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	_, err := ParseDate("May 10th")
	assert.Error(t, err)

	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestShiftDateAddsOneDay(t *testing.T) {
	got, err := ShiftDate("2022-05-10", 1)
	require.NoError(t, err)
	assert.Equal(t, "11-05-2022", got)

	got, err = ShiftDate("31-12-2022", 1)
	require.NoError(t, err)
	assert.Equal(t, "01-01-2023", got)

	got, err = ShiftDate("28-02-2024", 1)
	require.NoError(t, err)
	assert.Equal(t, "29-02-2024", got)
}

func TestDaysInclusive(t *testing.T) {
	start := time.Date(2022, time.May, 10, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 1, DaysInclusive(start, start))
	assert.Equal(t, 3, DaysInclusive(start, start.AddDate(0, 0, 2)))
	assert.Equal(t, 0, DaysInclusive(start, start.AddDate(0, 0, -1)))
}
