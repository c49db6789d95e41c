package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	require.Equal(t, "09:30", ts.String())

	_, err = NewTimeStringFromString("9:30pm")
	require.Error(t, err)

	_, err = NewTimeStringFromString("25:00")
	require.Error(t, err)
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2025, 3, 4, 15, 30, 12, 0, time.UTC))
	require.Equal(t, "15:30", ts.String())
}

func TestAddMinutes(t *testing.T) {
	ts := TimeString("10:00")

	later, err := ts.AddMinutes(45)
	require.NoError(t, err)
	require.Equal(t, "10:45", later.String())

	later, err = ts.AddMinutes(90)
	require.NoError(t, err)
	require.Equal(t, "11:30", later.String())

	_, err = TimeString("23:30").AddMinutes(45)
	require.Error(t, err, "crossing midnight is not a valid slot")
}

func TestComparisons(t *testing.T) {
	require.True(t, TimeString("09:00").IsBefore("10:00"))
	require.False(t, TimeString("10:00").IsBefore("10:00"))
	require.True(t, TimeString("10:30").IsAfter("10:00"))
}
