package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tod, err := ParseTimeOfDay("09:30")
	require.NoError(t, err)
	assert.Equal(t, 9, tod.Hour())
	assert.Equal(t, 30, tod.Minute())

	_, err = ParseTimeOfDay("24:00")
	assert.Error(t, err)
	_, err = ParseTimeOfDay("12:60")
	assert.Error(t, err)
	_, err = ParseTimeOfDay("half past nine")
	assert.Error(t, err)
}

func TestTimeOfDayString(t *testing.T) {
	tod, err := ParseTimeOfDay("07:05")
	require.NoError(t, err)
	assert.Equal(t, "07:05", tod.String())

	assert.Equal(t, "00:00", TimeOfDay(0).String())
	assert.Equal(t, "23:59", TimeOfDay(MinutesPerDay-1).String())
}

func TestTimeOfDayJSONRoundTrip(t *testing.T) {
	tod, err := ParseTimeOfDay("22:15")
	require.NoError(t, err)

	raw, err := json.Marshal(tod)
	require.NoError(t, err)
	assert.Equal(t, `"22:15"`, string(raw))

	var decoded TimeOfDay
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, tod, decoded)
}

func TestClockOf(t *testing.T) {
	at := time.Date(2025, 6, 1, 14, 45, 59, 0, time.UTC)
	assert.Equal(t, "14:45", ClockOf(at).String())
}

func TestTimeOfDayOn(t *testing.T) {
	tod, err := ParseTimeOfDay("06:30")
	require.NoError(t, err)

	date := time.Date(2025, 3, 10, 23, 59, 0, 0, time.UTC)
	at := tod.On(date)
	assert.Equal(t, time.Date(2025, 3, 10, 6, 30, 0, 0, time.UTC), at)
}

func TestTimeOfDayScan(t *testing.T) {
	var tod TimeOfDay
	require.NoError(t, tod.Scan(int64(125)))
	assert.Equal(t, "02:05", tod.String())

	require.NoError(t, tod.Scan([]byte("18:00")))
	assert.Equal(t, "18:00", tod.String())
}
