package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("16:30")
	require.NoError(t, err)
	assert.Equal(t, "16:30", ts.String())

	for _, bad := range []string{"", "25:00", "10:60", "4 PM", "10:00:00"} {
		_, err := NewTimeStringFromString(bad)
		assert.ErrorIs(t, err, ErrInvalidTimeString, "input %q", bad)
	}
}

func TestMinutes(t *testing.T) {
	m, err := MustTimeString("10:30").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 630, m)

	m, err = MustTimeString("00:00").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 0, m)
}

func TestAddMinutes(t *testing.T) {
	got, err := MustTimeString("10:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, MustTimeString("11:30"), got)

	got, err = MustTimeString("18:30").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, MustTimeString("19:00"), got)

	_, err = MustTimeString("23:30").AddMinutes(60)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestFormat12Hour(t *testing.T) {
	cases := map[string]string{
		"00:30": "12:30 AM",
		"10:00": "10:00 AM",
		"12:00": "12:00 PM",
		"16:30": "4:30 PM",
		"19:00": "7:00 PM",
	}
	for in, want := range cases {
		assert.Equal(t, want, MustTimeString(in).Format12Hour())
	}
}

func TestIsBeforeIsAfter(t *testing.T) {
	assert.True(t, MustTimeString("10:00").IsBefore(MustTimeString("12:30")))
	assert.False(t, MustTimeString("12:30").IsBefore(MustTimeString("10:00")))
	assert.True(t, MustTimeString("12:30").IsAfter(MustTimeString("10:00")))
	assert.False(t, MustTimeString("10:00").IsBefore(MustTimeString("10:00")))
}

func TestScan(t *testing.T) {
	var ts TimeString
	require.NoError(t, ts.Scan("10:00:00"))
	assert.Equal(t, MustTimeString("10:00"), ts)

	require.NoError(t, ts.Scan([]byte("16:30")))
	assert.Equal(t, MustTimeString("16:30"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, time.January, 3, 9, 15, 0, 0, time.UTC)))
	assert.Equal(t, MustTimeString("09:15"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestValue(t *testing.T) {
	v, err := MustTimeString("10:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:00", v)

	_, err = TimeString("bogus").Value()
	assert.Error(t, err)
}
