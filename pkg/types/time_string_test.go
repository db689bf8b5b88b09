package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("14:30")
	require.NoError(t, err)
	assert.Equal(t, "14:30", ts.String())

	_, err = NewTimeStringFromString("25:00")
	assert.Error(t, err)

	_, err = NewTimeStringFromString("14:30:00")
	assert.Error(t, err)
}

func TestNewTimeStringFromMinutes(t *testing.T) {
	ts, err := NewTimeStringFromMinutes(19*60 + 30)
	require.NoError(t, err)
	assert.Equal(t, "19:30", ts.String())

	ts, err = NewTimeStringFromMinutes(0)
	require.NoError(t, err)
	assert.Equal(t, "00:00", ts.String())

	_, err = NewTimeStringFromMinutes(24 * 60)
	assert.Error(t, err)

	_, err = NewTimeStringFromMinutes(-1)
	assert.Error(t, err)
}

func TestTotalMinutes(t *testing.T) {
	ts := TimeString("12:45")
	total, err := ts.TotalMinutes()
	require.NoError(t, err)
	assert.Equal(t, 12*60+45, total)

	_, err = TimeString("garbage").TotalMinutes()
	assert.Error(t, err)
}

func TestAddMinutes(t *testing.T) {
	ts := TimeString("18:30")

	shifted, err := ts.AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, "19:30", shifted.String())

	// Выход за полночь - ошибка, окна доставки не пересекают сутки
	_, err = ts.AddMinutes(6 * 60)
	assert.Error(t, err)
}

func TestComparisons(t *testing.T) {
	a := TimeString("11:59")
	b := TimeString("12:00")

	assert.True(t, a.IsBefore(b))
	assert.False(t, b.IsBefore(a))
	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsAfter(a))
	assert.False(t, a.IsBefore(a))
}

func TestScan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("09:15"))
	assert.Equal(t, "09:15", ts.String())

	require.NoError(t, ts.Scan([]byte("10:20")))
	assert.Equal(t, "10:20", ts.String())

	require.NoError(t, ts.Scan(time.Date(2025, 6, 10, 19, 30, 0, 0, time.UTC)))
	assert.Equal(t, "19:30", ts.String())

	assert.Error(t, ts.Scan(42))
}

func TestValue(t *testing.T) {
	v, err := TimeString("13:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "13:00", v)
}
