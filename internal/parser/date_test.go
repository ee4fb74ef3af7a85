package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nippou/internal/errors"
	"nippou/internal/timeutil"
)

func TestParseDateCanonical(t *testing.T) {
	date, err := ParseDate("2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01", date)
}

func TestParseDateToday(t *testing.T) {
	for _, input := range []string{"", "today", "Today"} {
		date, err := ParseDate(input)
		require.NoError(t, err)
		assert.Equal(t, timeutil.CurrentDate(), date)
	}
}

func TestParseDateNaturalLanguage(t *testing.T) {
	date, err := ParseDate("yesterday")
	require.NoError(t, err)
	assert.Equal(t, time.Now().AddDate(0, 0, -1).Format(timeutil.DateLayout), date)
}

func TestParseDateInvalid(t *testing.T) {
	_, err := ParseDate("not a date at all @@")
	assert.ErrorIs(t, err, errors.ErrInvalidDate)
}

func TestParseMonthCanonical(t *testing.T) {
	month, err := ParseMonth("2024-06")
	require.NoError(t, err)
	assert.Equal(t, "2024-06", month)
}

func TestParseMonthKeywords(t *testing.T) {
	month, err := ParseMonth("")
	require.NoError(t, err)
	assert.Equal(t, timeutil.PreviousMonth(), month, "empty defaults to previous month")

	month, err = ParseMonth("last month")
	require.NoError(t, err)
	assert.Equal(t, timeutil.PreviousMonth(), month)

	month, err = ParseMonth("this month")
	require.NoError(t, err)
	assert.Equal(t, timeutil.CurrentMonth(), month)
}

func TestParseMonthInvalid(t *testing.T) {
	_, err := ParseMonth("@@ nonsense @@")
	assert.ErrorIs(t, err, errors.ErrInvalidMonth)
}

func TestParseTime(t *testing.T) {
	got, err := ParseTime(" 09:30 ")
	require.NoError(t, err)
	assert.Equal(t, "09:30", got)

	_, err = ParseTime("9:30")
	assert.ErrorIs(t, err, errors.ErrInvalidTime)
	_, err = ParseTime("25:00")
	assert.ErrorIs(t, err, errors.ErrInvalidTime)
}
