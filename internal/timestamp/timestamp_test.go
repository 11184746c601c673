package timestamp

import (
	"testing"
	"time"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestGetTimestamp(t *testing.T) {
	now := time.Date(2018, 11, 1, 19, 35, 0, 0, time.UTC)

	tests := []struct {
		input       string
		expected    string
		expectedErr bool
	}{
		// RFC 3339, with and without nanoseconds.
		{input: "2018-11-01T19:35:00Z", expected: "1541100900.000000000"},
		{input: "2018-11-01T19:35:00.999999999Z", expected: "1541100900.999999999"},
		{input: "2018-11-01T19:35:00+00:00", expected: "1541100900.000000000"},
		{input: "2018-11-01T19:35:00-01:00", expected: "1541104500.000000000"},

		// Partial timestamps parse in the reference's zone (UTC here).
		{input: "2018-11-01T19:35", expected: "1541100900.000000000"},
		{input: "2018-11-01T19", expected: "1541098800.000000000"},
		{input: "2018-11-01", expected: "1541030400.000000000"},
		{input: "2018-11-01Z", expected: "1541030400.000000000"},

		// Durations are relative to the reference time.
		{input: "10m", expected: "1541100300"},
		{input: "1h30m", expected: "1541095500"},

		// Unix timestamps pass through unchanged.
		{input: "1541100900", expected: "1541100900"},
		{input: "1541100900.000000001", expected: "1541100900.000000001"},

		{input: "invalid value", expectedErr: true},
		{input: "2018-31-01T19:35:00Z", expectedErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			ts, err := GetTimestamp(tc.input, now)
			if tc.expectedErr {
				assert.Check(t, err != nil)
				return
			}
			assert.NilError(t, err)
			assert.Check(t, is.Equal(ts, tc.expected))
		})
	}
}

func TestParseTimestamp(t *testing.T) {
	sec, nsec, err := parseTimestamp("1541100900.123")
	assert.NilError(t, err)
	assert.Check(t, is.Equal(sec, int64(1541100900)))
	assert.Check(t, is.Equal(nsec, int64(123000000)))

	sec, nsec, err = parseTimestamp("1541100900")
	assert.NilError(t, err)
	assert.Check(t, is.Equal(sec, int64(1541100900)))
	assert.Check(t, is.Equal(nsec, int64(0)))

	_, _, err = parseTimestamp("not-a-number")
	assert.Check(t, err != nil)
}
