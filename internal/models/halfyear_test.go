package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHalfYearCodeRoundTrip(t *testing.T) {
	original := HalfYear{Year: 2024, Half: 2}
	parsed, err := ParseHalfYear(original.Code())
	require.NoError(t, err)
	assert.Equal(t, original, parsed)
	assert.Equal(t, "2024H2", original.Code())
}

func TestParseHalfYearRejectsMalformedCodes(t *testing.T) {
	for _, code := range []string{"", "2024", "24H1", "2024H3", "2024H0", "2024Hx", "H1", "20245H1"} {
		_, err := ParseHalfYear(code)
		assert.Error(t, err, "code %q", code)
	}
}

func TestHalfYearForSemester(t *testing.T) {
	cases := []struct {
		semester int
		want     HalfYear
	}{
		{1, HalfYear{Year: 2021, Half: 2}},
		{2, HalfYear{Year: 2022, Half: 1}},
		{3, HalfYear{Year: 2022, Half: 2}},
		{4, HalfYear{Year: 2023, Half: 1}},
		{7, HalfYear{Year: 2024, Half: 2}},
		{8, HalfYear{Year: 2025, Half: 1}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, HalfYearForSemester(2021, tc.semester), "semester %d", tc.semester)
	}
}

func TestHalfYearForDate(t *testing.T) {
	assert.Equal(t, HalfYear{Year: 2024, Half: 2}, HalfYearForDate(2024, 10))
	assert.Equal(t, HalfYear{Year: 2024, Half: 2}, HalfYearForDate(2024, 9))
	assert.Equal(t, HalfYear{Year: 2024, Half: 2}, HalfYearForDate(2025, 1))
	assert.Equal(t, HalfYear{Year: 2025, Half: 1}, HalfYearForDate(2025, 2))
	assert.Equal(t, HalfYear{Year: 2025, Half: 1}, HalfYearForDate(2025, 6))
}
