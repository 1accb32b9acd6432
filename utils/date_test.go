package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsValidDate(t *testing.T) {
	valid := []string{
		"2019-01-01",
		"2020-02-29", // leap day
		"1999-12-31",
		"2019-06-10",
	}
	for _, s := range valid {
		assert.True(t, IsValidDate(s), "expected %q to be valid", s)
	}

	invalid := []string{
		"",
		"2019-13-01", // month overflow
		"2019-02-30", // day overflow
		"2019-02-29", // not a leap year
		"19-1-1",     // unpadded
		"2019-1-01",
		"2019/01/01",
		"01-01-2019", // reordered
		"2019-01-01x",
	}
	for _, s := range invalid {
		assert.False(t, IsValidDate(s), "expected %q to be invalid", s)
	}
}

func TestParseDate(t *testing.T) {
	d := ParseDate("2019-06-10")
	assert.Equal(t, time.Date(2019, time.June, 10, 0, 0, 0, 0, time.UTC), d)
}

func TestParseLenientDate(t *testing.T) {
	t.Run("Unpadded", func(t *testing.T) {
		d, ok := ParseLenientDate("2019-1-1")
		assert.True(t, ok)
		assert.Equal(t, time.Date(2019, time.January, 1, 0, 0, 0, 0, time.UTC), d)
	})

	t.Run("OverflowNormalizes", func(t *testing.T) {
		d, ok := ParseLenientDate("2019-13-01")
		assert.True(t, ok)
		assert.Equal(t, time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC), d)
	})

	t.Run("Malformed", func(t *testing.T) {
		for _, s := range []string{"", "abc", "2019-01", "2019-xx-01"} {
			_, ok := ParseLenientDate(s)
			assert.False(t, ok, "expected %q to be rejected", s)
		}
	})
}

func TestFormats(t *testing.T) {
	d := time.Date(2020, time.February, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2020-02-05", FormatDate(d))
	assert.Equal(t, "Wed Feb 05 2020", FormatHumanDate(d))
}
