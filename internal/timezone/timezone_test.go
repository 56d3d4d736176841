package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocation_FallsBackToDefault(t *testing.T) {
	assert.Equal(t, "UTC", Location("Not/AZone").String())
	assert.Equal(t, "UTC", Location("").String())
	assert.False(t, IsValid("Not/AZone"))
}

func TestDayRange(t *testing.T) {
	from, to, err := DayRange("UTC", "2024-03-01", "2024-03-02")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *from)
	assert.Equal(t, time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC), *to)

	from, to, err = DayRange("UTC", "", "")
	require.NoError(t, err)
	assert.Nil(t, from)
	assert.Nil(t, to)

	_, _, err = DayRange("UTC", "03/01/2024", "")
	assert.Error(t, err)
}
