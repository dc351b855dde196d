package domain

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWeeklySchedule_HasSevenEmptyDays(t *testing.T) {
	s := NewWeeklySchedule()
	require.Len(t, s, 7)
	for _, d := range Days {
		assert.NotNil(t, s[d], d)
		assert.Empty(t, s[d], d)
	}
}

func TestWeeklySchedule_AddRejectsUnknownDay(t *testing.T) {
	s := NewWeeklySchedule()
	assert.False(t, s.Add(Day("Funday"), ScheduleItem{Time: "9:00 AM"}))
	assert.Len(t, s, 7)
}

func TestWeeklySchedule_MarshalKeepsWeekOrder(t *testing.T) {
	s := NewWeeklySchedule()
	s.Add(Sunday, ScheduleItem{Time: "10:00 AM", Title: "Rest & Recovery", Type: ItemRest})

	data, err := marshalPlain(s)
	require.NoError(t, err)

	out := string(data)
	last := -1
	for _, d := range Days {
		idx := strings.Index(out, `"`+string(d)+`"`)
		require.GreaterOrEqual(t, idx, 0, d)
		assert.Greater(t, idx, last, "%s out of order", d)
		last = idx
	}
	assert.Contains(t, out, "Rest & Recovery", "ampersand should not be escaped")
}

func TestWeeklySchedule_RoundTrip(t *testing.T) {
	s := NewWeeklySchedule()
	s.Add(Wednesday, ScheduleItem{Time: "4:00 PM", Title: "Practice", Type: ItemPractice, Description: "team practice session"})

	data, err := json.Marshal(s)
	require.NoError(t, err)

	var got WeeklySchedule
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, s, got)
}

func TestWeeklySchedule_UnmarshalFillsMissingAndRejectsUnknown(t *testing.T) {
	var s WeeklySchedule
	require.NoError(t, json.Unmarshal([]byte(`{"Monday":[]}`), &s))
	assert.Len(t, s, 7)

	err := json.Unmarshal([]byte(`{"Lundi":[]}`), &s)
	assert.Error(t, err)
}

func TestSections_RoundTripKeepsOrder(t *testing.T) {
	in := Sections{
		{Name: "Zeta", Items: []string{"z"}},
		{Name: "Alpha", Items: []string{"a", "b"}},
		{Name: "Empty", Items: []string{}},
	}
	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.Equal(t, `{"Zeta":["z"],"Alpha":["a","b"],"Empty":[]}`, string(data))

	var out Sections
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
	assert.Equal(t, []string{"Zeta", "Alpha", "Empty"}, out.Names())
}

func TestSections_UnmarshalRejectsArray(t *testing.T) {
	var out Sections
	assert.Error(t, json.Unmarshal([]byte(`["x"]`), &out))
}
