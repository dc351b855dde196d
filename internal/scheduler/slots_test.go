package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSlotPicker(t *testing.T) {
	p, err := NewSlotPicker(StrategyRandom, 1)
	require.NoError(t, err)
	assert.IsType(t, &RandomPicker{}, p)

	p, err = NewSlotPicker("", 1)
	require.NoError(t, err)
	assert.IsType(t, &RandomPicker{}, p)

	p, err = NewSlotPicker("ROUND_ROBIN", 0)
	require.NoError(t, err)
	assert.IsType(t, &RoundRobinPicker{}, p)

	_, err = NewSlotPicker("earliest", 0)
	assert.ErrorContains(t, err, `unknown slot strategy "earliest"`)
}

func TestRandomPicker_SameSeedSameSequence(t *testing.T) {
	a, b := NewRandomPicker(42), NewRandomPicker(42)
	for i := 0; i < 20; i++ {
		got := a.Pick(StudySlots)
		assert.Equal(t, got, b.Pick(StudySlots))
		assert.Contains(t, StudySlots, got)
	}
}

func TestRoundRobinPicker_CyclesPerList(t *testing.T) {
	p := NewRoundRobinPicker()

	assert.Equal(t, "8:00 AM", p.Pick(StudySlots))
	assert.Equal(t, "6:00 AM", p.Pick(WorkoutSlots))
	assert.Equal(t, "2:00 PM", p.Pick(StudySlots))
	assert.Equal(t, "7:00 PM", p.Pick(StudySlots))
	assert.Equal(t, "9:00 PM", p.Pick(StudySlots))
	assert.Equal(t, "8:00 AM", p.Pick(StudySlots), "wraps around")
	assert.Equal(t, "5:00 PM", p.Pick(WorkoutSlots))
}
