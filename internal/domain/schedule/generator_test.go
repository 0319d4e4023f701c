package schedule

import (
	"testing"
	"time"

	"nutrition-booking/internal/domain"
	"nutrition-booking/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mondayTemplate() Template {
	monday := time.Date(2025, 8, 4, 0, 0, 0, 0, time.UTC)
	return Template{
		StartDate:              monday,
		EndDate:                monday,
		StartTime:              entity.NewClock(9, 0),
		EndTime:                entity.NewClock(12, 0),
		SlotDuration:           60,
		BreakDuration:          0,
		LunchStart:             entity.NewClock(12, 0),
		LunchDuration:          60,
		WorkingDays:            []time.Weekday{time.Monday},
		MaxAppointmentsPerSlot: 1,
	}
}

func starts(slots []entity.TimeSlot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.StartTime.String() + "-" + s.EndTime.String()
	}
	return out
}

func TestGenerate_MorningEndingAtLunch(t *testing.T) {
	slots, err := Generate(mondayTemplate())

	require.NoError(t, err)
	assert.Equal(t, []string{"09:00-10:00", "10:00-11:00", "11:00-12:00"}, starts(slots))
	for _, s := range slots {
		assert.Equal(t, 1, s.MaxAppointments)
		assert.True(t, s.IsAvailable)
		assert.Equal(t, time.Monday, s.SlotDate.Weekday())
	}
}

func TestGenerate_LunchCarveOut(t *testing.T) {
	tpl := mondayTemplate()
	tpl.EndTime = entity.NewClock(14, 0)

	slots, err := Generate(tpl)

	require.NoError(t, err)
	assert.Equal(t, []string{"09:00-10:00", "10:00-11:00", "11:00-12:00", "13:00-14:00"}, starts(slots))
}

func TestGenerate_CandidateCrossingIntoLunchIsSkipped(t *testing.T) {
	tpl := mondayTemplate()
	tpl.StartTime = entity.NewClock(9, 30)
	tpl.EndTime = entity.NewClock(15, 0)

	slots, err := Generate(tpl)

	require.NoError(t, err)
	// 11:30 would end at 12:30 inside lunch, so the cursor jumps to 13:00
	assert.Equal(t, []string{"09:30-10:30", "10:30-11:30", "13:00-14:00", "14:00-15:00"}, starts(slots))
}

func TestGenerate_BreakDuration(t *testing.T) {
	tpl := mondayTemplate()
	tpl.SlotDuration = 45
	tpl.BreakDuration = 15
	tpl.LunchDuration = 0

	slots, err := Generate(tpl)

	require.NoError(t, err)
	assert.Equal(t, []string{"09:00-09:45", "10:00-10:45", "11:00-11:45"}, starts(slots))
}

func TestGenerate_ZeroLunchDisablesCarveOut(t *testing.T) {
	tpl := mondayTemplate()
	tpl.EndTime = entity.NewClock(14, 0)
	tpl.LunchDuration = 0

	slots, err := Generate(tpl)

	require.NoError(t, err)
	assert.Len(t, slots, 5)
}

func TestGenerate_SkipsNonWorkingDays(t *testing.T) {
	tpl := mondayTemplate()
	tpl.EndDate = tpl.StartDate.AddDate(0, 0, 6) // Mon..Sun
	tpl.WorkingDays = []time.Weekday{time.Monday, time.Wednesday, time.Friday}

	slots, err := Generate(tpl)

	require.NoError(t, err)
	assert.Len(t, slots, 9)
	for _, s := range slots {
		assert.Contains(t, tpl.WorkingDays, s.SlotDate.Weekday())
	}
}

func TestGenerate_EmptyResults(t *testing.T) {
	t.Run("no working days", func(t *testing.T) {
		tpl := mondayTemplate()
		tpl.WorkingDays = nil

		slots, err := Generate(tpl)

		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("inverted date range", func(t *testing.T) {
		tpl := mondayTemplate()
		tpl.EndDate = tpl.StartDate.AddDate(0, 0, -1)

		slots, err := Generate(tpl)

		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("window shorter than a slot", func(t *testing.T) {
		tpl := mondayTemplate()
		tpl.EndTime = entity.NewClock(9, 30)

		slots, err := Generate(tpl)

		require.NoError(t, err)
		assert.Empty(t, slots)
	})
}

func TestGenerate_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Template)
		field  string
	}{
		{"end before start", func(t *Template) { t.EndTime = entity.NewClock(8, 0) }, "end_time"},
		{"zero slot duration", func(t *Template) { t.SlotDuration = 0 }, "slot_duration"},
		{"negative slot duration", func(t *Template) { t.SlotDuration = -30 }, "slot_duration"},
		{"negative break", func(t *Template) { t.BreakDuration = -5 }, "break_duration"},
		{"negative lunch", func(t *Template) { t.LunchDuration = -60 }, "lunch_duration"},
		{"zero capacity", func(t *Template) { t.MaxAppointmentsPerSlot = 0 }, "max_appointments_per_slot"},
		{"weekday out of range", func(t *Template) { t.WorkingDays = []time.Weekday{7} }, "working_days"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tpl := mondayTemplate()
			tt.mutate(&tpl)

			slots, err := Generate(tpl)

			require.Error(t, err)
			assert.Nil(t, slots)
			assert.ErrorIs(t, err, domain.ErrValidation)
			var vErr *domain.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)
		})
	}
}

func TestGenerate_NeverOverlaps(t *testing.T) {
	monday := time.Date(2025, 8, 4, 0, 0, 0, 0, time.UTC)
	durations := []int{15, 20, 30, 45, 50, 60, 90}
	breaks := []int{0, 5, 10, 15}
	lunchStarts := []entity.Clock{entity.NewClock(12, 0), entity.NewClock(12, 30), entity.NewClock(13, 15)}
	lunchDurations := []int{0, 30, 45, 60}

	for _, dur := range durations {
		for _, brk := range breaks {
			for _, ls := range lunchStarts {
				for _, ld := range lunchDurations {
					tpl := Template{
						StartDate:              monday,
						EndDate:                monday.AddDate(0, 0, 2),
						StartTime:              entity.NewClock(8, 10),
						EndTime:                entity.NewClock(18, 0),
						SlotDuration:           dur,
						BreakDuration:          brk,
						LunchStart:             ls,
						LunchDuration:          ld,
						WorkingDays:            []time.Weekday{time.Monday, time.Tuesday, time.Wednesday},
						MaxAppointmentsPerSlot: 2,
					}

					slots, err := Generate(tpl)
					require.NoError(t, err)
					require.NotEmpty(t, slots)

					byDate := map[time.Time][]entity.TimeSlot{}
					for _, s := range slots {
						assert.Less(t, s.StartTime, s.EndTime)
						assert.GreaterOrEqual(t, s.StartTime, tpl.StartTime)
						assert.LessOrEqual(t, s.EndTime, tpl.EndTime)
						if ld > 0 {
							lunchEnd := ls.Add(ld)
							overlaps := s.StartTime < lunchEnd && s.EndTime > ls
							assert.False(t, overlaps, "slot %s-%s overlaps lunch %s+%d", s.StartTime, s.EndTime, ls, ld)
						}
						byDate[s.SlotDate] = append(byDate[s.SlotDate], s)
					}

					for _, daySlots := range byDate {
						for i := 1; i < len(daySlots); i++ {
							assert.GreaterOrEqual(t, daySlots[i].StartTime, daySlots[i-1].EndTime)
						}
					}
				}
			}
		}
	}
}

func TestSlots_StopsWhenConsumerStops(t *testing.T) {
	tpl := mondayTemplate()
	tpl.EndTime = entity.NewClock(17, 0)

	var taken []entity.TimeSlot
	for s := range Slots(tpl) {
		taken = append(taken, s)
		if len(taken) == 2 {
			break
		}
	}

	assert.Len(t, taken, 2)
}
