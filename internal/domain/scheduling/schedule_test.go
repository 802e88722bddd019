package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DigitalJustOne/beautymanager-sub000/internal/models"
)

func weekSchedule(days ...models.ScheduleDay) []models.ScheduleDay {
	return days
}

func enabledDay(name, start, end string) models.ScheduleDay {
	return models.ScheduleDay{Day: name, Enabled: true, StartTime: start, EndTime: end}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		wantMin int
		wantErr bool
	}{
		{"09:00", 540, false},
		{"9:00", 540, false},
		{"00:00", 0, false},
		{"23:59", 1439, false},
		{"18:30", 1110, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseClock(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantMin, got)
		})
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "09:00", FormatClock(540))
	assert.Equal(t, "00:05", FormatClock(5))
	assert.Equal(t, "18:30", FormatClock(1110))
}

func TestAvailableDays_HorizonAndEnabledFilter(t *testing.T) {
	sched := weekSchedule(
		enabledDay("monday", "09:00", "19:00"),
		enabledDay("wednesday", "09:00", "19:00"),
		models.ScheduleDay{Day: "friday", Enabled: false, StartTime: "09:00", EndTime: "19:00"},
	)

	// Segunda-feira, 2 de março de 2026.
	today := time.Date(2026, 3, 2, 15, 30, 0, 0, time.Local)

	days := AvailableDays(sched, today)

	// 14 dias corridos cobrem 2 segundas e 2 quartas; sexta está desabilitada.
	require.Len(t, days, 4)
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local), days[0])
	assert.Equal(t, time.Date(2026, 3, 4, 0, 0, 0, 0, time.Local), days[1])
	assert.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, time.Local), days[2])
	assert.Equal(t, time.Date(2026, 3, 11, 0, 0, 0, 0, time.Local), days[3])

	// Hoje entra mesmo com o expediente já em andamento.
	assert.True(t, SameDay(days[0], today))
}

func TestAvailableDays_EmptySchedule(t *testing.T) {
	assert.Empty(t, AvailableDays(nil, time.Now()))
}

func TestWindowFor(t *testing.T) {
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local)

	t.Run("enabled day", func(t *testing.T) {
		w, ok := WindowFor(weekSchedule(enabledDay("monday", "09:00", "19:00")), monday)
		require.True(t, ok)
		assert.Equal(t, DayWindow{StartMin: 540, EndMin: 1140}, w)
	})

	t.Run("disabled day", func(t *testing.T) {
		sched := weekSchedule(models.ScheduleDay{Day: "monday", Enabled: false, StartTime: "09:00", EndTime: "19:00"})
		_, ok := WindowFor(sched, monday)
		assert.False(t, ok)
	})

	t.Run("missing day", func(t *testing.T) {
		_, ok := WindowFor(weekSchedule(enabledDay("tuesday", "09:00", "19:00")), monday)
		assert.False(t, ok)
	})

	t.Run("case insensitive day name", func(t *testing.T) {
		_, ok := WindowFor(weekSchedule(enabledDay("Monday", "09:00", "19:00")), monday)
		assert.True(t, ok)
	})

	t.Run("inverted window", func(t *testing.T) {
		_, ok := WindowFor(weekSchedule(enabledDay("monday", "19:00", "09:00")), monday)
		assert.False(t, ok)
	})

	t.Run("malformed times", func(t *testing.T) {
		_, ok := WindowFor(weekSchedule(enabledDay("monday", "late", "19:00")), monday)
		assert.False(t, ok)
	})
}

func TestSlotsForDay_FullDay(t *testing.T) {
	window := DayWindow{StartMin: 540, EndMin: 1140} // 09:00-19:00

	slots := SlotsForDay(window, 60, -1)

	// Último início que ainda cabe: 18:00 (termina exatamente às 19:00).
	require.Len(t, slots, 19)
	assert.Equal(t, "09:00", slots[0])
	assert.Equal(t, "09:30", slots[1])
	assert.Equal(t, "18:00", slots[18])
}

func TestSlotsForDay_LongDurationShrinksTail(t *testing.T) {
	window := DayWindow{StartMin: 540, EndMin: 1140}

	slots := SlotsForDay(window, 90, -1)

	// 90min: último início possível é 17:30.
	assert.Equal(t, "17:30", slots[len(slots)-1])
	assert.NotContains(t, slots, "18:00")
}

func TestSlotsForDay_Cutoff(t *testing.T) {
	window := DayWindow{StartMin: 540, EndMin: 720} // 09:00-12:00

	// Corte às 10:00: só depois, estritamente.
	slots := SlotsForDay(window, 30, 600)
	assert.Equal(t, []string{"10:30", "11:00", "11:30"}, slots)

	// Corte no meio de um passo arredonda para o próximo candidato.
	slots = SlotsForDay(window, 30, 595)
	assert.Equal(t, []string{"10:00", "10:30", "11:00", "11:30"}, slots)
}

func TestSlotsForDay_DurationDoesNotFit(t *testing.T) {
	window := DayWindow{StartMin: 540, EndMin: 600}
	assert.Empty(t, SlotsForDay(window, 90, -1))
}

func TestCutoffFor(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 15, 0, 0, time.Local)

	t.Run("future date has no cutoff", func(t *testing.T) {
		tomorrow := now.AddDate(0, 0, 1)
		assert.Equal(t, -1, CutoffFor(models.RoleClient, now, tomorrow))
		assert.Equal(t, -1, CutoffFor(models.RoleAdmin, now, tomorrow))
	})

	t.Run("client gets lead time today", func(t *testing.T) {
		assert.Equal(t, 645, CutoffFor(models.RoleClient, now, now)) // 10:45
	})

	t.Run("staff cuts at now", func(t *testing.T) {
		assert.Equal(t, 615, CutoffFor(models.RoleAdmin, now, now)) // 10:15
		assert.Equal(t, 615, CutoffFor(models.RoleProfessional, now, now))
	})
}

func TestMidnightAndSameDay(t *testing.T) {
	at := time.Date(2026, 3, 2, 17, 45, 12, 99, time.Local)

	mid := Midnight(at)
	assert.Equal(t, 0, mid.Hour())
	assert.Equal(t, 0, mid.Minute())
	assert.True(t, SameDay(at, mid))
	assert.False(t, SameDay(at, at.AddDate(0, 0, 1)))
}
