package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DigitalJustOne/beautymanager-sub000/internal/httperr"
	"github.com/DigitalJustOne/beautymanager-sub000/internal/models"
)

func TestGetAvailableDays(t *testing.T) {
	repo := newFakeRepo()
	prof := repo.addProfessional("Valentina")
	repo.fullWeek(prof.ID, "09:00", "19:00")

	uc := NewGetAvailableDays(repo)

	days, err := uc.Execute(context.Background(), 1, prof.ID)
	require.NoError(t, err)

	// Semana cheia: os 14 dias do horizonte, começando hoje.
	require.Len(t, days, 14)
	assert.Equal(t, time.Now().Format("2006-01-02"), days[0])
}

func TestGetAvailableDays_FallsBackToSalonDefault(t *testing.T) {
	repo := newFakeRepo()
	prof := repo.addProfessional("Valentina")

	// Sem agenda própria; só o padrão do salão (professionalID = 0).
	repo.fullWeek(0, "09:00", "18:00")

	uc := NewGetAvailableDays(repo)

	days, err := uc.Execute(context.Background(), 1, prof.ID)
	require.NoError(t, err)
	assert.Len(t, days, 14)
}

func TestGetAvailableSlots(t *testing.T) {
	repo := newFakeRepo()
	repo.addService("Manicure Semi", 25000, 60, true)
	prof := repo.addProfessional("Valentina")
	repo.fullWeek(prof.ID, "09:00", "12:00")

	uc := NewGetAvailableSlots(repo, nil)

	date := time.Now().AddDate(0, 0, 2)
	in := AvailabilityInput{
		SalonID:        1,
		ProfessionalID: prof.ID,
		ServiceName:    "Manicure Semi",
		Date:           date.Format("2006-01-02"),
		ActorRole:      models.RoleAdmin,
	}

	t.Run("open day", func(t *testing.T) {
		slots, err := uc.Execute(context.Background(), in)
		require.NoError(t, err)
		// 60min em 09:00-12:00: último início 11:00.
		assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30", "11:00"}, slots)
	})

	t.Run("addon stretches duration", func(t *testing.T) {
		longer := in
		longer.AddOn = "semi"

		slots, err := uc.Execute(context.Background(), longer)
		require.NoError(t, err)
		// 90min: último início que cabe é 10:30.
		assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30"}, slots)
	})

	t.Run("booked interval is removed", func(t *testing.T) {
		repo.addAppointment(prof.ID, date, "10:00", 60, "confirmed")

		slots, err := uc.Execute(context.Background(), in)
		require.NoError(t, err)
		// 09:30 e 10:30 colidem com 10:00-11:00; 09:00 e 11:00 só encostam.
		assert.Equal(t, []string{"09:00", "11:00"}, slots)
	})

	t.Run("invalid date", func(t *testing.T) {
		bad := in
		bad.Date = "02-03-2026"
		_, err := uc.Execute(context.Background(), bad)
		assert.True(t, httperr.IsBusiness(err, "invalid_date"))
	})

	t.Run("invalid addon", func(t *testing.T) {
		bad := in
		bad.AddOn = "gel"
		_, err := uc.Execute(context.Background(), bad)
		assert.True(t, httperr.IsBusiness(err, "invalid_addon"))
	})

	t.Run("closed day yields empty list", func(t *testing.T) {
		other := repo.addProfessional("Camila")
		repo.schedule[other.ID] = []models.ScheduleDay{
			{Day: "monday", Enabled: false, StartTime: "09:00", EndTime: "12:00"},
		}

		closed := in
		closed.ProfessionalID = other.ID
		slots, err := uc.Execute(context.Background(), closed)
		require.NoError(t, err)
		assert.Empty(t, slots)
	})
}

func TestGetAvailableSlots_TodayCutoffByRole(t *testing.T) {
	repo := newFakeRepo()
	repo.addService("Manicure Semi", 25000, 30, true)
	prof := repo.addProfessional("Valentina")
	repo.fullWeek(prof.ID, "00:00", "23:59")

	uc := NewGetAvailableSlots(repo, nil)

	in := AvailabilityInput{
		SalonID:        1,
		ProfessionalID: prof.ID,
		ServiceName:    "Manicure Semi",
		Date:           time.Now().Format("2006-01-02"),
	}

	now := time.Now()
	nowMin := now.Hour()*60 + now.Minute()

	in.ActorRole = models.RoleAdmin
	staffSlots, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	in.ActorRole = models.RoleClient
	clientSlots, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	// Todo horário emitido começa estritamente depois do corte do papel.
	for _, hhmm := range staffSlots {
		min, perr := parseClockForTest(hhmm)
		require.NoError(t, perr)
		assert.Greater(t, min, nowMin)
	}
	for _, hhmm := range clientSlots {
		min, perr := parseClockForTest(hhmm)
		require.NoError(t, perr)
		assert.Greater(t, min, nowMin+30)
	}

	// O corte do cliente nunca libera mais horários que o do staff.
	assert.LessOrEqual(t, len(clientSlots), len(staffSlots))
}

func parseClockForTest(hhmm string) (int, error) {
	parsed, err := time.Parse("15:04", hhmm)
	if err != nil {
		return 0, err
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}
