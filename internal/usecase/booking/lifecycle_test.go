package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DigitalJustOne/beautymanager-sub000/internal/httperr"
)

func TestConfirmAppointment(t *testing.T) {
	repo := newFakeRepo()
	prof := repo.addProfessional("Valentina")
	ap := repo.addAppointment(prof.ID, time.Now().AddDate(0, 0, 1), "10:00", 60, "pending")

	uc := NewConfirmAppointment(repo, nil, nil)

	got, err := uc.Execute(context.Background(), 1, 7, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, "confirmed", got.Status)
	assert.Equal(t, "confirmed", repo.appointments[0].Status)

	// Confirmar de novo é transição inválida.
	_, err = uc.Execute(context.Background(), 1, 7, ap.ID)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestUnconfirmAppointment(t *testing.T) {
	repo := newFakeRepo()
	prof := repo.addProfessional("Valentina")
	ap := repo.addAppointment(prof.ID, time.Now().AddDate(0, 0, 1), "10:00", 60, "confirmed")

	uc := NewUnconfirmAppointment(repo, nil, nil)

	got, err := uc.Execute(context.Background(), 1, 7, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, "pending", got.Status)

	_, err = uc.Execute(context.Background(), 1, 7, ap.ID)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestCancelAppointment(t *testing.T) {
	repo := newFakeRepo()
	prof := repo.addProfessional("Valentina")

	uc := NewCancelAppointment(repo, nil, nil)

	t.Run("cancels pending and stamps time", func(t *testing.T) {
		ap := repo.addAppointment(prof.ID, time.Now().AddDate(0, 0, 1), "10:00", 60, "pending")

		got, err := uc.Execute(context.Background(), 1, 7, ap.ID)
		require.NoError(t, err)
		assert.Equal(t, "cancelled", got.Status)
		require.NotNil(t, got.CancelledAt)
	})

	t.Run("cancelled is terminal", func(t *testing.T) {
		ap := repo.addAppointment(prof.ID, time.Now().AddDate(0, 0, 1), "11:00", 60, "cancelled")

		_, err := uc.Execute(context.Background(), 1, 7, ap.ID)
		assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	})

	t.Run("not found", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), 1, 7, 999)
		assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
	})
}

func TestCancelAppointmentByRef(t *testing.T) {
	repo := newFakeRepo()
	prof := repo.addProfessional("Valentina")
	ap := repo.addAppointment(prof.ID, time.Now().AddDate(0, 0, 1), "10:00", 60, "pending")

	uc := NewCancelAppointment(repo, nil, nil)

	got, err := uc.ExecuteByRef(context.Background(), 1, ap.Ref)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", got.Status)

	_, err = uc.ExecuteByRef(context.Background(), 1, "ref-desconhecido")
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

func TestEraseAppointment(t *testing.T) {
	repo := newFakeRepo()
	prof := repo.addProfessional("Valentina")

	uc := NewEraseAppointment(repo, nil, nil)

	t.Run("requires cancelled without force", func(t *testing.T) {
		ap := repo.addAppointment(prof.ID, time.Now().AddDate(0, 0, 1), "10:00", 60, "confirmed")

		err := uc.Execute(context.Background(), 1, 7, ap.ID, false)
		assert.True(t, httperr.IsBusiness(err, "invalid_state"))
		assert.Len(t, repo.appointments, 1)

		err = uc.Execute(context.Background(), 1, 7, ap.ID, true)
		require.NoError(t, err)
		assert.Empty(t, repo.appointments)
	})

	t.Run("erases cancelled without force", func(t *testing.T) {
		ap := repo.addAppointment(prof.ID, time.Now().AddDate(0, 0, 1), "11:00", 60, "cancelled")

		err := uc.Execute(context.Background(), 1, 7, ap.ID, false)
		require.NoError(t, err)
		assert.Empty(t, repo.appointments)
	})
}

func TestListAgendaByDate(t *testing.T) {
	repo := newFakeRepo()
	prof := repo.addProfessional("Valentina")

	day := time.Now().AddDate(0, 0, 1)
	repo.addAppointment(prof.ID, day, "10:00", 60, "confirmed")
	repo.addAppointment(prof.ID, day, "14:00", 60, "pending")
	repo.addAppointment(prof.ID, day.AddDate(0, 0, 1), "10:00", 60, "confirmed")

	uc := NewListAgendaByDate(repo)

	items, err := uc.Execute(context.Background(), 1, day)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "10:00", items[0].Time)
	assert.Equal(t, "11:00", items[0].EndTime)
	assert.Equal(t, "confirmed", items[0].Status)
	assert.Equal(t, "Confirmado", items[0].StatusLabel)
	assert.Equal(t, "pending", items[1].Status)
	assert.Equal(t, "Pendiente", items[1].StatusLabel)
}

func TestListAgendaByMonth(t *testing.T) {
	repo := newFakeRepo()
	prof := repo.addProfessional("Valentina")

	repo.addAppointment(prof.ID, time.Date(2026, 4, 10, 0, 0, 0, 0, time.Local), "10:00", 60, "confirmed")
	repo.addAppointment(prof.ID, time.Date(2026, 4, 28, 0, 0, 0, 0, time.Local), "10:00", 60, "confirmed")
	repo.addAppointment(prof.ID, time.Date(2026, 5, 1, 0, 0, 0, 0, time.Local), "10:00", 60, "confirmed")

	uc := NewListAgendaByMonth(repo)

	items, err := uc.Execute(context.Background(), 1, 2026, time.April)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}
