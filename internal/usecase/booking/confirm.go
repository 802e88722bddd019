package booking

import (
	"context"

	"github.com/DigitalJustOne/beautymanager-sub000/internal/audit"
	"github.com/DigitalJustOne/beautymanager-sub000/internal/cache"
	domain "github.com/DigitalJustOne/beautymanager-sub000/internal/domain/scheduling"
	"github.com/DigitalJustOne/beautymanager-sub000/internal/httperr"
	"github.com/DigitalJustOne/beautymanager-sub000/internal/models"
)

// ======================================================
// CONFIRMAR / DESFAZER CONFIRMAÇÃO (ação de staff)
// ======================================================

type ConfirmAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.Availability
}

func NewConfirmAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	c *cache.Availability,
) *ConfirmAppointment {
	return &ConfirmAppointment{repo: repo, audit: audit, cache: c}
}

func (uc *ConfirmAppointment) Execute(
	ctx context.Context,
	salonID uint,
	actorID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, salonID, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.CanConfirm(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	ap.Status = string(domain.StatusConfirmed)
	if err := uc.repo.UpdateAppointmentStatus(ctx, ap.ID, domain.StatusConfirmed); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, ap.ProfessionalID, ap.Date.Format("2006-01-02"))

	uc.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   &actorID,
		Action:   "appointment_confirmed",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

type UnconfirmAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.Availability
}

func NewUnconfirmAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	c *cache.Availability,
) *UnconfirmAppointment {
	return &UnconfirmAppointment{repo: repo, audit: audit, cache: c}
}

// Execute volta um agendamento confirmado para pendente (desfazer).
func (uc *UnconfirmAppointment) Execute(
	ctx context.Context,
	salonID uint,
	actorID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, salonID, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.CanUnconfirm(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	ap.Status = string(domain.StatusPending)
	if err := uc.repo.UpdateAppointmentStatus(ctx, ap.ID, domain.StatusPending); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, ap.ProfessionalID, ap.Date.Format("2006-01-02"))

	uc.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   &actorID,
		Action:   "appointment_unconfirmed",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
