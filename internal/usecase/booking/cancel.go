package booking

import (
	"context"
	"time"

	"github.com/DigitalJustOne/beautymanager-sub000/internal/audit"
	"github.com/DigitalJustOne/beautymanager-sub000/internal/cache"
	domain "github.com/DigitalJustOne/beautymanager-sub000/internal/domain/scheduling"
	"github.com/DigitalJustOne/beautymanager-sub000/internal/httperr"
	"github.com/DigitalJustOne/beautymanager-sub000/internal/models"
)

type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.Availability
}

func NewCancelAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	c *cache.Availability,
) *CancelAppointment {
	return &CancelAppointment{repo: repo, audit: audit, cache: c}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	salonID uint,
	actorID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, salonID, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.CanCancel(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	now := time.Now()
	ap.Status = string(domain.StatusCancelled)
	ap.CancelledAt = &now

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, ap.ProfessionalID, ap.Date.Format("2006-01-02"))

	uc.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   &actorID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

// ExecuteByRef cancela pelo código público (auto-cancelamento do cliente,
// sem login). Mesmas regras de transição; o evento de auditoria sai sem
// usuário.
func (uc *CancelAppointment) ExecuteByRef(
	ctx context.Context,
	salonID uint,
	ref string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByRef(ctx, salonID, ref)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.CanCancel(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	now := time.Now()
	ap.Status = string(domain.StatusCancelled)
	ap.CancelledAt = &now

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, ap.ProfessionalID, ap.Date.Format("2006-01-02"))

	uc.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"via": "public_ref"},
	})

	return ap, nil
}

// ======================================================
// APAGAR (destrutivo, distinto de cancelar)
// ======================================================

type EraseAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.Availability
}

func NewEraseAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	c *cache.Availability,
) *EraseAppointment {
	return &EraseAppointment{repo: repo, audit: audit, cache: c}
}

// Execute remove fisicamente um agendamento. Sem force, só agendamentos já
// cancelados podem ser apagados; force é a ação destrutiva explícita de admin.
func (uc *EraseAppointment) Execute(
	ctx context.Context,
	salonID uint,
	actorID uint,
	appointmentID uint,
	force bool,
) error {

	ap, err := uc.repo.GetAppointment(ctx, salonID, appointmentID)
	if err != nil {
		return httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.CanErase(domain.Status(ap.Status), force); err != nil {
		return err
	}

	if err := uc.repo.DeleteAppointment(ctx, ap.ID); err != nil {
		return err
	}

	uc.cache.Invalidate(ctx, ap.ProfessionalID, ap.Date.Format("2006-01-02"))

	uc.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   &actorID,
		Action:   "appointment_erased",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"force": force},
	})

	return nil
}
