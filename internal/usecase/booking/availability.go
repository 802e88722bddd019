package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/DigitalJustOne/beautymanager-sub000/internal/cache"
	domain "github.com/DigitalJustOne/beautymanager-sub000/internal/domain/scheduling"
	"github.com/DigitalJustOne/beautymanager-sub000/internal/httperr"
	"github.com/DigitalJustOne/beautymanager-sub000/internal/models"
)

// ======================================================
// DISPONIBILIDADE — dias e horários
// ======================================================

type AvailabilityInput struct {
	SalonID        uint
	ProfessionalID uint
	ServiceName    string
	AddOn          string
	Date           string // YYYY-MM-DD
	ActorRole      string
}

// scheduleFor carrega a agenda semanal do profissional, caindo no horário
// padrão do salão (professionalID = 0) quando ele não tem agenda própria.
func scheduleFor(
	ctx context.Context,
	repo domain.Repository,
	salonID uint,
	professionalID uint,
) ([]models.ScheduleDay, error) {

	days, err := repo.GetScheduleDays(ctx, salonID, professionalID)
	if err != nil {
		return nil, err
	}
	if len(days) == 0 {
		return repo.GetScheduleDays(ctx, salonID, 0)
	}
	return days, nil
}

// ------------------------------------------------------
// Dias disponíveis no horizonte de 14 dias
// ------------------------------------------------------

type GetAvailableDays struct {
	repo domain.Repository
}

func NewGetAvailableDays(repo domain.Repository) *GetAvailableDays {
	return &GetAvailableDays{repo: repo}
}

func (uc *GetAvailableDays) Execute(
	ctx context.Context,
	salonID uint,
	professionalID uint,
) ([]string, error) {

	days, err := scheduleFor(ctx, uc.repo, salonID, professionalID)
	if err != nil {
		return nil, err
	}

	dates := domain.AvailableDays(days, time.Now())

	out := make([]string, 0, len(dates))
	for _, d := range dates {
		out = append(out, d.Format("2006-01-02"))
	}
	return out, nil
}

// ------------------------------------------------------
// Horários disponíveis de um dia
// ------------------------------------------------------

type GetAvailableSlots struct {
	repo  domain.Repository
	cache *cache.Availability
}

func NewGetAvailableSlots(repo domain.Repository, c *cache.Availability) *GetAvailableSlots {
	return &GetAvailableSlots{repo: repo, cache: c}
}

func (uc *GetAvailableSlots) Execute(
	ctx context.Context,
	in AvailabilityInput,
) ([]string, error) {

	date, err := time.ParseInLocation("2006-01-02", in.Date, time.Local)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	addOn, ok := domain.ParseAddOn(in.AddOn)
	if !ok {
		return nil, httperr.ErrBusiness("invalid_addon")
	}

	// O corte de "hoje" depende do papel, então a variante do cache também.
	variant := fmt.Sprintf("%s|%s|%s", in.ServiceName, addOn, in.ActorRole)
	if slots, hit := uc.cache.GetSlots(ctx, in.ProfessionalID, in.Date, variant); hit {
		return slots, nil
	}

	days, err := scheduleFor(ctx, uc.repo, in.SalonID, in.ProfessionalID)
	if err != nil {
		return nil, err
	}

	window, open := domain.WindowFor(days, date)
	if !open {
		return []string{}, nil
	}

	services, err := uc.repo.ListServices(ctx, in.SalonID)
	if err != nil {
		return nil, err
	}
	catalog := domain.NewCatalog(services)
	duration := catalog.ComputeDuration(in.ServiceName, addOn)

	cutoff := domain.CutoffFor(in.ActorRole, time.Now(), date)
	candidates := domain.SlotsForDay(window, duration, cutoff)
	if len(candidates) == 0 {
		return []string{}, nil
	}

	existing, err := uc.repo.ListAppointmentsForDay(ctx, in.ProfessionalID, date)
	if err != nil {
		return nil, err
	}

	slots := make([]string, 0, len(candidates))
	for _, hhmm := range candidates {
		startMin, err := domain.ParseClock(hhmm)
		if err != nil {
			continue
		}
		if domain.IsSlotOccupied(in.ProfessionalID, date, startMin, duration, existing) {
			continue
		}
		slots = append(slots, hhmm)
	}

	uc.cache.PutSlots(ctx, in.ProfessionalID, in.Date, variant, slots)
	return slots, nil
}
