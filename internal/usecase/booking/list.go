package booking

import (
	"context"
	"time"

	domain "github.com/DigitalJustOne/beautymanager-sub000/internal/domain/scheduling"
	"github.com/DigitalJustOne/beautymanager-sub000/internal/dto"
)

// ======================================================
// AGENDA — listagens com status derivado
// ======================================================

type ListAgendaByDate struct {
	repo domain.Repository
}

func NewListAgendaByDate(repo domain.Repository) *ListAgendaByDate {
	return &ListAgendaByDate{repo: repo}
}

func (uc *ListAgendaByDate) Execute(
	ctx context.Context,
	salonID uint,
	date time.Time,
) ([]dto.AgendaItemDTO, error) {

	start := domain.Midnight(date)
	end := start.AddDate(0, 0, 1)

	apps, err := uc.repo.ListAppointmentsForPeriod(ctx, salonID, start, end)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	items := make([]dto.AgendaItemDTO, 0, len(apps))
	for _, ap := range apps {
		items = append(items, dto.NewAgendaItem(ap, now))
	}
	return items, nil
}

type ListAgendaByMonth struct {
	repo domain.Repository
}

func NewListAgendaByMonth(repo domain.Repository) *ListAgendaByMonth {
	return &ListAgendaByMonth{repo: repo}
}

func (uc *ListAgendaByMonth) Execute(
	ctx context.Context,
	salonID uint,
	year int,
	month time.Month,
) ([]dto.AgendaItemDTO, error) {

	start := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, 0)

	apps, err := uc.repo.ListAppointmentsForPeriod(ctx, salonID, start, end)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	items := make([]dto.AgendaItemDTO, 0, len(apps))
	for _, ap := range apps {
		items = append(items, dto.NewAgendaItem(ap, now))
	}
	return items, nil
}
