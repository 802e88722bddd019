package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/DigitalJustOne/beautymanager-sub000/internal/domain/scheduling"
	"github.com/DigitalJustOne/beautymanager-sub000/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Salon
// --------------------------------------------------

func (r *BookingGormRepository) GetSalonByID(
	ctx context.Context,
	id uint,
) (*models.Salon, error) {

	var salon models.Salon
	if err := r.db.WithContext(ctx).First(&salon, id).Error; err != nil {
		return nil, err
	}
	return &salon, nil
}

func (r *BookingGormRepository) GetSalonBySlug(
	ctx context.Context,
	slug string,
) (*models.Salon, error) {

	var salon models.Salon
	if err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&salon).Error; err != nil {
		return nil, err
	}
	return &salon, nil
}

// --------------------------------------------------
// Catálogo
// --------------------------------------------------

func (r *BookingGormRepository) ListServices(
	ctx context.Context,
	salonID uint,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("salon_id = ? AND active = true", salonID).
		Order("id ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// --------------------------------------------------
// Profissionais
// --------------------------------------------------

func (r *BookingGormRepository) GetProfessional(
	ctx context.Context,
	salonID uint,
	professionalID uint,
) (*models.User, error) {

	var prof models.User
	if err := r.db.WithContext(ctx).
		Preload("Specialties").
		Where("id = ? AND salon_id = ? AND role IN ?", professionalID, salonID,
			[]string{models.RoleProfessional, models.RoleAdmin}).
		First(&prof).Error; err != nil {
		return nil, err
	}
	return &prof, nil
}

func (r *BookingGormRepository) ListProfessionals(
	ctx context.Context,
	salonID uint,
) ([]models.User, error) {

	var profs []models.User
	if err := r.db.WithContext(ctx).
		Preload("Specialties").
		Where("salon_id = ? AND role = ?", salonID, models.RoleProfessional).
		Order("name ASC").
		Find(&profs).Error; err != nil {
		return nil, err
	}
	return profs, nil
}

func (r *BookingGormRepository) GetScheduleDays(
	ctx context.Context,
	salonID uint,
	professionalID uint,
) ([]models.ScheduleDay, error) {

	var days []models.ScheduleDay
	if err := r.db.WithContext(ctx).
		Where("salon_id = ? AND professional_id = ?", salonID, professionalID).
		Order("id ASC").
		Find(&days).Error; err != nil {
		return nil, err
	}
	return days, nil
}

// --------------------------------------------------
// Clientes
// --------------------------------------------------

func (r *BookingGormRepository) FindClientByPhone(
	ctx context.Context,
	salonID uint,
	phone string,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).
		Where("salon_id = ? AND phone = ?", salonID, phone).
		First(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *BookingGormRepository) FindClientByEmail(
	ctx context.Context,
	salonID uint,
	email string,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).
		Where("salon_id = ? AND email = ? AND email <> ''", salonID, email).
		First(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *BookingGormRepository) ListClients(
	ctx context.Context,
	salonID uint,
) ([]models.Client, error) {

	var clients []models.Client
	if err := r.db.WithContext(ctx).
		Where("salon_id = ?", salonID).
		Order("created_at DESC").
		Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

// --------------------------------------------------
// Agendamentos
// --------------------------------------------------

func (r *BookingGormRepository) ListAppointmentsForDay(
	ctx context.Context,
	professionalID uint,
	date time.Time,
) ([]models.Appointment, error) {

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	next := day.AddDate(0, 0, 1)

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"professional_id = ? AND status <> ? AND date >= ? AND date < ?",
			professionalID, "cancelled", day, next,
		).
		Order("time_of_day ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *BookingGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	salonID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"salon_id = ? AND date >= ? AND date < ?",
			salonID, start, end,
		).
		Order("date ASC, time_of_day ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *BookingGormRepository) GetAppointment(
	ctx context.Context,
	salonID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", appointmentID, salonID).
		First(&ap).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *BookingGormRepository) GetAppointmentByRef(
	ctx context.Context,
	salonID uint,
	ref string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("ref = ? AND salon_id = ?", ref, salonID).
		First(&ap).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

// CreateAppointmentChecked refaz a checagem de conflito com lock e insere
// (cliente novo incluso) numa única transação. É o que fecha a corrida entre
// a listagem de horários e o commit: duas submissões simultâneas para o
// mesmo horário serializam aqui e a segunda recebe SlotConflictError.
func (r *BookingGormRepository) CreateAppointmentChecked(
	ctx context.Context,
	ap *models.Appointment,
	newClient *models.Client,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		startMin, err := domain.ParseClock(ap.TimeOfDay)
		if err != nil {
			return err
		}
		endMin := startMin + ap.DurationMin

		var conflicts []models.Appointment
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"professional_id = ? AND status <> ? AND date = ?",
				ap.ProfessionalID, "cancelled", ap.Date,
			).
			Find(&conflicts).Error; err != nil {
			return err
		}

		for _, existing := range conflicts {
			exStart, err := domain.ParseClock(existing.TimeOfDay)
			if err != nil {
				continue
			}
			exDur := existing.DurationMin
			if exDur <= 0 {
				exDur = domain.ParseDuration(existing.DurationLabel)
			}
			exEnd := exStart + exDur
			if startMin < exEnd && endMin > exStart {
				return &domain.SlotConflictError{
					Time:             ap.TimeOfDay,
					ProfessionalName: ap.ProfessionalName,
				}
			}
		}

		if newClient != nil {
			if err := tx.Create(newClient).Error; err != nil {
				return err
			}
			ap.ClientID = newClient.ID
		}

		return tx.Create(ap).Error
	})
}

func (r *BookingGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *BookingGormRepository) UpdateAppointmentStatus(
	ctx context.Context,
	appointmentID uint,
	status domain.Status,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", appointmentID).
		Update("status", string(status)).Error
}

func (r *BookingGormRepository) DeleteAppointment(
	ctx context.Context,
	appointmentID uint,
) error {
	return r.db.WithContext(ctx).
		Delete(&models.Appointment{}, appointmentID).Error
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
