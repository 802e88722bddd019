package scheduling

import (
	"context"
	"time"

	"github.com/DigitalJustOne/beautymanager-sub000/internal/models"
)

// Repository é o colaborador de acesso a dados do motor de agendamento.
// O motor em si é puro; tudo que toca o banco passa por aqui.
type Repository interface {
	// -------- Salon --------
	GetSalonByID(
		ctx context.Context,
		id uint,
	) (*models.Salon, error)

	GetSalonBySlug(
		ctx context.Context,
		slug string,
	) (*models.Salon, error)

	// -------- Catálogo --------
	ListServices(
		ctx context.Context,
		salonID uint,
	) ([]models.Service, error)

	// -------- Profissionais --------
	GetProfessional(
		ctx context.Context,
		salonID uint,
		professionalID uint,
	) (*models.User, error)

	ListProfessionals(
		ctx context.Context,
		salonID uint,
	) ([]models.User, error)

	// Agenda semanal do profissional; vazia quando ele não tem horário
	// próprio (o chamador cai no padrão do salão, professionalID = 0).
	GetScheduleDays(
		ctx context.Context,
		salonID uint,
		professionalID uint,
	) ([]models.ScheduleDay, error)

	// -------- Clientes --------
	FindClientByPhone(
		ctx context.Context,
		salonID uint,
		phone string,
	) (*models.Client, error)

	FindClientByEmail(
		ctx context.Context,
		salonID uint,
		email string,
	) (*models.Client, error)

	ListClients(
		ctx context.Context,
		salonID uint,
	) ([]models.Client, error)

	// -------- Agendamentos --------
	ListAppointmentsForDay(
		ctx context.Context,
		professionalID uint,
		date time.Time,
	) ([]models.Appointment, error)

	ListAppointmentsForPeriod(
		ctx context.Context,
		salonID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	GetAppointment(
		ctx context.Context,
		salonID uint,
		appointmentID uint,
	) (*models.Appointment, error)

	// Busca pelo código público (uuid), usado no fluxo sem login.
	GetAppointmentByRef(
		ctx context.Context,
		salonID uint,
		ref string,
	) (*models.Appointment, error)

	// CreateAppointmentChecked refaz a checagem de conflito e insere dentro
	// de uma única transação (fecha a corrida checar-e-gravar). Cria também
	// o cliente quando newClient != nil.
	CreateAppointmentChecked(
		ctx context.Context,
		ap *models.Appointment,
		newClient *models.Client,
	) error

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	UpdateAppointmentStatus(
		ctx context.Context,
		appointmentID uint,
		status Status,
	) error

	DeleteAppointment(
		ctx context.Context,
		appointmentID uint,
	) error
}
