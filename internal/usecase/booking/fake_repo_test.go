package booking

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	domain "github.com/DigitalJustOne/beautymanager-sub000/internal/domain/scheduling"
	"github.com/DigitalJustOne/beautymanager-sub000/internal/models"
)

// fakeRepo é a implementação em memória de domain.Repository usada pelos
// testes dos casos de uso.
type fakeRepo struct {
	salon         models.Salon
	services      []models.Service
	professionals map[uint]*models.User
	schedule      map[uint][]models.ScheduleDay
	clients       []*models.Client
	appointments  []*models.Appointment

	nextID uint

	// createErr força a falha da persistência atômica (simula a corrida).
	createErr error
}

var _ domain.Repository = (*fakeRepo)(nil)

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		salon:         models.Salon{Name: "Salón Test", Slug: "salon-test"},
		professionals: map[uint]*models.User{},
		schedule:      map[uint][]models.ScheduleDay{},
		nextID:        1,
	}
}

func (f *fakeRepo) id() uint {
	id := f.nextID
	f.nextID++
	return id
}

func (f *fakeRepo) GetSalonByID(_ context.Context, id uint) (*models.Salon, error) {
	s := f.salon
	s.ID = id
	return &s, nil
}

func (f *fakeRepo) GetSalonBySlug(_ context.Context, slug string) (*models.Salon, error) {
	if slug != f.salon.Slug {
		return nil, gorm.ErrRecordNotFound
	}
	s := f.salon
	return &s, nil
}

func (f *fakeRepo) ListServices(_ context.Context, _ uint) ([]models.Service, error) {
	return f.services, nil
}

func (f *fakeRepo) GetProfessional(_ context.Context, _ uint, professionalID uint) (*models.User, error) {
	p, ok := f.professionals[professionalID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (f *fakeRepo) ListProfessionals(_ context.Context, _ uint) ([]models.User, error) {
	var out []models.User
	for _, p := range f.professionals {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeRepo) GetScheduleDays(_ context.Context, _ uint, professionalID uint) ([]models.ScheduleDay, error) {
	return f.schedule[professionalID], nil
}

func (f *fakeRepo) FindClientByPhone(_ context.Context, _ uint, phone string) (*models.Client, error) {
	for _, c := range f.clients {
		if c.Phone == phone {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) FindClientByEmail(_ context.Context, _ uint, email string) (*models.Client, error) {
	for _, c := range f.clients {
		if c.Email == email {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) ListClients(_ context.Context, _ uint) ([]models.Client, error) {
	var out []models.Client
	for _, c := range f.clients {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeRepo) ListAppointmentsForDay(_ context.Context, professionalID uint, date time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.ProfessionalID == professionalID && domain.SameDay(ap.Date, date) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAppointmentsForPeriod(_ context.Context, salonID uint, start, end time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.SalonID == salonID && !ap.Date.Before(start) && ap.Date.Before(end) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetAppointment(_ context.Context, salonID uint, appointmentID uint) (*models.Appointment, error) {
	for _, ap := range f.appointments {
		if ap.ID == appointmentID && ap.SalonID == salonID {
			cp := *ap
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) GetAppointmentByRef(_ context.Context, salonID uint, ref string) (*models.Appointment, error) {
	for _, ap := range f.appointments {
		if ap.Ref == ref && ap.SalonID == salonID {
			cp := *ap
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) CreateAppointmentChecked(_ context.Context, ap *models.Appointment, newClient *models.Client) error {
	if f.createErr != nil {
		return f.createErr
	}

	if newClient != nil {
		newClient.ID = f.id()
		f.clients = append(f.clients, newClient)
		ap.ClientID = newClient.ID
	}

	ap.ID = f.id()
	f.appointments = append(f.appointments, ap)
	return nil
}

func (f *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	for i, ex := range f.appointments {
		if ex.ID == ap.ID {
			cp := *ap
			f.appointments[i] = &cp
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeRepo) UpdateAppointmentStatus(_ context.Context, appointmentID uint, status domain.Status) error {
	for _, ap := range f.appointments {
		if ap.ID == appointmentID {
			ap.Status = string(status)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeRepo) DeleteAppointment(_ context.Context, appointmentID uint) error {
	for i, ap := range f.appointments {
		if ap.ID == appointmentID {
			f.appointments = append(f.appointments[:i], f.appointments[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// --------- Helpers de montagem ---------

func (f *fakeRepo) addProfessional(name string, specialties ...string) *models.User {
	p := &models.User{
		Name: name,
		Role: models.RoleProfessional,
	}
	p.ID = f.id()
	for _, s := range specialties {
		p.Specialties = append(p.Specialties, models.Specialty{ProfessionalID: p.ID, ServiceName: s})
	}
	f.professionals[p.ID] = p
	return p
}

func (f *fakeRepo) addService(name string, priceMinor int64, durationMin int, allowsAddOn bool) {
	f.services = append(f.services, models.Service{
		SalonID:            1,
		Name:               name,
		PriceMinor:         priceMinor,
		DurationMin:        durationMin,
		AllowsRemovalAddOn: allowsAddOn,
		Active:             true,
	})
}

func (f *fakeRepo) addClient(name, phone, email string) *models.Client {
	c := &models.Client{SalonID: 1, Name: name, Phone: phone, Email: email}
	c.ID = f.id()
	f.clients = append(f.clients, c)
	return c
}

func (f *fakeRepo) addAppointment(professionalID uint, date time.Time, hhmm string, durationMin int, status string) *models.Appointment {
	ap := &models.Appointment{
		SalonID:        1,
		ProfessionalID: professionalID,
		Date:           domain.Midnight(date),
		TimeOfDay:      hhmm,
		DurationMin:    durationMin,
		Status:         status,
	}
	ap.ID = f.id()
	ap.Ref = fmt.Sprintf("ref-%d", ap.ID)
	f.appointments = append(f.appointments, ap)
	return ap
}

func (f *fakeRepo) fullWeek(professionalID uint, start, end string) {
	for _, day := range []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"} {
		f.schedule[professionalID] = append(f.schedule[professionalID], models.ScheduleDay{
			SalonID:        1,
			ProfessionalID: professionalID,
			Day:            day,
			Enabled:        true,
			StartTime:      start,
			EndTime:        end,
		})
	}
}
