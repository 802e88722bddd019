package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/DigitalJustOne/beautymanager-sub000/internal/audit"
	"github.com/DigitalJustOne/beautymanager-sub000/internal/cache"
	domain "github.com/DigitalJustOne/beautymanager-sub000/internal/domain/scheduling"
	"github.com/DigitalJustOne/beautymanager-sub000/internal/httperr"
	"github.com/DigitalJustOne/beautymanager-sub000/internal/models"
	"github.com/DigitalJustOne/beautymanager-sub000/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	SalonID        uint
	ProfessionalID uint

	ServiceName string
	AddOn       string

	Date string // YYYY-MM-DD
	Time string // HH:mm

	ClientName      string
	ClientPhone     string // 10 dígitos
	ClientEmail     string
	ClientAvatarURL string

	// Papel de quem agenda: staff auto-confirma, cliente nasce pendente.
	ActorRole   string
	ActorUserID *uint
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.Availability
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	c *cache.Availability,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
		cache: c,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Campos obrigatórios
	// --------------------------------------------------
	var bad []string
	if in.ServiceName == "" {
		bad = append(bad, "service")
	}
	if in.ProfessionalID == 0 {
		bad = append(bad, "professional")
	}
	if in.ClientName == "" {
		bad = append(bad, "client_name")
	}
	if !validators.IsValidPhone(in.ClientPhone) {
		bad = append(bad, "client_phone")
	}
	if !validators.IsValidEmailFormat(in.ClientEmail) {
		bad = append(bad, "client_email")
	}

	date, err := time.ParseInLocation("2006-01-02", in.Date, time.Local)
	if err != nil {
		bad = append(bad, "date")
	}

	startMin, err := domain.ParseClock(in.Time)
	if err != nil {
		bad = append(bad, "time")
	}

	addOn, ok := domain.ParseAddOn(in.AddOn)
	if !ok {
		bad = append(bad, "addon")
	}

	if len(bad) > 0 {
		return nil, &domain.ValidationError{Fields: bad}
	}

	// --------------------------------------------------
	// 2. Profissional + especialidade
	// --------------------------------------------------
	prof, err := uc.repo.GetProfessional(ctx, in.SalonID, in.ProfessionalID)
	if err != nil {
		return nil, httperr.ErrBusiness("professional_not_found")
	}

	if len(prof.Specialties) > 0 {
		qualified := false
		for _, sp := range prof.Specialties {
			if sp.ServiceName == in.ServiceName {
				qualified = true
				break
			}
		}
		if !qualified {
			return nil, httperr.ErrBusiness("professional_not_qualified")
		}
	}

	// --------------------------------------------------
	// 3. Preço e duração
	// --------------------------------------------------
	services, err := uc.repo.ListServices(ctx, in.SalonID)
	if err != nil {
		return nil, err
	}
	catalog := domain.NewCatalog(services)

	duration := catalog.ComputeDuration(in.ServiceName, addOn)
	price := catalog.ComputeTotalPrice(in.ServiceName, addOn)

	// --------------------------------------------------
	// 4. Rechecagem de conflito (a lista do UI pode estar velha)
	// --------------------------------------------------
	existing, err := uc.repo.ListAppointmentsForDay(ctx, in.ProfessionalID, date)
	if err != nil {
		return nil, err
	}

	if domain.IsSlotOccupied(in.ProfessionalID, date, startMin, duration, existing) {
		return nil, &domain.SlotConflictError{
			Time:             in.Time,
			ProfessionalName: prof.Name,
		}
	}

	// --------------------------------------------------
	// 5. Identidade do cliente (telefone manda)
	// --------------------------------------------------
	var clientID uint
	var clientName string
	var newClient *models.Client

	if found, err := uc.repo.FindClientByPhone(ctx, in.SalonID, in.ClientPhone); err == nil && found != nil {
		// Cadastro existente é a fonte da verdade, mesmo que o chamador
		// tenha mandado nome/e-mail diferentes.
		clientID = found.ID
		clientName = found.Name
	} else {
		if owner, err := uc.repo.FindClientByEmail(ctx, in.SalonID, in.ClientEmail); err == nil && owner != nil {
			return nil, &domain.IdentityConflictError{OwnerName: owner.Name}
		}

		newClient = &models.Client{
			SalonID:   in.SalonID,
			Name:      in.ClientName,
			Phone:     in.ClientPhone,
			Email:     in.ClientEmail,
			AvatarURL: in.ClientAvatarURL,
		}
		clientName = in.ClientName
	}

	// --------------------------------------------------
	// 6. Montagem + persistência atômica
	// --------------------------------------------------
	ap := &models.Appointment{
		Ref:              uuid.NewString(),
		SalonID:          in.SalonID,
		ClientID:         clientID,
		ClientName:       clientName,
		ProfessionalID:   prof.ID,
		ProfessionalName: prof.Name,
		ServiceName:      domain.DisplayServiceName(in.ServiceName, addOn),
		Date:             domain.Midnight(date),
		TimeOfDay:        domain.FormatClock(startMin),
		DurationMin:      duration,
		DurationLabel:    domain.FormatDuration(duration),
		PriceMinor:       price,
		Status:           string(domain.InitialStatus(in.ActorRole)),
	}

	if err := uc.repo.CreateAppointmentChecked(ctx, ap, newClient); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, ap.ProfessionalID, in.Date)

	uc.audit.Dispatch(audit.Event{
		SalonID:  in.SalonID,
		UserID:   in.ActorUserID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
