package scheduling

import (
	"time"

	"github.com/DigitalJustOne/beautymanager-sub000/internal/httperr"
	"github.com/DigitalJustOne/beautymanager-sub000/internal/models"
)

// ===============================
// Status persistido (3 valores)
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// ===============================
// Validações de transição
// ===============================

// CanConfirm: só um agendamento pendente pode ser confirmado.
func CanConfirm(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanUnconfirm desfaz a confirmação (volta para pendente).
func CanUnconfirm(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanCancel: cancelamento vale para pendente e confirmado; cancelado é
// terminal (sem des-cancelar).
func CanCancel(current Status) error {
	if current != StatusPending && current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanErase: a exclusão física comum exige cancelamento prévio. A ação
// destrutiva de admin usa force.
func CanErase(current Status, force bool) error {
	if force {
		return nil
	}
	if current != StatusCancelled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// InitialStatus define o status de criação pelo papel do ator: staff
// auto-confirma, auto-agendamento do cliente nasce pendente.
func InitialStatus(actorRole string) Status {
	if actorRole == models.RoleClient {
		return StatusPending
	}
	return StatusConfirmed
}

// ===============================
// Status de exibição (5 valores, derivado)
// ===============================

type DisplayStatus string

const (
	DisplayPending   DisplayStatus = "pending"
	DisplayConfirmed DisplayStatus = "confirmed"
	DisplayInService DisplayStatus = "in_service"
	DisplayFinished  DisplayStatus = "finished"
	DisplayCancelled DisplayStatus = "cancelled"
)

var displayLabels = map[DisplayStatus]string{
	DisplayPending:   "Pendiente",
	DisplayConfirmed: "Confirmado",
	DisplayInService: "En Servicio",
	DisplayFinished:  "Finalizado",
	DisplayCancelled: "Cancelado",
}

// Label devolve o rótulo de exibição em espanhol.
func (s DisplayStatus) Label() string {
	return displayLabels[s]
}

// DisplayStatusOf deriva o estado visível a partir do status persistido e do
// relógio. Ordem de prioridade estrita:
//
//  1. cancelado → Cancelado (terminal);
//  2. com data, dentro da janela e confirmado → En Servicio;
//  3. com data e janela já encerrada → Finalizado (mesmo se ainda pendente:
//     passou o horário, não há mais o que confirmar);
//  4. confirmado → Confirmado;
//  5. senão → Pendiente (inclui data ausente).
//
// É uma derivação na leitura, não uma máquina de estados gravada.
func DisplayStatusOf(ap models.Appointment, now time.Time) DisplayStatus {
	if ap.Status == string(StatusCancelled) {
		return DisplayCancelled
	}

	if !ap.Date.IsZero() {
		if startMin, err := ParseClock(ap.TimeOfDay); err == nil {
			start := Midnight(ap.Date).Add(time.Duration(startMin) * time.Minute)
			end := start.Add(time.Duration(appointmentDuration(ap)) * time.Minute)

			if !now.Before(start) && now.Before(end) && ap.Status == string(StatusConfirmed) {
				return DisplayInService
			}
			if !now.Before(end) {
				return DisplayFinished
			}
		}
	}

	if ap.Status == string(StatusConfirmed) {
		return DisplayConfirmed
	}
	return DisplayPending
}
