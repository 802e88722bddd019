package scheduling

import (
	"fmt"
	"strings"
)

// Falhas locais e recuperáveis do fluxo de agendamento. Todas voltam
// síncronas para quem chamou; o handler traduz para httperr.

// ValidationError lista os campos ausentes ou malformados.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid fields: " + strings.Join(e.Fields, ", ")
}

// SlotConflictError: o horário foi ocupado entre a listagem e o envio.
type SlotConflictError struct {
	Time             string
	ProfessionalName string
}

func (e *SlotConflictError) Error() string {
	return fmt.Sprintf("slot %s already taken for %s", e.Time, e.ProfessionalName)
}

// IdentityConflictError: o e-mail informado já pertence a outro cliente.
type IdentityConflictError struct {
	OwnerName string
}

func (e *IdentityConflictError) Error() string {
	return fmt.Sprintf("email already belongs to %s", e.OwnerName)
}
