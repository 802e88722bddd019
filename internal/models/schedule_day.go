package models

import "time"

// ScheduleDay é a janela de atendimento de um dia da semana.
// ProfessionalID = 0 representa o horário padrão do salão, usado quando o
// profissional não tem agenda própria.
type ScheduleDay struct {
	ID             uint `gorm:"primaryKey" json:"id"`
	SalonID        uint `gorm:"index" json:"salon_id"`
	ProfessionalID uint `gorm:"index" json:"professional_id"`

	// Nome do dia em inglês ("monday" ... "sunday"), comparado sem
	// distinção de maiúsculas.
	Day string `gorm:"size:16;not null" json:"day"`

	Enabled   bool   `json:"enabled"`
	StartTime string `gorm:"size:5" json:"start_time"` // "HH:MM"
	EndTime   string `gorm:"size:5" json:"end_time"`   // "HH:MM"

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
