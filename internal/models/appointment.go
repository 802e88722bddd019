package models

import "time"

type Appointment struct {
	ID  uint   `gorm:"primaryKey" json:"id"`
	Ref string `gorm:"size:36;uniqueIndex" json:"ref"`

	SalonID uint `json:"salon_id"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`
	// Denormalizado para listagens sem preload.
	ClientName string `gorm:"size:100" json:"client_name"`

	ProfessionalID   uint   `json:"professional_id"`
	Professional     User   `gorm:"foreignKey:ProfessionalID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"professional"`
	ProfessionalName string `gorm:"size:100" json:"professional_name"`

	// Nome de exibição do serviço, já com o sufixo de retiro quando houver
	// (ex.: "Semipermanente Manos + Retiro Semi").
	ServiceName string `gorm:"size:150" json:"service_name"`

	// Date guarda só o dia (meia-noite local); TimeOfDay é o início "HH:MM".
	Date      time.Time `gorm:"index" json:"date"`
	TimeOfDay string    `gorm:"size:5" json:"time_of_day"`

	// Canônicos: minutos e centavos. DurationLabel mantém a forma textual
	// legada ("1h 30m") para dados importados do sistema antigo.
	DurationMin   int    `json:"duration_min"`
	DurationLabel string `gorm:"size:20" json:"duration_label"`
	PriceMinor    int64  `json:"price_minor"`

	// Status persistido: pending | confirmed | cancelled. Os estados
	// "em serviço" e "finalizado" são derivados na leitura, nunca gravados.
	Status string `gorm:"size:20;default:'pending'" json:"status"`

	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
