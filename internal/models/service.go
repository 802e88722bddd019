package models

import "time"

// Serviço do catálogo. Preço em centavos e duração em minutos; a
// formatação para exibição acontece só na borda (DTO).
type Service struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `gorm:"index:idx_service_salon_name,unique" json:"salon_id"`

	Name        string `gorm:"size:100;not null;index:idx_service_salon_name,unique" json:"name"`
	Description string `gorm:"size:255" json:"description"`
	Category    string `gorm:"size:50" json:"category"`

	PriceMinor  int64 `json:"price_minor"`
	DurationMin int   `json:"duration_min"`

	// Autoritativo para elegibilidade de retiro; preenchido pela regra de
	// substring quando o serviço é criado sem o campo.
	AllowsRemovalAddOn bool `json:"allows_removal_addon"`

	Active bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
