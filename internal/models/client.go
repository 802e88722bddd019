package models

import "time"

// Cliente simples, sem login, vinculado ao salão. Telefone e e-mail são as
// duas chaves de identidade usadas na deduplicação durante o agendamento.
type Client struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `gorm:"index:idx_client_salon_phone,unique;index:idx_client_salon_email,unique" json:"salon_id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:20;not null;index:idx_client_salon_phone,unique" json:"phone"`
	Email string `gorm:"size:100;index:idx_client_salon_email,unique" json:"email"`

	AvatarURL      string `gorm:"size:255" json:"avatar_url"`
	LastVisitLabel string `gorm:"size:50" json:"last_visit_label"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
