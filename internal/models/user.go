package models

import "time"

// Papéis possíveis de um usuário autenticado.
const (
	RoleAdmin        = "admin"
	RoleProfessional = "professional"
	RoleClient       = "client"
)

type User struct {
	ID      uint  `gorm:"primaryKey" json:"id"`
	SalonID uint  `json:"salon_id"`
	Salon   Salon `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"salon"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`
	Role         string `gorm:"size:20;default:'admin'" json:"role"`

	// Serviços que um profissional pode atender (vazio para admin).
	Specialties []Specialty `gorm:"foreignKey:ProfessionalID" json:"specialties,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Specialty vincula um profissional a um serviço do catálogo pelo nome.
type Specialty struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	ProfessionalID uint   `gorm:"index" json:"professional_id"`
	ServiceName    string `gorm:"size:100;not null" json:"service_name"`
}
