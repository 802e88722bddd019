package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/DigitalJustOne/beautymanager-sub000/internal/models"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "$0"},
		{500, "$500"},
		{25000, "$25.000"},
		{150000, "$150.000"},
		{1250000, "$1.250.000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatPrice(tt.in), tt.want)
	}
}

func TestNewAgendaItem(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local)

	ap := models.Appointment{
		ID:               4,
		Ref:              "abc-123",
		Date:             day,
		TimeOfDay:        "10:00",
		DurationMin:      90,
		PriceMinor:       35000,
		ServiceName:      "Manicure Semi + Retiro Semi",
		ClientName:       "Laura Gómez",
		ProfessionalName: "Valentina",
		Status:           "confirmed",
	}

	// Antes da janela: exibe o status gravado.
	item := NewAgendaItem(ap, day.Add(9*time.Hour))

	assert.Equal(t, "2026-03-02", item.Date)
	assert.Equal(t, "10:00", item.Time)
	assert.Equal(t, "11:30", item.EndTime)
	assert.Equal(t, "1h 30m", item.Duration)
	assert.Equal(t, "$35.000", item.Price)
	assert.Equal(t, "confirmed", item.Status)
	assert.Equal(t, "Confirmado", item.StatusLabel)
	assert.Equal(t, "confirmed", item.StoredStatus)

	// Dentro da janela: o status de exibição diverge do gravado.
	inService := NewAgendaItem(ap, day.Add(10*time.Hour+30*time.Minute))
	assert.Equal(t, "in_service", inService.Status)
	assert.Equal(t, "En Servicio", inService.StatusLabel)
	assert.Equal(t, "confirmed", inService.StoredStatus)
}

func TestNewAgendaItem_LegacyDurationLabel(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local)

	ap := models.Appointment{
		Date:          day,
		TimeOfDay:     "14:00",
		DurationLabel: "45m",
		Status:        "pending",
	}

	item := NewAgendaItem(ap, day)
	assert.Equal(t, "14:45", item.EndTime)
	assert.Equal(t, "45m", item.Duration)
}
