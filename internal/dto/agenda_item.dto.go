package dto

import (
	"fmt"
	"strconv"
	"time"

	domain "github.com/DigitalJustOne/beautymanager-sub000/internal/domain/scheduling"
	"github.com/DigitalJustOne/beautymanager-sub000/internal/models"
)

// AgendaItemDTO é a forma de exibição de um agendamento: duração e preço já
// formatados e o status derivado de 5 valores; nada disso volta pro banco.
type AgendaItemDTO struct {
	ID  uint   `json:"id"`
	Ref string `json:"ref"`

	Date     string `json:"date"`
	Time     string `json:"time"`
	EndTime  string `json:"end_time"`
	Duration string `json:"duration"`
	Price    string `json:"price"`

	ServiceName      string `json:"service_name"`
	ClientName       string `json:"client_name"`
	ProfessionalName string `json:"professional_name"`

	Status       string `json:"status"`
	StatusLabel  string `json:"status_label"`
	StoredStatus string `json:"stored_status"`
}

func NewAgendaItem(ap models.Appointment, now time.Time) AgendaItemDTO {
	display := domain.DisplayStatusOf(ap, now)

	durationMin := ap.DurationMin
	if durationMin <= 0 {
		durationMin = domain.ParseDuration(ap.DurationLabel)
	}

	endTime := ""
	if startMin, err := domain.ParseClock(ap.TimeOfDay); err == nil {
		endTime = domain.FormatClock(startMin + durationMin)
	}

	return AgendaItemDTO{
		ID:               ap.ID,
		Ref:              ap.Ref,
		Date:             ap.Date.Format("2006-01-02"),
		Time:             ap.TimeOfDay,
		EndTime:          endTime,
		Duration:         domain.FormatDuration(durationMin),
		Price:            FormatPrice(ap.PriceMinor),
		ServiceName:      ap.ServiceName,
		ClientName:       ap.ClientName,
		ProfessionalName: ap.ProfessionalName,
		Status:           string(display),
		StatusLabel:      display.Label(),
		StoredStatus:     ap.Status,
	}
}

// FormatPrice formata centavos como "$25.000" (separador de milhar com ponto).
func FormatPrice(cents int64) string {
	units := cents
	s := strconv.FormatInt(units, 10)

	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, c)
	}
	return fmt.Sprintf("$%s", out)
}
