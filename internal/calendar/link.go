package calendar

import (
	"net/url"
	"time"

	domain "github.com/DigitalJustOne/beautymanager-sub000/internal/domain/scheduling"
	"github.com/DigitalJustOne/beautymanager-sub000/internal/models"
)

// GoogleLink monta o deep-link "adicionar à agenda" do Google Calendar para
// um agendamento finalizado. Formatação pura, sem timezone explícito
// (horário flutuante local, igual ao resto do sistema).
func GoogleLink(ap models.Appointment, salonName string) string {
	startMin, err := domain.ParseClock(ap.TimeOfDay)
	if err != nil {
		startMin = 0
	}

	durationMin := ap.DurationMin
	if durationMin <= 0 {
		durationMin = domain.ParseDuration(ap.DurationLabel)
	}

	start := domain.Midnight(ap.Date).Add(time.Duration(startMin) * time.Minute)
	end := start.Add(time.Duration(durationMin) * time.Minute)

	const layout = "20060102T150405"

	q := url.Values{}
	q.Set("action", "TEMPLATE")
	q.Set("text", ap.ServiceName+" | "+salonName)
	q.Set("dates", start.Format(layout)+"/"+end.Format(layout))
	q.Set("details", "Profesional: "+ap.ProfessionalName)

	return "https://calendar.google.com/calendar/render?" + q.Encode()
}
