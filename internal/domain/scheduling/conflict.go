package scheduling

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/DigitalJustOne/beautymanager-sub000/internal/models"
)

// ===============================
// Detecção de conflitos
// ===============================

// Interval é um intervalo meio-aberto [StartMin, EndMin) em minutos desde a
// meia-noite.
type Interval struct {
	StartMin int
	EndMin   int
}

// Overlaps: interseção padrão de intervalos meio-abertos. Extremos que só se
// tocam não conflitam.
func (i Interval) Overlaps(o Interval) bool {
	return i.StartMin < o.EndMin && i.EndMin > o.StartMin
}

var (
	reHourMin  = regexp.MustCompile(`^\s*(\d+)\s*h(?:\s*(\d+)\s*m)?\s*$`)
	reMinutes  = regexp.MustCompile(`^\s*(\d+)\s*m\s*$`)
	reBareNumb = regexp.MustCompile(`(\d+)`)
)

// ParseDuration interpreta a forma textual legada de duração:
// "1h 30m" → 90, "2h" → 120, "45m" → 45. Qualquer outra string com um
// número solto é lida como minutos; sem número, assume 60.
func ParseDuration(s string) int {
	if m := reHourMin.FindStringSubmatch(s); m != nil {
		h, _ := strconv.Atoi(m[1])
		min := 0
		if m[2] != "" {
			min, _ = strconv.Atoi(m[2])
		}
		return h*60 + min
	}
	if m := reMinutes.FindStringSubmatch(s); m != nil {
		min, _ := strconv.Atoi(m[1])
		return min
	}
	if m := reBareNumb.FindStringSubmatch(s); m != nil {
		min, _ := strconv.Atoi(m[1])
		return min
	}
	return DefaultDurationMin
}

// FormatDuration é a forma textual de exibição, inversa de ParseDuration.
func FormatDuration(min int) string {
	h, m := min/60, min%60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dm", m)
	}
}

// appointmentDuration prefere o valor canônico em minutos e cai no parser
// tolerante para linhas legadas que só têm o rótulo textual.
func appointmentDuration(ap models.Appointment) int {
	if ap.DurationMin > 0 {
		return ap.DurationMin
	}
	return ParseDuration(ap.DurationLabel)
}

// appointmentInterval monta o intervalo ocupado de um agendamento existente.
func appointmentInterval(ap models.Appointment) (Interval, bool) {
	startMin, err := ParseClock(ap.TimeOfDay)
	if err != nil {
		return Interval{}, false
	}
	return Interval{StartMin: startMin, EndMin: startMin + appointmentDuration(ap)}, true
}

// IsSlotOccupied varre os agendamentos existentes e responde se o candidato
// colide com algum. Cancelados, outros profissionais e outros dias são
// ignorados. Leitura pura, sem locking; a checagem autoritativa acontece na
// transação de persistência.
func IsSlotOccupied(
	professionalID uint,
	date time.Time,
	startMin int,
	durationMin int,
	existing []models.Appointment,
) bool {
	candidate := Interval{StartMin: startMin, EndMin: startMin + durationMin}

	for _, ap := range existing {
		if ap.Status == string(StatusCancelled) {
			continue
		}
		if ap.ProfessionalID != professionalID {
			continue
		}
		if !SameDay(ap.Date, date) {
			continue
		}

		taken, ok := appointmentInterval(ap)
		if !ok {
			continue
		}
		if candidate.Overlaps(taken) {
			return true
		}
	}
	return false
}
