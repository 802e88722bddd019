package scheduling

import (
	"fmt"
	"strings"
	"time"

	"github.com/DigitalJustOne/beautymanager-sub000/internal/models"
)

// ===============================
// Resolução de agenda semanal
// ===============================

const (
	// Horizonte de reserva: hoje + 13 dias.
	HorizonDays = 14

	// Passo entre horários candidatos.
	SlotStepMinutes = 30

	// Antecedência mínima para o fluxo do próprio cliente. Agendamentos de
	// staff aceitam qualquer horário estritamente depois de agora.
	ClientLeadTimeMinutes = 30
)

// DayWindow é o expediente de um dia em minutos desde a meia-noite.
type DayWindow struct {
	StartMin int
	EndMin   int
}

// ParseClock converte "HH:MM" em minutos desde a meia-noite.
func ParseClock(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid clock %q", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid clock %q", s)
	}
	return h*60 + m, nil
}

// FormatClock é a inversa de ParseClock.
func FormatClock(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}

func weekdayName(t time.Time) string {
	return strings.ToLower(t.Weekday().String())
}

// dayFor localiza a entrada da agenda pelo nome do dia, sem distinção de
// maiúsculas.
func dayFor(days []models.ScheduleDay, date time.Time) (models.ScheduleDay, bool) {
	name := weekdayName(date)
	for _, d := range days {
		if strings.EqualFold(d.Day, name) {
			return d, true
		}
	}
	return models.ScheduleDay{}, false
}

// AvailableDays percorre o horizonte de 14 dias a partir de hoje (inclusive)
// e devolve, em ordem crescente, os dias cuja entrada semanal está habilitada.
func AvailableDays(days []models.ScheduleDay, today time.Time) []time.Time {
	start := Midnight(today)

	var out []time.Time
	for i := 0; i < HorizonDays; i++ {
		date := start.AddDate(0, 0, i)
		if d, ok := dayFor(days, date); ok && d.Enabled {
			out = append(out, date)
		}
	}
	return out
}

// WindowFor resolve o expediente de uma data concreta. Segundo retorno falso
// quando o dia não existe na agenda, está desabilitado ou tem horário
// inválido, nunca erro.
func WindowFor(days []models.ScheduleDay, date time.Time) (DayWindow, bool) {
	d, ok := dayFor(days, date)
	if !ok || !d.Enabled {
		return DayWindow{}, false
	}

	startMin, err := ParseClock(d.StartTime)
	if err != nil {
		return DayWindow{}, false
	}
	endMin, err := ParseClock(d.EndTime)
	if err != nil {
		return DayWindow{}, false
	}
	if startMin >= endMin {
		return DayWindow{}, false
	}

	return DayWindow{StartMin: startMin, EndMin: endMin}, true
}

// CutoffFor devolve o limite de corte (em minutos desde a meia-noite) para
// horários do próprio dia: o candidato precisa começar estritamente depois
// dele. Para datas futuras devolve -1 (sem corte).
//
// Fluxo do cliente: agora + 30min. Fluxo de staff: agora. A assimetria é
// intencional e por papel.
func CutoffFor(role string, now, date time.Time) int {
	if !SameDay(now, date) {
		return -1
	}
	nowMin := now.Hour()*60 + now.Minute()
	if role == models.RoleClient {
		return nowMin + ClientLeadTimeMinutes
	}
	return nowMin
}

// SlotsForDay emite os inícios candidatos "HH:MM" em ordem crescente:
// começa no início do expediente, anda de 30 em 30 minutos e só emite
// enquanto candidato+duração couber no expediente. O corte de "hoje" é
// aplicado aqui; o filtro de conflitos fica com o ConflictDetector.
func SlotsForDay(window DayWindow, durationMin int, cutoffMin int) []string {
	var slots []string
	for t := window.StartMin; t+durationMin <= window.EndMin; t += SlotStepMinutes {
		if cutoffMin >= 0 && t <= cutoffMin {
			continue
		}
		slots = append(slots, FormatClock(t))
	}
	return slots
}

// Midnight normaliza para a meia-noite local do mesmo dia.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay compara apenas o dia de calendário.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
