package booking

import (
	"sort"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

// MinutesFromLabel converte um rótulo "HH:MM" em minutos desde a meia-noite.
func MinutesFromLabel(label string) (int, error) {
	t, err := time.Parse("15:04", label)
	if err != nil {
		return 0, httperr.ErrBusiness("invalid_time_label")
	}
	return t.Hour()*60 + t.Minute(), nil
}

type occupied struct {
	start int
	end   int
}

// AvailableHours calcula os horários de início ainda livres para um serviço
// de durationMin minutos, dado o quadro fixo de horários do barbeiro no dia
// (schedule, crescente) e os agendamentos já reservados (booked, em qualquer
// ordem).
//
// Duas passadas:
//
//  1. Um horário é descartado se a janela de sondagem [slot, slot+1) cruzar
//     algum intervalo ocupado [início, início+duração) — teste de intervalos
//     semiabertos, encostar não é conflito.
//  2. Entre os horários livres, o serviço precisa caber no vão até o próximo
//     agendamento estritamente posterior; sem agendamento posterior, o teto
//     é o último rótulo do quadro (o início dele, não o fim).
//
// Um horário que passa na sondagem ainda pode ser rejeitado pelo vão; isso é
// intencional. durationMin zero passa no filtro de vão trivialmente.
func AvailableHours(schedule []string, booked []BookedSlot, durationMin int) ([]string, error) {
	if durationMin < 0 {
		return nil, httperr.ErrBusiness("invalid_duration")
	}

	hours := []string{}
	if len(schedule) == 0 {
		return hours, nil
	}

	slots := make([]int, len(schedule))
	for i, label := range schedule {
		m, err := MinutesFromLabel(label)
		if err != nil {
			return nil, err
		}
		slots[i] = m
	}

	intervals := make([]occupied, 0, len(booked))
	starts := make([]int, 0, len(booked))
	for _, b := range booked {
		m, err := MinutesFromLabel(b.StartLabel)
		if err != nil {
			return nil, err
		}
		intervals = append(intervals, occupied{start: m, end: m + b.DurationMin})
		starts = append(starts, m)
	}

	// booked chega em ordem arbitrária; a busca do "próximo agendamento"
	// precisa dos inícios ordenados
	sort.Ints(starts)

	ceiling := slots[len(slots)-1]

	for i, start := range slots {
		probeEnd := start + 1

		conflict := false
		for _, oc := range intervals {
			if start < oc.end && probeEnd > oc.start {
				conflict = true
				break
			}
		}
		if conflict {
			continue
		}

		span := ceiling - start
		for _, s := range starts {
			if s > start {
				span = s - start
				break
			}
		}

		if durationMin <= span {
			hours = append(hours, schedule[i])
		}
	}

	return hours, nil
}
