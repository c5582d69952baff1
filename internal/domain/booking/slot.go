package booking

import "time"

type AvailabilityInput struct {
	BarberID  uint
	ServiceID uint
	Date      time.Time

	// ExcludeAppointmentID tira um agendamento do conjunto de reservas;
	// na remarcação o próprio horário atual não conta como conflito.
	ExcludeAppointmentID uint
}

// BookedSlot é um agendamento já reservado, reduzido ao que a
// disponibilidade precisa: início e duração.
type BookedSlot struct {
	StartLabel  string
	DurationMin int
}

// DaySlot é um dia selecionável no agendamento (próximos 7 dias).
type DaySlot struct {
	Label string    `json:"label"`
	Date  time.Time `json:"date"`
}
