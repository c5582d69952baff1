package models

import (
	"time"

	"gorm.io/datatypes"
)

// BarberSchedule guarda os horários fixos de início de um barbeiro em um dia
// da semana. Hours é uma lista JSON de rótulos "HH:MM" em ordem crescente,
// alinhados em granularidade de 30 minutos.
type BarberSchedule struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	BarberID uint `gorm:"uniqueIndex:idx_barber_weekday" json:"barber_id"`

	Weekday int            `gorm:"uniqueIndex:idx_barber_weekday" json:"weekday"`
	Hours   datatypes.JSON `json:"hours"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
