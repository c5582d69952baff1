package booking

import (
	"fmt"
	"time"
)

var weekdayNames = [...]string{
	"domingo",
	"segunda-feira",
	"terça-feira",
	"quarta-feira",
	"quinta-feira",
	"sexta-feira",
	"sábado",
}

var monthNames = [...]string{
	"janeiro",
	"fevereiro",
	"março",
	"abril",
	"maio",
	"junho",
	"julho",
	"agosto",
	"setembro",
	"outubro",
	"novembro",
	"dezembro",
}

// NextBookableDays gera, a partir de hoje, os próximos 7 dias de calendário
// filtrados aos dias da semana em que o barbeiro trabalha, em ordem de
// calendário. Sem barbeiro (conjunto vazio) não há dias para mostrar.
func NextBookableDays(today time.Time, workingDays map[time.Weekday]bool) []DaySlot {
	days := []DaySlot{}
	if len(workingDays) == 0 {
		return days
	}

	for i := 0; i < 7; i++ {
		date := today.AddDate(0, 0, i)
		if !workingDays[date.Weekday()] {
			continue
		}

		var label string
		switch i {
		case 0:
			label = "Hoje"
		case 1:
			label = "Amanhã"
		default:
			label = fmt.Sprintf(
				"%s, %d de %s",
				weekdayNames[int(date.Weekday())],
				date.Day(),
				monthNames[int(date.Month())-1],
			)
		}

		days = append(days, DaySlot{Label: label, Date: date})
	}

	return days
}
