package schedule

import (
	"strings"
	"time"
)

// View define las vistas de la agenda.
// @Enum dia, semana, mes
type View string

const (
	ViewDay   View = "dia"
	ViewWeek  View = "semana"
	ViewMonth View = "mes"
)

// ParseView acepta las variantes con acento que usa la consola
// (Día/Semana/Mes) además de los valores canónicos.
func ParseView(s string) (View, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dia", "día":
		return ViewDay, true
	case "semana", "":
		return ViewWeek, true
	case "mes":
		return ViewMonth, true
	default:
		return "", false
	}
}

// HourHeight es la altura en píxeles de una fila de hora en la grilla.
const HourHeight = 96

// blockInset recorta la altura del bloque para que no pegue con el siguiente.
const blockInset = 8

// DaysToShow devuelve las fechas visibles para (view, anchor).
// Función pura: día = solo anchor; semana = los 7 días de la semana que
// contiene anchor empezando en domingo; mes = todos los días del mes de anchor.
func DaysToShow(view View, anchor time.Time) []time.Time {
	anchor = dateOnly(anchor)

	switch view {
	case ViewDay:
		return []time.Time{anchor}

	case ViewWeek:
		start := anchor.AddDate(0, 0, -int(anchor.Weekday()))
		days := make([]time.Time, 7)
		for i := range days {
			days[i] = start.AddDate(0, 0, i)
		}
		return days

	case ViewMonth:
		start := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
		days := make([]time.Time, 0, 31)
		for d := start; d.Month() == start.Month(); d = d.AddDate(0, 0, 1) {
			days = append(days, d)
		}
		return days
	}

	return nil
}

// Navigate corre el ancla ±1 día, ±7 días o ±1 mes según la vista.
func Navigate(view View, anchor time.Time, direction int) time.Time {
	switch view {
	case ViewDay:
		return anchor.AddDate(0, 0, direction)
	case ViewWeek:
		return anchor.AddDate(0, 0, direction*7)
	case ViewMonth:
		return anchor.AddDate(0, direction, 0)
	}
	return anchor
}

// PixelOffset mapea la hora de inicio a un offset vertical en la grilla:
// horas*96 + minutos*96/60. Mapeo lineal directo, sin resolución de solapes.
func PixelOffset(start time.Time) float64 {
	return float64(start.Hour())*HourHeight + float64(start.Minute())*HourHeight/60
}

// BlockHeight convierte la duración en la altura del bloque menos el inset.
func BlockHeight(durationMinutes int) float64 {
	return float64(durationMinutes)*HourHeight/60 - blockInset
}

// LeadingBlanks devuelve cuántas celdas vacías lleva la grilla mensual antes
// del día 1 (índice del día de semana del primer día del mes, domingo = 0).
func LeadingBlanks(anchor time.Time) int {
	first := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
	return int(first.Weekday())
}

// SameDay compara solo la fecha (la grilla agrupa citas por día calendario).
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
