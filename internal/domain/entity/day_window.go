package entity

import "time"

// DayWindow is the half-open interval [Start, End) of one calendar day.
type DayWindow struct {
	Start time.Time
	End   time.Time
}

// DayWindowAt returns the calendar day containing t, in t's location.
func DayWindowAt(t time.Time) DayWindow {
	y, m, d := t.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	return DayWindow{
		Start: start,
		End:   start.AddDate(0, 0, 1),
	}
}

// Slots lists the bookable start times of the window between startHour
// and endHour, every step.
func (w DayWindow) Slots(startHour, endHour int, step time.Duration) []time.Time {
	slots := []time.Time{}
	if step <= 0 {
		return slots
	}
	y, m, d := w.Start.Date()
	loc := w.Start.Location()
	first := time.Date(y, m, d, startHour, 0, 0, 0, loc)
	last := time.Date(y, m, d, endHour, 0, 0, 0, loc)
	for t := first; t.Before(last); t = t.Add(step) {
		slots = append(slots, t)
	}
	return slots
}

// LocalWallClock keeps the wall clock of t and moves it to time.Local.
// TIMESTAMP columns hold local wall clocks and the driver scans them tagged as UTC.
func LocalWallClock(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	hour, minute, sec := t.Clock()
	return time.Date(y, m, d, hour, minute, sec, t.Nanosecond(), time.Local)
}
