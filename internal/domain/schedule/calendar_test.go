package schedule

import (
	"testing"
	"time"
)

func TestParseView(t *testing.T) {
	cases := []struct {
		in   string
		want View
		ok   bool
	}{
		{"dia", ViewDay, true},
		{"Día", ViewDay, true},
		{"semana", ViewWeek, true},
		{"", ViewWeek, true},
		{"mes", ViewMonth, true},
		{"MES", ViewMonth, true},
		{"año", "", false},
	}
	for _, c := range cases {
		got, ok := ParseView(c.in)
		if ok != c.ok || got != c.want {
			t.Errorf("ParseView(%q) = (%q, %v), want (%q, %v)", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestDaysToShow_Day(t *testing.T) {
	anchor := time.Date(2025, 3, 12, 15, 30, 0, 0, time.UTC)
	days := DaysToShow(ViewDay, anchor)

	if len(days) != 1 {
		t.Fatalf("expected 1 day, got %d", len(days))
	}
	if !SameDay(days[0], anchor) {
		t.Errorf("expected %v, got %v", anchor, days[0])
	}
	if days[0].Hour() != 0 || days[0].Minute() != 0 {
		t.Errorf("expected midnight, got %v", days[0])
	}
}

func TestDaysToShow_Week(t *testing.T) {
	// Miércoles 12 de marzo de 2025
	anchor := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	days := DaysToShow(ViewWeek, anchor)

	if len(days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(days))
	}
	if days[0].Weekday() != time.Sunday {
		t.Errorf("week should start on Sunday, got %v", days[0].Weekday())
	}
	if days[0].Day() != 9 {
		t.Errorf("expected week to start on March 9, got %v", days[0])
	}
	for i := 1; i < 7; i++ {
		if !days[i].Equal(days[i-1].AddDate(0, 0, 1)) {
			t.Errorf("days not consecutive at index %d: %v -> %v", i, days[i-1], days[i])
		}
	}
}

func TestDaysToShow_Month(t *testing.T) {
	anchor := time.Date(2025, 2, 14, 0, 0, 0, 0, time.UTC)
	days := DaysToShow(ViewMonth, anchor)

	// Febrero 2025 tiene 28 días
	if len(days) != 28 {
		t.Fatalf("expected 28 days, got %d", len(days))
	}
	if days[0].Day() != 1 {
		t.Errorf("month should start on the 1st, got %v", days[0])
	}
	for _, d := range days {
		if d.Month() != time.February || d.Year() != 2025 {
			t.Errorf("day outside anchor month: %v", d)
		}
	}
}

func TestNavigate_RoundTrip(t *testing.T) {
	anchor := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)

	for _, view := range []View{ViewDay, ViewWeek, ViewMonth} {
		forward := Navigate(view, anchor, 1)
		back := Navigate(view, forward, -1)
		if !back.Equal(anchor) {
			t.Errorf("%s: navigate +1/-1 should round-trip, got %v", view, back)
		}
	}
}

func TestNavigate_Week(t *testing.T) {
	anchor := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	got := Navigate(ViewWeek, anchor, 2)
	want := time.Date(2025, 3, 26, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestPixelOffset(t *testing.T) {
	cases := []struct {
		hour, min int
		want      float64
	}{
		{0, 0, 0},
		{8, 0, 768},
		{9, 30, 912},
		{23, 45, 2280},
	}
	for _, c := range cases {
		start := time.Date(2025, 3, 12, c.hour, c.min, 0, 0, time.UTC)
		if got := PixelOffset(start); got != c.want {
			t.Errorf("PixelOffset(%02d:%02d) = %v, want %v", c.hour, c.min, got, c.want)
		}
	}
}

func TestBlockHeight(t *testing.T) {
	cases := []struct {
		minutes int
		want    float64
	}{
		{30, 40},
		{20, 24},
		{120, 184},
		{39, 54.4},
	}
	for _, c := range cases {
		if got := BlockHeight(c.minutes); got != c.want {
			t.Errorf("BlockHeight(%d) = %v, want %v", c.minutes, got, c.want)
		}
	}
}

func TestLeadingBlanks(t *testing.T) {
	// Marzo 2025 empieza en sábado (índice 6)
	if got := LeadingBlanks(time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)); got != 6 {
		t.Errorf("expected 6 leading blanks for March 2025, got %d", got)
	}
	// Junio 2025 empieza en domingo (índice 0)
	if got := LeadingBlanks(time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)); got != 0 {
		t.Errorf("expected 0 leading blanks for June 2025, got %d", got)
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2025, 3, 12, 23, 59, 0, 0, time.UTC)
	b := time.Date(2025, 3, 12, 0, 1, 0, 0, time.UTC)
	c := time.Date(2025, 3, 13, 0, 1, 0, 0, time.UTC)

	if !SameDay(a, b) {
		t.Error("same calendar day should match regardless of hour")
	}
	if SameDay(a, c) {
		t.Error("different days should not match")
	}
}
