package utils

import (
	"testing"
	"time"
)

func TestParseMonth(t *testing.T) {
	got, err := ParseMonth("2026-08")
	if err != nil {
		t.Fatalf("ParseMonth: %v", err)
	}
	want := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	// A full date collapses to the first of its month.
	got, err = ParseMonth("2026-08-15")
	if err != nil {
		t.Fatalf("ParseMonth: %v", err)
	}
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	if _, err := ParseMonth("August 2026"); err == nil {
		t.Fatal("expected error for unparseable month")
	}
}

func TestIsWeekdayName(t *testing.T) {
	for _, day := range []string{"Sunday", "Monday", "Saturday"} {
		if !IsWeekdayName(day) {
			t.Fatalf("expected %q to be a weekday name", day)
		}
	}
	for _, not := range []string{"sunday", "Funday", ""} {
		if IsWeekdayName(not) {
			t.Fatalf("expected %q to be rejected", not)
		}
	}
}

func TestFloat64Ptr(t *testing.T) {
	p := Float64Ptr(0.4)
	if p == nil || *p != 0.4 {
		t.Fatalf("expected pointer to 0.4, got %v", p)
	}
}
