package domain

import (
	"testing"
	"time"
)

func TestParseDayKey(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid key", input: "2025-06-01"},
		{name: "leap day", input: "2024-02-29"},
		{name: "empty", input: "", wantErr: true},
		{name: "missing padding", input: "2025-6-1", wantErr: true},
		{name: "not a date", input: "yesterday", wantErr: true},
		{name: "impossible day", input: "2025-02-30", wantErr: true},
		{name: "trailing garbage", input: "2025-06-01T00:00:00Z", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDayKey(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseDayKey(%q) succeeded, want error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDayKey(%q) failed: %v", tt.input, err)
			}
			if got.String() != tt.input {
				t.Errorf("ParseDayKey(%q) = %q", tt.input, got)
			}
		})
	}
}

func TestDayKeyOf(t *testing.T) {
	at := time.Date(2025, 6, 1, 23, 59, 59, 0, time.Local)
	if got := DayKeyOf(at); got != "2025-06-01" {
		t.Errorf("DayKeyOf = %q, want 2025-06-01", got)
	}
}

func TestClampDayKey(t *testing.T) {
	today := DayKey("2025-06-15")

	tests := []struct {
		name      string
		requested DayKey
		want      DayKey
	}{
		{name: "future clamps to today", requested: "2025-06-16", want: today},
		{name: "far future clamps to today", requested: "2030-01-01", want: today},
		{name: "today stays", requested: today, want: today},
		{name: "past stays", requested: "2025-06-01", want: "2025-06-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampDayKey(tt.requested, today); got != tt.want {
				t.Errorf("ClampDayKey(%q, %q) = %q, want %q", tt.requested, today, got, tt.want)
			}
		})
	}
}

func TestDayKeyOrdering(t *testing.T) {
	if !DayKey("2025-07-01").After("2025-06-30") {
		t.Error("month boundary ordering broken")
	}
	if !DayKey("2024-12-31").Before("2025-01-01") {
		t.Error("year boundary ordering broken")
	}
}
