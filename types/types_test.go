package types

import (
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"
)

func TestTimestampUnmarshal(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
		zero bool
	}{
		{in: `"2025-06-09T10:30:00Z"`, want: time.Date(2025, 6, 9, 10, 30, 0, 0, time.UTC)},
		{in: `"2025-06-09T10:30:00.123456"`, want: time.Date(2025, 6, 9, 10, 30, 0, 123456000, time.UTC)},
		{in: `"2025-06-09T10:30:00"`, want: time.Date(2025, 6, 9, 10, 30, 0, 0, time.UTC)},
		{in: `"2025-06-09 10:30:00"`, want: time.Date(2025, 6, 9, 10, 30, 0, 0, time.UTC)},
		{in: `"2025-06-09"`, want: time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)},
		{in: `null`, zero: true},
		{in: `""`, zero: true},
	}
	for _, tt := range tests {
		var ts Timestamp
		if err := json.Unmarshal([]byte(tt.in), &ts); err != nil {
			t.Fatalf("Unmarshal(%s) failed: %v", tt.in, err)
		}
		if tt.zero {
			if !ts.IsZero() {
				t.Errorf("Unmarshal(%s) = %v, want zero", tt.in, ts.Time)
			}
			continue
		}
		if !ts.Equal(tt.want) {
			t.Errorf("Unmarshal(%s) = %v, want %v", tt.in, ts.Time, tt.want)
		}
	}
}

func TestTimestampRejectsGarbage(t *testing.T) {
	var ts Timestamp
	if err := json.Unmarshal([]byte(`"yesterday"`), &ts); err == nil {
		t.Fatal("expected error for unrecognized format")
	}
}

func TestTimestampMarshalZeroIsNull(t *testing.T) {
	b, err := json.Marshal(Timestamp{})
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if string(b) != "null" {
		t.Errorf("Marshal(zero) = %s, want null", b)
	}
}

func TestWrap(t *testing.T) {
	if Wrap(ErrFetch, "tasks load", nil) != nil {
		t.Fatal("Wrap(nil) should be nil")
	}

	err := Wrap(ErrFetch, "tasks load", io.ErrUnexpectedEOF)
	if !errors.Is(err, ErrFetch) {
		t.Errorf("errors.Is(err, ErrFetch) = false for %v", err)
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("wrapped cause lost: %v", err)
	}
	if errors.Is(err, ErrMutation) {
		t.Errorf("errors.Is(err, ErrMutation) = true for %v", err)
	}

	if again := Wrap(ErrFetch, "dashboard", err); again != err {
		t.Errorf("Wrap() rewrapped an error of the same kind: %v", again)
	}

	nested := Wrap(ErrMutation, "tasks update", &OpError{Kind: ErrNetwork, Op: "PUT /x", Err: io.EOF})
	if !errors.Is(nested, ErrMutation) || !errors.Is(nested, ErrNetwork) {
		t.Errorf("nested kinds lost: %v", nested)
	}
}

func TestParseMood(t *testing.T) {
	tests := []struct {
		in   string
		want MoodType
		ok   bool
	}{
		{"happy", MoodHappy, true},
		{"very-happy", MoodVeryHappy, true},
		{" Very Sad ", MoodVerySad, true},
		{"NEUTRAL", MoodNeutral, true},
		{"ecstatic", "ECSTATIC", false},
	}
	for _, tt := range tests {
		got, ok := ParseMood(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseMood(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
	if MoodVeryHappy.Value() != 5 || MoodVerySad.Value() != 1 || MoodType("x").Value() != 0 {
		t.Error("unexpected mood scale")
	}
}

func TestTaskRequestCarriesAllFields(t *testing.T) {
	task := Task{ID: 4, Title: "Buy milk", Description: "2L", DueDate: "2025-06-10", DayOfWeek: "Lunes", Type: "Compras"}
	req := task.Request()
	if req.Title != "Buy milk" || req.Description != "2L" || req.DueDate != "2025-06-10" || req.DayOfWeek != "Lunes" || req.Type != "Compras" {
		t.Errorf("Request() = %+v", req)
	}
}
