package calendar

import (
	"encoding/json"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/chronos/foundation/core/error"
)

func TestPad(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"2024", "2024-01-01T00:00:00Z"},
		{"2024-03", "2024-03-01T00:00:00Z"},
		{"2024-03-15", "2024-03-15T00:00:00Z"},
		{"2024-03-15T09", "2024-03-15T09:00:00Z"},
		{"2024-03-15T09:30", "2024-03-15T09:30:00Z"},
		{"2024-03-15T09:30:45", "2024-03-15T09:30:45Z"},
		{"2024-03-15T09:30:45.123Z", "2024-03-15T09:30:45Z"},
		{"44", "0044-01-01T00:00:00Z"},
		{"-500", "-0500-01-01T00:00:00Z"},
		{"-10000", "-10000-01-01T00:00:00Z"},
		{"0", "0000-01-01T00:00:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Pad(tt.input)
			if err != nil {
				t.Fatalf("Pad(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Pad(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPadInvalid(t *testing.T) {
	for _, input := range []string{"", "abc", "2024-3", "2024/03/01", "2024-03-01 10:00"} {
		t.Run(input, func(t *testing.T) {
			_, err := Pad(input)
			if err == nil {
				t.Fatalf("Pad(%q) error = nil, want error", input)
			}
			if !mdwerror.HasCode(err, mdwerror.CodeDateFormat) {
				t.Errorf("Pad(%q) code = %v, want %v", input, mdwerror.GetCode(err), mdwerror.CodeDateFormat)
			}
			if want := "Invalid date format: " + input; err.Error() != want {
				t.Errorf("Pad(%q) error = %q, want %q", input, err.Error(), want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		input    string
		wantCode mdwerror.Code
		wantMsg  string
	}{
		{"2024-02-29", "", ""},
		{"-44-03-15", "", ""},
		{"2024-12-31T23:59:59", "", ""},
		{"2024-13", mdwerror.CodeDateRange, "Invalid month: 13. Must be between 01-12"},
		{"2024-00", mdwerror.CodeDateRange, "Invalid month: 00. Must be between 01-12"},
		{"2024-01-32", mdwerror.CodeDateRange, "Invalid day: 32. Must be between 01-31"},
		{"2024-01-01T24", mdwerror.CodeDateRange, "Invalid hour: 24. Must be between 00-23"},
		{"2024-01-01T10:60", mdwerror.CodeDateRange, "Invalid minute: 60. Must be between 00-59"},
		{"2024-01-01T10:10:61", mdwerror.CodeDateRange, "Invalid second: 61. Must be between 00-59"},
		{"2024-02-30", mdwerror.CodeCalendarInfeasible, "Invalid date: 2024-02-30. Make sure you have correct month, day, etc."},
		{"2023-02-29", mdwerror.CodeCalendarInfeasible, "Invalid date: 2023-02-29. Make sure you have correct month, day, etc."},
		{"2024-04-31", mdwerror.CodeCalendarInfeasible, "Invalid date: 2024-04-31. Make sure you have correct month, day, etc."},
		{"x2024", mdwerror.CodeDateFormat, "Invalid date format: x2024"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := Validate(tt.input)
			if tt.wantCode == "" {
				if err != nil {
					t.Errorf("Validate(%q) error = %v, want nil", tt.input, err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate(%q) error = nil, want %v", tt.input, tt.wantCode)
			}
			if got := mdwerror.GetCode(err); got != tt.wantCode {
				t.Errorf("Validate(%q) code = %v, want %v", tt.input, got, tt.wantCode)
			}
			if err.Error() != tt.wantMsg {
				t.Errorf("Validate(%q) = %q, want %q", tt.input, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestToUTC(t *testing.T) {
	tests := []struct {
		input    string
		wantYear int
		want     string
	}{
		{"2024", 2024, "2024-01-01T00:00:00Z"},
		{"99", 99, "0099-01-01T00:00:00Z"},
		{"0", 0, "0000-01-01T00:00:00Z"},
		{"-1", -1, "-0001-01-01T00:00:00Z"},
		{"-10000", -10000, "-10000-01-01T00:00:00Z"},
		{"250000-06-01", 250000, "250000-06-01T00:00:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ToUTC(tt.input)
			if err != nil {
				t.Fatalf("ToUTC(%q) error = %v", tt.input, err)
			}
			if got.Year() != tt.wantYear {
				t.Errorf("ToUTC(%q).Year() = %d, want %d", tt.input, got.Year(), tt.wantYear)
			}
			if got.String() != tt.want {
				t.Errorf("ToUTC(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestForceYear(t *testing.T) {
	rolled := time.Date(2024, 13, 1, 0, 0, 0, 0, time.UTC)
	got := forceYear(rolled, 2024)
	if got.Year() != 2024 {
		t.Errorf("forceYear() year = %d, want 2024", got.Year())
	}
}

func TestCheckOrder(t *testing.T) {
	err := CheckOrder("2024-01-05", "2024-01-01")
	if err == nil {
		t.Fatal("CheckOrder() error = nil, want chronology error")
	}
	if mdwerror.GetCode(err) != mdwerror.CodeChronology {
		t.Errorf("CheckOrder() code = %v, want %v", mdwerror.GetCode(err), mdwerror.CodeChronology)
	}
	want := "Start date (2024-01-05) is after end date (2024-01-01)."
	if err.Error() != want {
		t.Errorf("CheckOrder() = %q, want %q", err.Error(), want)
	}

	if err := CheckOrder("2024", "2024-01-01"); err != nil {
		t.Errorf("CheckOrder() equal instants error = %v, want nil", err)
	}
	if err := CheckOrder("-500", "200"); err != nil {
		t.Errorf("CheckOrder() BCE start error = %v, want nil", err)
	}
}

func TestToday(t *testing.T) {
	now := time.Date(2026, 10, 18, 23, 30, 0, 0, time.FixedZone("CEST", 2*3600))
	if got := Today(now); got != "2026-10-18" {
		t.Errorf("Today() = %q, want 2026-10-18", got)
	}
}

func TestInstantEncoding(t *testing.T) {
	at, err := ToUTC("-753-04-21")
	if err != nil {
		t.Fatalf("ToUTC() error = %v", err)
	}

	data, err := json.Marshal(at)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if string(data) != `"-0753-04-21T00:00:00Z"` {
		t.Errorf("json.Marshal() = %s, want \"-0753-04-21T00:00:00Z\"", data)
	}

	var back Instant
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if !back.Equal(at) {
		t.Errorf("json round trip = %s, want %s", back, at)
	}

	out, err := yaml.Marshal(map[string]Instant{"start": at})
	if err != nil {
		t.Fatalf("yaml.Marshal() error = %v", err)
	}
	var decoded map[string]Instant
	if err := yaml.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v", err)
	}
	if !decoded["start"].Equal(at) {
		t.Errorf("yaml round trip = %s, want %s", decoded["start"], at)
	}
}
