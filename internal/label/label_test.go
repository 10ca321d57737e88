package label

import (
	"testing"

	"github.com/msto63/chronos/internal/calendar"
)

func at(t *testing.T, s string) calendar.Instant {
	t.Helper()
	i, err := calendar.ToUTC(s)
	if err != nil {
		t.Fatalf("ToUTC(%q) error = %v", s, err)
	}
	return i
}

func TestDate(t *testing.T) {
	tests := []struct {
		locale string
		date   string
		want   string
	}{
		{"en", "2024", "2024"},
		{"en", "2024-02", "Feb 2024"},
		{"en", "2024-02-02", "Feb 2, 2024"},
		{"en", "2024-02-02T15:04", "Feb 2, 2024, 3:04 PM"},
		{"en-GB", "2024-02", "Feb 2024"},
		{"de", "2024-03-15", "15. März 2024"},
		{"de-AT", "2024-03-15T09:30", "15. März 2024, 09:30"},
		{"ja", "2024-02", "2024年2月"},
		{"ko", "2024-02-02", "2024년 2월 2일"},
		{"xx", "2024-02", "Feb 2024"},
		{"en", "-500", "-500"},
		{"de", "-500-03", "März -500"},
	}

	for _, tt := range tests {
		t.Run(tt.locale+"/"+tt.date, func(t *testing.T) {
			f := New(tt.locale, true)
			if got := f.Date(at(t, tt.date)); got != tt.want {
				t.Errorf("Date(%s) = %q, want %q", tt.date, got, tt.want)
			}
		})
	}
}

func TestRange(t *testing.T) {
	tests := []struct {
		locale string
		start  string
		end    string
		want   string
	}{
		{"en", "2020", "2024-06-15", "Jan 1, 2020 - Jun 15, 2024"},
		{"en", "2024-02", "2024-03-03", "Feb 2024 - Mar 3, 2024"},
		{"en", "2024-02-02", "2024-02-10", "Feb 2024 2 - 10"},
		{"ja", "2024-02-02", "2024-02-10", "2024年2月 2 - 10日"},
		{"ko", "2024-02-02", "2024-02-10", "2024년 2월 2 - 10일"},
	}

	for _, tt := range tests {
		t.Run(tt.locale+"/"+tt.start, func(t *testing.T) {
			f := New(tt.locale, true)
			end := at(t, tt.end)
			if got := f.Range(at(t, tt.start), &end); got != tt.want {
				t.Errorf("Range(%s, %s) = %q, want %q", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestRangeWithoutEnd(t *testing.T) {
	f := New("en", true)
	if got := f.Range(at(t, "2024-05"), nil); got != "May 2024" {
		t.Errorf("Range(nil end) = %q, want May 2024", got)
	}
}
