package grammar

import (
	"testing"
)

func TestScanTimeItem(t *testing.T) {
	tests := []struct {
		name string
		line string
		want TimeItem
	}{
		{
			name: "minimal event",
			line: "- [2024] Launch",
			want: TimeItem{Marker: '-', Start: "2024", Content: "Launch"},
		},
		{
			name: "range with all fields",
			line: "- [2024-01-05~2024-02-01] #red {Team A} Sprint | planning [[Notes]]",
			want: TimeItem{
				Marker: '-', Start: "2024-01-05", Separator: "~", End: "2024-02-01",
				Color: "red", Group: "Team A", Content: "Sprint",
				Description: "planning [[Notes]]", Link: "Notes",
			},
		},
		{
			name: "spaces around the separator",
			line: "@ [ -500 ~ -100 ] #blue Classical era",
			want: TimeItem{Marker: '@', Start: "-500", Separator: "~", End: "-100", Color: "blue", Content: "Classical era"},
		},
		{
			name: "open range",
			line: "- [2020~] Ongoing",
			want: TimeItem{Marker: '-', Start: "2020", Separator: "~", Content: "Ongoing"},
		},
		{
			name: "missing start",
			line: "- [~2030] Until",
			want: TimeItem{Marker: '-', Separator: "~", End: "2030", Content: "Until"},
		},
		{
			name: "empty brackets and content",
			line: "- []",
			want: TimeItem{Marker: '-'},
		},
		{
			name: "wrong separator",
			line: "- [2020/2021] x",
			want: TimeItem{Marker: '-', Start: "2020", Separator: "/", End: "2021", Content: "x"},
		},
		{
			name: "no separator between dates",
			line: "- [2020 2021] x",
			want: TimeItem{Marker: '-', Start: "2020", End: "2021", Content: "x"},
		},
		{
			name: "point with time",
			line: "* [2024-03-15T09:30] Meeting",
			want: TimeItem{Marker: '*', Start: "2024-03-15T09:30", Content: "Meeting"},
		},
		{
			name: "pipe inside link stays in content",
			line: "- [2024] [[Page|Alias]] text | desc",
			want: TimeItem{Marker: '-', Start: "2024", Content: "[[Page|Alias]] text", Description: "desc", Link: "Page"},
		},
		{
			name: "link from description",
			line: "- [2024] text | see [[Other]]",
			want: TimeItem{Marker: '-', Start: "2024", Content: "text", Description: "see [[Other]]", Link: "Other"},
		},
		{
			name: "hash without name is content",
			line: "- [2024] # not a color",
			want: TimeItem{Marker: '-', Start: "2024", Content: "# not a color"},
		},
		{
			name: "empty group braces are content",
			line: "- [2024] {} x",
			want: TimeItem{Marker: '-', Start: "2024", Content: "{} x"},
		},
		{
			name: "unknown color name is still scanned",
			line: "- [2024] #teal x",
			want: TimeItem{Marker: '-', Start: "2024", Color: "teal", Content: "x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ScanTimeItem(tt.line)
			if !ok {
				t.Fatalf("ScanTimeItem(%q) failed", tt.line)
			}
			if got != tt.want {
				t.Errorf("ScanTimeItem(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestScanTimeItemRejects(t *testing.T) {
	lines := []string{
		"- 2024 no brackets",
		"- [2024 unclosed",
		"- [2024~2025~2026] x",
		"- [2024 ~ soon] x",
		"= [2024] marker",
		"",
	}

	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			if got, ok := ScanTimeItem(line); ok {
				t.Errorf("ScanTimeItem(%q) = %+v, want failure", line, got)
			}
		})
	}
}

func TestSplitDescription(t *testing.T) {
	tests := []struct {
		text        string
		content     string
		description string
	}{
		{"plain", "plain", ""},
		{"a | b", "a", "b"},
		{"a | b | c", "a", "b | c"},
		{"[[x|y]] | z", "[[x|y]]", "z"},
		{"[[x|y]]", "[[x|y]]", ""},
		{"| only", "", "only"},
		{"Zürich | Ünïcödé", "Zürich", "Ünïcödé"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			content, description := SplitDescription(tt.text)
			if content != tt.content || description != tt.description {
				t.Errorf("SplitDescription(%q) = (%q, %q), want (%q, %q)",
					tt.text, content, description, tt.content, tt.description)
			}
		})
	}
}

func TestExtractLink(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"", ""},
		{"no link", ""},
		{"see [[Page]]", "Page"},
		{"see [[Page|Shown]]", "Page"},
		{"[[First]] and [[Second]]", "First"},
		{"[[unclosed", ""},
	}

	for _, tt := range tests {
		if got := ExtractLink(tt.text); got != tt.want {
			t.Errorf("ExtractLink(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}
