package transform

import (
	"testing"
	"time"

	"folio/internal/models"
)

func TestParseAchievementDate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   time.Time
		wantOK bool
	}{
		{"well formed", "June, 2024", time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC), true},
		{"january", "January, 2023", time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC), true},
		{"december", "December, 1999", time.Date(1999, time.December, 1, 0, 0, 0, 0, time.UTC), true},
		{"abbreviated month", "Jun, 2024", time.Time{}, false},
		{"lowercase month", "june, 2024", time.Time{}, false},
		{"missing space", "June,2024", time.Time{}, false},
		{"missing comma", "June 2024", time.Time{}, false},
		{"non numeric year", "June, twenty", time.Time{}, false},
		{"empty", "", time.Time{}, false},
		{"extra part", "June, 2024, 1", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseAchievementDate(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ParseAchievementDate(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseAchievementDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func achievementsDated(dates ...string) []models.Achievement {
	out := make([]models.Achievement, len(dates))
	for i, d := range dates {
		out[i] = models.Achievement{ID: d, Date: d}
	}
	return out
}

func dates(as []models.Achievement) []string {
	out := make([]string, len(as))
	for i, a := range as {
		out[i] = a.Date
	}
	return out
}

func TestSortAchievements(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{
			name:  "newest first",
			input: []string{"January, 2023", "June, 2024", "March, 2024"},
			want:  []string{"June, 2024", "March, 2024", "January, 2023"},
		},
		{
			name:  "malformed dates last in original order",
			input: []string{"soon", "March, 2020", "??", "May, 2021"},
			want:  []string{"May, 2021", "March, 2020", "soon", "??"},
		},
		{
			name:  "equal dates keep order",
			input: []string{"May, 2021", "May, 2021"},
			want:  []string{"May, 2021", "May, 2021"},
		},
		{
			name:  "empty",
			input: nil,
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dates(SortAchievements(achievementsDated(tt.input...)))
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("got %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestSortAchievementsDoesNotMutateInput(t *testing.T) {
	in := achievementsDated("January, 2023", "June, 2024")
	SortAchievements(in)
	if in[0].Date != "January, 2023" {
		t.Errorf("input reordered: %v", dates(in))
	}
}

func TestSortAchievementsStableForEqualDates(t *testing.T) {
	in := []models.Achievement{
		{ID: "a", Date: "May, 2021"},
		{ID: "b", Date: "May, 2021"},
		{ID: "c", Date: "May, 2021"},
	}
	got := SortAchievements(in)
	for i, want := range []string{"a", "b", "c"} {
		if got[i].ID != want {
			t.Fatalf("position %d: got %q, want %q", i, got[i].ID, want)
		}
	}
}

func TestMonthYear(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"2021-01-15", "January 2021"},
		{"2021-03", "March 2021"},
		{"2019-07-01T00:00:00Z", "July 2019"},
		{"August 2020", "August 2020"},
		{"not a date", "not a date"},
	}
	for _, tt := range tests {
		if got := MonthYear(tt.input); got != tt.want {
			t.Errorf("MonthYear(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
