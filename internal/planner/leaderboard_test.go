package planner

import (
	"math"
	"testing"
	"time"

	"github.com/mmynk/studyflow/internal/models"
)

func TestLeaderboard(t *testing.T) {
	tests := []struct {
		name         string
		profile      *models.Profile
		friends      []models.Friend
		wantNames    []string
		wantRanks    []int
		validateFunc func(t *testing.T, entries []models.LeaderboardEntry)
	}{
		{
			name:      "no profile and no friends",
			wantNames: []string{},
			wantRanks: []int{},
		},
		{
			name:      "profile minutes round to hours",
			profile:   &models.Profile{Username: "asha", TotalStudyMinutes: 90},
			wantNames: []string{"Me"},
			wantRanks: []int{1},
			validateFunc: func(t *testing.T, entries []models.LeaderboardEntry) {
				if entries[0].Hours != 2 {
					t.Errorf("Me hours = %d, want 2", entries[0].Hours)
				}
				if !entries[0].IsMe {
					t.Error("expected IsMe on profile entry")
				}
			},
		},
		{
			name:    "sorted by hours descending",
			profile: &models.Profile{Username: "asha", TotalStudyMinutes: 20 * 60},
			friends: []models.Friend{
				{ID: "1", Username: "ravi", TotalHours: 10},
				{ID: "2", Username: "meera", TotalHours: 40},
			},
			wantNames: []string{"meera", "Me", "ravi"},
			wantRanks: []int{1, 2, 3},
		},
		{
			name:    "ties share a rank and keep me first",
			profile: &models.Profile{Username: "asha", TotalStudyMinutes: 30 * 60},
			friends: []models.Friend{
				{ID: "1", Username: "ravi", TotalHours: 30},
				{ID: "2", Username: "meera", TotalHours: 50},
				{ID: "3", Username: "dev", TotalHours: 5},
			},
			wantNames: []string{"meera", "Me", "ravi", "dev"},
			wantRanks: []int{1, 2, 2, 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := Leaderboard(tt.profile, tt.friends)
			if len(entries) != len(tt.wantNames) {
				t.Fatalf("got %d entries, want %d", len(entries), len(tt.wantNames))
			}
			for i, e := range entries {
				if e.Name != tt.wantNames[i] {
					t.Errorf("entry %d name = %s, want %s", i, e.Name, tt.wantNames[i])
				}
				if e.Rank != tt.wantRanks[i] {
					t.Errorf("entry %d rank = %d, want %d", i, e.Rank, tt.wantRanks[i])
				}
			}
			if tt.validateFunc != nil {
				tt.validateFunc(t, entries)
			}
		})
	}
}

func TestStartOfWeek(t *testing.T) {
	// Wednesday afternoon.
	now := time.Date(2025, time.March, 5, 15, 30, 0, 0, time.UTC)
	want := time.Date(2025, time.March, 2, 0, 0, 0, 0, time.UTC)
	if got := StartOfWeek(now); !got.Equal(want) {
		t.Errorf("StartOfWeek = %v, want %v", got, want)
	}

	// Sunday is its own week start.
	sunday := time.Date(2025, time.March, 2, 23, 0, 0, 0, time.UTC)
	if got := StartOfWeek(sunday); !got.Equal(want) {
		t.Errorf("StartOfWeek(sunday) = %v, want %v", got, want)
	}
}

func TestWeeklyStudyMinutes(t *testing.T) {
	now := time.Date(2025, time.March, 5, 15, 30, 0, 0, time.UTC)
	logs := []models.StudyLog{
		{ID: "a", Date: "2025-03-01", DurationMinutes: 100}, // last Saturday
		{ID: "b", Date: "2025-03-02", DurationMinutes: 25},  // Sunday, counts
		{ID: "c", Date: "2025-03-05", DurationMinutes: 50},
		{ID: "d", Date: "garbage", DurationMinutes: 999},
	}

	if got := WeeklyStudyMinutes(logs, now); got != 75 {
		t.Errorf("WeeklyStudyMinutes = %d, want 75", got)
	}
	if got := WeeklyStudyMinutes(nil, now); got != 0 {
		t.Errorf("WeeklyStudyMinutes(nil) = %d, want 0", got)
	}
}

func TestTotalMinutes(t *testing.T) {
	durations := []int{25, 50, 5, 90, 1}
	var logs []models.StudyLog
	sum := 0
	for i, d := range durations {
		logs = append(logs, models.StudyLog{ID: string(rune('a' + i)), DurationMinutes: d})
		sum += d
		if got := TotalMinutes(logs); got != sum {
			t.Errorf("after %d logs TotalMinutes = %d, want %d", i+1, got, sum)
		}
	}
}

func TestGoalProgress(t *testing.T) {
	tests := []struct {
		minutes, goal int
		want          float64
	}{
		{0, WeeklyGoalMinutes, 0},
		{450, WeeklyGoalMinutes, 50},
		{900, WeeklyGoalMinutes, 100},
		{2000, WeeklyGoalMinutes, 100},
		{10, 0, 100},
	}
	for _, tt := range tests {
		if got := GoalProgress(tt.minutes, tt.goal); math.Abs(got-tt.want) > 0.001 {
			t.Errorf("GoalProgress(%d, %d) = %v, want %v", tt.minutes, tt.goal, got, tt.want)
		}
	}
}
