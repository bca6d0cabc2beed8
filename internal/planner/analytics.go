package planner

import (
	"math"
	"time"

	"github.com/mmynk/studyflow/internal/models"
)

// WeeklyGoalMinutes is the fixed weekly study goal (15 hours).
const WeeklyGoalMinutes = 15 * 60

// StartOfWeek returns Sunday 00:00 of the week containing now, in now's location.
func StartOfWeek(now time.Time) time.Time {
	y, m, d := now.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	return midnight.AddDate(0, 0, -int(now.Weekday()))
}

// WeeklyStudyMinutes sums the durations of logs dated in the current week.
// Log dates are calendar days, interpreted in now's location.
// Logs with an unparseable date are ignored.
func WeeklyStudyMinutes(logs []models.StudyLog, now time.Time) int {
	start := StartOfWeek(now)
	total := 0
	for _, log := range logs {
		day, err := time.ParseInLocation(models.DateLayout, log.Date, now.Location())
		if err != nil {
			continue
		}
		if !day.Before(start) {
			total += log.DurationMinutes
		}
	}
	return total
}

// TotalMinutes sums the durations of all logs.
func TotalMinutes(logs []models.StudyLog) int {
	total := 0
	for _, log := range logs {
		total += log.DurationMinutes
	}
	return total
}

// GoalProgress returns minutes as a percentage of goal, capped at 100.
func GoalProgress(minutes, goal int) float64 {
	if goal <= 0 {
		return 100
	}
	return math.Min(100, float64(minutes)/float64(goal)*100)
}
