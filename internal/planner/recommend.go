// Package planner holds the pure derivations over the study plan:
// task recommendation, progress updates and study analytics.
package planner

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/mmynk/studyflow/internal/models"
)

// MaxTasks is the maximum number of tasks Recommend returns.
const MaxTasks = 5

// ParseDate parses an exam or log date. Plain ISO dates are taken as UTC
// midnight; full RFC 3339 timestamps keep their offset.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(models.DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	return t, nil
}

// DaysUntil returns the number of days from now until date, rounded up.
// It is 0 on the exam day itself and negative once the day has passed.
// The second result is false if date cannot be parsed.
func DaysUntil(date string, now time.Time) (int, bool) {
	t, err := ParseDate(date)
	if err != nil {
		return 0, false
	}
	days := math.Ceil(float64(t.Sub(now)) / float64(24*time.Hour))
	return int(days), true
}

// Recommend picks the incomplete chapters to study next across all exams.
//
// Exams whose date has passed (or cannot be parsed) are skipped. Remaining
// chapters are ordered by urgency, fewest days left first, and within the
// same day count by estimated hours, largest first. At most MaxTasks tasks
// are returned.
func Recommend(exams []models.Exam, now time.Time) []models.Task {
	tasks := make([]models.Task, 0)

	for _, exam := range exams {
		daysLeft, ok := DaysUntil(exam.Date, now)
		if !ok || daysLeft < 0 {
			continue
		}

		for _, sub := range exam.Subjects {
			for _, chap := range sub.Chapters {
				if chap.IsCompleted {
					continue
				}
				tasks = append(tasks, models.Task{
					ExamID:      exam.ID,
					SubjectID:   sub.ID,
					Chapter:     chap,
					ExamName:    exam.Name,
					SubjectName: sub.Name,
					DaysLeft:    daysLeft,
				})
			}
		}
	}

	slices.SortStableFunc(tasks, func(a, b models.Task) int {
		if c := cmp.Compare(a.DaysLeft, b.DaysLeft); c != 0 {
			return c
		}
		return cmp.Compare(b.Chapter.EstimatedHours, a.Chapter.EstimatedHours)
	})

	if len(tasks) > MaxTasks {
		tasks = tasks[:MaxTasks]
	}
	return tasks
}
