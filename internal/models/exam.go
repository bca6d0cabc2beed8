package models

import "fmt"

// Exam is a dated target with the subjects to study for it.
type Exam struct {
	// ID is the unique identifier for the exam (UUID format).
	ID string `json:"id"`

	// Name is the display name (e.g., "JEE Mains").
	Name string `json:"name"`

	// Date is the exam day as an ISO date string ("2006-01-02").
	// Full RFC 3339 timestamps are accepted as well.
	Date string `json:"date"`

	// Subjects are kept in insertion order.
	Subjects []Subject `json:"subjects"`
}

// Subject groups the chapters of one subject within an exam.
// Its chapters are populated in one step from a syllabus generation response,
// or left empty when generation fails.
type Subject struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Chapters []Chapter `json:"chapters"`
}

// Chapter is the smallest trackable unit of study material.
type Chapter struct {
	// ID is the unique identifier for the chapter (UUID format).
	ID string `json:"id"`

	// Name is the chapter title.
	Name string `json:"name"`

	// EstimatedHours is the estimated study effort, a positive integer.
	EstimatedHours int `json:"estimatedHours"`

	// IsCompleted is the only field that changes after creation.
	IsCompleted bool `json:"isCompleted"`

	Difficulty Difficulty `json:"difficulty"`
}

// Difficulty is the estimated difficulty of a chapter.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Difficulties lists the valid difficulty values in ascending order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// Valid reports whether d is one of the known difficulty values.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// ParseDifficulty converts s into a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(s)
	if !d.Valid() {
		return "", fmt.Errorf("unknown difficulty %q", s)
	}
	return d, nil
}
