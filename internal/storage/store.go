// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/mmynk/studyflow/internal/models"
)

// Record keys. Each record holds the JSON encoding of one slice of app state.
const (
	KeyProfile = "studyflow_user"
	KeyExams   = "studyflow_exams"
	KeyLogs    = "studyflow_logs"
	KeyFriends = "studyflow_friends"
)

// Store defines the interface for the four keyed app records.
// This abstraction allows swapping storage backends without changing the
// service layer.
//
// Loads never fail on bad data: a missing or malformed record yields the
// default value (nil profile, empty list). Errors are returned only when the
// backend itself fails.
type Store interface {
	// LoadProfile returns the local profile, or nil if nobody is logged in.
	LoadProfile(ctx context.Context) (*models.Profile, error)

	// SaveProfile replaces the profile. A nil profile removes the record.
	SaveProfile(ctx context.Context, profile *models.Profile) error

	// LoadExams returns the study plan in insertion order.
	LoadExams(ctx context.Context) ([]models.Exam, error)

	// SaveExams replaces the whole study plan.
	SaveExams(ctx context.Context, exams []models.Exam) error

	// LoadStudyLogs returns all study logs in the order they were recorded.
	LoadStudyLogs(ctx context.Context) ([]models.StudyLog, error)

	// RecordStudySession appends log and adds its minutes to the profile,
	// if one exists, in a single transaction. It returns the updated profile.
	RecordStudySession(ctx context.Context, log models.StudyLog) (*models.Profile, error)

	// LoadFriends returns the friend list in insertion order.
	LoadFriends(ctx context.Context) ([]models.Friend, error)

	// SaveFriends replaces the friend list.
	SaveFriends(ctx context.Context, friends []models.Friend) error

	// Close releases any resources held by the store.
	Close() error
}
