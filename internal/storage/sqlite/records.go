package sqlite

import (
	"context"

	"github.com/mmynk/studyflow/internal/models"
	"github.com/mmynk/studyflow/internal/storage"
)

// LoadProfile retrieves the local profile. Returns nil if no one is logged in.
func (s *SQLiteStore) LoadProfile(ctx context.Context) (*models.Profile, error) {
	return loadRecord[*models.Profile](ctx, s.db, storage.KeyProfile)
}

// SaveProfile replaces the profile record, or removes it when profile is nil.
func (s *SQLiteStore) SaveProfile(ctx context.Context, profile *models.Profile) error {
	if profile == nil {
		return deleteRecord(ctx, s.db, storage.KeyProfile)
	}
	return putRecord(ctx, s.db, storage.KeyProfile, profile)
}

// LoadExams retrieves the study plan.
func (s *SQLiteStore) LoadExams(ctx context.Context) ([]models.Exam, error) {
	return loadList[models.Exam](ctx, s.db, storage.KeyExams)
}

// SaveExams replaces the study plan.
func (s *SQLiteStore) SaveExams(ctx context.Context, exams []models.Exam) error {
	if exams == nil {
		exams = []models.Exam{}
	}
	return putRecord(ctx, s.db, storage.KeyExams, exams)
}

// LoadFriends retrieves the friend list.
func (s *SQLiteStore) LoadFriends(ctx context.Context) ([]models.Friend, error) {
	return loadList[models.Friend](ctx, s.db, storage.KeyFriends)
}

// SaveFriends replaces the friend list.
func (s *SQLiteStore) SaveFriends(ctx context.Context, friends []models.Friend) error {
	if friends == nil {
		friends = []models.Friend{}
	}
	return putRecord(ctx, s.db, storage.KeyFriends, friends)
}
