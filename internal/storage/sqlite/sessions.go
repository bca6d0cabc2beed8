package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/studyflow/internal/models"
	"github.com/mmynk/studyflow/internal/storage"
)

// LoadStudyLogs retrieves all study logs in recording order.
func (s *SQLiteStore) LoadStudyLogs(ctx context.Context) ([]models.StudyLog, error) {
	return loadList[models.StudyLog](ctx, s.db, storage.KeyLogs)
}

// RecordStudySession appends a study log and credits its minutes to the
// profile in one transaction.
func (s *SQLiteStore) RecordStudySession(ctx context.Context, log models.StudyLog) (*models.Profile, error) {
	// Generate IDs if not set
	if log.ID == "" {
		log.ID = uuid.New().String()
	}
	if log.Timestamp == 0 {
		now := time.Now()
		log.Timestamp = now.UnixMilli()
		if log.Date == "" {
			log.Date = now.UTC().Format(models.DateLayout)
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	logs, err := loadList[models.StudyLog](ctx, tx, storage.KeyLogs)
	if err != nil {
		return nil, err
	}
	if err := putRecord(ctx, tx, storage.KeyLogs, append(logs, log)); err != nil {
		return nil, err
	}

	profile, err := loadRecord[*models.Profile](ctx, tx, storage.KeyProfile)
	if err != nil {
		return nil, err
	}
	if profile != nil {
		profile.TotalStudyMinutes += log.DurationMinutes
		if err := putRecord(ctx, tx, storage.KeyProfile, profile); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return profile, nil
}
