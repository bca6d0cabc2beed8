package service

import (
	"context"
	"slices"
	"sync"

	"github.com/mmynk/studyflow/internal/models"
)

// memStore is an in-memory storage.Store for handler-level tests.
type memStore struct {
	mu      sync.Mutex
	profile *models.Profile
	exams   []models.Exam
	logs    []models.StudyLog
	friends []models.Friend
}

func newMemStore() *memStore {
	return &memStore{}
}

func (m *memStore) LoadProfile(ctx context.Context) (*models.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.profile == nil {
		return nil, nil
	}
	p := *m.profile
	return &p, nil
}

func (m *memStore) SaveProfile(ctx context.Context, profile *models.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profile = profile
	return nil
}

func (m *memStore) LoadExams(ctx context.Context) ([]models.Exam, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.exams), nil
}

func (m *memStore) SaveExams(ctx context.Context, exams []models.Exam) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.exams = slices.Clone(exams)
	return nil
}

func (m *memStore) LoadStudyLogs(ctx context.Context) ([]models.StudyLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.logs), nil
}

func (m *memStore) RecordStudySession(ctx context.Context, log models.StudyLog) (*models.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logs = append(m.logs, log)
	if m.profile == nil {
		return nil, nil
	}
	m.profile.TotalStudyMinutes += log.DurationMinutes
	p := *m.profile
	return &p, nil
}

func (m *memStore) LoadFriends(ctx context.Context) ([]models.Friend, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.friends), nil
}

func (m *memStore) SaveFriends(ctx context.Context, friends []models.Friend) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.friends = slices.Clone(friends)
	return nil
}

func (m *memStore) Close() error { return nil }
