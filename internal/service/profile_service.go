package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"connectrpc.com/connect"
	"github.com/google/uuid"

	"github.com/mmynk/studyflow/internal/models"
	"github.com/mmynk/studyflow/internal/planner"
	"github.com/mmynk/studyflow/internal/storage"
	"github.com/mmynk/studyflow/pkg/api"
)

// ProfileService manages the local profile and the focus-session log.
type ProfileService struct {
	store storage.Store
	now   func() time.Time

	// mu serializes profile writes.
	mu sync.Mutex
}

// NewProfileService creates a new ProfileService with the given storage backend.
func NewProfileService(store storage.Store) *ProfileService {
	return &ProfileService{store: store, now: time.Now}
}

// NewProfileServiceHandler builds the HTTP handler for s.
func NewProfileServiceHandler(s *ProfileService, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return newServiceHandler(api.ProfileServiceName, map[string]*connect.Handler{
		api.ProfileServiceLoginProcedure:        connect.NewUnaryHandler(api.ProfileServiceLoginProcedure, s.Login, opts...),
		api.ProfileServiceLogoutProcedure:       connect.NewUnaryHandler(api.ProfileServiceLogoutProcedure, s.Logout, opts...),
		api.ProfileServiceGetProfileProcedure:   connect.NewUnaryHandler(api.ProfileServiceGetProfileProcedure, s.GetProfile, opts...),
		api.ProfileServiceLogSessionProcedure:   connect.NewUnaryHandler(api.ProfileServiceLogSessionProcedure, s.LogSession, opts...),
		api.ProfileServiceListSessionsProcedure: connect.NewUnaryHandler(api.ProfileServiceListSessionsProcedure, s.ListSessions, opts...),
	})
}

// Login validates the profile form and stores a fresh profile.
// Logging in again replaces the profile and resets its study minutes.
func (s *ProfileService) Login(ctx context.Context, req *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error) {
	slog.Info("Login request received", "username", req.Msg.Username)

	phone := trimmed(req.Msg.PhoneNumber)
	if len(phone) < models.MinPhoneNumberLength {
		return nil, invalidArgument(fmt.Sprintf("phone number must have at least %d characters", models.MinPhoneNumberLength))
	}
	username := trimmed(req.Msg.Username)
	if username == "" {
		return nil, invalidArgument("username is required")
	}

	profile := &models.Profile{
		Username:          username,
		PhoneNumber:       phone,
		Grade:             req.Msg.Grade,
		PrepGoal:          req.Msg.PrepGoal,
		TotalStudyMinutes: 0,
	}
	if profile.Grade == "" {
		profile.Grade = models.DefaultGrade
	}
	if profile.PrepGoal == "" {
		profile.PrepGoal = models.DefaultPrepGoal
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.SaveProfile(ctx, profile); err != nil {
		slog.Error("Login failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("Profile created", "username", profile.Username, "grade", profile.Grade, "prep_goal", profile.PrepGoal)
	return connect.NewResponse(&api.LoginResponse{Profile: profile}), nil
}

// Logout clears the profile. Plan, logs and friends are kept.
func (s *ProfileService) Logout(ctx context.Context, req *connect.Request[api.LogoutRequest]) (*connect.Response[api.LogoutResponse], error) {
	slog.Info("Logout request received")

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.SaveProfile(ctx, nil); err != nil {
		slog.Error("Logout failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	return connect.NewResponse(&api.LogoutResponse{}), nil
}

// GetProfile returns the current profile, or nil when logged out.
func (s *ProfileService) GetProfile(ctx context.Context, req *connect.Request[api.GetProfileRequest]) (*connect.Response[api.GetProfileResponse], error) {
	profile, err := s.store.LoadProfile(ctx)
	if err != nil {
		slog.Error("GetProfile failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	return connect.NewResponse(&api.GetProfileResponse{Profile: profile}), nil
}

// LogSession records a completed focus session and credits it to the profile.
func (s *ProfileService) LogSession(ctx context.Context, req *connect.Request[api.LogSessionRequest]) (*connect.Response[api.LogSessionResponse], error) {
	slog.Info("LogSession request received", "minutes", req.Msg.Minutes)

	if req.Msg.Minutes <= 0 {
		return nil, invalidArgument("minutes must be positive")
	}

	now := s.now()
	log := models.StudyLog{
		ID:              uuid.New().String(),
		Date:            now.UTC().Format(models.DateLayout),
		DurationMinutes: req.Msg.Minutes,
		Timestamp:       now.UnixMilli(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	profile, err := s.store.RecordStudySession(ctx, log)
	if err != nil {
		slog.Error("LogSession failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	attrs := []any{"log_id", log.ID, "minutes", log.DurationMinutes}
	if profile != nil {
		attrs = append(attrs, "total_minutes", profile.TotalStudyMinutes)
	}
	slog.Info("Study session logged", attrs...)

	return connect.NewResponse(&api.LogSessionResponse{Log: log, Profile: profile}), nil
}

// ListSessions returns all logged sessions with their totals.
func (s *ProfileService) ListSessions(ctx context.Context, req *connect.Request[api.ListSessionsRequest]) (*connect.Response[api.ListSessionsResponse], error) {
	logs, err := s.store.LoadStudyLogs(ctx)
	if err != nil {
		slog.Error("ListSessions failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	return connect.NewResponse(&api.ListSessionsResponse{
		Logs:          logs,
		TotalMinutes:  planner.TotalMinutes(logs),
		WeeklyMinutes: planner.WeeklyStudyMinutes(logs, s.now().UTC()),
	}), nil
}
