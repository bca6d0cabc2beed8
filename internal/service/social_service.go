package service

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"sync"

	"connectrpc.com/connect"
	"github.com/google/uuid"

	"github.com/mmynk/studyflow/internal/models"
	"github.com/mmynk/studyflow/internal/planner"
	"github.com/mmynk/studyflow/internal/storage"
	"github.com/mmynk/studyflow/pkg/api"
)

// Demo stats given to new friends: TotalHours is uniform in
// [minFriendHours, minFriendHours+friendHoursSpan).
const (
	minFriendHours  = 5
	friendHoursSpan = 50
)

// SocialService manages friends and the study-hours leaderboard.
type SocialService struct {
	store storage.Store

	// mu guards rng and serializes friend list writes.
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSocialService creates a new SocialService with the given storage backend.
func NewSocialService(store storage.Store) *SocialService {
	return &SocialService{
		store: store,
		rng:   rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// NewSocialServiceHandler builds the HTTP handler for s.
func NewSocialServiceHandler(s *SocialService, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return newServiceHandler(api.SocialServiceName, map[string]*connect.Handler{
		api.SocialServiceAddFriendProcedure:      connect.NewUnaryHandler(api.SocialServiceAddFriendProcedure, s.AddFriend, opts...),
		api.SocialServiceGetLeaderboardProcedure: connect.NewUnaryHandler(api.SocialServiceGetLeaderboardProcedure, s.GetLeaderboard, opts...),
	})
}

// AddFriend adds a friend by username. There is no friend directory, so the
// friend's stats are made up.
func (s *SocialService) AddFriend(ctx context.Context, req *connect.Request[api.AddFriendRequest]) (*connect.Response[api.AddFriendResponse], error) {
	slog.Info("AddFriend request received", "username", req.Msg.Username)

	username := trimmed(req.Msg.Username)
	if username == "" {
		return nil, invalidArgument("username is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	friend := models.Friend{
		ID:         uuid.New().String(),
		Username:   username,
		TotalHours: minFriendHours + s.rng.IntN(friendHoursSpan),
		IsOnline:   s.rng.Float64() > 0.5,
	}

	friends, err := s.store.LoadFriends(ctx)
	if err != nil {
		slog.Error("AddFriend failed to load friends", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	if err := s.store.SaveFriends(ctx, append(friends, friend)); err != nil {
		slog.Error("AddFriend failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("Friend added", "friend_id", friend.ID, "total_hours", friend.TotalHours)
	return connect.NewResponse(&api.AddFriendResponse{Friend: friend}), nil
}

// GetLeaderboard ranks the profile against all friends.
func (s *SocialService) GetLeaderboard(ctx context.Context, req *connect.Request[api.GetLeaderboardRequest]) (*connect.Response[api.GetLeaderboardResponse], error) {
	profile, err := s.store.LoadProfile(ctx)
	if err != nil {
		slog.Error("GetLeaderboard failed to load profile", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	friends, err := s.store.LoadFriends(ctx)
	if err != nil {
		slog.Error("GetLeaderboard failed to load friends", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	entries := planner.Leaderboard(profile, friends)
	slog.Info("GetLeaderboard successful", "entries", len(entries))

	return connect.NewResponse(&api.GetLeaderboardResponse{
		Entries: entries,
		Friends: friends,
	}), nil
}
