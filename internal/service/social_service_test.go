package service

import (
	"context"
	"math/rand/v2"
	"testing"

	"connectrpc.com/connect"
	"github.com/mmynk/studyflow/internal/models"
	"github.com/mmynk/studyflow/internal/planner"
	"github.com/mmynk/studyflow/pkg/api"
)

func TestAddFriend(t *testing.T) {
	env, cleanup := setupTestServer(t)
	defer cleanup()

	for i := 0; i < 20; i++ {
		resp, err := env.client.AddFriend(context.Background(), &api.AddFriendRequest{Username: "  ravi  "})
		if err != nil {
			t.Fatalf("AddFriend failed: %v", err)
		}
		f := resp.Friend
		if f.ID == "" {
			t.Error("expected friend ID to be set")
		}
		if f.Username != "ravi" {
			t.Errorf("expected username 'ravi', got '%s'", f.Username)
		}
		if f.TotalHours < 5 || f.TotalHours > 54 {
			t.Errorf("TotalHours out of range: %d", f.TotalHours)
		}
	}

	_, err := env.client.AddFriend(context.Background(), &api.AddFriendRequest{Username: "   "})
	expectCode(t, err, connect.CodeInvalidArgument)

	board, err := env.client.GetLeaderboard(context.Background())
	if err != nil {
		t.Fatalf("GetLeaderboard failed: %v", err)
	}
	if len(board.Friends) != 20 {
		t.Errorf("expected 20 stored friends, got %d", len(board.Friends))
	}
}

func TestAddFriend_DeterministicStats(t *testing.T) {
	store := newMemStore()
	svc := NewSocialService(store)
	svc.rng = rand.New(rand.NewPCG(1, 2))

	want := rand.New(rand.NewPCG(1, 2))
	hours := 5 + want.IntN(50)
	online := want.Float64() > 0.5

	resp, err := svc.AddFriend(context.Background(), connect.NewRequest(&api.AddFriendRequest{Username: "meera"}))
	if err != nil {
		t.Fatalf("AddFriend failed: %v", err)
	}
	if resp.Msg.Friend.TotalHours != hours || resp.Msg.Friend.IsOnline != online {
		t.Errorf("expected hours=%d online=%v, got %+v", hours, online, resp.Msg.Friend)
	}
}

func TestGetLeaderboard(t *testing.T) {
	store := newMemStore()
	store.profile = &models.Profile{Username: "asha", TotalStudyMinutes: 12 * 60}
	store.friends = []models.Friend{
		{ID: "1", Username: "ravi", TotalHours: 20},
		{ID: "2", Username: "meera", TotalHours: 12},
		{ID: "3", Username: "kabir", TotalHours: 6},
	}
	svc := NewSocialService(store)

	resp, err := svc.GetLeaderboard(context.Background(), connect.NewRequest(&api.GetLeaderboardRequest{}))
	if err != nil {
		t.Fatalf("GetLeaderboard failed: %v", err)
	}

	entries := resp.Msg.Entries
	if len(entries) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(entries))
	}
	if entries[0].Name != "ravi" || entries[0].Rank != 1 {
		t.Errorf("expected ravi first, got %+v", entries[0])
	}
	// Ties share a rank; the profile keeps its position ahead of the friend.
	if !entries[1].IsMe || entries[1].Name != planner.MeName || entries[1].Rank != 2 {
		t.Errorf("expected Me at rank 2, got %+v", entries[1])
	}
	if entries[2].Name != "meera" || entries[2].Rank != 2 {
		t.Errorf("expected meera tied at rank 2, got %+v", entries[2])
	}
	if entries[3].Rank != 4 {
		t.Errorf("expected kabir at rank 4, got %+v", entries[3])
	}
}

func TestGetLeaderboard_LoggedOut(t *testing.T) {
	env, cleanup := setupTestServer(t)
	defer cleanup()

	if _, err := env.client.AddFriend(context.Background(), &api.AddFriendRequest{Username: "ravi"}); err != nil {
		t.Fatalf("AddFriend failed: %v", err)
	}

	resp, err := env.client.GetLeaderboard(context.Background())
	if err != nil {
		t.Fatalf("GetLeaderboard failed: %v", err)
	}
	if len(resp.Entries) != 1 {
		t.Fatalf("expected only the friend's entry, got %d", len(resp.Entries))
	}
	if resp.Entries[0].IsMe || resp.Entries[0].Rank != 1 {
		t.Errorf("unexpected entry: %+v", resp.Entries[0])
	}
}
