package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmynk/studyflow/internal/models"
	"github.com/mmynk/studyflow/pkg/api"
)

var friendCmd = &cobra.Command{
	Use:   "friend",
	Short: "Manage study buddies",
}

var friendAddCmd = &cobra.Command{
	Use:   "add <username>",
	Short: "Add a friend to the leaderboard",
	Args:  cobra.ExactArgs(1),
	RunE:  runFriendAdd,
}

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Rank study hours against your friends",
	Args:  cobra.NoArgs,
	RunE:  runLeaderboard,
}

func init() {
	friendCmd.AddCommand(friendAddCmd)
	rootCmd.AddCommand(friendCmd, leaderboardCmd)
}

func runFriendAdd(cmd *cobra.Command, args []string) error {
	resp, err := newClient().AddFriend(cmd.Context(), &api.AddFriendRequest{Username: args[0]})
	if err != nil {
		return err
	}
	f := resp.Friend
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s, %dh studied\n", successStyle.Render("Added"), f.Username, f.TotalHours)
	return nil
}

func runLeaderboard(cmd *cobra.Command, args []string) error {
	resp, err := newClient().GetLeaderboard(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), renderLeaderboard(resp.Entries, resp.Friends))
	return nil
}

func renderLeaderboard(entries []models.LeaderboardEntry, friends []models.Friend) string {
	if len(entries) == 0 {
		return mutedStyle.Render("Nobody to rank yet. Add a friend with `studyflow friend add`.") + "\n"
	}

	online := make(map[string]bool, len(friends))
	for _, f := range friends {
		online[f.Username] = online[f.Username] || f.IsOnline
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Leaderboard") + "\n")
	for _, e := range entries {
		line := fmt.Sprintf("%3d. %-20s %4dh", e.Rank, e.Name, e.Hours)
		switch {
		case e.IsMe:
			line = meStyle.Render(line)
		case online[e.Name]:
			line += successStyle.Render("  online")
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}
