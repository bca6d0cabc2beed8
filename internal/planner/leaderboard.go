package planner

import (
	"cmp"
	"math"
	"slices"

	"github.com/mmynk/studyflow/internal/models"
)

// MeName is the leaderboard name of the local profile.
const MeName = "Me"

// Leaderboard ranks the local profile against friends by study hours.
//
// The profile contributes a "Me" entry with its minutes rounded to whole
// hours; a nil profile contributes nothing. Entries are ordered by hours,
// most first, keeping the profile ahead of friends on ties. Tied entries
// share a rank (1, 2, 2, 4).
func Leaderboard(profile *models.Profile, friends []models.Friend) []models.LeaderboardEntry {
	entries := make([]models.LeaderboardEntry, 0, len(friends)+1)

	if profile != nil {
		entries = append(entries, models.LeaderboardEntry{
			Name:  MeName,
			Hours: int(math.Round(float64(profile.TotalStudyMinutes) / 60)),
			IsMe:  true,
		})
	}
	for _, f := range friends {
		entries = append(entries, models.LeaderboardEntry{
			Name:  f.Username,
			Hours: f.TotalHours,
		})
	}

	slices.SortStableFunc(entries, func(a, b models.LeaderboardEntry) int {
		return cmp.Compare(b.Hours, a.Hours)
	})

	for i := range entries {
		if i > 0 && entries[i].Hours == entries[i-1].Hours {
			entries[i].Rank = entries[i-1].Rank
			continue
		}
		entries[i].Rank = i + 1
	}

	return entries
}
