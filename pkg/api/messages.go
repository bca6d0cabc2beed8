package api

import "github.com/mmynk/studyflow/internal/models"

// ProfileService messages.

type LoginRequest struct {
	Username    string `json:"username"`
	PhoneNumber string `json:"phoneNumber"`
	Grade       string `json:"grade,omitempty"`    // default "11th"
	PrepGoal    string `json:"prepGoal,omitempty"` // default "JEE"
}

type LoginResponse struct {
	Profile *models.Profile `json:"profile"`
}

type LogoutRequest struct{}

type LogoutResponse struct{}

type GetProfileRequest struct{}

// GetProfileResponse carries a nil Profile when nobody is logged in.
type GetProfileResponse struct {
	Profile *models.Profile `json:"profile"`
}

type LogSessionRequest struct {
	Minutes int `json:"minutes"`
}

type LogSessionResponse struct {
	Log     models.StudyLog `json:"log"`
	Profile *models.Profile `json:"profile"`
}

type ListSessionsRequest struct{}

type ListSessionsResponse struct {
	Logs          []models.StudyLog `json:"logs"`
	TotalMinutes  int               `json:"totalMinutes"`
	WeeklyMinutes int               `json:"weeklyMinutes"`
}

// PlanService messages.

type ListExamsRequest struct{}

type ListExamsResponse struct {
	Exams []models.Exam `json:"exams"`
}

type AddExamRequest struct {
	Name string `json:"name"`
	Date string `json:"date"` // "2006-01-02"
}

type AddExamResponse struct {
	Exam models.Exam `json:"exam"`
}

type DeleteExamRequest struct {
	ExamID string `json:"examId"`
}

type DeleteExamResponse struct{}

type AddSubjectRequest struct {
	ExamID string `json:"examId"`
	Name   string `json:"name"`
}

// AddSubjectResponse carries the new subject. Its chapter list is empty when
// syllabus generation failed.
type AddSubjectResponse struct {
	Subject models.Subject `json:"subject"`
}

type CompleteChapterRequest struct {
	ExamID    string `json:"examId"`
	SubjectID string `json:"subjectId"`
	ChapterID string `json:"chapterId"`
}

// CompleteChapterResponse returns the plan after the update. Updated is false
// when the chapter could not be found and nothing changed.
type CompleteChapterResponse struct {
	Exams   []models.Exam `json:"exams"`
	Updated bool          `json:"updated"`
}

type GetDashboardRequest struct{}

type GetDashboardResponse struct {
	Profile           *models.Profile `json:"profile"`
	Tasks             []models.Task   `json:"tasks"`
	WeeklyMinutes     int             `json:"weeklyMinutes"`
	WeeklyGoalMinutes int             `json:"weeklyGoalMinutes"`
	GoalProgress      float64         `json:"goalProgress"` // percent, 0-100
}

// SocialService messages.

type AddFriendRequest struct {
	Username string `json:"username"`
}

type AddFriendResponse struct {
	Friend models.Friend `json:"friend"`
}

type GetLeaderboardRequest struct{}

type GetLeaderboardResponse struct {
	Entries []models.LeaderboardEntry `json:"entries"`
	Friends []models.Friend           `json:"friends"`
}

// TutorService messages.

type GenerateFlashcardsRequest struct {
	Topic string `json:"topic"`
	Count int    `json:"count,omitempty"` // default 5
}

type GenerateFlashcardsResponse struct {
	Cards []models.Flashcard `json:"cards"`
}

type SolveDoubtRequest struct {
	Text string `json:"text"`

	// Image is an optional base64 image, optionally as a data URL.
	Image string `json:"image,omitempty"`
}

type SolveDoubtResponse struct {
	Answer string `json:"answer"`
}
