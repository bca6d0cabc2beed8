package models

// Profile is the single local user record.
//
// There is no account behind it: it is filled in by the login form and
// cleared on logout. Other records survive a logout.
type Profile struct {
	// Username is the display name shown in the header and on the leaderboard.
	Username string `json:"username"`

	// PhoneNumber is collected by the login form (at least 10 characters).
	PhoneNumber string `json:"phoneNumber"`

	// Grade is the school grade, e.g. "11th" or "12th".
	Grade string `json:"grade"`

	// PrepGoal is the exam the user prepares for, e.g. "JEE", "NEET", "Boards".
	// It is passed to the AI gateway when generating a syllabus.
	PrepGoal string `json:"prepGoal"`

	// TotalStudyMinutes is the sum of every logged study session since login.
	// It is maintained incrementally, never recomputed.
	TotalStudyMinutes int `json:"totalStudyMinutes"`
}

// Default profile form values.
const (
	DefaultGrade    = "11th"
	DefaultPrepGoal = "JEE"

	// MinPhoneNumberLength is the shortest phone number the login form accepts.
	MinPhoneNumberLength = 10
)
