package models

// StudyLog is one completed block of focused study time.
// Logs are append-only: never mutated or deleted.
type StudyLog struct {
	// ID is the unique identifier for the log (UUID format).
	ID string `json:"id"`

	// Date is the UTC calendar day the session was logged ("2006-01-02").
	Date string `json:"date"`

	// DurationMinutes is the credited length of the session.
	DurationMinutes int `json:"durationMinutes"`

	// Timestamp is the Unix time in milliseconds when the log was created.
	Timestamp int64 `json:"timestamp"`
}

// DateLayout is the layout of StudyLog.Date and Exam.Date.
const DateLayout = "2006-01-02"
