package models

// Task is a suggested chapter to study next, with its parent context.
// Tasks are derived by planner.Recommend and never stored.
type Task struct {
	ExamID      string  `json:"examId"`
	SubjectID   string  `json:"subjectId"`
	Chapter     Chapter `json:"chapter"`
	ExamName    string  `json:"examName"`
	SubjectName string  `json:"subjectName"`

	// DaysLeft is the number of days until the parent exam, rounded up.
	DaysLeft int `json:"daysLeft"`
}
