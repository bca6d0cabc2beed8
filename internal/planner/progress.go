package planner

import (
	"slices"

	"github.com/mmynk/studyflow/internal/models"
)

// ChapterRef addresses one chapter inside the plan.
type ChapterRef struct {
	ExamID    string
	SubjectID string
	ChapterID string
}

// locate returns the exam, subject and chapter indexes for ref,
// or ok=false if any of them does not exist.
func locate(exams []models.Exam, ref ChapterRef) (ei, si, ci int, ok bool) {
	ei = slices.IndexFunc(exams, func(e models.Exam) bool { return e.ID == ref.ExamID })
	if ei < 0 {
		return 0, 0, 0, false
	}
	subjects := exams[ei].Subjects
	si = slices.IndexFunc(subjects, func(s models.Subject) bool { return s.ID == ref.SubjectID })
	if si < 0 {
		return 0, 0, 0, false
	}
	chapters := subjects[si].Chapters
	ci = slices.IndexFunc(chapters, func(c models.Chapter) bool { return c.ID == ref.ChapterID })
	if ci < 0 {
		return 0, 0, 0, false
	}
	return ei, si, ci, true
}

// FindChapter returns the chapter addressed by ref.
func FindChapter(exams []models.Exam, ref ChapterRef) (models.Chapter, bool) {
	ei, si, ci, ok := locate(exams, ref)
	if !ok {
		return models.Chapter{}, false
	}
	return exams[ei].Subjects[si].Chapters[ci], true
}

// SetChapterCompleted returns a copy of exams with the completion flag of the
// chapter addressed by ref set to completed.
//
// Only the slices on the path to the chapter are copied; the input is never
// modified. If ref does not resolve to a chapter, exams is returned as is.
func SetChapterCompleted(exams []models.Exam, ref ChapterRef, completed bool) []models.Exam {
	ei, si, ci, ok := locate(exams, ref)
	if !ok {
		return exams
	}

	out := slices.Clone(exams)
	exam := out[ei]
	exam.Subjects = slices.Clone(exam.Subjects)
	sub := exam.Subjects[si]
	sub.Chapters = slices.Clone(sub.Chapters)
	sub.Chapters[ci].IsCompleted = completed

	exam.Subjects[si] = sub
	out[ei] = exam
	return out
}

// SubjectHours is the total estimated hours of a subject's chapters.
func SubjectHours(sub models.Subject) int {
	total := 0
	for _, c := range sub.Chapters {
		total += c.EstimatedHours
	}
	return total
}

// CompletedChapters counts the completed chapters of a subject.
func CompletedChapters(sub models.Subject) int {
	n := 0
	for _, c := range sub.Chapters {
		if c.IsCompleted {
			n++
		}
	}
	return n
}
