package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"sync"
	"time"

	"connectrpc.com/connect"
	"github.com/google/uuid"

	"github.com/mmynk/studyflow/internal/models"
	"github.com/mmynk/studyflow/internal/planner"
	"github.com/mmynk/studyflow/internal/storage"
	"github.com/mmynk/studyflow/pkg/api"
)

// PlanService manages exams, subjects and chapter progress, and builds the
// dashboard.
type PlanService struct {
	store storage.Store
	tutor Tutor
	now   func() time.Time

	// mu serializes read-modify-write cycles on the exam list.
	mu sync.Mutex
}

// NewPlanService creates a new PlanService with the given storage backend and AI tutor.
func NewPlanService(store storage.Store, tutor Tutor) *PlanService {
	return &PlanService{store: store, tutor: tutor, now: time.Now}
}

// NewPlanServiceHandler builds the HTTP handler for s.
func NewPlanServiceHandler(s *PlanService, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return newServiceHandler(api.PlanServiceName, map[string]*connect.Handler{
		api.PlanServiceListExamsProcedure:       connect.NewUnaryHandler(api.PlanServiceListExamsProcedure, s.ListExams, opts...),
		api.PlanServiceAddExamProcedure:         connect.NewUnaryHandler(api.PlanServiceAddExamProcedure, s.AddExam, opts...),
		api.PlanServiceDeleteExamProcedure:      connect.NewUnaryHandler(api.PlanServiceDeleteExamProcedure, s.DeleteExam, opts...),
		api.PlanServiceAddSubjectProcedure:      connect.NewUnaryHandler(api.PlanServiceAddSubjectProcedure, s.AddSubject, opts...),
		api.PlanServiceCompleteChapterProcedure: connect.NewUnaryHandler(api.PlanServiceCompleteChapterProcedure, s.CompleteChapter, opts...),
		api.PlanServiceGetDashboardProcedure:    connect.NewUnaryHandler(api.PlanServiceGetDashboardProcedure, s.GetDashboard, opts...),
	})
}

// ListExams returns the full study plan.
func (s *PlanService) ListExams(ctx context.Context, req *connect.Request[api.ListExamsRequest]) (*connect.Response[api.ListExamsResponse], error) {
	exams, err := s.store.LoadExams(ctx)
	if err != nil {
		slog.Error("ListExams failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	return connect.NewResponse(&api.ListExamsResponse{Exams: exams}), nil
}

// AddExam appends a new exam with no subjects.
func (s *PlanService) AddExam(ctx context.Context, req *connect.Request[api.AddExamRequest]) (*connect.Response[api.AddExamResponse], error) {
	slog.Info("AddExam request received", "name", req.Msg.Name, "date", req.Msg.Date)

	name := trimmed(req.Msg.Name)
	if name == "" {
		return nil, invalidArgument("exam name is required")
	}
	if req.Msg.Date == "" {
		return nil, invalidArgument("exam date is required")
	}
	if _, err := planner.ParseDate(req.Msg.Date); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	exam := models.Exam{
		ID:       uuid.New().String(),
		Name:     name,
		Date:     req.Msg.Date,
		Subjects: []models.Subject{},
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	exams, err := s.store.LoadExams(ctx)
	if err != nil {
		slog.Error("AddExam failed to load exams", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	if err := s.store.SaveExams(ctx, append(exams, exam)); err != nil {
		slog.Error("AddExam failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("Exam created", "exam_id", exam.ID)
	return connect.NewResponse(&api.AddExamResponse{Exam: exam}), nil
}

// DeleteExam removes an exam with all its subjects.
func (s *PlanService) DeleteExam(ctx context.Context, req *connect.Request[api.DeleteExamRequest]) (*connect.Response[api.DeleteExamResponse], error) {
	slog.Info("DeleteExam request received", "exam_id", req.Msg.ExamID)

	s.mu.Lock()
	defer s.mu.Unlock()

	exams, err := s.store.LoadExams(ctx)
	if err != nil {
		slog.Error("DeleteExam failed to load exams", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	remaining := slices.DeleteFunc(slices.Clone(exams), func(e models.Exam) bool { return e.ID == req.Msg.ExamID })
	if len(remaining) == len(exams) {
		return nil, connect.NewError(connect.CodeNotFound, fmt.Errorf("%w: %s", ErrExamNotFound, req.Msg.ExamID))
	}

	if err := s.store.SaveExams(ctx, remaining); err != nil {
		slog.Error("DeleteExam failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("Exam deleted", "exam_id", req.Msg.ExamID)
	return connect.NewResponse(&api.DeleteExamResponse{}), nil
}

// AddSubject creates a subject under an exam, with chapters generated by the
// AI tutor for the profile's preparation goal. If generation fails the
// subject is still created, with no chapters.
func (s *PlanService) AddSubject(ctx context.Context, req *connect.Request[api.AddSubjectRequest]) (*connect.Response[api.AddSubjectResponse], error) {
	slog.Info("AddSubject request received", "exam_id", req.Msg.ExamID, "name", req.Msg.Name)

	name := trimmed(req.Msg.Name)
	if name == "" {
		return nil, invalidArgument("subject name is required")
	}

	profile, err := s.store.LoadProfile(ctx)
	if err != nil {
		slog.Error("AddSubject failed to load profile", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	if profile == nil {
		return nil, connect.NewError(connect.CodeFailedPrecondition, ErrNoProfile)
	}

	if err := s.checkExam(ctx, req.Msg.ExamID); err != nil {
		return nil, err
	}

	// Generation runs unlocked: it can take seconds.
	chapters := s.tutor.GenerateSyllabus(ctx, name, profile.PrepGoal)
	subject := models.Subject{
		ID:       uuid.New().String(),
		Name:     name,
		Chapters: chapters,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	exams, err := s.store.LoadExams(ctx)
	if err != nil {
		slog.Error("AddSubject failed to load exams", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	i := slices.IndexFunc(exams, func(e models.Exam) bool { return e.ID == req.Msg.ExamID })
	if i < 0 {
		// Deleted while the syllabus was being generated.
		return nil, connect.NewError(connect.CodeNotFound, fmt.Errorf("%w: %s", ErrExamNotFound, req.Msg.ExamID))
	}
	exams[i].Subjects = append(slices.Clone(exams[i].Subjects), subject)

	if err := s.store.SaveExams(ctx, exams); err != nil {
		slog.Error("AddSubject failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("Subject created", "exam_id", req.Msg.ExamID, "subject_id", subject.ID, "chapters", len(chapters))
	return connect.NewResponse(&api.AddSubjectResponse{Subject: subject}), nil
}

// checkExam returns a NotFound error unless examID exists.
func (s *PlanService) checkExam(ctx context.Context, examID string) error {
	exams, err := s.store.LoadExams(ctx)
	if err != nil {
		slog.Error("Failed to load exams", "error", err)
		return connect.NewError(connect.CodeInternal, err)
	}
	if !slices.ContainsFunc(exams, func(e models.Exam) bool { return e.ID == examID }) {
		return connect.NewError(connect.CodeNotFound, fmt.Errorf("%w: %s", ErrExamNotFound, examID))
	}
	return nil
}

// CompleteChapter marks one chapter as completed. There is no way to undo it.
// An unknown exam/subject/chapter triple changes nothing.
func (s *PlanService) CompleteChapter(ctx context.Context, req *connect.Request[api.CompleteChapterRequest]) (*connect.Response[api.CompleteChapterResponse], error) {
	ref := planner.ChapterRef{
		ExamID:    req.Msg.ExamID,
		SubjectID: req.Msg.SubjectID,
		ChapterID: req.Msg.ChapterID,
	}
	slog.Info("CompleteChapter request received", "exam_id", ref.ExamID, "subject_id", ref.SubjectID, "chapter_id", ref.ChapterID)

	s.mu.Lock()
	defer s.mu.Unlock()

	exams, err := s.store.LoadExams(ctx)
	if err != nil {
		slog.Error("CompleteChapter failed to load exams", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	if _, ok := planner.FindChapter(exams, ref); !ok {
		slog.Warn("CompleteChapter: chapter not found, nothing changed", "chapter_id", ref.ChapterID)
		return connect.NewResponse(&api.CompleteChapterResponse{Exams: exams, Updated: false}), nil
	}

	updated := planner.SetChapterCompleted(exams, ref, true)
	if err := s.store.SaveExams(ctx, updated); err != nil {
		slog.Error("CompleteChapter failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	return connect.NewResponse(&api.CompleteChapterResponse{Exams: updated, Updated: true}), nil
}

// GetDashboard builds the home view: today's focus tasks and weekly progress.
func (s *PlanService) GetDashboard(ctx context.Context, req *connect.Request[api.GetDashboardRequest]) (*connect.Response[api.GetDashboardResponse], error) {
	now := s.now()

	profile, err := s.store.LoadProfile(ctx)
	if err != nil {
		slog.Error("GetDashboard failed to load profile", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	if profile == nil {
		return nil, connect.NewError(connect.CodeFailedPrecondition, ErrNoProfile)
	}

	exams, err := s.store.LoadExams(ctx)
	if err != nil {
		slog.Error("GetDashboard failed to load exams", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	logs, err := s.store.LoadStudyLogs(ctx)
	if err != nil {
		slog.Error("GetDashboard failed to load logs", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	tasks := planner.Recommend(exams, now)
	weekly := planner.WeeklyStudyMinutes(logs, now.UTC())

	slog.Debug("Dashboard built", "tasks", len(tasks), "weekly_minutes", weekly)

	return connect.NewResponse(&api.GetDashboardResponse{
		Profile:           profile,
		Tasks:             tasks,
		WeeklyMinutes:     weekly,
		WeeklyGoalMinutes: planner.WeeklyGoalMinutes,
		GoalProgress:      planner.GoalProgress(weekly, planner.WeeklyGoalMinutes),
	}), nil
}
