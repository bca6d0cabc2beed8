package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmynk/studyflow/internal/models"
	"github.com/mmynk/studyflow/internal/planner"
	"github.com/mmynk/studyflow/pkg/api"
)

var examCmd = &cobra.Command{
	Use:   "exam",
	Short: "Manage exams",
}

var examAddCmd = &cobra.Command{
	Use:   "add <name> <date>",
	Short: "Add an exam (date as YYYY-MM-DD)",
	Args:  cobra.ExactArgs(2),
	RunE:  runExamAdd,
}

var examListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Show the study plan",
	Args:    cobra.NoArgs,
	RunE:    runExamList,
}

var examDeleteCmd = &cobra.Command{
	Use:     "delete <exam-id>",
	Aliases: []string{"rm"},
	Short:   "Delete an exam with all its subjects",
	Args:    cobra.ExactArgs(1),
	RunE:    runExamDelete,
}

var subjectCmd = &cobra.Command{
	Use:   "subject",
	Short: "Manage subjects",
}

var subjectAddCmd = &cobra.Command{
	Use:   "add <exam-id> <name>",
	Short: "Add a subject; the AI tutor drafts its chapters",
	Args:  cobra.ExactArgs(2),
	RunE:  runSubjectAdd,
}

var chapterCmd = &cobra.Command{
	Use:   "chapter",
	Short: "Track chapter progress",
}

var chapterDoneCmd = &cobra.Command{
	Use:   "done <exam-id> <subject-id> <chapter-id>",
	Short: "Mark a chapter as completed",
	Args:  cobra.ExactArgs(3),
	RunE:  runChapterDone,
}

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's focus tasks and weekly progress",
	Args:  cobra.NoArgs,
	RunE:  runToday,
}

func init() {
	examCmd.AddCommand(examAddCmd, examListCmd, examDeleteCmd)
	subjectCmd.AddCommand(subjectAddCmd)
	chapterCmd.AddCommand(chapterDoneCmd)
	rootCmd.AddCommand(examCmd, subjectCmd, chapterCmd, todayCmd)
}

func runExamAdd(cmd *cobra.Command, args []string) error {
	resp, err := newClient().AddExam(cmd.Context(), &api.AddExamRequest{Name: args[0], Date: args[1]})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s on %s %s\n",
		successStyle.Render("Added"), titleStyle.Render(resp.Exam.Name), resp.Exam.Date, mutedStyle.Render(resp.Exam.ID))
	return nil
}

func runExamList(cmd *cobra.Command, args []string) error {
	resp, err := newClient().ListExams(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), renderPlan(resp.Exams))
	return nil
}

func runExamDelete(cmd *cobra.Command, args []string) error {
	if err := newClient().DeleteExam(cmd.Context(), &api.DeleteExamRequest{ExamID: args[0]}); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), mutedStyle.Render("Exam deleted."))
	return nil
}

func runSubjectAdd(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, mutedStyle.Render("Drafting syllabus..."))

	resp, err := newClient().AddSubject(cmd.Context(), &api.AddSubjectRequest{ExamID: args[0], Name: args[1]})
	if err != nil {
		return err
	}
	sub := resp.Subject
	fmt.Fprintf(out, "%s %s %s\n", successStyle.Render("Added"), titleStyle.Render(sub.Name), mutedStyle.Render(sub.ID))
	if len(sub.Chapters) == 0 {
		fmt.Fprintln(out, mutedStyle.Render("The tutor could not draft chapters; the subject was added empty."))
		return nil
	}
	for _, c := range sub.Chapters {
		fmt.Fprintf(out, "  %-40s %3dh  %s %s\n", c.Name, c.EstimatedHours, difficultyBadge(c.Difficulty), mutedStyle.Render(c.ID))
	}
	return nil
}

func runChapterDone(cmd *cobra.Command, args []string) error {
	resp, err := newClient().CompleteChapter(cmd.Context(), &api.CompleteChapterRequest{
		ExamID:    args[0],
		SubjectID: args[1],
		ChapterID: args[2],
	})
	if err != nil {
		return err
	}
	if !resp.Updated {
		return fmt.Errorf("no chapter %s under subject %s of exam %s", args[2], args[1], args[0])
	}
	fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("Chapter completed."))
	return nil
}

func runToday(cmd *cobra.Command, args []string) error {
	resp, err := newClient().GetDashboard(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), renderDashboard(resp))
	return nil
}

func renderPlan(exams []models.Exam) string {
	if len(exams) == 0 {
		return mutedStyle.Render("No exams yet. Add one with `studyflow exam add`.") + "\n"
	}
	var b strings.Builder
	for _, e := range exams {
		fmt.Fprintf(&b, "%s  %s  %s\n", titleStyle.Render(e.Name), e.Date, mutedStyle.Render(e.ID))
		for _, s := range e.Subjects {
			done := planner.CompletedChapters(s)
			fmt.Fprintf(&b, "  %s  %d/%d chapters, %dh  %s\n", s.Name, done, len(s.Chapters), planner.SubjectHours(s), mutedStyle.Render(s.ID))
			for _, c := range s.Chapters {
				mark := "[ ]"
				if c.IsCompleted {
					mark = successStyle.Render("[x]")
				}
				fmt.Fprintf(&b, "    %s %-36s %3dh  %s  %s\n", mark, c.Name, c.EstimatedHours, difficultyBadge(c.Difficulty), mutedStyle.Render(c.ID))
			}
		}
	}
	return b.String()
}

func renderDashboard(d *api.GetDashboardResponse) string {
	var b strings.Builder
	if d.Profile != nil {
		fmt.Fprintf(&b, "%s %s\n\n", titleStyle.Render("Hi,"), d.Profile.Username)
	}

	b.WriteString(titleStyle.Render("Today's focus") + "\n")
	if len(d.Tasks) == 0 {
		b.WriteString(mutedStyle.Render("  Nothing pending. Add subjects to an upcoming exam.") + "\n")
	}
	for i, t := range d.Tasks {
		fmt.Fprintf(&b, "  %d. %s %s\n     %s / %s, %s, %s\n",
			i+1, t.Chapter.Name, difficultyBadge(t.Chapter.Difficulty),
			t.ExamName, t.SubjectName, daysLabel(t.DaysLeft), strconv.Itoa(t.Chapter.EstimatedHours)+"h")
	}

	fmt.Fprintf(&b, "\n%s %dh %dm of %dh\n  %s\n",
		titleStyle.Render("This week"), d.WeeklyMinutes/60, d.WeeklyMinutes%60, d.WeeklyGoalMinutes/60,
		progressBar(d.GoalProgress, 30))
	return b.String()
}

func daysLabel(days int) string {
	switch days {
	case 0:
		return "exam today"
	case 1:
		return "1 day left"
	default:
		return fmt.Sprintf("%d days left", days)
	}
}
