package main

import (
	"encoding/base64"
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmynk/studyflow/internal/models"
	"github.com/mmynk/studyflow/pkg/api"
)

var (
	flashcardCount int
	askImage       string
)

var flashcardsCmd = &cobra.Command{
	Use:   "flashcards <topic>",
	Short: "Generate revision flashcards on a topic",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFlashcards,
}

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask the AI tutor a doubt, optionally with a photo",
	Long: `Sends a question to the AI tutor and renders the step-by-step answer.

Example:
  studyflow ask "Why is the sky blue?"
  studyflow ask "Solve this" --image ./problem.jpg`,
	RunE: runAsk,
}

func init() {
	flashcardsCmd.Flags().IntVarP(&flashcardCount, "count", "n", 0, "number of cards (default 5)")
	askCmd.Flags().StringVar(&askImage, "image", "", "path to an image of the problem")
	rootCmd.AddCommand(flashcardsCmd, askCmd)
}

func runFlashcards(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	topic := strings.Join(args, " ")
	fmt.Fprintln(out, mutedStyle.Render("Generating flashcards..."))

	resp, err := newClient().GenerateFlashcards(cmd.Context(), &api.GenerateFlashcardsRequest{Topic: topic, Count: flashcardCount})
	if err != nil {
		return err
	}
	fmt.Fprint(out, renderFlashcards(resp.Cards))
	return nil
}

func renderFlashcards(cards []models.Flashcard) string {
	if len(cards) == 0 {
		return mutedStyle.Render("The tutor could not generate flashcards. Try again.") + "\n"
	}
	var b strings.Builder
	for i, c := range cards {
		b.WriteString(boxStyle.Render(fmt.Sprintf("%s %s\n%s", titleStyle.Render(fmt.Sprintf("Q%d.", i+1)), c.Front, mutedStyle.Render(c.Back))))
		b.WriteString("\n")
	}
	return b.String()
}

func runAsk(cmd *cobra.Command, args []string) error {
	req := &api.SolveDoubtRequest{Text: strings.Join(args, " ")}
	if askImage != "" {
		image, err := encodeImage(askImage)
		if err != nil {
			return err
		}
		req.Image = image
	}
	if strings.TrimSpace(req.Text) == "" && req.Image == "" {
		return errors.New("ask needs a question or --image")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, mutedStyle.Render("Thinking..."))

	resp, err := newClient().SolveDoubt(cmd.Context(), req)
	if err != nil {
		return err
	}
	fmt.Fprint(out, renderMarkdown(resp.Answer))
	return nil
}

// encodeImage reads an image file as a base64 data URL.
func encodeImage(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	mimeType := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// parsePositive parses a strictly positive integer argument.
func parsePositive(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, errors.New("must be positive")
	}
	return n, nil
}
