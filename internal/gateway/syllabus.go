package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/genai"

	"github.com/mmynk/studyflow/internal/models"
)

var syllabusSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"name":           {Type: genai.TypeString},
			"estimatedHours": {Type: genai.TypeInteger},
			"difficulty": {
				Type: genai.TypeString,
				Enum: []string{
					string(models.DifficultyEasy),
					string(models.DifficultyMedium),
					string(models.DifficultyHard),
				},
			},
		},
		Required: []string{"name", "estimatedHours", "difficulty"},
	},
}

type syllabusItem struct {
	Name           string `json:"name"`
	EstimatedHours int    `json:"estimatedHours"`
	Difficulty     string `json:"difficulty"`
}

// GenerateSyllabus asks the model for the key chapters of subject when
// preparing for examType. It returns an empty list on any failure.
func (g *Gateway) GenerateSyllabus(ctx context.Context, subject, examType string) []models.Chapter {
	prompt := fmt.Sprintf("Generate a list of key chapters for the subject %q specifically for a student preparing for %q.\n"+
		"For each chapter, estimate the study hours required (integer) and difficulty (Easy, Medium, Hard).", subject, examType)

	text, err := g.generate(ctx, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   syllabusSchema,
	})
	var chapters []models.Chapter
	if err == nil {
		chapters, err = ParseSyllabus(text)
	}
	g.metrics.observe(callSyllabus, err)
	if err != nil {
		slog.Error("Error generating syllabus", "subject", subject, "exam_type", examType, "error", err)
		return []models.Chapter{}
	}

	slog.Info("Syllabus generated", "subject", subject, "chapters", len(chapters))
	return chapters
}

// ParseSyllabus maps a structured syllabus response to new, incomplete
// chapters with fresh IDs. An empty response is an empty syllabus.
// Any item that breaks the schema rejects the whole response.
func ParseSyllabus(text string) ([]models.Chapter, error) {
	if text == "" {
		return []models.Chapter{}, nil
	}

	var items []syllabusItem
	if err := json.Unmarshal([]byte(text), &items); err != nil {
		return nil, fmt.Errorf("failed to decode syllabus: %w", err)
	}

	chapters := make([]models.Chapter, 0, len(items))
	for i, item := range items {
		difficulty, err := models.ParseDifficulty(item.Difficulty)
		if err != nil {
			return nil, fmt.Errorf("syllabus item %d: %w", i, err)
		}
		if item.Name == "" {
			return nil, fmt.Errorf("syllabus item %d: missing name", i)
		}
		if item.EstimatedHours <= 0 {
			return nil, fmt.Errorf("syllabus item %d: estimated hours must be positive, got %d", i, item.EstimatedHours)
		}
		chapters = append(chapters, models.Chapter{
			ID:             uuid.New().String(),
			Name:           item.Name,
			EstimatedHours: item.EstimatedHours,
			Difficulty:     difficulty,
			IsCompleted:    false,
		})
	}
	return chapters, nil
}
