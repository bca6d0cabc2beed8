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

// DefaultFlashcardCount is the deck size when none is requested.
const DefaultFlashcardCount = 5

var flashcardSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"front": {Type: genai.TypeString, Description: "The question or term on the front"},
			"back":  {Type: genai.TypeString, Description: "The answer or definition on the back"},
		},
		Required: []string{"front", "back"},
	},
}

type flashcardItem struct {
	Front *string `json:"front"`
	Back  *string `json:"back"`
}

// GenerateFlashcards asks the model for count study flashcards on topic.
// A count of zero or less uses DefaultFlashcardCount. It returns an empty
// deck on any failure.
func (g *Gateway) GenerateFlashcards(ctx context.Context, topic string, count int) []models.Flashcard {
	if count <= 0 {
		count = DefaultFlashcardCount
	}
	prompt := fmt.Sprintf("Create %d effective study flashcards for the topic: %q.\n"+
		"Keep the questions concise and answers clear.", count, topic)

	text, err := g.generate(ctx, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   flashcardSchema,
	})
	var cards []models.Flashcard
	if err == nil {
		cards, err = ParseFlashcards(text)
	}
	g.metrics.observe(callFlashcards, err)
	if err != nil {
		slog.Error("Error generating flashcards", "topic", topic, "error", err)
		return []models.Flashcard{}
	}

	slog.Info("Flashcards generated", "topic", topic, "cards", len(cards))
	return cards
}

// ParseFlashcards maps a structured flashcard response to new cards with
// fresh IDs and status "new".
func ParseFlashcards(text string) ([]models.Flashcard, error) {
	if text == "" {
		return []models.Flashcard{}, nil
	}

	var items []flashcardItem
	if err := json.Unmarshal([]byte(text), &items); err != nil {
		return nil, fmt.Errorf("failed to decode flashcards: %w", err)
	}

	cards := make([]models.Flashcard, 0, len(items))
	for i, item := range items {
		if item.Front == nil || item.Back == nil {
			return nil, fmt.Errorf("flashcard %d: missing front or back", i)
		}
		cards = append(cards, models.Flashcard{
			ID:     uuid.New().String(),
			Front:  *item.Front,
			Back:   *item.Back,
			Status: models.FlashcardNew,
		})
	}
	return cards, nil
}
