package models

// Flashcard is a generated question/answer pair for quick revision.
type Flashcard struct {
	ID    string `json:"id"`
	Front string `json:"front"` // question or term
	Back  string `json:"back"`  // answer or definition

	Status FlashcardStatus `json:"status"`
}

// FlashcardStatus tracks where a card is in review.
type FlashcardStatus string

const (
	FlashcardNew     FlashcardStatus = "new"
	FlashcardLearned FlashcardStatus = "learned"
	FlashcardReview  FlashcardStatus = "review"
)
