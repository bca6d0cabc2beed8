package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/studyflow/pkg/api"
)

// MaxFlashcards caps the deck size a caller may request.
const MaxFlashcards = 20

// TutorService exposes the stateless AI helpers: flashcards and doubt solving.
type TutorService struct {
	tutor Tutor
}

// NewTutorService creates a new TutorService backed by tutor.
func NewTutorService(tutor Tutor) *TutorService {
	return &TutorService{tutor: tutor}
}

// NewTutorServiceHandler builds the HTTP handler for s.
func NewTutorServiceHandler(s *TutorService, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return newServiceHandler(api.TutorServiceName, map[string]*connect.Handler{
		api.TutorServiceGenerateFlashcardsProcedure: connect.NewUnaryHandler(api.TutorServiceGenerateFlashcardsProcedure, s.GenerateFlashcards, opts...),
		api.TutorServiceSolveDoubtProcedure:         connect.NewUnaryHandler(api.TutorServiceSolveDoubtProcedure, s.SolveDoubt, opts...),
	})
}

// GenerateFlashcards builds a deck on a topic. The deck is empty if
// generation failed.
func (s *TutorService) GenerateFlashcards(ctx context.Context, req *connect.Request[api.GenerateFlashcardsRequest]) (*connect.Response[api.GenerateFlashcardsResponse], error) {
	slog.Info("GenerateFlashcards request received", "topic", req.Msg.Topic, "count", req.Msg.Count)

	topic := trimmed(req.Msg.Topic)
	if topic == "" {
		return nil, invalidArgument("topic is required")
	}
	if req.Msg.Count < 0 || req.Msg.Count > MaxFlashcards {
		return nil, invalidArgument(fmt.Sprintf("count must be between 0 and %d", MaxFlashcards))
	}

	cards := s.tutor.GenerateFlashcards(ctx, topic, req.Msg.Count)
	return connect.NewResponse(&api.GenerateFlashcardsResponse{Cards: cards}), nil
}

// SolveDoubt answers a question, optionally about an image. Tutor failures
// come back as a fixed apology in Answer, not as an error.
func (s *TutorService) SolveDoubt(ctx context.Context, req *connect.Request[api.SolveDoubtRequest]) (*connect.Response[api.SolveDoubtResponse], error) {
	slog.Info("SolveDoubt request received", "text_len", len(req.Msg.Text), "has_image", req.Msg.Image != "")

	if trimmed(req.Msg.Text) == "" && req.Msg.Image == "" {
		return nil, invalidArgument("a question or an image is required")
	}

	answer := s.tutor.SolveDoubt(ctx, req.Msg.Text, req.Msg.Image)
	return connect.NewResponse(&api.SolveDoubtResponse{Answer: answer}), nil
}
