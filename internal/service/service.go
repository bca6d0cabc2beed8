// Package service implements the StudyFlow Connect services over a
// storage.Store and the AI gateway.
package service

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/studyflow/internal/models"
	"github.com/mmynk/studyflow/pkg/api"
)

// Tutor is the AI gateway as seen by the services. *gateway.Gateway implements it.
// Implementations never fail: they degrade to empty results or a fixed reply.
type Tutor interface {
	GenerateSyllabus(ctx context.Context, subject, examType string) []models.Chapter
	GenerateFlashcards(ctx context.Context, topic string, count int) []models.Flashcard
	SolveDoubt(ctx context.Context, text, image string) string
}

var (
	// ErrNoProfile is returned by operations that need a logged-in profile.
	ErrNoProfile = errors.New("no profile: log in first")

	// ErrExamNotFound is returned when an exam ID does not resolve.
	ErrExamNotFound = errors.New("exam not found")
)

// invalidArgument wraps a form-rule violation.
func invalidArgument(msg string) error {
	return connect.NewError(connect.CodeInvalidArgument, errors.New(msg))
}

// newServiceHandler routes the procedures of one service to their handlers,
// mirroring what generated Connect code does. It returns the mount path.
func newServiceHandler(serviceName string, handlers map[string]*connect.Handler) (string, http.Handler) {
	path := "/" + serviceName + "/"
	return path, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h, ok := handlers[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		h.ServeHTTP(w, r)
	})
}

// handlerOptions puts the JSON codec ahead of caller options.
func handlerOptions(opts []connect.HandlerOption) []connect.HandlerOption {
	return append([]connect.HandlerOption{api.WithJSON()}, opts...)
}

func trimmed(s string) string { return strings.TrimSpace(s) }
