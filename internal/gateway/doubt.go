package gateway

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"
)

// Fixed doubt-solver replies.
const (
	DoubtErrorReply = "Sorry, I encountered an error while trying to solve your doubt."
	DoubtEmptyReply = "I couldn't generate a response. Please try again."
)

const tutorInstruction = "You are a helpful, encouraging study companion. Explain concepts simply and clearly. " +
	"If the user uploads an image of a problem, solve it step-by-step."

const defaultImageMIME = "image/jpeg"

// SolveDoubt answers a student question, optionally about an image.
//
// image is a base64 payload, with or without a "data:<mime>;base64," prefix.
// On any failure the fixed DoubtErrorReply is returned.
func (g *Gateway) SolveDoubt(ctx context.Context, text, image string) string {
	answer, err := g.solveDoubt(ctx, text, image)
	g.metrics.observe(callDoubt, err)
	if err != nil {
		slog.Error("Error solving doubt", "has_image", image != "", "error", err)
		return DoubtErrorReply
	}
	if answer == "" {
		return DoubtEmptyReply
	}
	return answer
}

func (g *Gateway) solveDoubt(ctx context.Context, text, image string) (string, error) {
	var parts []*genai.Part
	if image != "" {
		data, mime, err := DecodeImage(image)
		if err != nil {
			return "", err
		}
		parts = append(parts, genai.NewPartFromBytes(data, mime))
	}
	if text != "" || len(parts) == 0 {
		parts = append(parts, genai.NewPartFromText(text))
	}

	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
	return g.generate(ctx, contents, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(tutorInstruction, genai.RoleUser),
	})
}

var errEmptyImage = errors.New("empty image payload")

// DecodeImage decodes a base64 image payload. A data URL header, if present,
// is stripped and its MIME type used; otherwise the image is taken as JPEG.
func DecodeImage(payload string) ([]byte, string, error) {
	mime := defaultImageMIME
	if rest, ok := strings.CutPrefix(payload, "data:"); ok {
		header, body, found := strings.Cut(rest, ",")
		if !found {
			return nil, "", fmt.Errorf("malformed data URL")
		}
		if m, _, _ := strings.Cut(header, ";"); m != "" {
			mime = m
		}
		payload = body
	}
	if payload == "" {
		return nil, "", errEmptyImage
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		data, err = base64.RawStdEncoding.DecodeString(payload)
		if err != nil {
			return nil, "", fmt.Errorf("failed to decode image: %w", err)
		}
	}
	return data, mime, nil
}
