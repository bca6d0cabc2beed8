package gateway

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/mmynk/studyflow/internal/models"
)

// fakeModel returns a canned text response or error and records the last call.
type fakeModel struct {
	text string
	err  error

	calls    int
	model    string
	contents []*genai.Content
	config   *genai.GenerateContentConfig
	deadline bool
}

func (f *fakeModel) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.calls++
	f.model = model
	f.contents = contents
	f.config = config
	_, f.deadline = ctx.Deadline()
	if f.err != nil {
		return nil, f.err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Role: genai.RoleModel, Parts: []*genai.Part{{Text: f.text}}},
		}},
	}, nil
}

func TestGenerateSyllabus(t *testing.T) {
	fake := &fakeModel{text: `[
		{"name": "Kinematics", "estimatedHours": 6, "difficulty": "Medium"},
		{"name": "Rotational Motion", "estimatedHours": 10, "difficulty": "Hard"},
		{"name": "Units and Dimensions", "estimatedHours": 2, "difficulty": "Easy"}
	]`}
	g := NewWithModel(fake, Options{})

	chapters := g.GenerateSyllabus(context.Background(), "Physics", "JEE")

	require.Len(t, chapters, 3)
	assert.Equal(t, "Kinematics", chapters[0].Name)
	assert.Equal(t, 6, chapters[0].EstimatedHours)
	assert.Equal(t, models.DifficultyMedium, chapters[0].Difficulty)
	assert.Equal(t, "Rotational Motion", chapters[1].Name)
	assert.Equal(t, models.DifficultyHard, chapters[1].Difficulty)
	assert.Equal(t, 2, chapters[2].EstimatedHours)

	seen := map[string]bool{}
	for _, c := range chapters {
		assert.False(t, c.IsCompleted)
		assert.NotEmpty(t, c.ID)
		assert.False(t, seen[c.ID], "duplicate id %s", c.ID)
		seen[c.ID] = true
	}

	assert.Equal(t, DefaultModel, fake.model)
	require.NotNil(t, fake.config)
	assert.Equal(t, "application/json", fake.config.ResponseMIMEType)
	assert.Equal(t, syllabusSchema, fake.config.ResponseSchema)
	assert.False(t, fake.deadline, "no timeout configured")
}

func TestGenerateSyllabusFailures(t *testing.T) {
	tests := []struct {
		name  string
		model *fakeModel
	}{
		{"network error", &fakeModel{err: errors.New("connection reset")}},
		{"not json", &fakeModel{text: "Here are your chapters: ..."}},
		{"object instead of list", &fakeModel{text: `{"name": "Optics"}`}},
		{"unknown difficulty", &fakeModel{text: `[{"name": "Optics", "estimatedHours": 3, "difficulty": "Brutal"}]`}},
		{"fractional hours", &fakeModel{text: `[{"name": "Optics", "estimatedHours": 2.5, "difficulty": "Easy"}]`}},
		{"zero hours", &fakeModel{text: `[{"name": "Optics", "estimatedHours": 0, "difficulty": "Easy"}]`}},
		{"missing name", &fakeModel{text: `[{"estimatedHours": 3, "difficulty": "Easy"}]`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewWithModel(tt.model, Options{})
			chapters := g.GenerateSyllabus(context.Background(), "Physics", "JEE")
			assert.NotNil(t, chapters)
			assert.Empty(t, chapters)
			assert.Equal(t, 1, tt.model.calls, "no retries")
		})
	}
}

func TestGenerateSyllabusEmptyText(t *testing.T) {
	g := NewWithModel(&fakeModel{text: ""}, Options{})
	assert.Empty(t, g.GenerateSyllabus(context.Background(), "Physics", "JEE"))
}

func TestGenerateFlashcards(t *testing.T) {
	fake := &fakeModel{text: `[
		{"front": "What is photosynthesis?", "back": "Conversion of light energy into chemical energy"},
		{"front": "Chlorophyll", "back": "Green pigment that absorbs light"}
	]`}
	g := NewWithModel(fake, Options{Model: "gemini-test"})

	cards := g.GenerateFlashcards(context.Background(), "Photosynthesis", 0)

	require.Len(t, cards, 2)
	assert.Equal(t, "What is photosynthesis?", cards[0].Front)
	assert.Equal(t, "Conversion of light energy into chemical energy", cards[0].Back)
	assert.Equal(t, "Chlorophyll", cards[1].Front)
	for _, c := range cards {
		assert.Equal(t, models.FlashcardNew, c.Status)
		assert.NotEmpty(t, c.ID)
	}
	assert.NotEqual(t, cards[0].ID, cards[1].ID)

	assert.Equal(t, "gemini-test", fake.model)
	assert.Equal(t, flashcardSchema, fake.config.ResponseSchema)
	require.Len(t, fake.contents, 1)
	assert.Contains(t, fake.contents[0].Parts[0].Text, "Create 5 effective study flashcards")
}

func TestGenerateFlashcardsFailures(t *testing.T) {
	tests := []struct {
		name  string
		model *fakeModel
	}{
		{"quota error", &fakeModel{err: errors.New("429 resource exhausted")}},
		{"truncated json", &fakeModel{text: `[{"front": "Q", "back": `}},
		{"missing back", &fakeModel{text: `[{"front": "Q"}]`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewWithModel(tt.model, Options{})
			cards := g.GenerateFlashcards(context.Background(), "Limits", 3)
			assert.NotNil(t, cards)
			assert.Empty(t, cards)
		})
	}
}

func TestSolveDoubt(t *testing.T) {
	t.Run("text only", func(t *testing.T) {
		fake := &fakeModel{text: "Velocity is displacement over time."}
		g := NewWithModel(fake, Options{})

		answer := g.SolveDoubt(context.Background(), "What is velocity?", "")

		assert.Equal(t, "Velocity is displacement over time.", answer)
		require.Len(t, fake.contents, 1)
		require.Len(t, fake.contents[0].Parts, 1)
		assert.Equal(t, "What is velocity?", fake.contents[0].Parts[0].Text)
		require.NotNil(t, fake.config.SystemInstruction)
		assert.Equal(t, tutorInstruction, fake.config.SystemInstruction.Parts[0].Text)
	})

	t.Run("image with data url header", func(t *testing.T) {
		fake := &fakeModel{text: "Step 1: ..."}
		g := NewWithModel(fake, Options{})
		img := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("png-bytes"))

		answer := g.SolveDoubt(context.Background(), "Solve this", img)

		assert.Equal(t, "Step 1: ...", answer)
		parts := fake.contents[0].Parts
		require.Len(t, parts, 2)
		require.NotNil(t, parts[0].InlineData)
		assert.Equal(t, "image/png", parts[0].InlineData.MIMEType)
		assert.Equal(t, []byte("png-bytes"), parts[0].InlineData.Data)
		assert.Equal(t, "Solve this", parts[1].Text)
	})

	t.Run("image only", func(t *testing.T) {
		fake := &fakeModel{text: "It is a right triangle."}
		g := NewWithModel(fake, Options{})

		g.SolveDoubt(context.Background(), "", base64.StdEncoding.EncodeToString([]byte("jpeg-bytes")))

		parts := fake.contents[0].Parts
		require.Len(t, parts, 1)
		assert.Equal(t, "image/jpeg", parts[0].InlineData.MIMEType)
	})

	t.Run("model error returns apology", func(t *testing.T) {
		g := NewWithModel(&fakeModel{err: errors.New("unauthenticated")}, Options{})
		assert.Equal(t, DoubtErrorReply, g.SolveDoubt(context.Background(), "Why?", ""))
	})

	t.Run("bad image returns apology without calling model", func(t *testing.T) {
		fake := &fakeModel{text: "unused"}
		g := NewWithModel(fake, Options{})
		assert.Equal(t, DoubtErrorReply, g.SolveDoubt(context.Background(), "Why?", "data:image/png;base64,!!!"))
		assert.Zero(t, fake.calls)
	})

	t.Run("empty answer", func(t *testing.T) {
		g := NewWithModel(&fakeModel{text: ""}, Options{})
		assert.Equal(t, DoubtEmptyReply, g.SolveDoubt(context.Background(), "Why?", ""))
	})
}

func TestDecodeImage(t *testing.T) {
	raw := []byte{0xff, 0xd8, 0xff, 0xe0}
	std := base64.StdEncoding.EncodeToString(raw)

	tests := []struct {
		name     string
		payload  string
		wantMIME string
		wantErr  bool
	}{
		{"bare base64", std, "image/jpeg", false},
		{"data url", "data:image/webp;base64," + std, "image/webp", false},
		{"unpadded", base64.RawStdEncoding.EncodeToString(raw), "image/jpeg", false},
		{"header without comma", "data:image/png;base64", "", true},
		{"empty body", "data:image/png;base64,", "", true},
		{"invalid chars", "not*base64", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, mime, err := DecodeImage(tt.payload)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, raw, data)
			assert.Equal(t, tt.wantMIME, mime)
		})
	}
}

func TestTimeout(t *testing.T) {
	fake := &fakeModel{text: "[]"}
	g := NewWithModel(fake, Options{Timeout: time.Minute})
	g.GenerateSyllabus(context.Background(), "Physics", "JEE")
	assert.True(t, fake.deadline)
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	ok := NewWithModel(&fakeModel{text: "[]"}, Options{Registerer: reg})

	ok.GenerateSyllabus(context.Background(), "Physics", "JEE")
	ok.GenerateSyllabus(context.Background(), "Chemistry", "JEE")
	ok.metrics.observe(callDoubt, errors.New("boom"))

	assert.Equal(t, 2.0, testutil.ToFloat64(ok.metrics.requests.WithLabelValues(callSyllabus, outcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(ok.metrics.requests.WithLabelValues(callDoubt, outcomeFailed)))

	count, err := testutil.GatherAndCount(reg, "studyflow_ai_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
