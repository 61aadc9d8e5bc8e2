package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/lshigami/studyaid/internal/llm"
	"github.com/lshigami/studyaid/internal/quiz"
)

// QuestionGenerator produces a question set for the given input.
type QuestionGenerator interface {
	Generate(ctx context.Context, in Input) (*quiz.QuestionSet, error)
}

// NotesGenerator produces markdown study notes for the given input.
type NotesGenerator interface {
	GenerateNotes(ctx context.Context, in NotesInput) (*quiz.Notes, error)
}

// QuestionGeneratorFunc adapts a function to QuestionGenerator.
type QuestionGeneratorFunc func(ctx context.Context, in Input) (*quiz.QuestionSet, error)

func (f QuestionGeneratorFunc) Generate(ctx context.Context, in Input) (*quiz.QuestionSet, error) {
	return f(ctx, in)
}

type GeneratorConfig struct {
	MaxTokens   int
	Temperature float64
}

func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{MaxTokens: 8192, Temperature: 0.4}
}

// LLMGenerator implements QuestionGenerator and NotesGenerator on an llm.Provider.
type LLMGenerator struct {
	provider llm.Provider
	config   GeneratorConfig
	now      func() time.Time
}

func NewLLMGenerator(provider llm.Provider, cfg GeneratorConfig) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg, now: time.Now}
}

type questionSetOutput struct {
	Questions []quiz.Question `json:"questions"`
}

func (g *LLMGenerator) Generate(ctx context.Context, in Input) (*quiz.QuestionSet, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	req := llm.UserPrompt(questionSystemPrompt, buildQuestionPrompt(in))
	req.Schema = QuestionSetSchema
	req.MaxTokens = g.config.MaxTokens
	req.Temperature = g.config.Temperature

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("question generation failed: %w", err)
	}

	var out questionSetOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("failed to parse question set: %w", err)
	}
	for i, q := range out.Questions {
		if err := q.Validate(); err != nil {
			return nil, fmt.Errorf("question %d: %w", i+1, err)
		}
	}
	if out.Questions == nil {
		out.Questions = []quiz.Question{}
	}

	return &quiz.QuestionSet{
		QuestionType: in.QuestionType,
		Subject:      in.Subject,
		Grade:        in.Grade,
		StartPage:    in.StartPage,
		EndPage:      in.EndPage,
		Timestamp:    g.now().UTC(),
		Questions:    out.Questions,
	}, nil
}

func (g *LLMGenerator) GenerateNotes(ctx context.Context, in NotesInput) (*quiz.Notes, error) {
	ctx = llm.WithPurpose(ctx, "notes")

	req := llm.UserPrompt(notesSystemPrompt, buildNotesPrompt(in))
	req.MaxTokens = g.config.MaxTokens
	req.Temperature = g.config.Temperature

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("notes generation failed: %w", err)
	}
	content := strings.TrimSpace(string(resp.Content))
	if content == "" {
		return nil, &llm.ErrEmptyOutput{}
	}

	return &quiz.Notes{
		Subject:   in.Subject,
		Grade:     in.Grade,
		StartPage: in.StartPage,
		EndPage:   in.EndPage,
		Content:   content,
		Timestamp: g.now().UTC(),
	}, nil
}

// GenerateNotesWithRetry validates in, then calls gen under the policy.
func GenerateNotesWithRetry(ctx context.Context, gen NotesGenerator, in NotesInput, p Policy) (*quiz.Notes, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return Do(ctx, p, func(ctx context.Context) (*quiz.Notes, error) {
		return gen.GenerateNotes(ctx, in)
	})
}
