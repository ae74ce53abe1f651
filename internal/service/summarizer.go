package service

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"pdfsummarizer/internal/extractor"
	"pdfsummarizer/internal/model"
	"pdfsummarizer/internal/prompt"
	"pdfsummarizer/internal/providers"
)

// Pipeline failures. The wrapped cause is for logs only.
var (
	ErrSummaryFailed = errors.New("failed to process PDF or generate summary")
	ErrQuizFailed    = errors.New("failed to process PDF or generate quiz")
	ErrUploadNil     = errors.New("upload is nil")
)

var tracer = otel.Tracer("pdfsummarizer/service")

// SummarizeInput is one validated request to the pipeline.
type SummarizeInput struct {
	Upload *model.Upload
	Style  prompt.SummaryStyle
}

// SummarizerService defines the document summarization use cases.
type SummarizerService interface {
	// Summarize extracts the PDF text, asks the model for a bullet-point
	// summary and then for a quiz built from that summary.
	Summarize(ctx context.Context, in SummarizeInput) (*model.SummaryResult, error)

	// Quiz runs the same pipeline and returns only the quiz.
	Quiz(ctx context.Context, in SummarizeInput) (*model.QuizResult, error)
}

type summarizerService struct {
	extractor     extractor.TextExtractor
	generator     providers.Generator
	quizQuestions int
}

// NewSummarizerService constructs a new SummarizerService.
func NewSummarizerService(ex extractor.TextExtractor, gen providers.Generator, quizQuestions int) SummarizerService {
	return &summarizerService{extractor: ex, generator: gen, quizQuestions: quizQuestions}
}

func (s *summarizerService) Summarize(ctx context.Context, in SummarizeInput) (*model.SummaryResult, error) {
	ctx, span := tracer.Start(ctx, "Summarize")
	defer span.End()

	summary, err := s.summarize(ctx, in)
	if err != nil {
		return nil, fail(span, ErrSummaryFailed, err)
	}
	quiz, err := s.quiz(ctx, summary)
	if err != nil {
		return nil, fail(span, ErrSummaryFailed, err)
	}
	return &model.SummaryResult{Summary: summary, Quiz: quiz}, nil
}

func (s *summarizerService) Quiz(ctx context.Context, in SummarizeInput) (*model.QuizResult, error) {
	ctx, span := tracer.Start(ctx, "Quiz")
	defer span.End()

	summary, err := s.summarize(ctx, in)
	if err != nil {
		return nil, fail(span, ErrQuizFailed, err)
	}
	quiz, err := s.quiz(ctx, summary)
	if err != nil {
		return nil, fail(span, ErrQuizFailed, err)
	}
	return &model.QuizResult{Quiz: quiz}, nil
}

func (s *summarizerService) summarize(ctx context.Context, in SummarizeInput) (string, error) {
	if in.Upload == nil {
		return "", ErrUploadNil
	}

	ectx, span := tracer.Start(ctx, "ExtractText", trace.WithAttributes(
		attribute.String("pdf.filename", in.Upload.Filename),
		attribute.Int64("pdf.size", in.Upload.Size),
	))
	res, err := s.extractor.Extract(ectx, in.Upload.Data)
	if err != nil {
		span.End()
		return "", fmt.Errorf("extract text: %w", err)
	}
	span.SetAttributes(
		attribute.Int("pdf.pages", res.PageCount),
		attribute.Int("pdf.words", res.WordCount),
	)
	span.End()

	return s.generate(ctx, providers.OperationSummary, prompt.Summary(res.Text, in.Style))
}

func (s *summarizerService) quiz(ctx context.Context, summary string) (string, error) {
	return s.generate(ctx, providers.OperationQuiz, prompt.Quiz(summary, s.quizQuestions))
}

func (s *summarizerService) generate(ctx context.Context, op, p string) (string, error) {
	ctx, span := tracer.Start(ctx, "Generate", trace.WithAttributes(attribute.String("model.operation", op)))
	defer span.End()

	resp, info, err := s.generator.Generate(ctx, providers.GenerateRequest{Operation: op, Prompt: p})
	span.SetAttributes(
		attribute.String("model.provider", info.Name),
		attribute.String("model.name", info.Model),
	)
	if err != nil {
		span.RecordError(err)
		return "", fmt.Errorf("generate %s: %w", op, err)
	}
	span.SetAttributes(attribute.Int("model.total_tokens", resp.Usage.TotalTokens))
	return resp.Text, nil
}

func fail(span trace.Span, public, cause error) error {
	span.RecordError(cause)
	span.SetStatus(codes.Error, public.Error())
	return fmt.Errorf("%w: %w", public, cause)
}
