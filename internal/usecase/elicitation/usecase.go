package elicitation

import (
	"context"
	"fmt"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/sitebrief/requirements-backend/internal/entity"
	"github.com/sitebrief/requirements-backend/internal/pkg/validator"
	"github.com/sitebrief/requirements-backend/internal/prompts"
	"go.uber.org/zap"
)

// Stage temperatures, matching the behavior each stage wants: near-factual
// extraction runs cold, generation runs slightly warmer.
const (
	taskListTemperature   = 0.5
	analysisTemperature   = 0.3
	assessmentTemperature = 0.3
	followUpTemperature   = 0.4
	generationTemperature = 0.4
)

// Usecase drives the elicitation stage graph. Every method maps prior
// documents to one new document via exactly one completion call; no entity
// is mutated in place.
type Usecase struct {
	client    CompletionClient
	validator *validator.Validator
	logger    *zap.Logger
}

func NewUsecase(
	client CompletionClient,
	validator *validator.Validator,
	logger *zap.Logger,
) *Usecase {
	return &Usecase{
		client:    client,
		validator: validator,
		logger:    logger,
	}
}

// GenerateTaskList is the single-shot variant: free-text in, free-text out.
func (uc *Usecase) GenerateTaskList(ctx context.Context, description string) (string, error) {
	ctxzap.Info(ctx, "generating task list")

	tasks, err := uc.client.Complete(ctx, prompts.TaskList, description, entity.CompletionOptions{
		Temperature: taskListTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("generate task list: %w", err)
	}

	return tasks, nil
}

// AnalyzeDescription runs the gap-analysis stage: an understood summary plus
// 0..5 follow-up questions, ordered by descending critical level. choiceMode
// requests questions with selectable options. The parsed result is validated
// against the prompt's schema before it is returned.
func (uc *Usecase) AnalyzeDescription(ctx context.Context, description string, choiceMode bool) (*entity.Analysis, error) {
	ctxzap.Info(ctx, "analyzing description", zap.Bool("choice_mode", choiceMode))

	systemPrompt := prompts.GapAnalysis
	if choiceMode {
		systemPrompt = prompts.GapAnalysisWithChoices
	}

	var analysis entity.Analysis
	if err := uc.client.CompleteJSON(ctx, systemPrompt, description, analysisTemperature, &analysis); err != nil {
		return nil, fmt.Errorf("analyze description: %w", err)
	}

	if err := uc.validator.ValidateAnalysis(&analysis); err != nil {
		return nil, &entity.MalformedResponseError{Reason: "analysis violates the backend contract", Err: err}
	}

	ctxzap.Info(ctx, "description analyzed", zap.Int("question_count", len(analysis.Questions)))

	return &analysis, nil
}

// AnalyzeBreakdown is the first stage of the validated variant: one
// comprehensive pass that also lists the missing information.
func (uc *Usecase) AnalyzeBreakdown(ctx context.Context, description string) (*entity.RequirementsBreakdown, error) {
	ctxzap.Info(ctx, "analyzing requirements breakdown")

	userPrompt := fmt.Sprintf("Please analyze this website request and provide comprehensive requirements: %s", description)

	var breakdown entity.RequirementsBreakdown
	if err := uc.client.CompleteJSON(ctx, prompts.Breakdown, userPrompt, analysisTemperature, &breakdown); err != nil {
		return nil, fmt.Errorf("analyze breakdown: %w", err)
	}

	return &breakdown, nil
}

// AssessCompleteness scores a breakdown section by section.
func (uc *Usecase) AssessCompleteness(ctx context.Context, breakdown *entity.RequirementsBreakdown) (*entity.CompletenessAssessment, error) {
	ctxzap.Info(ctx, "assessing completeness")

	breakdownJSON, err := marshalCompact(breakdown)
	if err != nil {
		return nil, fmt.Errorf("encode breakdown: %w", err)
	}

	userPrompt := fmt.Sprintf("Please assess the completeness of these website requirements: %s", breakdownJSON)

	var assessment entity.CompletenessAssessment
	if err := uc.client.CompleteJSON(ctx, prompts.Completeness, userPrompt, assessmentTemperature, &assessment); err != nil {
		return nil, fmt.Errorf("assess completeness: %w", err)
	}

	if err := uc.validator.ValidateAssessment(&assessment); err != nil {
		return nil, &entity.MalformedResponseError{Reason: "assessment violates the backend contract", Err: err}
	}

	ctxzap.Info(ctx, "completeness assessed", zap.Int("score", assessment.CompletenessScore))

	return &assessment, nil
}

// GenerateFollowUps turns a breakdown plus assessment into refinement
// questions. The 5-7 cap is the prompt's instruction; this variant trusts
// the backend's count.
func (uc *Usecase) GenerateFollowUps(
	ctx context.Context,
	breakdown *entity.RequirementsBreakdown,
	assessment *entity.CompletenessAssessment,
) ([]entity.RefinementQuestion, error) {
	ctxzap.Info(ctx, "generating follow-up questions")

	breakdownJSON, err := marshalCompact(breakdown)
	if err != nil {
		return nil, fmt.Errorf("encode breakdown: %w", err)
	}
	assessmentJSON, err := marshalCompact(assessment)
	if err != nil {
		return nil, fmt.Errorf("encode assessment: %w", err)
	}

	userPrompt := fmt.Sprintf(
		"Here are the initial website requirements:\n%s\n\nAnd here is the completeness assessment:\n%s\n\nWhat follow-up questions should I ask to improve the requirements?",
		breakdownJSON, assessmentJSON,
	)

	var questions entity.RefinementQuestions
	if err := uc.client.CompleteJSON(ctx, prompts.FollowUps, userPrompt, followUpTemperature, &questions); err != nil {
		return nil, fmt.Errorf("generate follow-ups: %w", err)
	}

	return questions.FollowUpQuestions, nil
}

// GenerateRequirements produces the final document from the original
// description and the collected answers. Answers may be a strict subset of
// the question batch; the backend only ever sees flattened text values.
func (uc *Usecase) GenerateRequirements(ctx context.Context, description string, answers entity.AnswerMap) (*entity.RequirementsDocument, error) {
	ctxzap.Info(ctx, "generating requirements document", zap.Int("answer_count", len(answers)))

	userPrompt, err := buildGenerationPrompt(description, answers)
	if err != nil {
		return nil, fmt.Errorf("build generation prompt: %w", err)
	}

	var doc entity.RequirementsDocument
	if err := uc.client.CompleteJSON(ctx, prompts.Comprehensive, userPrompt, generationTemperature, &doc); err != nil {
		return nil, fmt.Errorf("generate requirements: %w", err)
	}

	if err := uc.validator.ValidateRequirements(&doc); err != nil {
		return nil, &entity.MalformedResponseError{Reason: "document violates the backend contract", Err: err}
	}

	ctxzap.Info(ctx, "requirements document generated",
		zap.String("website_name", doc.WebsiteSummary.Name),
		zap.Int("page_count", len(doc.Pages)),
	)

	return &doc, nil
}
