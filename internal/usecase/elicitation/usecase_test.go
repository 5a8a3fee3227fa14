package elicitation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/sitebrief/requirements-backend/internal/entity"
	"github.com/sitebrief/requirements-backend/internal/integration/openai"
	"github.com/sitebrief/requirements-backend/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubClient scripts the completion backend for failure scenarios the
// deterministic mock cannot produce.
type stubClient struct {
	content string
	err     error
	calls   int
}

func (s *stubClient) Complete(ctx context.Context, systemPrompt, userPrompt string, opts entity.CompletionOptions) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.content, nil
}

func (s *stubClient) CompleteJSON(ctx context.Context, systemPrompt, userPrompt string, temperature float64, out any) error {
	content, err := s.Complete(ctx, systemPrompt, userPrompt, entity.CompletionOptions{Temperature: temperature, ForceJSON: true})
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(content), out); err != nil {
		return &entity.MalformedResponseError{Reason: "response is not valid JSON", Err: err}
	}
	return nil
}

func newTestUsecase(client CompletionClient) *Usecase {
	return NewUsecase(client, validator.New(), zap.NewNop())
}

func mockUsecase() *Usecase {
	return newTestUsecase(openai.NewMockConnector(zap.NewNop()))
}

func TestGenerateTaskList(t *testing.T) {
	uc := mockUsecase()

	tasks, err := uc.GenerateTaskList(context.Background(), "A portfolio site for a photographer")
	require.NoError(t, err)
	assert.Contains(t, tasks, "1.")
}

func TestAnalyzeDescription(t *testing.T) {
	t.Run("free-text questions", func(t *testing.T) {
		uc := mockUsecase()

		analysis, err := uc.AnalyzeDescription(context.Background(), "A portfolio site", false)
		require.NoError(t, err)
		require.NotNil(t, analysis.Understood.Purpose)
		require.NotEmpty(t, analysis.Questions)

		for _, q := range analysis.Questions {
			assert.Empty(t, q.Options)
		}
	})

	t.Run("choice questions carry options with one default", func(t *testing.T) {
		uc := mockUsecase()

		analysis, err := uc.AnalyzeDescription(context.Background(), "A portfolio site", true)
		require.NoError(t, err)
		require.NotEmpty(t, analysis.Questions)

		for _, q := range analysis.Questions {
			require.NotEmpty(t, q.Options, q.ID)
			require.NotNil(t, q.DefaultOption(), q.ID)
		}
	})

	t.Run("questions arrive in descending critical order", func(t *testing.T) {
		uc := mockUsecase()

		analysis, err := uc.AnalyzeDescription(context.Background(), "A portfolio site", true)
		require.NoError(t, err)

		prev := 5
		for _, q := range analysis.Questions {
			assert.LessOrEqual(t, q.CriticalLevel, prev)
			prev = q.CriticalLevel
		}
	})

	t.Run("backend error is passed through", func(t *testing.T) {
		backendErr := &entity.BackendError{StatusCode: 502, Body: "bad gateway"}
		uc := newTestUsecase(&stubClient{err: backendErr})

		_, err := uc.AnalyzeDescription(context.Background(), "A portfolio site", false)
		require.Error(t, err)

		var got *entity.BackendError
		require.ErrorAs(t, err, &got)
		assert.Equal(t, 502, got.StatusCode)
		assert.Equal(t, "bad gateway", got.Body)
	})

	t.Run("unparseable response is malformed", func(t *testing.T) {
		uc := newTestUsecase(&stubClient{content: "not json at all"})

		_, err := uc.AnalyzeDescription(context.Background(), "A portfolio site", false)
		require.Error(t, err)

		var malformed *entity.MalformedResponseError
		require.ErrorAs(t, err, &malformed)
	})

	t.Run("over-cap batch is malformed", func(t *testing.T) {
		analysis := entity.Analysis{}
		for i := 0; i < validator.MaxQuestions+1; i++ {
			analysis.Questions = append(analysis.Questions, entity.FollowUpQuestion{
				ID:            fmt.Sprintf("q%d", i),
				Question:      "One too many?",
				Category:      entity.CategoryFeatures,
				CriticalLevel: 3,
			})
		}
		content, err := json.Marshal(analysis)
		require.NoError(t, err)

		uc := newTestUsecase(&stubClient{content: string(content)})

		_, analyzeErr := uc.AnalyzeDescription(context.Background(), "A portfolio site", false)
		require.Error(t, analyzeErr)

		var malformed *entity.MalformedResponseError
		require.ErrorAs(t, analyzeErr, &malformed)
	})

	t.Run("defaultless choice question is malformed", func(t *testing.T) {
		analysis := entity.Analysis{
			Questions: []entity.FollowUpQuestion{
				{
					ID:            "style",
					Question:      "Which style?",
					Category:      entity.CategoryDesign,
					CriticalLevel: 4,
					InputMode:     entity.InputModeSingleChoice,
					Options: []entity.QuestionOption{
						{ID: "a", Text: "A"},
						{ID: "b", Text: "B"},
						{ID: "c", Text: "C"},
					},
				},
			},
		}
		content, err := json.Marshal(analysis)
		require.NoError(t, err)

		uc := newTestUsecase(&stubClient{content: string(content)})

		_, analyzeErr := uc.AnalyzeDescription(context.Background(), "A portfolio site", false)
		require.Error(t, analyzeErr)

		var malformed *entity.MalformedResponseError
		require.ErrorAs(t, analyzeErr, &malformed)
	})
}

func TestAnalyzeBreakdownAndAssessment(t *testing.T) {
	uc := mockUsecase()

	breakdown, err := uc.AnalyzeBreakdown(context.Background(), "A portfolio site")
	require.NoError(t, err)
	assert.NotEmpty(t, breakdown.WebsiteName)
	assert.NotEmpty(t, breakdown.Sections)

	assessment, err := uc.AssessCompleteness(context.Background(), breakdown)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, assessment.CompletenessScore, 0)
	assert.LessOrEqual(t, assessment.CompletenessScore, 100)

	questions, err := uc.GenerateFollowUps(context.Background(), breakdown, assessment)
	require.NoError(t, err)
	assert.NotEmpty(t, questions)
}

func TestGenerateRequirements(t *testing.T) {
	t.Run("with answers", func(t *testing.T) {
		uc := mockUsecase()

		answers := entity.AnswerMap{
			"visual_style": {Question: "Which style?", Category: "design", Value: "Minimal and clean"},
		}

		doc, err := uc.GenerateRequirements(context.Background(), "A portfolio site", answers)
		require.NoError(t, err)
		assert.NotEmpty(t, doc.WebsiteSummary.Name)
		assert.NotEmpty(t, doc.Pages)
	})

	t.Run("without answers", func(t *testing.T) {
		uc := mockUsecase()

		doc, err := uc.GenerateRequirements(context.Background(), "A portfolio site", nil)
		require.NoError(t, err)
		assert.NotEmpty(t, doc.Pages)
	})

	t.Run("structurally broken document is malformed", func(t *testing.T) {
		uc := newTestUsecase(&stubClient{content: `{"website_summary":{"name":"","purpose":""},"pages":[]}`})

		_, err := uc.GenerateRequirements(context.Background(), "A portfolio site", nil)
		require.Error(t, err)

		var malformed *entity.MalformedResponseError
		require.ErrorAs(t, err, &malformed)
	})

	t.Run("exactly one backend call per stage invocation", func(t *testing.T) {
		stub := &stubClient{err: errors.New("boom")}
		uc := newTestUsecase(stub)

		_, err := uc.GenerateRequirements(context.Background(), "A portfolio site", nil)
		require.Error(t, err)
		assert.Equal(t, 1, stub.calls)
	})
}

func TestFlattenSelections(t *testing.T) {
	assert.Equal(t, "A, B", FlattenSelections([]string{"A", "B"}))
	assert.Equal(t, "A", FlattenSelections([]string{"A"}))
	assert.Equal(t, "", FlattenSelections(nil))
}

func TestResolveOptionTexts(t *testing.T) {
	q := &entity.FollowUpQuestion{
		ID: "integrations",
		Options: []entity.QuestionOption{
			{ID: "analytics", Text: "Analytics"},
			{ID: "newsletter", Text: "Newsletter signup"},
		},
	}

	texts, err := ResolveOptionTexts(q, []string{"newsletter", "analytics"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Newsletter signup", "Analytics"}, texts)

	_, err = ResolveOptionTexts(q, []string{"missing"})
	require.ErrorIs(t, err, entity.ErrInvalidParameter)
}
