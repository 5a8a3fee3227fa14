package elicitation

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sitebrief/requirements-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkflowHappyPath(t *testing.T) {
	ctx := context.Background()
	wf := NewWorkflow(mockUsecase(), true)

	require.Equal(t, entity.WorkflowStateStart, wf.State())

	require.NoError(t, wf.Submit(ctx, "A portfolio site for a photographer"))
	require.Equal(t, entity.WorkflowStateAwaitingAnswers, wf.State())
	require.NotEmpty(t, wf.Questions())

	// Single choice answered by option id
	require.NoError(t, wf.RecordSelections("visual_style", []string{"minimal"}))

	// Multi choice flattens the selected texts in order
	require.NoError(t, wf.RecordSelections("integrations", []string{"analytics", "newsletter"}))
	assert.Equal(t, "Analytics, Newsletter signup", wf.Answers()["integrations"].Value)

	require.NoError(t, wf.FinishAnswers())
	require.Equal(t, entity.WorkflowStateReadyToGenerate, wf.State())

	doc, err := wf.Generate(ctx)
	require.NoError(t, err)
	require.Equal(t, entity.WorkflowStateGenerated, wf.State())
	assert.Same(t, doc, wf.Document())
}

func TestWorkflowCompleteDescription(t *testing.T) {
	ctx := context.Background()
	stub := &stubClient{content: `{"understood":{"purpose":"A portfolio for a photographer","audience":"Potential clients","features":["gallery"],"design_preferences":"Minimal"},"questions":[]}`}
	wf := NewWorkflow(newTestUsecase(stub), false)

	// An empty batch skips the answering phase entirely
	require.NoError(t, wf.Submit(ctx, "A portfolio site for a photographer, minimal design, gallery of past work"))
	require.Equal(t, entity.WorkflowStateReadyToGenerate, wf.State())
	assert.Empty(t, wf.Questions())
	assert.Empty(t, wf.Answers())
}

func TestWorkflowGenerationDeterministic(t *testing.T) {
	ctx := context.Background()
	uc := mockUsecase()

	run := func() *entity.RequirementsDocument {
		wf := NewWorkflow(uc, true)
		require.NoError(t, wf.Submit(ctx, "A portfolio site for a photographer"))
		require.NoError(t, wf.RecordSelections("visual_style", []string{"minimal"}))
		require.NoError(t, wf.FinishAnswers())

		doc, err := wf.Generate(ctx)
		require.NoError(t, err)
		return doc
	}

	first := run()
	second := run()
	assert.Equal(t, first, second)
}

func TestWorkflowPartialAnswers(t *testing.T) {
	ctx := context.Background()
	wf := NewWorkflow(mockUsecase(), true)

	require.NoError(t, wf.Submit(ctx, "A portfolio site"))

	// Answer only one of the two questions, skip the rest
	require.NoError(t, wf.RecordSelections("visual_style", []string{"bold"}))
	require.NoError(t, wf.FinishAnswers())

	doc, err := wf.Generate(ctx)
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Len(t, wf.Answers(), 1)
}

func TestWorkflowStateGuards(t *testing.T) {
	ctx := context.Background()

	t.Run("submit requires start", func(t *testing.T) {
		wf := NewWorkflow(mockUsecase(), false)
		require.NoError(t, wf.Submit(ctx, "A portfolio site"))

		err := wf.Submit(ctx, "Another site")
		require.ErrorIs(t, err, entity.ErrInvalidWorkflowState)
	})

	t.Run("submit rejects empty description", func(t *testing.T) {
		wf := NewWorkflow(mockUsecase(), false)

		err := wf.Submit(ctx, "")
		require.ErrorIs(t, err, entity.ErrMissingInput)
		assert.Equal(t, entity.WorkflowStateStart, wf.State())
	})

	t.Run("failed analysis leaves the workflow at start", func(t *testing.T) {
		stub := &stubClient{err: &entity.BackendError{StatusCode: 500, Body: "oops"}}
		wf := NewWorkflow(newTestUsecase(stub), false)

		err := wf.Submit(ctx, "A portfolio site")
		require.Error(t, err)
		assert.Equal(t, entity.WorkflowStateStart, wf.State())

		// A later retry with a healthy backend succeeds from the same state
		wf.uc = mockUsecase()
		require.NoError(t, wf.Submit(ctx, "A portfolio site"))
	})

	t.Run("answers only while awaiting", func(t *testing.T) {
		wf := NewWorkflow(mockUsecase(), false)

		err := wf.RecordAnswer("visual_style", "minimal")
		require.ErrorIs(t, err, entity.ErrInvalidWorkflowState)
	})

	t.Run("unknown question id", func(t *testing.T) {
		wf := NewWorkflow(mockUsecase(), false)
		require.NoError(t, wf.Submit(ctx, "A portfolio site"))

		err := wf.RecordAnswer("nope", "value")
		require.ErrorIs(t, err, entity.ErrQuestionNotFound)
	})

	t.Run("generate requires ready state", func(t *testing.T) {
		wf := NewWorkflow(mockUsecase(), false)

		_, err := wf.Generate(ctx)
		require.ErrorIs(t, err, entity.ErrInvalidWorkflowState)
	})

	t.Run("failed generation stays ready", func(t *testing.T) {
		wf := NewWorkflow(mockUsecase(), false)
		require.NoError(t, wf.Submit(ctx, "A portfolio site"))
		require.NoError(t, wf.FinishAnswers())

		wf.uc = newTestUsecase(&stubClient{err: &entity.BackendError{StatusCode: 503, Body: "unavailable"}})
		_, err := wf.Generate(ctx)
		require.Error(t, err)
		assert.Equal(t, entity.WorkflowStateReadyToGenerate, wf.State())

		wf.uc = mockUsecase()
		_, err = wf.Generate(ctx)
		require.NoError(t, err)
	})

	t.Run("save requires a document", func(t *testing.T) {
		wf := NewWorkflow(mockUsecase(), false)

		err := wf.Save(filepath.Join(t.TempDir(), "out.json"))
		require.ErrorIs(t, err, entity.ErrNoDocument)
	})
}

func TestWorkflowAnswerOverwrite(t *testing.T) {
	ctx := context.Background()
	wf := NewWorkflow(mockUsecase(), false)

	require.NoError(t, wf.Submit(ctx, "A portfolio site"))
	require.NoError(t, wf.RecordAnswer("visual_style", "minimal"))
	require.NoError(t, wf.RecordAnswer("visual_style", "bold"))

	assert.Equal(t, "bold", wf.Answers()["visual_style"].Value)
	assert.Len(t, wf.Answers(), 1)
}

func TestWorkflowSave(t *testing.T) {
	ctx := context.Background()
	wf := NewWorkflow(mockUsecase(), false)

	require.NoError(t, wf.Submit(ctx, "A portfolio site"))
	require.NoError(t, wf.FinishAnswers())

	doc, err := wf.Generate(ctx)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "requirements.json")
	require.NoError(t, wf.Save(path))
	assert.Equal(t, entity.WorkflowStateSaved, wf.State())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var restored entity.RequirementsDocument
	require.NoError(t, json.Unmarshal(data, &restored))
	assert.Equal(t, doc.WebsiteSummary, restored.WebsiteSummary)
	assert.Equal(t, len(doc.Pages), len(restored.Pages))
}
