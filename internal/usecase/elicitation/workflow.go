package elicitation

import (
	"context"
	"fmt"
	"os"

	"github.com/sitebrief/requirements-backend/internal/entity"
	"github.com/sitebrief/requirements-backend/internal/pkg/formatter"
)

// Workflow holds one elicitation session: the description, the produced
// analysis, the answers collected so far and the final document. A failed
// stage call leaves the workflow exactly where it was, so the caller can
// retry or abandon.
//
// Workflow is not safe for concurrent use. Each session owns one instance;
// the surfaces (console, one Telegram chat) serialize access themselves.
type Workflow struct {
	uc *Usecase

	state       entity.WorkflowState
	description string
	choiceMode  bool
	analysis    *entity.Analysis
	answers     entity.AnswerMap
	document    *entity.RequirementsDocument
}

func NewWorkflow(uc *Usecase, choiceMode bool) *Workflow {
	return &Workflow{
		uc:         uc,
		state:      entity.WorkflowStateStart,
		choiceMode: choiceMode,
		answers:    make(entity.AnswerMap),
	}
}

func (w *Workflow) State() entity.WorkflowState { return w.state }

func (w *Workflow) Description() string { return w.description }

// Questions returns the follow-up batch from the analysis stage, or nil
// before Submit succeeds.
func (w *Workflow) Questions() []entity.FollowUpQuestion {
	if w.analysis == nil {
		return nil
	}
	return w.analysis.Questions
}

func (w *Workflow) Analysis() *entity.Analysis { return w.analysis }

func (w *Workflow) Answers() entity.AnswerMap { return w.answers }

func (w *Workflow) Document() *entity.RequirementsDocument { return w.document }

// Submit runs the analysis stage on the description. On success the workflow
// moves to AWAITING_ANSWERS when the batch has questions, or straight to
// READY_TO_GENERATE when it is empty.
func (w *Workflow) Submit(ctx context.Context, description string) error {
	if w.state != entity.WorkflowStateStart {
		return fmt.Errorf("submit in state %s: %w", w.state, entity.ErrInvalidWorkflowState)
	}
	if description == "" {
		return fmt.Errorf("description: %w", entity.ErrMissingInput)
	}

	analysis, err := w.uc.AnalyzeDescription(ctx, description, w.choiceMode)
	if err != nil {
		return err
	}

	w.description = description
	w.analysis = analysis
	if len(analysis.Questions) == 0 {
		w.state = entity.WorkflowStateReadyToGenerate
	} else {
		w.state = entity.WorkflowStateAwaitingAnswers
	}

	return nil
}

// RecordAnswer stores a free-text answer for one question of the current batch.
// Answering the same question twice replaces the earlier value.
func (w *Workflow) RecordAnswer(questionID, value string) error {
	question, err := w.answerable(questionID)
	if err != nil {
		return err
	}

	w.answers[questionID] = entity.Answer{
		Question: question.Question,
		Category: string(question.Category),
		Value:    value,
	}

	return nil
}

// RecordSelections stores a choice answer. The selected option ids are
// resolved to their display texts and flattened into one value.
func (w *Workflow) RecordSelections(questionID string, optionIDs []string) error {
	question, err := w.answerable(questionID)
	if err != nil {
		return err
	}

	texts, err := ResolveOptionTexts(question, optionIDs)
	if err != nil {
		return err
	}

	w.answers[questionID] = entity.Answer{
		Question: question.Question,
		Category: string(question.Category),
		Value:    FlattenSelections(texts),
	}

	return nil
}

// FinishAnswers closes the answering phase. Unanswered questions stay absent
// from the answer map; a partial set is a legitimate outcome.
func (w *Workflow) FinishAnswers() error {
	if w.state != entity.WorkflowStateAwaitingAnswers {
		return fmt.Errorf("finish answers in state %s: %w", w.state, entity.ErrInvalidWorkflowState)
	}

	w.state = entity.WorkflowStateReadyToGenerate

	return nil
}

// Generate runs the generation stage over the description and the collected
// answers. On failure the workflow stays in READY_TO_GENERATE.
func (w *Workflow) Generate(ctx context.Context) (*entity.RequirementsDocument, error) {
	if w.state != entity.WorkflowStateReadyToGenerate {
		return nil, fmt.Errorf("generate in state %s: %w", w.state, entity.ErrInvalidWorkflowState)
	}

	doc, err := w.uc.GenerateRequirements(ctx, w.description, w.answers)
	if err != nil {
		return nil, err
	}

	w.document = doc
	w.state = entity.WorkflowStateGenerated

	return doc, nil
}

// Save writes the generated document to path as JSON.
func (w *Workflow) Save(path string) error {
	if w.state != entity.WorkflowStateGenerated && w.state != entity.WorkflowStateSaved {
		return fmt.Errorf("save in state %s: %w", w.state, entity.ErrNoDocument)
	}

	jsonFormatter, err := formatter.NewFactory().Create(entity.FormatJSON)
	if err != nil {
		return fmt.Errorf("create formatter: %w", err)
	}

	data, err := jsonFormatter.Format(w.document)
	if err != nil {
		return fmt.Errorf("format document: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}

	w.state = entity.WorkflowStateSaved

	return nil
}

func (w *Workflow) answerable(questionID string) (*entity.FollowUpQuestion, error) {
	if w.state != entity.WorkflowStateAwaitingAnswers {
		return nil, fmt.Errorf("record answer in state %s: %w", w.state, entity.ErrInvalidWorkflowState)
	}

	for i := range w.analysis.Questions {
		if w.analysis.Questions[i].ID == questionID {
			return &w.analysis.Questions[i], nil
		}
	}

	return nil, fmt.Errorf("question %q: %w", questionID, entity.ErrQuestionNotFound)
}
