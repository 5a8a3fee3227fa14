package entity

import (
	"encoding/json"
	"fmt"
	"strings"
)

type WorkflowState string

// Workflow state represents the current position in the elicitation workflow
const (
	WorkflowStateStart           WorkflowState = "START"             // Waiting for a website description
	WorkflowStateAwaitingAnswers WorkflowState = "AWAITING_ANSWERS"  // Follow-up questions pending
	WorkflowStateReadyToGenerate WorkflowState = "READY_TO_GENERATE" // All questions offered, generation possible
	WorkflowStateGenerated       WorkflowState = "GENERATED"         // Requirements document produced
	WorkflowStateSaved           WorkflowState = "SAVED"             // Document persisted to a file
)

type QuestionCategory string

const (
	CategoryPurpose   QuestionCategory = "purpose"
	CategoryAudience  QuestionCategory = "audience"
	CategoryFeatures  QuestionCategory = "features"
	CategoryDesign    QuestionCategory = "design"
	CategoryTechnical QuestionCategory = "technical"
)

func (c QuestionCategory) Validate() error {
	switch c {
	case CategoryPurpose, CategoryAudience, CategoryFeatures, CategoryDesign, CategoryTechnical:
		return nil
	default:
		return fmt.Errorf("unknown question category: %s", c)
	}
}

type InputMode string

const (
	InputModeFreeText     InputMode = "free_text"
	InputModeSingleChoice InputMode = "single_choice"
	InputModeMultiChoice  InputMode = "multi_choice"
)

// UnmarshalJSON accepts both the canonical input modes and the widget names
// the choice-question prompt uses (radio, dropdown, checkbox).
func (m *InputMode) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch strings.ToLower(raw) {
	case "", string(InputModeFreeText), "text":
		*m = InputModeFreeText
	case string(InputModeSingleChoice), "radio", "dropdown":
		*m = InputModeSingleChoice
	case string(InputModeMultiChoice), "checkbox":
		*m = InputModeMultiChoice
	default:
		return fmt.Errorf("unknown input mode: %s", raw)
	}

	return nil
}

// QuestionOption is one selectable answer for a choice question
type QuestionOption struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	IsDefault bool   `json:"default"`
}

// FollowUpQuestion is a single gap-filling question produced by the analysis stage.
// Never mutated after creation.
type FollowUpQuestion struct {
	ID            string           `json:"id"`
	Question      string           `json:"question"`
	Category      QuestionCategory `json:"category"`
	CriticalLevel int              `json:"critical_level"`
	InputMode     InputMode        `json:"input_type,omitempty"`
	Options       []QuestionOption `json:"options,omitempty"`
}

// DefaultOption returns the option marked as default, if any.
func (q *FollowUpQuestion) DefaultOption() *QuestionOption {
	for i := range q.Options {
		if q.Options[i].IsDefault {
			return &q.Options[i]
		}
	}
	return nil
}

// UnderstoodSummary is what the analysis stage extracted from the description.
// Nil fields mean the model found nothing for that aspect.
type UnderstoodSummary struct {
	Purpose           *string  `json:"purpose"`
	Audience          *string  `json:"audience"`
	Features          []string `json:"features"`
	DesignPreferences *string  `json:"design_preferences"`
}

// Analysis is the output of the gap-analysis stage
type Analysis struct {
	Understood UnderstoodSummary  `json:"understood"`
	Questions  []FollowUpQuestion `json:"questions"`
}

// Answer carries one collected answer, keyed by question id in AnswerMap.
// Multi-choice selections arrive already flattened into a single value.
type Answer struct {
	Question string `json:"question"`
	Category string `json:"category"`
	Value    string `json:"answer"`
}

// AnswerMap maps question id to the collected answer. Unanswered questions
// are simply absent; partial answer sets are legitimate.
type AnswerMap map[string]Answer
