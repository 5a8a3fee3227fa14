// Package validator checks parsed backend output against the schema the
// prompts describe. The prompts alone are instructions, not guarantees;
// everything the workflow relies on is re-checked here after parsing.
package validator

import (
	"fmt"

	"github.com/sitebrief/requirements-backend/internal/entity"
)

const (
	// MaxQuestions is the cap the analysis prompt states. A batch above the
	// cap is a backend-contract violation, not something to truncate.
	MaxQuestions = 5

	minCriticalLevel = 1
	maxCriticalLevel = 5

	// Option bounds mirror the 3-6 range the analysis prompt asks for.
	minChoiceOptions = 3
	maxChoiceOptions = 6
)

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

// ValidateAnalysis checks a gap-analysis result: question count, id
// uniqueness, category and critical-level ranges, non-increasing ordering
// by critical level, and option constraints for choice questions.
func (v *Validator) ValidateAnalysis(analysis *entity.Analysis) error {
	if analysis == nil {
		return fmt.Errorf("analysis is empty")
	}

	if len(analysis.Questions) > MaxQuestions {
		return fmt.Errorf("got %d questions, prompt caps the batch at %d", len(analysis.Questions), MaxQuestions)
	}

	seen := make(map[string]struct{}, len(analysis.Questions))
	prevLevel := maxCriticalLevel

	for i, q := range analysis.Questions {
		if q.ID == "" {
			return fmt.Errorf("question %d has no id", i)
		}
		if _, dup := seen[q.ID]; dup {
			return fmt.Errorf("duplicate question id %q", q.ID)
		}
		seen[q.ID] = struct{}{}

		if q.Question == "" {
			return fmt.Errorf("question %q has no text", q.ID)
		}

		if err := q.Category.Validate(); err != nil {
			return fmt.Errorf("question %q: %w", q.ID, err)
		}

		if q.CriticalLevel < minCriticalLevel || q.CriticalLevel > maxCriticalLevel {
			return fmt.Errorf("question %q has critical level %d, want %d..%d",
				q.ID, q.CriticalLevel, minCriticalLevel, maxCriticalLevel)
		}

		if q.CriticalLevel > prevLevel {
			return fmt.Errorf("question %q breaks the descending critical-level order", q.ID)
		}
		prevLevel = q.CriticalLevel

		if err := v.validateOptions(&q); err != nil {
			return err
		}
	}

	return nil
}

func (v *Validator) validateOptions(q *entity.FollowUpQuestion) error {
	switch q.InputMode {
	case entity.InputModeFreeText, "":
		if len(q.Options) != 0 {
			return fmt.Errorf("free-text question %q carries %d options", q.ID, len(q.Options))
		}
		return nil
	case entity.InputModeSingleChoice, entity.InputModeMultiChoice:
	default:
		return fmt.Errorf("question %q has unknown input mode %q", q.ID, q.InputMode)
	}

	if len(q.Options) < minChoiceOptions || len(q.Options) > maxChoiceOptions {
		return fmt.Errorf("choice question %q has %d options, want %d..%d",
			q.ID, len(q.Options), minChoiceOptions, maxChoiceOptions)
	}

	defaults := 0
	optionIDs := make(map[string]struct{}, len(q.Options))
	for _, opt := range q.Options {
		if opt.ID == "" || opt.Text == "" {
			return fmt.Errorf("choice question %q has an option without id or text", q.ID)
		}
		if _, dup := optionIDs[opt.ID]; dup {
			return fmt.Errorf("choice question %q has duplicate option id %q", q.ID, opt.ID)
		}
		optionIDs[opt.ID] = struct{}{}
		if opt.IsDefault {
			defaults++
		}
	}

	if defaults != 1 {
		return fmt.Errorf("choice question %q has %d default options, want exactly 1", q.ID, defaults)
	}

	return nil
}
