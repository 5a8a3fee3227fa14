package elicitation

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sitebrief/requirements-backend/internal/entity"
)

// FlattenSelections joins the display texts of a multi-choice selection into
// the single string the backend receives, e.g. "A, B".
func FlattenSelections(texts []string) string {
	return strings.Join(texts, ", ")
}

// ResolveOptionTexts maps selected option ids to their display texts,
// keeping the order of ids. Unknown ids are reported rather than dropped so
// a stale keyboard or form never silently loses a selection.
func ResolveOptionTexts(question *entity.FollowUpQuestion, optionIDs []string) ([]string, error) {
	byID := make(map[string]string, len(question.Options))
	for _, opt := range question.Options {
		byID[opt.ID] = opt.Text
	}

	texts := make([]string, 0, len(optionIDs))
	for _, id := range optionIDs {
		text, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("question %q has no option %q: %w", question.ID, id, entity.ErrInvalidParameter)
		}
		texts = append(texts, text)
	}

	return texts, nil
}

func marshalCompact(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// buildGenerationPrompt combines the original description with the collected
// answers. With no answers it degrades to the plain single-pass prompt.
func buildGenerationPrompt(description string, answers entity.AnswerMap) (string, error) {
	if len(answers) == 0 {
		return description, nil
	}

	answersJSON, err := json.MarshalIndent(answers, "", "  ")
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(
		"Initial website request:\n%s\n\nAdditional information from follow-up questions:\n%s\n\nBased on all this information, create comprehensive website requirements.",
		description, string(answersJSON),
	), nil
}
