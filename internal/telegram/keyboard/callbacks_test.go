package keyboard

import (
	"testing"

	"github.com/sitebrief/requirements-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallbackRoundTrip(t *testing.T) {
	data := EncodeCallback(ActionOption, "visual_style:minimal")

	parsed, err := ParseCallback(data)
	require.NoError(t, err)
	assert.Equal(t, ActionOption, parsed.Action)
	assert.Equal(t, "visual_style:minimal", parsed.Value)

	questionID, optionID := SplitValue(parsed.Value)
	assert.Equal(t, "visual_style", questionID)
	assert.Equal(t, "minimal", optionID)
}

func TestParseCallbackInvalid(t *testing.T) {
	_, err := ParseCallback("noseparator")
	require.Error(t, err)
}

func TestSplitValueWithoutOption(t *testing.T) {
	questionID, optionID := SplitValue("visual_style")
	assert.Equal(t, "visual_style", questionID)
	assert.Empty(t, optionID)
}

func TestQuestionKeyboard(t *testing.T) {
	question := &entity.FollowUpQuestion{
		ID:        "integrations",
		Question:  "Which integrations do you need?",
		InputMode: entity.InputModeMultiChoice,
		Options: []entity.QuestionOption{
			{ID: "analytics", Text: "Analytics", IsDefault: true},
			{ID: "newsletter", Text: "Newsletter signup"},
		},
	}

	markup := NewBuilder().QuestionKeyboard(question, map[string]bool{"analytics": true})

	// two option rows, a Done row and a Skip row
	require.Len(t, markup.InlineKeyboard, 4)
	assert.Equal(t, "✅ Analytics", markup.InlineKeyboard[0][0].Text)
	assert.Equal(t, "Newsletter signup", markup.InlineKeyboard[1][0].Text)
	assert.Equal(t, "opt:integrations:analytics", *markup.InlineKeyboard[0][0].CallbackData)
	assert.Equal(t, "done:integrations", *markup.InlineKeyboard[2][0].CallbackData)
	assert.Equal(t, "skip:integrations", *markup.InlineKeyboard[3][0].CallbackData)
}

func TestQuestionKeyboardSingleChoice(t *testing.T) {
	question := &entity.FollowUpQuestion{
		ID:        "visual_style",
		Question:  "Which visual style fits best?",
		InputMode: entity.InputModeSingleChoice,
		Options: []entity.QuestionOption{
			{ID: "minimal", Text: "Minimal", IsDefault: true},
			{ID: "bold", Text: "Bold"},
		},
	}

	markup := NewBuilder().QuestionKeyboard(question, nil)

	// option rows plus the Skip row, no Done button for single choice
	require.Len(t, markup.InlineKeyboard, 3)
	assert.Equal(t, "Minimal (recommended)", markup.InlineKeyboard[0][0].Text)
	assert.Equal(t, "skip:visual_style", *markup.InlineKeyboard[2][0].CallbackData)
}
