package console

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sitebrief/requirements-backend/internal/entity"
	"github.com/sitebrief/requirements-backend/internal/integration/openai"
	"github.com/sitebrief/requirements-backend/internal/pkg/validator"
	"github.com/sitebrief/requirements-backend/internal/usecase/elicitation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRunner(input string) (*Runner, *bytes.Buffer) {
	uc := elicitation.NewUsecase(openai.NewMockConnector(zap.NewNop()), validator.New(), zap.NewNop())

	out := &bytes.Buffer{}
	runner := NewRunner(uc, strings.NewReader(input), out, zap.NewNop())
	return runner, out
}

func TestRunUnknownVariant(t *testing.T) {
	runner, _ := newTestRunner("")

	err := runner.Run(context.Background(), "daemon", false, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown variant")
}

func TestRunTasks(t *testing.T) {
	runner, out := newTestRunner("a portfolio site for a photographer\n")

	require.NoError(t, runner.Run(context.Background(), VariantTasks, false, ""))
	assert.Contains(t, out.String(), "1. Define the site structure")
}

func TestRunInterview(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "requirements.json")

	// description, default for the single-choice question, two options for
	// the multi-choice one, then confirm the save prompt
	input := strings.Join([]string{
		"a portfolio site for a photographer",
		"",
		"1,2",
		"y",
	}, "\n") + "\n"

	runner, out := newTestRunner(input)
	require.NoError(t, runner.Run(context.Background(), VariantInterview, true, outputPath))

	text := out.String()
	assert.Contains(t, text, "Here is what I understood:")
	assert.Contains(t, text, "What overall visual style should the site have?")
	assert.Contains(t, text, "# Website Requirements")
	assert.Contains(t, text, "Saved to "+outputPath)

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)

	var doc entity.RequirementsDocument
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "Showcase Site", doc.WebsiteSummary.Name)
}

func TestRunInterviewDeclineSave(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "requirements.json")

	input := strings.Join([]string{
		"a portfolio site for a photographer",
		"",
		"",
		"n",
	}, "\n") + "\n"

	runner, _ := newTestRunner(input)
	require.NoError(t, runner.Run(context.Background(), VariantInterview, true, outputPath))

	_, err := os.Stat(outputPath)
	assert.True(t, os.IsNotExist(err))
}

func TestRunValidate(t *testing.T) {
	// description, accept the refinement offer, answer both questions
	input := strings.Join([]string{
		"a portfolio site for a photographer",
		"y",
		"earth tones",
		"no comments needed",
	}, "\n") + "\n"

	runner, out := newTestRunner(input)
	require.NoError(t, runner.Run(context.Background(), VariantValidate, false, ""))

	text := out.String()
	assert.Contains(t, text, "Completeness score: 72")
	assert.Contains(t, text, "What colors should dominate the design?")
	assert.Contains(t, text, "Refining the requirements")

	// the breakdown is printed twice: initial pass and refined pass
	assert.Equal(t, 2, strings.Count(text, "Showcase Site: Present the owner's work to the public"))
}

func TestRunValidateDeclineRefinement(t *testing.T) {
	input := strings.Join([]string{
		"a portfolio site for a photographer",
		"n",
	}, "\n") + "\n"

	runner, out := newTestRunner(input)
	require.NoError(t, runner.Run(context.Background(), VariantValidate, false, ""))

	text := out.String()
	assert.Contains(t, text, "Would you like to refine")
	assert.NotContains(t, text, "Refining the requirements")
	assert.Equal(t, 1, strings.Count(text, "Showcase Site: Present the owner's work to the public"))
}
