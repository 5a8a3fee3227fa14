package validator

import (
	"testing"

	"github.com/sitebrief/requirements-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func minimalDocument() *entity.RequirementsDocument {
	return &entity.RequirementsDocument{
		WebsiteSummary: entity.WebsiteSummary{
			Name:    "Portfolio Site",
			Purpose: "Showcase photography work",
		},
		Pages: []entity.Page{
			{Name: "Home", Purpose: "First impression"},
		},
	}
}

func TestValidateRequirements(t *testing.T) {
	v := New()

	t.Run("minimal valid document", func(t *testing.T) {
		require.NoError(t, v.ValidateRequirements(minimalDocument()))
	})

	t.Run("rejects nil document", func(t *testing.T) {
		require.Error(t, v.ValidateRequirements(nil))
	})

	t.Run("rejects missing name", func(t *testing.T) {
		doc := minimalDocument()
		doc.WebsiteSummary.Name = ""

		require.Error(t, v.ValidateRequirements(doc))
	})

	t.Run("rejects missing purpose", func(t *testing.T) {
		doc := minimalDocument()
		doc.WebsiteSummary.Purpose = ""

		require.Error(t, v.ValidateRequirements(doc))
	})

	t.Run("rejects document without pages", func(t *testing.T) {
		doc := minimalDocument()
		doc.Pages = nil

		require.Error(t, v.ValidateRequirements(doc))
	})

	t.Run("rejects unnamed page", func(t *testing.T) {
		doc := minimalDocument()
		doc.Pages[0].Name = ""

		require.Error(t, v.ValidateRequirements(doc))
	})

	t.Run("rejects unnamed feature", func(t *testing.T) {
		doc := minimalDocument()
		doc.Features = []entity.Feature{{Description: "something"}}

		require.Error(t, v.ValidateRequirements(doc))
	})
}

func TestValidateAssessment(t *testing.T) {
	v := New()

	t.Run("valid assessment", func(t *testing.T) {
		assessment := &entity.CompletenessAssessment{
			CompletenessScore: 72,
			SectionScores:     map[string]int{"design": 60, "features": 85},
		}

		require.NoError(t, v.ValidateAssessment(assessment))
	})

	t.Run("rejects score out of range", func(t *testing.T) {
		assert.Error(t, v.ValidateAssessment(&entity.CompletenessAssessment{CompletenessScore: 101}))
		assert.Error(t, v.ValidateAssessment(&entity.CompletenessAssessment{CompletenessScore: -1}))
	})

	t.Run("rejects section score out of range", func(t *testing.T) {
		assessment := &entity.CompletenessAssessment{
			CompletenessScore: 50,
			SectionScores:     map[string]int{"design": 120},
		}

		require.Error(t, v.ValidateAssessment(assessment))
	})
}
