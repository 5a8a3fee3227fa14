package validator

import (
	"fmt"

	"github.com/sitebrief/requirements-backend/internal/entity"
)

// ValidateRequirements checks the structural minimum of a generated document:
// a named summary and at least one page. The free-form texts inside are the
// backend's to fill; only the skeleton the consumers depend on is enforced.
func (v *Validator) ValidateRequirements(doc *entity.RequirementsDocument) error {
	if doc == nil {
		return fmt.Errorf("requirements document is empty")
	}

	if doc.WebsiteSummary.Name == "" {
		return fmt.Errorf("website summary has no name")
	}

	if doc.WebsiteSummary.Purpose == "" {
		return fmt.Errorf("website summary has no purpose")
	}

	if len(doc.Pages) == 0 {
		return fmt.Errorf("document has no pages")
	}

	for i, page := range doc.Pages {
		if page.Name == "" {
			return fmt.Errorf("page %d has no name", i)
		}
	}

	for i, feature := range doc.Features {
		if feature.Name == "" {
			return fmt.Errorf("feature %d has no name", i)
		}
	}

	return nil
}

// ValidateAssessment range-checks completeness scores.
func (v *Validator) ValidateAssessment(assessment *entity.CompletenessAssessment) error {
	if assessment == nil {
		return fmt.Errorf("assessment is empty")
	}

	if assessment.CompletenessScore < 0 || assessment.CompletenessScore > 100 {
		return fmt.Errorf("completeness score %d out of range 0..100", assessment.CompletenessScore)
	}

	for section, score := range assessment.SectionScores {
		if score < 0 || score > 100 {
			return fmt.Errorf("section %q score %d out of range 0..100", section, score)
		}
	}

	return nil
}
