package console

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sitebrief/requirements-backend/internal/entity"
)

// runValidate is the assessed variant: break the description down, score the
// completeness, show follow-up questions, then offer one refinement pass that
// re-runs the breakdown over the description merged with the answers.
func (r *Runner) runValidate(ctx context.Context) error {
	description, err := r.askDescription()
	if err != nil {
		return err
	}

	r.println("\nBreaking the request down...")

	breakdown, err := r.uc.AnalyzeBreakdown(ctx, description)
	if err != nil {
		r.printf("\n❌ Error: %v\n", err)
		return err
	}

	r.printBreakdown(breakdown)

	r.println("\nAssessing completeness...")

	assessment, err := r.uc.AssessCompleteness(ctx, breakdown)
	if err != nil {
		r.printf("\n❌ Error: %v\n", err)
		return err
	}

	r.printAssessment(assessment)

	questions, err := r.uc.GenerateFollowUps(ctx, breakdown, assessment)
	if err != nil {
		r.printf("\n❌ Error: %v\n", err)
		return err
	}

	r.printFollowUps(questions)

	if len(questions) == 0 {
		return nil
	}

	r.printf("\nWould you like to refine the requirements based on these questions? [y/N] ")

	confirm, err := r.readLine()
	if err != nil {
		return nil
	}
	confirm = strings.ToLower(confirm)
	if confirm != "y" && confirm != "yes" {
		return nil
	}

	answers := r.collectRefinementAnswers(questions)

	r.println("\nRefining the requirements...")

	refined, err := r.uc.AnalyzeBreakdown(ctx, refinementPrompt(description, answers))
	if err != nil {
		r.printf("\n❌ Error: %v\n", err)
		return err
	}

	r.printBreakdown(refined)

	return nil
}

// refinementPrompt merges the original description with the collected answers
// for a second breakdown pass.
func refinementPrompt(description string, answers entity.AnswerMap) string {
	payload, err := json.Marshal(answers)
	if err != nil {
		payload = []byte("{}")
	}

	return fmt.Sprintf(
		"Original website description: %s\n\nFollow-up information:\n%s\n\nPlease provide updated and comprehensive website requirements based on all this information.",
		description, payload,
	)
}

// collectRefinementAnswers asks each refinement question on the terminal.
// Empty input skips the question; a partial answer set is fine.
func (r *Runner) collectRefinementAnswers(questions []entity.RefinementQuestion) entity.AnswerMap {
	answers := make(entity.AnswerMap, len(questions))

	for i, q := range questions {
		r.printf("\nQuestion %d: %s\n> ", i+1, q.Question)

		answer, err := r.readLine()
		if err != nil || answer == "" {
			continue
		}

		answers[fmt.Sprintf("q%d", i+1)] = entity.Answer{
			Question: q.Question,
			Category: q.Category,
			Value:    answer,
		}
	}

	return answers
}

func (r *Runner) printFollowUps(questions []entity.RefinementQuestion) {
	if len(questions) == 0 {
		r.println("\nNo follow-up questions; the description is complete.")
		return
	}

	r.println("\nFollow-up questions:")

	for i, q := range questions {
		r.printf("\n%d. %s\n", i+1, q.Question)
		r.printf("   Category: %s\n", q.Category)
		r.printf("   Importance: %s\n", q.Importance)
	}
}

func (r *Runner) printBreakdown(breakdown *entity.RequirementsBreakdown) {
	r.printf("\n%s: %s\n", breakdown.WebsiteName, breakdown.PrimaryPurpose)
	r.printf("Audience: %s\n", breakdown.TargetAudience)

	if len(breakdown.KeyPages) > 0 {
		r.printf("Key pages: %s\n", strings.Join(breakdown.KeyPages, ", "))
	}

	for name, items := range breakdown.Sections {
		r.printf("\n%s:\n", name)
		for _, item := range items {
			r.printf("  - %s\n", item)
		}
	}

	if len(breakdown.MissingInformation) > 0 {
		r.println("\nMissing information:")
		for _, item := range breakdown.MissingInformation {
			r.printf("  - %s\n", item)
		}
	}
}

func (r *Runner) printAssessment(assessment *entity.CompletenessAssessment) {
	r.printf("\nCompleteness score: %d/100\n", assessment.CompletenessScore)

	for section, score := range assessment.SectionScores {
		r.printf("  %s: %d\n", section, score)
	}

	if len(assessment.CriticalGaps) > 0 {
		r.println("Critical gaps:")
		for _, gap := range assessment.CriticalGaps {
			r.printf("  - %s\n", gap)
		}
	}
}
