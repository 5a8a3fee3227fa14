package console

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/sitebrief/requirements-backend/internal/entity"
	"github.com/sitebrief/requirements-backend/internal/pkg/formatter"
	"github.com/sitebrief/requirements-backend/internal/usecase/elicitation"
)

// runInterview is the full workflow: analyze, collect answers, generate,
// optionally save.
func (r *Runner) runInterview(ctx context.Context, choiceMode bool, outputPath string) error {
	description, err := r.askDescription()
	if err != nil {
		return err
	}

	wf := elicitation.NewWorkflow(r.uc, choiceMode)

	r.println("\nAnalyzing your description...")

	if err := wf.Submit(ctx, description); err != nil {
		r.printf("\n❌ Error: %v\n", err)
		return err
	}

	r.printUnderstood(wf.Analysis())

	questions := wf.Questions()
	if len(questions) == 0 {
		r.println("\nYour description already covers everything needed.")
	} else {
		r.printf("\nI have %d follow-up questions. Press Enter to skip a question.\n", len(questions))

		for i := range questions {
			if err := r.askQuestion(wf, &questions[i], i+1, len(questions)); err != nil {
				return err
			}
		}

		if err := wf.FinishAnswers(); err != nil {
			return err
		}
	}

	r.println("\nGenerating the requirements document, this can take a minute...")

	doc, err := wf.Generate(ctx)
	if err != nil {
		r.printf("\n❌ Error: %v\n", err)
		return err
	}

	r.printDocument(doc)

	return r.offerSave(wf, outputPath)
}

// askQuestion collects one answer. Choice questions show a numbered menu;
// the default option is used when a single-choice question is answered with
// an empty line.
func (r *Runner) askQuestion(wf *elicitation.Workflow, q *entity.FollowUpQuestion, number, total int) error {
	r.printf("\n[%d/%d] (%s) %s\n", number, total, q.Category, q.Question)

	if len(q.Options) == 0 {
		r.printf("> ")
		answer, err := r.readLine()
		if err != nil {
			return fmt.Errorf("read answer: %w", err)
		}
		if answer == "" {
			return nil // skipped
		}
		return wf.RecordAnswer(q.ID, answer)
	}

	for i, opt := range q.Options {
		marker := " "
		if opt.IsDefault {
			marker = "*"
		}
		r.printf("  %s %d. %s\n", marker, i+1, opt.Text)
	}

	if q.InputMode == entity.InputModeMultiChoice {
		r.printf("Choose one or more (e.g. 1,3): ")
	} else {
		r.printf("Choose one (* is the default): ")
	}

	input, err := r.readLine()
	if err != nil {
		return fmt.Errorf("read choice: %w", err)
	}

	if input == "" {
		if q.InputMode == entity.InputModeSingleChoice {
			if def := q.DefaultOption(); def != nil {
				return wf.RecordSelections(q.ID, []string{def.ID})
			}
		}
		return nil // skipped
	}

	optionIDs, err := parseChoices(q, input)
	if err != nil {
		r.printf("❌ Error: %v, skipping the question\n", err)
		return nil
	}

	if q.InputMode == entity.InputModeSingleChoice && len(optionIDs) > 1 {
		optionIDs = optionIDs[:1]
	}

	return wf.RecordSelections(q.ID, optionIDs)
}

// parseChoices maps comma-separated 1-based numbers to option ids
func parseChoices(q *entity.FollowUpQuestion, input string) ([]string, error) {
	parts := strings.Split(input, ",")
	ids := make([]string, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		n, err := strconv.Atoi(part)
		if err != nil || n < 1 || n > len(q.Options) {
			return nil, fmt.Errorf("invalid choice %q", part)
		}
		ids = append(ids, q.Options[n-1].ID)
	}

	if len(ids) == 0 {
		return nil, fmt.Errorf("no choices given")
	}

	return ids, nil
}

func (r *Runner) printUnderstood(analysis *entity.Analysis) {
	r.println("\nHere is what I understood:")

	if analysis.Understood.Purpose != nil {
		r.printf("  Purpose:  %s\n", *analysis.Understood.Purpose)
	}
	if analysis.Understood.Audience != nil {
		r.printf("  Audience: %s\n", *analysis.Understood.Audience)
	}
	if len(analysis.Understood.Features) > 0 {
		r.printf("  Features: %s\n", strings.Join(analysis.Understood.Features, ", "))
	}
	if analysis.Understood.DesignPreferences != nil {
		r.printf("  Design:   %s\n", *analysis.Understood.DesignPreferences)
	}
}

func (r *Runner) printDocument(doc *entity.RequirementsDocument) {
	fmtr := formatter.NewMarkdownFormatter()

	rendered, err := fmtr.Format(doc)
	if err != nil {
		r.printf("❌ Error: %v\n", err)
		return
	}

	r.println("")
	r.println(string(rendered))
}

func (r *Runner) offerSave(wf *elicitation.Workflow, outputPath string) error {
	r.printf("Save the document to %s? [Y/n] ", outputPath)

	answer, err := r.readLine()
	if err != nil {
		return nil
	}

	answer = strings.ToLower(answer)
	if answer != "" && answer != "y" && answer != "yes" {
		return nil
	}

	if err := wf.Save(outputPath); err != nil {
		r.printf("❌ Error: %v\n", err)
		return err
	}

	r.printf("Saved to %s\n", outputPath)
	return nil
}
