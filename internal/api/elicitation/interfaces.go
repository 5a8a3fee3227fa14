package elicitation

import (
	"context"

	"github.com/sitebrief/requirements-backend/internal/entity"
)

type ElicitationUsecase interface {
	AnalyzeDescription(ctx context.Context, description string, choiceMode bool) (*entity.Analysis, error)
	GenerateRequirements(ctx context.Context, description string, answers entity.AnswerMap) (*entity.RequirementsDocument, error)
}
