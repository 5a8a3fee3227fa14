package elicitation

import (
	"context"

	"github.com/sitebrief/requirements-backend/internal/entity"
)

// CompletionClient is the single external collaborator of the workflow:
// one outbound request per call, either raw text or parsed JSON back.
type CompletionClient interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string, opts entity.CompletionOptions) (string, error)
	CompleteJSON(ctx context.Context, systemPrompt, userPrompt string, temperature float64, out any) error
}
