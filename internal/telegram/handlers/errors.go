package handlers

import (
	"errors"

	"github.com/sitebrief/requirements-backend/internal/entity"
	"github.com/sitebrief/requirements-backend/internal/telegram/render"
)

// userFacingError maps a stage error to a message safe to show in chat
func userFacingError(err error) string {
	var backendErr *entity.BackendError
	var malformedErr *entity.MalformedResponseError

	switch {
	case errors.As(err, &backendErr), errors.As(err, &malformedErr):
		return render.ErrBackend
	case errors.Is(err, entity.ErrInvalidWorkflowState):
		return render.ErrInvalidState
	default:
		return render.ErrGeneric
	}
}
