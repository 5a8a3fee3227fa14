package elicitation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/sitebrief/requirements-backend/internal/entity"
	"github.com/sitebrief/requirements-backend/internal/pkg/formatter"
	"github.com/sitebrief/requirements-backend/internal/pkg/logger"
	"github.com/sitebrief/requirements-backend/internal/pkg/response"
	"go.uber.org/zap"
)

type Handler struct {
	usecase   ElicitationUsecase
	formatter *formatter.Factory
}

func NewHandler(usecase ElicitationUsecase) *Handler {
	return &Handler{
		usecase:   usecase,
		formatter: formatter.NewFactory(),
	}
}

// Analyze handles POST /analyze. The request carries the raw description;
// the response carries the understood summary and the follow-up questions.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "Analyze")

	var req entity.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Error(ctx, "failed to decode request body", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Prompt == "" {
		ctxzap.Warn(ctx, "empty prompt")
		response.Error(w, http.StatusBadRequest, entity.ErrMissingInput.Error())
		return
	}

	analysis, err := h.usecase.AnalyzeDescription(ctx, req.Prompt, req.ChoiceMode)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, analysis)
}

// Generate handles POST /generate. The client carries the description and
// the collected answers forward; the handler is stateless between calls.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "Generate")

	var req entity.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Error(ctx, "failed to decode request body", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Prompt == "" {
		ctxzap.Warn(ctx, "empty prompt")
		response.Error(w, http.StatusBadRequest, entity.ErrMissingInput.Error())
		return
	}

	doc, err := h.usecase.GenerateRequirements(ctx, req.Prompt, req.Answers)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, doc)
}

// Export handles POST /export: renders a previously generated document into
// the requested format and returns it as a download.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "Export")

	var req entity.ExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Error(ctx, "failed to decode request body", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Requirements == nil {
		ctxzap.Warn(ctx, "missing requirements document")
		response.Error(w, http.StatusBadRequest, "requirements document is required")
		return
	}

	if req.Format == "" {
		req.Format = entity.FormatJSON
	}

	fmtr, err := h.formatter.Create(req.Format)
	if err != nil {
		ctxzap.Warn(ctx, "unsupported format", zap.String("format", string(req.Format)))
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	rendered, err := fmtr.Format(req.Requirements)
	if err != nil {
		ctxzap.Error(ctx, "failed to format document", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "failed to format document")
		return
	}

	filename := fmt.Sprintf("website_requirements%s", fmtr.FileExtension())
	response.File(w, fmtr.ContentType(), filename, rendered)
}

func (h *Handler) handleUsecaseError(ctx context.Context, w http.ResponseWriter, err error) {
	var backendErr *entity.BackendError
	var malformedErr *entity.MalformedResponseError

	switch {
	case errors.Is(err, entity.ErrMissingInput):
		ctxzap.Warn(ctx, "missing input", zap.Error(err))
		response.Error(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &backendErr):
		ctxzap.Error(ctx, "completion backend failure",
			zap.Int("backend_status", backendErr.StatusCode),
			zap.Error(err),
		)
		response.Error(w, http.StatusInternalServerError, err.Error())
	case errors.As(err, &malformedErr):
		ctxzap.Error(ctx, "malformed backend response", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, err.Error())
	default:
		ctxzap.Error(ctx, "internal error", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "internal server error")
	}
}
