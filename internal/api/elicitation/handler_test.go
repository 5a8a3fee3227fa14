package elicitation

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/sitebrief/requirements-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUsecase struct {
	analysis *entity.Analysis
	document *entity.RequirementsDocument
	err      error

	gotDescription string
	gotChoiceMode  bool
	gotAnswers     entity.AnswerMap
}

func (s *stubUsecase) AnalyzeDescription(_ context.Context, description string, choiceMode bool) (*entity.Analysis, error) {
	s.gotDescription = description
	s.gotChoiceMode = choiceMode
	if s.err != nil {
		return nil, s.err
	}
	return s.analysis, nil
}

func (s *stubUsecase) GenerateRequirements(_ context.Context, description string, answers entity.AnswerMap) (*entity.RequirementsDocument, error) {
	s.gotDescription = description
	s.gotAnswers = answers
	if s.err != nil {
		return nil, s.err
	}
	return s.document, nil
}

func newTestRouter(stub *stubUsecase) *chi.Mux {
	r := chi.NewRouter()
	RegisterRoutes(r, NewHandler(stub))
	return r
}

func postJSON(t *testing.T, router http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var resp entity.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error
}

func TestAnalyze(t *testing.T) {
	t.Run("returns the analysis", func(t *testing.T) {
		purpose := "online portfolio"
		stub := &stubUsecase{
			analysis: &entity.Analysis{
				Understood: entity.UnderstoodSummary{Purpose: &purpose},
				Questions: []entity.FollowUpQuestion{
					{ID: "audience", Question: "Who is the site for?", Category: entity.CategoryAudience, CriticalLevel: 4, InputMode: entity.InputModeFreeText},
				},
			},
		}
		router := newTestRouter(stub)

		rec := postJSON(t, router, "/analyze", entity.AnalyzeRequest{Prompt: "I need a portfolio site", ChoiceMode: true})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var analysis entity.Analysis
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &analysis))
		require.Len(t, analysis.Questions, 1)
		assert.Equal(t, "audience", analysis.Questions[0].ID)

		assert.Equal(t, "I need a portfolio site", stub.gotDescription)
		assert.True(t, stub.gotChoiceMode)
	})

	t.Run("empty prompt", func(t *testing.T) {
		router := newTestRouter(&stubUsecase{})

		rec := postJSON(t, router, "/analyze", entity.AnalyzeRequest{Prompt: ""})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, entity.ErrMissingInput.Error(), decodeError(t, rec))
	})

	t.Run("invalid body", func(t *testing.T) {
		router := newTestRouter(&stubUsecase{})

		req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader("{not json"))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "invalid request body", decodeError(t, rec))
	})

	t.Run("backend failure", func(t *testing.T) {
		stub := &stubUsecase{err: &entity.BackendError{StatusCode: 503, Body: "overloaded"}}
		router := newTestRouter(stub)

		rec := postJSON(t, router, "/analyze", entity.AnalyzeRequest{Prompt: "a shop"})
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, decodeError(t, rec), "503")
	})

	t.Run("malformed backend response", func(t *testing.T) {
		stub := &stubUsecase{err: &entity.MalformedResponseError{Reason: "response is not valid JSON"}}
		router := newTestRouter(stub)

		rec := postJSON(t, router, "/analyze", entity.AnalyzeRequest{Prompt: "a shop"})
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, decodeError(t, rec), "malformed backend response")
	})
}

func TestGenerate(t *testing.T) {
	t.Run("returns the document", func(t *testing.T) {
		stub := &stubUsecase{
			document: &entity.RequirementsDocument{
				WebsiteSummary: entity.WebsiteSummary{Name: "Portfolio", Purpose: "showcase work"},
				Pages:          []entity.Page{{Name: "Home", Purpose: "introduce"}},
			},
		}
		router := newTestRouter(stub)

		answers := entity.AnswerMap{"audience": {Question: "Who is the site for?", Value: "recruiters"}}
		rec := postJSON(t, router, "/generate", entity.GenerateRequest{Prompt: "portfolio site", Answers: answers})
		require.Equal(t, http.StatusOK, rec.Code)

		var doc entity.RequirementsDocument
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
		assert.Equal(t, "Portfolio", doc.WebsiteSummary.Name)

		require.Contains(t, stub.gotAnswers, "audience")
		assert.Equal(t, "recruiters", stub.gotAnswers["audience"].Value)
	})

	t.Run("empty prompt", func(t *testing.T) {
		router := newTestRouter(&stubUsecase{})

		rec := postJSON(t, router, "/generate", entity.GenerateRequest{Prompt: ""})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, entity.ErrMissingInput.Error(), decodeError(t, rec))
	})
}

func TestExport(t *testing.T) {
	doc := &entity.RequirementsDocument{
		WebsiteSummary: entity.WebsiteSummary{Name: "Portfolio", Purpose: "showcase work"},
	}

	t.Run("markdown download", func(t *testing.T) {
		router := newTestRouter(&stubUsecase{})

		rec := postJSON(t, router, "/export", entity.ExportRequest{Format: entity.FormatMarkdown, Requirements: doc})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/markdown; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="website_requirements.md"`, rec.Header().Get("Content-Disposition"))
		assert.Contains(t, rec.Body.String(), "Portfolio")
	})

	t.Run("defaults to json", func(t *testing.T) {
		router := newTestRouter(&stubUsecase{})

		rec := postJSON(t, router, "/export", entity.ExportRequest{Requirements: doc})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, `attachment; filename="website_requirements.json"`, rec.Header().Get("Content-Disposition"))

		var restored entity.RequirementsDocument
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &restored))
		assert.Equal(t, "Portfolio", restored.WebsiteSummary.Name)
	})

	t.Run("missing document", func(t *testing.T) {
		router := newTestRouter(&stubUsecase{})

		rec := postJSON(t, router, "/export", entity.ExportRequest{Format: entity.FormatJSON})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "requirements document is required", decodeError(t, rec))
	})

	t.Run("unknown format", func(t *testing.T) {
		router := newTestRouter(&stubUsecase{})

		rec := postJSON(t, router, "/export", entity.ExportRequest{Format: entity.ResultFormat("xml"), Requirements: doc})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeError(t, rec), "unsupported export format")
	})
}
