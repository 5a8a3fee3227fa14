package entity

// AnalyzeRequest is the body of POST /analyze
type AnalyzeRequest struct {
	Prompt string `json:"prompt"`
	// ChoiceMode asks for questions with selectable options instead of
	// free-text ones.
	ChoiceMode bool `json:"choice_mode,omitempty"`
}

// GenerateRequest is the body of POST /generate. The client carries the
// description and collected answers forward; the server holds no state
// between calls.
type GenerateRequest struct {
	Prompt  string    `json:"prompt"`
	Answers AnswerMap `json:"answers"`
}

type ResultFormat string

const (
	FormatJSON     ResultFormat = "json"
	FormatMarkdown ResultFormat = "markdown"
	FormatPDF      ResultFormat = "pdf"
	FormatDOCX     ResultFormat = "docx"
)

// ExportRequest is the body of POST /export
type ExportRequest struct {
	Format       ResultFormat          `json:"format"`
	Requirements *RequirementsDocument `json:"requirements"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
