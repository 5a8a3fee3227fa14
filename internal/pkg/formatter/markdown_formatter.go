package formatter

import (
	"bytes"
	"fmt"

	"github.com/sitebrief/requirements-backend/internal/entity"
)

const (
	markdownContentType   = "text/markdown; charset=utf-8"
	markdownFileExtension = ".md"
)

type MarkdownFormatter struct{}

func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

func (mf *MarkdownFormatter) Format(doc *entity.RequirementsDocument) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# %s: %s\n", baseTitle, doc.WebsiteSummary.Name)

	for _, sec := range sections(doc) {
		fmt.Fprintf(&buf, "\n## %s\n\n", sec.Title)
		for _, line := range sec.Lines {
			fmt.Fprintf(&buf, "%s\n", line)
		}
	}

	return buf.Bytes(), nil
}

func (mf *MarkdownFormatter) ContentType() string {
	return markdownContentType
}

func (mf *MarkdownFormatter) FileExtension() string {
	return markdownFileExtension
}
